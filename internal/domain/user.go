package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role — роль пользователя
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User описывает учётную запись покупателя или администратора
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Balance      decimal.Decimal
	Avatar       string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
