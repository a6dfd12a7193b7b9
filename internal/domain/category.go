package domain

import "time"

// Category описывает категорию каталога
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Image       string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// ProductCount заполняется при выборке списка категорий
	ProductCount int64
}

func NewCategory(name, slug, description, image string, sortOrder int) *Category {
	return &Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		Image:       image,
		SortOrder:   sortOrder,
		IsActive:    true,
	}
}
