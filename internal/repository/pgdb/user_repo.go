package pgdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/repository/pgdb/converter"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{pool: pool, conv: conv}
}

const userColumns = `id, name, email, password_hash, role, balance, avatar, is_active, created_at, updated_at`

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	model := u.conv.ToModel(user)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO users (id, name, email, password_hash, role, balance, avatar, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns + `;
	`

	err := q(ctx, u.pool).QueryRow(ctx, query,
		model.ID, model.Name, model.Email, model.PasswordHash,
		model.Role, model.Balance, model.Avatar, model.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Email, &model.PasswordHash, &model.Role,
		&model.Balance, &model.Avatar, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	model, err := u.scanUser(ctx, query, email)
	if err != nil {
		return nil, err
	}

	return u.conv.ToEntity(model), nil
}

func (u *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	model, err := u.scanUser(ctx, query, id)
	if err != nil {
		return nil, err
	}

	return u.conv.ToEntity(model), nil
}

func (u *UserRepo) scanUser(ctx context.Context, query string, arg any) (*converter.UserModel, error) {
	var model converter.UserModel
	err := q(ctx, u.pool).QueryRow(ctx, query, arg).Scan(
		&model.ID, &model.Name, &model.Email, &model.PasswordHash, &model.Role,
		&model.Balance, &model.Avatar, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &model, nil
}
