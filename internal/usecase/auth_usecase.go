package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Claims — полезная нагрузка JWT сессии.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUseCase реализует регистрацию, вход и проверку сессий.
type AuthUseCase struct {
	userRepo UserRepository
	jwtCfg   *cfg.JWTCfg
	logger   logger.Logger
}

func NewAuthUC(userRepo UserRepository, jwtCfg *cfg.JWTCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		logger:   logger,
	}
}

// Register создаёт учётную запись и сразу выдаёт токен сессии.
func (a *AuthUseCase) Register(ctx context.Context, req *RegisterReq) (*AuthRes, error) {
	const op = "AuthUseCase.Register"

	if err := validateRegister(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := a.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, e.Wrap(op, e.ErrEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.userRepo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{User: user, Token: token}, nil
}

// Login проверяет учётные данные и выдаёт токен сессии. Несуществующий
// email и неверный пароль дают одну и ту же ошибку.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*AuthRes, error) {
	const op = "AuthUseCase.Login"

	if req.Email == "" || req.Password == "" {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	user, err := a.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	if !user.IsActive {
		return nil, e.Wrap(op, e.ErrAccountDisabled)
	}

	token, err := a.signToken(user)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{User: user, Token: token}, nil
}

// GetUser возвращает пользователя текущей сессии.
func (a *AuthUseCase) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	const op = "AuthUseCase.GetUser"

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// ParseToken проверяет подпись и срок действия токена.
func (a *AuthUseCase) ParseToken(tokenString string) (*Claims, error) {
	const op = "AuthUseCase.ParseToken"

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, e.ErrTokenInvalid
		}
		return []byte(a.jwtCfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, e.Wrap(op, e.ErrTokenInvalid)
	}

	return claims, nil
}

func (a *AuthUseCase) signToken(user *domain.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.jwtCfg.TTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.jwtCfg.Secret))
}

func validateRegister(req *RegisterReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.Validation("name", "Nama wajib diisi")
	}
	if !strings.Contains(req.Email, "@") {
		return e.Validation("email", "Email tidak valid")
	}
	if len(req.Password) < 6 {
		return e.Validation("password", "Password minimal 6 karakter")
	}

	return nil
}
