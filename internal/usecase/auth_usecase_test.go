package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

// mockUserRepo реализует UserRepository для тестов.
type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	created.ID = "user-" + user.Email
	m.users[created.Email] = &created
	return &created, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, e.ErrUserNotFound
}

func testAuthUC(repo *mockUserRepo) *AuthUseCase {
	return NewAuthUC(repo, &cfg.JWTCfg{Secret: "test-secret", TTL: time.Hour}, logger.NewSlogLogger())
}

func TestRegister_CreatesUserAndToken(t *testing.T) {
	repo := newMockUserRepo()
	uc := testAuthUC(repo)

	res, err := uc.Register(context.Background(), &RegisterReq{
		Name:     "Budi",
		Email:    "Budi@Example.com",
		Password: "rahasia123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "budi@example.com", res.User.Email)
	assert.Equal(t, domain.RoleUser, res.User.Role)
	assert.True(t, res.User.IsActive)
	assert.NotEqual(t, "rahasia123", res.User.PasswordHash)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newMockUserRepo()
	uc := testAuthUC(repo)

	_, err := uc.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), &RegisterReq{Name: "Budi 2", Email: "budi@example.com", Password: "rahasia456"})
	assert.ErrorIs(t, err, e.ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	uc := testAuthUC(newMockUserRepo())

	_, err := uc.Register(context.Background(), &RegisterReq{Name: "", Email: "budi@example.com", Password: "rahasia123"})
	msg, ok := e.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Nama wajib diisi", msg)

	_, err = uc.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "not-an-email", Password: "rahasia123"})
	msg, ok = e.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Email tidak valid", msg)

	_, err = uc.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "budi@example.com", Password: "123"})
	msg, ok = e.UserMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Password minimal 6 karakter", msg)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	uc := testAuthUC(repo)

	_, err := uc.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	res, err := uc.Login(context.Background(), &LoginReq{Email: "budi@example.com", Password: "rahasia123"})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	uc := testAuthUC(repo)

	_, err := uc.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &LoginReq{Email: "budi@example.com", Password: "salah"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	uc := testAuthUC(newMockUserRepo())

	_, err := uc.Login(context.Background(), &LoginReq{Email: "tidak-ada@example.com", Password: "rahasia123"})
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := newMockUserRepo()
	uc := testAuthUC(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["budi@example.com"] = &domain.User{
		ID:           "user-1",
		Email:        "budi@example.com",
		PasswordHash: string(hash),
		IsActive:     false,
	}

	_, err = uc.Login(context.Background(), &LoginReq{Email: "budi@example.com", Password: "rahasia123"})
	assert.ErrorIs(t, err, e.ErrAccountDisabled)
}

func TestParseToken_Roundtrip(t *testing.T) {
	repo := newMockUserRepo()
	uc := testAuthUC(repo)

	res, err := uc.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	claims, err := uc.ParseToken(res.Token)

	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, string(domain.RoleUser), claims.Role)
}

func TestParseToken_WrongSecret(t *testing.T) {
	repo := newMockUserRepo()
	uc := testAuthUC(repo)

	res, err := uc.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	other := NewAuthUC(repo, &cfg.JWTCfg{Secret: "another-secret", TTL: time.Hour}, logger.NewSlogLogger())

	_, err = other.ParseToken(res.Token)
	assert.ErrorIs(t, err, e.ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	repo := newMockUserRepo()
	expired := NewAuthUC(repo, &cfg.JWTCfg{Secret: "test-secret", TTL: -time.Hour}, logger.NewSlogLogger())

	res, err := expired.Register(context.Background(), &RegisterReq{Name: "Budi", Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = expired.ParseToken(res.Token)
	assert.ErrorIs(t, err, e.ErrTokenInvalid)
}
