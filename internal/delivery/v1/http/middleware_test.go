package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

// mockAuthUC реализует usecase.AuthUC для тестов middleware.
type mockAuthUC struct {
	claims *usecase.Claims
	err    error
}

func (m *mockAuthUC) Register(context.Context, *usecase.RegisterReq) (*usecase.AuthRes, error) {
	return nil, nil
}

func (m *mockAuthUC) Login(context.Context, *usecase.LoginReq) (*usecase.AuthRes, error) {
	return nil, nil
}

func (m *mockAuthUC) GetUser(context.Context, string) (*domain.User, error) {
	return nil, nil
}

func (m *mockAuthUC) ParseToken(string) (*usecase.Claims, error) {
	return m.claims, m.err
}

func TestAuthenticate_PutsClaimsIntoContext(t *testing.T) {
	auth := &mockAuthUC{claims: &usecase.Claims{UserID: "user-1", Role: "USER"}}

	var gotUserID, gotRole string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromCtx(r.Context())
		gotRole = RoleFromCtx(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	r.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()

	Authenticate(auth)(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "USER", gotRole)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	auth := &mockAuthUC{claims: &usecase.Claims{UserID: "user-1"}}

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	w := httptest.NewRecorder()

	Authenticate(auth)(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	auth := &mockAuthUC{claims: &usecase.Claims{UserID: "user-1"}}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	Authenticate(auth)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	auth := &mockAuthUC{err: e.ErrTokenInvalid}

	r := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()

	Authenticate(auth)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	ctx := context.WithValue(r.Context(), ctxRole, string(domain.RoleAdmin))
	w := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(w, r.WithContext(ctx))

	assert.True(t, called)
}

func TestRequireAdmin_RejectsUser(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	r := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	ctx := context.WithValue(r.Context(), ctxRole, string(domain.RoleUser))
	w := httptest.NewRecorder()

	RequireAdmin(next).ServeHTTP(w, r.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}
