package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/e"
)

type ctxKey string

const (
	ctxUserID ctxKey = "userID"
	ctxRole   ctxKey = "role"
)

// Authenticate проверяет Bearer-токен и кладёт идентификатор и роль
// пользователя в контекст запроса.
func Authenticate(authUC usecase.AuthUC) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				WriteError(w, e.ErrTokenMissing)
				return
			}

			claims, err := authUC.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxRole, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает дальше только администраторов. Вешается после
// Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RoleFromCtx(r.Context()) != string(domain.RoleAdmin) {
			WriteError(w, e.ErrAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserIDFromCtx возвращает идентификатор пользователя текущей сессии.
func UserIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(ctxUserID).(string)
	return id
}

// RoleFromCtx возвращает роль пользователя текущей сессии.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(ctxRole).(string)
	return role
}

func isAdmin(ctx context.Context) bool {
	return RoleFromCtx(ctx) == string(domain.RoleAdmin)
}
