package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/schnuffelll/shop-backend/docs" // Импорт сгенерированных файлов
	"github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/internal/usecase"
	"github.com/schnuffelll/shop-backend/pkg/logger"
	"github.com/schnuffelll/shop-backend/pkg/postgres"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	db *postgres.PgDatabase,
	authUC usecase.AuthUC,
	categoryUC usecase.CategoryUC,
	productUC usecase.ProductUC,
	couponUC usecase.CouponUC,
	orderUC usecase.OrderUC,
	uploadUC usecase.UploadUC,
	uploadCfg *cfg.UploadCfg,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authHandler := NewAuthHandler(authUC, r.logger)
	categoryHandler := NewCategoryHandler(categoryUC, r.logger)
	productHandler := NewProductHandler(productUC, r.logger)
	couponHandler := NewCouponHandler(couponUC, r.logger)
	orderHandler := NewOrderHandler(orderUC, r.logger)
	uploadHandler := NewUploadHandler(uploadUC, uploadCfg, r.logger)

	authenticate := Authenticate(authUC)

	r.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Endpoint tidak ditemukan"})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		v1.Get("/health", healthHandler(db))

		v1.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", authHandler.register)
			auth.Post("/login", authHandler.login)
			auth.With(authenticate).Get("/me", authHandler.me)
		})

		v1.Route("/categories", func(cat chi.Router) {
			cat.Get("/", categoryHandler.list)
			cat.Get("/{slug}", categoryHandler.getBySlug)

			cat.Group(func(admin chi.Router) {
				admin.Use(authenticate, RequireAdmin)
				admin.Post("/", categoryHandler.create)
				admin.Put("/{id}", categoryHandler.update)
				admin.Delete("/{id}", categoryHandler.delete)
			})
		})

		v1.Route("/products", func(pr chi.Router) {
			pr.Get("/", productHandler.list)

			pr.Group(func(admin chi.Router) {
				admin.Use(authenticate, RequireAdmin)
				admin.Get("/admin/all", productHandler.adminList)
				admin.Get("/admin/{id}", productHandler.adminGet)
				admin.Post("/", productHandler.create)
				admin.Put("/{id}", productHandler.update)
				admin.Patch("/variant/{variantId}/stock", productHandler.updateVariantStock)
				admin.Patch("/{id}/toggle", productHandler.toggle)
				admin.Delete("/{id}", productHandler.delete)
			})

			pr.Get("/{slug}", productHandler.getBySlug)
		})

		v1.Route("/coupons", func(cp chi.Router) {
			cp.With(authenticate).Post("/check", couponHandler.check)

			cp.Group(func(admin chi.Router) {
				admin.Use(authenticate, RequireAdmin)
				admin.Post("/", couponHandler.create)
				admin.Get("/", couponHandler.list)
				admin.Put("/{id}", couponHandler.update)
				admin.Delete("/{id}", couponHandler.delete)
			})
		})

		v1.Route("/orders", func(ord chi.Router) {
			ord.Use(authenticate)
			ord.Post("/", orderHandler.create)
			ord.Get("/", orderHandler.list)

			ord.Group(func(admin chi.Router) {
				admin.Use(RequireAdmin)
				admin.Get("/admin/all", orderHandler.adminList)
				admin.Patch("/{id}/status", orderHandler.updateStatus)
			})

			ord.Get("/{id}", orderHandler.get)
		})

		v1.Route("/uploads", func(up chi.Router) {
			up.Use(authenticate, RequireAdmin)
			up.Post("/single", uploadHandler.uploadSingle)
			up.Post("/multiple", uploadHandler.uploadMultiple)
		})
	})
}

// healthHandler проверяет доступность базы.
func healthHandler(db *postgres.PgDatabase) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		code, health, dbStatus := http.StatusOK, "ok", "connected"
		if err := db.Ping(); err != nil {
			code, health, dbStatus = http.StatusServiceUnavailable, "degraded", "disconnected"
		}

		WriteSuccess(w, code, map[string]interface{}{
			"status":    health,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
		})
	}
}
