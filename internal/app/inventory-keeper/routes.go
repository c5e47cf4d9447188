package inventorykeeper

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/krotovalex/inventory-keeper/internal/http/handlers/auth/login"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/auth/register"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/health"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/add"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/export"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/get"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/list"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/remove"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/sync"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/update"
	"github.com/krotovalex/inventory-keeper/internal/http/handlers/product/value"
	userlist "github.com/krotovalex/inventory-keeper/internal/http/handlers/user/list"
	"github.com/krotovalex/inventory-keeper/internal/http/middlewarectx"
	"github.com/krotovalex/inventory-keeper/internal/lib/jwt"
	authservice "github.com/krotovalex/inventory-keeper/internal/services/auth"
	inventoryservice "github.com/krotovalex/inventory-keeper/internal/services/inventory"
	syncerservice "github.com/krotovalex/inventory-keeper/internal/services/syncer"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, inventoryService *inventoryservice.Service, authService *authservice.Service, syncService *syncerservice.Service, jwtMaker jwt.Maker) {
	reg := prometheus.NewRegistry()
	metrics := middlewarectx.NewMetrics(reg)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(metrics.Middleware())

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки; вход и регистрация под общим лимитом
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/register", register.New(logger, authService).ServeHTTP)
			r.Post("/login", login.New(logger, authService).ServeHTTP)
		})
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/products", add.New(logger, inventoryService).ServeHTTP)
			r.Get("/products", list.New(logger, inventoryService).ServeHTTP)
			r.Get("/products/value", value.New(logger, inventoryService).ServeHTTP)
			r.Get("/products/export", export.New(logger, inventoryService).ServeHTTP)
			r.Get("/products/{name}", get.New(logger, inventoryService).ServeHTTP)
			r.Put("/products/{name}", update.New(logger, inventoryService).ServeHTTP)
			r.Delete("/products/{name}", remove.New(logger, inventoryService).ServeHTTP)

			// Операции, доступные только администраторам
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireAdminMiddleware(logger))
				r.Post("/products/sync", sync.New(logger, syncService).ServeHTTP)
				r.Get("/users", userlist.New(logger, authService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
