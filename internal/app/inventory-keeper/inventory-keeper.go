// Package inventorykeeper собирает приложение учёта товаров: хранилище,
// кеш, сервисы, HTTP-сервер и маршруты.
package inventorykeeper

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/krotovalex/inventory-keeper/internal/cache"
	"github.com/krotovalex/inventory-keeper/internal/config"
	"github.com/krotovalex/inventory-keeper/internal/lib/jwt"
	"github.com/krotovalex/inventory-keeper/internal/migrations"
	"github.com/krotovalex/inventory-keeper/internal/services/auth"
	"github.com/krotovalex/inventory-keeper/internal/services/inventory"
	"github.com/krotovalex/inventory-keeper/internal/services/syncer"
	"github.com/krotovalex/inventory-keeper/internal/storage/memstore"
	"github.com/krotovalex/inventory-keeper/internal/storage/repository"
	"github.com/krotovalex/inventory-keeper/internal/unimall"
)

// envLocal — окружение для запуска без Postgres и Redis.
const envLocal = "local"

// App объединяет HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage // nil при работе на памяти
	cache  *cache.Cache        // nil при работе без Redis
}

// New создает приложение: подключает хранилище, применяет миграции,
// собирает сервисы и маршруты. В окружении local или при пустой строке
// подключения к базе сервис работает на хранилище в памяти без Redis.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	var (
		db           *repository.Storage
		cacheRedis   *cache.Cache
		products     inventory.Repository
		users        auth.UserRepository
		productCache inventory.Cache
	)

	if cfg.Env == envLocal || cfg.StorageConnectionString == "" {
		logger.Warn("using in-memory storage without cache", slog.String("env", cfg.Env))
		mem := memstore.New()
		products = mem
		users = mem
		productCache = cache.NewNoop()
	} else {
		var err error
		db, err = repository.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB); err != nil {
			return nil, err
		}

		cacheRedis, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		products = db
		users = db
		productCache = cacheRedis
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	inventoryService := inventory.NewService(products, productCache, logger)
	authService := auth.NewService(users, jwtMaker, logger)

	supplierClient := unimall.NewClient(cfg.BaseURL, cfg.APIKey, cfg.PageSize)
	syncService := syncer.NewService(inventoryService, supplierClient, logger)

	if err := authService.EnsureDefaultAdmin(ctx, cfg.DefaultAdminPassword); err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	RegisterRoutes(router, logger, inventoryService, authService, syncService, jwtMaker)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.db != nil {
			_ = a.db.DB.Close()
		}
		if a.cache != nil {
			_ = a.cache.Db.Close()
		}
		return err
	}
}
