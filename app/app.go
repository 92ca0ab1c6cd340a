// Package app assembles the stores, services and router from a Config.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tourist-safety/config"
	"tourist-safety/controllers"
	"tourist-safety/libs"
	"tourist-safety/middleware"
	"tourist-safety/repositories"
	"tourist-safety/repositories/memory"
	"tourist-safety/routes"
	"tourist-safety/services"
)

type App struct {
	Config *config.Config
	Logger *zap.Logger
	Router *gin.Engine
	Stores services.Stores

	closers []func()
}

// NewStores returns the postgres or in-memory stores selected by
// STORE_DRIVER, plus a cleanup func.
func NewStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (services.Stores, func(), error) {
	switch strings.ToLower(cfg.StoreDriver) {
	case "memory":
		logger.Warn("using in-memory store, data is lost on restart")
		store := memory.NewStore()
		return services.Stores{
			Accounts:    store.Accounts(),
			Tourists:    store.Tourists(),
			Contacts:    store.Contacts(),
			Authorities: store.Authorities(),
			Places:      store.Places(),
			Incidents:   store.Incidents(),
		}, func() {}, nil
	case "", "postgres":
		pool, err := config.ConnectDB(ctx, cfg, logger)
		if err != nil {
			return services.Stores{}, nil, err
		}
		return services.Stores{
			Accounts:    repositories.NewAccountRepository(pool),
			Tourists:    repositories.NewTouristRepository(pool),
			Contacts:    repositories.NewContactRepository(pool),
			Authorities: repositories.NewAuthorityRepository(pool),
			Places:      repositories.NewPlaceRepository(pool),
			Incidents:   repositories.NewIncidentRepository(pool),
		}, pool.Close, nil
	default:
		return services.Stores{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// New connects every backend and builds the router.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	stores, closeStores, err := NewStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.Stores = stores
	a.closers = append(a.closers, closeStores)

	photos, err := libs.NewPhotoStore(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("photo store: %w", err)
	}
	logger.Info("photo store ready", zap.String("backend", cfg.PhotoStore))

	notifier, closeNotifier := libs.NewNotifier(ctx, cfg, logger)
	a.closers = append(a.closers, closeNotifier)

	router, err := a.newRouter(stores, photos, notifier)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Router = router
	return a, nil
}

func (a *App) newRouter(stores services.Stores, photos services.PhotoStore, notifier services.Notifier) (*gin.Engine, error) {
	cfg, logger := a.Config, a.Logger

	authCfg := services.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		JWTExpiry:     cfg.JWTExpiry,
		MaxUploadSize: cfg.MaxUploadSize,
	}
	handlers := routes.Handlers{
		Auth: controllers.NewAuthController(
			services.NewAuthService(stores, photos, notifier, authCfg, logger.Named("auth")),
			cfg.PublicBaseURL, logger),
		Profile: controllers.NewProfileController(
			services.NewProfileService(stores, photos, cfg.MaxUploadSize, logger.Named("profile")),
			cfg.PublicBaseURL, logger),
		Contact: controllers.NewContactController(
			services.NewContactService(stores, logger.Named("contact")), logger),
		Place: controllers.NewPlaceController(
			services.NewPlaceService(stores.Places, logger.Named("place")), logger),
		Incident: controllers.NewIncidentController(
			services.NewIncidentService(stores, notifier, logger.Named("incident")), logger),
		Admin: controllers.NewAdminController(
			services.NewAdminService(stores, photos, logger.Named("admin")), logger),
	}

	loginLimit, err := middleware.RateLimit(cfg.RateLimitLogin, logger)
	if err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT_LOGIN: %w", err)
	}

	metrics := middleware.NewMetrics(strings.ReplaceAll(cfg.ServiceName, "-", "_"))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger.Named("http")))
	router.Use(metrics.Middleware())
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	opts := routes.Options{
		ServiceName: cfg.ServiceName,
		JWTSecret:   cfg.JWTSecret,
		LoginLimit:  loginLimit,
		Metrics:     metrics,
	}
	if strings.EqualFold(cfg.PhotoStore, "local") || cfg.PhotoStore == "" {
		if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("create upload directory: %w", err)
		}
		opts.UploadDir = cfg.UploadDir
	}
	routes.SetupRoutes(router, handlers, opts)
	return router, nil
}

// Close releases the backends in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
