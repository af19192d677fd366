package gymmanager

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/ironman-fitness/gym-manager/internal/cache"
	"github.com/ironman-fitness/gym-manager/internal/config"
	"github.com/ironman-fitness/gym-manager/internal/lib/jwt"
	"github.com/ironman-fitness/gym-manager/internal/migrations"
	authservice "github.com/ironman-fitness/gym-manager/internal/services/auth"
	equipmentservice "github.com/ironman-fitness/gym-manager/internal/services/equipment"
	exporterservice "github.com/ironman-fitness/gym-manager/internal/services/exporter"
	importerservice "github.com/ironman-fitness/gym-manager/internal/services/importer"
	memberservice "github.com/ironman-fitness/gym-manager/internal/services/member"
	notificationservice "github.com/ironman-fitness/gym-manager/internal/services/notification"
	paymentservice "github.com/ironman-fitness/gym-manager/internal/services/payment"
	planservice "github.com/ironman-fitness/gym-manager/internal/services/plan"
	"github.com/ironman-fitness/gym-manager/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	services := &Services{
		Auth:          authservice.NewAuthService(db, jwtMaker),
		Members:       memberservice.NewMemberService(db),
		Plans:         planservice.NewPlanService(db, cacheRedis, logger),
		Equipment:     equipmentservice.NewEquipmentService(db),
		Payments:      paymentservice.NewPaymentService(db, db),
		Notifications: notificationservice.NewNotificationService(db),
		Importer:      importerservice.NewImportService(db, logger),
		Exporter:      exporterservice.NewExportService(db),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, services)

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
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
