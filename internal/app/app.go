package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/furniture-crm/internal/config"
	"github.com/GlebRadaev/furniture-crm/internal/events"
	"github.com/GlebRadaev/furniture-crm/internal/handlers"
	"github.com/GlebRadaev/furniture-crm/internal/pg"
	"github.com/GlebRadaev/furniture-crm/internal/reconcile"
	"github.com/GlebRadaev/furniture-crm/internal/repo"
	"github.com/GlebRadaev/furniture-crm/internal/service"
	"github.com/GlebRadaev/furniture-crm/pkg/auth"
	"github.com/GlebRadaev/furniture-crm/pkg/filestore"
	"github.com/GlebRadaev/furniture-crm/pkg/lock"
	"github.com/GlebRadaev/furniture-crm/pkg/logger"
)

const lockPrefix = "crm:lock:"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	closers []func() error
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err := logger.InitLogger(cfg.LogLvl); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.onClose(func() error { pool.Close(); return nil })
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	locker, err := a.newLocker(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't init order locks: %w", err)
	}
	store, err := filestore.NewLocal(cfg.FilesDir, cfg.FilesPublicURL)
	if err != nil {
		return fmt.Errorf("can't init file store: %w", err)
	}
	workerPool := reconcile.NewWorkerPool(cfg.ReconcileWorkers)
	a.onClose(func() error { workerPool.Close(); return nil })

	policy, err := auth.NewPolicy()
	if err != nil {
		return fmt.Errorf("can't init access policy: %w", err)
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv, err = service.New(a.repo, service.Deps{
		TxManager:     txManager,
		Locker:        locker,
		Publisher:     a.newPublisher(cfg),
		Store:         store,
		WorkerPool:    workerPool,
		Mode:          cfg.Mode,
		MaxUploadSize: cfg.MaxUploadMB << 20,
		Secrets: map[auth.Role]string{
			auth.RoleAdmin:    cfg.AdminPassword,
			auth.RoleDesigner: cfg.DesignerPassword,
		},
		HashService: &auth.HashService{},
		JWTService:  jwtService,
	})
	if err != nil {
		return err
	}
	a.api = handlers.New(a.srv, jwtService, policy, store.Root())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("paid_amount_mode", string(cfg.Mode)))
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// newLocker shares order locks through Redis when it is configured, so
// several instances can serve the same database.
func (a *Application) newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, error) {
	if cfg.RedisAddr == "" {
		zap.L().Info("using in-process order locks")
		return lock.NewKeyedMutex(), nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	a.onClose(client.Close)
	zap.L().Info("using redis order locks", zap.String("addr", cfg.RedisAddr))
	return lock.NewRedisLocker(client, lockPrefix, lock.DefaultTTL), nil
}

func (a *Application) newPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NopPublisher{}
	}
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	a.onClose(publisher.Close)
	zap.L().Info("publishing ledger events", zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
	return publisher
}

func (a *Application) onClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.close()
	return appErr
}

// close releases resources in reverse order of acquisition.
func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Error("failed to release resource", zap.Error(err))
		}
	}
	a.closers = nil
}
