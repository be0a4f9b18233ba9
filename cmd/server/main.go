package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/paisa/internal/adapter/advisor"
	httpAdapter "github.com/iho/paisa/internal/adapter/http"
	"github.com/iho/paisa/internal/adapter/http/handler"
	"github.com/iho/paisa/internal/adapter/http/middleware"
	"github.com/iho/paisa/internal/adapter/idgen"
	"github.com/iho/paisa/internal/adapter/repository/kv"
	"github.com/iho/paisa/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/paisa/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/paisa/internal/adapter/repository/redis"
	sqliteRepo "github.com/iho/paisa/internal/adapter/repository/sqlite"
	"github.com/iho/paisa/internal/infrastructure/config"
	"github.com/iho/paisa/internal/infrastructure/logger"
	"github.com/iho/paisa/internal/infrastructure/metrics"
	"github.com/iho/paisa/internal/infrastructure/postgres"
	"github.com/iho/paisa/internal/infrastructure/redis"
	"github.com/iho/paisa/internal/infrastructure/sqlite"
	"github.com/iho/paisa/internal/usecase"
)

// limiterCleanupInterval is how often idle per-IP limiters are dropped.
const limiterCleanupInterval = 10 * time.Minute

func main() {
	// A missing .env is fine: the environment may already be set.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx := context.Background()
	m := metrics.New()

	// Connect storage
	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.kv.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close storage")
		}
	}()
	log.Info().Str("driver", cfg.StorageDriver).Msg("storage ready")

	// Initialize use cases
	clock := usecase.SystemClock{}
	store := usecase.NewRecordStore(
		kv.NewSnapshotRepo(st.kv, m),
		idgen.NewULIDGenerator(),
		clock,
		logger.Component(log, "record_store"),
		m,
	)
	store.Load(ctx)

	adv, err := newAdvisor(cfg, log)
	if err != nil {
		return err
	}

	profiles := usecase.NewProfileUseCase(kv.NewProfileRepo(st.kv), clock, logger.Component(log, "profile"))
	reports := usecase.NewReportUseCase(store, clock)
	advisory := usecase.NewAdvisoryUseCase(store, adv, st.tips, cfg.AITimeout, logger.Component(log, "advisory"), m)

	limiter := middleware.NewRateLimiter(cfg.AdvisoryRateLimit, cfg.AdvisoryRateBurst, m)
	stopCleanup := startLimiterCleanup(limiter, limiterCleanupInterval)
	defer stopCleanup()

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(store),
		ReportHandler:      handler.NewReportHandler(reports, profiles),
		AdvisoryHandler:    handler.NewAdvisoryHandler(advisory, profiles),
		ProfileHandler:     handler.NewProfileHandler(profiles),
		HealthHandler:      handler.NewHealthHandler(st.kv, cfg.StorageDriver),
		Logger:             log,
		Metrics:            m,
		MetricsHandler:     promhttp.Handler(),
		AdvisoryLimiter:    limiter,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Bool("advisor", adv != nil).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

// storage is the durable store and tips cache chosen by STORAGE_DRIVER.
type storage struct {
	kv   usecase.KeyValueStore
	tips usecase.TipsCache
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	tips := memory.NewTipsCache(cfg.TipsCacheSize, cfg.TipsCacheTTL)

	switch cfg.StorageDriver {
	case config.DriverMemory:
		return &storage{kv: memory.NewStore(), tips: tips}, nil

	case config.DriverSQLite:
		if err := sqlite.RunMigrations(cfg.SQLitePath, log); err != nil {
			return nil, fmt.Errorf("failed to migrate sqlite: %w", err)
		}
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return &storage{kv: sqliteRepo.NewKVStore(db), tips: tips}, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return &storage{
			kv:   redisRepo.NewKVStore(client, cfg.RedisKeyPrefix),
			tips: redisRepo.NewTipsCache(client, cfg.RedisKeyPrefix, cfg.TipsCacheTTL, logger.Component(log, "tips_cache")),
		}, nil

	case config.DriverPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, log); err != nil {
			return nil, fmt.Errorf("failed to migrate postgres: %w", err)
		}
		pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL: cfg.DatabaseURL,
			MaxConns:    cfg.DatabaseMaxConns,
			MinConns:    cfg.DatabaseMinConns,
			ConnTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return &storage{kv: postgresRepo.NewKVStore(pool, postgresRepo.NewRetrier(log)), tips: tips}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// newAdvisor returns nil without an API key so the use case falls back.
func newAdvisor(cfg *config.Config, log zerolog.Logger) (usecase.Advisor, error) {
	if !cfg.AdvisorEnabled() {
		log.Warn().Msg("API_KEY not set, advisory features use fallbacks")
		return nil, nil
	}

	client, err := advisor.New(advisor.Config{
		APIKey:        cfg.APIKey,
		BaseURL:       cfg.AIBaseURL,
		InsightsModel: cfg.AIInsightsModel,
		TipsModel:     cfg.AITipsModel,
		HTTPClient:    &http.Client{Timeout: cfg.AITimeout},
	}, logger.Component(log, "advisor"))
	if err != nil {
		return nil, fmt.Errorf("failed to create advisor: %w", err)
	}
	return client, nil
}

func startLimiterCleanup(limiter *middleware.RateLimiter, every time.Duration) func() {
	ticker := time.NewTicker(every)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				limiter.CleanupLimiters()
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}
