package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/skillpath-onboarding/internal/config"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/onboarding"
	"github.com/riskibarqy/skillpath-onboarding/internal/domain/preference"
	"github.com/riskibarqy/skillpath-onboarding/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/skillpath-onboarding/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/skillpath-onboarding/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/skillpath-onboarding/internal/interfaces/httpapi"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/cache"
	"github.com/riskibarqy/skillpath-onboarding/internal/platform/logging"
	"github.com/riskibarqy/skillpath-onboarding/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App owns the HTTP server and every resource opened to build it.
type App struct {
	Server  *http.Server
	Service *usecase.OnboardingService

	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{}
	records, preferences, err := a.buildRepositories(cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	pathStore, err := a.buildCacheStore(ctx, cfg, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Service = usecase.NewOnboardingService(records, preferences, pathStore, logger).
		WithWarmWorkers(cfg.WarmWorkerCount)

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		anubis.Config{
			BaseURL:        cfg.AnubisBaseURL,
			IntrospectPath: cfg.AnubisIntrospectPath,
			AdminKey:       cfg.AnubisAdminKey,
			CircuitBreaker: anubis.CircuitBreakerConfig{
				Enabled:          cfg.AnubisCircuitEnabled,
				FailureThreshold: cfg.AnubisCircuitFailureCount,
				OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
			},
		},
		principalStore(cfg),
		logger,
	)

	handler := httpapi.NewHandler(a.Service, logger)
	router := httpapi.NewRouter(
		handler,
		anubisClient,
		logger,
		cfg.SwaggerEnabled,
		cfg.CORSAllowedOrigins,
		cfg.InternalJobToken,
	)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if cfg.InternalJobToken == "" {
		logger.Warn("internal job routes disabled", "reason", "INTERNAL_JOB_TOKEN empty")
	}

	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func (a *App) buildRepositories(cfg config.Config, logger *logging.Logger) (onboarding.Repository, preference.Repository, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, db.Close)
		logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", dbNameFromURL(cfg.DBURL))
		return postgres.NewOnboardingRepository(db), postgres.NewPreferenceRepository(db), nil
	default:
		logger.Info("storage ready", "driver", config.StorageMemory)
		return memory.NewOnboardingRepository(), memory.NewPreferenceRepository(), nil
	}
}

func (a *App) buildCacheStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (cache.Store, error) {
	switch cfg.CacheDriver {
	case config.CacheRedis:
		store, err := cache.NewRedisStore(ctx, cache.RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisKeyPrefix,
			TTL:       cfg.CacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("connect learning path cache: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		logger.Info("learning path cache ready", "driver", config.CacheRedis, "ttl", cfg.CacheTTL.String())
		return store, nil
	case config.CacheNone:
		logger.Info("learning path cache disabled")
		return cache.Nop{}, nil
	default:
		logger.Info("learning path cache ready", "driver", config.CacheMemory, "ttl", cfg.CacheTTL.String())
		return cache.NewMemoryStore(cfg.CacheTTL), nil
	}
}

// principalStore keeps verified principals in process; they are short lived
// and never shared across replicas.
func principalStore(cfg config.Config) cache.Store {
	if cfg.CacheDriver == config.CacheNone || cfg.AnubisPrincipalTTL <= 0 {
		return cache.Nop{}
	}
	return cache.NewMemoryStore(cfg.AnubisPrincipalTTL)
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
