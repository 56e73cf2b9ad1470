package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"vitrina/internal/auth"
	"vitrina/internal/cart"
	"vitrina/internal/catalog"
	"vitrina/internal/db"
	"vitrina/internal/kv"
	"vitrina/internal/orders"
	"vitrina/internal/prefs"
	"vitrina/internal/ratelimiter"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.3.0"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadRateLimiterConfig() ratelimiter.Config {
	requests := 200
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsed, err := strconv.Atoi(val); err == nil {
			requests = parsed
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", requests)
		}
	}

	enabled := false
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsed, err := strconv.ParseBool(val); err == nil {
			enabled = parsed
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requests,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// newLogger builds a console zap logger with colored levels.
func newLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)
	return zap.New(core).Sugar(), nil
}

// newStateStore picks the persistence adapter for client state (cart and
// preferences) from config.
func newStateStore(cfg stateConfig, logger *zap.SugaredLogger) (kv.Store, error) {
	switch cfg.backend {
	case "file":
		return kv.NewFile(cfg.dir)
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.redisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return kv.NewRedis(client, cfg.namespace), nil
	case "postgres":
		pool, err := db.New(cfg.db.addr, cfg.db.maxConns, cfg.db.maxIdleTime)
		if err != nil {
			return nil, err
		}
		logger.Info("database connection pool established")
		return kv.NewPostgres(pool), nil
	case "memory", "":
		logger.Warn("using in-memory state store; client state will not survive restarts")
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.backend)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	maxConns := int32(10)
	if v := os.Getenv("DB_MAX_CONNS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid value for DB_MAX_CONNS: %v", err)
		}
		maxConns = int32(parsed)
	}

	cfg := config{
		addr:        envOr("ADDR", ":8080"),
		env:         envOr("ENV", "development"),
		backendURL:  envOr("BACKEND_URL", "http://localhost:5000/api"),
		frontendURL: envOr("FRONTEND_URL", "http://localhost:5173"),
		state: stateConfig{
			backend:   envOr("STATE_BACKEND", "file"),
			dir:       envOr("STATE_DIR", ".vitrina"),
			redisAddr: envOr("REDIS_ADDR", "localhost:6379"),
			namespace: envOr("STATE_NAMESPACE", "vitrina"),
			db: dbConfig{
				addr:        os.Getenv("DB_ADDR"),
				maxConns:    maxConns,
				maxIdleTime: envOr("DB_MAX_IDLE_TIME", "15m"),
			},
		},
		auth: authConfig{
			secret: os.Getenv("AUTH_TOKEN_SECRET"),
			aud:    "Vitrina",
			iss:    envOr("AUTH_TOKEN_ISSUER", "Vitrina"),
		},
		rateLimiter: loadRateLimiterConfig(),
	}

	logger, err := newLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	stateStore, err := newStateStore(cfg.state, logger)
	if err != nil {
		logger.Fatal(err)
	}

	cartStore := cart.NewStore(stateStore)
	if err := cartStore.Load(context.Background()); err != nil {
		// A broken state backend should not keep the storefront down; the
		// cart starts empty and re-persists on the next transition.
		logger.Errorw("cart restore failed, starting empty", "error", err)
	}

	refs, err := orders.NewReferenceGenerator(envOr("ORDER_REFERENCE_SALT", "vitrina"))
	if err != nil {
		logger.Fatal(err)
	}

	app := &application{
		config:        cfg,
		logger:        logger,
		cart:          cartStore,
		favorites:     prefs.NewFavorites(stateStore),
		recent:        prefs.NewRecentlyViewed(stateStore),
		categoryOrder: prefs.NewCategoryOrder(stateStore),
		catalog:       catalog.NewClient(cfg.backendURL),
		orders:        orders.NewClient(cfg.backendURL),
		refs:          refs,
		authenticator: auth.NewJWTAuthenticator(cfg.auth.secret, cfg.auth.aud, cfg.auth.iss),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(
			cfg.rateLimiter.RequestsPerTimeFrame,
			cfg.rateLimiter.TimeFrame,
		),
	}

	// Metrics at /v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("cart_items", expvar.Func(func() any {
		return cartStore.Snapshot().ItemCount()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
