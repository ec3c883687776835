package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eshop-be/internal/cart"
	"eshop-be/internal/category"
	"eshop-be/internal/config"
	"eshop-be/internal/db"
	"eshop-be/internal/graph"
	"eshop-be/internal/logger"
	"eshop-be/internal/metrics"
	"eshop-be/internal/middleware"
	"eshop-be/internal/order"
	"eshop-be/internal/product"
	"eshop-be/internal/productdetail"
	"eshop-be/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var (
	initDBFunc      = db.NewDatabase
	startServerFunc = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := initDBFunc(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize database")
	}
	defer database.Close()

	store, closeStore, err := newCartStore(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to initialize cart store")
	}
	defer closeStore()

	handler, err := newServer(ctx, cfg, database, store)
	if err != nil {
		return errors.Wrap(err, "failed to build server")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.Bool("redis_carts", cfg.UsesRedis()),
		)
		errCh <- startServerFunc(srv)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server error")
		}
		return nil
	case <-ctx.Done():
		logger.L().Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}
	logger.L().Info("server gracefully stopped")
	return nil
}

// newCartStore keeps carts in redis when REDIS_ADDR is set, otherwise in
// process memory.
func newCartStore(ctx context.Context, cfg *config.Config) (cart.Store, func() error, error) {
	if !cfg.UsesRedis() {
		mem := cart.NewMemoryStore(cfg.SessionIdleTimeout)
		go mem.RunJanitor(ctx, time.Minute)
		return mem, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, errors.Wrapf(err, "failed to ping redis at %s", cfg.RedisAddr)
	}
	return cart.NewRedisStore(client, cfg.SessionIdleTimeout), client.Close, nil
}

func newServer(ctx context.Context, cfg *config.Config, database *sql.DB, store cart.Store) (http.Handler, error) {
	productSvc := product.NewService(product.NewRepository(database))
	categorySvc := category.NewService(category.NewRepository(database))
	detailSvc := productdetail.NewService(productdetail.NewRepository(database))
	cartSvc := cart.NewService(store, productSvc)
	orderSvc := order.NewService(order.NewRepository(database), cartSvc, order.Options{
		StrictTransitions: cfg.OrderStrictTransitions,
	})

	schema, err := graph.NewSchema(&graph.Resolver{
		ProductSvc:  productSvc,
		CategorySvc: categorySvc,
		DetailSvc:   detailSvc,
		CartSvc:     cartSvc,
		OrderSvc:    orderSvc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build graphql schema")
	}

	limiter := middleware.NewRateLimiter(cfg.InternalAPIKey)
	go limiter.RunCleanup(ctx)

	return setupRouter(cfg, graph.NewHandler(schema), limiter), nil
}

func setupRouter(cfg *config.Config, query http.Handler, limiter *middleware.RateLimiter) http.Handler {
	sessionOpts := session.DefaultOptions()
	if cfg.SessionCookieName != "" {
		sessionOpts.CookieName = cfg.SessionCookieName
	}
	if cfg.SessionIdleTimeout > 0 {
		sessionOpts.IdleTimeout = cfg.SessionIdleTimeout
	}
	sessionOpts.Secure = cfg.AppEnv == "production"

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(metrics.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(session.Middleware(sessionOpts))
		r.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)))
		r.Use(limiter.Middleware)
		r.Handle("/query", query)
	})

	return r
}
