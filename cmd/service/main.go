package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/courier_balance_get"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/order_accept_put"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_status_put"
	"marketplace/internal/handlers/rest/order_timeline_get"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/grpcserver"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("app", "marketplace"))

	mainLog.Info("starting marketplace order service")

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}
	if err := cfg.ValidateServer(); err != nil {
		mainLog.Error("validate server config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	app, cleanup, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx outlives SIGTERM and is cancelled only after server.Shutdown
	// so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, app, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	grpcServer := grpcserver.New(log.With(logger.NewField("component", "grpc-health")))
	grpcServerErr := make(chan error, 1)
	go func() {
		defer close(grpcServerErr)
		if err := grpcServer.ListenAndServe(cfg.Server.GRPCHealthPort); err != nil {
			grpcServerErr <- err
		}
	}()
	grpcServer.SetServing(true)

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	grpcServer.SetServing(false)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// ctx is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	err = server.Shutdown(shutdownCtx)

	var pprofErr error
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	grpcServer.Stop(shutdownCtx)

	stopOngoingGracefully()
	if err != nil || pprofErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	app.BackgroundWorkers.Wait()
	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterBurst, float64(cfg.Server.RateLimiterQPS))))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	authed := router.NewRoute().Subrouter()
	authed.Use(auth.Middleware(log, auth.NewVerifier(cfg.Auth.JWTSecret)))

	customer := auth.Require(log, entities.RoleCustomer)
	restaurant := auth.Require(log, entities.RoleRestaurant)
	courier := auth.Require(log, entities.RoleCourier)
	staff := auth.Require(log, entities.RoleRestaurant, entities.RoleCourier)
	anyone := auth.Require(log, entities.RoleCustomer, entities.RoleRestaurant, entities.RoleCourier)

	authed.Handle("/orders", customer(order_post.New(log, app.ServiceOrder))).Methods(http.MethodPost)
	authed.Handle("/orders/customer", customer(orders_get.New(log, "orders_customer_get",
		orders_get.Scoped(app.ServiceOrder.ListCustomerOrders)))).Methods(http.MethodGet)
	authed.Handle("/orders/restaurant", restaurant(orders_get.New(log, "orders_restaurant_get",
		orders_get.Scoped(app.ServiceOrder.ListRestaurantOrders)))).Methods(http.MethodGet)

	authed.Handle("/orders/delivery/available", courier(orders_get.New(log, "orders_available_get",
		orders_get.Unscoped(app.ServiceDelivery.ListAvailable)))).Methods(http.MethodGet)
	authed.Handle("/orders/delivery/active", courier(orders_get.New(log, "orders_active_get",
		orders_get.Scoped(app.ServiceDelivery.ListActive)))).Methods(http.MethodGet)
	authed.Handle("/orders/delivery/history", courier(orders_get.New(log, "orders_delivered_get",
		orders_get.Scoped(app.ServiceDelivery.ListHistory)))).Methods(http.MethodGet)

	authed.Handle("/orders/{id}/accept", courier(order_accept_put.New(log, app.ServiceDelivery))).Methods(http.MethodPut)
	authed.Handle("/orders/{id}/status", staff(order_status_put.New(log, app.ServiceLifecycle))).Methods(http.MethodPut)
	authed.Handle("/orders/{id}/history", anyone(order_timeline_get.New(log, app.ServiceHistory))).Methods(http.MethodGet)

	authed.Handle("/couriers/me/balance", courier(courier_balance_get.New(log, app.ServiceBalance))).Methods(http.MethodGet)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
