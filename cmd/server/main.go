package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appgrouphandler "landscape/internal/appgroup/handler"
	appgroupmetrics "landscape/internal/appgroup/metrics"
	appgroupservice "landscape/internal/appgroup/service"
	appgroupstore "landscape/internal/appgroup/store"
	apphandler "landscape/internal/application/handler"
	appservice "landscape/internal/application/service"
	appstore "landscape/internal/application/store"
	"landscape/internal/association"
	clhandler "landscape/internal/changelog/handler"
	clmetrics "landscape/internal/changelog/metrics"
	clpublisher "landscape/internal/changelog/publisher"
	clservice "landscape/internal/changelog/service"
	clstore "landscape/internal/changelog/store"
	costhandler "landscape/internal/cost/handler"
	costservice "landscape/internal/cost/service"
	coststore "landscape/internal/cost/store"
	"landscape/internal/httpapi"
	invhandler "landscape/internal/involvement/handler"
	invservice "landscape/internal/involvement/service"
	invstore "landscape/internal/involvement/store"
	jwttoken "landscape/internal/jwt_token"
	"landscape/internal/platform/config"
	"landscape/internal/platform/db"
	"landscape/internal/platform/httpserver"
	"landscape/internal/platform/kafka"
	"landscape/internal/platform/logger"
	"landscape/internal/platform/metrics"
	"landscape/internal/platform/redis"
	"landscape/internal/ratelimit"
	ratinghandler "landscape/internal/rating/handler"
	ratingmetrics "landscape/internal/rating/metrics"
	"landscape/internal/rating/permission"
	ratingservice "landscape/internal/rating/service"
	ratingstore "landscape/internal/rating/store"
	"landscape/internal/selector"
	selmetrics "landscape/internal/selector/metrics"
	selstore "landscape/internal/selector/store"
	"landscape/internal/userrole"
	"landscape/pkg/platform/middleware/auth"
)

func main() {
	configDir := flag.String("config", "", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	conn, err := db.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx, conn, log); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := metrics.New(reg)

	checks := map[string]httpapi.HealthCheck{"database": conn.PingContext}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var limiter ratelimit.Limiter
	if redisClient != nil {
		defer redisClient.Close()
		checks["redis"] = redisClient.Health
		if cfg.RateLimit.WritesPerMinute > 0 {
			limiter = ratelimit.NewRedisLimiter(redisClient.Client, cfg.RateLimit.WritesPerMinute, time.Minute)
		}
	}

	changeLogOpts := []clservice.Option{
		clservice.WithLogger(log),
		clservice.WithMetrics(clmetrics.New(reg)),
	}
	producer, err := kafka.NewProducer(cfg.Kafka, log)
	if err != nil {
		return err
	}
	if producer != nil {
		defer producer.Close()
		if err := producer.EnsureTopic(ctx, cfg.Kafka.Partitions, cfg.Kafka.Replication); err != nil {
			return err
		}
		checks["kafka"] = producer.Ping
		changeLogOpts = append(changeLogOpts, clservice.WithPublisher(clpublisher.NewKafka(producer)))
	}
	changeLog := clservice.New(clstore.New(conn), changeLogOpts...)

	selectionStore := selstore.New(conn)
	compiler := selector.NewCompiler(selectionStore,
		selector.WithLogger(log),
		selector.WithMetrics(selmetrics.New(reg)),
	)
	appSelector := selector.NewApplicationSelector(compiler, selectionStore)

	appGroups := appgroupservice.New(appgroupstore.New(conn),
		association.NewStore(conn, association.ApplicationEntries),
		association.NewStore(conn, association.ChangeInitiativeEntries),
		appgroupservice.WithLogger(log),
		appgroupservice.WithMetrics(appgroupmetrics.New(reg)),
		appgroupservice.WithChangeLog(changeLog),
	)
	applications := appservice.New(appstore.New(conn), appSelector, appservice.WithLogger(log))
	costs := costservice.New(coststore.New(conn), appSelector, costservice.WithLogger(log))

	involvementStore := invstore.New(conn)
	involvements := invservice.New(involvementStore,
		invservice.WithLogger(log),
		invservice.WithChangeLog(changeLog),
	)

	ratingMetrics := ratingmetrics.New(reg)
	ratings := ratingstore.New(conn)
	checker := permission.New(ratings, userrole.New(conn), involvementStore,
		permission.WithLogger(log),
		permission.WithMetrics(ratingMetrics),
	)
	ratingSvc := ratingservice.New(ratings, compiler, appSelector,
		ratingservice.WithLogger(log),
		ratingservice.WithMetrics(ratingMetrics),
		ratingservice.WithChangeLog(changeLog),
	)

	router := httpapi.NewRouter(httpapi.Config{
		Logger:         log,
		Metrics:        httpMetrics,
		Gatherer:       reg,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		Authenticate:   authenticator(cfg.Auth, log),
		WriteLimit:     ratelimit.NewMiddleware(limiter, log, httpMetrics),
		HealthChecks:   checks,
	},
		appgrouphandler.New(appGroups, log),
		apphandler.New(applications, log),
		costhandler.New(costs, log),
		clhandler.New(changeLog, log),
		invhandler.New(involvements, log),
		ratinghandler.New(ratingSvc, checker, log),
	)

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Server.RequestTimeout)
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting landscape server", "addr", cfg.Server.Addr, "driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// authenticator prefers bearer tokens; without a signing key it trusts the
// development user header.
func authenticator(cfg config.Auth, log *slog.Logger) func(http.Handler) http.Handler {
	if cfg.JWTSigningKey == "" {
		log.Warn("no jwt signing key configured, trusting dev user header", "header", cfg.DevUserHeader)
		return auth.RequireDevUser(cfg.DevUserHeader, log)
	}
	tokens := jwttoken.NewValidator(jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.Issuer, cfg.Audience))
	return auth.RequireAuth(tokens, log)
}
