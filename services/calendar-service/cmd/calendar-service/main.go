package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/daybook-cal/daybook/libs/config"
	"github.com/daybook-cal/daybook/libs/db"
	"github.com/daybook-cal/daybook/libs/httpx"
	"github.com/daybook-cal/daybook/libs/kafkax"
	otelx "github.com/daybook-cal/daybook/libs/otel"
	"github.com/daybook-cal/daybook/libs/runtime"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/calendar"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/handlers"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/storage"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/store"
	calsync "github.com/daybook-cal/daybook/services/calendar-service/internal/sync"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/synclog"
)

func main() {
	service := config.String("SERVICE_NAME", "calendar-service")
	port, err := config.Port("PORT", "8080")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	// The record store and change log run on Postgres when configured,
	// else fully in memory for single-node and dev use.
	var (
		pool      *db.Pool
		apptStore store.Store
		logStore  synclog.Store
		users     handlers.UserSource
		dedupe    calsync.Deduper
		readiness []runtime.ReadyCheck
	)
	if dbURL := config.String("DATABASE_URL", ""); dbURL != "" {
		pool, err = db.Open(ctx, dbURL)
		if err != nil {
			logger.Error("db connection failed", "err", err)
			panic(err)
		}
		defer pool.Close()
		apptStore = storage.NewAppointmentRepository(pool)
		logStore = synclog.NewRepository(pool)
		users = storage.NewUserRepository(pool)
		dedupe = storage.NewInboxRepository(pool)
		readiness = append(readiness, runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)})
	} else {
		logger.Warn("no DATABASE_URL configured; using in-memory store")
		apptStore = store.NewMemory()
		logStore = synclog.NewMemory()
		users = handlers.StaticUser{
			Username: config.String("CALENDAR_USER", "owner"),
			Hash:     config.String("CALENDAR_PASSWORD_HASH", ""),
		}
	}

	model := calendar.New(apptStore, logger, calendar.Config{
		SoftDelete: config.Bool("SYNC_SOFT_DELETE", false),
	})
	if err := model.Open(ctx); err != nil {
		logger.Error("initial index build failed", "err", err)
		panic(err)
	}

	recon := synclog.NewReconciler(logStore, logger)
	recon.SetEnabled(config.Bool("SYNC_ENABLED", false))
	model.OnChange(recon.HandleChange)

	brokers := config.String("KAFKA_BROKERS", "")
	if brokers != "" {
		readiness = append(readiness, runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(brokers)})

		publisher := calsync.NewPublisher(model, recon, logger, calsync.PublisherConfig{
			Brokers:   brokers,
			Topic:     config.String("KAFKA_PUBLISH_TOPIC", "calendar.changes"),
			PollEvery: config.Duration("SYNC_DRAIN_INTERVAL", 2*time.Second),
		})
		go publisher.Run(ctx)

		if topic := config.String("KAFKA_CONSUME_TOPIC", ""); topic != "" {
			consumer := calsync.NewConsumer(model, dedupe, logger, calsync.ConsumerConfig{
				Brokers: brokers,
				GroupID: config.String("KAFKA_GROUP_ID", "calendar-service"),
				Topic:   topic,
			})
			go consumer.Run(ctx)
		}
	}

	if err := startGrpcServer(ctx, logger, recon); err != nil {
		logger.Error("grpc server start failed", "err", err)
	}

	var rdb *redis.Client
	if redisAddr := config.String("REDIS_ADDR", ""); redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: redisAddr})
		readiness = append(readiness, runtime.ReadyCheck{Name: "redis", Check: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	secret := config.String("JWT_SECRET", "")
	if secret == "" {
		logger.Warn("no JWT_SECRET configured; api is unauthenticated")
	}
	authHandler := handlers.NewAuthHandler(users, secret,
		config.Duration("TOKEN_TTL", time.Hour), logger)
	calHandler := handlers.NewCalendarHandler(model, recon, logger)

	mux := runtime.NewBaseMuxWithReady(readiness...)
	mux.HandleFunc("/v1/login", authHandler.Login)

	api := http.NewServeMux()
	calHandler.Register(api)
	mux.Handle("/v1/", handlers.RequireAuth(secret, api))

	middlewares := []httpx.Middleware{
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(1 << 20),
	}
	if origins := config.String("CORS_ORIGINS", ""); origins != "" {
		middlewares = append(middlewares, httpx.WithCORS(httpx.CORSPolicy{
			AllowedOrigins: strings.Split(origins, ","),
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         10 * time.Minute,
		}))
	}
	rateLimit := config.Int("RATE_LIMIT", 120)
	rateWindow := config.Duration("RATE_LIMIT_WINDOW", time.Minute)
	if rdb != nil {
		limiter := httpx.NewRedisRateLimiter(rdb, rateLimit, rateWindow, service)
		middlewares = append(middlewares, limiter.Middleware(logger, true))
	} else {
		middlewares = append(middlewares, httpx.NewRateLimiter(rateLimit, rateWindow).Middleware())
	}
	httpHandler := httpx.Chain(mux, middlewares...)
	httpHandler = otelhttp.NewHandler(httpHandler, "calendar")

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
