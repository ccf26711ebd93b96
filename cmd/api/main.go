package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"flight-booking/cmd/api/auth"
	"flight-booking/cmd/api/handlers"
	"flight-booking/cmd/api/router"
	"flight-booking/cmd/api/services"
	"flight-booking/cmd/internal/eventbus"
	"flight-booking/cmd/internal/logger"
	"flight-booking/config"
	"flight-booking/db"
	"flight-booking/repositories"
)

// @title           Flight Booking API
// @version         1.0
// @description     Flight search, booking and administration API
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging, "api")
	defer logger.Close()

	if err := run(cfg); err != nil {
		logger.Log.Errorf("api server stopped with error: %v", err)
		os.Exit(1)
	}
}

func run(cfg config.AppConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL
	tracerLevel := "none"
	if cfg.Postgres.LogQueries {
		tracerLevel = "debug"
	}
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres, logger.NewPgxTracer(tracerLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}
	defer pool.Close()

	if cfg.Postgres.MigrateOnRun {
		applied, err := db.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		if len(applied) > 0 {
			logger.InfoWithFields("migrations applied", logger.Fields{"versions": applied})
		}
	}

	// MongoDB (세션, 감사 로그)
	if err := db.InitMongo(ctx, cfg.Mongo); err != nil {
		return fmt.Errorf("failed to initialize MongoDB: %w", err)
	}
	defer func() {
		if err := db.DisconnectMongo(context.Background()); err != nil {
			logger.Log.Warnf("mongo disconnect: %v", err)
		}
	}()

	// EventBus: 브로커가 없으면 NopBus
	var bus eventbus.EventBus = eventbus.NopBus{}
	if brokers, ok := eventbus.LookupBrokers(); ok {
		for _, t := range eventbus.AllTopics {
			if err := eventbus.EnsureTopics(brokers, t, cfg.Kafka.Partitions); err != nil {
				logger.Log.Errorf("failed to ensure eventbus topics for %s: %v", t.Base(), err)
			}
		}
		kafkaBus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			return fmt.Errorf("failed to create event bus: %w", err)
		}
		bus = kafkaBus
	} else {
		logger.Log.Warn("KAFKA_BOOTSTRAP_SERVERS is not set, booking events will not be published")
	}
	defer bus.Close()
	publisher := eventbus.NewBookingPublisher(bus, cfg.Kafka.MaxRetry)

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		return err
	}

	store := repositories.NewStore(pool)
	sessions := repositories.NewSessionRepository(db.Database())
	eventLog := repositories.NewBookingEventRepository(db.Database())

	accounts := services.NewAccountService(store, sessions, jwtManager, publisher, cfg.Session.TTL)
	engine, err := router.New(router.Deps{
		Accounts: accounts,
		Flights:  services.NewFlightService(store, publisher),
		Orders:   services.NewOrderService(store, publisher),
		Admin:    services.NewAdminService(store, accounts, sessions, eventLog, publisher),
		Cookie: auth.CookieOptions{
			Name:   cfg.Session.CookieName,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		Postgres: store,
		Mongo: handlers.PingFunc(func(ctx context.Context) error {
			return db.Client().Ping(ctx, readpref.Primary())
		}),
	})
	if err != nil {
		return err
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      corsHandler.Handler(engine),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoWithFields("api server listening", logger.Fields{"addr": srv.Addr})
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

	logger.Log.Info("received shutdown signal, shutting down api server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Log.Info("api server stopped")
	return nil
}
