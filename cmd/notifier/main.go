package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"flight-booking/cmd/internal/eventbus"
	"flight-booking/cmd/internal/logger"
	"flight-booking/config"
	"flight-booking/db"
	"flight-booking/repositories"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging, "notifier")
	defer logger.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MongoDB 초기화
	if err := db.InitMongo(ctx, cfg.Mongo); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer db.DisconnectMongo(context.Background())

	// EventBus 초기화 및 토픽 보장
	brokers := eventbus.GetBrokers()
	if err := eventbus.EnsureTopics(brokers, eventbus.TopicBookingEvents, cfg.Kafka.Partitions); err != nil {
		logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
	}

	bus, err := eventbus.NewKafkaEventBus(brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	recorder := NewRecorder(repositories.NewBookingEventRepository(db.Database()))
	groupID := eventbus.GetGroupID() + "-notifier"

	logger.Log.Info("starting notifier service with eventbus...")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := bus.Subscribe(ctx, groupID, eventbus.TopicBookingEvents, recorder.Handle); err != nil && err != context.Canceled {
			logger.Log.Errorf("eventbus subscribe error: %v", err)
		}
	}()

	<-sigChan
	logger.Log.Info("received shutdown signal, shutting down notifier service...")

	cancel()
	wg.Wait()

	logger.Log.Info("notifier service stopped")
}
