package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/paulthomas2107/product-graphql/internal/config"
	"github.com/paulthomas2107/product-graphql/internal/event"
	"github.com/paulthomas2107/product-graphql/internal/graph"
	"github.com/paulthomas2107/product-graphql/internal/http"
	"github.com/paulthomas2107/product-graphql/internal/log"
	"github.com/paulthomas2107/product-graphql/internal/repository"
	"github.com/paulthomas2107/product-graphql/internal/storage/mq"
	"github.com/paulthomas2107/product-graphql/internal/storage/store"
	"github.com/paulthomas2107/product-graphql/internal/telemetry"
	"github.com/paulthomas2107/product-graphql/pkg/cmdutil"
	"github.com/paulthomas2107/product-graphql/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running product-graphql: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log       config.Log
		Couchbase config.Couchbase
		HTTP      config.HTTP
		Kafka     config.Kafka
		Otel      config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	couchbaseStore, err := store.NewCouchbaseStore(cfg.Couchbase)
	if err != nil {
		return fmt.Errorf("error connecting couchbase store: %w", err)
	}
	defer func() {
		if err := couchbaseStore.Close(); err != nil {
			logger.ErrorContext(ctx, "error closing couchbase store", slog.Any("error", err))
		}
	}()

	var producer mq.Producer = mq.NoopProducer{}
	if cfg.Kafka.Enabled() {
		kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	productRepository := repository.NewProductRepository(couchbaseStore)
	eventPublisher := event.NewPublisher(logger, producer)

	resolver := graph.NewResolver(
		logger,
		productRepository,
		eventPublisher,
		validator.NewDefaultValidator(),
	)

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	if cfg.Kafka.Enabled() {
		kafkaConsumer, err := mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}
		defer kafkaConsumer.Close()

		wg.Go(func() {
			svc := event.New(logger, kafkaConsumer)
			cleanup, err := svc.Run(ctx)
			if err != nil {
				panic(fmt.Errorf("error running event service: %w", err))
			}
			logger.InfoContext(ctx, "event service started")

			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	}

	wg.Go(func() {
		svc, err := http.New(cfg.HTTP, logger, resolver, couchbaseStore)
		if err != nil {
			panic(fmt.Errorf("error creating http service: %w", err))
		}

		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
