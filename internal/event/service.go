package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/paulthomas2107/product-graphql/internal/storage/mq"
)

// Service consumes product change events. It exists so a deployment has a
// ready-made subscriber for the topics the server publishes; handlers only
// log today.
type Service struct {
	logger     *slog.Logger
	mqConsumer mq.Consumer
}

// New creates a new event service.
func New(
	logger *slog.Logger,
	mqConsumer mq.Consumer,
) *Service {
	return &Service{
		logger:     logger.With(slog.String("service", "event")),
		mqConsumer: mqConsumer,
	}
}

type CleanupFunc func()

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	if err := registerJSONHandler(s.mqConsumer, TopicProductCreated, s.handleProductCreated); err != nil {
		return nil, err
	}
	if err := registerJSONHandler(s.mqConsumer, TopicProductReplaced, s.handleProductReplaced); err != nil {
		return nil, err
	}
	if err := registerJSONHandler(s.mqConsumer, TopicProductQuantitySet, s.handleProductQuantitySet); err != nil {
		return nil, err
	}
	if err := registerJSONHandler(s.mqConsumer, TopicProductDeleted, s.handleProductDeleted); err != nil {
		return nil, err
	}

	mqCleanup, err := s.mqConsumer.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("run mq consumer: %w", err)
	}

	return func() {
		mqCleanup()
	}, nil
}

func registerJSONHandler[E any](consumer mq.Consumer, topic string, handle func(ctx context.Context, ev E) error) error {
	err := consumer.RegisterHandler(topic, func(ctx context.Context, topic string, payload []byte) error {
		var ev E
		if err := json.Unmarshal(payload, &ev); err != nil {
			return fmt.Errorf("unmarshal %s event: %w", topic, err)
		}

		if err := handle(ctx, ev); err != nil {
			return fmt.Errorf("handle %s event: %w", topic, err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("register %s handler: %w", topic, err)
	}

	return nil
}

func (s *Service) handleProductCreated(ctx context.Context, ev ProductCreatedEvent) error {
	s.logger.InfoContext(ctx, "product created", slog.String("key", ev.Key))
	return nil
}

func (s *Service) handleProductReplaced(ctx context.Context, ev ProductReplacedEvent) error {
	s.logger.InfoContext(ctx, "product replaced", slog.String("key", ev.Key))
	return nil
}

func (s *Service) handleProductQuantitySet(ctx context.Context, ev ProductQuantitySetEvent) error {
	s.logger.InfoContext(ctx, "product quantity set",
		slog.String("key", ev.Key),
		slog.Int("quantity", int(ev.Quantity)),
	)
	return nil
}

func (s *Service) handleProductDeleted(ctx context.Context, ev ProductDeletedEvent) error {
	s.logger.InfoContext(ctx, "product deleted", slog.String("key", ev.Key))
	return nil
}
