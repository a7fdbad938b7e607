package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/paulthomas2107/product-graphql/internal/model"
	"github.com/paulthomas2107/product-graphql/internal/storage/mq"
	"github.com/paulthomas2107/product-graphql/pkg/eventheader"
	"github.com/paulthomas2107/product-graphql/pkg/ptr"
)

// Publisher publishes product change events after successful mutations.
// Publication is best-effort: a failed publish is logged and never fails the
// mutation that triggered it.
type Publisher struct {
	logger   *slog.Logger
	producer mq.Producer
}

func NewPublisher(logger *slog.Logger, producer mq.Producer) *Publisher {
	return &Publisher{
		logger:   logger.With(slog.String("service", "event-publisher")),
		producer: producer,
	}
}

func (p *Publisher) Created(ctx context.Context, key string, product model.Product) {
	p.publish(ctx, TopicProductCreated, key, ProductCreatedEvent{Key: key, Product: product})
}

func (p *Publisher) Replaced(ctx context.Context, key string, product model.Product) {
	p.publish(ctx, TopicProductReplaced, key, ProductReplacedEvent{Key: key, Product: product})
}

func (p *Publisher) QuantitySet(ctx context.Context, key string, quantity int32) {
	p.publish(ctx, TopicProductQuantitySet, key, ProductQuantitySetEvent{Key: key, Quantity: quantity})
}

func (p *Publisher) Deleted(ctx context.Context, key string) {
	p.publish(ctx, TopicProductDeleted, key, ProductDeletedEvent{Key: key})
}

func (p *Publisher) publish(ctx context.Context, topic, key string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "error marshaling event",
			slog.String("topic", topic),
			slog.Any("error", fmt.Errorf("marshal event: %w", err)),
		)
		return
	}

	msg := mq.ProduceMsg{
		Topic:        topic,
		Headers:      eventheader.Build(ctx),
		Payload:      body,
		PartitionKey: ptr.New(key),
	}
	if err := p.producer.Produce(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "error publishing event",
			slog.String("topic", topic),
			slog.String("product_key", key),
			slog.Any("error", err),
		)
	}
}
