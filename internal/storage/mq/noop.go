package mq

import "context"

var _ Producer = (*NoopProducer)(nil)

// NoopProducer discards every message. It stands in for Kafka when no broker
// is configured, keeping event publication a soft dependency of the server.
type NoopProducer struct{}

func (NoopProducer) Produce(context.Context, ProduceMsg) error { return nil }

func (NoopProducer) Close() {}
