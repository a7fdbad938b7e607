package eventheader_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/paulthomas2107/product-graphql/pkg/correlationid"
	"github.com/paulthomas2107/product-graphql/pkg/eventheader"
)

func TestRecordRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		SpanID:     trace.SpanID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)
	ctx = correlationid.NewContext(ctx, "abc-123")

	headers := eventheader.Build(ctx)
	assert.Equal(t, "abc-123", headers[correlationid.Header])
	assert.Contains(t, headers, "traceparent")

	rec := &kgo.Record{}
	for k, v := range headers {
		rec.Headers = append(rec.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}

	// the consume side sees only the record
	got := eventheader.FromRecord(context.Background(), rec)

	id, ok := correlationid.FromContext(got)
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, spanCtx.TraceID(), trace.SpanContextFromContext(got).TraceID())
}

func TestFromRecordWithoutHeaders(t *testing.T) {
	got := eventheader.FromRecord(context.Background(), &kgo.Record{})

	_, ok := correlationid.FromContext(got)
	assert.False(t, ok)
}
