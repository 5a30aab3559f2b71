package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID_ContextRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", GetRequestIDFromContext(ctx))
}

func TestRequestID_MissingReturnsEmpty(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLogger_RoundTripAndFallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-123"))

	ctx := WithLogger(context.Background(), scoped)

	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
