package observability

import (
	"context"
	"errors"
	"testing"
)

// Without a registered tracer provider all helpers operate on no-op spans
// and must not panic.
func TestHelpersWithNoopProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), SpanComponentRun)
	defer span.End()

	SetSpanAttribute(ctx, AttrComponent, "retriever")
	SetSpanAttribute(ctx, AttrVisits, 2)
	SetSpanAttribute(ctx, AttrDurationMs, 1.5)
	SetSpanError(ctx, errors.New("boom"))

	if got := SpanFromContext(ctx); got == nil {
		t.Fatal("SpanFromContext returned nil")
	}
}

func TestTracerReturnsNamedTracer(t *testing.T) {
	if Tracer("test") == nil {
		t.Fatal("Tracer returned nil")
	}
}
