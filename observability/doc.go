// Package observability provides OpenTelemetry tracing helpers for
// instrumented pipelines and components.
//
// The package works against the global tracer provider registered by the
// host process. When no provider is installed, spans are no-ops and all
// helpers are safe to call.
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanComponentRun)
//	defer span.End()
//	observability.SetSpanAttribute(ctx, observability.AttrComponent, "retriever")
package observability
