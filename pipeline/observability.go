package pipeline

import (
	"context"
	"time"

	"github.com/Frebklin/haystack/component"
	"github.com/Frebklin/haystack/logger"
	"github.com/Frebklin/haystack/observability"
)

// WithTracing wraps a component with OpenTelemetry span creation.
// Each execution creates a span named "{prefix}.{name}".
func WithTracing(comp component.Component, prefix, name string) component.Component {
	return &tracingComponent{inner: comp, span: prefix + "." + name, name: name}
}

type tracingComponent struct {
	inner component.Component
	span  string
	name  string
}

func (c *tracingComponent) InputSockets() []component.InputSocket   { return c.inner.InputSockets() }
func (c *tracingComponent) OutputSockets() []component.OutputSocket { return c.inner.OutputSockets() }

func (c *tracingComponent) Run(ctx context.Context, inputs map[string]any) (any, error) {
	ctx, span := observability.StartSpan(ctx, c.span)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrComponent, c.name)

	result, err := c.inner.Run(ctx, inputs)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return result, err
}

// WithLogging wraps a component with execution logging: name, duration,
// and success or error status.
func WithLogging(comp component.Component, name string, log *logger.Logger) component.Component {
	return &loggingComponent{inner: comp, name: name, log: log}
}

type loggingComponent struct {
	inner component.Component
	name  string
	log   *logger.Logger
}

func (c *loggingComponent) InputSockets() []component.InputSocket   { return c.inner.InputSockets() }
func (c *loggingComponent) OutputSockets() []component.OutputSocket { return c.inner.OutputSockets() }

func (c *loggingComponent) Run(ctx context.Context, inputs map[string]any) (any, error) {
	start := time.Now()
	result, err := c.inner.Run(ctx, inputs)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldComponent: c.name,
		logger.FieldDuration:  duration.Milliseconds(),
	}
	if err != nil {
		fields[logger.FieldError] = err.Error()
		c.log.Error("component failed", fields)
	} else {
		c.log.Debug("component completed", fields)
	}
	return result, err
}
