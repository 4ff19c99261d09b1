package component

import "context"

// Component is the execution unit scheduled by a pipeline.
//
// Run receives one value per input socket: scalar sockets map to the
// delivered (or default) value, variadic sockets map to a []any holding
// values in arrival order. It returns a map from output-socket name to
// value; returning anything else is a contract violation the engine
// rejects. Errors returned by Run are surfaced to the caller unmodified.
type Component interface {
	InputSockets() []InputSocket
	OutputSockets() []OutputSocket
	Run(ctx context.Context, inputs map[string]any) (any, error)
}

// RunFunc is the invocation entry point of a func-backed component.
type RunFunc func(ctx context.Context, inputs map[string]any) (any, error)

// Config configures a func-backed component.
type Config struct {
	// Inputs declares the component's input sockets.
	Inputs []InputSocket
	// Outputs declares the component's output sockets.
	Outputs []OutputSocket
	// Run is the invocation entry point.
	Run RunFunc
}

// New builds a Component from a Config. Useful for ad hoc components in
// tests and for wrapping plain functions without declaring a type.
func New(cfg Config) Component {
	return &funcComponent{cfg: cfg}
}

type funcComponent struct {
	cfg Config
}

func (c *funcComponent) InputSockets() []InputSocket   { return c.cfg.Inputs }
func (c *funcComponent) OutputSockets() []OutputSocket { return c.cfg.Outputs }

func (c *funcComponent) Run(ctx context.Context, inputs map[string]any) (any, error) {
	return c.cfg.Run(ctx, inputs)
}
