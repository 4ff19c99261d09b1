package pipeline

import (
	"github.com/Frebklin/haystack/component"
	"github.com/Frebklin/haystack/config"
	"github.com/Frebklin/haystack/logger"
)

// DefaultMaxLoops bounds re-executions of loop-group components when no
// explicit bound is configured.
const DefaultMaxLoops = 10

// Pipeline owns a set of named components and the connections between
// their sockets. Configuration is immutable once runs start; per-run
// state lives in the run driver and is discarded when Run returns.
//
// A Pipeline must not execute two runs concurrently: one run must finish
// or abort before the next may start.
type Pipeline struct {
	name     string
	maxLoops int
	log      *logger.Logger
	observer func(Event)
	graph    *graph
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithName sets the pipeline name used in logs and error details.
func WithName(name string) Option {
	return func(p *Pipeline) { p.name = name }
}

// WithMaxLoops sets the bound on re-executions of any loop-group
// component within one run. Non-positive values fall back to the default.
func WithMaxLoops(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxLoops = n
		}
	}
}

// WithLogger sets the logger used by the run driver.
func WithLogger(log *logger.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithObserver registers a callback invoked after every component
// execution. Observers see executions in trace order and must not block.
func WithObserver(fn func(Event)) Option {
	return func(p *Pipeline) { p.observer = fn }
}

// New creates an empty pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		name:     "pipeline",
		maxLoops: DefaultMaxLoops,
		log:      logger.Nop(),
		graph:    newGraph(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromSettings creates a pipeline configured from loaded settings.
func FromSettings(s *config.Settings, opts ...Option) *Pipeline {
	base := []Option{
		WithName(s.Name),
		WithMaxLoops(s.MaxLoopsAllowed),
		WithLogger(logger.New(&s.Logging)),
	}
	return New(append(base, opts...)...)
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string { return p.name }

// MaxLoopsAllowed returns the configured loop bound.
func (p *Pipeline) MaxLoopsAllowed() int { return p.maxLoops }

// AddComponent registers a component under a unique name.
func (p *Pipeline) AddComponent(name string, comp component.Component) error {
	if err := p.graph.add(name, comp); err != nil {
		return err
	}
	p.log.Debug("component added", logger.Fields(
		logger.FieldPipeline, p.name,
		logger.FieldComponent, name,
	))
	return nil
}

// Connect wires an output socket to an input socket. A path is either
// "component" or "component.socket"; omitted socket names resolve to the
// single compatible free pair. Connections are immutable for the
// pipeline's lifetime.
func (p *Pipeline) Connect(sourcePath, destPath string) error {
	if err := p.graph.connect(sourcePath, destPath); err != nil {
		p.log.Error("connection failed", logger.Fields(
			logger.FieldPipeline, p.name,
			"source", sourcePath,
			"destination", destPath,
			logger.FieldError, err.Error(),
		))
		return err
	}
	return nil
}

// ComponentNames returns registered component names in registration order.
func (p *Pipeline) ComponentNames() []string {
	names := make([]string, len(p.graph.nodes))
	for i, n := range p.graph.nodes {
		names[i] = n.name
	}
	return names
}
