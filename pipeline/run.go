package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Frebklin/haystack/errors"
	"github.com/Frebklin/haystack/logger"
)

// Event describes one component execution within a run, in trace order.
type Event struct {
	RunID     string
	Pipeline  string
	Component string
	// Visits is the component's visit count including this execution.
	Visits int
	// Inputs is the assembled invocation argument map. Shared with the
	// component, not a copy.
	Inputs map[string]any
	// Outputs is the validated result map. Nil when validation failed.
	Outputs  map[string]any
	Duration time.Duration
}

// runState is the transient per-invocation state: socket buffers, visit
// counters, the readiness queue, and collected terminal outputs. It is
// discarded when Run returns.
type runState struct {
	st      *store
	res     *resolver
	visits  []int
	inLoop  []bool
	live    []bool
	queue   []int
	inQueue []bool
	final   map[string]map[string]any
	runID   string
	log     *logger.Logger
}

// Run executes the pipeline until no component is ready and no buffered
// value can unblock one. Inputs may be nested per component
// (component -> socket -> value) or flat (socket -> value, delivered to
// every component exposing a free input socket of that name). The result
// maps each component that produced a value on an unconnected output
// socket to those values.
//
// Run aborts with a max-loops error when a loop-group component exceeds
// the configured bound, with a runtime error when a component returns a
// malformed result, and with the component's own error, unmodified, when
// one fails.
func (p *Pipeline) Run(ctx context.Context, inputs map[string]any) (map[string]map[string]any, error) {
	start := time.Now()
	rs := &runState{
		st:      newStore(),
		visits:  make([]int, len(p.graph.nodes)),
		inLoop:  p.graph.loopMembers(),
		inQueue: make([]bool, len(p.graph.nodes)),
		final:   make(map[string]map[string]any),
		runID:   uuid.NewString(),
	}
	rs.res = &resolver{g: p.graph, st: rs.st}
	rs.log = p.log.WithFields(logger.Fields(
		logger.FieldPipeline, p.name,
		logger.FieldRunID, rs.runID,
	))

	if err := p.seed(rs, inputs); err != nil {
		rs.log.Error("invalid run inputs", logger.ErrorFields("seed", err))
		return nil, err
	}

	rs.log.Info("pipeline run started", logger.Fields("components", len(p.graph.nodes)))

	steps := 0
	p.refresh(rs)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, ok := p.selectNext(rs)
		if !ok {
			break
		}
		if err := p.execute(ctx, rs, next); err != nil {
			rs.log.Error("pipeline run aborted", logger.ErrorFields("run", err))
			return nil, err
		}
		steps++
		p.refresh(rs)
	}

	rs.log.Info("pipeline run finished", logger.Fields(
		"steps", steps,
		"dead_data", !rs.st.empty(),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return rs.final, nil
}

// selectNext returns the component to execute: the head of the readiness
// queue, or the stalled-cycle fallback when the queue is empty.
func (p *Pipeline) selectNext(rs *runState) (int, bool) {
	if len(rs.queue) > 0 {
		next := rs.queue[0]
		rs.queue = rs.queue[1:]
		rs.inQueue[next] = false
		return next, true
	}
	return rs.res.stalled(rs.visits, rs.live)
}

// refresh recomputes liveness and reconciles the readiness queue.
// Components that just became ready are appended in registration order
// (the tie-break for a single scheduling step); components that ceased
// to be ready are dropped. Components already queued keep their position,
// which makes the queue FIFO over readiness achievements.
func (p *Pipeline) refresh(rs *runState) {
	rs.live = rs.res.live(rs.visits)
	for i := range p.graph.nodes {
		ready := rs.res.ready(i, rs.visits, rs.live)
		if ready && !rs.inQueue[i] {
			rs.queue = append(rs.queue, i)
			rs.inQueue[i] = true
		} else if !ready && rs.inQueue[i] {
			rs.queue = remove(rs.queue, i)
			rs.inQueue[i] = false
		}
	}
}

func remove(queue []int, v int) []int {
	for i, q := range queue {
		if q == v {
			return append(queue[:i], queue[i+1:]...)
		}
	}
	return queue
}

// seed validates the caller-supplied inputs and delivers them to the
// socket buffers. A top-level value that is itself a socket map is
// treated as nested component inputs; anything else is a flat socket
// value distributed to every component with a free input socket of that
// name.
func (p *Pipeline) seed(rs *runState, inputs map[string]any) error {
	for key, value := range inputs {
		n, idx, isComponent := p.graph.lookup(key)
		sockets, isMap := value.(map[string]any)

		if isComponent && isMap {
			for socket, v := range sockets {
				in, ok := n.input(socket)
				if !ok {
					return errors.InvalidInput("component %q has no input socket %q (available: %s)",
						key, socket, inputNames(n))
				}
				rs.st.deliver(idx, socket, v, in.Variadic)
			}
			continue
		}
		if isComponent {
			return errors.InvalidInput("inputs for component %q must be a map of socket name to value, got %T",
				key, value)
		}
		if err := p.seedFlat(rs, key, value); err != nil {
			return err
		}
	}
	return nil
}

// seedFlat delivers one flat input to every component exposing a free
// (unconnected) input socket of that name.
func (p *Pipeline) seedFlat(rs *runState, socket string, value any) error {
	delivered := false
	for idx, n := range p.graph.nodes {
		in, ok := n.input(socket)
		if !ok || p.graph.hasIncoming(idx, socket) {
			continue
		}
		rs.st.deliver(idx, socket, value, in.Variadic)
		delivered = true
	}
	if !delivered {
		return errors.InvalidInput("no component has a free input socket %q", socket)
	}
	return nil
}

// execute runs one component: enforces the loop bound, assembles inputs
// from drained buffers merged over defaults, invokes the component,
// validates the result shape, and routes outputs downstream.
func (p *Pipeline) execute(ctx context.Context, rs *runState, i int) error {
	n := p.graph.nodes[i]

	if rs.inLoop[i] && rs.visits[i] > p.maxLoops {
		return errors.MaxLoops(p.name, n.name, p.maxLoops)
	}
	rs.visits[i]++

	args := p.assemble(rs, i)

	start := time.Now()
	result, err := n.comp.Run(ctx, args)
	duration := time.Since(start)
	if err != nil {
		// Component-defined failure, surfaced unmodified.
		return err
	}

	outputs, verr := validateOutput(n, result)
	if verr != nil {
		return verr
	}

	rs.log.Debug("component executed", logger.Fields(
		logger.FieldComponent, n.name,
		logger.FieldVisits, rs.visits[i],
		logger.FieldDuration, duration.Milliseconds(),
	))

	// Route in declared socket order, never map order, so values arriving
	// at a shared variadic socket accumulate deterministically.
	for _, out := range n.outputs {
		value, fired := outputs[out.Name]
		if !fired {
			continue
		}
		conns := p.graph.outgoing(i, out.Name)
		if len(conns) == 0 {
			if rs.final[n.name] == nil {
				rs.final[n.name] = make(map[string]any)
			}
			rs.final[n.name][out.Name] = value
			continue
		}
		for _, c := range conns {
			dest, _ := p.graph.nodes[c.to].input(c.toSocket)
			rs.st.deliver(c.to, c.toSocket, value, dest.Variadic)
		}
	}

	if p.observer != nil {
		p.observer(Event{
			RunID:     rs.runID,
			Pipeline:  p.name,
			Component: n.name,
			Visits:    rs.visits[i],
			Inputs:    args,
			Outputs:   outputs,
			Duration:  duration,
		})
	}
	return nil
}

// assemble builds the invocation argument map for one component: buffers
// are drained (delivered values win over defaults), scalar sockets get
// the single value, variadic sockets get the accumulated slice. A socket
// with neither a value nor a default is omitted.
func (p *Pipeline) assemble(rs *runState, i int) map[string]any {
	n := p.graph.nodes[i]
	args := make(map[string]any, len(n.inputs))
	for _, in := range n.inputs {
		vals := rs.st.drain(i, in.Name)
		if in.Variadic {
			if len(vals) > 0 {
				args[in.Name] = vals
			} else if in.HasDefault {
				args[in.Name] = []any{in.Default}
			}
			continue
		}
		if len(vals) > 0 {
			args[in.Name] = vals[len(vals)-1]
		} else if in.HasDefault {
			args[in.Name] = in.Default
		}
	}
	return args
}

// validateOutput checks a component result against its contract: a
// non-nil, non-empty map from output-socket name to value. Unknown keys
// are tolerated (and ignored by routing); a missing key means that
// socket does not fire this step.
func validateOutput(n *node, result any) (map[string]any, error) {
	m, ok := result.(map[string]any)
	if !ok {
		return nil, errors.Runtime(n.name, "expected a map of output socket name to value, got %T", result)
	}
	if len(m) == 0 {
		return nil, errors.Runtime(n.name, "returned no outputs")
	}
	return m, nil
}
