package pipeline

// resolver decides which components may execute next. Everything here is
// recomputed from the graph and the socket buffers after every execution;
// nothing depends on the order components were registered except explicit
// tie-breaking in the run driver.
type resolver struct {
	g  *graph
	st *store
}

// live computes the set of components that may still execute this run, as
// a least fixpoint:
//
//   - a component holding any buffered input value is live;
//   - a component that has not executed yet is live when every input
//     socket is satisfiable: buffered, defaulted, or fed by a live
//     upstream;
//   - a component that has executed and holds nothing is live only while
//     some live upstream feeds it (loop re-entry).
//
// Unfed cycles are dead under this definition, which is what lets a
// defaulted socket wired to such a cycle fall back to its default.
func (r *resolver) live(visits []int) []bool {
	live := make([]bool, len(r.g.nodes))
	for changed := true; changed; {
		changed = false
		for i, n := range r.g.nodes {
			if live[i] {
				continue
			}
			if r.st.anyBuffered(i, n) {
				live[i] = true
				changed = true
				continue
			}
			if visits[i] == 0 {
				if r.satisfiable(i, n, live) {
					live[i] = true
					changed = true
				}
				continue
			}
			if r.fedByLive(i, n, live) {
				live[i] = true
				changed = true
			}
		}
	}
	return live
}

func (r *resolver) satisfiable(i int, n *node, live []bool) bool {
	for _, in := range n.inputs {
		if r.st.buffered(i, in.Name) > 0 || in.HasDefault {
			continue
		}
		if !r.anyLiveUpstream(i, in.Name, live) {
			return false
		}
	}
	return true
}

func (r *resolver) fedByLive(i int, n *node, live []bool) bool {
	for _, in := range n.inputs {
		if r.anyLiveUpstream(i, in.Name, live) {
			return true
		}
	}
	return false
}

func (r *resolver) anyLiveUpstream(i int, socket string, live []bool) bool {
	for _, c := range r.g.conns {
		if c.to == i && c.toSocket == socket && c.from != i && live[c.from] {
			return true
		}
	}
	return false
}

// pending reports whether a connection into the socket could still
// deliver this run: some live component other than the node itself feeds
// it. Self-connections never count, otherwise a self-loop could never
// re-fire.
func (r *resolver) pending(i int, socket string, live []bool) bool {
	return r.anyLiveUpstream(i, socket, live)
}

// ready reports whether the component can execute right now. A component
// that has already executed needs at least one freshly buffered value;
// beyond that, every input socket must be individually satisfied:
//
//   - scalar: a buffered value, or a default with no pending upstream;
//   - variadic: at least one buffered value and no pending upstream
//     (arrival of the stragglers is awaited), or a default once nothing
//     can deliver;
//   - greedy variadic: one buffered value suffices, pending upstreams are
//     not awaited.
func (r *resolver) ready(i int, visits []int, live []bool) bool {
	n := r.g.nodes[i]
	if visits[i] > 0 && !r.st.anyBuffered(i, n) {
		return false
	}
	for _, in := range n.inputs {
		buf := r.st.buffered(i, in.Name)
		switch {
		case in.Variadic && in.Greedy:
			if buf > 0 {
				continue
			}
		case in.Variadic:
			if buf > 0 && !r.pending(i, in.Name, live) {
				continue
			}
		default:
			if buf > 0 {
				continue
			}
		}
		if buf == 0 && in.HasDefault && !r.pending(i, in.Name, live) {
			continue
		}
		return false
	}
	return true
}

// stalled picks the component to force when nothing is strictly ready but
// buffered data remains. This happens when a cycle flows through a
// defaulted socket: the component waits on the default while the rest of
// the cycle transitively waits on the component. The first live component
// by registration order holding a buffered value, with defaults covering
// every empty socket, runs on its defaults. Returns false when the run is
// genuinely quiescent.
func (r *resolver) stalled(visits []int, live []bool) (int, bool) {
	for i, n := range r.g.nodes {
		if !live[i] || !r.st.anyBuffered(i, n) {
			continue
		}
		runnable := true
		for _, in := range n.inputs {
			if r.st.buffered(i, in.Name) > 0 || in.HasDefault {
				continue
			}
			runnable = false
			break
		}
		if runnable {
			return i, true
		}
	}
	return 0, false
}
