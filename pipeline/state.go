package pipeline

// socketKey addresses one input socket in the arena.
type socketKey struct {
	node   int
	socket string
}

// store buffers values pending delivery to input sockets for one run.
// Scalar sockets hold at most one value (a later delivery replaces an
// unconsumed one), variadic sockets accumulate values in arrival order.
// Values are held as references, never copied; see the package doc for
// the aliasing contract.
type store struct {
	buffers map[socketKey][]any
}

func newStore() *store {
	return &store{buffers: make(map[socketKey][]any)}
}

func (s *store) deliver(node int, socket string, value any, variadic bool) {
	k := socketKey{node: node, socket: socket}
	if variadic {
		s.buffers[k] = append(s.buffers[k], value)
		return
	}
	s.buffers[k] = []any{value}
}

// drain removes and returns everything buffered for the socket.
func (s *store) drain(node int, socket string) []any {
	k := socketKey{node: node, socket: socket}
	vals := s.buffers[k]
	delete(s.buffers, k)
	return vals
}

func (s *store) buffered(node int, socket string) int {
	return len(s.buffers[socketKey{node: node, socket: socket}])
}

func (s *store) anyBuffered(node int, n *node) bool {
	for _, in := range n.inputs {
		if s.buffered(node, in.Name) > 0 {
			return true
		}
	}
	return false
}

func (s *store) empty() bool {
	return len(s.buffers) == 0
}
