package pipeline

import (
	"fmt"
	"strings"

	"github.com/Frebklin/haystack/component"
	"github.com/Frebklin/haystack/errors"
)

// node is an arena entry: one registered component with its declared
// sockets. Edges reference nodes by arena index, never by pointer, so
// cyclic graphs carry no ownership cycles.
type node struct {
	name    string
	comp    component.Component
	order   int
	inputs  []component.InputSocket
	outputs []component.OutputSocket

	inputIndex  map[string]int
	outputIndex map[string]int
}

func (n *node) input(name string) (component.InputSocket, bool) {
	i, ok := n.inputIndex[name]
	if !ok {
		return component.InputSocket{}, false
	}
	return n.inputs[i], true
}

func (n *node) output(name string) (component.OutputSocket, bool) {
	i, ok := n.outputIndex[name]
	if !ok {
		return component.OutputSocket{}, false
	}
	return n.outputs[i], true
}

// connection is a directed wire between an output socket and an input
// socket, expressed as arena index pairs.
type connection struct {
	from       int
	fromSocket string
	to         int
	toSocket   string
}

type graph struct {
	nodes []*node
	index map[string]int
	conns []connection
}

func newGraph() *graph {
	return &graph{index: make(map[string]int)}
}

func (g *graph) add(name string, comp component.Component) error {
	if name == "" {
		return errors.InvalidInput("component name must not be empty")
	}
	if strings.ContainsRune(name, '.') {
		return errors.InvalidInput("component name %q must not contain '.'", name)
	}
	if _, ok := g.index[name]; ok {
		return errors.AlreadyExists(name)
	}

	n := &node{
		name:        name,
		comp:        comp,
		order:       len(g.nodes),
		inputs:      comp.InputSockets(),
		outputs:     comp.OutputSockets(),
		inputIndex:  make(map[string]int),
		outputIndex: make(map[string]int),
	}
	for i, s := range n.inputs {
		if _, dup := n.inputIndex[s.Name]; dup {
			return errors.InvalidInput("component %q declares input socket %q twice", name, s.Name)
		}
		n.inputIndex[s.Name] = i
	}
	for i, s := range n.outputs {
		if _, dup := n.outputIndex[s.Name]; dup {
			return errors.InvalidInput("component %q declares output socket %q twice", name, s.Name)
		}
		n.outputIndex[s.Name] = i
	}

	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return nil
}

func (g *graph) lookup(name string) (*node, int, bool) {
	i, ok := g.index[name]
	if !ok {
		return nil, 0, false
	}
	return g.nodes[i], i, true
}

// incoming returns the connections delivering into one input socket.
func (g *graph) incoming(to int, socket string) []connection {
	var conns []connection
	for _, c := range g.conns {
		if c.to == to && c.toSocket == socket {
			conns = append(conns, c)
		}
	}
	return conns
}

// outgoing returns the connections fed by one output socket.
func (g *graph) outgoing(from int, socket string) []connection {
	var conns []connection
	for _, c := range g.conns {
		if c.from == from && c.fromSocket == socket {
			conns = append(conns, c)
		}
	}
	return conns
}

func (g *graph) hasIncoming(to int, socket string) bool {
	for _, c := range g.conns {
		if c.to == to && c.toSocket == socket {
			return true
		}
	}
	return false
}

// splitPath parses "component" or "component.socket".
func splitPath(path string) (comp, socket string) {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

// connect wires an output socket to an input socket. Omitted socket names
// resolve to the single compatible free pair, with a unique name-matching
// pair breaking ties; zero or irreducibly multiple candidates fail with a
// connection error.
func (g *graph) connect(sourcePath, destPath string) error {
	srcName, srcSocket := splitPath(sourcePath)
	dstName, dstSocket := splitPath(destPath)

	src, srcIdx, ok := g.lookup(srcName)
	if !ok {
		return errors.Connection("unknown source component %q", srcName)
	}
	dst, dstIdx, ok := g.lookup(dstName)
	if !ok {
		return errors.Connection("unknown destination component %q", dstName)
	}

	outs := src.outputs
	if srcSocket != "" {
		o, ok := src.output(srcSocket)
		if !ok {
			return errors.Connection("component %q has no output socket %q (available: %s)",
				srcName, srcSocket, outputNames(src))
		}
		outs = []component.OutputSocket{o}
	}
	ins := dst.inputs
	if dstSocket != "" {
		i, ok := dst.input(dstSocket)
		if !ok {
			return errors.Connection("component %q has no input socket %q (available: %s)",
				dstName, dstSocket, inputNames(dst))
		}
		ins = []component.InputSocket{i}
	}

	type pair struct {
		out component.OutputSocket
		in  component.InputSocket
	}
	var candidates []pair
	for _, o := range outs {
		for _, i := range ins {
			if !component.Compatible(o.Type, i.Type) {
				continue
			}
			if !i.Variadic && g.hasIncoming(dstIdx, i.Name) {
				continue
			}
			candidates = append(candidates, pair{out: o, in: i})
		}
	}

	// Several candidates collapse to one when exactly one pair carries the
	// same socket name on both ends.
	if len(candidates) > 1 {
		var matches []pair
		for _, c := range candidates {
			if c.out.Name == c.in.Name {
				matches = append(matches, c)
			}
		}
		if len(matches) == 1 {
			candidates = matches
		}
	}

	switch len(candidates) {
	case 0:
		if dstSocket != "" {
			if in, ok := dst.input(dstSocket); ok && !in.Variadic && g.hasIncoming(dstIdx, dstSocket) {
				return errors.Connection("input socket %s.%s already has an incoming connection", dstName, dstSocket)
			}
		}
		return errors.Connection("no compatible free sockets between %q (outputs: %s) and %q (inputs: %s)",
			srcName, outputNames(src), dstName, inputNames(dst))
	case 1:
		g.conns = append(g.conns, connection{
			from:       srcIdx,
			fromSocket: candidates[0].out.Name,
			to:         dstIdx,
			toSocket:   candidates[0].in.Name,
		})
		return nil
	default:
		names := make([]string, 0, len(candidates))
		for _, c := range candidates {
			names = append(names, fmt.Sprintf("%s.%s -> %s.%s", srcName, c.out.Name, dstName, c.in.Name))
		}
		return errors.Connection("ambiguous connection between %q and %q, candidates: %s",
			srcName, dstName, strings.Join(names, ", "))
	}
}

func outputNames(n *node) string {
	names := make([]string, len(n.outputs))
	for i, s := range n.outputs {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

func inputNames(n *node) string {
	names := make([]string, len(n.inputs))
	for i, s := range n.inputs {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}
