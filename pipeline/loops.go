package pipeline

// loopMembers marks every node that lies on a structural cycle: a member
// of a strongly connected component of size greater than one, or the
// endpoint of a self-connection. Detection is purely structural; whether
// a cycle terminates is a runtime property bounded by max loops.
func (g *graph) loopMembers() []bool {
	n := len(g.nodes)
	adj := make([][]int, n)
	inLoop := make([]bool, n)
	for _, c := range g.conns {
		if c.from == c.to {
			inLoop[c.from] = true
			continue
		}
		adj[c.from] = append(adj[c.from], c.to)
	}

	// Tarjan's strongly connected components.
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var stack []int
	next := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		index[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adj[v] {
			if index[w] == -1 {
				strongconnect(w)
				if lowlink[w] < lowlink[v] {
					lowlink[v] = lowlink[w]
				}
			} else if onStack[w] && index[w] < lowlink[v] {
				lowlink[v] = index[w]
			}
		}

		if lowlink[v] == index[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			if len(scc) > 1 {
				for _, w := range scc {
					inLoop[w] = true
				}
			}
		}
	}

	for v := 0; v < n; v++ {
		if index[v] == -1 {
			strongconnect(v)
		}
	}
	return inLoop
}
