package callgraph

import (
	"sort"

	"github.com/zboralski/lattice"
)

// EntryPoints returns the nodes of g that no edge calls.
func EntryPoints(g *lattice.Graph) []string {
	called := make(map[string]bool)
	for _, e := range g.Edges {
		called[e.Callee] = true
	}

	var entries []string
	for _, n := range g.Nodes {
		if !called[n] {
			entries = append(entries, n)
		}
	}
	sort.Strings(entries)
	return entries
}

// ReachableSet performs BFS from roots following call edges
// and returns the set of all reachable function names.
func ReachableSet(g *lattice.Graph, roots []string) map[string]bool {
	adj := make(map[string][]string)
	for _, e := range g.Edges {
		adj[e.Caller] = append(adj[e.Caller], e.Callee)
	}

	reachable := make(map[string]bool)
	queue := make([]string, 0, len(roots))
	for _, r := range roots {
		if !reachable[r] {
			reachable[r] = true
			queue = append(queue, r)
		}
	}

	for len(queue) > 0 {
		fn := queue[0]
		queue = queue[1:]
		for _, target := range adj[fn] {
			if !reachable[target] {
				reachable[target] = true
				queue = append(queue, target)
			}
		}
	}
	return reachable
}

// Prune keeps the nodes in keep and the edges whose caller is kept.
// Node order is preserved.
func Prune(g *lattice.Graph, keep map[string]bool) *lattice.Graph {
	out := &lattice.Graph{}
	for _, n := range g.Nodes {
		if keep[n] {
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range g.Edges {
		if keep[e.Caller] {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}
