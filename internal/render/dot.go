package render

import (
	latrender "github.com/zboralski/lattice/render"

	"ll2cfg/internal/callgraph"
	"ll2cfg/internal/ir"
)

// CFGDOT renders the basic-block graphs of fns as one DOT document.
// Successors that name no block in their function are not drawn.
func CFGDOT(fns []ir.Function, title string) string {
	if len(fns) == 0 {
		return ""
	}
	return latrender.DOTCFG(callgraph.BuildCFG(fns), title)
}

// CallgraphDOT renders direct calls between fns as DOT. With roots, only
// functions reachable from them are drawn.
func CallgraphDOT(fns []ir.Function, title string, roots ...string) string {
	g := callgraph.BuildCallGraph(fns)
	if len(roots) != 0 {
		g = callgraph.Prune(g, callgraph.ReachableSet(g, roots))
	}
	return latrender.DOT(g, title)
}
