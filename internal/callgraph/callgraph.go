// Package callgraph maps parsed IR functions onto lattice graphs.
package callgraph

import (
	"regexp"
	"strings"

	"github.com/zboralski/lattice"

	"ll2cfg/internal/ir"
)

// call/invoke <ret type> @callee(
var callRe = regexp.MustCompile(`\b(?:call|invoke)\b[^@]*@([-a-zA-Z0-9_.$]+|"[^"]*")\s*\(`)

// Callee returns the direct callee of a call or invoke instruction.
// Indirect calls through a register have no callee.
func Callee(inst string) (string, bool) {
	m := callRe.FindStringSubmatch(inst)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isInterestingCallee drops LLVM intrinsics, which only add noise to a
// call graph.
func isInterestingCallee(name string) bool {
	return name != "" && !strings.HasPrefix(name, "llvm.")
}

// BuildCallGraph constructs a lattice.Graph from parsed functions.
// Each function becomes a node. Each direct call becomes an edge; repeated
// calls collapse into one.
func BuildCallGraph(fns []ir.Function) *lattice.Graph {
	g := &lattice.Graph{}
	for _, f := range fns {
		g.Nodes = append(g.Nodes, f.Name)
		for _, blk := range f.Blocks {
			for _, inst := range blk.Instructions {
				callee, ok := Callee(inst)
				if !ok || !isInterestingCallee(callee) {
					continue
				}
				g.Edges = append(g.Edges, lattice.Edge{
					Caller: f.Name,
					Callee: callee,
				})
			}
		}
	}
	g.Dedup()
	return g
}
