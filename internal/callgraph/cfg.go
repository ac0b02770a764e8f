package callgraph

import (
	"github.com/zboralski/lattice"

	"ll2cfg/internal/ir"
)

// BuildCFG constructs a lattice.CFGGraph from parsed functions.
func BuildCFG(fns []ir.Function) *lattice.CFGGraph {
	cg := &lattice.CFGGraph{}
	for _, f := range fns {
		cg.Funcs = append(cg.Funcs, BuildFuncCFG(f))
	}
	return cg
}

// BuildFuncCFG maps one function onto a lattice.FuncCFG.
//
// Block IDs are list positions and Start/End count instructions from the top
// of the body. Successors resolve by name to the first block carrying it;
// names with no block are dropped. A two-way br tags its targets T and F.
// Direct calls become call sites at their instruction offset.
func BuildFuncCFG(fn ir.Function) *lattice.FuncCFG {
	lcfg := &lattice.FuncCFG{Name: fn.Name}
	off := 0
	for i, blk := range fn.Blocks {
		term := blk.Terminator()

		lb := &lattice.BasicBlock{
			ID:    i,
			Start: off,
			End:   off + len(blk.Instructions),
			Term:  term == ir.TermReturn || term == ir.TermUnreachable,
		}

		conds := succConds(blk)
		for si, s := range blk.Succs {
			id, ok := fn.Lookup(s)
			if !ok {
				continue
			}
			lb.Succs = append(lb.Succs, lattice.Successor{
				BlockID: id,
				Cond:    conds[si],
			})
		}

		for ii, inst := range blk.Instructions {
			callee, ok := Callee(inst)
			if !ok || !isInterestingCallee(callee) {
				continue
			}
			lb.Calls = append(lb.Calls, lattice.CallSite{
				Offset: off + ii,
				Callee: callee,
			})
		}

		off = lb.End
		lcfg.Blocks = append(lcfg.Blocks, lb)
	}
	return lcfg
}

// succConds returns the edge condition for each successor of blk:
// "T"/"F" for a conditional br, "" otherwise.
func succConds(blk ir.BasicBlock) []string {
	conds := make([]string, len(blk.Succs))
	if len(blk.Succs) == 2 && ir.BranchOpcode(blk.Last()) == "br" {
		conds[0], conds[1] = "T", "F"
	}
	return conds
}
