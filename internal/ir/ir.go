// Package ir holds the block-level view of functions read from a textual
// LLVM IR dump.
package ir

import (
	"fmt"
	"strings"
)

// BasicBlock is one labeled region of a function body.
type BasicBlock struct {
	Name         string   // "" for the implicit entry block
	Instructions []string // raw lines, blank lines dropped
	Preds        []string // as declared by the "; preds =" annotation
	Succs        []string // label operands of branch instructions, in order
}

// Function is a parsed "define" with its blocks in source order.
type Function struct {
	Name   string
	Header string // the define line
	Blocks []BasicBlock
}

// Term classifies how a block ends.
type Term int

const (
	TermNone Term = iota
	TermReturn
	TermUnreachable
	TermBranch
)

func (t Term) String() string {
	switch t {
	case TermReturn:
		return "ret"
	case TermUnreachable:
		return "unreachable"
	case TermBranch:
		return "branch"
	}
	return "none"
}

// BranchKeywords are the instruction opcodes whose label operands are
// control-flow successors.
var BranchKeywords = []string{"br", "switch", "indirectbr", "invoke"}

// BranchOpcode returns the branch keyword line starts with, ignoring leading
// whitespace and a "%x = " result, or "" if it is not a branch.
func BranchOpcode(line string) string {
	s := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(s, "%") {
		if _, rest, ok := strings.Cut(s, " = "); ok {
			s = rest
		}
	}
	for _, kw := range BranchKeywords {
		if strings.HasPrefix(s, kw) && len(s) > len(kw) && (s[len(kw)] == ' ' || s[len(kw)] == '\t') {
			return kw
		}
	}
	return ""
}

// Last returns the block's last instruction, or "" for an empty block.
func (b *BasicBlock) Last() string {
	if len(b.Instructions) == 0 {
		return ""
	}
	return b.Instructions[len(b.Instructions)-1]
}

// Terminator classifies the last instruction of the block.
func (b *BasicBlock) Terminator() Term {
	last := strings.TrimSpace(b.Last())
	switch {
	case last == "":
		return TermNone
	case strings.HasPrefix(last, "ret "):
		return TermReturn
	case strings.HasPrefix(last, "unreachable"):
		return TermUnreachable
	case BranchOpcode(last) != "":
		return TermBranch
	}
	return TermNone
}

// Lookup returns the index of the first block named name. Operands can be
// passed as written: a leading '%' and the quotes of %"a b" are ignored.
func (f *Function) Lookup(name string) (int, bool) {
	name = OperandName(name)
	for i := range f.Blocks {
		if f.Blocks[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// OperandName strips the '%' sigil and quoting from a label operand.
func OperandName(op string) string {
	op = strings.TrimPrefix(op, "%")
	if len(op) >= 2 && op[0] == '"' && op[len(op)-1] == '"' {
		op = op[1 : len(op)-1]
	}
	return op
}

// String dumps the function in a flat, human-readable form.
func (f *Function) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Function: %s\n", f.Name)
	for _, blk := range f.Blocks {
		fmt.Fprintf(&b, "\tBlock: %s\t; preds = %s\n", blk.Name, strings.Join(blk.Preds, ", "))
		for _, inst := range blk.Instructions {
			fmt.Fprintf(&b, "\t\t  %s\n", inst)
		}
		fmt.Fprintf(&b, "\t; successors = %s\n", strings.Join(blk.Succs, ", "))
	}

	return b.String()
}

// Filter returns the functions named name, or all of them if name is empty.
func Filter(fns []Function, name string) []Function {
	if name == "" {
		return fns
	}
	var out []Function
	for _, f := range fns {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}
