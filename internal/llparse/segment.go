package llparse

import (
	"strings"

	"ll2cfg/internal/ir"
)

// state of the body scan.
type state int

const (
	noBlock  state = iota // before the first label or instruction
	inBlock               // cur is open
	inTable               // cur is open and ends in an unclosed switch table
	inInvoke              // cur is open and ends in an invoke whose labels follow on the next line
)

// segmenter splits one function body into basic blocks.
// Blocks are appended to blocks only when the next boundary is seen.
type segmenter struct {
	state  state
	cur    ir.BasicBlock
	blocks []ir.BasicBlock
}

// segment consumes body lines from ls up to and including the closing "}".
// Running out of input ends the body as well.
func segment(ls *lines) []ir.BasicBlock {
	var s segmenter

	for ls.Next() {
		if !s.step(ls.Text()) {
			break
		}
	}

	s.flush()

	return s.blocks
}

// step feeds one line. It returns false once the body is closed.
func (s *segmenter) step(line string) bool {
	// Rule order matters: a label or "}" must never be read as an instruction.
	if name, preds, ok := matchLabel(line); ok {
		s.open(name, preds)
		return true
	}

	if isCloseBrace(line) {
		return false
	}

	s.instruction(line)

	return true
}

func (s *segmenter) instruction(line string) {
	if s.state == noBlock {
		s.open("", nil)
	}

	if strings.TrimSpace(line) == "" {
		return
	}

	s.cur.Instructions = append(s.cur.Instructions, line)

	switch s.state {
	case inTable:
		s.cur.Succs = append(s.cur.Succs, labelOperands(line)...)
		if closesTable(line) {
			s.state = inBlock
		}
	case inInvoke:
		s.cur.Succs = append(s.cur.Succs, labelOperands(line)...)
		s.state = inBlock
	case inBlock:
		op := ir.BranchOpcode(line)
		if op == "" {
			return
		}
		s.cur.Succs = append(s.cur.Succs, labelOperands(line)...)
		switch {
		case opensTable(line):
			s.state = inTable
		case op == "invoke" && !strings.Contains(line, " unwind "):
			s.state = inInvoke
		}
	}
}

func (s *segmenter) open(name string, preds []string) {
	s.flush()

	s.cur = ir.BasicBlock{
		Name:  name,
		Preds: preds,
	}
	s.state = inBlock
}

func (s *segmenter) flush() {
	if s.state == noBlock {
		return
	}

	s.blocks = append(s.blocks, s.cur)
	s.cur = ir.BasicBlock{}
	s.state = noBlock
}
