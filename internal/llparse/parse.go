// Package llparse reads functions and their basic blocks out of textual
// LLVM IR. It recognizes a handful of line shapes (define headers, block
// labels, branches, the closing brace) and carries every other line through
// verbatim. Nothing is validated: malformed structure degrades to fewer
// edges, never to an error.
package llparse

import (
	"bufio"
	"context"
	"io"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"ll2cfg/internal/ir"
)

// MaxLineSize bounds a single input line. Longer lines fail the scan.
const MaxLineSize = 64 << 20

// lines is a forward-only cursor shared by the function scan and the body
// segmenter.
type lines struct {
	sc *bufio.Scanner
	n  int // lines consumed
}

func newLines(r io.Reader) *lines {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), MaxLineSize)

	return &lines{sc: sc}
}

func (l *lines) Next() bool {
	if !l.sc.Scan() {
		return false
	}
	l.n++
	return true
}

func (l *lines) Text() string { return l.sc.Text() }
func (l *lines) Err() error   { return l.sc.Err() }

// ParseFile parses the .ll file at name.
func ParseFile(ctx context.Context, name string) ([]ir.Function, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	fns, err := Parse(ctx, f)
	if err != nil {
		return fns, errors.Wrap(err, "parse %v", name)
	}

	return fns, nil
}

// Parse returns every function defined in r, in source order.
// Only read errors are reported.
func Parse(ctx context.Context, r io.Reader) (fns []ir.Function, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "llparse: parse")
	defer tr.Finish("err", &err)

	ls := newLines(r)

	for ls.Next() {
		line := ls.Text()

		name, ok := matchHeader(line)
		if !ok {
			continue
		}

		start := ls.n
		blocks := segment(ls)

		fns = append(fns, ir.Function{
			Name:   name,
			Header: line,
			Blocks: blocks,
		})

		if tr.If("llparse") {
			tr.Printw("function", "name", name, "blocks", len(blocks), "from", start, "to", ls.n)
		}
	}

	if err = ls.Err(); err != nil {
		return fns, errors.Wrap(err, "read line %d", ls.n+1)
	}

	tr.Printw("parsed", "functions", len(fns), "lines", ls.n)

	return fns, nil
}
