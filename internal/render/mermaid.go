package render

import (
	"fmt"
	"io"
	"strings"

	"ll2cfg/internal/ir"
)

// Options controls mermaid output.
type Options struct {
	Abbr  bool // omit node bodies, keep edges and styles
	Theme Theme
}

// MermaidString renders fn as one fenced mermaid flowchart.
//
// Edges come from the declared predecessors of each block, labeled with the
// target. Blocks ending in ret or unreachable get a colored outline.
// Output follows source order and depends on nothing but fn and opts.
func MermaidString(fn ir.Function, opts Options) string {
	t := opts.Theme.orDefault()

	var b strings.Builder
	fmt.Fprintf(&b, "```%s\n", t.Fence)
	flowchart(&b, fn, t, opts.Abbr)
	b.WriteString("```\n")
	return b.String()
}

// flowchart writes the diagram between the fences.
func flowchart(b *strings.Builder, fn ir.Function, t Theme, abbr bool) {
	fmt.Fprintf(b, "flowchart %s\n", t.Direction)
	fmt.Fprintf(b, "%%%% function %s\n", fn.Name)

	for _, blk := range fn.Blocks {
		id := nodeName(blk.Name, t)

		for _, p := range blk.Preds {
			fmt.Fprintf(b, "\t%s -->|%s| %s\n", predName(p), id, id)
		}

		if !abbr {
			label := strings.Join(blk.Instructions, "\n")
			fmt.Fprintf(b, "%s[\"%s\"]\n", id, labelEscape(label))
		}

		switch blk.Terminator() {
		case ir.TermReturn:
			fmt.Fprintf(b, "style %s stroke:%s\n", id, t.ReturnStroke)
		case ir.TermUnreachable:
			fmt.Fprintf(b, "style %s stroke:%s\n", id, t.UnreachableStroke)
		}
	}
}

// Mermaid writes MermaidString(fn, opts) to w.
func Mermaid(w io.Writer, fn ir.Function, opts Options) error {
	_, err := io.WriteString(w, MermaidString(fn, opts))
	return err
}

// MermaidAll writes one diagram per function, in order.
func MermaidAll(w io.Writer, fns []ir.Function, opts Options) error {
	for _, fn := range fns {
		if err := Mermaid(w, fn, opts); err != nil {
			return err
		}
	}
	return nil
}
