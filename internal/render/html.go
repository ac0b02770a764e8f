package render

import (
	"fmt"
	"io"
	"strings"

	"ll2cfg/internal/ir"
)

// MermaidJS is the script the HTML page loads to draw diagrams.
const MermaidJS = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"

// FuncStats summarizes one function for the HTML index.
type FuncStats struct {
	Name         string
	Blocks       int
	Instructions int
	PredEdges    int
	SuccRefs     int
	Returns      int
	Unreachable  int
}

// ComputeStats counts blocks and edges of fn.
func ComputeStats(fn ir.Function) FuncStats {
	s := FuncStats{Name: fn.Name, Blocks: len(fn.Blocks)}
	for _, blk := range fn.Blocks {
		s.Instructions += len(blk.Instructions)
		s.PredEdges += len(blk.Preds)
		s.SuccRefs += len(blk.Succs)
		switch blk.Terminator() {
		case ir.TermReturn:
			s.Returns++
		case ir.TermUnreachable:
			s.Unreachable++
		}
	}
	return s
}

// WriteHTML writes a standalone page with a summary table and one mermaid
// diagram per function.
func WriteHTML(w io.Writer, fns []ir.Function, title string, opts Options) error {
	t := opts.Theme.orDefault()

	var b strings.Builder

	fmt.Fprintf(&b, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; font-size: 14px; color: #1A1A1A; background: #F5F5F5; margin: 2em; }
h1 { font-size: 18px; font-weight: 600; margin-bottom: 0.5em; }
h2 { font-size: 14px; font-weight: 600; margin-top: 1.5em; border-bottom: 1px solid #ddd; padding-bottom: 4px; font-family: "Courier New", monospace; }
table { border-collapse: collapse; margin: 0.5em 0; }
th, td { text-align: left; padding: 3px 12px 3px 0; font-size: 13px; }
th { font-weight: 600; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
a { color: #0B3D91; }
pre.mermaid { background: white; padding: 1em; }
</style>
</head>
<body>
`, htmlEscape(title))

	fmt.Fprintf(&b, "<h1>%s</h1>\n", htmlEscape(title))

	// Summary table.
	b.WriteString("<table>\n")
	b.WriteString("<tr><th>Function</th><th>Blocks</th><th>Instructions</th><th>Pred edges</th><th>Branch targets</th><th>ret</th><th>unreachable</th></tr>\n")
	for _, fn := range fns {
		s := ComputeStats(fn)
		fmt.Fprintf(&b, "<tr><td><a href=\"#%s\">%s</a></td><td class=\"num\">%d</td><td class=\"num\">%d</td><td class=\"num\">%d</td><td class=\"num\">%d</td><td class=\"num\">%d</td><td class=\"num\">%d</td></tr>\n",
			anchor(fn.Name), htmlEscape(fn.Name), s.Blocks, s.Instructions, s.PredEdges, s.SuccRefs, s.Returns, s.Unreachable)
	}
	b.WriteString("</table>\n")

	for _, fn := range fns {
		var d strings.Builder
		flowchart(&d, fn, t, opts.Abbr)

		fmt.Fprintf(&b, "<h2 id=\"%s\">%s</h2>\n", anchor(fn.Name), htmlEscape(fn.Name))
		fmt.Fprintf(&b, "<pre class=\"mermaid\">\n%s</pre>\n", htmlEscape(d.String()))
	}

	fmt.Fprintf(&b, "<script src=\"%s\"></script>\n", MermaidJS)
	b.WriteString("<script>mermaid.initialize({ startOnLoad: true, securityLevel: \"strict\" });</script>\n")
	b.WriteString("</body></html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// anchor converts a function name to a fragment identifier.
func anchor(name string) string {
	r := strings.NewReplacer(
		".", "_",
		"$", "_",
		"\"", "_",
		" ", "_",
	)
	return "fn-" + r.Replace(name)
}
