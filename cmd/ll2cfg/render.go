package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"ll2cfg/internal/callgraph"
	"ll2cfg/internal/config"
	"ll2cfg/internal/ir"
	"ll2cfg/internal/llparse"
	"ll2cfg/internal/output"
	"ll2cfg/internal/render"
)

type renderParams struct {
	input    string
	function string
	config   string
	abbr     bool
	html     bool
}

func renderAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	input, err := inputArg(c)
	if err != nil {
		return err
	}

	return renderTo(ctx, c.String("output"), renderParams{
		input:    input,
		function: c.String("function"),
		config:   c.String("config"),
		abbr:     c.Bool("abbr"),
		html:     c.Bool("html"),
	})
}

// renderTo renders in memory first, so a bad config or input leaves an
// existing output file untouched.
func renderTo(ctx context.Context, path string, p renderParams) error {
	var buf bytes.Buffer

	err := runRender(ctx, &buf, p)
	if err != nil {
		return err
	}

	return output.WriteFile(path, buf.String())
}

func runRender(ctx context.Context, w io.Writer, p renderParams) error {
	theme, err := config.Load(p.config)
	if err != nil {
		return errors.Wrap(err, "config")
	}

	fns, err := loadFunctions(ctx, p.input, p.function)
	if err != nil {
		return err
	}

	opts := render.Options{Abbr: p.abbr, Theme: theme}

	if p.html {
		err = render.WriteHTML(w, fns, filepath.Base(p.input), opts)
	} else {
		err = render.MermaidAll(w, fns, opts)
	}
	if err != nil {
		return errors.Wrap(err, "write diagram")
	}

	tlog.SpanFromContext(ctx).Printw("rendered", "functions", len(fns), "abbr", p.abbr)

	return nil
}

func dotAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	input, err := inputArg(c)
	if err != nil {
		return err
	}

	fns, err := loadFunctions(ctx, input, c.String("function"))
	if err != nil {
		return err
	}

	title := input
	if f := c.String("function"); f != "" {
		title = f
	}

	return output.WriteFile(c.String("output"), render.CFGDOT(fns, title))
}

func callgraphAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	input, err := inputArg(c)
	if err != nil {
		return err
	}

	dot, _, err := runCallgraph(ctx, input, c.String("root"))
	if err != nil {
		return err
	}

	return output.WriteFile(c.String("output"), dot)
}

// runCallgraph renders the call graph of input. With no root the whole
// graph is drawn and its entry points are logged as candidate roots.
func runCallgraph(ctx context.Context, input, root string) (dot string, entries []string, err error) {
	fns, err := loadFunctions(ctx, input, "")
	if err != nil {
		return "", nil, err
	}

	if root != "" {
		return render.CallgraphDOT(fns, input, root), nil, nil
	}

	entries = callgraph.EntryPoints(callgraph.BuildCallGraph(fns))
	tlog.SpanFromContext(ctx).Printw("entry points", "functions", entries)

	return render.CallgraphDOT(fns, input), entries, nil
}

func dumpAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	input, err := inputArg(c)
	if err != nil {
		return err
	}

	fns, err := loadFunctions(ctx, input, c.String("function"))
	if err != nil {
		return err
	}

	return dump(os.Stdout, fns)
}

func dump(w io.Writer, fns []ir.Function) error {
	for _, f := range fns {
		if _, err := io.WriteString(w, f.String()); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return nil
}

// inputArg returns the single input path, which must exist.
func inputArg(c *cli.Command) (string, error) {
	if len(c.Args) != 1 {
		return "", errors.New("expected one input file, got %d args", len(c.Args))
	}

	return checkInput(c.Args[0])
}

func checkInput(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", errors.New("input file does not exist: %v", path)
	}

	return path, nil
}

// loadFunctions parses input and keeps the functions named name, or all of
// them if name is empty. No match is not an error.
func loadFunctions(ctx context.Context, input, name string) ([]ir.Function, error) {
	fns, err := llparse.ParseFile(ctx, input)
	if err != nil {
		return nil, err
	}

	sel := ir.Filter(fns, name)
	if name != "" && len(sel) == 0 {
		tlog.SpanFromContext(ctx).Printw("no such function", "name", name, "functions", len(fns))
	}

	return sel, nil
}
