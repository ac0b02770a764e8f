package main

import (
	"os"

	"nikand.dev/go/cli"
)

func main() {
	renderCmd := &cli.Command{
		Name:        "render",
		Description: "render function CFGs as mermaid flowcharts",
		Action:      renderAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("abbr", false, "omit instructions inside basic blocks"),
			cli.NewFlag("function,f", "", "function to render (default: all)"),
			cli.NewFlag("output,o", "", "output file (default: stdout)"),
			cli.NewFlag("config", "", "TOML file with a [theme] table"),
			cli.NewFlag("html", false, "write an HTML page instead of markdown"),
		},
	}

	dotCmd := &cli.Command{
		Name:        "dot",
		Description: "render function CFGs as Graphviz DOT",
		Action:      dotAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("function,f", "", "function to render (default: all)"),
			cli.NewFlag("output,o", "", "output file (default: stdout)"),
		},
	}

	callgraphCmd := &cli.Command{
		Name:        "callgraph",
		Description: "render direct calls between defined functions as Graphviz DOT",
		Action:      callgraphAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("root", "", "draw only functions reachable from this one"),
			cli.NewFlag("output,o", "", "output file (default: stdout)"),
		},
	}

	dumpCmd := &cli.Command{
		Name:        "dump",
		Description: "print parsed blocks, predecessors and successors",
		Action:      dumpAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("function,f", "", "function to dump (default: all)"),
		},
	}

	splitCmd := &cli.Command{
		Name:        "split",
		Description: "split a pass-dump log into one .ll file per stage",
		Action:      splitAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("out", "./output", "output directory"),
		},
	}

	app := &cli.Command{
		Name:        "ll2cfg",
		Description: "ll2cfg draws control-flow graphs of functions in LLVM IR dumps",
		Commands: []*cli.Command{
			renderCmd,
			dotCmd,
			callgraphCmd,
			dumpCmd,
			splitCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}
