package main

import (
	"context"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"ll2cfg/internal/output"
	"ll2cfg/internal/split"
)

func splitAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	input, err := inputArg(c)
	if err != nil {
		return err
	}

	n, err := runSplit(ctx, input, c.String("out"))
	if err != nil {
		return err
	}

	tlog.Printw("wrote stages", "files", n, "dir", c.String("out"))

	return nil
}

func runSplit(ctx context.Context, input, dir string) (int, error) {
	stem, err := split.Stem(input)
	if err != nil {
		return 0, errors.Wrap(err, "%v", input)
	}

	create, err := output.Numbered(dir, func(i int) string { return split.FileName(stem, i) })
	if err != nil {
		return 0, err
	}

	f, err := os.Open(input)
	if err != nil {
		return 0, errors.Wrap(err, "open")
	}
	defer f.Close()

	n, err := split.Split(ctx, f, create)
	if err != nil {
		return n, errors.Wrap(err, "split %v", input)
	}

	return n, nil
}
