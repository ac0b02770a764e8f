// Package split cuts an LLVM pass-dump log (-print-after-all and friends)
// into one .ll file per dumped stage.
package split

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

// Marker starts a new stage: "*** IR Dump After InstCombinePass on f ***".
const Marker = " Dump After "

// ErrNotLL is returned by Stem for inputs without the .ll extension.
var ErrNotLL = errors.New("input file must end with .ll")

// Stem returns the base name of a .ll path without its extension.
func Stem(path string) (string, error) {
	if !strings.HasSuffix(path, ".ll") {
		return "", ErrNotLL
	}
	return strings.TrimSuffix(filepath.Base(path), ".ll"), nil
}

// FileName is the name of stage i of stem.
func FileName(stem string, i int) string {
	return fmt.Sprintf("%s_%d.ll", stem, i)
}

// Split copies r into create(0), create(1), ... starting a new file at every
// line containing Marker. The marker line opens its file. Text before the
// first marker goes to file 0, which always exists.
// It returns the number of files created.
func Split(ctx context.Context, r io.Reader, create func(i int) (io.WriteCloser, error)) (n int, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "split")
	defer tr.Finish("err", &err)

	var (
		f  io.WriteCloser
		bw *bufio.Writer
	)

	defer func() {
		if f != nil {
			_ = closeFile(f, bw)
		}
	}()

	next := func() error {
		if f != nil {
			err := closeFile(f, bw)
			f, bw = nil, nil
			if err != nil {
				return errors.Wrap(err, "file %d", n-1)
			}
		}

		nf, err := create(n)
		if err != nil {
			return errors.Wrap(err, "file %d", n)
		}

		f, bw = nf, bufio.NewWriter(nf)
		n++

		return nil
	}

	if err = next(); err != nil {
		return 0, err
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 64<<20)

	lines := 0
	for sc.Scan() {
		line := sc.Text()
		lines++

		if strings.Contains(line, Marker) {
			if err = next(); err != nil {
				return n, err
			}
		}

		bw.WriteString(line)
		if err = bw.WriteByte('\n'); err != nil {
			return n, errors.Wrap(err, "write file %d", n-1)
		}
	}

	if err = sc.Err(); err != nil {
		return n, errors.Wrap(err, "read line %d", lines+1)
	}

	err = closeFile(f, bw)
	f = nil
	if err != nil {
		return n, errors.Wrap(err, "file %d", n-1)
	}

	tr.Printw("split", "files", n, "lines", lines)

	return n, nil
}

func closeFile(f io.WriteCloser, bw *bufio.Writer) error {
	err := bw.Flush()

	if e := f.Close(); err == nil {
		err = e
	}

	return err
}
