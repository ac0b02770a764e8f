// Package output opens the destinations ll2cfg writes to.
package output

import (
	"io"
	"os"
	"path/filepath"

	"tlog.app/go/errors"
)

// Open returns a writer for path. An empty path or "-" is stdout, which is
// left open on Close.
func Open(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "output: mkdir %v", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "output: create %v", path)
	}

	return f, nil
}

// WriteFile writes text to path, or to stdout as Open does.
func WriteFile(path, text string) (err error) {
	w, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := w.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "output: close %v", path)
		}
	}()

	if _, err = io.WriteString(w, text); err != nil {
		return errors.Wrap(err, "output: write %v", path)
	}

	return nil
}

// Numbered returns a constructor for dir/<name(i)>, creating dir first.
func Numbered(dir string, name func(i int) string) (func(i int) (io.WriteCloser, error), error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "output: mkdir %v", dir)
	}

	return func(i int) (io.WriteCloser, error) {
		path := filepath.Join(dir, name(i))

		f, err := os.Create(path)
		if err != nil {
			return nil, errors.Wrap(err, "output: create %v", path)
		}

		return f, nil
	}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
