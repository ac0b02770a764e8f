package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Stdout(t *testing.T) {
	for _, p := range []string{"", "-"} {
		w, err := Open(p)
		require.NoError(t, err)

		_, ok := w.(nopCloser)
		assert.True(t, ok)
		assert.NoError(t, w.Close())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.md")

	require.NoError(t, WriteFile(path, "hello\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestNumbered(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	create, err := Numbered(dir, func(i int) string { return fmt.Sprintf("x_%d.ll", i) })
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		w, err := create(i)
		require.NoError(t, err)
		_, err = io.WriteString(w, "line\n")
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ents, 2)
	assert.Equal(t, "x_0.ll", ents[0].Name())
	assert.Equal(t, "x_1.ll", ents[1].Name())
}
