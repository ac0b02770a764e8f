package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ll2cfg/internal/render"
)

func TestParse(t *testing.T) {
	th, err := Parse(`
[theme]
direction = "LR"
entry_name = "%0"
`)
	require.NoError(t, err)

	want := render.Default
	want.Direction = "LR"
	want.EntryName = "%0"
	assert.Equal(t, want, th)
}

func TestParse_Empty(t *testing.T) {
	th, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, render.Default, th)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse("[theme]\ncolour = \"red\"\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.colour")
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("[theme\n")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, render.Default, th)

	path := filepath.Join(t.TempDir(), "ll2cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("[theme]\nfence = \"mermaid\"\nreturn_stroke = \"#00aa00\"\n"), 0o644))

	th, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#00aa00", th.ReturnStroke)
	assert.Equal(t, render.Default.UnreachableStroke, th.UnreachableStroke)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
