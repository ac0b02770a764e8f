// Package config loads the optional TOML file that customizes diagrams.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"tlog.app/go/errors"

	"ll2cfg/internal/render"
)

// Config is the on-disk form.
//
//	[theme]
//	fence = "mermaid"
//	direction = "LR"
//	return_stroke = "#0f0"
//	unreachable_stroke = "#f00"
//	entry_name = "%0"
type Config struct {
	Theme Theme `toml:"theme"`
}

type Theme struct {
	Fence             string `toml:"fence"`
	Direction         string `toml:"direction"`
	ReturnStroke      string `toml:"return_stroke"`
	UnreachableStroke string `toml:"unreachable_stroke"`
	EntryName         string `toml:"entry_name"`
}

type config struct {
	cfg  Config
	meta toml.MetaData
}

// Load reads path. An empty path yields render.Default.
func Load(path string) (render.Theme, error) {
	if path == "" {
		return render.Default, nil
	}

	var c config
	var err error

	c.meta, err = toml.DecodeFile(path, &c.cfg)
	if err != nil {
		return render.Theme{}, errors.Wrap(err, "decode %v", path)
	}

	return c.theme()
}

// Parse decodes TOML text.
func Parse(text string) (render.Theme, error) {
	var c config
	var err error

	c.meta, err = toml.Decode(text, &c.cfg)
	if err != nil {
		return render.Theme{}, errors.Wrap(err, "decode")
	}

	return c.theme()
}

// theme overlays the keys present in the file on render.Default.
func (c config) theme() (render.Theme, error) {
	if und := c.meta.Undecoded(); len(und) != 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return render.Theme{}, errors.New("unknown keys: %v", strings.Join(keys, ", "))
	}

	t := render.Default
	src := c.cfg.Theme

	if c.meta.IsDefined("theme", "fence") {
		t.Fence = src.Fence
	}
	if c.meta.IsDefined("theme", "direction") {
		t.Direction = src.Direction
	}
	if c.meta.IsDefined("theme", "return_stroke") {
		t.ReturnStroke = src.ReturnStroke
	}
	if c.meta.IsDefined("theme", "unreachable_stroke") {
		t.UnreachableStroke = src.UnreachableStroke
	}
	if c.meta.IsDefined("theme", "entry_name") {
		t.EntryName = src.EntryName
	}

	return t, nil
}
