package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/keywright/keywright/keycode/catalog"
	"github.com/keywright/keywright/keymap"
)

// Export renders a keymap file as aligned plain text.
type Export struct {
	File   string `arg:"" type:"existingfile" help:"Keymap file (.json, .yaml or .toml)"`
	Output string `help:"Write the rendering to this file instead of stdout" type:"path"`
}

func (e *Export) Run(logger *slog.Logger) error {
	cat := catalog.Default()

	m, err := keymap.Load(cat, e.File)
	if err != nil {
		return err
	}
	logger.Debug("loaded keymap", "file", e.File, "layers", m.NumLayers())

	out := os.Stdout
	if e.Output != "" {
		f, err := os.Create(e.Output)
		if err != nil {
			return fmt.Errorf("create %s: %w", e.Output, err)
		}
		defer f.Close()
		out = f
	}
	return keymap.Render(out, cat, m)
}
