package cmd

import (
	"log/slog"

	"github.com/keywright/keywright/keycode/catalog"
	"github.com/keywright/keywright/keymap"
)

// Convert rewrites a keymap file into another format, chosen by the
// destination extension.
type Convert struct {
	In  string `arg:"" type:"existingfile" help:"Source keymap file"`
	Out string `arg:"" type:"path" help:"Destination keymap file (.json, .yaml or .toml)"`
}

func (c *Convert) Run(logger *slog.Logger) error {
	cat := catalog.Default()

	m, err := keymap.Load(cat, c.In)
	if err != nil {
		return err
	}
	if err := keymap.Save(cat, c.Out, m); err != nil {
		return err
	}
	logger.Info("converted keymap", "from", c.In, "to", c.Out)
	return nil
}
