package keymap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/keywright/keywright/keycode"
	"github.com/keywright/keywright/keycode/catalog"
)

// fileKeymap is the on-disk shape. Keycodes are stored in symbolic
// form so keymap files stay readable and diffable; unknown names
// degrade to KC_NO on load, unknown codes to hex literals on save.
type fileKeymap struct {
	Name     string       `json:"name" yaml:"name" toml:"name"`
	Layers   [][][]string `json:"layers" yaml:"layers" toml:"layers"`
	Encoders [][][]string `json:"encoders,omitempty" yaml:"encoders,omitempty" toml:"encoders,omitempty"`
}

// Load reads a keymap file. The format is chosen by file extension:
// .json, .yaml/.yml or .toml.
func Load(cat *catalog.Catalog, path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: read %s: %w", path, err)
	}

	var f fileKeymap
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		err = toml.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("keymap: unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("keymap: parse %s: %w", path, err)
	}

	m := &Keymap{
		Name:     f.Name,
		Layers:   make([][][]keycode.Keycode, len(f.Layers)),
		Encoders: make([][][2]keycode.Keycode, len(f.Encoders)),
	}
	for l, layer := range f.Layers {
		m.Layers[l] = make([][]keycode.Keycode, len(layer))
		for r, row := range layer {
			m.Layers[l][r] = make([]keycode.Keycode, len(row))
			for c, name := range row {
				m.Layers[l][r][c] = keycode.Resolve(cat, name)
			}
		}
	}
	for l, encs := range f.Encoders {
		m.Encoders[l] = make([][2]keycode.Keycode, len(encs))
		for i, pair := range encs {
			if len(pair) != 2 {
				return nil, fmt.Errorf("keymap: layer %d encoder %d: want 2 directions, got %d", l, i, len(pair))
			}
			m.Encoders[l][i][EncoderClockwise] = keycode.Resolve(cat, pair[0])
			m.Encoders[l][i][EncoderCounterclockwise] = keycode.Resolve(cat, pair[1])
		}
	}
	return m, nil
}

// Save writes a keymap file next to Load, format again chosen by the
// destination extension.
func Save(cat *catalog.Catalog, path string, m *Keymap) error {
	f := fileKeymap{
		Name:   m.Name,
		Layers: make([][][]string, len(m.Layers)),
	}
	for l, layer := range m.Layers {
		f.Layers[l] = make([][]string, len(layer))
		for r, row := range layer {
			f.Layers[l][r] = make([]string, len(row))
			for c, code := range row {
				f.Layers[l][r][c] = keycode.Serialize(cat, code)
			}
		}
	}
	if len(m.Encoders) > 0 {
		f.Encoders = make([][][]string, len(m.Encoders))
		for l, encs := range m.Encoders {
			f.Encoders[l] = make([][]string, len(encs))
			for i, pair := range encs {
				f.Encoders[l][i] = []string{
					keycode.Serialize(cat, pair[EncoderClockwise]),
					keycode.Serialize(cat, pair[EncoderCounterclockwise]),
				}
			}
		}
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(f, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case ".yaml", ".yml":
		data, err = yaml.Marshal(f)
	case ".toml":
		data, err = toml.Marshal(f)
	default:
		return fmt.Errorf("keymap: unsupported file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("keymap: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("keymap: write %s: %w", path, err)
	}
	return nil
}
