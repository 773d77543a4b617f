package keymap

import (
	"fmt"
	"io"
	"strings"

	"github.com/keywright/keywright/keycode"
	"github.com/keywright/keywright/keycode/catalog"
)

// SplitLabel decomposes a keycode into display labels for rendering.
// Masked codes split into an outer wrapper label and an inner key
// label; plain codes return a single outer label with masked false.
func SplitLabel(cat *catalog.Catalog, code keycode.Keycode) (outer, inner string, masked bool) {
	name := keycode.Serialize(cat, code)
	if !keycode.IsMasked(code) {
		return cat.Label(name), "", false
	}
	open := strings.IndexByte(name, '(')
	if open < 0 {
		// Mod wrappers whose mask has no modifier bits render as bare
		// hex literals; there is no inner part to split out.
		return name, "", false
	}
	innerName := name[open+1 : len(name)-1]
	return cat.Label(name[:open]), cat.Label(innerName), true
}

// LabelFor returns a single-line display label for a keycode, joining
// the outer and inner parts of masked codes.
func LabelFor(cat *catalog.Catalog, code keycode.Keycode) string {
	outer, inner, masked := SplitLabel(cat, code)
	outer = flatten(outer)
	if !masked {
		if outer == "" {
			// KC_NO renders an empty label; keep grid cells visible.
			return "--"
		}
		return outer
	}
	return outer + "[" + flatten(inner) + "]"
}

// Render writes a plain-text view of the keymap: one aligned grid per
// layer, followed by any encoder assignments.
func Render(w io.Writer, cat *catalog.Catalog, m *Keymap) error {
	for l, layer := range m.Layers {
		if l > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Layer %d\n", l); err != nil {
			return err
		}

		cells := make([][]string, len(layer))
		width := 0
		for r, row := range layer {
			cells[r] = make([]string, len(row))
			for c, code := range row {
				cell := LabelFor(cat, code)
				cells[r][c] = cell
				if len(cell) > width {
					width = len(cell)
				}
			}
		}
		for _, row := range cells {
			for c, cell := range row {
				if c > 0 {
					if _, err := io.WriteString(w, "  "); err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintf(w, "%-*s", width, cell); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if l < len(m.Encoders) {
			for i, pair := range m.Encoders[l] {
				_, err := fmt.Fprintf(w, "Encoder %d: cw %s  ccw %s\n", i,
					LabelFor(cat, pair[EncoderClockwise]),
					LabelFor(cat, pair[EncoderCounterclockwise]))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// flatten collapses the embedded line break used for two-row keycap
// labels into a single line.
func flatten(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
