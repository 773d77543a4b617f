// Package keymap models an editable keymap document: a grid of raw
// keycodes per layer plus rotary encoder assignments, with load/save
// in symbolic text form and a plain-text rendering for export.
package keymap

import (
	"fmt"

	"github.com/keywright/keywright/keycode"
)

// Keymap is the persisted object the editing surface round-trips. The
// key grid is indexed [layer][row][col]; encoder assignments are
// indexed [layer][encoder] with a clockwise/counterclockwise pair.
type Keymap struct {
	Name     string
	Layers   [][][]keycode.Keycode
	Encoders [][][2]keycode.Keycode
}

// Encoder pair positions.
const (
	EncoderClockwise        = 0
	EncoderCounterclockwise = 1
)

// New returns a keymap of the given dimensions with every position set
// to KC_NO.
func New(layers, rows, cols, encoders int) *Keymap {
	m := &Keymap{
		Layers:   make([][][]keycode.Keycode, layers),
		Encoders: make([][][2]keycode.Keycode, layers),
	}
	for l := 0; l < layers; l++ {
		m.Layers[l] = make([][]keycode.Keycode, rows)
		for r := 0; r < rows; r++ {
			m.Layers[l][r] = make([]keycode.Keycode, cols)
		}
		m.Encoders[l] = make([][2]keycode.Keycode, encoders)
	}
	return m
}

// NumLayers returns the layer count.
func (m *Keymap) NumLayers() int {
	return len(m.Layers)
}

// At returns the keycode at a grid position.
func (m *Keymap) At(layer, row, col int) (keycode.Keycode, error) {
	if err := m.check(layer, row, col); err != nil {
		return keycode.KCNo, err
	}
	return m.Layers[layer][row][col], nil
}

// Set assigns a keycode to a grid position.
func (m *Keymap) Set(layer, row, col int, code keycode.Keycode) error {
	if err := m.check(layer, row, col); err != nil {
		return err
	}
	m.Layers[layer][row][col] = code
	return nil
}

// Encoder returns one direction of an encoder assignment.
func (m *Keymap) Encoder(layer, index, direction int) (keycode.Keycode, error) {
	if err := m.checkEncoder(layer, index, direction); err != nil {
		return keycode.KCNo, err
	}
	return m.Encoders[layer][index][direction], nil
}

// SetEncoder assigns one direction of an encoder.
func (m *Keymap) SetEncoder(layer, index, direction int, code keycode.Keycode) error {
	if err := m.checkEncoder(layer, index, direction); err != nil {
		return err
	}
	m.Encoders[layer][index][direction] = code
	return nil
}

// Clone returns a deep copy.
func (m *Keymap) Clone() *Keymap {
	out := &Keymap{
		Name:     m.Name,
		Layers:   make([][][]keycode.Keycode, len(m.Layers)),
		Encoders: make([][][2]keycode.Keycode, len(m.Encoders)),
	}
	for l, layer := range m.Layers {
		out.Layers[l] = make([][]keycode.Keycode, len(layer))
		for r, row := range layer {
			out.Layers[l][r] = append([]keycode.Keycode(nil), row...)
		}
	}
	for l, encs := range m.Encoders {
		out.Encoders[l] = append([][2]keycode.Keycode(nil), encs...)
	}
	return out
}

func (m *Keymap) check(layer, row, col int) error {
	if layer < 0 || layer >= len(m.Layers) {
		return fmt.Errorf("keymap: layer %d out of range [0,%d)", layer, len(m.Layers))
	}
	if row < 0 || row >= len(m.Layers[layer]) {
		return fmt.Errorf("keymap: row %d out of range [0,%d)", row, len(m.Layers[layer]))
	}
	if col < 0 || col >= len(m.Layers[layer][row]) {
		return fmt.Errorf("keymap: col %d out of range [0,%d)", col, len(m.Layers[layer][row]))
	}
	return nil
}

func (m *Keymap) checkEncoder(layer, index, direction int) error {
	if layer < 0 || layer >= len(m.Encoders) {
		return fmt.Errorf("keymap: layer %d out of range [0,%d)", layer, len(m.Encoders))
	}
	if index < 0 || index >= len(m.Encoders[layer]) {
		return fmt.Errorf("keymap: encoder %d out of range [0,%d)", index, len(m.Encoders[layer]))
	}
	if direction != EncoderClockwise && direction != EncoderCounterclockwise {
		return fmt.Errorf("keymap: encoder direction %d invalid", direction)
	}
	return nil
}
