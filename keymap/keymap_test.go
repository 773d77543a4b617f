package keymap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywright/keywright/keycode"
	"github.com/keywright/keywright/keymap"
)

func TestNewDimensions(t *testing.T) {
	m := keymap.New(2, 3, 4, 1)
	assert.Equal(t, 2, m.NumLayers())

	code, err := m.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, keycode.KCNo, code)
}

func TestSetAndAt(t *testing.T) {
	m := keymap.New(2, 2, 2, 0)

	require.NoError(t, m.Set(0, 1, 1, 0x0004))
	code, err := m.At(0, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, keycode.Keycode(0x0004), code)

	tests := []struct {
		name            string
		layer, row, col int
	}{
		{"layer too high", 2, 0, 0},
		{"negative layer", -1, 0, 0},
		{"row too high", 0, 2, 0},
		{"col too high", 0, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, m.Set(tt.layer, tt.row, tt.col, 0x0004))
			_, err := m.At(tt.layer, tt.row, tt.col)
			assert.Error(t, err)
		})
	}
}

func TestEncoders(t *testing.T) {
	m := keymap.New(1, 1, 1, 2)

	require.NoError(t, m.SetEncoder(0, 1, keymap.EncoderClockwise, 0x0080))
	require.NoError(t, m.SetEncoder(0, 1, keymap.EncoderCounterclockwise, 0x0081))

	cw, err := m.Encoder(0, 1, keymap.EncoderClockwise)
	require.NoError(t, err)
	assert.Equal(t, keycode.Keycode(0x0080), cw)

	ccw, err := m.Encoder(0, 1, keymap.EncoderCounterclockwise)
	require.NoError(t, err)
	assert.Equal(t, keycode.Keycode(0x0081), ccw)

	assert.Error(t, m.SetEncoder(0, 2, keymap.EncoderClockwise, 0))
	assert.Error(t, m.SetEncoder(1, 0, keymap.EncoderClockwise, 0))
	assert.Error(t, m.SetEncoder(0, 0, 2, 0))
}

func TestCloneIsDeep(t *testing.T) {
	m := keymap.New(1, 1, 2, 1)
	require.NoError(t, m.Set(0, 0, 0, 0x0004))
	require.NoError(t, m.SetEncoder(0, 0, keymap.EncoderClockwise, 0x0080))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 0, 0x0005))
	require.NoError(t, c.SetEncoder(0, 0, keymap.EncoderClockwise, 0x0081))

	orig, _ := m.At(0, 0, 0)
	assert.Equal(t, keycode.Keycode(0x0004), orig)
	cw, _ := m.Encoder(0, 0, keymap.EncoderClockwise)
	assert.Equal(t, keycode.Keycode(0x0080), cw)
}
