package keymap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywright/keywright/keycode"
	"github.com/keywright/keywright/keycode/catalog"
	"github.com/keywright/keywright/keymap"
)

func TestSplitLabel(t *testing.T) {
	cat := catalog.Default()

	outer, inner, masked := keymap.SplitLabel(cat, 0x0004)
	assert.False(t, masked)
	assert.Equal(t, "A", outer)
	assert.Empty(t, inner)

	outer, inner, masked = keymap.SplitLabel(cat, keycode.BuildLayerTap(2, 0x04))
	assert.True(t, masked)
	assert.Equal(t, "LT 2", outer)
	assert.Equal(t, "A", inner)

	outer, inner, masked = keymap.SplitLabel(cat, keycode.BuildModMask(keycode.ModCtrl, 0x04))
	assert.True(t, masked)
	assert.Equal(t, "LCtrl\n(kc)", outer)
	assert.Equal(t, "A", inner)

	// A mod wrapper with no modifier bits renders as a hex literal
	// and has nothing to split.
	_, _, masked = keymap.SplitLabel(cat, 0x1004)
	assert.False(t, masked)
}

func TestLabelFor(t *testing.T) {
	cat := catalog.Default()

	assert.Equal(t, "A", keymap.LabelFor(cat, 0x0004))
	assert.Equal(t, "--", keymap.LabelFor(cat, keycode.KCNo))
	assert.Equal(t, "LT 2[A]", keymap.LabelFor(cat, keycode.BuildLayerTap(2, 0x04)))
	assert.Equal(t, "Caps Lock", keymap.LabelFor(cat, 0x0039))
}

func TestRender(t *testing.T) {
	cat := catalog.Default()
	m := keymap.New(2, 1, 2, 1)
	require.NoError(t, m.Set(0, 0, 0, 0x0004))
	require.NoError(t, m.Set(0, 0, 1, keycode.BuildLayerTap(1, 0x05)))
	require.NoError(t, m.SetEncoder(0, 0, keymap.EncoderClockwise, 0x0080))
	require.NoError(t, m.SetEncoder(0, 0, keymap.EncoderCounterclockwise, 0x0081))

	var buf strings.Builder
	require.NoError(t, keymap.Render(&buf, cat, m))
	out := buf.String()

	assert.Contains(t, out, "Layer 0")
	assert.Contains(t, out, "Layer 1")
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "LT 1[B]")
	assert.Contains(t, out, "Encoder 0: cw Vol +  ccw Vol -")
}
