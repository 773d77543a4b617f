package keymap

import "github.com/keywright/keywright/keycode"

// Mode is the editing surface's current wrapper mode while a key is
// being edited. It is a closed variant type: each mode carries only
// the fields that are meaningful for it, so a stale field from a
// previous mode can never leak into a freshly built keycode.
type Mode interface {
	// Apply combines the mode with an inner basic key and returns the
	// resulting raw keycode.
	Apply(inner uint8) keycode.Keycode

	isMode()
}

// ModeNone edits the key as a plain basic key.
type ModeNone struct{}

// ModeModMask edits a modifier+key combination.
type ModeModMask struct{ Mod uint8 }

// ModeModTap edits a hold-for-modifier, tap-for-key assignment.
type ModeModTap struct{ Mod uint8 }

// ModeLayerTap edits a hold-for-layer, tap-for-key assignment.
type ModeLayerTap struct{ Layer uint8 }

// ModeHoldTap edits a swap-hands tap/hold assignment.
type ModeHoldTap struct{}

// ModeLayerMod edits a layer-with-modifiers assignment. It has no
// inner basic key; the low bits hold the modifier mask.
type ModeLayerMod struct {
	Layer uint8
	Mod   uint8
}

func (ModeNone) isMode()     {}
func (ModeModMask) isMode()  {}
func (ModeModTap) isMode()   {}
func (ModeLayerTap) isMode() {}
func (ModeHoldTap) isMode()  {}
func (ModeLayerMod) isMode() {}

func (ModeNone) Apply(inner uint8) keycode.Keycode {
	return keycode.Keycode(inner)
}

func (m ModeModMask) Apply(inner uint8) keycode.Keycode {
	return keycode.BuildModMask(m.Mod, inner)
}

func (m ModeModTap) Apply(inner uint8) keycode.Keycode {
	return keycode.BuildModTap(m.Mod, inner)
}

func (m ModeLayerTap) Apply(inner uint8) keycode.Keycode {
	return keycode.BuildLayerTap(m.Layer, inner)
}

func (ModeHoldTap) Apply(inner uint8) keycode.Keycode {
	return keycode.BuildHoldTap(inner)
}

func (m ModeLayerMod) Apply(uint8) keycode.Keycode {
	return keycode.BuildLayerMod(m.Layer, m.Mod)
}

// ModeFor classifies an existing keycode into the mode that would
// rebuild it. Unknown tagged values edit as plain basic keys.
func ModeFor(code keycode.Keycode) Mode {
	switch keycode.KindOf(code) {
	case keycode.KindModMask:
		return ModeModMask{Mod: keycode.ModOf(code)}
	case keycode.KindModTap:
		return ModeModTap{Mod: keycode.ModOf(code)}
	case keycode.KindLayerTap:
		return ModeLayerTap{Layer: keycode.LayerTapLayerOf(code)}
	case keycode.KindHoldTap:
		return ModeHoldTap{}
	case keycode.KindLayerMod:
		return ModeLayerMod{Layer: keycode.LayerModLayerOf(code), Mod: keycode.LayerModModOf(code)}
	default:
		return ModeNone{}
	}
}

// Transition rebuilds a keycode under a new editing mode, carrying the
// inner basic key across. A LayerMod source has no inner key at all:
// its low bits are a modifier mask, and carrying them over as a key
// was a real bug once, so the inner resets to zero instead.
func Transition(code keycode.Keycode, to Mode) keycode.Keycode {
	inner := keycode.BasicKeyOf(code)
	if keycode.KindOf(code) == keycode.KindLayerMod {
		inner = 0
	}
	return to.Apply(inner)
}
