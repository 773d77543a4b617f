package keycode

// BasicKeyOf returns the inner basic key carried in the low byte. It is
// meaningful for ModMask, ModTap, LayerTap and HoldTap codes, and for
// the masked inner-byte editing done on unknown tagged values.
func BasicKeyOf(code Keycode) uint8 {
	return uint8(code & 0x00FF)
}

// ModOf extracts the 5-bit modifier mask from a ModMask or ModTap code.
func ModOf(code Keycode) uint8 {
	return uint8(code>>8) & 0x1F
}

// LayerTapLayerOf extracts the target layer from a LayerTap code.
func LayerTapLayerOf(code Keycode) uint8 {
	return uint8(code>>8) & 0x0F
}

// LayerModLayerOf extracts the target layer from a LayerMod code.
func LayerModLayerOf(code Keycode) uint8 {
	return uint8(code>>5) & 0x0F
}

// LayerModModOf extracts the 5-bit modifier mask from a LayerMod code.
func LayerModModOf(code Keycode) uint8 {
	return uint8(code) & 0x1F
}

// BuildModMask packs a modifier mask and a basic key. A zero mask
// carries no meaning, so the wrapper degenerates to the bare key.
func BuildModMask(mod, key uint8) Keycode {
	m := Keycode(mod & 0x1F)
	if m == 0 {
		return Keycode(key)
	}
	return m<<8 | Keycode(key)
}

// BuildModTap packs a mod-tap keycode. As with BuildModMask, a zero
// mask degenerates to the bare key.
func BuildModTap(mod, key uint8) Keycode {
	m := Keycode(mod & 0x1F)
	if m == 0 {
		return Keycode(key)
	}
	return modTapLo | m<<8 | Keycode(key)
}

// BuildLayerTap packs a layer-tap keycode. Layer 0 is meaningful and
// does not degenerate.
func BuildLayerTap(layer, key uint8) Keycode {
	return layerTapLo | Keycode(layer&0x0F)<<8 | Keycode(key)
}

// BuildHoldTap packs a hold-tap (SH_T) keycode.
func BuildHoldTap(key uint8) Keycode {
	return holdTapLo | Keycode(key)
}

// BuildLayerMod packs a layer-mod keycode. Layer 0 with mod 0 still
// encodes as a distinct LayerMod value; the editing surface uses it to
// represent "no modifier chosen yet".
func BuildLayerMod(layer, mod uint8) Keycode {
	return layerModLo | Keycode(layer&0x0F)<<5 | Keycode(mod&0x1F)
}

// WithBasicKey replaces the inner basic key while preserving the outer
// tag byte. This is the masked-editing primitive: it works on every
// kind whose low byte is an inner key, including unknown tagged values.
func WithBasicKey(code Keycode, key uint8) Keycode {
	return code&0xFF00 | Keycode(key)
}
