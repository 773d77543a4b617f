package keycode

// Kind is the semantic category of a keycode. Classification assigns
// exactly one Kind to every 16-bit value.
type Kind int

const (
	// KindBasic is a plain key in the low byte, no wrapper semantics.
	KindBasic Kind = iota
	// KindModMask combines a modifier mask with a basic key.
	KindModMask
	// KindModTap acts as a modifier when held, a basic key when tapped.
	KindModTap
	// KindLayerTap activates a layer when held, types a key when tapped.
	KindLayerTap
	// KindHoldTap is the fixed-behavior tap/hold family (SH_T).
	KindHoldTap
	// KindLayerMod activates a layer with modifiers applied while held.
	KindLayerMod
	// KindUnknown matched no range predicate. The value is treated as
	// opaque, though its low byte remains editable as an inner key.
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindModMask:
		return "modmask"
	case KindModTap:
		return "modtap"
	case KindLayerTap:
		return "layertap"
	case KindHoldTap:
		return "holdtap"
	case KindLayerMod:
		return "layermod"
	default:
		return "unknown"
	}
}

// rangeRule is one classification predicate: a half-open interval
// [lo, hi) and the Kind it selects.
type rangeRule struct {
	lo, hi Keycode
	kind   Kind
}

// classifyRules is evaluated top to bottom, first match wins. The order
// is part of the codec contract, not an implementation detail: the
// LayerMod range [0x7000, 0x7200) lies wholly inside the ModTap range
// [0x6000, 0x8000), so LayerMod must be tested before ModTap.
var classifyRules = []rangeRule{
	{layerTapLo, layerTapHi, KindLayerTap},
	{holdTapLo, holdTapHi, KindHoldTap},
	{layerModLo, layerModHi, KindLayerMod},
	{modTapLo, modTapHi, KindModTap},
	{modMaskLo, modMaskHi, KindModMask},
}

// KindOf classifies a raw keycode. Values below 0x0100 that match no
// rule are KindBasic; everything else unmatched is KindUnknown.
func KindOf(code Keycode) Kind {
	for _, r := range classifyRules {
		if code >= r.lo && code < r.hi {
			return r.kind
		}
	}
	if code <= basicMax {
		return KindBasic
	}
	return KindUnknown
}

// IsMasked reports whether code carries wrapper semantics around an
// inner field. Callers rendering keycaps use this to pick between a
// single label and a split outer/inner rendering.
func IsMasked(code Keycode) bool {
	switch KindOf(code) {
	case KindModMask, KindModTap, KindLayerTap, KindHoldTap, KindLayerMod:
		return true
	}
	return false
}
