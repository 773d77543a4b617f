// Package keycode implements the 16-bit firmware keycode codec: range
// classification into wrapper kinds, bit-field packing per kind, and
// conversion between raw values and their symbolic text form.
//
// Every function in this package is total over the full 16-bit value
// domain. Classification never fails, field extraction is defined for
// every input, and name resolution falls back to KCNo rather than
// returning an error. Out-of-range field inputs to the Build* functions
// are truncated to their field width, never rejected.
package keycode

// Keycode is a raw 16-bit firmware keycode. It is the single wire and
// storage representation of a key assignment; every uint16 value is a
// valid Keycode even when no catalog entry exists for it.
type Keycode uint16

const (
	// KCNo is the "no operation" sentinel. Name resolution returns it
	// for unrecognized input, so callers that need to distinguish "not
	// found" must consult the catalog separately.
	KCNo Keycode = 0x0000

	// KCTransparent passes the key through to the next lower layer.
	KCTransparent Keycode = 0x0001
)

// Modifier mask bits. The low four bits select Ctrl/Shift/Alt/GUI, the
// fifth bit moves the whole mask to the right-hand modifiers.
const (
	ModCtrl  uint8 = 0x01
	ModShift uint8 = 0x02
	ModAlt   uint8 = 0x04
	ModGUI   uint8 = 0x08
	ModRight uint8 = 0x10
)

// Numbering-space boundaries. The values follow the legacy firmware
// keycode layout; ranges overlap on purpose (LayerMod sits wholly
// inside ModTap) and are disambiguated by classification priority.
const (
	basicMax Keycode = 0x00FF

	modMaskLo Keycode = 0x0100
	modMaskHi Keycode = 0x2000

	layerTapLo Keycode = 0x4000
	layerTapHi Keycode = 0x5000

	holdTapLo Keycode = 0x5600
	holdTapHi Keycode = 0x5700

	modTapLo Keycode = 0x6000
	modTapHi Keycode = 0x8000

	layerModLo Keycode = 0x7000
	layerModHi Keycode = 0x7200
)
