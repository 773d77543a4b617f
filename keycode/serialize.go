package keycode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keywright/keywright/keycode/catalog"
)

// Serialize renders a raw keycode as its canonical textual form. Codes
// without a catalog entry fall back to a hex literal, so the function
// is total; the output always resolves back to the same value.
func Serialize(cat *catalog.Catalog, code Keycode) string {
	switch KindOf(code) {
	case KindModMask:
		prefix := modPrefix(ModOf(code))
		if prefix == "" {
			return hexLiteral(code)
		}
		return prefix + "(" + serializeBasic(cat, BasicKeyOf(code)) + ")"
	case KindModTap:
		prefix := modPrefix(ModOf(code))
		if prefix == "" {
			// Mask 0 never comes out of BuildModTap, but raw values in
			// the tag range with a zero mask still need a rendering.
			return hexLiteral(code)
		}
		return prefix + "_T(" + serializeBasic(cat, BasicKeyOf(code)) + ")"
	case KindLayerTap:
		return fmt.Sprintf("LT%d(%s)", LayerTapLayerOf(code), serializeBasic(cat, BasicKeyOf(code)))
	case KindHoldTap:
		return "SH_T(" + serializeBasic(cat, BasicKeyOf(code)) + ")"
	case KindLayerMod:
		return fmt.Sprintf("LM%d(%s)", LayerModLayerOf(code), modName(LayerModModOf(code)))
	default:
		if e, ok := cat.EntryForCode(uint16(code)); ok {
			return e.ID
		}
		return hexLiteral(code)
	}
}

// Resolve converts a symbolic name back to a raw keycode. It accepts a
// bare catalog ID or alias, a composite "OUTER(INNER)" form, or a hex
// literal. Resolution is total: unrecognized input yields KCNo.
func Resolve(cat *catalog.Catalog, name string) Keycode {
	name = strings.TrimSpace(name)
	if name == "" {
		return KCNo
	}
	if open := strings.IndexByte(name, '('); open >= 0 && strings.HasSuffix(name, ")") {
		return resolveComposite(cat, name[:open], name[open+1:len(name)-1])
	}
	return resolveBare(cat, name)
}

// Deserialize resolves a bare catalog identifier. It is Resolve under
// the name the persistence layer uses for id-only input.
func Deserialize(cat *catalog.Catalog, id string) Keycode {
	return Resolve(cat, id)
}

func resolveBare(cat *catalog.Catalog, name string) Keycode {
	if e, ok := cat.Lookup(name); ok {
		return Keycode(e.Code)
	}
	if v, ok := parseHexLiteral(name); ok {
		return v
	}
	return KCNo
}

// resolveComposite combines an outer wrapper with a recursively
// resolved inner. The outer's catalog code already carries the wrapper
// parameters with a zero inner field, so classification of that code
// picks the matching build function.
func resolveComposite(cat *catalog.Catalog, outer, inner string) Keycode {
	var outerCode Keycode
	if e, ok := cat.Lookup(outer); ok {
		outerCode = Keycode(e.Code)
	} else if mask, tap, ok := parseModPrefix(outer); ok {
		// Underscore-joined multi-modifier prefixes like LCTL_LSFT are
		// generated, not authored, so they resolve algorithmically.
		if tap {
			outerCode = BuildModTap(mask, 0)
		} else {
			outerCode = BuildModMask(mask, 0)
		}
	} else {
		return KCNo
	}

	switch KindOf(outerCode) {
	case KindModMask:
		return BuildModMask(ModOf(outerCode), innerKey(cat, inner))
	case KindModTap:
		return BuildModTap(ModOf(outerCode), innerKey(cat, inner))
	case KindLayerTap:
		return BuildLayerTap(LayerTapLayerOf(outerCode), innerKey(cat, inner))
	case KindHoldTap:
		return BuildHoldTap(innerKey(cat, inner))
	case KindLayerMod:
		return BuildLayerMod(LayerModLayerOf(outerCode), uint8(resolveBare(cat, strings.TrimSpace(inner))))
	default:
		return KCNo
	}
}

func innerKey(cat *catalog.Catalog, inner string) uint8 {
	return BasicKeyOf(Resolve(cat, strings.TrimSpace(inner)))
}

// serializeBasic renders an inner basic key by catalog ID, with a hex
// byte literal as the fallback for keys the catalog does not know.
func serializeBasic(cat *catalog.Catalog, key uint8) string {
	if e, ok := cat.EntryForCode(uint16(key)); ok {
		return e.ID
	}
	return fmt.Sprintf("0x%02X", key)
}

func hexLiteral(code Keycode) string {
	return fmt.Sprintf("0x%04X", uint16(code))
}

func parseHexLiteral(s string) (Keycode, bool) {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0, false
	}
	v, err := strconv.ParseUint(s[2:], 16, 16)
	if err != nil {
		return 0, false
	}
	return Keycode(v), true
}

var modTokens = []struct {
	bit  uint8
	name string
}{
	{ModCtrl, "CTL"},
	{ModShift, "SFT"},
	{ModAlt, "ALT"},
	{ModGUI, "GUI"},
}

// modPrefix renders a 5-bit modifier mask as an underscore-joined
// prefix, e.g. 0x03 -> "LCTL_LSFT", 0x11 -> "RCTL". A mask with no
// modifier bits set renders empty.
func modPrefix(mask uint8) string {
	hand := "L"
	if mask&ModRight != 0 {
		hand = "R"
	}
	var parts []string
	for _, t := range modTokens {
		if mask&t.bit != 0 {
			parts = append(parts, hand+t.name)
		}
	}
	return strings.Join(parts, "_")
}

// parseModPrefix inverts modPrefix, with an optional trailing "_T"
// marking a mod-tap. Mixed hands collapse onto the right-hand flag.
func parseModPrefix(s string) (mask uint8, tap bool, ok bool) {
	parts := strings.Split(s, "_")
	if len(parts) > 1 && parts[len(parts)-1] == "T" {
		tap = true
		parts = parts[:len(parts)-1]
	}
	for _, p := range parts {
		if len(p) != 4 {
			return 0, false, false
		}
		var hand uint8
		switch p[0] {
		case 'L':
		case 'R':
			hand = ModRight
		default:
			return 0, false, false
		}
		var bit uint8
		for _, t := range modTokens {
			if p[1:] == t.name {
				bit = t.bit
				break
			}
		}
		if bit == 0 {
			return 0, false, false
		}
		mask |= hand | bit
	}
	if mask&^ModRight == 0 {
		return 0, false, false
	}
	return mask, tap, true
}

// modName renders the inner position of a layer-mod. Zero renders as
// the literal 0x0 since no catalog name exists for an empty mask.
func modName(mod uint8) string {
	if mod == 0 {
		return "0x0"
	}
	prefix := modPrefix(mod)
	if prefix == "" {
		return fmt.Sprintf("0x%X", mod)
	}
	if !strings.Contains(prefix, "_") {
		return "MOD_" + prefix
	}
	// Multi-modifier masks have no MOD_* entry; a hex literal keeps
	// the round trip exact.
	return fmt.Sprintf("0x%X", mod)
}
