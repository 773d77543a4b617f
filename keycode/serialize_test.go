package keycode_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywright/keywright/keycode"
	"github.com/keywright/keywright/keycode/catalog"
)

func TestSerialize(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name string
		code keycode.Keycode
		want string
	}{
		{"noop", 0x0000, "KC_NO"},
		{"basic letter", 0x0004, "KC_A"},
		{"basic without entry", 0x00FD, "0x00FD"},
		{"hidden basic still serializes", 0x0066, "KC_PWR"},
		{"single mod", keycode.BuildModMask(keycode.ModCtrl, 0x04), "LCTL(KC_A)"},
		{"two mods", keycode.BuildModMask(keycode.ModCtrl|keycode.ModShift, 0x04), "LCTL_LSFT(KC_A)"},
		{"right hand mod", keycode.BuildModMask(keycode.ModRight|keycode.ModCtrl, 0x04), "RCTL(KC_A)"},
		{"mod with unknown inner", keycode.BuildModMask(keycode.ModCtrl, 0xFD), "LCTL(0xFD)"},
		{"mod tap", keycode.BuildModTap(keycode.ModShift, 0x29), "LSFT_T(KC_ESC)"},
		{"layer tap", 0x4204, "LT2(KC_A)"},
		{"hold tap", 0x5604, "SH_T(KC_A)"},
		{"layer mod empty", 0x7000, "LM0(0x0)"},
		{"layer mod single", 0x7002, "LM0(MOD_LSFT)"},
		{"layer mod on layer 1", keycode.BuildLayerMod(1, 0x12), "LM1(MOD_RSFT)"},
		{"layer mod multi", keycode.BuildLayerMod(0, 0x03), "LM0(0x3)"},
		{"unknown tag", 0x5104, "0x5104"},
		{"top of space", 0xFFFF, "0xFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keycode.Serialize(cat, tt.code))
		})
	}
}

func TestResolve(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name  string
		input string
		want  keycode.Keycode
	}{
		{"bare id", "KC_A", 0x0004},
		{"long alias", "KC_ENTER", 0x0028},
		{"transparent alias", "_______", 0x0001},
		{"unknown name", "KC_BOGUS", 0x0000},
		{"empty", "", 0x0000},
		{"hex literal", "0x1F02", 0x1F02},
		{"surrounding space", "  KC_B  ", 0x0005},
		{"composite layer tap", "LT0(KC_A)", keycode.BuildLayerTap(0, 0x04)},
		{"composite layer tap 2", "LT2(KC_A)", 0x4204},
		{"single mod", "LCTL(KC_A)", 0x0104},
		{"short mod alias", "C(KC_A)", 0x0104},
		{"multi mod prefix", "LCTL_LSFT(KC_A)", keycode.BuildModMask(0x03, 0x04)},
		{"multi mod tap", "LCTL_LSFT_T(KC_A)", keycode.BuildModTap(0x03, 0x04)},
		{"mod tap", "LSFT_T(KC_ESC)", keycode.BuildModTap(0x02, 0x29)},
		{"hold tap", "SH_T(KC_SPC)", 0x562C},
		{"layer mod", "LM2(MOD_LSFT)", keycode.BuildLayerMod(2, 2)},
		{"layer mod hex inner", "LM0(0x0)", 0x7000},
		{"hex inner", "LT0(0x2C)", 0x402C},
		{"unknown outer", "QQ(KC_A)", 0x0000},
		{"unknown inner falls to noop", "LT1(KC_BOGUS)", keycode.BuildLayerTap(1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keycode.Resolve(cat, tt.input))
		})
	}
}

func TestDeserialize(t *testing.T) {
	cat := catalog.Default()
	assert.Equal(t, keycode.Keycode(0x0005), keycode.Deserialize(cat, "KC_B"))
	assert.Equal(t, keycode.KCNo, keycode.Deserialize(cat, "nope"))
}

// Serialize and Resolve are mutually inverse over the whole 16-bit
// domain: every value survives a render/parse round trip, including
// the hex-literal fallbacks.
func TestResolveSerializeClosure(t *testing.T) {
	cat := catalog.Default()
	for c := 0; c <= 0xFFFF; c++ {
		code := keycode.Keycode(c)
		name := keycode.Serialize(cat, code)
		require.Equal(t, code, keycode.Resolve(cat, name), "code 0x%04X rendered %q", c, name)
	}
}

// Every alias of a catalog entry resolves to the same value, and the
// rendered form of that value decomposes back to the entry.
func TestCatalogRoundTrip(t *testing.T) {
	cat := catalog.Default()
	for i := 0; i < cat.Len(); i++ {
		e := cat.At(i)
		if e.Hidden {
			continue
		}
		want := keycode.Resolve(cat, e.ID)
		for _, alias := range e.Aliases {
			assert.Equal(t, want, keycode.Resolve(cat, alias), "entry %s alias %s", e.ID, alias)
		}

		rendered := keycode.Serialize(cat, want)
		if e.Masked {
			outer, ok := cat.FindOuter(rendered)
			require.True(t, ok, "entry %s rendered %q", e.ID, rendered)
			assert.Equal(t, e.ID, outer.ID)
		} else {
			assert.Equal(t, e.ID, rendered)
		}
	}
}

func TestFindOuterInnerComposite(t *testing.T) {
	cat := catalog.Default()

	inner, ok := cat.FindInner("LT0(KC_A)")
	require.True(t, ok)
	assert.Equal(t, "KC_A", inner.ID)

	outer, ok := cat.FindOuter("LT0(KC_A)")
	require.True(t, ok)
	assert.Equal(t, "LT0", outer.ID)

	// Composite resolution equals manual construction.
	assert.Equal(t,
		keycode.BuildLayerTap(0, uint8(keycode.Resolve(cat, "KC_A"))),
		keycode.Resolve(cat, "LT0(KC_A)"))
}

func TestSerializeUniqueWithinKind(t *testing.T) {
	cat := catalog.Default()
	seen := make(map[string]keycode.Keycode, 0x10000)
	for c := 0; c <= 0xFFFF; c++ {
		code := keycode.Keycode(c)
		name := keycode.Serialize(cat, code)
		if prev, dup := seen[name]; dup {
			t.Fatalf("codes 0x%04X and 0x%04X both render %q", prev, code, name)
		}
		seen[name] = code
	}
	assert.Len(t, seen, 0x10000, fmt.Sprintf("expected %d distinct renderings", 0x10000))
}
