package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywright/keywright/keycode/catalog"
)

func TestNewInsertsSelfAlias(t *testing.T) {
	c := catalog.New([]catalog.Entry{
		{ID: "KC_X", Code: 0x1B, Label: "X"},
		{ID: "KC_Y", Code: 0x1C, Label: "Y", Aliases: []string{"KC_Y", "WHY"}},
	})

	x, ok := c.Lookup("KC_X")
	require.True(t, ok)
	assert.Equal(t, []string{"KC_X"}, x.Aliases)

	y, ok := c.Lookup("WHY")
	require.True(t, ok)
	assert.Equal(t, "KC_Y", y.ID)
	assert.Equal(t, "KC_Y", y.Aliases[0])
}

func TestNewPanicsOnDuplicateAlias(t *testing.T) {
	assert.Panics(t, func() {
		catalog.New([]catalog.Entry{
			{ID: "KC_X", Code: 0x1B},
			{ID: "KC_Z", Code: 0x1D, Aliases: []string{"KC_Z", "KC_X"}},
		})
	})
}

func TestLookupIsCaseSensitive(t *testing.T) {
	c := catalog.Default()

	_, ok := c.Lookup("KC_A")
	assert.True(t, ok)
	_, ok = c.Lookup("kc_a")
	assert.False(t, ok)
}

func TestEntryForCodeFollowsCatalogOrder(t *testing.T) {
	c := catalog.Default()

	// KC_TRNS and MOD_LCTL share the raw value 0x0001; the entry
	// authored first claims the reverse lookup.
	e, ok := c.EntryForCode(0x0001)
	require.True(t, ok)
	assert.Equal(t, "KC_TRNS", e.ID)

	_, ok = c.EntryForCode(0x00FD)
	assert.False(t, ok)
}

func TestFindOuterAndInner(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name      string
		input     string
		wantOuter string
		wantInner string
	}{
		{"composite", "LT3(KC_SPC)", "LT3", "KC_SPC"},
		{"mod wrapper", "LCTL(KC_A)", "LCTL", "KC_A"},
		{"hold tap", "SH_T(KC_TAB)", "SH_T", "KC_TAB"},
		{"bare name", "KC_A", "KC_A", "KC_A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outer, ok := c.FindOuter(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantOuter, outer.ID)

			inner, ok := c.FindInner(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.wantInner, inner.ID)
		})
	}

	_, ok := c.FindOuter("QQ(KC_A)")
	assert.False(t, ok)
	_, ok = c.FindInner("LT0(KC_BOGUS)")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, "A", c.Label("KC_A"))
	assert.Equal(t, "Esc", c.Label("KC_ESCAPE"))
	assert.Equal(t, "KC_BOGUS", c.Label("KC_BOGUS"))
}

// Every ID appears in its own alias list and alias strings are unique
// across the whole table; New enforces both, this guards the static
// data against silent regressions.
func TestDefaultTableInvariants(t *testing.T) {
	c := catalog.Default()
	seen := make(map[string]string)
	for i := 0; i < c.Len(); i++ {
		e := c.At(i)
		require.NotEmpty(t, e.ID)
		require.Equal(t, e.ID, e.Aliases[0], "entry %s", e.ID)
		for _, a := range e.Aliases {
			owner, dup := seen[a]
			require.False(t, dup, "alias %q claimed by both %s and %s", a, owner, e.ID)
			seen[a] = e.ID
		}
	}
}
