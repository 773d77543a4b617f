package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywright/keywright/keycode/catalog"
)

func ids(entries []*catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestSearchExactAboveSubstring(t *testing.T) {
	c := catalog.Default()

	results := c.Search("lctl")
	require.NotEmpty(t, results)

	// Both KC_LCTL (stripped to "LCTL") and the LCTL wrapper match
	// exactly; catalog order breaks the tie. Substring matches such as
	// LCTL_T follow.
	got := ids(results)
	assert.Equal(t, "KC_LCTL", got[0])
	assert.Equal(t, "LCTL", got[1])
	assert.Contains(t, got, "LCTL_T")

	// The exact band ends before the substring band begins.
	assert.Greater(t, indexOf(got, "LCTL_T"), indexOf(got, "LCTL"))
}

func TestSearchStripsCanonicalPrefixes(t *testing.T) {
	c := catalog.Default()

	results := c.Search("esc")
	require.NotEmpty(t, results)
	assert.Equal(t, "KC_ESC", results[0].ID)
}

func TestSearchExcludesHidden(t *testing.T) {
	c := catalog.Default()

	assert.NotContains(t, ids(c.Search("lctl")), "MOD_LCTL")
	assert.Empty(t, c.Search("power"))

	all := ids(c.SearchAll("power"))
	assert.Contains(t, all, "KC_PWR")
}

func TestSearchCaseInsensitiveQuery(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, ids(c.Search("SPC")), ids(c.Search("spc")))
	require.NotEmpty(t, c.Search("SPC"))
	assert.Equal(t, "KC_SPC", c.Search("SPC")[0].ID)
}

func TestSearchEmptyQuery(t *testing.T) {
	c := catalog.Default()
	assert.Empty(t, c.Search(""))
	assert.Empty(t, c.Search("   "))
}

func TestSearchMatchesLabels(t *testing.T) {
	c := catalog.Default()
	assert.Contains(t, ids(c.Search("bksp")), "KC_BSPC")
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
