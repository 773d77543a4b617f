package catalog

import "strings"

// strippablePrefixes are removed from aliases before matching so that a
// query like "lctl" finds KC_LCTL and MOD_LCTL without the namespace
// prefix getting in the way.
var strippablePrefixes = []string{"KC_", "MOD_"}

func stripPrefix(alias string) string {
	for _, p := range strippablePrefixes {
		if strings.HasPrefix(alias, p) {
			return alias[len(p):]
		}
	}
	return alias
}

// Search ranks catalog entries against a text query. Hidden entries are
// excluded. An exact match on a prefix-stripped alias ranks above a
// substring match; within each band, catalog order is preserved. The
// query is matched case-insensitively, stored names are not altered.
func (c *Catalog) Search(query string) []*Entry {
	return c.search(query, false)
}

// SearchAll is Search with hidden entries included.
func (c *Catalog) SearchAll(query string) []*Entry {
	return c.search(query, true)
}

func (c *Catalog) search(query string, includeHidden bool) []*Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var exact, partial []*Entry
	for i := range c.entries {
		e := &c.entries[i]
		if e.Hidden && !includeHidden {
			continue
		}
		best := matchNone
		for _, a := range e.Aliases {
			stripped := strings.ToLower(stripPrefix(a))
			switch {
			case stripped == q:
				best = matchExact
			case best != matchExact && strings.Contains(stripped, q):
				best = matchPartial
			}
		}
		// Labels participate in substring matching only; many keys
		// share label fragments, so they never outrank an alias hit.
		if best == matchNone && strings.Contains(strings.ToLower(e.Label), q) {
			best = matchPartial
		}
		switch best {
		case matchExact:
			exact = append(exact, e)
		case matchPartial:
			partial = append(partial, e)
		}
	}
	return append(exact, partial...)
}

type matchRank int

const (
	matchNone matchRank = iota
	matchPartial
	matchExact
)
