// Package catalog holds the static table of known keycodes: canonical
// identifiers, display labels, aliases and flags, plus the derived
// alias index used for symbolic lookup.
//
// A Catalog is built once at process start and never mutated, so it is
// safe for concurrent reads without locking.
package catalog

import "strings"

// Entry describes one known keycode.
type Entry struct {
	// ID is the unique canonical identifier, e.g. "KC_A" or "LT0".
	ID string
	// Code is the raw 16-bit value the identifier resolves to. For
	// masked entries it is the wrapper tag with a zero inner field.
	Code uint16
	// Label is the display text. It may contain an embedded newline
	// for two-row keycap rendering.
	Label string
	// Tooltip is optional longer help text.
	Tooltip string
	// Hidden excludes the entry from default search results.
	Hidden bool
	// Masked marks composite/wrapper forms whose low byte is an inner
	// key edited separately, e.g. "LT0" or "LCTL".
	Masked bool
	// Aliases are additional lookup names. The ID is always the first
	// alias; New inserts it when the authored data leaves it out.
	Aliases []string
}

// Catalog is the frozen table plus its alias index. Lookup is
// case-sensitive on stored names; ranked fuzzy matching is a consumer
// concern and lives in Search.
type Catalog struct {
	entries []Entry
	byAlias map[string]int
	byCode  map[uint16]int
}

// New builds a Catalog from authored entries. It enforces the table
// invariants: every ID is its own first alias, and alias strings are
// unique across the whole table. A duplicate alias is a bug in static
// data, so it panics rather than returning an error.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: entries,
		byAlias: make(map[string]int, len(entries)*2),
		byCode:  make(map[uint16]int, len(entries)),
	}
	for i := range c.entries {
		e := &c.entries[i]
		if len(e.Aliases) == 0 || e.Aliases[0] != e.ID {
			e.Aliases = append([]string{e.ID}, e.Aliases...)
		}
		for _, a := range e.Aliases {
			if _, dup := c.byAlias[a]; dup {
				panic("catalog: duplicate alias " + a)
			}
			c.byAlias[a] = i
		}
		// First claimant wins so reverse lookup follows catalog order.
		if _, taken := c.byCode[e.Code]; !taken {
			c.byCode[e.Code] = i
		}
	}
	return c
}

// Lookup finds an entry by canonical ID or any alias.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	i, ok := c.byAlias[name]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// EntryForCode finds the entry a raw value resolves back to. When
// several entries share a code, the one authored first wins.
func (c *Catalog) EntryForCode(code uint16) (*Entry, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// FindOuter looks up the wrapper part of a composite name: everything
// before the first '('. A name without parentheses is looked up whole.
func (c *Catalog) FindOuter(name string) (*Entry, bool) {
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return c.Lookup(name)
}

// FindInner looks up the parenthesized inner part of a composite name,
// falling back to the whole name when no parentheses are present.
func (c *Catalog) FindInner(name string) (*Entry, bool) {
	open := strings.IndexByte(name, '(')
	end := strings.LastIndexByte(name, ')')
	if open >= 0 && end > open {
		name = name[open+1 : end]
	}
	return c.Lookup(name)
}

// Label returns the display label for an ID or alias, or the name
// itself when the catalog has no entry for it.
func (c *Catalog) Label(name string) string {
	if e, ok := c.Lookup(name); ok {
		return e.Label
	}
	return name
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at the given authored position.
func (c *Catalog) At(i int) *Entry {
	return &c.entries[i]
}
