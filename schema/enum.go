package schema

import (
	"strconv"

	"golang.org/x/text/cases"
)

// foldCase is shared by every EnumMap's reverse lookup. The registry's
// reverse enum lookup must be case-insensitive (§4.A); x/text's cases
// package does Unicode-aware folding rather than the byte-oriented
// strings.EqualFold, which matters once vendor enum tables start
// carrying names outside ASCII.
var foldCase = cases.Fold()

// EnumEntry is one code/display-name pair in a schema entry's enum map.
type EnumEntry struct {
	Code uint64
	Name string
}

// EnumMap is a bidirectional code<->name table for KindEnum leaves.
// Forward lookups are exact; reverse lookups accept the canonical
// display name, a case-insensitive variant of it, or a bare integer
// literal, per the registry contract.
type EnumMap struct {
	entries []EnumEntry
	byCode  map[uint64]string
	byName  map[string]uint64 // keyed by folded name
}

// NewEnumMap builds an EnumMap from an ordered list of entries. Order
// is preserved for documentation/introspection purposes even though
// lookups are map-backed.
func NewEnumMap(entries ...EnumEntry) *EnumMap {
	m := &EnumMap{
		entries: entries,
		byCode:  make(map[uint64]string, len(entries)),
		byName:  make(map[string]uint64, len(entries)),
	}
	for _, e := range entries {
		m.byCode[e.Code] = e.Name
		m.byName[foldCase.String(e.Name)] = e.Code
	}
	return m
}

// Lookup returns the display name for code, if registered.
func (m *EnumMap) Lookup(code uint64) (string, bool) {
	if m == nil {
		return "", false
	}
	name, ok := m.byCode[code]
	return name, ok
}

// Entries returns the enum map's entries in declaration order.
func (m *EnumMap) Entries() []EnumEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// ReverseLookup resolves a display string back to its numeric code. It
// tries, in order: exact/case-folded name match, then a bare integer
// literal (base 10). A literal that parses but isn't a registered code
// is still accepted — unknown numeric values are not an error per the
// value formatter's tolerant-encode contract for enums.
func (m *EnumMap) ReverseLookup(s string) (uint64, bool) {
	if m != nil {
		if code, ok := m.byName[foldCase.String(s)]; ok {
			return code, true
		}
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n, true
	}
	return 0, false
}
