package schema

import "sort"

// Table is an immutable (type -> SchemaEntry) catalog for one
// namespace: either a top-level family table or the sub-TLV namespace
// of one compound entry. A table may additionally carry a vendor
// blanket range — a contiguous span of types with no individually
// documented entry that are nonetheless valid and decoded as compound
// vendor data (§4.A).
type Table struct {
	entries map[int]*SchemaEntry

	vendorLow, vendorHigh int
	vendorFactory         func(t int) *SchemaEntry
}

// NewTable builds a Table from a set of entries, keyed by their Type.
func NewTable(entries ...*SchemaEntry) *Table {
	m := make(map[int]*SchemaEntry, len(entries))
	for _, e := range entries {
		m[e.Type] = e
	}
	return &Table{entries: m}
}

// WithVendorRange attaches a blanket vendor range [low, high] to the
// table. factory synthesizes a SchemaEntry for any type in range that
// has no explicit entry; it is called lazily and the result is not
// cached since the registry is allocation-free by contract only for
// explicit entries.
func (t *Table) WithVendorRange(low, high int, factory func(typ int) *SchemaEntry) *Table {
	t.vendorLow, t.vendorHigh = low, high
	t.vendorFactory = factory
	return t
}

func (t *Table) inVendorRange(typ int) bool {
	return t.vendorFactory != nil && typ >= t.vendorLow && typ <= t.vendorHigh
}

// Lookup returns the schema entry governing typ at version v. When
// permissive is false (the default gate), an entry introduced after v
// is treated as not found, matching P6. When permissive is true,
// version gating is skipped entirely and any registered entry is
// returned regardless of v — the Open Question on version-gating
// resolved in DESIGN.md.
func (t *Table) Lookup(typ int, v Version, permissive bool) (*SchemaEntry, bool) {
	if e, ok := t.entries[typ]; ok {
		if permissive {
			return e, true
		}
		if !v.AtLeast(e.IntroducedVersion) {
			return nil, false
		}
		return e, true
	}
	if t.inVendorRange(typ) {
		return t.vendorFactory(typ), true
	}
	return nil, false
}

// IsValidType reports whether typ resolves to an entry at version v.
func (t *Table) IsValidType(typ int, v Version, permissive bool) bool {
	_, ok := t.Lookup(typ, v, permissive)
	return ok
}

// IsCompound reports whether typ, at version v, is governed by a
// compound-shaped entry. Unknown types are never compound: callers
// must fall back to opaque leaf handling for them.
func (t *Table) IsCompound(typ int, v Version, permissive bool) bool {
	e, ok := t.Lookup(typ, v, permissive)
	return ok && e.Kind.IsCompound()
}

// SupportedTypes returns, in ascending order, every type with an
// explicit entry valid at version v. The vendor blanket range is not
// included, since it has no fixed membership; VendorRange reports its
// [low, high] bounds.
func (t *Table) SupportedTypes(v Version, permissive bool) []int {
	out := make([]int, 0, len(t.entries))
	for typ, e := range t.entries {
		if permissive || v.AtLeast(e.IntroducedVersion) {
			out = append(out, typ)
		}
	}
	sort.Ints(out)
	return out
}

// VendorRange reports the table's blanket vendor range, if any.
func (t *Table) VendorRange() (low, high int, ok bool) {
	if t.vendorFactory == nil {
		return 0, 0, false
	}
	return t.vendorLow, t.vendorHigh, true
}

// EntryByName resolves a registry name back to its entry, case-
// insensitively, for the config text parser's name-to-type reverse
// map (§4.F). The vendor blanket range has no fixed name to match
// against and is never returned here; callers fall back to the
// "TlvCode <type> <hex>" syntax for anything this misses.
func (t *Table) EntryByName(name string, v Version, permissive bool) (*SchemaEntry, bool) {
	folded := foldCase.String(name)
	for _, e := range t.entries {
		if foldCase.String(e.Name) != folded {
			continue
		}
		if permissive || v.AtLeast(e.IntroducedVersion) {
			return e, true
		}
	}
	return nil, false
}
