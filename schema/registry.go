// Package schema is the static, version-parametric TLV catalog
// (DocsisSpecs / MtaSpecs / SubTlvSpecs in the source material this
// system was distilled from). It answers, for a (type, version) pair
// or a (parent type, subtype, version) triple, the SchemaEntry that
// governs wire-level interpretation: value kind, enum map, length
// bound, and — for compounds — the nested sub-TLV namespace.
//
// The whole registry is built once in package init and never mutated,
// so concurrent callers never need to synchronize on it (§5).
package schema

// topLevelTable selects the DOCSIS or PacketCable top-level table
// based on the family carried by v.
func topLevelTable(v Version) *Table {
	if v.Family == PacketCable {
		return packetCableTop
	}
	return docsisTop
}

// LookupTop resolves a top-level TLV type at version v. ok is false if
// the type is unrecognized at v (including "recognized at a later
// version but not this one" when permissive is false) — callers must
// treat the value as opaque binary and synthesize a hex
// formatted_value, per §4.A's failure semantics.
func LookupTop(typ int, v Version, permissive bool) (*SchemaEntry, bool) {
	return topLevelTable(v).Lookup(typ, v, permissive)
}

// LookupSub resolves a sub-TLV within parent's own compound namespace.
// parent must itself be a compound entry with a non-nil SubTLVs table;
// if parent has no documented sub-structure, LookupSub always misses.
func LookupSub(parent *SchemaEntry, subtype int, v Version, permissive bool) (*SchemaEntry, bool) {
	if parent == nil || parent.SubTLVs == nil {
		return nil, false
	}
	return parent.SubTLVs.Lookup(subtype, v, permissive)
}

// SupportedTypes returns every top-level type with an explicit entry
// valid at version v, in ascending order. The vendor blanket range is
// not enumerated (it has no fixed membership); see VendorRange.
func SupportedTypes(v Version, permissive bool) []int {
	return topLevelTable(v).SupportedTypes(v, permissive)
}

// IsValidType reports whether typ resolves to an entry at version v.
func IsValidType(typ int, v Version, permissive bool) bool {
	return topLevelTable(v).IsValidType(typ, v, permissive)
}

// IsCompound reports whether typ, at version v, decodes as a nested
// TLV stream rather than a scalar leaf.
func IsCompound(typ int, v Version, permissive bool) bool {
	return topLevelTable(v).IsCompound(typ, v, permissive)
}

// LookupTopByName resolves a top-level TLV name (case-insensitive) at
// version v, for the config text parser's identifier-to-type reverse
// map (§4.F).
func LookupTopByName(name string, v Version, permissive bool) (*SchemaEntry, bool) {
	return topLevelTable(v).EntryByName(name, v, permissive)
}

// LookupSubByName resolves a sub-TLV name within parent's own compound
// namespace, case-insensitively.
func LookupSubByName(parent *SchemaEntry, name string, v Version, permissive bool) (*SchemaEntry, bool) {
	if parent == nil || parent.SubTLVs == nil {
		return nil, false
	}
	return parent.SubTLVs.EntryByName(name, v, permissive)
}

// VendorRange reports the blanket vendor range for v's family.
func VendorRange(v Version) (low, high int, ok bool) {
	return topLevelTable(v).VendorRange()
}

// RequiredTypes returns every top-level type whose schema entry marks
// it mandatory at exactly version v, used by the validation
// framework's "required TLV present" rule.
func RequiredTypes(v Version) []int {
	var out []int
	for _, typ := range topLevelTable(v).SupportedTypes(v, true) {
		e, ok := topLevelTable(v).Lookup(typ, v, true)
		if ok && e.RequiredAt(v) {
			out = append(out, typ)
		}
	}
	return out
}
