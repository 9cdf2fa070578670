package schema

// SchemaEntry describes how one TLV type is interpreted at and above
// its introducing version. Entries are build-time constants; nothing
// in this package mutates an entry after registration, which is what
// lets Lookup* be called from concurrent parses without locking.
type SchemaEntry struct {
	// Type is the TLV type byte (top-level) or sub-TLV type within its
	// parent compound's own namespace.
	Type int
	Name string
	Description string

	// IntroducedVersion is the first version, within this entry's
	// family, for which the type is recognized. Version gating in
	// Lookup compares queried versions against this field.
	IntroducedVersion Version

	Kind ValueKind

	// EnumMap is non-nil only when Kind == KindEnum.
	EnumMap *EnumMap

	// MaxLength bounds the wire length of the value, 0 meaning the
	// value formatter's natural width for Kind applies (e.g. 4 for
	// KindU32) rather than an independent schema-specified cap. For
	// Kind == KindEnum specifically, a non-zero MaxLength of 1, 2, or 4
	// instead pins the enum's fixed wire width, so Encode doesn't have
	// to (and can't reliably) infer it back from the code's magnitude.
	MaxLength int

	// SubTLVs is non-nil when Kind is compound-like and the inner
	// namespace is documented; nil compound entries are still treated
	// as compound by the codec, just with every sub-type unknown.
	SubTLVs *Table

	// RequiredIn lists versions in which this TLV must appear at least
	// once at the top level. Only meaningful for top-level tables.
	RequiredIn []Version
}

// RequiredAt reports whether this entry is mandatory at top level for
// version v (exact family+version match, not a >= comparison — a TLV
// required in 3.1 need not be required in 3.0 just because it's valid
// there).
func (e *SchemaEntry) RequiredAt(v Version) bool {
	if e == nil {
		return false
	}
	for _, rv := range e.RequiredIn {
		if rv == v {
			return true
		}
	}
	return false
}
