package values

import (
	"fmt"
	"net/netip"
)

// Kind discriminates the variants of FormattedValue, per the
// tagged-union design adopted for "dynamic value types for
// formatted_value" (SPEC_FULL.md / spec §9): integer, string, bool,
// ipv4, ipv6, mac, hex-bytes.
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindString
	KindBool
	KindIPv4
	KindIPv6
	KindMAC
	KindHex
)

// FormattedValue is the human-editable counterpart to a leaf TLV's raw
// bytes. Exactly one field group is meaningful, selected by Kind; the
// rest are zero. Construct with the New* helpers rather than building
// the struct literal directly so Kind and the populated field always
// agree.
type FormattedValue struct {
	Kind Kind

	Int  int64
	Uint uint64
	Str  string
	Bool bool
	IP   netip.Addr
	MAC  [6]byte
	// Hex is an uppercase, separator-free hex string. Used both for
	// the dedicated hex-bytes variant and, as a convention, to hold
	// the raw-bytes fallback when a decode of any other kind fails.
	Hex string
}

func NewInt(v int64) FormattedValue    { return FormattedValue{Kind: KindInt, Int: v} }
func NewUint(v uint64) FormattedValue  { return FormattedValue{Kind: KindUint, Uint: v} }
func NewString(v string) FormattedValue { return FormattedValue{Kind: KindString, Str: v} }
func NewBool(v bool) FormattedValue    { return FormattedValue{Kind: KindBool, Bool: v} }
func NewIPv4(addr netip.Addr) FormattedValue {
	return FormattedValue{Kind: KindIPv4, IP: addr}
}
func NewIPv6(addr netip.Addr) FormattedValue {
	return FormattedValue{Kind: KindIPv6, IP: addr}
}
func NewMAC(mac [6]byte) FormattedValue { return FormattedValue{Kind: KindMAC, MAC: mac} }
func NewHex(hexStr string) FormattedValue { return FormattedValue{Kind: KindHex, Hex: hexStr} }

// String renders the value the way config text and CLI output show
// it. JSON/YAML encoding (the docjson package) uses the typed fields
// directly rather than this string form, so native JSON numbers and
// booleans are preserved there.
func (v FormattedValue) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindUint:
		return fmt.Sprintf("%d", v.Uint)
	case KindString:
		return v.Str
	case KindBool:
		if v.Bool {
			return "enabled"
		}
		return "disabled"
	case KindIPv4, KindIPv6:
		return v.IP.String()
	case KindMAC:
		return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
			v.MAC[0], v.MAC[1], v.MAC[2], v.MAC[3], v.MAC[4], v.MAC[5])
	case KindHex:
		return v.Hex
	default:
		return ""
	}
}
