// Package values is the bidirectional mapping between a leaf TLV's raw
// bytes and its human-editable FormattedValue (the Value Formatter,
// §4.B). Every exported Decode/Encode pair must satisfy the formatter
// bijection property P1: encode(kind, decode(kind, bytes)) == bytes
// for any (kind, bytes) the schema registry can classify.
package values

import (
	"encoding/hex"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/docsisgo/docsisconf/internal/wire"
	"github.com/docsisgo/docsisconf/schema"
)

// Decode converts raw bytes into their formatted representation per
// kind. enumMap is only consulted for schema.KindEnum and may be nil
// (an unmapped code then decodes to its numeric literal, per §4.B).
// Decode never panics; any error is a signal for the caller to demote
// the leaf to a raw hex fallback rather than abort the parse.
func Decode(kind schema.ValueKind, raw []byte, enumMap *schema.EnumMap) (FormattedValue, error) {
	switch kind {
	case schema.KindU8:
		b, err := exactLen(raw, 1)
		if err != nil {
			return FormattedValue{}, err
		}
		return NewUint(uint64(b[0])), nil

	case schema.KindU16:
		v, err := wire.CheckedReadU16(raw, 0)
		if err != nil || len(raw) != 2 {
			return FormattedValue{}, fmt.Errorf("%w: u16 wants 2 bytes, got %d", ErrRange, len(raw))
		}
		return NewUint(uint64(v)), nil

	case schema.KindU32, schema.KindFrequency, schema.KindBandwidth, schema.KindDuration:
		v, err := wire.CheckedReadU32(raw, 0)
		if err != nil || len(raw) != 4 {
			return FormattedValue{}, fmt.Errorf("%w: u32 wants 4 bytes, got %d", ErrRange, len(raw))
		}
		return NewUint(uint64(v)), nil

	case schema.KindU64:
		v, err := wire.CheckedReadU64(raw, 0)
		if err != nil || len(raw) != 8 {
			return FormattedValue{}, fmt.Errorf("%w: u64 wants 8 bytes, got %d", ErrRange, len(raw))
		}
		return NewUint(v), nil

	case schema.KindI8:
		b, err := exactLen(raw, 1)
		if err != nil {
			return FormattedValue{}, err
		}
		return NewInt(int64(int8(b[0]))), nil

	case schema.KindBoolean:
		b, err := exactLen(raw, 1)
		if err != nil {
			return FormattedValue{}, err
		}
		switch b[0] {
		case 0:
			return NewBool(false), nil
		case 1:
			return NewBool(true), nil
		default:
			return FormattedValue{}, fmt.Errorf("%w: boolean byte must be 0 or 1, got %d", ErrRange, b[0])
		}

	case schema.KindString:
		if !utf8.Valid(raw) {
			return FormattedValue{}, fmt.Errorf("%w: %d bytes", ErrInvalidUTF8, len(raw))
		}
		return NewString(string(raw)), nil

	case schema.KindIPv4:
		b, err := exactLen(raw, 4)
		if err != nil {
			return FormattedValue{}, err
		}
		return NewIPv4(netip.AddrFrom4([4]byte(b))), nil

	case schema.KindIPv6:
		b, err := exactLen(raw, 16)
		if err != nil {
			return FormattedValue{}, err
		}
		return NewIPv6(netip.AddrFrom16([16]byte(b))), nil

	case schema.KindMAC:
		b, err := exactLen(raw, 6)
		if err != nil {
			return FormattedValue{}, err
		}
		var mac [6]byte
		copy(mac[:], b)
		return NewMAC(mac), nil

	case schema.KindOID:
		// No ASN.1 BER decoding is specified; this implementation's
		// chosen convention (documented in DESIGN.md) treats each raw
		// byte as one dotted arc, 0-255.
		arcs := make([]string, len(raw))
		for i, b := range raw {
			arcs[i] = strconv.Itoa(int(b))
		}
		return NewString(strings.Join(arcs, ".")), nil

	case schema.KindEnum:
		width := len(raw)
		if width != 1 && width != 2 && width != 4 {
			return FormattedValue{}, fmt.Errorf("%w: enum width must be 1, 2, or 4 bytes, got %d", ErrRange, width)
		}
		var code uint64
		switch width {
		case 1:
			code = uint64(raw[0])
		case 2:
			v, _ := wire.CheckedReadU16(raw, 0)
			code = uint64(v)
		case 4:
			v, _ := wire.CheckedReadU32(raw, 0)
			code = uint64(v)
		}
		if name, ok := enumMap.Lookup(code); ok {
			return NewString(name), nil
		}
		return NewString(strconv.FormatUint(code, 10)), nil

	case schema.KindBinary, schema.KindVendor:
		return NewHex(strings.ToUpper(hex.EncodeToString(raw))), nil

	default:
		return FormattedValue{}, fmt.Errorf("%w: decode has no rule for %s", ErrKindMismatch, kind)
	}
}

// Encode is Decode's inverse: it turns a FormattedValue back into the
// raw bytes a given value kind would emit on the wire. maxLength, when
// positive, caps a string's byte count and pins an enum's wire width;
// other kinds, binary and vendor included, ignore it. 0 means "use the
// kind's natural width with no additional cap."
func Encode(kind schema.ValueKind, fv FormattedValue, enumMap *schema.EnumMap, maxLength int) ([]byte, error) {
	switch kind {
	case schema.KindU8:
		u, err := wantUint(fv, 0xFF)
		if err != nil {
			return nil, err
		}
		return []byte{byte(u)}, nil

	case schema.KindU16:
		u, err := wantUint(fv, 0xFFFF)
		if err != nil {
			return nil, err
		}
		b := make([]byte, 2)
		wire.PutU16(b, 0, uint16(u))
		return b, nil

	case schema.KindU32, schema.KindFrequency, schema.KindBandwidth, schema.KindDuration:
		u, err := wantUint(fv, 0xFFFFFFFF)
		if err != nil {
			return nil, err
		}
		b := make([]byte, 4)
		wire.PutU32(b, 0, uint32(u))
		return b, nil

	case schema.KindU64:
		u, err := wantUint(fv, ^uint64(0))
		if err != nil {
			return nil, err
		}
		b := make([]byte, 8)
		wire.PutU64(b, 0, u)
		return b, nil

	case schema.KindI8:
		if fv.Kind != KindInt {
			return nil, fmt.Errorf("%w: i8 wants an integer", ErrKindMismatch)
		}
		if fv.Int < -128 || fv.Int > 127 {
			return nil, fmt.Errorf("%w: %d out of i8 range", ErrRange, fv.Int)
		}
		return []byte{byte(int8(fv.Int))}, nil

	case schema.KindBoolean:
		if fv.Kind != KindBool {
			return nil, fmt.Errorf("%w: boolean wants a bool", ErrKindMismatch)
		}
		if fv.Bool {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case schema.KindString:
		var s string
		switch fv.Kind {
		case KindString:
			s = fv.Str
		case KindHex:
			raw, err := decodeHex(fv.Hex)
			if err != nil {
				return nil, err
			}
			return raw, nil
		default:
			return nil, fmt.Errorf("%w: string wants a string or hex fallback", ErrKindMismatch)
		}
		if maxLength > 0 && len(s) > maxLength {
			return nil, fmt.Errorf("%w: string length %d exceeds max %d", ErrRange, len(s), maxLength)
		}
		return []byte(s), nil

	case schema.KindIPv4:
		if fv.Kind != KindIPv4 && fv.Kind != KindString {
			return nil, fmt.Errorf("%w: ipv4 wants an address", ErrKindMismatch)
		}
		addr := fv.IP
		if fv.Kind == KindString {
			parsed, err := parseIPv4Text(fv.Str)
			if err != nil {
				return nil, err
			}
			addr = parsed
		}
		if !addr.Is4() {
			return nil, fmt.Errorf("%w: not an IPv4 address", ErrMalformed)
		}
		a4 := addr.As4()
		return a4[:], nil

	case schema.KindIPv6:
		if fv.Kind != KindIPv6 && fv.Kind != KindString {
			return nil, fmt.Errorf("%w: ipv6 wants an address", ErrKindMismatch)
		}
		addr := fv.IP
		if fv.Kind == KindString {
			parsed, err := netip.ParseAddr(fv.Str)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
			}
			addr = parsed
		}
		if !addr.Is6() && !addr.Is4In6() {
			return nil, fmt.Errorf("%w: not an IPv6 address", ErrMalformed)
		}
		a16 := addr.As16()
		return a16[:], nil

	case schema.KindMAC:
		var mac [6]byte
		switch fv.Kind {
		case KindMAC:
			mac = fv.MAC
		case KindString:
			parsed, err := parseMAC(fv.Str)
			if err != nil {
				return nil, err
			}
			mac = parsed
		default:
			return nil, fmt.Errorf("%w: mac wants a mac or string", ErrKindMismatch)
		}
		return mac[:], nil

	case schema.KindOID:
		if fv.Kind != KindString {
			return nil, fmt.Errorf("%w: oid wants a dotted string", ErrKindMismatch)
		}
		parts := strings.Split(fv.Str, ".")
		out := make([]byte, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil || n < 0 || n > 255 {
				return nil, fmt.Errorf("%w: oid arc %q out of byte range", ErrMalformed, p)
			}
			out = append(out, byte(n))
		}
		return out, nil

	case schema.KindEnum:
		code, ok := reverseEnum(fv, enumMap)
		if !ok {
			return nil, fmt.Errorf("%w: unresolvable enum value %q", ErrMalformed, fv.String())
		}
		// The schema entry's width (via maxLength) wins when pinned, so
		// a 2- or 4-byte enum round-trips its original width even when
		// the code itself would fit in fewer bytes (P1). Only when the
		// schema leaves the width unpinned do we fall back to sizing by
		// the code's own magnitude.
		width := maxLength
		if width != 1 && width != 2 && width != 4 {
			switch {
			case code <= 0xFF:
				width = 1
			case code <= 0xFFFF:
				width = 2
			default:
				width = 4
			}
		}
		switch width {
		case 1:
			return []byte{byte(code)}, nil
		case 2:
			b := make([]byte, 2)
			wire.PutU16(b, 0, uint16(code))
			return b, nil
		default:
			b := make([]byte, 4)
			wire.PutU32(b, 0, uint32(code))
			return b, nil
		}

	case schema.KindBinary, schema.KindVendor:
		if fv.Kind != KindHex {
			return nil, fmt.Errorf("%w: binary/vendor wants a hex fallback", ErrKindMismatch)
		}
		return decodeHex(fv.Hex)

	default:
		return nil, fmt.Errorf("%w: encode has no rule for %s", ErrKindMismatch, kind)
	}
}

func exactLen(raw []byte, n int) ([]byte, error) {
	if len(raw) != n {
		return nil, fmt.Errorf("%w: wants exactly %d bytes, got %d", ErrRange, n, len(raw))
	}
	return raw, nil
}

func wantUint(fv FormattedValue, max uint64) (uint64, error) {
	switch fv.Kind {
	case KindUint:
		if fv.Uint > max {
			return 0, fmt.Errorf("%w: %d exceeds %d", ErrRange, fv.Uint, max)
		}
		return fv.Uint, nil
	case KindInt:
		if fv.Int < 0 || uint64(fv.Int) > max {
			return 0, fmt.Errorf("%w: %d out of range", ErrRange, fv.Int)
		}
		return uint64(fv.Int), nil
	default:
		return 0, fmt.Errorf("%w: wants an integer", ErrKindMismatch)
	}
}

// reverseEnum resolves a FormattedValue produced by Decode (always a
// KindString holding either the display name or a numeric literal)
// back to its numeric code.
func reverseEnum(fv FormattedValue, enumMap *schema.EnumMap) (uint64, bool) {
	switch fv.Kind {
	case KindString:
		return enumMap.ReverseLookup(fv.Str)
	case KindUint:
		return fv.Uint, true
	case KindInt:
		if fv.Int < 0 {
			return 0, false
		}
		return uint64(fv.Int), true
	default:
		return 0, false
	}
}

// parseIPv4Text accepts a dotted quad or an "a.b.c.d/32" form with the
// mask stripped, per §4.B.
func parseIPv4Text(s string) (netip.Addr, error) {
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		s = s[:idx]
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return addr, nil
}

// parseMAC accepts colon-, dash-, or dot-separated hex (the dot form
// being the three-group "aabb.ccdd.eeff" convention) and bare
// unseparated hex.
func parseMAC(s string) ([6]byte, error) {
	var mac [6]byte
	if hw, err := net.ParseMAC(s); err == nil && len(hw) == 6 {
		copy(mac[:], hw)
		return mac, nil
	}
	stripped := strings.NewReplacer(":", "", "-", "", ".", "").Replace(s)
	raw, err := decodeHex(stripped)
	if err != nil || len(raw) != 6 {
		return mac, fmt.Errorf("%w: %q is not a MAC address", ErrMalformed, s)
	}
	copy(mac[:], raw)
	return mac, nil
}

// decodeHex accepts an optional "0x" prefix and ignores spaces and
// colons, per §4.B's binary/vendor fallback encode rule. It requires
// an even digit count.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex digit count in %q", ErrMalformed, s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return raw, nil
}
