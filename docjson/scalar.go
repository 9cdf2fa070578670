package docjson

import (
	"fmt"
	"strconv"

	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// scalarToFormatted wraps a decoded JSON/YAML scalar into the
// FormattedValue variant values.Encode expects for kind. It does not
// itself validate range or text syntax — that is values.Encode's job —
// it only picks the right tagged-union variant so Encode's existing
// per-kind rules (§4.B) run unchanged whether the value arrived from a
// TLV parse or from a structured document.
func scalarToFormatted(kind schema.ValueKind, v any) (values.FormattedValue, error) {
	switch kind {
	case schema.KindU8, schema.KindU16, schema.KindU32, schema.KindU64,
		schema.KindFrequency, schema.KindBandwidth, schema.KindDuration:
		n, err := toUint(v)
		if err != nil {
			return values.FormattedValue{}, err
		}
		return values.NewUint(n), nil

	case schema.KindI8:
		n, err := toInt(v)
		if err != nil {
			return values.FormattedValue{}, err
		}
		return values.NewInt(n), nil

	case schema.KindBoolean:
		b, err := toBool(v)
		if err != nil {
			return values.FormattedValue{}, err
		}
		return values.NewBool(b), nil

	case schema.KindBinary, schema.KindVendor:
		s, ok := v.(string)
		if !ok {
			return values.FormattedValue{}, fmt.Errorf("docjson: %v wants a hex string", kind)
		}
		return values.NewHex(s), nil

	case schema.KindEnum:
		// Enum reverse-lookup accepts either the display name (string)
		// or a bare numeric code (§4.A); preserve whichever arrived.
		switch t := v.(type) {
		case string:
			return values.NewString(t), nil
		default:
			n, err := toUint(v)
			if err != nil {
				return values.FormattedValue{}, fmt.Errorf("docjson: enum value must be a string or integer")
			}
			return values.NewUint(n), nil
		}

	default: // string, ipv4, ipv6, mac, oid, compound (display only)
		s, ok := v.(string)
		if !ok {
			return values.FormattedValue{}, fmt.Errorf("docjson: %v wants a string", kind)
		}
		return values.NewString(s), nil
	}
}

func toUint(v any) (uint64, error) {
	switch t := v.(type) {
	case float64:
		if t < 0 {
			return 0, fmt.Errorf("docjson: negative value for unsigned field")
		}
		return uint64(t), nil
	case int:
		if t < 0 {
			return 0, fmt.Errorf("docjson: negative value for unsigned field")
		}
		return uint64(t), nil
	case int64:
		if t < 0 {
			return 0, fmt.Errorf("docjson: negative value for unsigned field")
		}
		return uint64(t), nil
	case uint64:
		return t, nil
	case string:
		return strconv.ParseUint(t, 10, 64)
	default:
		return 0, fmt.Errorf("docjson: %T is not a number", v)
	}
}

func toInt(v any) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, fmt.Errorf("docjson: %T is not a number", v)
	}
}

func toBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		switch t {
		case "enabled", "on", "yes", "true", "1":
			return true, nil
		case "disabled", "off", "no", "false", "0":
			return false, nil
		}
		return false, fmt.Errorf("docjson: %q is not a recognized boolean", t)
	default:
		return false, fmt.Errorf("docjson: %T is not a boolean", v)
	}
}
