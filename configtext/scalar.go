package configtext

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// literalToFormatted turns one scalar token into the FormattedValue
// variant values.Encode expects for kind, the same "pick the variant,
// let Encode validate" split docjson's scalarToFormatted uses for the
// JSON/YAML path (§4.B's per-kind rules are the single source of
// truth for validity either way).
func literalToFormatted(kind schema.ValueKind, tok token) (values.FormattedValue, error) {
	text := tok.text
	switch kind {
	case schema.KindU8, schema.KindU16, schema.KindU32, schema.KindU64,
		schema.KindFrequency, schema.KindBandwidth, schema.KindDuration:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return values.FormattedValue{}, fmt.Errorf("configtext: %q is not an unsigned integer", text)
		}
		return values.NewUint(n), nil

	case schema.KindI8:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return values.FormattedValue{}, fmt.Errorf("configtext: %q is not an integer", text)
		}
		return values.NewInt(n), nil

	case schema.KindBoolean:
		switch strings.ToLower(text) {
		case "on", "yes", "enabled", "true", "1":
			return values.NewBool(true), nil
		case "off", "no", "disabled", "false", "0":
			return values.NewBool(false), nil
		}
		return values.FormattedValue{}, fmt.Errorf("configtext: %q is not a recognized boolean (on|off|yes|no|enabled|disabled)", text)

	case schema.KindBinary, schema.KindVendor:
		raw, err := parseHexLiteral(text)
		if err != nil {
			return values.FormattedValue{}, err
		}
		return values.NewHex(strings.ToUpper(hex.EncodeToString(raw))), nil

	case schema.KindString:
		return values.NewString(text), nil

	default: // ipv4, ipv6, mac, oid, enum: hand the literal text to Encode as-is
		return values.NewString(text), nil
	}
}

// parseHexLiteral accepts an optional "0x" prefix and strips spaces
// and colons, matching the value formatter's binary/vendor hex
// convention (§4.B) so `TlvCode <type> <hex>;` and a bare-hex leaf
// literal both accept the same input shapes.
func parseHexLiteral(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("configtext: odd hex digit count in %q", s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("configtext: invalid hex literal %q: %w", s, err)
	}
	return raw, nil
}

// formatLeafLiteral renders n's formatted value as it should appear in
// emitted config text: quoted-escaped for strings, bare otherwise.
func formatLeafLiteral(n *values.FormattedValue) string {
	if n.Kind == values.KindString {
		return `"` + escapeString(n.Str) + `"`
	}
	return n.String()
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
