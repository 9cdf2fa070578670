package docjson

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// FromDocument builds the structured rendering of doc. Every leaf
// carries both Value (hex raw bytes) and Formatted (native scalar) so
// the JSON/YAML intermediate is lossless even for unknown TLVs, whose
// Formatted is itself the hex fallback string (P3).
func FromDocument(doc *record.Document) *Document {
	out := &Document{TLVs: make([]Node, 0, len(doc.Records))}
	if doc.Version.Family == schema.PacketCable {
		out.PacketCableVersion = versionString(doc.Version)
	} else {
		out.DocsisVersion = versionString(doc.Version)
	}
	for _, n := range doc.Records {
		out.TLVs = append(out.TLVs, nodeToJSON(n))
	}
	return out
}

func nodeToJSON(n *record.Node) Node {
	jn := Node{
		Type:   n.Type,
		Length: len(n.Raw),
		Name:   n.Name(),
		Value:  strings.ToUpper(hex.EncodeToString(n.Raw)),
	}
	if n.Schema != nil {
		jn.Description = n.Schema.Description
		jn.ValueType = n.Schema.Kind.String()
		jn.Introduced = versionString(n.Schema.IntroducedVersion)
	}
	if n.Kind == record.KindCompound {
		jn.SubTLVs = make([]Node, 0, len(n.Children))
		for _, c := range n.Children {
			jn.SubTLVs = append(jn.SubTLVs, nodeToJSON(c))
		}
		jn.Formatted = n.Formatted.String()
		return jn
	}
	jn.Formatted = formattedToJSON(n.Formatted)
	return jn
}

// formattedToJSON maps a values.FormattedValue onto the native JSON/
// YAML scalar it represents — a number stays a number, an address or
// MAC renders as its canonical text form — rather than always
// stringifying, so downstream JSON consumers see real types.
func formattedToJSON(fv values.FormattedValue) any {
	switch fv.Kind {
	case values.KindInt:
		return fv.Int
	case values.KindUint:
		return fv.Uint
	case values.KindBool:
		return fv.Bool
	case values.KindIPv4, values.KindIPv6, values.KindMAC, values.KindString, values.KindHex:
		return fv.String()
	default:
		return fv.String()
	}
}

// EncodeJSON renders doc as indented, UTF-8 JSON (§6's JSON document
// contract).
func EncodeJSON(doc *record.Document) ([]byte, error) {
	return json.MarshalIndent(FromDocument(doc), "", "  ")
}

// EncodeYAML renders doc as YAML using the same intermediate struct
// tree as EncodeJSON, so both formats are field-for-field identical
// (§6's "YAML is semantically identical to JSON" contract).
func EncodeYAML(doc *record.Document) ([]byte, error) {
	return yaml.Marshal(FromDocument(doc))
}
