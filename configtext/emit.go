package configtext

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/docsisgo/docsisconf/record"
)

const indentUnit = "    "

// Emit renders doc in the canonical indented config text form (§4.F):
// schema-named blocks for compounds, `Name value;` for leaves, and
// `TlvCode <type> <hex>;` for any record the registry didn't resolve.
func Emit(doc *record.Document) ([]byte, error) {
	var b strings.Builder
	for _, n := range doc.Records {
		emitNode(&b, n, 0)
	}
	return []byte(b.String()), nil
}

func emitNode(b *strings.Builder, n *record.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)

	if n.Schema == nil {
		b.WriteString(indent)
		b.WriteString(tlvCodeKeyword)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(n.Type))
		b.WriteByte(' ')
		b.WriteString(strings.ToUpper(hex.EncodeToString(n.Raw)))
		b.WriteString(";\n")
		return
	}

	if n.Kind == record.KindCompound {
		b.WriteString(indent)
		b.WriteString(n.Name())
		b.WriteString(" {\n")
		for _, c := range n.Children {
			emitNode(b, c, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("}\n")
		return
	}

	b.WriteString(indent)
	b.WriteString(n.Name())
	b.WriteByte(' ')
	b.WriteString(formatLeafLiteral(&n.Formatted))
	b.WriteString(";\n")
}
