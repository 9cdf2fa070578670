package tlv

import (
	"fmt"

	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// SerializeOptions extends Options with the one generation-time choice
// that isn't about interpretation: whether to suppress the trailing
// end-of-data marker (callers that are about to append MIC TLVs want
// it suppressed until after generation finishes, per §4.G's workflow).
type SerializeOptions struct {
	Options
	SuppressEndMarker bool
}

// Serialize emits doc back to its minimal-length-encoded binary form,
// re-synchronizing any dirty node's Raw from its Formatted value (leaf)
// or its children (compound) first. Document order is preserved
// exactly (P8); the buffer is preallocated from EstimateSize to avoid
// reallocation churn on large configs.
func Serialize(doc *record.Document, opts SerializeOptions) ([]byte, error) {
	var size int64
	for _, n := range doc.Records {
		size += EstimateSize(n)
	}
	if !opts.SuppressEndMarker {
		size++
	}
	out := make([]byte, 0, size)

	for _, n := range doc.Records {
		b, err := serializeNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if !opts.SuppressEndMarker {
		out = append(out, endOfData)
	}
	return out, nil
}

// serializeNode resynchronizes n's value bytes if dirty, then emits
// the header + value.
func serializeNode(n *record.Node) ([]byte, error) {
	value, err := nodeValue(n)
	if err != nil {
		return nil, fmt.Errorf("tlv: type %d: %w", n.Type, err)
	}
	header, err := encodeHeader(n.Type, len(value))
	if err != nil {
		return nil, err
	}
	return append(header, value...), nil
}

// nodeValue returns n's wire value bytes, recomputing and caching them
// in n.Raw when n.Dirty is set.
func nodeValue(n *record.Node) ([]byte, error) {
	if !n.Dirty && n.Raw != nil {
		return n.Raw, nil
	}

	switch n.Kind {
	case record.KindCompound:
		value := make([]byte, 0, len(n.Children)*4)
		for _, c := range n.Children {
			b, err := serializeNode(c)
			if err != nil {
				return nil, err
			}
			value = append(value, b...)
		}
		n.Raw = value
		n.Dirty = false
		return value, nil

	default: // record.KindLeaf
		kind := schemaKindOf(n)
		enumMap := schemaEnumOf(n)
		maxLen := 0
		if n.Schema != nil {
			maxLen = n.Schema.MaxLength
		}
		b, err := values.Encode(kind, n.Formatted, enumMap, maxLen)
		if err != nil {
			return nil, err
		}
		n.Raw = b
		n.Dirty = false
		return b, nil
	}
}

// encodeHeader picks the minimal length encoding: single-byte for
// lengths <= 254, the 4-byte extended form (type, 0xFF, hi, lo) for
// 255-65535 (§4.C step 2).
func encodeHeader(typ, length int) ([]byte, error) {
	if typ < 0 || typ > 0xFF {
		return nil, fmt.Errorf("%w: %d", ErrTypeOutOfRange, typ)
	}
	if length < 0 || length > 0xFFFF {
		return nil, fmt.Errorf("tlv: length %d exceeds 16-bit extended encoding", length)
	}
	if length <= maxSingleByteLength {
		return []byte{byte(typ), byte(length)}, nil
	}
	return []byte{byte(typ), endOfData, byte(length >> 8), byte(length)}, nil
}

func schemaKindOf(n *record.Node) schema.ValueKind {
	if n.Schema != nil {
		return n.Schema.Kind
	}
	return schema.KindBinary
}

func schemaEnumOf(n *record.Node) *schema.EnumMap {
	if n.Schema != nil {
		return n.Schema.EnumMap
	}
	return nil
}
