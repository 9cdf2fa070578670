// Package tlv is the binary <-> record.Document codec (§4.C): the
// recursive TLV framer with its single-byte/extended length
// discipline, compound-vs-leaf dispatch driven by the schema registry,
// and the value formatter hookup for every leaf.
package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/docsisgo/docsisconf/diag"
	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// endOfData is the top-level end-of-data marker type byte (§6).
const endOfData = 0xFF

// maxSingleByteLength is the largest length expressible in the
// single-byte header form; 255 escapes into the extended form.
const maxSingleByteLength = 254

// Options configures Parse and Serialize.
type Options struct {
	// Version selects which family/version's schema table governs
	// compound-vs-leaf decisions and value-kind lookups.
	Version schema.Version
	// Permissive disables introduced_version gating on lookups (the
	// Open Question resolved in DESIGN.md); schema-valid-at-any-version
	// types are recognized regardless of Version when true.
	Permissive bool
}

// Parse decodes data into a record.Document plus a non-fatal
// diagnostic report. A structural failure (truncated frame, length
// overrun, bad extended-length header) returns a non-nil error and a
// nil Document; everything else — unknown types, value-kind mismatches,
// a compound whose bytes don't parse as a sub-TLV stream — is
// recoverable and shows up as a diagnostic instead (§4.C, §7).
func Parse(data []byte, opts Options) (*record.Document, *diag.Report, error) {
	report := &diag.Report{}
	records, err := parseStream(data, true, nil, opts, report, "")
	if err != nil {
		return nil, report, err
	}
	return &record.Document{Version: opts.Version, Records: records}, report, nil
}

// parseStream parses one TLV stream (the top-level file, or one
// compound's value bytes) into an ordered node sequence. parent is the
// schema entry governing this stream's own sub-TLV namespace, nil for
// the top level or for compounds with no documented sub-structure.
func parseStream(data []byte, topLevel bool, parent *schema.SchemaEntry, opts Options, report *diag.Report, pathPrefix string) ([]*record.Node, error) {
	var out []*record.Node
	cur := 0
	end := len(data)
	idx := 0

	for cur < end {
		typ := int(data[cur])
		if topLevel && typ == endOfData {
			break
		}

		start := cur
		cur++
		if cur >= end {
			return nil, &ParseError{Offset: start, Err: ErrTruncated}
		}

		lengthByte := data[cur]
		cur++
		length := int(lengthByte)
		if lengthByte == endOfData {
			if cur+2 > end {
				return nil, &ParseError{Offset: start, Err: ErrInvalidExtendedLength}
			}
			length = int(data[cur])<<8 | int(data[cur+1])
			cur += 2
		}

		valueEnd := cur + length
		if valueEnd > end || valueEnd < cur {
			return nil, &ParseError{Offset: start, Err: ErrLengthOverrun}
		}
		value := data[cur:valueEnd]
		cur = valueEnd

		var path string
		if topLevel {
			path = fmt.Sprintf("[%d]", idx)
		} else {
			path = fmt.Sprintf("%s.%d", pathPrefix, idx)
		}
		idx++

		node, err := parseOne(typ, value, parent, topLevel, opts, report, path)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}

	return out, nil
}

// parseOne builds a single node for (typ, value), deciding compound
// vs. leaf from the schema and demoting to a hex-fallback leaf on any
// recoverable failure.
func parseOne(typ int, value []byte, parent *schema.SchemaEntry, topLevel bool, opts Options, report *diag.Report, path string) (*record.Node, error) {
	var se *schema.SchemaEntry
	var found bool
	if topLevel {
		se, found = schema.LookupTop(typ, opts.Version, opts.Permissive)
	} else {
		se, found = schema.LookupSub(parent, typ, opts.Version, opts.Permissive)
	}

	if !found {
		report.Warning("unsupported_tlv_type", fmt.Sprintf("type %d is not recognized at %s", typ, opts.Version), path)
		return record.NewLeaf(typ, value, hexFallback(value), nil), nil
	}

	if se.Kind.IsCompound() {
		children, err := parseStream(value, false, se, opts, report, path)
		if err != nil {
			report.Warning("compound_decode_failed", fmt.Sprintf("%s: falling back to opaque value", err), path)
			return record.NewLeaf(typ, value, hexFallback(value), se), nil
		}
		return record.NewCompound(typ, value, children, se), nil
	}

	fv, err := values.Decode(se.Kind, value, se.EnumMap)
	if err != nil {
		report.Warning("value_decode_failed", err.Error(), path)
		return record.NewLeaf(typ, value, hexFallback(value), se), nil
	}
	return record.NewLeaf(typ, value, fv, se), nil
}

func hexFallback(value []byte) values.FormattedValue {
	return values.NewHex(strings.ToUpper(hex.EncodeToString(value)))
}
