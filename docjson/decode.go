package docjson

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docsisgo/docsisconf/diag"
	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// DecodeJSON parses a JSON document into a record.Document, resolving
// every node against the schema registry for the version the document
// declares (or opts.Version, if non-zero, which wins — a caller
// forcing a version takes precedence over the document's own
// metadata).
func DecodeJSON(data []byte, opts DecodeOptions) (*record.Document, *diag.Report, error) {
	var sd Document
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, nil, &DocError{Path: "$", Err: err}
	}
	return ToDocument(&sd, opts)
}

// DecodeYAML parses a YAML document into a record.Document using the
// same field shape and version-resolution rules as DecodeJSON.
func DecodeYAML(data []byte, opts DecodeOptions) (*record.Document, *diag.Report, error) {
	var sd Document
	if err := yaml.Unmarshal(data, &sd); err != nil {
		return nil, nil, &DocError{Path: "$", Err: err}
	}
	return ToDocument(&sd, opts)
}

// DecodeOptions configures ToDocument/DecodeJSON/DecodeYAML.
type DecodeOptions struct {
	// Version, if non-zero, overrides the document's own
	// docsis_version/packetcable_version field.
	Version schema.Version
	// Permissive disables introduced_version gating on lookups, same
	// meaning as tlv.Options.Permissive.
	Permissive bool
}

// ToDocument reconstructs a record.Document from a structured Document,
// per §4.E: unknown fields are ignored, name/description/value_type/
// introduced_version never override the registry, and a leaf with
// both Value and Formatted present resolves from Formatted.
func ToDocument(sd *Document, opts DecodeOptions) (*record.Document, *diag.Report, error) {
	version, err := resolveVersion(sd, opts)
	if err != nil {
		return nil, nil, err
	}

	report := &diag.Report{}
	records := make([]*record.Node, 0, len(sd.TLVs))
	for i, jn := range sd.TLVs {
		path := fmt.Sprintf("tlvs[%d]", i)
		n, err := nodeFromJSON(jn, nil, version, opts.Permissive, report, path)
		if err != nil {
			return nil, report, err
		}
		records = append(records, n)
	}
	return &record.Document{Version: version, Records: records}, report, nil
}

func resolveVersion(sd *Document, opts DecodeOptions) (schema.Version, error) {
	if opts.Version != (schema.Version{}) {
		return opts.Version, nil
	}
	switch {
	case sd.PacketCableVersion != "":
		return parseVersion(sd.PacketCableVersion, schema.PacketCable)
	case sd.DocsisVersion != "":
		return parseVersion(sd.DocsisVersion, schema.Docsis)
	default:
		return schema.Version{}, &DocError{Path: "$", Err: fmt.Errorf("no docsis_version or packetcable_version, and no override supplied")}
	}
}

func parseVersion(s string, family schema.Family) (schema.Version, error) {
	major, minor, ok := strings.Cut(s, ".")
	if !ok {
		return schema.Version{}, fmt.Errorf("docjson: malformed version %q", s)
	}
	maj, err1 := strconv.Atoi(major)
	min, err2 := strconv.Atoi(minor)
	if err1 != nil || err2 != nil {
		return schema.Version{}, fmt.Errorf("docjson: malformed version %q", s)
	}
	return schema.Version{Family: family, Major: maj, Minor: min}, nil
}

// nodeFromJSON builds one record.Node from its structured form. parent
// is the enclosing compound's schema entry (nil at top level), used to
// resolve sub-TLV types within the parent's own namespace.
func nodeFromJSON(jn Node, parent *schema.SchemaEntry, version schema.Version, permissive bool, report *diag.Report, path string) (*record.Node, error) {
	var se *schema.SchemaEntry
	var found bool
	if parent == nil {
		se, found = schema.LookupTop(jn.Type, version, permissive)
	} else {
		se, found = schema.LookupSub(parent, jn.Type, version, permissive)
	}
	if !found {
		report.Warning("unsupported_tlv_type", fmt.Sprintf("type %d is not recognized at %s", jn.Type, version), path)
	}

	if len(jn.SubTLVs) > 0 || (found && se.Kind.IsCompound() && jn.Value == "") {
		children := make([]*record.Node, 0, len(jn.SubTLVs))
		for i, child := range jn.SubTLVs {
			childPath := fmt.Sprintf("%s.subtlvs[%d]", path, i)
			cn, err := nodeFromJSON(child, se, version, permissive, report, childPath)
			if err != nil {
				return nil, err
			}
			children = append(children, cn)
		}
		return record.NewCompound(jn.Type, nil, children, se), nil
	}

	if found && se.Kind.IsCompound() {
		// Value bytes with no subtlvs: a compound the TLV codec could not
		// parse and kept as an opaque hex leaf. Its bytes are kept as-is.
		raw, err := hex.DecodeString(jn.Value)
		if err != nil {
			return nil, &DocError{Path: path, Err: fmt.Errorf("invalid hex value: %w", err)}
		}
		return record.NewLeaf(jn.Type, raw, values.NewHex(strings.ToUpper(jn.Value)), se), nil
	}

	fv, raw, err := resolveLeaf(jn, se, path)
	if err != nil {
		return nil, err
	}
	n := record.NewLeaf(jn.Type, raw, fv, se)
	if raw == nil {
		n.Dirty = true
	}
	return n, nil
}

// resolveLeaf decides the formatted value and, where possible, the raw
// bytes for a leaf node. Formatted wins when both are present (§4.E):
// whenever Formatted is given, raw bytes are left nil and recomputed
// lazily by the TLV codec (Dirty is set by the caller in that case).
func resolveLeaf(jn Node, se *schema.SchemaEntry, path string) (values.FormattedValue, []byte, error) {
	kind := schema.KindBinary
	var enumMap *schema.EnumMap
	if se != nil {
		kind = se.Kind
		enumMap = se.EnumMap
	}

	if jn.Formatted != nil {
		fv, err := scalarToFormatted(kind, jn.Formatted)
		if err != nil {
			return values.FormattedValue{}, nil, &DocError{Path: path, Err: err}
		}
		return fv, nil, nil
	}

	if jn.Value != "" {
		raw, err := hex.DecodeString(jn.Value)
		if err != nil {
			return values.FormattedValue{}, nil, &DocError{Path: path, Err: fmt.Errorf("invalid hex value: %w", err)}
		}
		fv, err := values.Decode(kind, raw, enumMap)
		if err != nil {
			return values.NewHex(strings.ToUpper(jn.Value)), raw, nil
		}
		return fv, raw, nil
	}

	return values.FormattedValue{}, nil, &DocError{Path: path, Err: fmt.Errorf("leaf has neither value nor formatted_value")}
}
