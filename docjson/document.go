// Package docjson implements the Structured I/O component (§4.E): a
// lossless JSON/YAML rendering of a record.Document, sharing one
// intermediate struct tree between both formats (dual json/yaml struct
// tags, the teacher's own pattern for any format-agnostic payload) and
// the "registry wins, formatted_value wins over value on conflict"
// reconstruction contract.
package docjson

import (
	"fmt"

	"github.com/docsisgo/docsisconf/schema"
)

// Document is the structured root: per-document version metadata plus
// the ordered top-level TLV sequence (§6's JSON/YAML document shape).
// Exactly one of DocsisVersion/PacketCableVersion is populated,
// matching the root package's choice of family.
type Document struct {
	DocsisVersion      string `json:"docsis_version,omitempty" yaml:"docsis_version,omitempty"`
	PacketCableVersion string `json:"packetcable_version,omitempty" yaml:"packetcable_version,omitempty"`
	TLVs               []Node `json:"tlvs" yaml:"tlvs"`
}

// Node is one TLV or sub-TLV in the structured rendering. Name,
// Description, ValueType, and IntroducedVersion are advisory
// round-trip annotations only — §4.E requires the registry to win on
// any conflict with them, so ToDocument never trusts these fields to
// select a schema entry, only Type/Subtype and the enclosing
// Document's version do that.
type Node struct {
	Type        int    `json:"type" yaml:"type"`
	Length      int    `json:"length" yaml:"length"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ValueType   string `json:"value_type,omitempty" yaml:"value_type,omitempty"`
	Introduced  string `json:"introduced_version,omitempty" yaml:"introduced_version,omitempty"`

	// Value is the raw bytes, uppercase hex, no separators (§6). Always
	// populated by FromDocument for lossless round-trip; ToDocument
	// only falls back to it when Formatted is absent.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// Formatted holds the native-typed scalar (number, string, bool)
	// for a leaf. When both Value and Formatted are present and they
	// disagree, Formatted wins on reconstruction (§4.E's edit-workflow
	// contract).
	Formatted any `json:"formatted_value,omitempty" yaml:"formatted_value,omitempty"`

	SubTLVs []Node `json:"subtlvs,omitempty" yaml:"subtlvs,omitempty"`
}

// DocError locates a structural problem in a structured document by
// JSON-path-like location, per §7's "errors carry ... a location
// (byte offset, JSON path, or TLV path)".
type DocError struct {
	Path string
	Err  error
}

func (e *DocError) Error() string {
	return fmt.Sprintf("docjson: at %s: %v", e.Path, e.Err)
}

func (e *DocError) Unwrap() error { return e.Err }

func versionString(v schema.Version) string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
