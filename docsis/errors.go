// Package docsis is the library API facade (§6.1): Parse, Generate,
// Convert, Validate, LookupTLV, LookupSubTLV composed over the
// tlv/docjson/configtext/mic/validate/schema packages, grounded on
// pkg/hive's re-export-facade pattern (pkg/hive/options.go,
// pkg/hive/types.go) so callers import one package instead of six.
package docsis

import "fmt"

// ErrKind classifies a facade error by the layer that raised it,
// mirroring pkg/types/api.go's ErrKind (§7's kind taxonomy restated
// for this domain: ParseError, SchemaError, ValueError, MICError,
// ValidationError).
type ErrKind int

const (
	ErrKindParse ErrKind = iota
	ErrKindSchema
	ErrKindValue
	ErrKindMIC
	ErrKindValidation
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindParse:
		return "parse"
	case ErrKindSchema:
		return "schema"
	case ErrKindValue:
		return "value"
	case ErrKindMIC:
		return "mic"
	case ErrKindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause, the same
// shape as pkg/types/api.go's Error.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("docsis: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("docsis: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels for the conditions every caller needs to branch on
// without string-matching a message.
var (
	// ErrUnknownFormat is returned by Parse and Generate when the Format
	// is not one of the defined Format values. Auto-detection does not
	// return it: input it cannot place is parsed as binary.
	ErrUnknownFormat = &Error{Kind: ErrKindParse, Msg: "unknown format"}
	// ErrNoVersion names the condition where neither an explicit version
	// nor a document-declared version is available. Parse does not
	// return it: JSON/YAML input without a version, parsed with a zero
	// ParseOptions.Version, fails as an ErrKindParse error wrapping the
	// docjson decode error.
	ErrNoVersion = &Error{Kind: ErrKindSchema, Msg: "no docsis or packetcable version specified"}
	// ErrMICStrict is returned by Parse when ValidateMIC is MICStrict
	// and either MIC is missing or invalid, per §7's "MIC mismatches
	// in... strict mode they are fatal".
	ErrMICStrict = &Error{Kind: ErrKindMIC, Msg: "MIC validation failed in strict mode"}
	// ErrValidationStrict names a document that is not valid under
	// strict rules. Parse and Validate do not return it; Validate
	// reports its findings through the returned diag.Report.
	ErrValidationStrict = &Error{Kind: ErrKindValidation, Msg: "document failed strict validation"}
)

func wrap(kind ErrKind, msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}
