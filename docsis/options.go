package docsis

import (
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/validate"
)

// Format selects a wire representation for Parse/Generate/Convert
// (§6's format set: binary, mta_binary, json, yaml, config, or auto).
type Format int

const (
	// FormatAuto sniffs the input in Parse. As a Generate/Convert
	// output format it produces binary.
	FormatAuto Format = iota
	FormatBinary
	// FormatMTABinary is the same TLV wire framing as FormatBinary;
	// it exists as a distinct option only so callers can say what kind
	// of device they mean without also passing a version, per §6's
	// "format ∈ {binary, mta_binary, ...}".
	FormatMTABinary
	FormatJSON
	FormatYAML
	FormatConfig
)

// MICMode selects how Parse treats the CM/CMTS MIC TLVs it finds,
// per §6's `validate_mic ∈ {off, nonstrict, strict}`.
type MICMode int

const (
	MICOff MICMode = iota
	MICNonStrict
	MICStrict
)

// ParseOptions configures Parse.
type ParseOptions struct {
	Format Format
	// Version is used directly for FormatBinary/FormatMTABinary/
	// FormatConfig, which carry no version metadata of their own. For
	// FormatJSON/FormatYAML a non-zero Version overrides the version the
	// document declares; a zero Version uses the document's own.
	Version schema.Version
	// Permissive disables introduced_version gating throughout parsing,
	// the same meaning as tlv.Options.Permissive.
	Permissive bool
	// SharedSecret is required when ValidateMIC != MICOff.
	SharedSecret []byte
	ValidateMIC  MICMode
}

// GenerateOptions configures Generate.
type GenerateOptions struct {
	Format       Format
	SharedSecret []byte
	// AddMIC runs the MIC engine's generation workflow (§4.G) before
	// serialization: strip any existing TLV 6/7, compute and append
	// fresh ones.
	AddMIC bool
}

// ConvertOptions composes ParseOptions and GenerateOptions for the
// parse+generate shorthand.
type ConvertOptions struct {
	Parse    ParseOptions
	Generate GenerateOptions
}

// ValidateOptions configures Validate.
type ValidateOptions struct {
	Version    schema.Version
	Strict     bool
	Level      validate.Level
	Permissive bool
}
