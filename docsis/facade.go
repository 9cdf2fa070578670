package docsis

import (
	"github.com/docsisgo/docsisconf/configtext"
	"github.com/docsisgo/docsisconf/diag"
	"github.com/docsisgo/docsisconf/docjson"
	"github.com/docsisgo/docsisconf/mic"
	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/tlv"
	"github.com/docsisgo/docsisconf/validate"
)

// Parse decodes data per opts into a record.Document and an
// accumulated diagnostic report (§6's `parse(bytes, options) ->
// Result<Tree, Error>`). A structural parse failure returns a non-nil
// error and a nil Document; MIC failure under MICStrict likewise
// returns a non-nil error, but with the Document and report intact so
// a caller can inspect what was parsed before MIC invalidated it.
func Parse(data []byte, opts ParseOptions) (*record.Document, *diag.Report, error) {
	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(data)
	}

	var doc *record.Document
	var report *diag.Report
	var err error

	switch format {
	case FormatBinary, FormatMTABinary:
		doc, report, err = tlv.Parse(data, tlv.Options{Version: opts.Version, Permissive: opts.Permissive})
		if err != nil {
			return nil, report, wrap(ErrKindParse, "binary parse failed", err)
		}
	case FormatJSON:
		doc, report, err = docjson.DecodeJSON(data, docjson.DecodeOptions{Version: opts.Version, Permissive: opts.Permissive})
		if err != nil {
			return nil, report, wrap(ErrKindParse, "JSON parse failed", err)
		}
	case FormatYAML:
		doc, report, err = docjson.DecodeYAML(data, docjson.DecodeOptions{Version: opts.Version, Permissive: opts.Permissive})
		if err != nil {
			return nil, report, wrap(ErrKindParse, "YAML parse failed", err)
		}
	case FormatConfig:
		doc, report, err = configtext.Parse(data, configtext.Options{Version: opts.Version, Permissive: opts.Permissive})
		if err != nil {
			return nil, report, wrap(ErrKindParse, "config text parse failed", err)
		}
	default:
		return nil, nil, ErrUnknownFormat
	}

	if opts.ValidateMIC != MICOff {
		if err := checkMIC(doc, report, opts); err != nil {
			return doc, report, err
		}
	}

	return doc, report, nil
}

// checkMIC runs both CM and CMTS MIC validation and, per §7's "MIC
// mismatches in non-strict mode are diagnostics; in strict mode they
// are fatal", either adds diagnostics or returns ErrMICStrict.
func checkMIC(doc *record.Document, report *diag.Report, opts ParseOptions) error {
	results, err := validateAllMIC(doc, opts.SharedSecret)
	if err != nil {
		return wrap(ErrKindMIC, "MIC computation failed", err)
	}

	strict := opts.ValidateMIC == MICStrict
	fatal := false
	for name, res := range results {
		switch res.Status {
		case mic.StatusMissing:
			report.Warning("mic_missing", name+" MIC is not present", "")
			if strict {
				fatal = true
			}
		case mic.StatusInvalid:
			report.Error("mic_invalid", name+" MIC does not match the computed digest", "")
			if strict {
				fatal = true
			}
		}
	}
	if fatal {
		return ErrMICStrict
	}
	return nil
}

func validateAllMIC(doc *record.Document, secret []byte) (map[string]mic.Result, error) {
	cm, err := mic.ValidateCMMIC(doc, secret)
	if err != nil {
		return nil, err
	}
	cmts, err := mic.ValidateCMTSMIC(doc, secret)
	if err != nil {
		return nil, err
	}
	return map[string]mic.Result{"CM": cm, "CMTS": cmts}, nil
}

// Generate renders doc per opts (§6's `generate(tree, options) ->
// Result<bytes_or_text, Error>`). When AddMIC is set, doc is mutated
// in place by the MIC engine's generation workflow before rendering.
func Generate(doc *record.Document, opts GenerateOptions) ([]byte, error) {
	if opts.AddMIC {
		if err := mic.GenerateWithMIC(doc, opts.SharedSecret); err != nil {
			return nil, wrap(ErrKindMIC, "MIC generation failed", err)
		}
	}

	switch opts.Format {
	case FormatBinary, FormatMTABinary, FormatAuto:
		out, err := tlv.Serialize(doc, tlv.SerializeOptions{Options: tlv.Options{Version: doc.Version}})
		if err != nil {
			return nil, wrap(ErrKindValue, "binary serialize failed", err)
		}
		return out, nil
	case FormatJSON:
		out, err := docjson.EncodeJSON(doc)
		if err != nil {
			return nil, wrap(ErrKindValue, "JSON encode failed", err)
		}
		return out, nil
	case FormatYAML:
		out, err := docjson.EncodeYAML(doc)
		if err != nil {
			return nil, wrap(ErrKindValue, "YAML encode failed", err)
		}
		return out, nil
	case FormatConfig:
		out, err := configtext.Emit(doc)
		if err != nil {
			return nil, wrap(ErrKindValue, "config text emit failed", err)
		}
		return out, nil
	default:
		return nil, ErrUnknownFormat
	}
}

// Convert is the parse+generate shorthand (§6's `convert(input,
// options) -> Result<output, Error>`).
func Convert(input []byte, opts ConvertOptions) ([]byte, *diag.Report, error) {
	doc, report, err := Parse(input, opts.Parse)
	if err != nil {
		return nil, report, err
	}
	out, err := Generate(doc, opts.Generate)
	return out, report, err
}

// Validate runs the layered Validation Framework over doc (§6's
// `validate(tree, options) -> Result<Diagnostics, Error>`). Like the
// underlying validate package, this never returns an error: every
// finding is a diagnostic in the returned report.
func Validate(doc *record.Document, opts ValidateOptions) *diag.Report {
	return validate.Validate(doc, validate.Options{
		Version:    opts.Version,
		Strict:     opts.Strict,
		Level:      opts.Level,
		Permissive: opts.Permissive,
	})
}

// LookupTLV resolves a top-level TLV type at version v (§6's
// `lookup_tlv(type, version)`).
func LookupTLV(typ int, v schema.Version) (*schema.SchemaEntry, bool) {
	return schema.LookupTop(typ, v, false)
}

// LookupSubTLV resolves a sub-TLV within parent's own compound
// namespace at version v (§6's `lookup_subtlv(parent_type, subtype,
// version)`). parent must itself be a compound schema entry, obtained
// from a prior LookupTLV or LookupSubTLV call.
func LookupSubTLV(parent *schema.SchemaEntry, subtype int, v schema.Version) (*schema.SchemaEntry, bool) {
	return schema.LookupSub(parent, subtype, v, false)
}
