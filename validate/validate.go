// Package validate implements the layered Validation Framework
// (§4.H): structural, schema-type, required-TLV, range, compound-
// schema, and pluggable cross-TLV consistency checks over a
// record.Document, accumulating results in a diag.Report that never
// aborts early — every layer that applies runs and contributes its own
// findings.
package validate

import (
	"fmt"

	"github.com/docsisgo/docsisconf/diag"
	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// Options configures a Validate call.
type Options struct {
	// Version selects the schema table layer 2-5 checks run against.
	Version schema.Version
	// Strict makes Report.Valid treat warnings as errors (passed
	// straight through to diag.Report.Valid).
	Strict bool
	// Level bounds how many layers run.
	Level Level
	// Permissive disables introduced_version gating on lookups, same
	// meaning as tlv.Options.Permissive — a permissive validation run
	// does not flag a TLV as unsupported purely for appearing before
	// its introduced_version.
	Permissive bool
	// Rules are the pluggable cross-TLV consistency checks to run at
	// LevelCompliance/LevelFull. Defaults to DefaultRules() when nil.
	Rules []Rule
}

// Rule is one pluggable cross-TLV consistency check (layer 6).
type Rule func(doc *record.Document, opts Options, report *diag.Report)

// Validate runs every layer up to opts.Level against doc and returns
// the accumulated report. It never returns an error: every finding,
// however severe, is reported as a diagnostic, matching §4.H's "the
// framework never throws" contract. Callers read report.Valid(opts.Strict)
// for the pass/fail verdict.
func Validate(doc *record.Document, opts Options) *diag.Report {
	report := &diag.Report{}

	checkRequired(doc, opts, report)
	for idx, n := range doc.Records {
		path := fmt.Sprintf("[%d]", idx)
		checkNode(n, opts, report, path)
	}

	if opts.Level.includesCompliance() {
		rules := opts.Rules
		if rules == nil {
			rules = DefaultRules()
		}
		for _, rule := range rules {
			rule(doc, opts, report)
		}
	}

	return report
}

// checkNode runs layers 2 (schema-type), 4 (range), and 5 (compound
// schema) over n and recurses into children. Layer 1 (structural) is
// not re-checked here: a record.Node that exists at all already
// satisfied the codec's structural checks at parse time, so this layer
// is a no-op for tree-shaped input.
func checkNode(n *record.Node, opts Options, report *diag.Report, path string) {
	if !opts.Level.includesSchema() {
		return
	}

	if n.Schema == nil {
		report.Error("unsupported_tlv_type", fmt.Sprintf("type %d is not recognized at %s", n.Type, opts.Version), path)
		return
	}

	if n.Kind == record.KindCompound {
		checkCompoundChildren(n, opts, report, path)
		for i, child := range n.Children {
			checkNode(child, opts, report, fmt.Sprintf("%s.%d", path, i))
		}
		return
	}

	checkRange(n, opts, report, path)
}

// checkCompoundChildren is layer 5: every child's subtype must be
// known in the parent's own sub-TLV schema.
func checkCompoundChildren(n *record.Node, opts Options, report *diag.Report, path string) {
	if n.Schema == nil || n.Schema.SubTLVs == nil {
		return
	}
	for i, child := range n.Children {
		if child.Schema == nil {
			childPath := fmt.Sprintf("%s.%d", path, i)
			report.Error("unsupported_subtlv_type",
				fmt.Sprintf("subtype %d is not recognized under %s", child.Type, n.Name()), childPath)
		}
	}
}

// checkRange is layer 4: a leaf's max_length constraint. Value-kind
// range checks (integer bounds, valid UTF-8, parseable IP/MAC) are
// already enforced by values.Decode at parse time — a leaf that exists
// with a non-hex Formatted value already satisfied them, so this layer
// adds only the max_length check the formatter does not own, plus the
// exact 16-byte length of the top-level DOCSIS MIC TLVs 6 and 7.
func checkRange(n *record.Node, opts Options, report *diag.Report, path string) {
	if n.Schema == nil {
		return
	}
	if n.Parent == nil && opts.Version.Family == schema.Docsis && (n.Type == 6 || n.Type == 7) {
		raw := n.Raw
		if n.Dirty {
			if b, err := values.Encode(n.Schema.Kind, n.Formatted, n.Schema.EnumMap, 0); err == nil {
				raw = b
			}
		}
		if len(raw) != 16 {
			report.Error("mic_length_invalid",
				fmt.Sprintf("%s is %d bytes, a MIC is 16 bytes", n.Name(), len(raw)), path)
		}
		return
	}
	if n.Schema.MaxLength <= 0 {
		return
	}
	if len(n.Raw) > n.Schema.MaxLength {
		report.Error("value_exceeds_max_length",
			fmt.Sprintf("%s is %d bytes, exceeds max_length %d", n.Name(), len(n.Raw), n.Schema.MaxLength),
			path)
	}
}

// checkRequired is layer 3: every TLV the registry marks required_in
// this version must appear at least once at top level.
func checkRequired(doc *record.Document, opts Options, report *diag.Report) {
	if !opts.Level.includesSchema() {
		return
	}
	for _, typ := range schema.RequiredTypes(opts.Version) {
		if doc.Find(typ) == nil {
			se, _ := schema.LookupTop(typ, opts.Version, true)
			name := fmt.Sprintf("Type%d", typ)
			if se != nil {
				name = se.Name
			}
			report.Error("required_tlv_missing",
				fmt.Sprintf("%s (type %d) is required at %s but absent", name, typ, opts.Version), "")
		}
	}
}
