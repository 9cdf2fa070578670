// Package diag is the shared diagnostic-accumulation type used by the
// TLV codec, the JSON/YAML and config-text decoders, the docsis
// facade's MIC checks, and the validation framework (§4.H, §7).
// None of those components ever throws; each one appends to a Report
// and lets the caller decide what the accumulated severities mean.
package diag

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Severity classifies one diagnostic. Unlike the hive lineage this was
// grounded on (which also tracks Info/Critical for forensic repair
// tooling), this domain's error-handling design (§7) only distinguishes
// warning from error, so the type is kept to exactly those two.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one accumulated issue: a severity, a short machine code
// for programmatic matching, a human message, and a path locating it
// (a TLV path like "[24].1" or a byte offset rendered as text).
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Path     string   `json:"path,omitempty"`
}

// Report accumulates Diagnostics in the order they are encountered
// (the ordering guarantee from §5). It is never mutated concurrently
// by this codebase's own APIs — each parse/validate/generate call owns
// its own Report.
type Report struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Add appends d to the report.
func (r *Report) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Warning is a convenience for Add with SeverityWarning.
func (r *Report) Warning(code, message, path string) {
	r.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Path: path})
}

// Error is a convenience for Add with SeverityError.
func (r *Report) Error(code, message, path string) {
	r.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Path: path})
}

// HasErrors reports whether any error-severity diagnostic was added.
func (r *Report) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Valid reports whether the report represents a passing result: no
// errors, and — in strict mode — no warnings either, matching §4.H's
// "strict mode treats warnings as errors".
func (r *Report) Valid(strict bool) bool {
	if r.HasErrors() {
		return false
	}
	if !strict {
		return true
	}
	return len(r.Diagnostics) == 0
}

// Merge appends another report's diagnostics onto r, in order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// FormatJSON renders the report as indented JSON.
func (r *Report) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatText renders a human-readable, one-section-per-severity
// report, errors before warnings.
func (r *Report) FormatText() string {
	var b strings.Builder
	if len(r.Diagnostics) == 0 {
		b.WriteString("No issues found.\n")
		return b.String()
	}

	ordered := make([]Diagnostic, len(r.Diagnostics))
	copy(ordered, r.Diagnostics)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Severity > ordered[j].Severity // errors first
	})

	for i, d := range ordered {
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". [")
		b.WriteString(d.Severity.String())
		b.WriteString("] ")
		b.WriteString(d.Code)
		if d.Path != "" {
			b.WriteString(" at ")
			b.WriteString(d.Path)
		}
		b.WriteString(": ")
		b.WriteString(d.Message)
		b.WriteByte('\n')
	}
	return b.String()
}
