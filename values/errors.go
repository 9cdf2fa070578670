package values

import "errors"

// Sentinel errors returned by Decode/Encode. Callers (the TLV codec)
// treat any of these as a signal to demote the leaf to a hex fallback
// rather than aborting the whole parse, per §4.B's failure semantics.
var (
	// ErrRange indicates an integer, or a byte slice for a
	// fixed-width kind, was outside the kind's representable range.
	ErrRange = errors.New("values: value out of range")
	// ErrMalformed indicates a formatted scalar could not be parsed
	// into the shape its kind requires (bad dotted quad, bad MAC, odd
	// hex digit count, and so on).
	ErrMalformed = errors.New("values: malformed scalar")
	// ErrKindMismatch indicates the FormattedValue variant does not
	// match what the requested ValueKind expects.
	ErrKindMismatch = errors.New("values: formatted value kind mismatch")
	// ErrInvalidUTF8 indicates string-kind bytes were not valid UTF-8
	// and no hex fallback was permitted by the caller.
	ErrInvalidUTF8 = errors.New("values: invalid utf-8 string")
)
