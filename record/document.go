package record

import "github.com/docsisgo/docsisconf/schema"

// Document is the top-level record tree: an ordered sequence of
// top-level TLVs plus the version the tree was interpreted under. The
// sequence order is preserved exactly as parsed or as constructed
// (§3's ordering invariant, P8).
type Document struct {
	Version schema.Version
	Records []*Node
}

// Find returns the first top-level record of the given type, or nil.
// Duplicate top-level types are legal (§4.C); callers needing all
// occurrences should scan Records directly.
func (d *Document) Find(typ int) *Node {
	for _, n := range d.Records {
		if n.Type == typ {
			return n
		}
	}
	return nil
}

// FindAll returns every top-level record of the given type, in order.
func (d *Document) FindAll(typ int) []*Node {
	var out []*Node
	for _, n := range d.Records {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// Append adds a record to the end of the top-level sequence.
func (d *Document) Append(n *Node) {
	d.Records = append(d.Records, n)
}

// RemoveType removes every top-level record of the given type,
// preserving the relative order of what remains. Used by the MIC
// engine's generation workflow to strip any existing TLV 6/7 before
// recomputing them.
func (d *Document) RemoveType(typ int) {
	kept := d.Records[:0]
	for _, n := range d.Records {
		if n.Type != typ {
			kept = append(kept, n)
		}
	}
	d.Records = kept
}
