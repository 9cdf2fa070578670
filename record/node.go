// Package record is the in-memory TLV record model (§3, §4.D): a
// tagged-variant tree of Leaf and Compound nodes produced by the TLV
// codec, consumed by structured I/O, config text, MIC computation, and
// validation. A Node owns its children and byte buffers exclusively;
// the tree as a whole is acyclic.
package record

import (
	"strconv"

	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// Kind discriminates the two node variants named in the source
// material's re-architecture notes: a Leaf carries a decoded scalar,
// a Compound carries an ordered child sequence. Using an explicit
// discriminant field (rather than two separate types behind an
// interface) keeps the codec's hot parse/serialize loop allocation-free
// and keeps JSON/config marshaling a single switch instead of a type
// assertion.
type Kind int

const (
	KindLeaf Kind = iota
	KindCompound
)

// Node is one TLV or sub-TLV record. Exactly the fields relevant to
// Kind are meaningful: Formatted and nothing else for a Leaf;
// Children (and a descriptive Formatted string, by convention) for a
// Compound. Raw is always preserved per the §3 invariant, even when
// Children is non-nil.
type Node struct {
	Kind Kind
	Type int

	// Raw is the value bytes exactly as they appear (or will appear)
	// on the wire — never the header. For a Compound, Raw is
	// optionally cached as the concatenation of the children's wire
	// encodings; when Dirty, this cache is out of date and the TLV
	// codec recomputes it from Children before any byte is trusted.
	Raw []byte

	// Formatted is the human-editable scalar for a Leaf. For a
	// Compound it holds a descriptive summary string (e.g. "compound
	// (3 sub-TLVs)"), used only for display — never for re-encoding.
	Formatted values.FormattedValue

	Children []*Node
	Parent   *Node

	// Schema is the registry entry that governed this node's
	// interpretation, or nil if the type was unrecognized at parse
	// time (an opaque leaf with a hex Formatted fallback).
	Schema *schema.SchemaEntry

	// Dirty marks this node (and, via MarkDirty, every ancestor) as
	// having a Raw cache that no longer reflects Formatted/Children
	// and must be recomputed before serialization.
	Dirty bool
}

// NewLeaf constructs a leaf node. raw is the wire-encoded value bytes;
// fv is its already-decoded formatted counterpart.
func NewLeaf(typ int, raw []byte, fv values.FormattedValue, se *schema.SchemaEntry) *Node {
	return &Node{Kind: KindLeaf, Type: typ, Raw: raw, Formatted: fv, Schema: se}
}

// NewCompound constructs a compound node from already-parsed children.
// raw, if provided, is the original wire bytes (preserved per the §3
// invariant); pass nil to have the TLV codec compute it on first
// serialization.
func NewCompound(typ int, raw []byte, children []*Node, se *schema.SchemaEntry) *Node {
	n := &Node{Kind: KindCompound, Type: typ, Raw: raw, Children: children, Schema: se}
	for _, c := range children {
		c.Parent = n
	}
	n.Formatted = values.NewString(summary(len(children)))
	return n
}

func summary(n int) string {
	if n == 1 {
		return "compound (1 sub-TLV)"
	}
	return "compound (" + strconv.Itoa(n) + " sub-TLVs)"
}

// MarkDirty marks n and every ancestor as dirty, stopping as soon as
// an already-dirty ancestor is reached (its ancestors must already be
// marked). Mirrors the ancestor-dirty-propagation used for incremental
// serialization elsewhere in this codebase's lineage.
func (n *Node) MarkDirty() {
	cur := n
	for cur != nil {
		if cur.Dirty {
			break
		}
		cur.Dirty = true
		cur = cur.Parent
	}
}

// SetFormatted replaces a leaf's formatted value and marks the node
// (and ancestry) dirty so serialization re-synchronizes Raw from it.
// Calling this on a Compound is a programmer error; it is a no-op.
func (n *Node) SetFormatted(fv values.FormattedValue) {
	if n.Kind != KindLeaf {
		return
	}
	n.Formatted = fv
	n.MarkDirty()
}

// AddChild appends child to a Compound node's children in order and
// marks the tree dirty. Calling this on a Leaf is a programmer error;
// it is a no-op.
func (n *Node) AddChild(child *Node) {
	if n.Kind != KindCompound {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	n.Formatted = values.NewString(summary(len(n.Children)))
	n.MarkDirty()
}

// RemoveChildAt removes the child at index i from a Compound node.
func (n *Node) RemoveChildAt(i int) {
	if n.Kind != KindCompound || i < 0 || i >= len(n.Children) {
		return
	}
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	n.Formatted = values.NewString(summary(len(n.Children)))
	n.MarkDirty()
}

// Walk visits n and, for a Compound, every descendant in document
// order, depth-first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Name returns the schema-assigned name, or a synthesized "Type<N>"
// label when the type was unrecognized.
func (n *Node) Name() string {
	if n.Schema != nil {
		return n.Schema.Name
	}
	return "Type" + strconv.Itoa(n.Type)
}
