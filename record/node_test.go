package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsisgo/docsisconf/values"
)

func TestMarkDirtyPropagatesToAncestors(t *testing.T) {
	root := NewCompound(4, nil, nil, nil)
	mid := NewCompound(1, nil, nil, nil)
	root.AddChild(mid)
	root.Dirty, mid.Dirty = false, false // AddChild already dirtied root; reset for the test

	leaf := NewLeaf(2, []byte{1}, values.NewUint(1), nil)
	mid.AddChild(leaf)

	assert.False(t, leaf.Dirty) // the added leaf's own Raw is still current
	assert.True(t, mid.Dirty)
	assert.True(t, root.Dirty)
}

func TestMarkDirtyShortCircuitsOnDirtyAncestor(t *testing.T) {
	root := NewCompound(4, nil, nil, nil)
	mid := NewCompound(1, nil, nil, nil)
	root.AddChild(mid)

	root.Dirty = false
	mid.Dirty = true // already dirty

	leaf := NewLeaf(2, []byte{1}, values.NewUint(1), nil)
	leaf.Parent = mid
	leaf.MarkDirty()

	assert.True(t, leaf.Dirty)
	assert.True(t, mid.Dirty)
	assert.False(t, root.Dirty, "propagation should have stopped at the already-dirty ancestor")
}

func TestSetFormattedOnLeafMarksDirty(t *testing.T) {
	leaf := NewLeaf(3, []byte{0}, values.NewBool(false), nil)
	leaf.Dirty = false
	leaf.SetFormatted(values.NewBool(true))
	assert.True(t, leaf.Dirty)
	assert.True(t, leaf.Formatted.Bool)
}

func TestSetFormattedOnCompoundIsNoOp(t *testing.T) {
	compound := NewCompound(4, nil, nil, nil)
	compound.Dirty = false
	compound.SetFormatted(values.NewString("should not apply"))
	assert.False(t, compound.Dirty)
}

func TestDocumentRemoveTypePreservesOrder(t *testing.T) {
	doc := &Document{}
	doc.Append(NewLeaf(3, []byte{1}, values.NewBool(true), nil))
	doc.Append(NewLeaf(6, make([]byte, 16), values.NewHex("00"), nil))
	doc.Append(NewLeaf(9, []byte{1}, values.NewUint(1), nil))
	doc.Append(NewLeaf(7, make([]byte, 16), values.NewHex("00"), nil))

	doc.RemoveType(6)
	doc.RemoveType(7)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, 3, doc.Records[0].Type)
	assert.Equal(t, 9, doc.Records[1].Type)
}

func TestCompoundSummaryString(t *testing.T) {
	leaf := NewLeaf(1, []byte{1}, values.NewUint(1), nil)
	c := NewCompound(4, nil, []*Node{leaf}, nil)
	assert.Equal(t, "compound (1 sub-TLV)", c.Formatted.Str)

	c.AddChild(NewLeaf(2, []byte{1}, values.NewUint(1), nil))
	assert.Equal(t, "compound (2 sub-TLVs)", c.Formatted.Str)
}
