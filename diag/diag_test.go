package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNonStrictIgnoresWarnings(t *testing.T) {
	r := &Report{}
	r.Warning("W1", "minor issue", "[3]")
	assert.True(t, r.Valid(false))
	assert.False(t, r.Valid(true))
	assert.False(t, r.HasErrors())
}

func TestValidFalseOnError(t *testing.T) {
	r := &Report{}
	r.Error("E1", "bad thing", "[6]")
	assert.True(t, r.HasErrors())
	assert.False(t, r.Valid(false))
	assert.False(t, r.Valid(true))
}

func TestMergePreservesOrder(t *testing.T) {
	a := &Report{}
	a.Warning("A", "first", "")
	b := &Report{}
	b.Error("B", "second", "")
	a.Merge(b)
	assert.Len(t, a.Diagnostics, 2)
	assert.Equal(t, "A", a.Diagnostics[0].Code)
	assert.Equal(t, "B", a.Diagnostics[1].Code)
}
