package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	b := make([]byte, 8)
	PutU16(b, 0, 0xABCD)
	PutU32(b, 2, 0xDEADBEEF)
	assert.Equal(t, uint16(0xABCD), ReadU16(b, 0))
	assert.Equal(t, uint32(0xDEADBEEF), ReadU32(b, 2))
}

func TestCheckedReadTruncated(t *testing.T) {
	b := []byte{0x01, 0x02}
	_, err := CheckedReadU16(b, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = CheckedReadU32(b, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestCheckedReadExact(t *testing.T) {
	b := []byte{0xFF, 0x00, 0x12}
	v, err := CheckedReadU16(b, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0012), v)
}

func TestCheckedSliceBounds(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	s, err := CheckedSlice(b, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, s)

	_, err = CheckedSlice(b, 3, 5)
	require.Error(t, err)
}

func TestAddOverflowSafe(t *testing.T) {
	_, ok := AddOverflowSafe(10, 20)
	assert.True(t, ok)

	_, ok = AddOverflowSafe(1<<62, 1<<62)
	assert.False(t, ok)
}
