// Package wire houses low-level big-endian byte accessors used by the
// values package. DOCSIS is a network-byte-order
// (big-endian) wire format; keeping the primitives here keeps bounds
// checking in one place instead of scattered across every decoder.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Errors returned by the Checked* accessors below.
var (
	// ErrTruncated indicates the buffer lacked the bytes required for a read.
	ErrTruncated = errors.New("wire: truncated buffer")
	// ErrOverflow indicates an arithmetic operation would overflow an int.
	ErrOverflow = errors.New("wire: integer overflow")
)

// ReadU8 reads a single byte at off.
func ReadU8(b []byte, off int) uint8 { return b[off] }

// ReadU16 reads a big-endian uint16 at off.
func ReadU16(b []byte, off int) uint16 { return binary.BigEndian.Uint16(b[off : off+2]) }

// ReadU32 reads a big-endian uint32 at off.
func ReadU32(b []byte, off int) uint32 { return binary.BigEndian.Uint32(b[off : off+4]) }

// ReadU64 reads a big-endian uint64 at off.
func ReadU64(b []byte, off int) uint64 { return binary.BigEndian.Uint64(b[off : off+8]) }

// PutU16 writes v as big-endian at off.
func PutU16(b []byte, off int, v uint16) { binary.BigEndian.PutUint16(b[off:off+2], v) }

// PutU32 writes v as big-endian at off.
func PutU32(b []byte, off int, v uint32) { binary.BigEndian.PutUint32(b[off:off+4], v) }

// PutU64 writes v as big-endian at off.
func PutU64(b []byte, off int, v uint64) { binary.BigEndian.PutUint64(b[off:off+8], v) }

// CheckedReadU8 reads one byte, bounds-checked.
func CheckedReadU8(b []byte, off int) (uint8, error) {
	if off < 0 || off+1 > len(b) {
		return 0, fmt.Errorf("%w: need 1 byte at %d, have %d", ErrTruncated, off, len(b))
	}
	return b[off], nil
}

// CheckedReadU16 reads a big-endian uint16, bounds-checked.
func CheckedReadU16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, fmt.Errorf("%w: need 2 bytes at %d, have %d", ErrTruncated, off, len(b))
	}
	return ReadU16(b, off), nil
}

// CheckedReadU32 reads a big-endian uint32, bounds-checked.
func CheckedReadU32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, fmt.Errorf("%w: need 4 bytes at %d, have %d", ErrTruncated, off, len(b))
	}
	return ReadU32(b, off), nil
}

// CheckedReadU64 reads a big-endian uint64, bounds-checked.
func CheckedReadU64(b []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, fmt.Errorf("%w: need 8 bytes at %d, have %d", ErrTruncated, off, len(b))
	}
	return ReadU64(b, off), nil
}

// CheckedSlice returns b[off:off+n], bounds-checked.
func CheckedSlice(b []byte, off, n int) ([]byte, error) {
	end, ok := AddOverflowSafe(off, n)
	if !ok || off < 0 || end > len(b) {
		return nil, fmt.Errorf("%w: need %d bytes at %d, have %d", ErrTruncated, n, off, len(b))
	}
	return b[off:end], nil
}

// AddOverflowSafe adds a and b, reporting whether the result overflowed int
// or went negative. Guards against malicious length fields summing past the
// platform's int range before a bounds check ever runs.
func AddOverflowSafe(a, b int) (int, bool) {
	sum := a + b
	if b > 0 && sum < a {
		return 0, false
	}
	if b < 0 && sum > a {
		return 0, false
	}
	return sum, true
}
