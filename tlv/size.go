package tlv

import "github.com/docsisgo/docsisconf/record"

// EstimateSize recursively estimates the serialized size of n and its
// descendants, used to preallocate Serialize's output buffer. It is an
// upper-bound-ish estimate, not an exact count when Raw caches are
// stale, since it reads cached lengths where available rather than
// forcing a resynchronization.
func EstimateSize(n *record.Node) int64 {
	var size int64
	switch n.Kind {
	case record.KindCompound:
		size += headerSize(len(n.Raw))
		if n.Dirty || n.Raw == nil {
			for _, c := range n.Children {
				size += EstimateSize(c)
			}
		} else {
			size += int64(len(n.Raw))
		}
	default:
		size += headerSize(len(n.Raw)) + int64(len(n.Raw))
	}
	return size
}

// headerSize returns 2 for the single-byte length form, 4 for the
// extended form — mirroring encodeHeader's own choice.
func headerSize(length int) int64 {
	if length <= maxSingleByteLength {
		return 2
	}
	return 4
}
