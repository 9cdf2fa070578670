package tlv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

func opts() Options { return Options{Version: schema.DocsisV3_1} }

// Scenario 2: extended length. "08 FF 00 12 <18 bytes>" is TLV 8,
// length 18, using the extended encoding.
func TestExtendedLengthRoundTrip(t *testing.T) {
	value := make([]byte, 18)
	for i := range value {
		value[i] = byte(i)
	}
	input := append([]byte{0x08, 0xFF, 0x00, 0x12}, value...)
	input = append(input, 0xFF) // end-of-data

	doc, report, err := Parse(input, opts())
	require.NoError(t, err)
	assert.Empty(t, report.Diagnostics)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, 8, doc.Records[0].Type)
	assert.Equal(t, 18, len(doc.Records[0].Raw))

	out, err := Serialize(doc, SerializeOptions{Options: opts()})
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

// Scenario 3: unknown TLV fallback. "C9 06 DE AD BE EF CA FE FF".
// 0xC9 = 201, inside DOCSIS's 200-255 vendor blanket range, so it
// resolves to a synthesized vendor leaf with a hex fallback rather
// than truly "unknown" — see schema.TestVendorRangeTypeResolves.
func TestUnknownVendorTLVFallback(t *testing.T) {
	input := []byte{0xC9, 0x06, 0xDE, 0xAD, 0xBE, 0xEF, 0xCA, 0xFE, 0xFF}
	doc, _, err := Parse(input, opts())
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	rec := doc.Records[0]
	assert.Equal(t, 201, rec.Type)
	assert.Equal(t, "DEADBEEFCAFE", rec.Formatted.Hex)

	out, err := Serialize(doc, SerializeOptions{Options: opts()})
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

// Scenario 4: OFDM profile (TLV 62) with sub-TLVs, then an edit that
// flips one byte.
func TestOFDMProfileEditFlipsByte(t *testing.T) {
	input := []byte{0x3E, 0x09, 0x01, 0x01, 0x01, 0x04, 0x01, 0x01, 0x05, 0x01, 0x02, 0xFF}
	doc, report, err := Parse(input, opts())
	require.NoError(t, err)
	assert.Empty(t, report.Diagnostics)
	require.Len(t, doc.Records, 1)

	profile := doc.Records[0]
	require.Equal(t, 62, profile.Type)
	require.Len(t, profile.Children, 3)

	cyclicPrefix := profile.Children[2]
	assert.Equal(t, 5, cyclicPrefix.Type)
	assert.Equal(t, "384 samples", cyclicPrefix.Formatted.Str)

	cyclicPrefix.SetFormatted(values.NewString("512 samples"))

	out, err := Serialize(doc, SerializeOptions{Options: opts()})
	require.NoError(t, err)

	want := []byte{0x3E, 0x09, 0x01, 0x01, 0x01, 0x04, 0x01, 0x01, 0x05, 0x01, 0x03, 0xFF}
	assert.Equal(t, want, out)
}

// Scenario 6: duplicate top-level TLVs preserved in order.
func TestDuplicateTopLevelPreserved(t *testing.T) {
	input := []byte{
		0x06, 0x01, 0xAA,
		0x06, 0x01, 0xBB,
		0xFF,
	}
	doc, _, err := Parse(input, opts())
	require.NoError(t, err)
	require.Len(t, doc.Records, 2)
	assert.Equal(t, byte(0xAA), doc.Records[0].Raw[0])
	assert.Equal(t, byte(0xBB), doc.Records[1].Raw[0])

	out, err := Serialize(doc, SerializeOptions{Options: opts()})
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestLengthOverrunIsFatal(t *testing.T) {
	input := []byte{0x03, 0x05, 0x01} // claims 5 bytes, only 1 present
	_, _, err := Parse(input, opts())
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, perr, ErrLengthOverrun)
}

func TestLength254And255Boundary(t *testing.T) {
	value254 := make([]byte, 254)
	header, err := encodeHeader(9, len(value254))
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 254}, header)

	value255 := make([]byte, 255)
	header, err = encodeHeader(9, len(value255))
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 0xFF, 0x00, 0xFF}, header)
}

func TestCompoundFallsBackToHexWhenInnerParseFails(t *testing.T) {
	// TLV 4 (ClassOfService, compound) with a value that is not a
	// valid TLV sub-stream: a single byte claiming a sub-TLV type 0x01
	// with a length (5) that overruns the enclosing 2-byte value.
	input := []byte{0x04, 0x02, 0x01, 0x05, 0xFF}
	doc, report, err := Parse(input, opts())
	require.NoError(t, err)
	require.Len(t, doc.Records, 1)
	assert.Equal(t, record.KindLeaf, doc.Records[0].Kind)
	assert.Equal(t, "0105", strings.ToLower(doc.Records[0].Formatted.Hex))
	assert.NotEmpty(t, report.Diagnostics)

	out, err := Serialize(doc, SerializeOptions{Options: opts()})
	require.NoError(t, err)
	assert.Equal(t, input, out)
}
