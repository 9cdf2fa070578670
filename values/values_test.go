package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsisgo/docsisconf/schema"
)

func TestBijectionU8(t *testing.T) {
	raw := []byte{0x2A}
	fv, err := Decode(schema.KindU8, raw, nil)
	require.NoError(t, err)
	out, err := Encode(schema.KindU8, fv, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestBijectionU32Frequency(t *testing.T) {
	raw := []byte{0x20, 0x9A, 0x8E, 0xC0} // 547 MHz in Hz
	fv, err := Decode(schema.KindFrequency, raw, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(547000000), fv.Uint)
	out, err := Encode(schema.KindFrequency, fv, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestIPv4ZeroRoundTrip(t *testing.T) {
	raw := []byte{0, 0, 0, 0}
	fv, err := Decode(schema.KindIPv4, raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", fv.IP.String())
	out, err := Encode(schema.KindIPv4, fv, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestIPv4SlashMaskAccepted(t *testing.T) {
	out, err := Encode(schema.KindIPv4, NewString("10.0.0.1/32"), nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 0, 0, 1}, out)
}

func TestIPv6ZeroRoundTrip(t *testing.T) {
	raw := make([]byte, 16)
	fv, err := Decode(schema.KindIPv6, raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "::", fv.IP.String())
	out, err := Encode(schema.KindIPv6, fv, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestMACNormalizesAllInputForms(t *testing.T) {
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF}
	for _, in := range []string{
		"aa:bb:cc:dd:ee:ff",
		"AA:BB:CC:DD:EE:FF",
		"aa-bb-cc-dd-ee-ff",
		"aabb.ccdd.eeff",
	} {
		out, err := Encode(schema.KindMAC, NewString(in), nil, 0)
		require.NoError(t, err, in)
		assert.Equal(t, want, out, in)
	}

	fv, err := Decode(schema.KindMAC, want, nil)
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", fv.String())
}

func TestStringFallsBackToHexOnInvalidUTF8(t *testing.T) {
	raw := []byte{0xFF, 0xFE, 0x00}
	_, err := Decode(schema.KindString, raw, nil)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestBooleanRoundTrip(t *testing.T) {
	fv, err := Decode(schema.KindBoolean, []byte{1}, nil)
	require.NoError(t, err)
	assert.True(t, fv.Bool)
	out, err := Encode(schema.KindBoolean, fv, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, out)
}

func TestBooleanRejectsOtherBytes(t *testing.T) {
	_, err := Decode(schema.KindBoolean, []byte{7}, nil)
	assert.ErrorIs(t, err, ErrRange)
}

func TestEnumDecodeKnownAndUnknown(t *testing.T) {
	enumMap := schema.NewEnumMap(
		schema.EnumEntry{Code: 1, Name: "50 kHz"},
		schema.EnumEntry{Code: 2, Name: "25 kHz"},
	)

	fv, err := Decode(schema.KindEnum, []byte{1}, enumMap)
	require.NoError(t, err)
	assert.Equal(t, "50 kHz", fv.Str)

	// Unknown code decodes to the numeric literal, not an error (P6-adjacent boundary behavior).
	fv, err = Decode(schema.KindEnum, []byte{99}, enumMap)
	require.NoError(t, err)
	assert.Equal(t, "99", fv.Str)

	out, err := Encode(schema.KindEnum, fv, enumMap, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{99}, out)
}

func TestEnumEncodeCaseInsensitiveName(t *testing.T) {
	enumMap := schema.NewEnumMap(schema.EnumEntry{Code: 2, Name: "384 samples"})
	out, err := Encode(schema.KindEnum, NewString("384 SAMPLES"), enumMap, 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, out)
}

func TestBinaryFallbackHexUppercaseNoSeparators(t *testing.T) {
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xCA, 0xFE}
	fv, err := Decode(schema.KindBinary, raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "DEADBEEFCAFE", fv.Hex)

	out, err := Encode(schema.KindBinary, fv, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestHexEncodeOddDigitsRejected(t *testing.T) {
	_, err := Encode(schema.KindBinary, NewHex("ABC"), nil, 0)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestU32RangeRejectsOverflow(t *testing.T) {
	_, err := Encode(schema.KindU32, NewUint(1<<40), nil, 0)
	assert.ErrorIs(t, err, ErrRange)
}

func TestI8SignedRoundTrip(t *testing.T) {
	raw := []byte{0xFC} // -4
	fv, err := Decode(schema.KindI8, raw, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), fv.Int)
	out, err := Encode(schema.KindI8, fv, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}
