package mic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/tlv"
)

var testOpts = tlv.Options{Version: schema.DocsisV3_1}

// Scenario 1: minimal config with MIC. TLV 3, length 1, value 01;
// generate with add_mic=true; re-parse with validate_mic=strict and
// the same secret succeeds.
func TestGenerateThenValidateRoundTrip(t *testing.T) {
	secret := []byte("test_secret")

	doc, _, err := tlv.Parse([]byte{0x03, 0x01, 0x01}, testOpts)
	require.NoError(t, err)

	require.NoError(t, GenerateWithMIC(doc, secret))
	require.Len(t, doc.Records, 3)
	assert.Equal(t, TLVTypeCMMIC, doc.Records[1].Type)
	assert.Equal(t, TLVTypeCMTSMIC, doc.Records[2].Type)
	assert.Len(t, doc.Records[1].Raw, 16)
	assert.Len(t, doc.Records[2].Raw, 16)

	out, err := tlv.Serialize(doc, tlv.SerializeOptions{Options: testOpts})
	require.NoError(t, err)
	require.Equal(t, 40, len(out)) // TLV3(2+1) + TLV6(2+16) + TLV7(2+16) + EOD(1)
	assert.Equal(t, byte(0x03), out[0])
	assert.Equal(t, byte(0x01), out[1])
	assert.Equal(t, byte(0x01), out[2])
	assert.Equal(t, byte(TLVTypeCMMIC), out[3])
	assert.Equal(t, byte(16), out[4])
	assert.Equal(t, byte(TLVTypeCMTSMIC), out[3+2+16])
	assert.Equal(t, byte(16), out[3+2+16+1])
	assert.Equal(t, byte(0xFF), out[len(out)-1])

	reparsed, report, err := tlv.Parse(out, testOpts)
	require.NoError(t, err)
	assert.Empty(t, report.Diagnostics)

	cmResult, err := ValidateCMMIC(reparsed, secret)
	require.NoError(t, err)
	assert.Equal(t, StatusValid, cmResult.Status)

	cmtsResult, err := ValidateCMTSMIC(reparsed, secret)
	require.NoError(t, err)
	assert.Equal(t, StatusValid, cmtsResult.Status)
}

// Scenario 5: MIC mismatch detection. Take scenario 1's output and
// flip one byte of TLV 3's value; validating with the same secret
// must report a computed/stored mismatch, not a silent pass.
func TestValidateDetectsMismatchAfterTamper(t *testing.T) {
	secret := []byte("test_secret")

	doc, _, err := tlv.Parse([]byte{0x03, 0x01, 0x01}, testOpts)
	require.NoError(t, err)
	require.NoError(t, GenerateWithMIC(doc, secret))

	out, err := tlv.Serialize(doc, tlv.SerializeOptions{Options: testOpts})
	require.NoError(t, err)

	tampered := append([]byte(nil), out...)
	tampered[2] ^= 0xFF // flip TLV 3's single value byte

	reparsed, _, err := tlv.Parse(tampered, testOpts)
	require.NoError(t, err)

	cmResult, err := ValidateCMMIC(reparsed, secret)
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, cmResult.Status)
	assert.NotEqual(t, cmResult.Stored, cmResult.Computed)

	cmtsResult, err := ValidateCMTSMIC(reparsed, secret)
	require.NoError(t, err)
	assert.Equal(t, StatusInvalid, cmtsResult.Status)
}

func TestValidateReportsMissing(t *testing.T) {
	doc, _, err := tlv.Parse([]byte{0x03, 0x01, 0x01}, testOpts)
	require.NoError(t, err)

	result, err := ValidateCMMIC(doc, []byte("test_secret"))
	require.NoError(t, err)
	assert.Equal(t, StatusMissing, result.Status)
}

func TestComputeRequiresNonEmptySecret(t *testing.T) {
	doc, _, err := tlv.Parse([]byte{0x03, 0x01, 0x01}, testOpts)
	require.NoError(t, err)

	_, err = ComputeCMMIC(doc.Records, nil, testOpts)
	assert.ErrorIs(t, err, ErrSecretRequired)
}

// P4: MIC computation is deterministic across repeated calls.
func TestComputeIsDeterministic(t *testing.T) {
	doc, _, err := tlv.Parse([]byte{0x03, 0x01, 0x01}, testOpts)
	require.NoError(t, err)

	a, err := ComputeCMMIC(doc.Records, []byte("test_secret"), testOpts)
	require.NoError(t, err)
	b, err := ComputeCMMIC(doc.Records, []byte("test_secret"), testOpts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
