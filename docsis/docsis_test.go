package docsis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/validate"
)

const configTextSample = `NetworkAccessControl on;
MaxNumberCPE 4;
`

func TestConfigTextToBinaryToConfigTextRoundTrip(t *testing.T) {
	doc, report, err := Parse([]byte(configTextSample), ParseOptions{
		Format:  FormatConfig,
		Version: schema.DocsisV3_0,
	})
	require.NoError(t, err)
	require.False(t, report.HasErrors())
	require.Len(t, doc.Records, 2)

	binary, err := Generate(doc, GenerateOptions{Format: FormatBinary})
	require.NoError(t, err)

	reparsed, _, err := Parse(binary, ParseOptions{Format: FormatBinary, Version: schema.DocsisV3_0})
	require.NoError(t, err)
	require.Len(t, reparsed.Records, 2)
	assert.Equal(t, 3, reparsed.Records[0].Type)
	assert.True(t, reparsed.Records[0].Formatted.Bool)

	back, err := Generate(reparsed, GenerateOptions{Format: FormatConfig})
	require.NoError(t, err)
	assert.Contains(t, string(back), "NetworkAccessControl enabled;")
}

func TestConvertConfigToJSON(t *testing.T) {
	out, report, err := Convert([]byte(configTextSample), ConvertOptions{
		Parse:    ParseOptions{Format: FormatConfig, Version: schema.DocsisV3_0},
		Generate: GenerateOptions{Format: FormatJSON},
	})
	require.NoError(t, err)
	require.False(t, report.HasErrors())
	assert.Contains(t, string(out), `"type": 3,`)
}

func TestGenerateAddMICThenParseStrictSucceeds(t *testing.T) {
	doc, _, err := Parse([]byte(configTextSample), ParseOptions{Format: FormatConfig, Version: schema.DocsisV3_0})
	require.NoError(t, err)

	secret := []byte("shared-secret")
	binary, err := Generate(doc, GenerateOptions{Format: FormatBinary, AddMIC: true, SharedSecret: secret})
	require.NoError(t, err)

	_, report, err := Parse(binary, ParseOptions{
		Format:       FormatBinary,
		Version:      schema.DocsisV3_0,
		ValidateMIC:  MICStrict,
		SharedSecret: secret,
	})
	require.NoError(t, err)
	assert.False(t, report.HasErrors())
}

func TestParseStrictMICFailsOnWrongSecret(t *testing.T) {
	doc, _, err := Parse([]byte(configTextSample), ParseOptions{Format: FormatConfig, Version: schema.DocsisV3_0})
	require.NoError(t, err)

	binary, err := Generate(doc, GenerateOptions{Format: FormatBinary, AddMIC: true, SharedSecret: []byte("right")})
	require.NoError(t, err)

	_, _, err = Parse(binary, ParseOptions{
		Format:       FormatBinary,
		Version:      schema.DocsisV3_0,
		ValidateMIC:  MICStrict,
		SharedSecret: []byte("wrong"),
	})
	require.ErrorIs(t, err, ErrMICStrict)
}

func TestDetectFormatAuto(t *testing.T) {
	doc, _, err := Parse([]byte(`{"docsis_version":"3.0","tlvs":[{"type":3,"formatted_value":true}]}`),
		ParseOptions{Format: FormatAuto})
	require.NoError(t, err)
	assert.Equal(t, schema.DocsisV3_0, doc.Version)
}

func TestValidateSurfacesRequiredTLVMissing(t *testing.T) {
	doc, _, err := Parse([]byte("MaxNumberCPE 4;\n"), ParseOptions{Format: FormatConfig, Version: schema.DocsisV3_0})
	require.NoError(t, err)

	report := Validate(doc, ValidateOptions{Version: schema.DocsisV3_0, Level: validate.LevelFull})
	assert.True(t, report.HasErrors())
}

func TestLookupTLVAndSubTLV(t *testing.T) {
	se, ok := LookupTLV(24, schema.DocsisV1_1)
	require.True(t, ok)
	assert.Equal(t, "UpstreamServiceFlow", se.Name)

	sub, ok := LookupSubTLV(se, 1, schema.DocsisV1_1)
	require.True(t, ok)
	assert.Equal(t, "ServiceFlowReference", sub.Name)
}
