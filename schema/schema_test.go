package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionOrdering(t *testing.T) {
	assert.True(t, DocsisV3_1.AtLeast(DocsisV1_0))
	assert.False(t, DocsisV1_0.AtLeast(DocsisV3_1))
	assert.True(t, DocsisV2_0.AtLeast(DocsisV2_0))

	_, ok := DocsisV1_0.Compare(PacketCableV1_0)
	assert.False(t, ok, "cross-family comparisons must report not-ok")
}

func TestLookupTopKnownType(t *testing.T) {
	e, ok := LookupTop(3, DocsisV1_0, false)
	require.True(t, ok)
	assert.Equal(t, "NetworkAccessControl", e.Name)
	assert.Equal(t, KindBoolean, e.Kind)
	assert.True(t, e.RequiredAt(DocsisV1_0))
}

func TestLookupTopVersionGating(t *testing.T) {
	// OFDM profiles are DOCSIS 3.1 only.
	_, ok := LookupTop(62, DocsisV2_0, false)
	assert.False(t, ok, "3.1-only TLV must not resolve under 2.0 when gated")

	e, ok := LookupTop(62, DocsisV2_0, true)
	require.True(t, ok, "permissive lookup must bypass the version gate")
	assert.Equal(t, "OFDMDownstreamProfile", e.Name)

	e, ok = LookupTop(62, DocsisV3_1, false)
	require.True(t, ok)
	assert.True(t, e.Kind.IsCompound())
}

func TestVendorBlanketRange(t *testing.T) {
	e, ok := LookupTop(230, DocsisV1_0, false)
	require.True(t, ok, "vendor range must always resolve")
	assert.Equal(t, KindVendor, e.Kind)

	low, high, ok := VendorRange(DocsisV1_0)
	require.True(t, ok)
	assert.Equal(t, 200, low)
	assert.Equal(t, 255, high)
}

func TestVendorRangeTypeResolves(t *testing.T) {
	_, ok := LookupTop(201, DocsisV1_0, false)
	// 201 is inside the DOCSIS vendor blanket range [200,255], so it
	// resolves to a synthesized vendor entry, not NotFound. Scenario 3
	// ("C9 06 ...", type 0xC9 = 201) exercises this path deliberately.
	assert.True(t, ok)
}

func TestOFDMSubTLVs(t *testing.T) {
	parent, ok := LookupTop(62, DocsisV3_1, false)
	require.True(t, ok)

	sub, ok := LookupSub(parent, 4, DocsisV3_1, false)
	require.True(t, ok)
	name, found := sub.EnumMap.Lookup(1)
	require.True(t, found)
	assert.Equal(t, "50 kHz", name)

	sub, ok = LookupSub(parent, 5, DocsisV3_1, false)
	require.True(t, ok)
	name, found = sub.EnumMap.Lookup(2)
	require.True(t, found)
	assert.Equal(t, "384 samples", name)
}

func TestEnumMapReverseLookup(t *testing.T) {
	code, ok := cyclicPrefixEnum.ReverseLookup("384 SAMPLES")
	require.True(t, ok)
	assert.Equal(t, uint64(2), code)

	code, ok = cyclicPrefixEnum.ReverseLookup("9")
	require.True(t, ok, "bare numeric literal must be accepted even if unregistered")
	assert.Equal(t, uint64(9), code)

	_, ok = cyclicPrefixEnum.ReverseLookup("not a real value")
	assert.False(t, ok)
}

func TestSupportedTypesSorted(t *testing.T) {
	types := SupportedTypes(DocsisV1_0, false)
	require.NotEmpty(t, types)
	for i := 1; i < len(types); i++ {
		assert.Less(t, types[i-1], types[i])
	}
}

func TestPacketCableBlanketVendor(t *testing.T) {
	e, ok := LookupTop(75, PacketCableV1_0, false)
	require.True(t, ok)
	assert.Equal(t, KindVendor, e.Kind)

	e, ok = LookupTop(69, PacketCableV1_0, false)
	require.True(t, ok)
	assert.Equal(t, "KerberosRealmName", e.Name)
}

func TestRequiredTypes(t *testing.T) {
	required := RequiredTypes(DocsisV1_0)
	assert.Contains(t, required, 3)
}
