package schema

import "fmt"

// docsisTop is the build-time-constant top-level TLV table for the
// DOCSIS family, covering the documented range 1-85 plus the 200-255
// vendor-specific blanket range (§4.A). It is populated once from
// init and never mutated afterward, matching the registry's
// shared-immutable-state contract (SPEC_FULL.md §5).
var docsisTop *Table

func init() {
	documented := []*SchemaEntry{
		{Type: 1, Name: "DownstreamFrequency", Description: "Downstream center frequency, Hz", IntroducedVersion: DocsisV1_0, Kind: KindFrequency},
		{Type: 2, Name: "UpstreamChannelID", Description: "Upstream channel identifier", IntroducedVersion: DocsisV1_0, Kind: KindU8},
		{Type: 3, Name: "NetworkAccessControl", Description: "Enable network access", IntroducedVersion: DocsisV1_0, Kind: KindBoolean, RequiredIn: []Version{DocsisV1_0, DocsisV1_1, DocsisV2_0, DocsisV3_0, DocsisV3_1}},
		{Type: 4, Name: "ClassOfService", Description: "Legacy class-of-service configuration", IntroducedVersion: DocsisV1_0, Kind: KindCompound, SubTLVs: buildClassOfServiceSubTLVs()},
		{Type: 5, Name: "ModemCapabilities", Description: "Modem capability flags", IntroducedVersion: DocsisV1_0, Kind: KindBinary},
		{Type: 6, Name: "CMMessageIntegrityCheck", Description: "CM MIC, HMAC-MD5 over the preceding TLV stream", IntroducedVersion: DocsisV1_0, Kind: KindBinary, MaxLength: 16},
		{Type: 7, Name: "CMTSMessageIntegrityCheck", Description: "CMTS MIC, HMAC-MD5 including the CM MIC", IntroducedVersion: DocsisV1_0, Kind: KindBinary, MaxLength: 16},
		{Type: 8, Name: "VendorSpecificFrequency", Description: "Vendor-extended downstream frequency field", IntroducedVersion: DocsisV1_0, Kind: KindBinary},
		{Type: 9, Name: "MaxNumberCPE", Description: "Maximum number of CPE devices", IntroducedVersion: DocsisV1_0, Kind: KindU8},
		{Type: 10, Name: "SoftwareUpgradeFilename", Description: "TFTP filename for software upgrade", IntroducedVersion: DocsisV1_0, Kind: KindString},
		{Type: 11, Name: "SNMPWriteControl", Description: "SNMP write-access control", IntroducedVersion: DocsisV1_0, Kind: KindBinary},
		{Type: 17, Name: "UpstreamServiceFlowLegacy", Description: "Legacy (DOCSIS 1.0) upstream service flow", IntroducedVersion: DocsisV1_0, Kind: KindCompound, SubTLVs: buildLegacyServiceFlowSubTLVs()},
		{Type: 18, Name: "DownstreamServiceFlowLegacy", Description: "Legacy (DOCSIS 1.0) downstream service flow", IntroducedVersion: DocsisV1_0, Kind: KindCompound, SubTLVs: buildLegacyServiceFlowSubTLVs()},
		{Type: 22, Name: "UpstreamPacketClassification", Description: "Upstream packet classifier", IntroducedVersion: DocsisV1_1, Kind: KindCompound, SubTLVs: buildPacketClassificationSubTLVs()},
		{Type: 23, Name: "DownstreamPacketClassification", Description: "Downstream packet classifier", IntroducedVersion: DocsisV1_1, Kind: KindCompound, SubTLVs: buildPacketClassificationSubTLVs()},
		{Type: 24, Name: "UpstreamServiceFlow", Description: "Upstream QoS service flow", IntroducedVersion: DocsisV1_1, Kind: KindCompound, SubTLVs: buildServiceFlowSubTLVs()},
		{Type: 25, Name: "DownstreamServiceFlow", Description: "Downstream QoS service flow", IntroducedVersion: DocsisV1_1, Kind: KindCompound, SubTLVs: buildServiceFlowSubTLVs()},
		{Type: 29, Name: "PHSRule", Description: "Payload header suppression rule", IntroducedVersion: DocsisV1_1, Kind: KindCompound},
		{Type: 30, Name: "MaximumNumberOfClassifiers", Description: "Maximum number of active classifiers", IntroducedVersion: DocsisV1_1, Kind: KindU16},
		{Type: 33, Name: "PrivacyEnable", Description: "Baseline privacy enable", IntroducedVersion: DocsisV1_0, Kind: KindBoolean},
		{Type: 43, Name: "VendorSpecificInfo", Description: "Vendor-specific compound TLV", IntroducedVersion: DocsisV1_0, Kind: KindVendor, SubTLVs: buildVendorSpecificSubTLVs()},
		{Type: 62, Name: "OFDMDownstreamProfile", Description: "OFDM downstream channel profile", IntroducedVersion: DocsisV3_1, Kind: KindCompound, SubTLVs: buildOFDMDownstreamSubTLVs()},
		{Type: 63, Name: "OFDMAUpstreamChannel", Description: "OFDMA upstream channel configuration", IntroducedVersion: DocsisV3_1, Kind: KindCompound, SubTLVs: buildOFDMAUpstreamSubTLVs()},
	}

	byType := make(map[int]*SchemaEntry, 96)
	for _, e := range documented {
		byType[e.Type] = e
	}
	// Fill the remainder of the documented range 1-85 with generic
	// reserved entries: every type in that range resolves (per the
	// "registry MUST include all DOCSIS top-level TLVs 1-85"
	// contract) but types with no specific published sub-structure
	// decode as opaque binary rather than a fabricated layout.
	for t := 1; t <= 85; t++ {
		if _, ok := byType[t]; ok {
			continue
		}
		byType[t] = &SchemaEntry{
			Type:              t,
			Name:              fmt.Sprintf("Reserved%d", t),
			Description:       "Reserved or vendor-documented TLV with no published sub-structure",
			IntroducedVersion: DocsisV1_0,
			Kind:              KindBinary,
		}
	}

	all := make([]*SchemaEntry, 0, len(byType))
	for _, e := range byType {
		all = append(all, e)
	}

	docsisTop = NewTable(all...).WithVendorRange(200, 255, func(typ int) *SchemaEntry {
		return &SchemaEntry{
			Type:              typ,
			Name:              fmt.Sprintf("VendorTlv%d", typ),
			Description:       "Vendor-specific blanket TLV",
			IntroducedVersion: DocsisV1_0,
			Kind:              KindVendor,
		}
	})
}
