package schema

// Sub-TLV namespaces for the DOCSIS compound top-level types. Each
// namespace is its own Table, keyed in the parent TLV's own subtype
// space (independent of the top-level type space).

func buildClassOfServiceSubTLVs() *Table {
	return NewTable(
		&SchemaEntry{Type: 1, Name: "ClassID", Description: "Class of Service identifier", IntroducedVersion: DocsisV1_0, Kind: KindU8},
		&SchemaEntry{Type: 2, Name: "MaxDownstreamRate", Description: "Maximum downstream rate, bps", IntroducedVersion: DocsisV1_0, Kind: KindBandwidth},
		&SchemaEntry{Type: 3, Name: "MaxUpstreamRate", Description: "Maximum upstream rate, bps", IntroducedVersion: DocsisV1_0, Kind: KindBandwidth},
		&SchemaEntry{Type: 4, Name: "UpstreamChannelPriority", Description: "Upstream channel priority", IntroducedVersion: DocsisV1_0, Kind: KindU8},
		&SchemaEntry{Type: 5, Name: "GuaranteedMinUpstreamRate", Description: "Guaranteed minimum upstream rate, bps", IntroducedVersion: DocsisV1_0, Kind: KindBandwidth},
		&SchemaEntry{Type: 6, Name: "MaxUpstreamBurst", Description: "Maximum upstream transmit burst, bytes", IntroducedVersion: DocsisV1_0, Kind: KindU16},
		&SchemaEntry{Type: 7, Name: "ClassOfServicePacketHandling", Description: "Baseline privacy enable", IntroducedVersion: DocsisV1_0, Kind: KindBoolean},
	)
}

func buildLegacyServiceFlowSubTLVs() *Table {
	return NewTable(
		&SchemaEntry{Type: 1, Name: "ServiceFlowReference", Description: "Reference ID for this service flow", IntroducedVersion: DocsisV1_1, Kind: KindU16},
		&SchemaEntry{Type: 2, Name: "ServiceClassName", Description: "Named service class", IntroducedVersion: DocsisV1_1, Kind: KindString},
		&SchemaEntry{Type: 8, Name: "MaxSustainedRate", Description: "Maximum sustained traffic rate, bps", IntroducedVersion: DocsisV1_1, Kind: KindBandwidth},
	)
}

func buildPacketClassificationSubTLVs() *Table {
	return NewTable(
		&SchemaEntry{Type: 1, Name: "ClassifierReference", Description: "Classifier reference ID", IntroducedVersion: DocsisV1_1, Kind: KindU16},
		&SchemaEntry{Type: 2, Name: "ServiceFlowReference", Description: "Service flow this classifier feeds", IntroducedVersion: DocsisV1_1, Kind: KindU16},
		&SchemaEntry{Type: 3, Name: "RulePriority", Description: "Classifier priority, higher wins", IntroducedVersion: DocsisV1_1, Kind: KindU8},
		&SchemaEntry{Type: 4, Name: "IPSourceAddress", Description: "Source IPv4 to match", IntroducedVersion: DocsisV1_1, Kind: KindIPv4},
		&SchemaEntry{Type: 5, Name: "IPDestinationAddress", Description: "Destination IPv4 to match", IntroducedVersion: DocsisV1_1, Kind: KindIPv4},
		&SchemaEntry{Type: 6, Name: "SourcePort", Description: "TCP/UDP source port to match", IntroducedVersion: DocsisV1_1, Kind: KindU16},
		&SchemaEntry{Type: 7, Name: "DestinationPort", Description: "TCP/UDP destination port to match", IntroducedVersion: DocsisV1_1, Kind: KindU16},
	)
}

func buildServiceFlowSubTLVs() *Table {
	return NewTable(
		&SchemaEntry{Type: 1, Name: "ServiceFlowReference", Description: "Reference ID for this service flow", IntroducedVersion: DocsisV1_1, Kind: KindU16},
		&SchemaEntry{Type: 2, Name: "ServiceFlowID", Description: "Assigned service flow ID", IntroducedVersion: DocsisV1_1, Kind: KindU32},
		&SchemaEntry{Type: 3, Name: "ServiceClassName", Description: "Named service class", IntroducedVersion: DocsisV1_1, Kind: KindString},
		&SchemaEntry{Type: 6, Name: "QoSParamSetType", Description: "Which QoS param sets this TLV carries", IntroducedVersion: DocsisV1_1, Kind: KindU8},
		&SchemaEntry{Type: 8, Name: "MaxSustainedRate", Description: "Maximum sustained traffic rate, bps", IntroducedVersion: DocsisV1_1, Kind: KindBandwidth},
		&SchemaEntry{Type: 9, Name: "MaxTrafficBurst", Description: "Maximum traffic burst, bytes", IntroducedVersion: DocsisV1_1, Kind: KindU32},
		&SchemaEntry{Type: 10, Name: "MinReservedRate", Description: "Minimum reserved traffic rate, bps", IntroducedVersion: DocsisV1_1, Kind: KindBandwidth},
		&SchemaEntry{Type: 18, Name: "MaxDownstreamLatency", Description: "Maximum downstream latency, microseconds", IntroducedVersion: DocsisV2_0, Kind: KindU32},
	)
}

func buildVendorSpecificSubTLVs() *Table {
	return NewTable(
		&SchemaEntry{Type: 1, Name: "VendorID", Description: "IEEE OUI of the vendor, 3 bytes", IntroducedVersion: DocsisV1_0, Kind: KindBinary, MaxLength: 3},
	)
}

var subcarrierSpacingEnum = NewEnumMap(
	EnumEntry{Code: 1, Name: "50 kHz"},
	EnumEntry{Code: 2, Name: "25 kHz"},
)

var cyclicPrefixEnum = NewEnumMap(
	EnumEntry{Code: 1, Name: "192 samples"},
	EnumEntry{Code: 2, Name: "384 samples"},
	EnumEntry{Code: 3, Name: "512 samples"},
	EnumEntry{Code: 4, Name: "640 samples"},
)

var rolloffPeriodEnum = NewEnumMap(
	EnumEntry{Code: 0, Name: "none"},
	EnumEntry{Code: 1, Name: "64 samples"},
	EnumEntry{Code: 2, Name: "128 samples"},
	EnumEntry{Code: 3, Name: "192 samples"},
	EnumEntry{Code: 4, Name: "256 samples"},
)

var fftSizeEnum = NewEnumMap(
	EnumEntry{Code: 1, Name: "4K"},
	EnumEntry{Code: 2, Name: "8K"},
)

var ncpModulationEnum = NewEnumMap(
	EnumEntry{Code: 1, Name: "QPSK"},
	EnumEntry{Code: 2, Name: "16-QAM"},
)

var timeInterleavingDepthEnum = NewEnumMap(
	EnumEntry{Code: 0, Name: "none"},
	EnumEntry{Code: 1, Name: "depth 2"},
	EnumEntry{Code: 2, Name: "depth 4"},
	EnumEntry{Code: 3, Name: "depth 8"},
	EnumEntry{Code: 4, Name: "depth 16"},
	EnumEntry{Code: 5, Name: "depth 32"},
)

var minSlotSizeEnum = NewEnumMap(
	EnumEntry{Code: 1, Name: "1 subcarrier"},
	EnumEntry{Code: 2, Name: "2 subcarriers"},
	EnumEntry{Code: 4, Name: "4 subcarriers"},
	EnumEntry{Code: 8, Name: "8 subcarriers"},
	EnumEntry{Code: 16, Name: "16 subcarriers"},
)

// buildOFDMDownstreamSubTLVs is TLV 62's sub-TLV namespace: the OFDM
// downstream profile configuration, covering the 13 sub-TLVs §4.A
// names ("62/63 OFDM/OFDMA profiles with their 12-13 sub-TLVs and
// enum tables").
func buildOFDMDownstreamSubTLVs() *Table {
	return NewTable(
		&SchemaEntry{Type: 1, Name: "ProfileID", Description: "OFDM downstream profile identifier", IntroducedVersion: DocsisV3_1, Kind: KindU8},
		&SchemaEntry{Type: 2, Name: "ChannelID", Description: "Downstream channel identifier", IntroducedVersion: DocsisV3_1, Kind: KindU8},
		&SchemaEntry{Type: 3, Name: "PlcFrequency", Description: "PHY Link Channel center frequency, Hz", IntroducedVersion: DocsisV3_1, Kind: KindFrequency},
		&SchemaEntry{Type: 4, Name: "SubcarrierSpacing", Description: "OFDM subcarrier spacing", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: subcarrierSpacingEnum},
		&SchemaEntry{Type: 5, Name: "CyclicPrefix", Description: "OFDM cyclic prefix length", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: cyclicPrefixEnum},
		&SchemaEntry{Type: 6, Name: "RolloffPeriod", Description: "OFDM windowing roll-off period", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: rolloffPeriodEnum},
		&SchemaEntry{Type: 7, Name: "FFTSize", Description: "OFDM FFT size", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: fftSizeEnum},
		&SchemaEntry{Type: 8, Name: "NCPModulationOrder", Description: "Next Codeword Pointer modulation order", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: ncpModulationEnum},
		&SchemaEntry{Type: 9, Name: "TimeInterleavingDepth", Description: "OFDM time interleaving depth", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: timeInterleavingDepthEnum},
		&SchemaEntry{Type: 10, Name: "SubcarrierExclusionBand", Description: "Excluded subcarrier band, start/width pairs", IntroducedVersion: DocsisV3_1, Kind: KindBinary},
		&SchemaEntry{Type: 11, Name: "SubcarrierZeroBitloading", Description: "Subcarrier range forced to zero-bit loading", IntroducedVersion: DocsisV3_1, Kind: KindBinary},
		&SchemaEntry{Type: 12, Name: "PrimaryCapable", Description: "Profile usable as the primary downstream channel", IntroducedVersion: DocsisV3_1, Kind: KindBoolean},
		&SchemaEntry{Type: 13, Name: "ProfileName", Description: "Administrative profile name (A/B/C/D)", IntroducedVersion: DocsisV3_1, Kind: KindString},
	)
}

// buildOFDMAUpstreamSubTLVs is TLV 63's sub-TLV namespace: the OFDMA
// upstream profile configuration, its own 12-entry counterpart to
// buildOFDMDownstreamSubTLVs.
func buildOFDMAUpstreamSubTLVs() *Table {
	return NewTable(
		&SchemaEntry{Type: 1, Name: "ProfileID", Description: "OFDMA upstream profile identifier", IntroducedVersion: DocsisV3_1, Kind: KindU8},
		&SchemaEntry{Type: 2, Name: "ChannelID", Description: "Upstream channel identifier", IntroducedVersion: DocsisV3_1, Kind: KindU8},
		&SchemaEntry{Type: 3, Name: "StartingFrequency", Description: "OFDMA upstream channel starting frequency, Hz", IntroducedVersion: DocsisV3_1, Kind: KindFrequency},
		&SchemaEntry{Type: 4, Name: "SubcarrierSpacing", Description: "OFDMA subcarrier spacing", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: subcarrierSpacingEnum},
		&SchemaEntry{Type: 5, Name: "CyclicPrefix", Description: "OFDMA cyclic prefix length", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: cyclicPrefixEnum},
		&SchemaEntry{Type: 6, Name: "MinimumPowerLevel", Description: "Minimum upstream transmit power control, dB steps", IntroducedVersion: DocsisV3_1, Kind: KindI8},
		&SchemaEntry{Type: 7, Name: "RolloffPeriod", Description: "OFDMA windowing roll-off period", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: rolloffPeriodEnum},
		&SchemaEntry{Type: 8, Name: "NumSymbolsPerFrame", Description: "OFDMA symbols per upstream frame", IntroducedVersion: DocsisV3_1, Kind: KindU8},
		&SchemaEntry{Type: 9, Name: "MinimumSlotSize", Description: "Minimum upstream data slot size", IntroducedVersion: DocsisV3_1, Kind: KindEnum, EnumMap: minSlotSizeEnum},
		&SchemaEntry{Type: 10, Name: "SubcarrierExclusionBand", Description: "Excluded subcarrier band, start/width pairs", IntroducedVersion: DocsisV3_1, Kind: KindBinary},
		&SchemaEntry{Type: 11, Name: "UnusedSubcarrierSpecification", Description: "Upstream unused-subcarrier range specification", IntroducedVersion: DocsisV3_1, Kind: KindBinary},
		&SchemaEntry{Type: 12, Name: "PreEqEnabled", Description: "Pre-equalization enabled for this profile", IntroducedVersion: DocsisV3_1, Kind: KindBoolean},
	)
}
