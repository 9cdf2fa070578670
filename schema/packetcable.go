package schema

import "fmt"

// packetCableTop is the top-level TLV table for the PacketCable MTA
// family, covering types 64-85. Types with no individually documented
// layout fall back to the blanket vendor treatment described in
// §4.A ("64-85 for PacketCable MTA-specific ... blanket entries with
// value_kind = vendor, compound-by-default").
var packetCableTop *Table

func init() {
	documented := []*SchemaEntry{
		{Type: 64, Name: "NetworkCallSignalingList", Description: "List of call signaling server addresses", IntroducedVersion: PacketCableV1_0, Kind: KindCompound},
		{Type: 65, Name: "PrimaryLineOrSecurityGateway", Description: "Primary line / security gateway address", IntroducedVersion: PacketCableV1_0, Kind: KindIPv4},
		{Type: 66, Name: "MTACoreConfig", Description: "MTA core device configuration", IntroducedVersion: PacketCableV1_0, Kind: KindCompound},
		{Type: 67, Name: "ProvisioningTimer", Description: "Provisioning timer, seconds", IntroducedVersion: PacketCableV1_0, Kind: KindDuration},
		{Type: 68, Name: "CallManagementServerList", Description: "List of call management server addresses", IntroducedVersion: PacketCableV1_5, Kind: KindCompound},
		{Type: 69, Name: "KerberosRealmName", Description: "Kerberos realm name for MTA authentication", IntroducedVersion: PacketCableV1_0, Kind: KindString},
		{Type: 70, Name: "TGTMaximumClockSkew", Description: "Maximum acceptable clock skew, seconds", IntroducedVersion: PacketCableV1_0, Kind: KindDuration},
		{Type: 80, Name: "ProvisioningFlags", Description: "MTA provisioning behavior flags", IntroducedVersion: PacketCableV1_5, Kind: KindBinary},
		{Type: 82, Name: "MIBEnvironmentIndicator", Description: "MIB environment indicator", IntroducedVersion: PacketCableV2_0, Kind: KindU8},
	}

	byType := make(map[int]*SchemaEntry, len(documented))
	for _, e := range documented {
		byType[e.Type] = e
	}

	all := make([]*SchemaEntry, 0, len(byType))
	for _, e := range byType {
		all = append(all, e)
	}

	packetCableTop = NewTable(all...).WithVendorRange(64, 85, func(typ int) *SchemaEntry {
		return &SchemaEntry{
			Type:              typ,
			Name:              fmt.Sprintf("MtaTlv%d", typ),
			Description:       "PacketCable MTA-specific blanket TLV",
			IntroducedVersion: PacketCableV1_0,
			Kind:              KindVendor,
		}
	})
}
