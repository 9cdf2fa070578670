package docsis

import "bytes"

// detectFormat sniffs an input format for ParseOptions.Format ==
// FormatAuto. There is no documented on-wire signature distinguishing
// these shapes (§6 doesn't define one), so this is a best-effort
// ordering from most to least structurally distinctive: JSON's leading
// '{', YAML's document-level keys, config text's brace/identifier
// shape, falling back to binary TLV for anything else.
func detectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	if looksLikeYAML(trimmed) {
		return FormatYAML
	}
	if looksLikeConfigText(trimmed) {
		return FormatConfig
	}
	return FormatBinary
}

func looksLikeYAML(trimmed []byte) bool {
	if bytes.HasPrefix(trimmed, []byte("---")) {
		return true
	}
	return bytes.Contains(trimmed, []byte("docsis_version:")) ||
		bytes.Contains(trimmed, []byte("packetcable_version:")) ||
		bytes.Contains(trimmed, []byte("tlvs:"))
}

// looksLikeConfigText treats the input as config text only if every
// byte is printable ASCII or common whitespace and it contains at
// least one '{' or ';', the two structural characters no binary TLV
// stream containing real value bytes is likely to produce exclusively.
func looksLikeConfigText(trimmed []byte) bool {
	if len(trimmed) == 0 {
		return false
	}
	hasStructure := false
	for _, b := range trimmed {
		switch {
		case b == '{' || b == ';':
			hasStructure = true
		case b == '\t' || b == '\n' || b == '\r':
			continue
		case b < 0x20 || b > 0x7e:
			return false
		}
	}
	return hasStructure
}
