package schema

import "fmt"

// Family distinguishes the two specification lineages this registry
// tracks. A type value is only ever looked up within one family at a
// time; lookup_top(type, version) picks the family's table from the
// version passed in.
type Family int

const (
	// Docsis identifies the DOCSIS cable-modem specification family.
	Docsis Family = iota
	// PacketCable identifies the PacketCable MTA specification family.
	PacketCable
)

func (f Family) String() string {
	switch f {
	case Docsis:
		return "DOCSIS"
	case PacketCable:
		return "PacketCable"
	default:
		return "unknown"
	}
}

// Version is a member of a totally ordered version sequence within one
// Family. Versions compare by (Major, Minor) only within the same
// Family; comparing across families is a programmer error and Compare
// reports it via the ok return rather than panicking, per the no-throw
// discipline carried through this package.
type Version struct {
	Family Family
	Major  int
	Minor  int
}

func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.Family, v.Major, v.Minor)
}

// Compare returns -1, 0, or 1 if v is less than, equal to, or greater
// than other. ok is false if the two versions belong to different
// families, in which case the numeric result is meaningless.
func (v Version) Compare(other Version) (result int, ok bool) {
	if v.Family != other.Family {
		return 0, false
	}
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1, true
		}
		return 1, true
	}
	switch {
	case v.Minor < other.Minor:
		return -1, true
	case v.Minor > other.Minor:
		return 1, true
	default:
		return 0, true
	}
}

// AtLeast reports whether v >= other. Versions from different families
// are never AtLeast one another.
func (v Version) AtLeast(other Version) bool {
	r, ok := v.Compare(other)
	return ok && r >= 0
}

// Well-known versions forming each family's total order, per the
// registry contract: 1.0 < 1.1 < 2.0 < 3.0 < 3.1 for DOCSIS and
// 1.0 < 1.5 < 2.0 for PacketCable.
var (
	DocsisV1_0 = Version{Docsis, 1, 0}
	DocsisV1_1 = Version{Docsis, 1, 1}
	DocsisV2_0 = Version{Docsis, 2, 0}
	DocsisV3_0 = Version{Docsis, 3, 0}
	DocsisV3_1 = Version{Docsis, 3, 1}

	PacketCableV1_0 = Version{PacketCable, 1, 0}
	PacketCableV1_5 = Version{PacketCable, 1, 5}
	PacketCableV2_0 = Version{PacketCable, 2, 0}
)
