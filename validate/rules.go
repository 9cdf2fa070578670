package validate

import (
	"fmt"

	"github.com/docsisgo/docsisconf/diag"
	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/values"
)

// Top-level types the pluggable compliance rules below know about by
// number, per §4.H layer 6's named example rules ("service-flow-
// reference IDs used by classifiers point at declared flows;
// network-access-control presence for production deployments").
const (
	tlvNetworkAccessControl        = 3
	tlvUpstreamServiceFlowLegacy   = 17
	tlvDownstreamServiceFlowLegacy = 18
	tlvUpstreamClassification      = 22
	tlvDownstreamClassification    = 23
	tlvUpstreamServiceFlow         = 24
	tlvDownstreamServiceFlow       = 25
)

var serviceFlowTypes = map[int]bool{
	tlvUpstreamServiceFlowLegacy:   true,
	tlvDownstreamServiceFlowLegacy: true,
	tlvUpstreamServiceFlow:         true,
	tlvDownstreamServiceFlow:       true,
}

var classifierTypes = map[int]bool{
	tlvUpstreamClassification:   true,
	tlvDownstreamClassification: true,
}

// DefaultRules returns the built-in cross-TLV consistency checks run
// at LevelCompliance and above when Options.Rules is nil.
func DefaultRules() []Rule {
	return []Rule{
		ServiceFlowReferenceRule,
		NetworkAccessControlRule,
	}
}

// ServiceFlowReferenceRule is the best-effort check named in §4.H:
// every classifier's ServiceFlowReference sub-TLV must name a
// reference ID declared by some service flow TLV in the same document.
func ServiceFlowReferenceRule(doc *record.Document, _ Options, report *diag.Report) {
	declared := make(map[uint64]bool)
	for _, n := range doc.Records {
		if !serviceFlowTypes[n.Type] {
			continue
		}
		if ref, ok := findSubTLVUint(n, "ServiceFlowReference"); ok {
			declared[ref] = true
		}
	}

	for idx, n := range doc.Records {
		if !classifierTypes[n.Type] {
			continue
		}
		ref, ok := findSubTLVUint(n, "ServiceFlowReference")
		if !ok {
			continue
		}
		if !declared[ref] {
			report.Warning("dangling_service_flow_reference",
				fmt.Sprintf("classifier references service flow %d, which no service flow TLV declares", ref),
				fmt.Sprintf("[%d]", idx))
		}
	}
}

// findSubTLVUint returns the uint value of the first direct child
// named name under n, if n is a compound and that child is a leaf
// whose formatted value decoded to an integer.
func findSubTLVUint(n *record.Node, name string) (uint64, bool) {
	if n.Kind != record.KindCompound {
		return 0, false
	}
	for _, c := range n.Children {
		if c.Name() != name {
			continue
		}
		switch c.Formatted.Kind {
		case values.KindUint:
			return c.Formatted.Uint, true
		case values.KindInt:
			if c.Formatted.Int >= 0 {
				return uint64(c.Formatted.Int), true
			}
		}
	}
	return 0, false
}

// NetworkAccessControlRule flags a present-but-disabled
// NetworkAccessControl TLV — structurally valid (it satisfies the
// required-TLV layer just by appearing) but a configuration smell for
// a production deployment, per §4.H's own example.
func NetworkAccessControlRule(doc *record.Document, _ Options, report *diag.Report) {
	n := doc.Find(tlvNetworkAccessControl)
	if n == nil {
		return
	}
	if n.Formatted.Kind == values.KindBool && !n.Formatted.Bool {
		report.Warning("network_access_control_disabled",
			"NetworkAccessControl is present but disabled; network access will be blocked", "")
	}
}
