// Package mic implements the HMAC-MD5 Message Integrity Check engine
// (§4.G): computing and validating the CM MIC (TLV 6) and CMTS MIC
// (TLV 7), and the generation workflow that injects both into a
// record.Document.
//
// Secret handling discipline: secrets are accepted by callers only as
// a []byte parameter, are never logged or wrapped into an error
// message, and are not retained by this package past the call that
// used them — each function reads the secret, feeds it to hmac.New,
// and returns. This mirrors the teacher corpus's general policy of
// passing sensitive material by value and letting it fall out of
// scope rather than caching it anywhere.
package mic

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/tlv"
	"github.com/docsisgo/docsisconf/values"
)

const (
	// TLVTypeCMMIC is TLV 6, the CM-computed MIC.
	TLVTypeCMMIC = 6
	// TLVTypeCMTSMIC is TLV 7, the CMTS-verified MIC covering TLV 6.
	TLVTypeCMTSMIC = 7
	// micLength is the fixed wire length of both MIC TLVs.
	micLength = 16
)

// ComputeCMMIC computes the CM MIC over records, which must already
// exclude TLV 6, TLV 7, and the end-of-data marker (the caller's
// preceding-TLV-stream slice, per §4.G's preimage rule). opts selects
// the schema version used to serialize each record's wire encoding.
func ComputeCMMIC(records []*record.Node, secret []byte, opts tlv.Options) ([16]byte, error) {
	return computeOver(records, secret, opts)
}

// ComputeCMTSMIC computes the CMTS MIC over recordsIncludingTLV6, which
// must include the already-computed TLV 6 node but exclude TLV 7 and
// the end-of-data marker.
func ComputeCMTSMIC(recordsIncludingTLV6 []*record.Node, secret []byte, opts tlv.Options) ([16]byte, error) {
	return computeOver(recordsIncludingTLV6, secret, opts)
}

func computeOver(records []*record.Node, secret []byte, opts tlv.Options) ([16]byte, error) {
	var digest [16]byte
	if len(secret) == 0 {
		return digest, ErrSecretRequired
	}
	preimage, err := tlv.Serialize(&record.Document{Version: opts.Version, Records: records}, tlv.SerializeOptions{
		Options:           opts,
		SuppressEndMarker: true,
	})
	if err != nil {
		return digest, err
	}
	mac := hmac.New(md5.New, secret)
	mac.Write(preimage)
	copy(digest[:], mac.Sum(nil))
	return digest, nil
}

// ValidateCMMIC checks doc's TLV 6 (if any) against a freshly computed
// CM MIC over every top-level record preceding it (excluding TLV 6/7).
func ValidateCMMIC(doc *record.Document, secret []byte) (Result, error) {
	return validateStored(doc, TLVTypeCMMIC, secret)
}

// ValidateCMTSMIC checks doc's TLV 7 (if any) against a freshly
// computed CMTS MIC over every top-level record preceding it,
// including TLV 6.
func ValidateCMTSMIC(doc *record.Document, secret []byte) (Result, error) {
	return validateStored(doc, TLVTypeCMTSMIC, secret)
}

func validateStored(doc *record.Document, typ int, secret []byte) (Result, error) {
	stored := doc.Find(typ)
	if stored == nil {
		return Result{Status: StatusMissing}, nil
	}
	if len(stored.Raw) != micLength {
		return Result{Status: StatusInvalid}, nil
	}

	// Preceding records, excluding TLV 6/7 themselves — except that the
	// CMTS preimage includes TLV 6 (§4.G: "including TLV 6, with the
	// computed CM MIC already placed").
	var preceding []*record.Node
	for _, n := range doc.Records {
		if n == stored {
			break
		}
		if n.Type == TLVTypeCMMIC || n.Type == TLVTypeCMTSMIC {
			if typ == TLVTypeCMTSMIC && n.Type == TLVTypeCMMIC {
				preceding = append(preceding, n)
			}
			continue
		}
		preceding = append(preceding, n)
	}

	opts := tlv.Options{Version: doc.Version}
	computed, err := computeOver(preceding, secret, opts)
	if err != nil {
		return Result{}, err
	}

	var storedArr [16]byte
	copy(storedArr[:], stored.Raw)
	if storedArr != computed {
		return Result{Status: StatusInvalid, Stored: storedArr, Computed: computed}, nil
	}
	return Result{Status: StatusValid, Stored: storedArr, Computed: computed}, nil
}

// GenerateWithMIC strips any existing TLV 6/7 from doc, computes and
// appends a fresh CM MIC (TLV 6) then a fresh CMTS MIC (TLV 7) over the
// resulting sequence, per §4.G's four-step generation workflow. doc is
// mutated in place; the caller still owns calling tlv.Serialize
// afterward to produce bytes.
func GenerateWithMIC(doc *record.Document, secret []byte) error {
	doc.RemoveType(TLVTypeCMMIC)
	doc.RemoveType(TLVTypeCMTSMIC)

	opts := tlv.Options{Version: doc.Version}

	cmDigest, err := ComputeCMMIC(doc.Records, secret, opts)
	if err != nil {
		return err
	}
	cmNode := newMICNode(TLVTypeCMMIC, cmDigest, doc.Version)
	doc.Append(cmNode)

	cmtsDigest, err := ComputeCMTSMIC(doc.Records, secret, opts)
	if err != nil {
		return err
	}
	cmtsNode := newMICNode(TLVTypeCMTSMIC, cmtsDigest, doc.Version)
	doc.Append(cmtsNode)

	return nil
}

func newMICNode(typ int, digest [16]byte, version schema.Version) *record.Node {
	raw := append([]byte(nil), digest[:]...)
	se, _ := schema.LookupTop(typ, version, true)
	fv := values.NewHex(strings.ToUpper(hex.EncodeToString(raw)))
	return record.NewLeaf(typ, raw, fv, se)
}
