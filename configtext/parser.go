package configtext

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/docsisgo/docsisconf/diag"
	"github.com/docsisgo/docsisconf/record"
	"github.com/docsisgo/docsisconf/schema"
	"github.com/docsisgo/docsisconf/values"
)

// tlvCodeKeyword is the escape hatch statement for a TLV the parser's
// name table doesn't recognize, per §4.F: "Vendor/unknown TLVs are
// emitted as TlvCode <type> <hex>;" — and accepted back on parse the
// same way.
const tlvCodeKeyword = "TlvCode"

// Options configures Parse.
type Options struct {
	Version schema.Version
	// Permissive disables introduced_version gating on name/type
	// lookups, same meaning as tlv.Options.Permissive.
	Permissive bool
	// Strict makes an unrecognized identifier a parse error rather
	// than a warning-plus-skip (§4.F: "Unknown identifiers are a parse
	// error in strict mode, a warning-plus-skip in permissive mode").
	Strict bool
}

// Parse decodes config text into a record.Document plus a diagnostic
// report for any skipped-in-permissive-mode identifiers.
func Parse(data []byte, opts Options) (*record.Document, *diag.Report, error) {
	lex := newLexer(data)
	report := &diag.Report{}
	var records []*record.Node
	idx := 0

	for {
		tok, err := lex.peek()
		if err != nil {
			return nil, report, err
		}
		if tok.kind == tokEOF {
			break
		}
		path := fmt.Sprintf("[%d]", idx)
		node, err := parseStatement(lex, nil, opts, report, path)
		if err != nil {
			return nil, report, err
		}
		idx++
		if node != nil {
			records = append(records, node)
		}
	}

	return &record.Document{Version: opts.Version, Records: records}, report, nil
}

// parseStatement parses one `Name value;` or `Name { stmt* }` or
// `TlvCode <type> <hex>;` statement. parent is the enclosing
// compound's schema entry, nil at top level.
func parseStatement(lex *lexer, parent *schema.SchemaEntry, opts Options, report *diag.Report, path string) (*record.Node, error) {
	nameTok, err := lex.next()
	if err != nil {
		return nil, err
	}
	if nameTok.kind != tokWord {
		return nil, &ParseError{Pos: nameTok.pos, Err: fmt.Errorf("%w: expected an identifier, got %q", ErrUnexpectedToken, nameTok.text)}
	}

	if strings.EqualFold(nameTok.text, tlvCodeKeyword) {
		return parseTlvCodeStatement(lex, parent, opts)
	}

	var se *schema.SchemaEntry
	var found bool
	if parent == nil {
		se, found = schema.LookupTopByName(nameTok.text, opts.Version, opts.Permissive)
	} else {
		se, found = schema.LookupSubByName(parent, nameTok.text, opts.Version, opts.Permissive)
	}

	if !found {
		if opts.Strict {
			return nil, &ParseError{Pos: nameTok.pos, Err: fmt.Errorf("unknown identifier %q", nameTok.text)}
		}
		report.Warning("unknown_identifier", fmt.Sprintf("%q is not a recognized TLV name", nameTok.text), path)
		if err := skipStatement(lex); err != nil {
			return nil, err
		}
		return nil, nil
	}

	peeked, err := lex.peek()
	if err != nil {
		return nil, err
	}

	if se.Kind.IsCompound() || peeked.kind == tokLBrace {
		return parseBlock(lex, se, opts, report, path)
	}
	return parseLeaf(lex, se)
}

func parseBlock(lex *lexer, se *schema.SchemaEntry, opts Options, report *diag.Report, path string) (*record.Node, error) {
	open, err := lex.next()
	if err != nil {
		return nil, err
	}
	if open.kind != tokLBrace {
		return nil, &ParseError{Pos: open.pos, Err: fmt.Errorf("%w: %q requires a { } block", ErrUnexpectedToken, se.Name)}
	}

	var children []*record.Node
	idx := 0
	for {
		tok, err := lex.peek()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokRBrace {
			lex.next()
			break
		}
		if tok.kind == tokEOF {
			return nil, &ParseError{Pos: tok.pos, Err: fmt.Errorf("%w: unterminated block for %q", ErrUnexpectedToken, se.Name)}
		}
		childPath := fmt.Sprintf("%s.%d", path, idx)
		child, err := parseStatement(lex, se, opts, report, childPath)
		if err != nil {
			return nil, err
		}
		if child != nil {
			children = append(children, child)
			idx++
		}
	}

	return record.NewCompound(se.Type, nil, children, se), nil
}

func parseLeaf(lex *lexer, se *schema.SchemaEntry) (*record.Node, error) {
	valTok, err := lex.next()
	if err != nil {
		return nil, err
	}
	if valTok.kind != tokWord && valTok.kind != tokString {
		return nil, &ParseError{Pos: valTok.pos, Err: fmt.Errorf("%w: %q expects a value", ErrUnexpectedToken, se.Name)}
	}
	if err := expectSemi(lex); err != nil {
		return nil, err
	}

	fv, err := literalToFormatted(se.Kind, valTok)
	if err != nil {
		return nil, &ParseError{Pos: valTok.pos, Err: err}
	}
	raw, err := values.Encode(se.Kind, fv, se.EnumMap, se.MaxLength)
	if err != nil {
		return nil, &ParseError{Pos: valTok.pos, Err: err}
	}
	return record.NewLeaf(se.Type, raw, fv, se), nil
}

func parseTlvCodeStatement(lex *lexer, parent *schema.SchemaEntry, opts Options) (*record.Node, error) {
	typeTok, err := lex.next()
	if err != nil {
		return nil, err
	}
	typ, err := strconv.Atoi(typeTok.text)
	if err != nil {
		return nil, &ParseError{Pos: typeTok.pos, Err: fmt.Errorf("TlvCode wants a numeric type, got %q", typeTok.text)}
	}

	hexTok, err := lex.next()
	if err != nil {
		return nil, err
	}
	raw, err := parseHexLiteral(hexTok.text)
	if err != nil {
		return nil, &ParseError{Pos: hexTok.pos, Err: err}
	}
	if err := expectSemi(lex); err != nil {
		return nil, err
	}

	var se *schema.SchemaEntry
	if parent == nil {
		se, _ = schema.LookupTop(typ, opts.Version, opts.Permissive)
	} else {
		se, _ = schema.LookupSub(parent, typ, opts.Version, opts.Permissive)
	}
	fv := values.NewHex(strings.ToUpper(hex.EncodeToString(raw)))
	return record.NewLeaf(typ, raw, fv, se), nil
}

func expectSemi(lex *lexer) error {
	tok, err := lex.next()
	if err != nil {
		return err
	}
	if tok.kind != tokSemi {
		return &ParseError{Pos: tok.pos, Err: fmt.Errorf("%w: expected ';', got %q", ErrUnexpectedToken, tok.text)}
	}
	return nil
}

// skipStatement consumes an unrecognized identifier's value or block
// without interpreting it, for permissive mode's "warning-plus-skip".
func skipStatement(lex *lexer) error {
	tok, err := lex.peek()
	if err != nil {
		return err
	}
	if tok.kind == tokLBrace {
		lex.next()
		depth := 1
		for depth > 0 {
			t, err := lex.next()
			if err != nil {
				return err
			}
			switch t.kind {
			case tokLBrace:
				depth++
			case tokRBrace:
				depth--
			case tokEOF:
				return &ParseError{Pos: t.pos, Err: fmt.Errorf("%w: unterminated block", ErrUnexpectedToken)}
			}
		}
		return nil
	}
	for {
		t, err := lex.next()
		if err != nil {
			return err
		}
		if t.kind == tokSemi || t.kind == tokEOF {
			return nil
		}
	}
}
