package table

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// Grammar is the family of cell grammars a data format belongs to.
type Grammar uint8

const (
	Prefix    Grammar = iota // cells start with a separator
	Delimited                // cells are separated by a character
	CSV                      // delimited, with quoting
)

func (g Grammar) String() string {
	switch g {
	case Delimited:
		return "Delimited"
	case CSV:
		return "Csv"
	}
	return "Prefix"
}

// DataFormat is the cell grammar of a table together with its separator.
type DataFormat struct {
	Grammar   Grammar
	Separator rune
}

func (f DataFormat) String() string {
	return fmt.Sprintf("%s(%q)", f.Grammar, f.Separator)
}

// separatorKind returns the token kind of the separator. Separators without a
// token kind of their own are split out of other tokens as CellSeparator.
func (f DataFormat) separatorKind() (kind lexer.TokenKind, embeddable bool) {
	if k, ok := lexer.SingleCharKind(f.Separator); ok {
		return k, false
	}
	return lexer.CellSeparator, true
}

const separatorMsg = "Cell separator must be exactly one character"

// selectFormat resolves the data format from the delimiter character and the
// block attributes `format` and `separator`.
func selectFormat(delim rune, attrs *ast.AttrList, host Host) (DataFormat, error) {
	var format DataFormat
	f, _ := attrs.Named("format")
	switch f {
	case "psv":
		format = DataFormat{Prefix, '|'}
	case "csv":
		format = DataFormat{CSV, ','}
	case "tsv":
		format = DataFormat{CSV, '\t'}
	case "dsv":
		format = DataFormat{Delimited, ':'}
	default:
		switch delim {
		case ':', ',':
			format = DataFormat{Delimited, delim}
		default:
			format = DataFormat{Prefix, delim}
		}
	}
	if sep, ok := attrs.NamedAttr("separator"); ok {
		value := sep.Value
		switch utf8.RuneCountInString(value) {
		case 0:
			d := diag.New(diag.MalformedAttribute, separatorMsg, pos(host, sep.QuotedLoc()))
			if err := host.Report(d); err != nil {
				return format, err
			}
		case 1:
			format.Separator, _ = utf8.DecodeRuneInString(value)
		default:
			// lenient parses keep the table, split at the first character
			format.Separator, _ = utf8.DecodeRuneInString(value)
			d := diag.New(diag.MalformedAttribute, separatorMsg, pos(host, sep.ValueLoc))
			if err := host.Report(d); err != nil {
				return format, err
			}
		}
	}
	tracer().Debugf("table format is %s", format)
	return format, nil
}

// --- Token preparation -----------------------------------------------------

// prepareTokens makes separators recognizable for the cell grammars. Separator
// characters embedded in larger tokens are split out, and unless the format
// uses quoting, a backslash escapes a following separator, which then is
// ordinary text.
func prepareTokens(tokens []lexer.Token, format DataFormat) []lexer.Token {
	kind, embeddable := format.separatorKind()
	if embeddable {
		tokens = splitEmbedded(tokens, format.Separator)
	}
	if format.Grammar == CSV {
		return tokens
	}
	out := tokens[:0:0]
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Kind == lexer.Backslash && i+1 < len(tokens) && tokens[i+1].Kind == kind {
			sep := tokens[i+1]
			out = append(out, lexer.Token{Kind: lexer.Word, Lexeme: sep.Lexeme, Loc: sep.Loc})
			i++
			continue
		}
		out = append(out, t)
	}
	return out
}

func splitEmbedded(tokens []lexer.Token, sep rune) []lexer.Token {
	s := string(sep)
	out := make([]lexer.Token, 0, len(tokens))
	for _, t := range tokens {
		if !strings.Contains(t.Lexeme, s) {
			out = append(out, t)
			continue
		}
		rest, at := t.Lexeme, t.Loc.Start
		for rest != "" {
			i := strings.Index(rest, s)
			if i < 0 {
				out = append(out, lexer.Token{Kind: t.Kind, Lexeme: rest, Loc: ast.Loc{Start: at, End: at + len(rest)}})
				break
			}
			if i > 0 {
				out = append(out, lexer.Token{Kind: t.Kind, Lexeme: rest[:i], Loc: ast.Loc{Start: at, End: at + i}})
			}
			out = append(out, lexer.Token{
				Kind:   lexer.CellSeparator,
				Lexeme: s,
				Loc:    ast.Loc{Start: at + i, End: at + i + len(s)},
			})
			at += i + len(s)
			rest = rest[i+len(s):]
		}
	}
	return out
}
