package parser

import (
	"strings"

	"github.com/npillmayer/adoc/engine/ast"
	"github.com/npillmayer/adoc/input/adoc/lexer"
)

// isAttrLine checks for a block attribute list line, e.g. `[cols="1,2"]`.
func isAttrLine(line *lexer.Line) bool {
	src := strings.TrimRight(line.Src, " \t")
	return len(src) >= 2 && src[0] == '[' && src[len(src)-1] == ']'
}

// parseAttrLine parses an attribute list line into attrs. Lines of the form
// `[[id]]` set the block's ID.
func parseAttrLine(line *lexer.Line, attrs *ast.AttrList) {
	src := strings.TrimRight(line.Src, " \t")
	at := line.Loc.Start
	if strings.HasPrefix(src, "[[") && strings.HasSuffix(src, "]]") && len(src) > 4 {
		attrs.ID = strings.TrimSpace(src[2 : len(src)-2])
		return
	}
	if attrs.Loc.End == 0 {
		attrs.Loc.Start = at
	}
	attrs.Loc.End = at + len(src)
	parseAttrList(src[1:len(src)-1], at+1, attrs)
}

// parseAttrList parses the inner text of an attribute list, which starts at
// byte position at of the source.
func parseAttrList(s string, at int, attrs *ast.AttrList) {
	for _, e := range splitAttrEntries(s) {
		text := s[e.start:e.end]
		lead := len(text) - len(strings.TrimLeft(text, " \t"))
		text = strings.TrimSpace(text)
		start := at + e.start + lead
		if text == "" {
			if e.eq < 0 {
				attrs.PositionalAttrs = append(attrs.PositionalAttrs, ast.Attr{
					ValueLoc: ast.Loc{Start: start, End: start},
				})
			}
			continue
		}
		if e.eq >= 0 {
			attrs.NamedAttrs = append(attrs.NamedAttrs, namedAttr(s, e, at))
			continue
		}
		attr := ast.Attr{}
		attr.Value, attr.ValueLoc, attr.Quoted = unquote(text, start)
		if !attr.Quoted && (len(attrs.PositionalAttrs) == 0 || strings.HasPrefix(attr.Value, "%")) {
			attr.Value = parseShorthand(attr.Value, attrs)
			attr.ValueLoc.End = attr.ValueLoc.Start + len(attr.Value)
		}
		attrs.PositionalAttrs = append(attrs.PositionalAttrs, attr)
	}
}

type attrEntry struct {
	start, end int
	eq         int // position of the first '=' outside of quotes, or -1
}

// splitAttrEntries splits an attribute list at commas outside of quotes.
func splitAttrEntries(s string) []attrEntry {
	var entries []attrEntry
	cur := attrEntry{start: 0, eq: -1}
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && i+1 < len(s) {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			if strings.TrimSpace(s[cur.start:i]) == "" || (cur.eq >= 0 && strings.TrimSpace(s[cur.eq+1:i]) == "") {
				quote = c
			}
		case c == '=' && cur.eq < 0:
			cur.eq = i
		case c == ',':
			cur.end = i
			entries = append(entries, cur)
			cur = attrEntry{start: i + 1, eq: -1}
		}
	}
	cur.end = len(s)
	if len(entries) > 0 || strings.TrimSpace(s) != "" {
		entries = append(entries, cur)
	}
	return entries
}

func namedAttr(s string, e attrEntry, at int) ast.Attr {
	rawName := s[e.start:e.eq]
	nameLead := len(rawName) - len(strings.TrimLeft(rawName, " \t"))
	name := strings.TrimSpace(rawName)
	rawValue := s[e.eq+1 : e.end]
	valueLead := len(rawValue) - len(strings.TrimLeft(rawValue, " \t"))
	valueStart := at + e.eq + 1 + valueLead
	attr := ast.Attr{
		Name:    name,
		NameLoc: ast.Loc{Start: at + e.start + nameLead, End: at + e.start + nameLead + len(name)},
	}
	attr.Value, attr.ValueLoc, attr.Quoted = unquote(strings.TrimSpace(rawValue), valueStart)
	return attr
}

// unquote removes quotes from an attribute value starting at source position
// start. Escaped quotes within the value are unescaped.
func unquote(v string, start int) (string, ast.Loc, bool) {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		inner := v[1 : len(v)-1]
		loc := ast.Loc{Start: start + 1, End: start + 1 + len(inner)}
		return strings.ReplaceAll(inner, `\`+v[:1], v[:1]), loc, true
	}
	return v, ast.Loc{Start: start, End: start + len(v)}, false
}

// parseShorthand splits shorthand notation `style#id.role%option` off a
// positional attribute and returns the style.
func parseShorthand(v string, attrs *ast.AttrList) string {
	i := strings.IndexAny(v, "#.%")
	if i < 0 {
		return v
	}
	style, rest := v[:i], v[i:]
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		j := strings.IndexAny(rest, "#.%")
		if j < 0 {
			j = len(rest)
		}
		value := rest[:j]
		rest = rest[j:]
		if value == "" {
			continue
		}
		switch marker {
		case '#':
			attrs.ID = value
		case '.':
			attrs.Roles = append(attrs.Roles, value)
		case '%':
			attrs.Options = append(attrs.Options, value)
		}
	}
	return style
}
