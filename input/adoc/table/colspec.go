package table

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/adoc/core/diag"
	"github.com/npillmayer/adoc/core/percent"
	"github.com/npillmayer/adoc/engine/ast"
)

// colSpecPattern matches one entry of a `cols` attribute:
// repeat, horizontal and vertical alignment, width and style.
var colSpecPattern = regexp.MustCompile(`^(?:(\d+)\*)?([<^>])?(?:\.([<^>]))?(\d+%?|~)?([adehlms])?$`)

// parseColSpecs parses the value of a `cols` attribute. A single number
// denotes that many columns of equal width. Invalid entries are reported and
// replaced by a default column.
func parseColSpecs(attr ast.Attr, host Host) []*ast.ColSpec {
	value := strings.TrimSpace(attr.Value)
	if n := atoi(value); n > 0 && strings.Trim(value, "0123456789") == "" {
		if clampCount(&n) {
			reportCount(attr, host)
		}
		specs := make([]*ast.ColSpec, n)
		for i := range specs {
			specs[i] = defaultColSpec()
		}
		return specs
	}
	var specs []*ast.ColSpec
	entries := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ';' })
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		m := colSpecPattern.FindStringSubmatch(entry)
		if m == nil {
			host.Sink().Append(diag.NewWarning(diag.InvalidColSpec,
				"Invalid column specification: "+entry, pos(host, attr.ValueLoc)))
			specs = append(specs, defaultColSpec())
			continue
		}
		spec := defaultColSpec()
		spec.HAlign = hAlign(m[2])
		spec.VAlign = vAlign(m[3])
		switch w := m[4]; {
		case w == "~":
			spec.Width = ast.AutoWidth()
		case strings.HasSuffix(w, "%"):
			p, _ := percent.FromString(w)
			spec.Width = ast.Percentage(float64(p))
		case w != "":
			n, _ := strconv.Atoi(w)
			spec.Width = ast.Proportional(n)
		}
		if m[5] != "" {
			spec.Style, _ = ast.StyleFromLetter(m[5][0])
		}
		repeat := 1
		if m[1] != "" {
			repeat = atoi(m[1])
			if clampCount(&repeat) {
				reportCount(attr, host)
			}
		}
		for i := 0; i < repeat; i++ {
			s := *spec
			specs = append(specs, &s)
		}
	}
	tracer().Debugf("cols=%q => %d column specs", attr.Value, len(specs))
	return specs
}

func reportCount(attr ast.Attr, host Host) {
	host.Sink().Append(diag.NewWarning(diag.InvalidColSpec,
		fmt.Sprintf("Column count exceeds %d", maxCount), pos(host, attr.ValueLoc)))
}

func defaultColSpec() *ast.ColSpec {
	return &ast.ColSpec{Width: ast.Proportional(1)}
}

func hAlign(s string) ast.HAlign {
	switch s {
	case "<":
		return ast.AlignLeft
	case "^":
		return ast.AlignCenter
	case ">":
		return ast.AlignRight
	}
	return ast.AlignDefault
}

func vAlign(s string) ast.VAlign {
	switch s {
	case "<":
		return ast.AlignTop
	case "^":
		return ast.AlignMiddle
	case ">":
		return ast.AlignBottom
	}
	return ast.VAlignDefault
}
