package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"glint/internal/block"
	"glint/internal/diag"
)

// composeCode renders a code block into its bordered line group:
// numbered source lines, pointer and connector rows, and the open/close
// border. The gutter width is computed once for the whole group from the
// largest displayed line number.
func composeCode(c block.Code, sev diag.Severity) ([]string, error) {
	if c.Source == nil || c.Source.Empty() {
		return nil, &EmptyBlockError{Detail: "source text is empty"}
	}

	anns, err := diag.ResolveAnnotations(c.Source, c.Annotations)
	if err != nil {
		return nil, err
	}

	lines := displayedLines(anns)
	if len(lines) == 0 {
		return nil, &EmptyBlockError{Detail: "no source lines are referenced"}
	}

	gutterW := len(strconv.FormatUint(uint64(lines[len(lines)-1]), 10))
	hasMulti := false
	for i := range anns {
		if anns[i].Multiline {
			hasMulti = true
			break
		}
	}

	out := make([]string, 0, 2+2*len(lines))
	if c.Title != "" {
		out = append(out, borderColor.Sprint(c.Title))
	}
	out = append(out, topBorder(gutterW, c.Path))

	var prev uint32
	for _, ln := range lines {
		if prev != 0 && ln != prev+1 {
			out = append(out, strings.Repeat(" ", gutterW)+" "+glyphEllipsis)
		}
		prev = ln

		text, err := c.Source.LineText(ln)
		if err != nil {
			return nil, err
		}
		out = append(out, sourceRow(gutterW, ln, text, anns, hasMulti))
		out = append(out, markerRows(gutterW, ln, text, anns, sev, hasMulti)...)
	}

	out = append(out, bottomBorder(gutterW, c.Final))
	return out, nil
}

// displayedLines returns the sorted union of every annotation's covered
// line range. Only referenced lines are shown; gaps become ellipsis rows.
func displayedLines(anns []diag.Resolved) []uint32 {
	seen := make(map[uint32]struct{})
	out := make([]uint32, 0, len(anns))
	for i := range anns {
		for ln := anns[i].Start.Line; ln <= anns[i].End.Line; ln++ {
			if _, ok := seen[ln]; !ok {
				seen[ln] = struct{}{}
				out = append(out, ln)
			}
		}
	}
	// Annotations are sorted by start, but ranges may interleave.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func topBorder(gutterW int, path string) string {
	row := strings.Repeat(" ", gutterW) + " " + borderColor.Sprint(glyphTopCorner+glyphHBar)
	if path != "" {
		row += borderColor.Sprint("[") + path + borderColor.Sprint("]")
	}
	return row
}

func bottomBorder(gutterW int, final string) string {
	row := strings.Repeat(" ", gutterW) + " " + borderColor.Sprint(glyphBottomCorner+glyphHBar)
	if final != "" {
		row += " " + final
	}
	return row
}

func sourceRow(gutterW int, ln uint32, text string, anns []diag.Resolved, hasMulti bool) string {
	row := fmt.Sprintf("%*d %s ", gutterW, ln, glyphVBar)
	if hasMulti {
		row += connectorField(ln, anns)
	}
	return row + text
}

// connectorField is the two-cell column between the gutter bar and the
// source text, reserved when the group contains a multi-line annotation.
func connectorField(ln uint32, anns []diag.Resolved) string {
	for i := range anns {
		if anns[i].Multiline && anns[i].Start.Line <= ln && ln <= anns[i].End.Line {
			return glyphVBar + " "
		}
	}
	return "  "
}

// markerRows emits one row per annotation touching the given line, in
// resolver order, so labels never share a row.
func markerRows(gutterW int, ln uint32, text string, anns []diag.Resolved, sev diag.Severity, hasMulti bool) []string {
	gutterPad := strings.Repeat(" ", gutterW) + " " + glyphVBar + " "

	var rows []string
	for i := range anns {
		ann := &anns[i]
		switch {
		case !ann.Multiline && ann.Start.Line == ln:
			rows = append(rows, pointerRow(gutterPad, text, ann, sev, hasMulti))
		case ann.Multiline && ann.Start.Line == ln:
			rows = append(rows, connectorStartRow(gutterPad, text, ann, sev))
		case ann.Multiline && ann.End.Line == ln:
			rows = append(rows, connectorEndRow(gutterPad, text, ann, sev))
		}
	}
	return rows
}

// pointerRow places a caret under every display cell the span covers on
// its single line, minimum one cell so zero-width spans stay visible.
func pointerRow(gutterPad, text string, ann *diag.Resolved, sev diag.Severity, hasMulti bool) string {
	row := gutterPad
	if hasMulti {
		row += "  "
	}
	width := cellWidth(text, ann.Start.Col, ann.End.Col)
	if width < 1 {
		width = 1
	}
	row += strings.Repeat(" ", prefixCells(text, ann.Start.Col))
	row += paintMarker(ann.Hint, sev, strings.Repeat(glyphPointer, width))
	if label := ann.Label(); label != "" {
		row += " " + label
	}
	return row
}

// connectorStartRow marks the start column of a multi-line span beneath
// its first line.
func connectorStartRow(gutterPad, text string, ann *diag.Resolved, sev diag.Severity) string {
	marker := glyphTopCorner + glyphHBar +
		strings.Repeat(glyphHBar, prefixCells(text, ann.Start.Col)) + glyphPointer
	return gutterPad + paintMarker(ann.Hint, sev, marker)
}

// connectorEndRow marks the end column beneath the last line and carries
// the annotation's message.
func connectorEndRow(gutterPad, text string, ann *diag.Resolved, sev diag.Severity) string {
	marker := glyphBottomCorner + glyphHBar +
		strings.Repeat(glyphHBar, prefixCells(text, ann.End.Col)) + glyphPointer
	row := gutterPad + paintMarker(ann.Hint, sev, marker)
	if label := ann.TrailingLabel(); label != "" {
		row += " " + label
	}
	return row
}

// prefixCells returns the display width of the first col-1 scalar values
// of the line, so markers line up under wide runes as well.
func prefixCells(text string, col uint32) int {
	remaining := int(col) - 1
	width := 0
	for _, r := range text {
		if remaining == 0 {
			break
		}
		width += runewidth.RuneWidth(r)
		remaining--
	}
	return width
}

// cellWidth returns the display width of the scalar values in columns
// [startCol, endCol) of the line.
func cellWidth(text string, startCol, endCol uint32) int {
	if endCol <= startCol {
		return 0
	}
	skip := int(startCol) - 1
	take := int(endCol - startCol)
	width := 0
	for _, r := range text {
		if skip > 0 {
			skip--
			continue
		}
		if take == 0 {
			break
		}
		width += runewidth.RuneWidth(r)
		take--
	}
	return width
}
