package render

import (
	"fmt"
	"io"
	"strings"

	"glint/internal/block"
	"glint/internal/diag"
)

// Render walks a frozen log depth-first and returns the final ordered
// sequence of text lines. It is a pure function of the tree: rendering
// the same log twice yields identical output, and concurrent calls are
// safe. Every block is composed before any line is returned, so an
// invalid tree produces an error and no partial output.
func Render(l *block.Log) ([]string, error) {
	if l == nil {
		return nil, fmt.Errorf("nil log")
	}
	return renderLog(l)
}

// Write renders the log and writes it to w joined with newlines.
func Write(w io.Writer, l *block.Log) error {
	lines, err := Render(l)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func renderLog(l *block.Log) ([]string, error) {
	var out []string
	for i, b := range l.Blocks {
		lines, err := renderBlock(b, l.Severity)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, lines...)
	}
	if l.Cause != nil {
		lines, err := renderLog(l.Cause)
		if err != nil {
			return nil, fmt.Errorf("cause: %w", err)
		}
		out = append(out, lines...)
	}
	return out, nil
}

func renderBlock(b block.Block, sev diag.Severity) ([]string, error) {
	switch b := b.(type) {
	case block.Header:
		return renderHeader(b, sev), nil

	case block.Text:
		out := make([]string, len(b.Lines))
		copy(out, b.Lines)
		return out, nil

	case block.Code:
		return composeCode(b, sev)

	case block.Prefix:
		child, err := renderBlock(b.Child, sev)
		if err != nil {
			return nil, err
		}
		out := make([]string, len(child))
		for i, line := range child {
			out[i] = b.Prefix + line
		}
		return out, nil

	case block.Container:
		var out []string
		for _, child := range b.Children {
			lines, err := renderBlock(child, sev)
			if err != nil {
				return nil, err
			}
			out = append(out, lines...)
		}
		return out, nil

	case block.Separator:
		if b.Width <= 0 {
			return []string{""}, nil
		}
		return []string{strings.Repeat(string(b.Glyph), b.Width)}, nil
	}

	return nil, fmt.Errorf("unknown block kind %T", b)
}

// renderHeader emits the title line tagged with the severity, then one
// arrow-prefixed line per enabled metadata field.
func renderHeader(h block.Header, sev diag.Severity) []string {
	title := paintTag(sev)
	if h.Code != "" {
		title += borderColor.Sprintf("[%s]", h.Code)
	}
	if h.Title != "" {
		title += " " + h.Title
	}

	out := []string{title}
	if h.ShowLocation && h.Location != "" {
		out = append(out, metaLine(sev, "in", h.Location))
	}
	if h.ShowTime && h.Time != "" {
		out = append(out, metaLine(sev, "at", h.Time))
	}
	if h.ShowThread && h.Thread != "" {
		out = append(out, metaLine(sev, "on thread", h.Thread))
	}
	return out
}

func metaLine(sev diag.Severity, keyword, value string) string {
	return " " + severityColor(sev).Sprint(glyphArrow+" "+keyword) + " " + value
}
