package diag

import "glint/internal/source"

// Annotation is a highlighted byte range over a source text, with
// optional messages and an optional severity hint. Inline text is
// rendered at the annotation site; Trailing text is rendered after the
// pointer markers.
type Annotation struct {
	Span     source.Span
	Inline   string
	Trailing string
	Hint     Severity // zero inherits the log severity
}

// Resolved is an Annotation plus its derived start/end positions.
type Resolved struct {
	Annotation
	Start     source.LineCol
	End       source.LineCol
	Multiline bool
}

// Label returns the message shown on a single-line pointer row: the
// inline message when present, otherwise the trailing one.
func (a Annotation) Label() string {
	if a.Inline != "" {
		return a.Inline
	}
	return a.Trailing
}

// TrailingLabel returns the message attached to the final connector row
// of a multi-line annotation.
func (a Annotation) TrailingLabel() string {
	if a.Trailing != "" {
		return a.Trailing
	}
	return a.Inline
}
