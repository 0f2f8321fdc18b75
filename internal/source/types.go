package source

import "fmt"

// LineCol is a human-readable position in a source text.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, counted in Unicode scalar values
}

// Span is a half-open byte interval [Start, End) into a source text.
type Span struct {
	Start uint32 // inclusive
	End   uint32 // exclusive
}

// NewSpan builds a span from start/end byte offsets.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the span length in bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover extends the span so it also contains other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
