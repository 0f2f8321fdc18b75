package source

import "fmt"

// OffsetError reports a position query with a byte offset that is out of
// range or does not fall on a Unicode scalar-value boundary. It is always
// a programming error in the caller.
type OffsetError struct {
	Offset     uint32
	Len        uint32
	Misaligned bool
}

func (e *OffsetError) Error() string {
	if e.Misaligned {
		return fmt.Sprintf("offset %d is not on a rune boundary", e.Offset)
	}
	return fmt.Sprintf("offset %d out of range for text of %d bytes", e.Offset, e.Len)
}

// LineRangeError reports a query for a line number outside the text.
type LineRangeError struct {
	Line uint32
	Max  uint32
}

func (e *LineRangeError) Error() string {
	return fmt.Sprintf("line %d out of range 1..%d", e.Line, e.Max)
}
