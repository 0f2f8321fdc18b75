package source

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Text is an immutable source string with a lazily built line index.
// The index is a sorted list of newline byte offsets; line 1 starts at
// offset 0. It is computed at most once, guarded for concurrent use, so
// a frozen Text can be shared across goroutines.
type Text struct {
	content string

	once    sync.Once
	lineIdx []uint32
}

// NewText wraps the given string as an immutable source text.
func NewText(content string) *Text {
	return &Text{content: content}
}

// NewTextBytes copies the given bytes into an immutable source text.
func NewTextBytes(content []byte) *Text {
	return &Text{content: string(content)}
}

// String returns the raw content.
func (t *Text) String() string {
	return t.content
}

// Len returns the content length in bytes.
func (t *Text) Len() uint32 {
	n, err := safecast.Conv[uint32](len(t.content))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}
	return n
}

// Empty reports whether the text has no content.
func (t *Text) Empty() bool {
	return len(t.content) == 0
}

func (t *Text) index() []uint32 {
	t.once.Do(func() {
		idx := make([]uint32, 0, strings.Count(t.content, "\n"))
		for i := 0; i < len(t.content); i++ {
			if t.content[i] == '\n' {
				off, err := safecast.Conv[uint32](i)
				if err != nil {
					panic(fmt.Errorf("newline offset overflow: %w", err))
				}
				idx = append(idx, off)
			}
		}
		t.lineIdx = idx
	})
	return t.lineIdx
}

// LineCount returns the number of lines. The empty text has one line.
func (t *Text) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(t.index()))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n + 1
}

// Resolve converts a byte offset into a 1-based line/column position.
// Columns count Unicode scalar values, not bytes. The offset may equal
// the text length (the position just past the end). It fails with an
// *OffsetError when the offset is out of range or does not fall on a
// rune boundary.
func (t *Text) Resolve(offset uint32) (LineCol, error) {
	if offset > t.Len() {
		return LineCol{}, &OffsetError{Offset: offset, Len: t.Len()}
	}
	if offset < t.Len() && !utf8.RuneStart(t.content[offset]) {
		return LineCol{}, &OffsetError{Offset: offset, Len: t.Len(), Misaligned: true}
	}

	idx := t.index()

	// Binary search for the last newline strictly before offset.
	lo, hi := 0, len(idx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if idx[mid] < offset {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // 0-based index of that newline, -1 when on line 1

	var startOff uint32
	if line >= 0 {
		startOff = idx[line] + 1
	}

	col, err := safecast.Conv[uint32](utf8.RuneCountInString(t.content[startOff:offset]))
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	lineNum, err := safecast.Conv[uint32](line + 2)
	if err != nil {
		panic(fmt.Errorf("line overflow: %w", err))
	}
	return LineCol{Line: lineNum, Col: col + 1}, nil
}

// LineText returns the raw text of the given 1-based line, excluding its
// terminating newline. It fails with a *LineRangeError when the line is
// out of bounds.
func (t *Text) LineText(line uint32) (string, error) {
	if line == 0 || line > t.LineCount() {
		return "", &LineRangeError{Line: line, Max: t.LineCount()}
	}
	return t.content[t.lineStart(line):t.lineEnd(line)], nil
}

// lineStart returns the byte offset where the given valid line begins.
func (t *Text) lineStart(line uint32) uint32 {
	if line <= 1 {
		return 0
	}
	return t.index()[line-2] + 1
}

// lineEnd returns the byte offset of the given valid line's newline, or
// the text length for the last line.
func (t *Text) lineEnd(line uint32) uint32 {
	idx := t.index()
	if int(line-1) < len(idx) {
		return idx[line-1]
	}
	return t.Len()
}
