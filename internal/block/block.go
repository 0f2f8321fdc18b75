package block

import (
	"fmt"

	"glint/internal/diag"
	"glint/internal/source"
)

// Block is a node in the document tree. The set of variants is closed:
// the renderer dispatches on the concrete type and treats anything else
// as a bug. A block owns its children exclusively; the tree has no
// back-references and no cycles.
type Block interface {
	isBlock()
}

// Header prints the severity tag with a title, optionally followed by
// location, timestamp and thread lines. Timestamp and thread identity
// are injected as plain data at construction time; the renderer never
// reads a clock or the OS thread table.
type Header struct {
	Title    string
	Code     string // optional bracketed code after the tag
	Location string
	Time     string
	Thread   string

	ShowLocation bool
	ShowTime     bool
	ShowThread   bool
}

// Text prints literal lines unchanged.
type Text struct {
	Lines []string
}

// Code prints a bordered source excerpt with underline annotations.
type Code struct {
	Source      *source.Text
	Annotations []diag.Annotation

	Title string // optional, rendered above the top border
	Path  string // optional, shown in the top border
	Final string // optional, attached to the bottom border
}

// Prefix prepends a literal string to every line its child produces.
type Prefix struct {
	Prefix string
	Child  Block
}

// Container concatenates its children in order with no decoration.
type Container struct {
	Children []Block
}

// Separator prints a rule line repeating a glyph.
type Separator struct {
	Width int
	Glyph rune
}

func (Header) isBlock()    {}
func (Text) isBlock()      {}
func (Code) isBlock()      {}
func (Prefix) isBlock()    {}
func (Container) isBlock() {}
func (Separator) isBlock() {}

// NewSeparator builds a separator block. Newline glyphs are rejected
// since a separator contributes exactly one line.
func NewSeparator(width int, glyph rune) (Separator, error) {
	if glyph == '\n' {
		return Separator{}, fmt.Errorf("separator glyph cannot be a newline")
	}
	return Separator{Width: width, Glyph: glyph}, nil
}

// Log is the root of a document tree: a severity tag plus an ordered
// list of top-level blocks, optionally chained to a cause rendered after
// them. A Log is frozen once handed to the renderer; nothing mutates it
// afterwards, so it is safe to share across goroutines.
type Log struct {
	Severity diag.Severity
	Blocks   []Block
	Cause    *Log
}
