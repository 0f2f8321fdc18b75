package block

import (
	"strings"

	"glint/internal/diag"
	"glint/internal/source"
)

// Builder assembles a Log incrementally. It is plain sugar over tree
// construction: every method appends a block and returns the builder,
// and Log() hands out the finished tree. Builders are not safe for
// concurrent use; the resulting Log is.
type Builder struct {
	log Log
}

// New starts a log with the given severity.
func New(sev diag.Severity) *Builder {
	return &Builder{log: Log{Severity: sev}}
}

// Trace starts a trace-severity log.
func Trace() *Builder { return New(diag.SevTrace) }

// Debug starts a debug-severity log.
func Debug() *Builder { return New(diag.SevDebug) }

// Info starts an info-severity log.
func Info() *Builder { return New(diag.SevInfo) }

// Warn starts a warn-severity log.
func Warn() *Builder { return New(diag.SevWarn) }

// Error starts an error-severity log.
func Error() *Builder { return New(diag.SevError) }

// Add appends an arbitrary block.
func (b *Builder) Add(blk Block) *Builder {
	b.log.Blocks = append(b.log.Blocks, blk)
	return b
}

// Header appends a header block with just a title.
func (b *Builder) Header(title string) *Builder {
	return b.Add(Header{Title: title})
}

// HeaderFull appends a header with location, timestamp and thread lines.
// Empty values keep their line hidden.
func (b *Builder) HeaderFull(title, location, time, thread string) *Builder {
	return b.Add(Header{
		Title:        title,
		Location:     location,
		Time:         time,
		Thread:       thread,
		ShowLocation: location != "",
		ShowTime:     time != "",
		ShowThread:   thread != "",
	})
}

// Text appends a literal text block; the string is split on newlines.
func (b *Builder) Text(text string) *Builder {
	return b.Add(Text{Lines: strings.Split(text, "\n")})
}

// Separator appends a horizontal rule of the given width.
func (b *Builder) Separator(width int) *Builder {
	return b.Add(Separator{Width: width, Glyph: '─'})
}

// Code appends a code block built by the given function.
func (b *Builder) Code(src string, build func(*CodeBuilder)) *Builder {
	cb := &CodeBuilder{code: Code{Source: source.NewText(src)}}
	if build != nil {
		build(cb)
	}
	return b.Add(cb.code)
}

// Prefix appends a prefix block wrapping the blocks built by the given
// function.
func (b *Builder) Prefix(prefix string, build func(*Builder)) *Builder {
	inner := New(b.log.Severity)
	if build != nil {
		build(inner)
	}
	child := Block(Container{Children: inner.log.Blocks})
	if len(inner.log.Blocks) == 1 {
		child = inner.log.Blocks[0]
	}
	return b.Add(Prefix{Prefix: prefix, Child: child})
}

// Cause chains a nested log rendered after this one's blocks.
func (b *Builder) Cause(build func(*Builder)) *Builder {
	inner := New(b.log.Severity)
	if build != nil {
		build(inner)
	}
	cause := inner.log
	b.log.Cause = &cause
	return b
}

// Log returns the finished tree. The builder must not be reused after.
func (b *Builder) Log() *Log {
	l := b.log
	return &l
}

// CodeBuilder assembles a Code block.
type CodeBuilder struct {
	code Code
}

// Title sets the line rendered above the top border.
func (cb *CodeBuilder) Title(title string) *CodeBuilder {
	cb.code.Title = title
	return cb
}

// Path sets the file path shown in the top border.
func (cb *CodeBuilder) Path(path string) *CodeBuilder {
	cb.code.Path = path
	return cb
}

// Final sets the message attached to the bottom border.
func (cb *CodeBuilder) Final(msg string) *CodeBuilder {
	cb.code.Final = msg
	return cb
}

// Highlight adds a span with a trailing message.
func (cb *CodeBuilder) Highlight(start, end uint32, trailing string) *CodeBuilder {
	cb.code.Annotations = append(cb.code.Annotations, diag.Annotation{
		Span:     source.NewSpan(start, end),
		Trailing: trailing,
	})
	return cb
}

// HighlightInline adds a span with an inline message.
func (cb *CodeBuilder) HighlightInline(start, end uint32, inline string) *CodeBuilder {
	cb.code.Annotations = append(cb.code.Annotations, diag.Annotation{
		Span:   source.NewSpan(start, end),
		Inline: inline,
	})
	return cb
}

// Cursor adds a zero-width span at the given offset. Zero-width spans
// still render a single marker column.
func (cb *CodeBuilder) Cursor(offset uint32, trailing string) *CodeBuilder {
	return cb.Highlight(offset, offset, trailing)
}

// Annotate adds a fully specified annotation.
func (cb *CodeBuilder) Annotate(ann diag.Annotation) *CodeBuilder {
	cb.code.Annotations = append(cb.code.Annotations, ann)
	return cb
}
