package block

import (
	"testing"

	"glint/internal/diag"
)

func TestBuilderSeverityShortcuts(t *testing.T) {
	cases := map[diag.Severity]*Builder{
		diag.SevTrace: Trace(),
		diag.SevDebug: Debug(),
		diag.SevInfo:  Info(),
		diag.SevWarn:  Warn(),
		diag.SevError: Error(),
	}
	for want, b := range cases {
		if got := b.Log().Severity; got != want {
			t.Fatalf("severity = %v, want %v", got, want)
		}
	}
}

func TestBuilderTextSplitsLines(t *testing.T) {
	log := Info().Text("one\ntwo\nthree").Log()

	if len(log.Blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(log.Blocks))
	}
	txt, ok := log.Blocks[0].(Text)
	if !ok {
		t.Fatalf("expected a Text block, got %T", log.Blocks[0])
	}
	if len(txt.Lines) != 3 || txt.Lines[1] != "two" {
		t.Fatalf("unexpected lines %v", txt.Lines)
	}
}

func TestBuilderPrefixUnwrapsSingleChild(t *testing.T) {
	log := Info().
		Prefix("> ", func(b *Builder) {
			b.Text("only")
		}).
		Log()

	p, ok := log.Blocks[0].(Prefix)
	if !ok {
		t.Fatalf("expected a Prefix block, got %T", log.Blocks[0])
	}
	if _, ok := p.Child.(Text); !ok {
		t.Fatalf("single child should not be wrapped, got %T", p.Child)
	}
}

func TestBuilderPrefixWrapsMultipleChildren(t *testing.T) {
	log := Info().
		Prefix("> ", func(b *Builder) {
			b.Text("a").Text("b")
		}).
		Log()

	p := log.Blocks[0].(Prefix)
	c, ok := p.Child.(Container)
	if !ok {
		t.Fatalf("multiple children should be wrapped in a Container, got %T", p.Child)
	}
	if len(c.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(c.Children))
	}
}

func TestBuilderCodeAnnotations(t *testing.T) {
	log := Error().
		Code("let x = 1", func(cb *CodeBuilder) {
			cb.Path("main.sg").
				Final("done").
				Highlight(4, 5, "trailing").
				HighlightInline(8, 9, "inline").
				Cursor(2, "here")
		}).
		Log()

	c := log.Blocks[0].(Code)
	if c.Path != "main.sg" || c.Final != "done" {
		t.Fatalf("unexpected borders %q / %q", c.Path, c.Final)
	}
	if len(c.Annotations) != 3 {
		t.Fatalf("expected 3 annotations, got %d", len(c.Annotations))
	}
	if c.Annotations[1].Inline != "inline" || c.Annotations[1].Trailing != "" {
		t.Fatalf("inline annotation mis-built: %+v", c.Annotations[1])
	}
	if !c.Annotations[2].Span.Empty() {
		t.Fatalf("cursor should build a zero-width span, got %v", c.Annotations[2].Span)
	}
}

func TestBuilderCauseInheritsSeverity(t *testing.T) {
	log := Error().
		Header("outer").
		Cause(func(b *Builder) {
			b.Text("inner")
		}).
		Log()

	if log.Cause == nil {
		t.Fatalf("expected a cause chain")
	}
	if log.Cause.Severity != diag.SevError {
		t.Fatalf("cause severity = %v, want error", log.Cause.Severity)
	}
}

func TestNewSeparatorRejectsNewline(t *testing.T) {
	if _, err := NewSeparator(10, '\n'); err == nil {
		t.Fatalf("newline glyph should be rejected")
	}
	sep, err := NewSeparator(10, '─')
	if err != nil {
		t.Fatalf("NewSeparator returned error: %v", err)
	}
	if sep.Width != 10 || sep.Glyph != '─' {
		t.Fatalf("unexpected separator %+v", sep)
	}
}
