package render

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"glint/internal/block"
	"glint/internal/diag"
	"glint/internal/source"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func renderLines(t *testing.T, l *block.Log) []string {
	t.Helper()
	lines, err := Render(l)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return lines
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected output:\nwant:\n%s\n\ngot:\n%s",
			strings.Join(want, "\n"), strings.Join(got, "\n"))
	}
}

func TestComposeSingleSpanWithTrailingMessage(t *testing.T) {
	src := "let a = \"test\"\nlet y = 3\nlet z = x + y"

	log := block.Error().
		Code(src, func(cb *block.CodeBuilder) {
			cb.Highlight(37, 38, "The variable 'y' must be a number")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"  ┌─",
		"3 │ let z = x + y",
		"  │             ^ The variable 'y' must be a number",
		"  └─",
	})
}

func TestComposeMultilineSpan(t *testing.T) {
	log := block.Warn().
		Code("hello\nworld", func(cb *block.CodeBuilder) {
			cb.Highlight(4, 9, "wraps the line break")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"  ┌─",
		"1 │ │ hello",
		"  │ ┌─────^",
		"2 │ │ world",
		"  │ └────^ wraps the line break",
		"  └─",
	})
}

func TestComposeZeroWidthSpanIsVisible(t *testing.T) {
	log := block.Error().
		Code("ab", func(cb *block.CodeBuilder) {
			cb.Cursor(1, "missing token")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"  ┌─",
		"1 │ ab",
		"  │  ^ missing token",
		"  └─",
	})
}

func TestComposeStackedPointerRows(t *testing.T) {
	log := block.Error().
		Code("let x = 1", func(cb *block.CodeBuilder) {
			cb.Highlight(8, 9, "second")
			cb.Highlight(4, 5, "first")
		}).
		Log()

	// Resolver order, one row per annotation, no shared rows.
	assertLines(t, renderLines(t, log), []string{
		"  ┌─",
		"1 │ let x = 1",
		"  │     ^ first",
		"  │         ^ second",
		"  └─",
	})
}

func TestComposeInlineMessagePreferred(t *testing.T) {
	log := block.Error().
		Code("oops", func(cb *block.CodeBuilder) {
			cb.Annotate(diag.Annotation{
				Span:     source.NewSpan(0, 4),
				Inline:   "right here",
				Trailing: "ignored on the pointer row",
			})
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"  ┌─",
		"1 │ oops",
		"  │ ^^^^ right here",
		"  └─",
	})
}

func TestComposeEllipsisBetweenGroups(t *testing.T) {
	log := block.Info().
		Code("a\nb\nc", func(cb *block.CodeBuilder) {
			cb.Highlight(0, 1, "first")
			cb.Highlight(4, 5, "third")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"  ┌─",
		"1 │ a",
		"  │ ^ first",
		"  ···",
		"3 │ c",
		"  │ ^ third",
		"  └─",
	})
}

func TestComposeGutterWidthAcrossPowerOfTen(t *testing.T) {
	// 100 one-character lines; annotations on 99 and 100 force a
	// three-digit gutter that every row of the group shares.
	src := strings.TrimSuffix(strings.Repeat("x\n", 100), "\n")

	log := block.Error().
		Code(src, func(cb *block.CodeBuilder) {
			cb.Highlight(196, 197, "a")
			cb.Highlight(198, 199, "b")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"    ┌─",
		" 99 │ x",
		"    │ ^ a",
		"100 │ x",
		"    │ ^ b",
		"    └─",
	})
}

func TestComposeWideRuneAlignment(t *testing.T) {
	// The CJK rune occupies two display cells; the marker must shift
	// past both even though it is a single scalar value.
	log := block.Error().
		Code("a世b", func(cb *block.CodeBuilder) {
			cb.Highlight(4, 5, "after the wide rune")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"  ┌─",
		"1 │ a世b",
		"  │    ^ after the wide rune",
		"  └─",
	})
}

func TestComposePathAndFinalMessage(t *testing.T) {
	log := block.Error().
		Code("boom", func(cb *block.CodeBuilder) {
			cb.Path("src/main.sg").
				Final("see the manual").
				Highlight(0, 4, "here")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"  ┌─[src/main.sg]",
		"1 │ boom",
		"  │ ^^^^ here",
		"  └─ see the manual",
	})
}

func TestComposeTitleAboveGroup(t *testing.T) {
	log := block.Error().
		Code("boom", func(cb *block.CodeBuilder) {
			cb.Title("while evaluating").Highlight(0, 4, "here")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"while evaluating",
		"  ┌─",
		"1 │ boom",
		"  │ ^^^^ here",
		"  └─",
	})
}

func TestComposeEmptyBlockErrors(t *testing.T) {
	var emptyErr *EmptyBlockError

	empty := block.Error().Code("", nil).Log()
	if _, err := Render(empty); !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyBlockError for empty source, got %v", err)
	}

	noLines := block.Error().Code("some text", nil).Log()
	if _, err := Render(noLines); !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyBlockError for no annotations, got %v", err)
	}
}

func TestComposeInvalidSpanFailsBeforeOutput(t *testing.T) {
	log := block.Error().
		Code("short", func(cb *block.CodeBuilder) {
			cb.Highlight(0, 99, "broken")
		}).
		Log()

	var spanErr *diag.InvalidSpanError
	lines, err := Render(log)
	if !errors.As(err, &spanErr) {
		t.Fatalf("expected InvalidSpanError, got %v", err)
	}
	if lines != nil {
		t.Fatalf("no partial output expected, got %v", lines)
	}
}
