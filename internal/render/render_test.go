package render

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"glint/internal/block"
)

func TestRenderHeader(t *testing.T) {
	log := block.Error().
		Add(block.Header{
			Title:        "Something failed",
			Code:         "E042",
			Location:     "src/main.sg:3:13",
			Time:         "2026-08-28T10:00:00Z",
			Thread:       "main",
			ShowLocation: true,
			ShowTime:     true,
			ShowThread:   true,
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"ERROR[E042] Something failed",
		" → in src/main.sg:3:13",
		" → at 2026-08-28T10:00:00Z",
		" → on thread main",
	})
}

func TestRenderHeaderHidesDisabledFields(t *testing.T) {
	log := block.Warn().
		Add(block.Header{
			Title:    "partial",
			Location: "ignored",
			Time:     "ignored",
			Thread:   "ignored",
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{"WARN partial"})
}

func TestRenderPrefixComposition(t *testing.T) {
	log := block.Info().
		Add(block.Prefix{
			Prefix: "> ",
			Child: block.Prefix{
				Prefix: "> ",
				Child:  block.Text{Lines: []string{"one", "two"}},
			},
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"> > one",
		"> > two",
	})
}

func TestRenderPrefixWrapsCodeBorders(t *testing.T) {
	log := block.Error().
		Prefix("|  ", func(b *block.Builder) {
			b.Code("bad", func(cb *block.CodeBuilder) {
				cb.Highlight(0, 3, "oops")
			})
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"|    ┌─",
		"|  1 │ bad",
		"|    │ ^^^ oops",
		"|    └─",
	})
}

func TestRenderTextAndSeparator(t *testing.T) {
	log := block.Info().
		Text("first\nsecond").
		Separator(5).
		Text("third").
		Log()

	assertLines(t, renderLines(t, log), []string{
		"first",
		"second",
		"─────",
		"third",
	})
}

func TestRenderContainerConcatenates(t *testing.T) {
	log := block.Info().
		Add(block.Container{Children: []block.Block{
			block.Text{Lines: []string{"a"}},
			block.Text{Lines: []string{"b"}},
		}}).
		Log()

	assertLines(t, renderLines(t, log), []string{"a", "b"})
}

func TestRenderCauseChain(t *testing.T) {
	log := block.Error().
		Header("top level").
		Cause(func(b *block.Builder) {
			b.Text("caused by: disk full")
		}).
		Log()

	assertLines(t, renderLines(t, log), []string{
		"ERROR top level",
		"caused by: disk full",
	})
}

func TestRenderIdempotent(t *testing.T) {
	log := block.Error().
		Header("boom").
		Code("let x = 1", func(cb *block.CodeBuilder) {
			cb.Highlight(4, 5, "here")
		}).
		Log()

	first := renderLines(t, log)
	second := renderLines(t, log)
	assertLines(t, second, first)
}

func TestRenderConcurrentIdentical(t *testing.T) {
	log := block.Warn().
		Code("a\nbb\nccc", func(cb *block.CodeBuilder) {
			cb.Highlight(2, 4, "middle")
		}).
		Log()

	want := strings.Join(renderLines(t, log), "\n")

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lines, err := Render(log)
			if err != nil {
				t.Errorf("Render returned error: %v", err)
				return
			}
			if got := strings.Join(lines, "\n"); got != want {
				t.Errorf("concurrent render diverged:\n%s", got)
			}
		}()
	}
	wg.Wait()
}

func TestWriteJoinsWithNewlines(t *testing.T) {
	log := block.Info().Text("a\nb").Log()

	var buf bytes.Buffer
	if err := Write(&buf, log); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.String() != "a\nb\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
