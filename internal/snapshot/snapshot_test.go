package snapshot

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/vmihailenco/msgpack/v5"

	"glint/internal/block"
	"glint/internal/render"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func renderText(t *testing.T, l *block.Log) string {
	t.Helper()
	lines, err := render.Render(l)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	return strings.Join(lines, "\n")
}

func TestRoundTripPreservesOutput(t *testing.T) {
	log := block.Error().
		HeaderFull("parse failed", "src/main.sg:3:13", "2026-08-28T10:00:00Z", "main").
		Code("let a = \"test\"\nlet y = 3\nlet z = x + y", func(cb *block.CodeBuilder) {
			cb.Path("src/main.sg").
				Final("see the manual").
				Highlight(37, 38, "The variable 'y' must be a number")
		}).
		Separator(10).
		Prefix("> ", func(b *block.Builder) {
			b.Text("quoted\ncontext")
		}).
		Cause(func(b *block.Builder) {
			b.Text("caused by: bad input")
		}).
		Log()

	data, err := Encode(log)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}

	want := renderText(t, log)
	got := renderText(t, decoded)
	if got != want {
		t.Fatalf("round trip changed the output:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
}

func TestDecodeRejectsUnknownSchema(t *testing.T) {
	data, err := msgpack.Marshal(struct {
		Schema uint16
	}{Schema: 99})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	if _, err := Decode(data); err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("expected a schema error, got %v", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not a snapshot")); err == nil {
		t.Fatalf("expected an error for malformed data")
	}
}

func TestEncodeNilLog(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Fatalf("expected an error for a nil log")
	}
}
