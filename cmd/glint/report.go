package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"glint/internal/block"
	"glint/internal/diag"
	"glint/internal/snapshot"
	"glint/internal/source"
)

// reportFile is the TOML surface for a log tree. Nested blocks use
// [[block.child]] tables; a chained cause uses a [cause] table.
type reportFile struct {
	Severity string        `toml:"severity"`
	Blocks   []reportBlock `toml:"block"`
	Cause    *reportFile   `toml:"cause"`
}

type reportBlock struct {
	Kind string `toml:"kind"`

	// header
	Title    string `toml:"title"`
	Code     string `toml:"code"`
	Location string `toml:"location"`
	Time     string `toml:"time"`
	Thread   string `toml:"thread"`

	// text
	Text string `toml:"text"`

	// code
	Source     string            `toml:"source"`
	SourceFile string            `toml:"source_file"`
	Path       string            `toml:"path"`
	Final      string            `toml:"final"`
	Highlights []reportHighlight `toml:"highlight"`

	// prefix / container
	Prefix   string        `toml:"prefix"`
	Children []reportBlock `toml:"child"`

	// separator
	Width int `toml:"width"`
}

type reportHighlight struct {
	Start    uint32 `toml:"start"`
	End      uint32 `toml:"end"`
	Message  string `toml:"message"`
	Inline   string `toml:"inline"`
	Severity string `toml:"severity"`
}

// loadLog reads a report from disk: msgpack snapshots by extension,
// otherwise TOML.
func loadLog(path string) (*block.Log, error) {
	if ext := filepath.Ext(path); ext == ".glint" || ext == ".bin" {
		data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
		if err != nil {
			return nil, err
		}
		return snapshot.Decode(data)
	}

	var rf reportFile
	if _, err := toml.DecodeFile(path, &rf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return buildLog(&rf, filepath.Dir(path))
}

func buildLog(rf *reportFile, baseDir string) (*block.Log, error) {
	sev, ok := diag.ParseSeverity(rf.Severity)
	if !ok {
		return nil, fmt.Errorf("unknown severity %q", rf.Severity)
	}

	l := &block.Log{Severity: sev}
	for i := range rf.Blocks {
		b, err := buildBlock(&rf.Blocks[i], baseDir)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		l.Blocks = append(l.Blocks, b)
	}

	if rf.Cause != nil {
		cause, err := buildLog(rf.Cause, baseDir)
		if err != nil {
			return nil, fmt.Errorf("cause: %w", err)
		}
		l.Cause = cause
	}
	return l, nil
}

func buildBlock(rb *reportBlock, baseDir string) (block.Block, error) {
	switch rb.Kind {
	case "header":
		return block.Header{
			Title:        rb.Title,
			Code:         rb.Code,
			Location:     rb.Location,
			Time:         rb.Time,
			Thread:       rb.Thread,
			ShowLocation: rb.Location != "",
			ShowTime:     rb.Time != "",
			ShowThread:   rb.Thread != "",
		}, nil

	case "text":
		return block.Text{Lines: strings.Split(rb.Text, "\n")}, nil

	case "code":
		text, err := codeSource(rb, baseDir)
		if err != nil {
			return nil, err
		}
		c := block.Code{Source: text, Title: rb.Title, Path: rb.Path, Final: rb.Final}
		for _, h := range rb.Highlights {
			ann := diag.Annotation{
				Span:     source.NewSpan(h.Start, h.End),
				Inline:   h.Inline,
				Trailing: h.Message,
			}
			if h.Severity != "" {
				hint, ok := diag.ParseSeverity(h.Severity)
				if !ok {
					return nil, fmt.Errorf("unknown highlight severity %q", h.Severity)
				}
				ann.Hint = hint
			}
			c.Annotations = append(c.Annotations, ann)
		}
		return c, nil

	case "prefix":
		if len(rb.Children) == 0 {
			return nil, fmt.Errorf("prefix block needs at least one child")
		}
		child, err := buildChildren(rb.Children, baseDir)
		if err != nil {
			return nil, err
		}
		return block.Prefix{Prefix: rb.Prefix, Child: child}, nil

	case "container":
		child, err := buildChildren(rb.Children, baseDir)
		if err != nil {
			return nil, err
		}
		return child, nil

	case "separator":
		width := rb.Width
		if width == 0 {
			width = 40
		}
		sep, err := block.NewSeparator(width, '─')
		if err != nil {
			return nil, err
		}
		return sep, nil
	}

	return nil, fmt.Errorf("unknown block kind %q", rb.Kind)
}

func buildChildren(children []reportBlock, baseDir string) (block.Block, error) {
	blocks := make([]block.Block, 0, len(children))
	for i := range children {
		b, err := buildBlock(&children[i], baseDir)
		if err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	if len(blocks) == 1 {
		return blocks[0], nil
	}
	return block.Container{Children: blocks}, nil
}

// codeSource resolves inline source text or a source_file reference
// relative to the report location.
func codeSource(rb *reportBlock, baseDir string) (*source.Text, error) {
	if rb.SourceFile != "" {
		path := rb.SourceFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return source.Load(path)
	}
	return source.NewText(rb.Source), nil
}
