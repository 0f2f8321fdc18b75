// Package snapshot serializes frozen logs for cross-process transport
// with a versioned msgpack payload.
package snapshot

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"glint/internal/block"
	"glint/internal/diag"
	"glint/internal/source"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

const (
	kindHeader uint8 = iota
	kindText
	kindCode
	kindPrefix
	kindContainer
	kindSeparator
)

type payload struct {
	Schema uint16
	Log    logPayload
}

type logPayload struct {
	Severity uint8
	Blocks   []blockPayload
	Cause    *logPayload
}

type blockPayload struct {
	Kind uint8

	// Header
	Title        string
	Code         string
	Location     string
	Time         string
	Thread       string
	ShowLocation bool
	ShowTime     bool
	ShowThread   bool

	// Text
	Lines []string

	// Code
	Source      string
	Annotations []annPayload
	Path        string
	Final       string

	// Prefix / Container
	Prefix   string
	Children []blockPayload

	// Separator
	Width int
	Glyph rune
}

type annPayload struct {
	Start    uint32
	End      uint32
	Inline   string
	Trailing string
	Hint     uint8
}

// Encode serializes a frozen log.
func Encode(l *block.Log) ([]byte, error) {
	if l == nil {
		return nil, fmt.Errorf("nil log")
	}
	lp, err := encodeLog(l)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(payload{Schema: schemaVersion, Log: *lp})
}

// Decode rebuilds a log from an encoded snapshot. Payloads written with
// a different schema version are rejected.
func Decode(data []byte) (*block.Log, error) {
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("snapshot schema %d not supported (want %d)", p.Schema, schemaVersion)
	}
	return decodeLog(&p.Log)
}

func encodeLog(l *block.Log) (*logPayload, error) {
	lp := &logPayload{Severity: uint8(l.Severity)}
	for _, b := range l.Blocks {
		bp, err := encodeBlock(b)
		if err != nil {
			return nil, err
		}
		lp.Blocks = append(lp.Blocks, bp)
	}
	if l.Cause != nil {
		cause, err := encodeLog(l.Cause)
		if err != nil {
			return nil, err
		}
		lp.Cause = cause
	}
	return lp, nil
}

func encodeBlock(b block.Block) (blockPayload, error) {
	switch b := b.(type) {
	case block.Header:
		return blockPayload{
			Kind: kindHeader,
			Title: b.Title, Code: b.Code,
			Location: b.Location, Time: b.Time, Thread: b.Thread,
			ShowLocation: b.ShowLocation, ShowTime: b.ShowTime, ShowThread: b.ShowThread,
		}, nil

	case block.Text:
		return blockPayload{Kind: kindText, Lines: b.Lines}, nil

	case block.Code:
		bp := blockPayload{Kind: kindCode, Title: b.Title, Path: b.Path, Final: b.Final}
		if b.Source != nil {
			bp.Source = b.Source.String()
		}
		for _, ann := range b.Annotations {
			bp.Annotations = append(bp.Annotations, annPayload{
				Start:    ann.Span.Start,
				End:      ann.Span.End,
				Inline:   ann.Inline,
				Trailing: ann.Trailing,
				Hint:     uint8(ann.Hint),
			})
		}
		return bp, nil

	case block.Prefix:
		child, err := encodeBlock(b.Child)
		if err != nil {
			return blockPayload{}, err
		}
		return blockPayload{Kind: kindPrefix, Prefix: b.Prefix, Children: []blockPayload{child}}, nil

	case block.Container:
		bp := blockPayload{Kind: kindContainer}
		for _, child := range b.Children {
			cp, err := encodeBlock(child)
			if err != nil {
				return blockPayload{}, err
			}
			bp.Children = append(bp.Children, cp)
		}
		return bp, nil

	case block.Separator:
		return blockPayload{Kind: kindSeparator, Width: b.Width, Glyph: b.Glyph}, nil
	}

	return blockPayload{}, fmt.Errorf("unknown block kind %T", b)
}

func decodeLog(lp *logPayload) (*block.Log, error) {
	l := &block.Log{Severity: diag.Severity(lp.Severity)}
	for i := range lp.Blocks {
		b, err := decodeBlock(&lp.Blocks[i])
		if err != nil {
			return nil, err
		}
		l.Blocks = append(l.Blocks, b)
	}
	if lp.Cause != nil {
		cause, err := decodeLog(lp.Cause)
		if err != nil {
			return nil, err
		}
		l.Cause = cause
	}
	return l, nil
}

func decodeBlock(bp *blockPayload) (block.Block, error) {
	switch bp.Kind {
	case kindHeader:
		return block.Header{
			Title: bp.Title, Code: bp.Code,
			Location: bp.Location, Time: bp.Time, Thread: bp.Thread,
			ShowLocation: bp.ShowLocation, ShowTime: bp.ShowTime, ShowThread: bp.ShowThread,
		}, nil

	case kindText:
		return block.Text{Lines: bp.Lines}, nil

	case kindCode:
		c := block.Code{
			Source: source.NewText(bp.Source),
			Title:  bp.Title,
			Path:   bp.Path,
			Final:  bp.Final,
		}
		for _, ap := range bp.Annotations {
			c.Annotations = append(c.Annotations, diag.Annotation{
				Span:     source.NewSpan(ap.Start, ap.End),
				Inline:   ap.Inline,
				Trailing: ap.Trailing,
				Hint:     diag.Severity(ap.Hint),
			})
		}
		return c, nil

	case kindPrefix:
		if len(bp.Children) != 1 {
			return nil, fmt.Errorf("prefix block needs exactly one child, got %d", len(bp.Children))
		}
		child, err := decodeBlock(&bp.Children[0])
		if err != nil {
			return nil, err
		}
		return block.Prefix{Prefix: bp.Prefix, Child: child}, nil

	case kindContainer:
		c := block.Container{}
		for i := range bp.Children {
			child, err := decodeBlock(&bp.Children[i])
			if err != nil {
				return nil, err
			}
			c.Children = append(c.Children, child)
		}
		return c, nil

	case kindSeparator:
		sep, err := block.NewSeparator(bp.Width, bp.Glyph)
		if err != nil {
			return nil, err
		}
		return sep, nil
	}

	return nil, fmt.Errorf("unknown block kind %d", bp.Kind)
}
