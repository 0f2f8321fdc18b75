package diag

import (
	"fmt"
	"sort"

	"glint/internal/source"
)

// InvalidSpanError names an annotation whose byte range is out of bounds,
// inverted, or not aligned to Unicode scalar-value boundaries. It is
// raised before any rendering occurs.
type InvalidSpanError struct {
	Index  int // position of the annotation in its block
	Span   source.Span
	Reason string
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("invalid span %s (annotation %d): %s", e.Span, e.Index, e.Reason)
}

// ResolveAnnotations validates every annotation against the text and
// derives its start/end positions. The result is sorted by
// (start line, start column), ties broken by ascending end offset so
// shorter spans stack first. Overlapping or nested spans are kept as-is;
// vertical stacking is the composer's job.
func ResolveAnnotations(text *source.Text, anns []Annotation) ([]Resolved, error) {
	out := make([]Resolved, 0, len(anns))
	for i, ann := range anns {
		sp := ann.Span
		if sp.Start > sp.End {
			return nil, &InvalidSpanError{Index: i, Span: sp, Reason: "start is past end"}
		}
		if sp.End > text.Len() {
			return nil, &InvalidSpanError{
				Index: i, Span: sp,
				Reason: fmt.Sprintf("end exceeds text length %d", text.Len()),
			}
		}

		start, err := text.Resolve(sp.Start)
		if err != nil {
			return nil, &InvalidSpanError{Index: i, Span: sp, Reason: err.Error()}
		}
		end, err := text.Resolve(sp.End)
		if err != nil {
			return nil, &InvalidSpanError{Index: i, Span: sp, Reason: err.Error()}
		}

		out = append(out, Resolved{
			Annotation: ann,
			Start:      start,
			End:        end,
			Multiline:  start.Line != end.Line,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i], out[j]
		if ri.Start.Line != rj.Start.Line {
			return ri.Start.Line < rj.Start.Line
		}
		if ri.Start.Col != rj.Start.Col {
			return ri.Start.Col < rj.Start.Col
		}
		return ri.Span.End < rj.Span.End
	})
	return out, nil
}
