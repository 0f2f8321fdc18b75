package render

import "fmt"

// EmptyBlockError reports a code block with nothing to display: either
// its source text is empty or no line is referenced by an annotation.
// An empty excerpt indicates a caller mistake, so it is reported rather
// than silently skipped.
type EmptyBlockError struct {
	Detail string
}

func (e *EmptyBlockError) Error() string {
	return fmt.Sprintf("empty code block: %s", e.Detail)
}
