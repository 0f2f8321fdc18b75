// Package render turns a frozen block tree into decorated terminal text.
//
// # Pipeline
//
// Rendering is a depth-first walk over the tree built by internal/block.
// Each block variant maps to one rendering rule; the set of variants is
// closed and dispatched exhaustively, so adding a kind is a compile-time
// visible change. Code blocks go through the underline composer, which:
//
//   - resolves annotations against the source line index (internal/diag),
//   - picks the displayed line set (only referenced lines, gaps shown as
//     an ellipsis row),
//   - computes a single gutter width per group from the largest displayed
//     line number,
//   - stacks one pointer or connector row per annotation beneath each
//     source line, in resolver order, so labels never collide,
//   - brackets the group with open/close border rows.
//
// Marker placement works in display cells (mattn/go-runewidth), so
// pointers stay aligned under wide runes while columns remain counted in
// Unicode scalar values.
//
// # Purity
//
// The renderer performs no IO and reads no clocks or thread identity;
// header timestamps and thread names arrive as plain strings on the
// Header block. Output is deterministic and concurrent renders of one
// frozen log are safe and identical. Styling goes through fatih/color,
// so disabling color yields the exact same lines without escapes.
//
// # Errors
//
// All failures are caller bugs, detected before any line is emitted:
// diag.InvalidSpanError for bad ranges, source.OffsetError and
// source.LineRangeError for bad position queries, and EmptyBlockError
// for code blocks with nothing to show. Nothing is retried and no
// partial output is produced.
package render
