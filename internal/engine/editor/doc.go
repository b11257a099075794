// Package editor ties one open document together: a gap buffer for text, a
// cursor with an optional selection, a row-based viewport, and the document's
// highlight provider.
//
// The editor handles:
//
//   - Cursor motion with line wrapping at line ends and a goal column that
//     survives passes through short lines
//   - An anchor/cursor selection model where shift-extended motion grows the
//     selection and plain motion drops it
//   - Edits (insert, newline, backspace, delete) that replace an active
//     selection and keep highlight caches invalidated from the edited row
//   - Scrolling with a context margin around the cursor, warming highlight
//     state through the bottom of the visible range
//
// Selection Model:
//
// A selection is the span between a fixed anchor and the moving cursor.
// The pair is exposed ordered by (row, col); direction is preserved
// internally so extending in either direction behaves naturally. An anchor
// equal to the cursor counts as no selection.
//
// Basic usage:
//
//	ed := editor.New("func main() {}\n", editor.WithPath("main.go"))
//	ed.SetCursorPosition(0, 4)
//	ed.MoveRight(true)            // extend selection over "m"
//	ed.InsertRune('x')            // replaces the selection
//	runs := ed.RunsForLine(0)     // styled runs for rendering
//
// Editors are not safe for concurrent use; each instance belongs to one
// goroutine, conventionally the host event loop.
package editor
