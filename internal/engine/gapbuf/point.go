package gapbuf

import (
	"fmt"
	"unicode/utf8"
)

// Point is a position in the buffer expressed as a 0-indexed row and a
// 0-indexed rune column within that row.
type Point struct {
	Row int
	Col int
}

// String returns the point in row:col form.
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Compare returns -1 if p precedes other in reading order, 1 if it follows,
// and 0 if they are equal.
func (p Point) Compare(other Point) int {
	if p.Row != other.Row {
		if p.Row < other.Row {
			return -1
		}
		return 1
	}
	if p.Col != other.Col {
		if p.Col < other.Col {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether p precedes other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After reports whether p follows other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// OffsetForPoint converts a point to a rune offset. A column past the end of
// its line maps to the end of that line, and a row past the last line maps to
// the end of the buffer.
func (b *Buffer) OffsetForPoint(p Point) int {
	row := max(p.Row, 0)
	col := max(p.Col, 0)
	length := b.Len()
	offset := 0
	curRow := 0
	for offset < length {
		if curRow == row {
			for c := 0; offset < length && c < col && b.at(offset) != '\n'; c++ {
				offset++
			}
			return offset
		}
		if b.at(offset) == '\n' {
			curRow++
		}
		offset++
	}
	return length
}

// PointForOffset converts a rune offset, clamped to [0, Len()], to a point.
func (b *Buffer) PointForOffset(offset int) Point {
	offset = clamp(offset, 0, b.Len())
	var p Point
	for i := 0; i < offset; i++ {
		if b.at(i) == '\n' {
			p.Row++
			p.Col = 0
		} else {
			p.Col++
		}
	}
	return p
}

// LineCount returns the number of lines. A buffer without newlines has one.
func (b *Buffer) LineCount() int {
	count := 1
	for i := 0; i < b.Len(); i++ {
		if b.at(i) == '\n' {
			count++
		}
	}
	return count
}

// Line returns the line at the given index.
func (b *Buffer) Line(row int) (string, bool) {
	if row < 0 {
		return "", false
	}
	lines := b.Lines()
	if row >= len(lines) {
		return "", false
	}
	return lines[row], true
}

// LineLen returns the rune length of the line at the given index, or 0 if
// the index is out of range.
func (b *Buffer) LineLen(row int) int {
	line, ok := b.Line(row)
	if !ok {
		return 0
	}
	return utf8.RuneCountInString(line)
}

// InsertAt inserts text at a row/column position.
func (b *Buffer) InsertAt(row, col int, text string) {
	b.Insert(b.OffsetForPoint(Point{Row: row, Col: col}), text)
}

// DeleteAt removes the rune at a row/column position.
func (b *Buffer) DeleteAt(row, col int) {
	b.DeleteForward(b.OffsetForPoint(Point{Row: row, Col: col}))
}

// BackspaceAt removes the rune before a row/column position.
func (b *Buffer) BackspaceAt(row, col int) {
	b.DeleteBackward(b.OffsetForPoint(Point{Row: row, Col: col}))
}
