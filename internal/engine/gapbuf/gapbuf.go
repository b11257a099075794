// Package gapbuf implements a gap buffer, a rune store with a single
// movable empty region that makes repeated edits at one position cheap.
package gapbuf

import (
	"strings"
)

// minCapacity is the smallest backing array ever allocated.
const minCapacity = 1024

// Buffer is a gap buffer over runes.
//
// The backing array holds the content in two runs separated by the gap:
// data[:gapStart] and data[gapEnd:]. All mutation goes through gap
// relocation, so an edit costs O(distance from the previous edit).
type Buffer struct {
	data     []rune
	gapStart int
	gapEnd   int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{data: make([]rune, minCapacity), gapEnd: minCapacity}
}

// FromText returns a buffer holding text.
func FromText(text string) *Buffer {
	content := []rune(text)
	capacity := max(minCapacity, 2*len(content))
	b := &Buffer{data: make([]rune, capacity)}
	copy(b.data, content)
	b.gapStart = len(content)
	b.gapEnd = capacity
	return b
}

// FromLines returns a buffer holding the given lines joined with newlines.
func FromLines(lines []string) *Buffer {
	return FromText(strings.Join(lines, "\n"))
}

// Len returns the content length in runes.
func (b *Buffer) Len() int {
	return len(b.data) - (b.gapEnd - b.gapStart)
}

// Cap returns the total capacity of the backing array, gap included.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// GapStart returns the current gap position.
func (b *Buffer) GapStart() int {
	return b.gapStart
}

// at returns the rune at logical index i, which must be in [0, Len()).
func (b *Buffer) at(i int) rune {
	if i < b.gapStart {
		return b.data[i]
	}
	return b.data[i+(b.gapEnd-b.gapStart)]
}

// RuneAt returns the rune at logical index i.
func (b *Buffer) RuneAt(i int) (rune, bool) {
	if i < 0 || i >= b.Len() {
		return 0, false
	}
	return b.at(i), true
}

// MoveGapTo relocates the gap so that gapStart equals pos, clamped to
// [0, Len()]. Only the run between the old and new gap edges is copied.
// Content is unchanged.
func (b *Buffer) MoveGapTo(pos int) {
	pos = clamp(pos, 0, b.Len())
	switch {
	case pos < b.gapStart:
		n := b.gapStart - pos
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[pos:b.gapStart])
		b.gapStart = pos
		b.gapEnd -= n
	case pos > b.gapStart:
		n := pos - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
		b.gapStart += n
		b.gapEnd += n
	}
}

// InsertRune inserts a single rune at the given offset.
func (b *Buffer) InsertRune(pos int, ch rune) {
	b.MoveGapTo(pos)
	if b.gapStart == b.gapEnd {
		b.grow()
	}
	b.data[b.gapStart] = ch
	b.gapStart++
}

// Insert inserts text at the given offset.
func (b *Buffer) Insert(pos int, text string) {
	b.MoveGapTo(pos)
	for _, ch := range text {
		if b.gapStart == b.gapEnd {
			b.grow()
		}
		b.data[b.gapStart] = ch
		b.gapStart++
	}
}

// grow doubles the capacity. The before-gap and after-gap runs keep their
// relative positions; the new free space lands inside the gap.
func (b *Buffer) grow() {
	newCap := len(b.data) * 2
	data := make([]rune, newCap)
	copy(data, b.data[:b.gapStart])
	suffix := len(b.data) - b.gapEnd
	copy(data[newCap-suffix:], b.data[b.gapEnd:])
	b.data = data
	b.gapEnd = newCap - suffix
}

// DeleteBackward removes the rune before pos. No-op at pos zero.
func (b *Buffer) DeleteBackward(pos int) {
	if pos <= 0 {
		return
	}
	b.MoveGapTo(pos)
	if b.gapStart > 0 {
		b.gapStart--
	}
}

// DeleteForward removes the rune at pos. No-op at the end of the buffer.
func (b *Buffer) DeleteForward(pos int) {
	b.MoveGapTo(pos)
	if b.gapEnd < len(b.data) {
		b.gapEnd++
	}
}

// DeleteRange removes runes in [start, end). A range with start >= end is a
// no-op; both bounds are clamped to the content.
func (b *Buffer) DeleteRange(start, end int) {
	if start >= end {
		return
	}
	start = clamp(start, 0, b.Len())
	end = clamp(end, 0, b.Len())
	b.MoveGapTo(start)
	b.gapEnd = min(b.gapEnd+(end-start), len(b.data))
}

// String returns the buffer content. Gap cells are never read.
func (b *Buffer) String() string {
	return string(b.data[:b.gapStart]) + string(b.data[b.gapEnd:])
}

// Runes returns a copy of the content as a rune slice.
func (b *Buffer) Runes() []rune {
	out := make([]rune, 0, b.Len())
	out = append(out, b.data[:b.gapStart]...)
	out = append(out, b.data[b.gapEnd:]...)
	return out
}

// Lines returns the content split on newlines. An empty buffer yields
// exactly one empty line.
func (b *Buffer) Lines() []string {
	return strings.Split(b.String(), "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
