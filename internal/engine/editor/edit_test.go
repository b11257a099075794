package editor

import "testing"

func TestInsertRune(t *testing.T) {
	e := New("")
	e.InsertRune('h')
	e.InsertRune('i')

	if got := e.Text(); got != "hi" {
		t.Errorf("expected text %q, got %q", "hi", got)
	}
	wantCursor(t, e, 0, 2)
	if !e.Dirty() {
		t.Error("expected editor to be dirty after insert")
	}
}

func TestInsertRuneMidLine(t *testing.T) {
	e := New("abc")
	e.SetCursorPosition(0, 1)
	e.InsertRune('X')

	if got := e.Text(); got != "aXbc" {
		t.Errorf("expected text %q, got %q", "aXbc", got)
	}
	wantCursor(t, e, 0, 2)
}

func TestInsertRuneReplacesSelection(t *testing.T) {
	e := New("Hello World")
	e.SetCursorPosition(0, 0)
	for i := 0; i < 5; i++ {
		e.MoveRight(true)
	}

	e.InsertRune('G')
	if got := e.Text(); got != "G World" {
		t.Errorf("expected text %q, got %q", "G World", got)
	}
	wantCursor(t, e, 0, 1)
	if e.HasSelection() {
		t.Error("expected selection to be consumed by the insert")
	}
}

func TestInsertNewline(t *testing.T) {
	e := New("hello")
	e.SetCursorPosition(0, 2)
	e.InsertNewline()

	if got := e.Text(); got != "he\nllo" {
		t.Errorf("expected text %q, got %q", "he\nllo", got)
	}
	wantCursor(t, e, 1, 0)
	if got := e.LineCount(); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}

func TestInsertNewlineAtLineEnd(t *testing.T) {
	e := New("ab")
	e.SetCursorPosition(0, 2)
	e.InsertNewline()

	wantCursor(t, e, 1, 0)
	if line, _ := e.Line(1); line != "" {
		t.Errorf("expected empty second line, got %q", line)
	}
}

func TestInsertNewlineReplacesSelection(t *testing.T) {
	e := New("abcdef")
	e.SetCursorPosition(0, 2)
	e.MoveRight(true)
	e.MoveRight(true)

	e.InsertNewline()
	if got := e.Text(); got != "ab\nef" {
		t.Errorf("expected text %q, got %q", "ab\nef", got)
	}
	wantCursor(t, e, 1, 0)
}

func TestInsertText(t *testing.T) {
	e := New("ab")
	e.SetCursorPosition(0, 1)
	e.InsertText("XY")

	if got := e.Text(); got != "aXYb" {
		t.Errorf("expected text %q, got %q", "aXYb", got)
	}
	wantCursor(t, e, 0, 3)
}

func TestInsertTextMultiLine(t *testing.T) {
	e := New("ab")
	e.SetCursorPosition(0, 1)
	e.InsertText("1\n2")

	if got := e.Text(); got != "a1\n2b" {
		t.Errorf("expected text %q, got %q", "a1\n2b", got)
	}
	wantCursor(t, e, 1, 1)
	if got := e.LineCount(); got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}

func TestInsertTextEmpty(t *testing.T) {
	e := New("ab")
	e.InsertText("")

	if got := e.Text(); got != "ab" {
		t.Errorf("expected text unchanged, got %q", got)
	}
	if e.Dirty() {
		t.Error("expected empty insert to leave the editor clean")
	}
}

func TestBackspaceMidLine(t *testing.T) {
	e := New("hello")
	e.SetCursorPosition(0, 3)
	e.Backspace()

	if got := e.Text(); got != "helo" {
		t.Errorf("expected text %q, got %q", "helo", got)
	}
	wantCursor(t, e, 0, 2)
}

func TestBackspaceAtDocumentStart(t *testing.T) {
	e := New("abc")
	e.Backspace()

	if got := e.Text(); got != "abc" {
		t.Errorf("expected text unchanged, got %q", got)
	}
	wantCursor(t, e, 0, 0)
	if e.Dirty() {
		t.Error("expected no-op backspace to leave the editor clean")
	}
}

func TestBackspaceMergesLines(t *testing.T) {
	e := NewFromLines([]string{"First", "Second"})
	e.SetCursorPosition(1, 0)
	e.Backspace()

	if got := e.Text(); got != "FirstSecond" {
		t.Errorf("expected text %q, got %q", "FirstSecond", got)
	}
	wantCursor(t, e, 0, 5)
	if got := e.LineCount(); got != 1 {
		t.Errorf("expected 1 line, got %d", got)
	}
}

func TestBackspaceDeletesSelection(t *testing.T) {
	e := New("abcdef")
	e.SetCursorPosition(0, 1)
	for i := 0; i < 3; i++ {
		e.MoveRight(true)
	}

	e.Backspace()
	if got := e.Text(); got != "aef" {
		t.Errorf("expected text %q, got %q", "aef", got)
	}
	wantCursor(t, e, 0, 1)
}

func TestDeleteMidLine(t *testing.T) {
	e := New("hello")
	e.SetCursorPosition(0, 1)
	e.Delete()

	if got := e.Text(); got != "hllo" {
		t.Errorf("expected text %q, got %q", "hllo", got)
	}
	wantCursor(t, e, 0, 1)
}

func TestDeleteAtLineEndMergesNextLine(t *testing.T) {
	e := NewFromLines([]string{"ab", "cd"})
	e.SetCursorPosition(0, 2)
	e.Delete()

	if got := e.Text(); got != "abcd" {
		t.Errorf("expected text %q, got %q", "abcd", got)
	}
	wantCursor(t, e, 0, 2)
}

func TestDeleteAtDocumentEnd(t *testing.T) {
	e := NewFromLines([]string{"ab", "cd"})
	e.SetCursorPosition(1, 2)
	e.Delete()

	if got := e.Text(); got != "ab\ncd" {
		t.Errorf("expected text unchanged, got %q", got)
	}
	if e.Dirty() {
		t.Error("expected no-op delete to leave the editor clean")
	}
}

func TestDeleteWithSelection(t *testing.T) {
	e := New("abcd")
	e.SetCursorPosition(0, 0)
	e.MoveRight(true)
	e.MoveRight(true)

	e.Delete()
	if got := e.Text(); got != "cd" {
		t.Errorf("expected text %q, got %q", "cd", got)
	}
	wantCursor(t, e, 0, 0)
}

func TestDeleteSelectionWithoutSelection(t *testing.T) {
	e := New("abc")
	if e.DeleteSelection() {
		t.Error("expected DeleteSelection to report false without a selection")
	}
	if got := e.Text(); got != "abc" {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestDeleteSelectionMultiLine(t *testing.T) {
	e := NewFromLines([]string{"one", "two", "three"})
	e.SetCursorPosition(0, 1)
	e.MoveDown(true)
	e.MoveDown(true)

	if !e.DeleteSelection() {
		t.Fatal("expected DeleteSelection to report true")
	}
	if got := e.Text(); got != "ohree" {
		t.Errorf("expected text %q, got %q", "ohree", got)
	}
	wantCursor(t, e, 0, 1)
}

func TestDeleteSelectionDraggedUpward(t *testing.T) {
	e := NewFromLines([]string{"one", "two", "three"})
	e.SetCursorPosition(2, 1)
	e.MoveUp(true)
	e.MoveUp(true)

	if !e.DeleteSelection() {
		t.Fatal("expected DeleteSelection to report true")
	}
	if got := e.Text(); got != "ohree" {
		t.Errorf("expected text %q, got %q", "ohree", got)
	}
	wantCursor(t, e, 0, 1)
}

func TestReplaceLine(t *testing.T) {
	e := NewFromLines([]string{"alpha", "beta", "gamma"})
	if !e.ReplaceLine(1, "BETA") {
		t.Fatal("expected ReplaceLine to report true")
	}

	if got := e.Text(); got != "alpha\nBETA\ngamma" {
		t.Errorf("expected text %q, got %q", "alpha\nBETA\ngamma", got)
	}
}

func TestReplaceLineClampsCursor(t *testing.T) {
	e := NewFromLines([]string{"alpha", "beta"})
	e.SetCursorPosition(1, 4)

	e.ReplaceLine(1, "x")
	wantCursor(t, e, 1, 1)
}

func TestReplaceLineOutOfRange(t *testing.T) {
	e := New("abc")
	if e.ReplaceLine(5, "x") {
		t.Error("expected ReplaceLine to report false for a missing row")
	}
}

func TestMarkSaved(t *testing.T) {
	e := NewFromLines([]string{"abc"})
	if e.Dirty() {
		t.Fatal("expected a fresh editor to be clean")
	}

	e.InsertRune('x')
	if !e.Dirty() {
		t.Fatal("expected editor to be dirty after an edit")
	}

	e.MarkSaved()
	if e.Dirty() {
		t.Error("expected MarkSaved to clear the dirty flag")
	}
}
