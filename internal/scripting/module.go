package scripting

import (
	lua "github.com/yuin/gopher-lua"
)

// register builds the "ed" module table and sets it as a global.
func (h *Host) register() {
	L := h.L
	mod := L.NewTable()

	fns := map[string]lua.LGFunction{
		// Motion
		"move_left":  h.moveLeft,
		"move_right": h.moveRight,
		"move_up":    h.moveUp,
		"move_down":  h.moveDown,
		"line_start": h.lineStart,
		"line_end":   h.lineEnd,
		"set_cursor": h.setCursor,
		"cursor":     h.cursor,

		// Editing
		"insert":      h.insert,
		"insert_char": h.insertChar,
		"newline":     h.newline,
		"backspace":   h.backspace,
		"delete":      h.del,

		// Selection
		"select_all":      h.selectAll,
		"clear_selection": h.clearSelection,
		"selection":       h.selection,
		"selected_text":   h.selectedText,

		// Viewport
		"set_scroll": h.setScroll,
		"scroll_by":  h.scrollBy,
		"scroll":     h.scroll,

		// Document
		"text":         h.text,
		"line":         h.line,
		"line_count":   h.lineCount,
		"replace":      h.replace,
		"replace_line": h.replaceLine,
		"set_text":     h.setText,
		"set_language": h.setLanguage,
		"language":     h.language,
		"set_theme":    h.setTheme,
		"theme":        h.theme,
		"status":       h.status,
	}
	for name, fn := range fns {
		L.SetField(mod, name, L.NewFunction(fn))
	}

	L.SetGlobal("ed", mod)
}

// optShift reads an optional boolean shift argument, defaulting to false.
func optShift(L *lua.LState, n int) bool {
	if L.GetTop() < n {
		return false
	}
	return L.CheckBool(n)
}

// move_left(shift?) -> nil
func (h *Host) moveLeft(L *lua.LState) int {
	h.ed.MoveLeft(optShift(L, 1))
	return 0
}

// move_right(shift?) -> nil
func (h *Host) moveRight(L *lua.LState) int {
	h.ed.MoveRight(optShift(L, 1))
	return 0
}

// move_up(shift?) -> nil
func (h *Host) moveUp(L *lua.LState) int {
	h.ed.MoveUp(optShift(L, 1))
	return 0
}

// move_down(shift?) -> nil
func (h *Host) moveDown(L *lua.LState) int {
	h.ed.MoveDown(optShift(L, 1))
	return 0
}

// line_start(shift?) -> nil
func (h *Host) lineStart(L *lua.LState) int {
	h.ed.MoveToLineStart(optShift(L, 1))
	return 0
}

// line_end(shift?) -> nil
func (h *Host) lineEnd(L *lua.LState) int {
	h.ed.MoveToLineEnd(optShift(L, 1))
	return 0
}

// set_cursor(row, col) -> nil
// Out-of-range positions clamp to the document.
func (h *Host) setCursor(L *lua.LState) int {
	row := L.CheckInt(1)
	col := L.CheckInt(2)
	h.ed.SetCursorPosition(row, col)
	return 0
}

// cursor() -> row, col
func (h *Host) cursor(L *lua.LState) int {
	cur := h.ed.Cursor()
	L.Push(lua.LNumber(cur.Row))
	L.Push(lua.LNumber(cur.Col))
	return 2
}

// insert(text) -> nil
// Inserts at the cursor, replacing any selection. Text may span lines.
func (h *Host) insert(L *lua.LState) int {
	h.ed.InsertText(L.CheckString(1))
	return 0
}

// insert_char(ch) -> nil
func (h *Host) insertChar(L *lua.LState) int {
	s := L.CheckString(1)
	runes := []rune(s)
	if len(runes) != 1 {
		L.ArgError(1, "expected a single character")
		return 0
	}
	h.ed.InsertRune(runes[0])
	return 0
}

// newline() -> nil
func (h *Host) newline(L *lua.LState) int {
	h.ed.InsertNewline()
	return 0
}

// backspace() -> nil
func (h *Host) backspace(L *lua.LState) int {
	h.ed.Backspace()
	return 0
}

// delete() -> nil
func (h *Host) del(L *lua.LState) int {
	h.ed.Delete()
	return 0
}

// select_all() -> nil
func (h *Host) selectAll(L *lua.LState) int {
	h.ed.SelectAll()
	return 0
}

// clear_selection() -> nil
func (h *Host) clearSelection(L *lua.LState) int {
	h.ed.ClearSelection()
	return 0
}

// selection() -> {start_row, start_col, end_row, end_col} or nil
func (h *Host) selection(L *lua.LState) int {
	sel, ok := h.ed.Selection()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	tbl := L.NewTable()
	L.SetField(tbl, "start_row", lua.LNumber(sel.Start.Row))
	L.SetField(tbl, "start_col", lua.LNumber(sel.Start.Col))
	L.SetField(tbl, "end_row", lua.LNumber(sel.End.Row))
	L.SetField(tbl, "end_col", lua.LNumber(sel.End.Col))
	L.Push(tbl)
	return 1
}

// selected_text() -> string
func (h *Host) selectedText(L *lua.LState) int {
	L.Push(lua.LString(h.ed.SelectedText()))
	return 1
}

// set_scroll(row) -> nil
func (h *Host) setScroll(L *lua.LState) int {
	h.ed.SetScrollRow(L.CheckInt(1))
	return 0
}

// scroll_by(delta) -> nil
func (h *Host) scrollBy(L *lua.LState) int {
	h.ed.ScrollBy(L.CheckInt(1))
	return 0
}

// scroll() -> row
func (h *Host) scroll(L *lua.LState) int {
	L.Push(lua.LNumber(h.ed.ScrollRow()))
	return 1
}

// text() -> string
func (h *Host) text(L *lua.LState) int {
	L.Push(lua.LString(h.ed.Text()))
	return 1
}

// line(row) -> string or nil
func (h *Host) line(L *lua.LState) int {
	text, ok := h.ed.Line(L.CheckInt(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

// line_count() -> n
func (h *Host) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(h.ed.LineCount()))
	return 1
}

// replace({lines}) -> nil
// Replaces the whole document.
func (h *Host) replace(L *lua.LState) int {
	tbl := L.CheckTable(1)
	lines := make([]string, 0, tbl.Len())
	bad := false
	tbl.ForEach(func(_, v lua.LValue) {
		s, ok := v.(lua.LString)
		if !ok {
			bad = true
			return
		}
		lines = append(lines, string(s))
	})
	if bad {
		L.ArgError(1, "expected a table of strings")
		return 0
	}
	h.ed.ReplaceBuffer(lines)
	return 0
}

// replace_line(row, text) -> bool
func (h *Host) replaceLine(L *lua.LState) int {
	row := L.CheckInt(1)
	text := L.CheckString(2)
	L.Push(lua.LBool(h.ed.ReplaceLine(row, text)))
	return 1
}

// set_text(text) -> nil
func (h *Host) setText(L *lua.LState) int {
	h.ed.SetText(L.CheckString(1))
	return 0
}

// set_language(name) -> nil
func (h *Host) setLanguage(L *lua.LState) int {
	h.ed.SetLanguage(L.CheckString(1))
	return 0
}

// language() -> string
func (h *Host) language(L *lua.LState) int {
	L.Push(lua.LString(h.ed.Language()))
	return 1
}

// set_theme(name) -> bool
// False when the theme is not registered; the active theme keeps.
func (h *Host) setTheme(L *lua.LState) int {
	L.Push(lua.LBool(h.ed.SetTheme(L.CheckString(1))))
	return 1
}

// theme() -> string
func (h *Host) theme(L *lua.LState) int {
	L.Push(lua.LString(h.ed.ThemeName()))
	return 1
}

// status() -> table
func (h *Host) status(L *lua.LState) int {
	st := h.ed.Status()
	tbl := L.NewTable()
	L.SetField(tbl, "path", lua.LString(st.Path))
	L.SetField(tbl, "language", lua.LString(st.Language))
	L.SetField(tbl, "theme", lua.LString(st.Theme))
	L.SetField(tbl, "row", lua.LNumber(st.Cursor.Row))
	L.SetField(tbl, "col", lua.LNumber(st.Cursor.Col))
	L.SetField(tbl, "scroll_row", lua.LNumber(st.ScrollRow))
	L.SetField(tbl, "line_count", lua.LNumber(st.LineCount))
	L.SetField(tbl, "char_count", lua.LNumber(st.CharCount))
	L.SetField(tbl, "dirty", lua.LBool(st.Dirty))
	L.Push(tbl)
	return 1
}
