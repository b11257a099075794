// Package tui is the terminal front end. It owns the tcell screen, paints
// the gutter, buffer text, selection, and status line from the engine's
// styled runs, and translates key and mouse events into editor commands.
//
// One terminal row renders one buffer line, so the editor's viewport runs
// with a line height of one and a viewport height equal to the text rows.
package tui
