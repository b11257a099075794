package scripting

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/vellumkit/vellum/internal/engine/editor"
)

// ErrHostClosed is returned when running a script on a closed host.
var ErrHostClosed = errors.New("scripting host is closed")

// Host owns a Lua state bound to one editor.
type Host struct {
	L      *lua.LState
	ed     *editor.Editor
	closed bool
}

// NewHost creates a Lua state with the "ed" module registered for the given
// editor.
func NewHost(ed *editor.Editor) *Host {
	h := &Host{
		L:  lua.NewState(),
		ed: ed,
	}
	h.register()
	return h
}

// Editor returns the editor the host drives.
func (h *Host) Editor() *editor.Editor {
	return h.ed
}

// DoString runs a Lua chunk.
func (h *Host) DoString(src string) error {
	if h.closed {
		return ErrHostClosed
	}
	if err := h.L.DoString(src); err != nil {
		return fmt.Errorf("running script: %w", err)
	}
	return nil
}

// DoFile runs a Lua script file.
func (h *Host) DoFile(path string) error {
	if h.closed {
		return ErrHostClosed
	}
	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("running script %s: %w", path, err)
	}
	return nil
}

// Close releases the Lua state. The host cannot run further scripts.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}
