package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vellumkit/vellum/internal/engine/editor"
)

// Options configures the terminal UI.
type Options struct {
	// TabWidth is the column span of one tab when rendered.
	TabWidth int

	// SmoothScroll scrolls the wheel one line per tick instead of three.
	SmoothScroll bool

	// Save persists the document on Ctrl-S. Nil disables saving.
	Save func(*editor.Editor) error

	// OnInterrupt runs on the UI goroutine when an interrupt event is
	// posted to the screen. Hosts use it to apply config or theme reloads
	// without touching the editor from another goroutine.
	OnInterrupt func()
}

// UI drives one editor from terminal events. It is the single goroutine
// touching the editor while running.
type UI struct {
	screen tcell.Screen
	ed     *editor.Editor
	render *Renderer
	opts   Options

	quit    bool
	lastErr string
}

// New creates a UI over an initialized-or-not screen. The caller owns screen
// teardown unless Run is used.
func New(screen tcell.Screen, ed *editor.Editor, opts Options) *UI {
	return &UI{
		screen: screen,
		ed:     ed,
		render: NewRenderer(opts.TabWidth),
		opts:   opts,
	}
}

// NewScreen creates the real terminal screen.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	return screen, nil
}

// Run initializes the screen and loops over events until quit. The screen is
// finalized on return, including panics, so the terminal is restored.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer u.screen.Fini()

	u.screen.EnableMouse()
	u.screen.EnablePaste()
	u.syncViewport()

	for !u.quit {
		u.Draw()
		ev := u.screen.PollEvent()
		if ev == nil {
			break
		}
		u.HandleEvent(ev)
	}
	return nil
}

// Quit stops the event loop after the current event.
func (u *UI) Quit() {
	u.quit = true
}

// Draw paints one frame.
func (u *UI) Draw() {
	u.render.Render(u.screen, u.ed)
	u.drawError()
	u.screen.Show()
}

// drawError overlays the last command error on the status line.
func (u *UI) drawError() {
	if u.lastErr == "" {
		return
	}
	width, height := u.screen.Size()
	if height < 1 {
		return
	}
	st := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorDarkRed)
	drawText(u.screen, 0, height-1, width, " "+u.lastErr+" ", st)
}

// HandleEvent dispatches one terminal event.
func (u *UI) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		u.syncViewport()
		u.screen.Sync()
	case *tcell.EventKey:
		u.handleKey(e)
	case *tcell.EventMouse:
		u.handleMouse(e)
	case *tcell.EventInterrupt:
		if u.opts.OnInterrupt != nil {
			u.opts.OnInterrupt()
		}
	}
}

// syncViewport reports the terminal geometry to the editor. One terminal row
// is one line, so line height is 1 and the viewport height is the text rows.
func (u *UI) syncViewport() {
	_, height := u.screen.Size()
	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	u.ed.SetLineHeight(1)
	u.ed.SetViewportHeight(float64(rows))
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	u.lastErr = ""
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyLeft:
		u.ed.MoveLeft(shift)
	case tcell.KeyRight:
		u.ed.MoveRight(shift)
	case tcell.KeyUp:
		u.ed.MoveUp(shift)
	case tcell.KeyDown:
		u.ed.MoveDown(shift)
	case tcell.KeyHome:
		u.ed.MoveToLineStart(shift)
	case tcell.KeyEnd:
		u.ed.MoveToLineEnd(shift)

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.ed.Backspace()
	case tcell.KeyDelete:
		u.ed.Delete()
	case tcell.KeyEnter:
		u.ed.InsertNewline()
	case tcell.KeyTab:
		u.ed.InsertRune('\t')

	case tcell.KeyCtrlA:
		u.ed.SelectAll()
	case tcell.KeyEscape:
		u.ed.ClearSelection()

	case tcell.KeyPgUp:
		u.ed.ScrollBy(-u.pageRows())
	case tcell.KeyPgDn:
		u.ed.ScrollBy(u.pageRows())

	case tcell.KeyCtrlS:
		u.save()
	case tcell.KeyCtrlQ:
		u.quit = true

	case tcell.KeyRune:
		if ev.Rune() != 0 {
			u.ed.InsertRune(ev.Rune())
		}
	}
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	step := 3
	if u.opts.SmoothScroll {
		step = 1
	}

	btn := ev.Buttons()
	switch {
	case btn&tcell.WheelUp != 0:
		u.ed.ScrollBy(-step)
	case btn&tcell.WheelDown != 0:
		u.ed.ScrollBy(step)
	case btn&tcell.Button1 != 0:
		x, y := ev.Position()
		// Cell-naive column mapping: wide runes and tabs land the cursor
		// left of the click. The engine clamps out-of-range columns.
		col := x - gutterWidth(u.ed.LineCount())
		if col < 0 {
			col = 0
		}
		u.ed.SetCursorPosition(u.ed.ScrollRow()+y, col)
	}
}

// pageRows returns the row count of one page scroll.
func (u *UI) pageRows() int {
	_, height := u.screen.Size()
	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (u *UI) save() {
	if u.opts.Save == nil {
		return
	}
	if err := u.opts.Save(u.ed); err != nil {
		u.lastErr = err.Error()
		return
	}
	u.ed.MarkSaved()
}
