// Package app wires the editor engine, configuration, scripting host, and
// terminal front end into one application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vellumkit/vellum/internal/config"
	"github.com/vellumkit/vellum/internal/engine/editor"
	"github.com/vellumkit/vellum/internal/highlight"
	"github.com/vellumkit/vellum/internal/scripting"
	"github.com/vellumkit/vellum/internal/tui"
)

// ErrNoFileName is returned when saving a document that has no path.
var ErrNoFileName = errors.New("no file name")

// Options are the command-line options.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// Theme overrides the configured theme.
	Theme string

	// Language overrides language detection.
	Language string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// ScriptPath runs a Lua script against the document instead of
	// starting the terminal UI.
	ScriptPath string

	// Files are the documents to open; only the first is opened today.
	Files []string
}

// App owns the application state: configuration, registries, the open
// document, and the config watcher.
type App struct {
	opts   Options
	cfg    config.Config
	logger *Logger

	themes *highlight.ThemeRegistry
	lexers *highlight.Registry
	ed     *editor.Editor

	watcher     *config.Watcher
	configPath  string
	sessionPath string
	logCloser   io.Closer

	mu       sync.Mutex
	pending  bool
	shutdown sync.Once
}

// New loads configuration, builds the registries, opens the document, and
// restores session state.
func New(opts Options) (*App, error) {
	a := &App{opts: opts}

	a.configPath = opts.ConfigPath
	if a.configPath == "" {
		a.configPath = defaultPath("config.toml")
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	a.cfg = cfg

	logger, closer, err := NewLoggerFromConfig(cfg.Logging)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.logCloser = closer

	a.themes = highlight.NewThemeRegistry()
	a.lexers = highlight.NewDefaultRegistry()
	a.loadResources()

	theme := cfg.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}
	if theme != "" && !a.themes.SetCurrent(theme) {
		a.logger.Warn("theme %q is not registered, keeping %q", theme, a.themes.Current().Name)
	}

	if err := a.openDocument(); err != nil {
		return nil, err
	}

	a.sessionPath = cfg.Paths.SessionFile
	if a.sessionPath == "" {
		a.sessionPath = defaultPath("session.json")
	}
	a.restoreSession()

	if w, werr := config.NewWatcher(); werr != nil {
		a.logger.Warn("config watching disabled: %v", werr)
	} else {
		a.watcher = w
		a.watchPath(a.configPath)
		a.watchPath(cfg.Paths.ThemeDir)
		a.watchPath(cfg.Paths.GrammarDir)
	}

	return a, nil
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	return a.logger
}

// Editor returns the open document.
func (a *App) Editor() *editor.Editor {
	return a.ed
}

// loadResources loads user grammar and theme directories from the config.
func (a *App) loadResources() {
	if dir := a.cfg.Paths.GrammarDir; dir != "" {
		n, err := highlight.LoadGrammarDir(dir, a.lexers)
		if err != nil {
			a.logger.Warn("loading grammars from %s: %v", dir, err)
		} else if n > 0 {
			a.logger.Debug("loaded %d grammars from %s", n, dir)
		}
	}
	if dir := a.cfg.Paths.ThemeDir; dir != "" {
		n, err := highlight.LoadThemeDir(dir, a.themes)
		if err != nil {
			a.logger.Warn("loading themes from %s: %v", dir, err)
		} else if n > 0 {
			a.logger.Debug("loaded %d themes from %s", n, dir)
		}
	}
}

// openDocument creates the editor for the first file argument, or an empty
// buffer without one. A path that does not exist yet opens empty.
func (a *App) openDocument() error {
	opts := []editor.Option{
		editor.WithThemeRegistry(a.themes),
		editor.WithLexerRegistry(a.lexers),
		editor.WithScrollMargin(a.cfg.Editor.ScrollMargin),
		editor.WithLineHeight(a.cfg.Editor.LineHeight),
	}

	text := ""
	if len(a.opts.Files) > 0 {
		path := a.opts.Files[0]
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			text = string(data)
		case os.IsNotExist(err):
			a.logger.Info("new file %s", path)
		default:
			return fmt.Errorf("opening %s: %w", path, err)
		}
		opts = append(opts, editor.WithPath(path))
	}

	a.ed = editor.New(text, opts...)

	lang := a.cfg.Language
	if a.opts.Language != "" {
		lang = a.opts.Language
	}
	if lang != "" {
		a.ed.SetLanguage(lang)
	}
	return nil
}

// restoreSession applies the previous session's cursor, scroll, and theme
// when the same file is reopened.
func (a *App) restoreSession() {
	sess, err := config.LoadSession(a.sessionPath)
	if err != nil {
		a.logger.Warn("loading session: %v", err)
		return
	}

	if a.opts.Theme == "" && sess.Theme != "" {
		a.ed.SetTheme(sess.Theme)
	}
	if sess.LastFile != "" && sess.LastFile == a.ed.Path() {
		a.ed.SetCursorPosition(sess.CursorRow, sess.CursorCol)
		a.ed.SetScrollRow(sess.ScrollRow)
	}
}

// Run executes the script when one was given, otherwise starts the terminal
// UI. It blocks until the session ends.
func (a *App) Run() error {
	if a.opts.ScriptPath != "" {
		return a.runScript()
	}
	return a.runUI()
}

// runScript drives the document headlessly. A document with a path is saved
// when the script changed it; without a path the result goes to stdout.
func (a *App) runScript() error {
	host := scripting.NewHost(a.ed)
	defer host.Close()

	if err := host.DoFile(a.opts.ScriptPath); err != nil {
		return err
	}

	if a.ed.Path() == "" {
		_, err := io.WriteString(os.Stdout, a.ed.Text())
		return err
	}
	if a.ed.Dirty() {
		if err := a.saveEditor(a.ed); err != nil {
			return err
		}
		a.ed.MarkSaved()
	}
	return nil
}

func (a *App) runUI() error {
	screen, err := tui.NewScreen()
	if err != nil {
		return err
	}

	ui := tui.New(screen, a.ed, tui.Options{
		TabWidth:     a.cfg.Editor.TabWidth,
		SmoothScroll: a.cfg.Editor.SmoothScroll,
		Save:         a.saveEditor,
		OnInterrupt:  a.applyReloads,
	})

	if a.watcher != nil {
		go a.watchLoop(screen)
	}

	a.logger.Info("editing %s", a.ed.Path())
	return ui.Run()
}

// watchPath adds a path to the watcher if it exists.
func (a *App) watchPath(path string) {
	if path == "" {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		a.logger.Debug("not watching %s: %v", path, err)
	}
}

// watchLoop forwards watcher activity to the UI goroutine as interrupt
// events. The reload itself happens in applyReloads, on the UI goroutine.
func (a *App) watchLoop(screen tcell.Screen) {
	for {
		select {
		case ev, ok := <-a.watcher.Events():
			if !ok {
				return
			}
			if !ev.Op.Has(config.OpWrite) && !ev.Op.Has(config.OpCreate) {
				continue
			}
			a.mu.Lock()
			first := !a.pending
			a.pending = true
			a.mu.Unlock()
			if first {
				_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		case err, ok := <-a.watcher.Errors():
			if !ok {
				return
			}
			a.logger.Warn("watcher: %v", err)
		}
	}
}

// applyReloads re-reads the config file and resource directories after a
// watched change. It runs on the UI goroutine.
func (a *App) applyReloads() {
	a.mu.Lock()
	if !a.pending {
		a.mu.Unlock()
		return
	}
	a.pending = false
	a.mu.Unlock()

	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.logger.Warn("reloading config: %v", err)
	} else {
		a.cfg = cfg
		a.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	}

	a.loadResources()

	// Re-activate the current theme so the editor picks up a reloaded
	// definition with the same name.
	if name := a.ed.ThemeName(); name != "" {
		a.ed.SetTheme(name)
	}
	a.logger.Debug("configuration reloaded")
}

// saveEditor writes the document back to its file.
func (a *App) saveEditor(ed *editor.Editor) error {
	if ed.Path() == "" {
		return ErrNoFileName
	}
	if err := os.WriteFile(ed.Path(), []byte(ed.Text()), 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", ed.Path(), err)
	}
	a.logger.Info("saved %s", ed.Path())
	return nil
}

// Shutdown persists the session and releases resources. Safe to call more
// than once.
func (a *App) Shutdown() {
	a.shutdown.Do(func() {
		st := a.ed.Status()
		err := config.SaveSession(a.sessionPath, config.Session{
			LastFile:  st.Path,
			CursorRow: st.Cursor.Row,
			CursorCol: st.Cursor.Col,
			ScrollRow: st.ScrollRow,
			Theme:     st.Theme,
			EditorID:  st.ID,
		})
		if err != nil {
			a.logger.Warn("saving session: %v", err)
		}

		if a.watcher != nil {
			if err := a.watcher.Close(); err != nil {
				a.logger.Warn("closing watcher: %v", err)
			}
		}
		if a.logCloser != nil {
			_ = a.logCloser.Close()
		}
	})
}

// defaultPath returns a file under the user's vellum config directory,
// creating the directory on first use.
func defaultPath(name string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	dir := filepath.Join(base, "vellum")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, name)
}
