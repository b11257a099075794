package config

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Session records where the last editing session left off.
type Session struct {
	LastFile  string
	CursorRow int
	CursorCol int
	ScrollRow int
	Theme     string
	EditorID  string
	UpdatedAt time.Time
}

// LoadSession reads session state. A missing file yields a zero session
// without error.
func LoadSession(path string) (Session, error) {
	var s Session

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading session file %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return s, fmt.Errorf("session file %s: invalid JSON", path)
	}

	r := gjson.ParseBytes(data)
	s.LastFile = r.Get("lastFile").String()
	s.CursorRow = int(r.Get("cursor.row").Int())
	s.CursorCol = int(r.Get("cursor.col").Int())
	s.ScrollRow = int(r.Get("scrollRow").Int())
	s.Theme = r.Get("theme").String()
	s.EditorID = r.Get("editorId").String()
	if ts := r.Get("updatedAt").String(); ts != "" {
		if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
			s.UpdatedAt = parsed
		}
	}
	return s, nil
}

// SaveSession updates the session file in place. Fields written by other
// tools are preserved.
func SaveSession(path string, s Session) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading session file %s: %w", path, err)
		}
		data = []byte("{}")
	}

	at := s.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}

	sets := []struct {
		key   string
		value any
	}{
		{"lastFile", s.LastFile},
		{"cursor.row", s.CursorRow},
		{"cursor.col", s.CursorCol},
		{"scrollRow", s.ScrollRow},
		{"theme", s.Theme},
		{"editorId", s.EditorID},
		{"updatedAt", at.Format(time.RFC3339)},
	}
	for _, set := range sets {
		data, err = sjson.SetBytes(data, set.key, set.value)
		if err != nil {
			return fmt.Errorf("updating session field %s: %w", set.key, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}
