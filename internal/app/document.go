package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/edlite/internal/engine/buffer"
	"github.com/dshills/edlite/internal/engine/cursor"
	"github.com/dshills/edlite/internal/engine/eol"
	"github.com/dshills/edlite/internal/engine/history"
	"github.com/dshills/edlite/internal/renderer/highlight"
)

// Load opens path into a new session. A missing file yields an empty,
// unbound document whose name is offered as the default when saving.
// File contents are decoded permissively: invalid UTF-8 sequences are
// replaced, never rejected. The line-ending mode is detected from the
// raw bytes and the highlight language from the file extension.
func Load(path string, log *Logger) (*Session, error) {
	s := NewSession(log)
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.defaultName = path
		s.language = highlight.DetectLanguage(path)
		s.log.Info("new file %s", path)
		return s, nil
	}
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	s.eolMode = eol.Detect(raw)
	s.buf = buffer.FromString(eol.Normalize(raw))
	s.cur = cursor.NewTracker(s.buf)
	s.hist = history.New(0)
	s.path = path
	s.language = highlight.DetectLanguage(path)
	s.log.Info("opened %s (%d lines, %s, %s)",
		path, s.buf.LineCount(), s.eolMode, s.language)
	return s, nil
}

// DefaultSaveName returns the name to prefill in a save prompt: the
// bound path, or the name the document was opened under before it
// existed on disk.
func (s *Session) DefaultSaveName() string {
	if s.path != "" {
		return s.path
	}
	return s.defaultName
}

// Save writes the document to its bound path using the current
// line-ending mode and clears the dirty flag. Returns ErrNoPath for an
// unbound document.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoPath
	}
	return s.SaveAs(s.path)
}

// SaveAs writes the document to path and binds the session to it. The
// write goes to a temporary file in the same directory first and is
// renamed into place so a failed write never truncates the target.
func (s *Session) SaveAs(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrNoPath
	}

	data := eol.Serialize(s.buf.Text(), s.eolMode)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return NewOperationError("save", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return NewOperationError("save", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return NewOperationError("save", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return NewOperationError("save", path, err)
	}

	rebind := s.path != path
	s.path = path
	s.dirty = false
	if rebind {
		if err := s.SetLanguage(highlight.DetectLanguage(path)); err != nil {
			// Detection only yields supported ids; keep the old language.
			s.log.Warn("language detect after save: %v", err)
		}
	}
	s.log.Info("saved %s (%d bytes, %s)", path, len(data), s.eolMode)
	return nil
}

// SaveStatus formats a one-line confirmation for the status area.
func (s *Session) SaveStatus() string {
	return fmt.Sprintf("Wrote %s (%s)", s.path, s.eolMode)
}
