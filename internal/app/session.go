package app

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/edlite/internal/engine/buffer"
	"github.com/dshills/edlite/internal/engine/cursor"
	"github.com/dshills/edlite/internal/engine/eol"
	"github.com/dshills/edlite/internal/engine/history"
	"github.com/dshills/edlite/internal/renderer/highlight"
)

// PromptState identifies which modal prompt, if any, the session is in.
// While a prompt is active, ordinary editing keys are routed to the
// prompt input instead of the buffer.
type PromptState int

const (
	// PromptNone means no prompt is active.
	PromptNone PromptState = iota
	// PromptSaveName asks for a file name to save as.
	PromptSaveName
	// PromptEolChoice asks for a line-ending mode name.
	PromptEolChoice
	// PromptLangChoice asks for a highlight language identifier.
	PromptLangChoice
	// PromptQuitConfirm asks whether to save before quitting.
	PromptQuitConfirm
)

// Session holds the complete editing state for one open document: the
// buffer, cursor, edit history, file binding, and any active prompt.
// A Session is owned by the event loop and is not safe for concurrent
// use.
type Session struct {
	buf  *buffer.Buffer
	cur  *cursor.Tracker
	hist *history.History

	path        string
	defaultName string
	language    string
	eolMode     eol.Mode
	dirty       bool

	prompt        PromptState
	promptInput   string
	message       string
	quitAfterSave bool

	log *Logger
}

// NewSession creates a session with an empty, unbound document.
func NewSession(log *Logger) *Session {
	buf := buffer.New()
	s := &Session{
		buf:      buf,
		cur:      cursor.NewTracker(buf),
		hist:     history.New(0),
		language: highlight.PlainID,
		eolMode:  eol.LF,
		log:      log,
	}
	if s.log == nil {
		s.log = NewLogger(DefaultLoggerConfig())
		s.log.Disable()
	}
	return s
}

// Buffer returns the session's text buffer.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Cursor returns the session's cursor tracker.
func (s *Session) Cursor() *cursor.Tracker { return s.cur }

// Path returns the bound file path, or "" for an unbound document.
func (s *Session) Path() string { return s.path }

// Name returns a display name for the document.
func (s *Session) Name() string {
	if s.path == "" {
		return "[No Name]"
	}
	return s.path
}

// Language returns the active highlight language identifier.
func (s *Session) Language() string { return s.language }

// EolMode returns the line-ending mode used when saving.
func (s *Session) EolMode() eol.Mode { return s.eolMode }

// Dirty reports whether the document has unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// Prompt returns the active prompt state.
func (s *Session) Prompt() PromptState { return s.prompt }

// PromptInput returns the text typed into the active prompt.
func (s *Session) PromptInput() string { return s.promptInput }

// Message returns the transient status message, or "".
func (s *Session) Message() string { return s.message }

// SetMessage sets the transient status message shown in the status bar
// until the next keypress.
func (s *Session) SetMessage(msg string) { s.message = msg }

// ClearMessage clears the transient status message.
func (s *Session) ClearMessage() { s.message = "" }

// BeginPrompt activates a modal prompt with the given initial input.
func (s *Session) BeginPrompt(state PromptState, initial string) {
	s.prompt = state
	s.promptInput = initial
}

// EndPrompt deactivates the prompt and returns its input.
func (s *Session) EndPrompt() string {
	input := s.promptInput
	s.prompt = PromptNone
	s.promptInput = ""
	return input
}

// CancelPrompt deactivates the prompt, discarding its input and any
// pending quit.
func (s *Session) CancelPrompt() {
	s.prompt = PromptNone
	s.promptInput = ""
	s.quitAfterSave = false
}

// PromptAppend appends text to the prompt input.
func (s *Session) PromptAppend(text string) {
	s.promptInput += text
}

// PromptBackspace removes the last rune from the prompt input.
func (s *Session) PromptBackspace() {
	if s.promptInput == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.promptInput)
	s.promptInput = s.promptInput[:len(s.promptInput)-size]
}

// SetQuitAfterSave marks that a successful save should be followed by
// quitting. Used when a quit confirmation detours through a save prompt.
func (s *Session) SetQuitAfterSave(v bool) { s.quitAfterSave = v }

// QuitAfterSave reports whether a pending quit follows the next save.
func (s *Session) QuitAfterSave() bool { return s.quitAfterSave }

// InsertText inserts text at the cursor, replacing the selection if one
// is active. Newlines in text are treated as line breaks.
func (s *Session) InsertText(text string) error {
	if text == "" {
		return nil
	}
	if r, ok := s.cur.Selection(); ok && !r.IsEmpty() {
		if err := s.deleteRange(r, s.cur.Position()); err != nil {
			return err
		}
	}
	s.cur.ClearAnchor()

	pos := s.cur.Position()
	end, err := s.buf.Insert(pos, text)
	if err != nil {
		return err
	}
	s.hist.Record(history.NewInsert(pos, text, pos, end))
	s.cur.ApplyInsert(pos, end)
	s.dirty = true
	return nil
}

// InsertNewline inserts a line break at the cursor.
func (s *Session) InsertNewline() error { return s.InsertText("\n") }

// InsertTab inserts a tab character at the cursor.
func (s *Session) InsertTab() error { return s.InsertText("\t") }

// DeleteBackward removes the selection if active, otherwise the
// grapheme cluster before the cursor. At the start of a line it joins
// the line with the previous one. A no-op at the start of the document.
func (s *Session) DeleteBackward() error {
	if r, ok := s.cur.Selection(); ok && !r.IsEmpty() {
		err := s.deleteRange(r, s.cur.Position())
		s.cur.ClearAnchor()
		return err
	}
	pos := s.cur.Position()
	if pos.Line == 0 && pos.Col == 0 {
		return nil
	}
	s.cur.MoveLeft()
	prev := s.cur.Position()
	return s.deleteRange(buffer.NewRange(prev, pos), pos)
}

// DeleteForward removes the selection if active, otherwise the grapheme
// cluster after the cursor. At the end of a line it joins the next line.
// A no-op at the end of the document.
func (s *Session) DeleteForward() error {
	if r, ok := s.cur.Selection(); ok && !r.IsEmpty() {
		err := s.deleteRange(r, s.cur.Position())
		s.cur.ClearAnchor()
		return err
	}
	pos := s.cur.Position()
	if pos == s.buf.End() {
		return nil
	}
	s.cur.MoveRight()
	next := s.cur.Position()
	return s.deleteRange(buffer.NewRange(pos, next), pos)
}

// deleteRange removes r from the buffer, records it with the given
// cursor restore point, and remaps the cursor.
func (s *Session) deleteRange(r buffer.Range, before buffer.Point) error {
	removed, err := s.buf.Delete(r)
	if err != nil {
		return err
	}
	s.hist.Record(history.NewDelete(r, removed, before, r.Start))
	s.cur.ApplyDelete(r)
	s.dirty = true
	return nil
}

// Undo reverts the most recent edit and restores the cursor recorded
// before it. Returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	pos, ok := s.hist.Undo(s.buf)
	if !ok {
		return false
	}
	s.cur.ClearAnchor()
	s.cur.SetPosition(pos)
	s.dirty = true
	return true
}

// Redo re-applies the most recently undone edit. Returns false when
// there is nothing to redo.
func (s *Session) Redo() bool {
	pos, ok := s.hist.Redo(s.buf)
	if !ok {
		return false
	}
	s.cur.ClearAnchor()
	s.cur.SetPosition(pos)
	s.dirty = true
	return true
}

// ToggleAnchor sets the selection anchor at the cursor, or clears an
// existing selection.
func (s *Session) ToggleAnchor() {
	if s.cur.Anchored() {
		s.cur.ClearAnchor()
		return
	}
	s.cur.SetAnchor()
}

// SelectedText returns the text covered by the active selection.
func (s *Session) SelectedText() (string, bool) {
	r, ok := s.cur.Selection()
	if !ok || r.IsEmpty() {
		return "", false
	}
	text, err := s.buf.Read(r)
	if err != nil {
		return "", false
	}
	return text, true
}

// Copy writes the selected text to clip. Without a selection it copies
// the current line including its line break.
func (s *Session) Copy(clip Clipboard) error {
	text, ok := s.SelectedText()
	if !ok {
		text = s.currentLineText()
	}
	s.cur.ClearAnchor()
	return clip.WriteText(text)
}

// Cut writes the selected text to clip and removes it from the buffer.
// Without a selection it cuts the current line including its line break.
func (s *Session) Cut(clip Clipboard) error {
	r, ok := s.cur.Selection()
	if !ok || r.IsEmpty() {
		r = s.currentLineRange()
	}
	text, err := s.buf.Read(r)
	if err != nil {
		return err
	}
	if err := clip.WriteText(text); err != nil {
		return err
	}
	err = s.deleteRange(r, s.cur.Position())
	s.cur.ClearAnchor()
	return err
}

// Paste inserts the clipboard text at the cursor.
func (s *Session) Paste(clip Clipboard) error {
	text, err := clip.ReadText()
	if err != nil {
		return err
	}
	return s.InsertText(eol.Normalize([]byte(text)))
}

// currentLineRange returns the cursor's line including its trailing
// break, or the bare line text when it is the last line.
func (s *Session) currentLineRange() buffer.Range {
	line := s.cur.Position().Line
	start := buffer.Point{Line: line, Col: 0}
	if line+1 < s.buf.LineCount() {
		return buffer.Range{Start: start, End: buffer.Point{Line: line + 1, Col: 0}}
	}
	return buffer.Range{Start: start, End: buffer.Point{Line: line, Col: s.buf.LineLen(line)}}
}

func (s *Session) currentLineText() string {
	text, err := s.buf.Read(s.currentLineRange())
	if err != nil {
		return ""
	}
	return text
}

// SetLanguage switches the highlight language. The identifier must be
// one of the supported language ids; on an unknown id the active
// language is left unchanged.
func (s *Session) SetLanguage(id string) error {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		id = highlight.PlainID
	}
	if !highlight.IsSupported(id) {
		return NewOperationError("set language", id, highlight.ErrUnknownLanguage)
	}
	s.language = id
	s.log.Debug("language set to %s", id)
	return nil
}

// SetEolMode switches the line-ending mode used for subsequent saves.
// On an unrecognized name the active mode is left unchanged.
func (s *Session) SetEolMode(name string) error {
	mode, err := eol.Parse(name)
	if err != nil {
		return NewOperationError("set eol", name, err)
	}
	s.eolMode = mode
	s.log.Debug("eol mode set to %s", mode)
	return nil
}
