// Package dispatcher routes key events to editor commands. Events are
// resolved through the active keymap while the session is idle, and
// through the modal prompt handlers while a prompt is active.
package dispatcher

import (
	"errors"
	"fmt"

	"github.com/dshills/edlite/internal/app"
	"github.com/dshills/edlite/internal/input/key"
	"github.com/dshills/edlite/internal/input/keymap"
)

// ErrUnknownAction indicates a keymap binding names an action with no
// registered command.
var ErrUnknownAction = errors.New("unknown action")

// Command is an editor operation invoked by name.
type Command func(d *Dispatcher) error

// Dispatcher owns the command registry and applies key events to the
// session. It is driven by the event loop one event at a time.
type Dispatcher struct {
	session  *app.Session
	keymap   *keymap.Keymap
	clip     app.Clipboard
	log      *app.Logger
	commands map[string]Command
	pageSize int
}

// Config bundles the collaborators a dispatcher needs.
type Config struct {
	Session   *app.Session
	Keymap    *keymap.Keymap
	Clipboard app.Clipboard
	Logger    *app.Logger
}

// New creates a dispatcher with the default command set registered.
func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		session:  cfg.Session,
		keymap:   cfg.Keymap,
		clip:     cfg.Clipboard,
		log:      cfg.Logger,
		commands: make(map[string]Command),
		pageSize: 24,
	}
	if d.keymap == nil {
		d.keymap = keymap.Default()
	}
	if d.clip == nil {
		d.clip = app.NewMemoryClipboard()
	}
	if d.log == nil {
		d.log = app.NewLogger(app.DefaultLoggerConfig())
		d.log.Disable()
	}
	d.registerDefaults()
	return d
}

// Register binds a command to an action name, replacing any existing
// binding.
func (d *Dispatcher) Register(action string, cmd Command) {
	d.commands[action] = cmd
}

// SetPageSize sets the line count used by page up and page down. The
// event loop updates it when the viewport height changes.
func (d *Dispatcher) SetPageSize(lines int) {
	if lines < 1 {
		lines = 1
	}
	d.pageSize = lines
}

// Dispatch applies one key event. It returns app.ErrQuit when the
// session should end; all recoverable failures are reported through the
// session's status message instead.
func (d *Dispatcher) Dispatch(ev key.Event) error {
	d.session.ClearMessage()

	var err error
	if d.session.Prompt() != app.PromptNone {
		err = d.dispatchPrompt(ev)
	} else {
		err = d.dispatchIdle(ev)
	}

	if err == nil || errors.Is(err, app.ErrQuit) {
		return err
	}
	d.log.Error("dispatch %s: %v", ev.Chord(), err)
	d.session.SetMessage(err.Error())
	return nil
}

// dispatchIdle resolves an event through the keymap, falling back to
// rune self-insertion.
func (d *Dispatcher) dispatchIdle(ev key.Event) error {
	if action, ok := d.keymap.Lookup(ev.Chord()); ok {
		cmd, ok := d.commands[action]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAction, action)
		}
		return cmd(d)
	}
	if ev.IsRune() {
		return d.session.InsertText(string(ev.Rune))
	}
	return nil
}

// dispatchPrompt routes an event to the active modal prompt. Runes feed
// the prompt input, Enter confirms, Escape cancels.
func (d *Dispatcher) dispatchPrompt(ev key.Event) error {
	if d.session.Prompt() == app.PromptQuitConfirm {
		return d.dispatchQuitConfirm(ev)
	}

	switch {
	case ev.Key == key.KeyEscape:
		d.session.CancelPrompt()
		d.session.SetMessage("Cancelled")
		return nil
	case ev.Key == key.KeyBackspace:
		d.session.PromptBackspace()
		return nil
	case ev.Key == key.KeyEnter:
		return d.confirmPrompt()
	case ev.IsRune():
		d.session.PromptAppend(string(ev.Rune))
		return nil
	}
	return nil
}

// confirmPrompt applies the prompt input for the active prompt state.
func (d *Dispatcher) confirmPrompt() error {
	state := d.session.Prompt()
	input := d.session.EndPrompt()

	switch state {
	case app.PromptSaveName:
		if err := d.session.SaveAs(input); err != nil {
			d.session.SetQuitAfterSave(false)
			return err
		}
		if d.session.QuitAfterSave() {
			return app.ErrQuit
		}
		d.session.SetMessage(d.session.SaveStatus())
		return nil

	case app.PromptEolChoice:
		if err := d.session.SetEolMode(input); err != nil {
			d.session.SetMessage(fmt.Sprintf("Unsupported EOL %q (keeping %s)",
				input, d.session.EolMode()))
			return nil
		}
		d.session.SetMessage(fmt.Sprintf("EOL: %s", d.session.EolMode()))
		return nil

	case app.PromptLangChoice:
		if err := d.session.SetLanguage(input); err != nil {
			d.session.SetMessage(fmt.Sprintf("Unknown language %q (keeping %s)",
				input, d.session.Language()))
			return nil
		}
		d.session.SetMessage(fmt.Sprintf("Language: %s", d.session.Language()))
		return nil
	}
	return nil
}

// dispatchQuitConfirm handles the save-before-quit question. Only y, n,
// and Escape are meaningful; everything else is ignored.
func (d *Dispatcher) dispatchQuitConfirm(ev key.Event) error {
	switch {
	case ev.Key == key.KeyEscape:
		d.session.CancelPrompt()
		d.session.SetMessage("Cancelled")
		return nil

	case ev.IsRune() && (ev.Rune == 'y' || ev.Rune == 'Y'):
		d.session.EndPrompt()
		if d.session.Path() == "" {
			d.session.SetQuitAfterSave(true)
			d.session.BeginPrompt(app.PromptSaveName, d.session.DefaultSaveName())
			return nil
		}
		if err := d.session.Save(); err != nil {
			return err
		}
		return app.ErrQuit

	case ev.IsRune() && (ev.Rune == 'n' || ev.Rune == 'N'):
		d.session.EndPrompt()
		return app.ErrQuit
	}
	return nil
}
