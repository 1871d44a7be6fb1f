package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/edlite/internal/input/key"
	"github.com/dshills/edlite/internal/renderer"
	"github.com/dshills/edlite/internal/renderer/backend"
	"github.com/dshills/edlite/internal/renderer/highlight"
)

// Options configures the application at startup.
type Options struct {
	// FilePath is the file to open. Empty opens an unbound buffer.
	FilePath string
	// Language overrides extension-based language detection.
	Language string
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string
	// LogFile receives log output. Empty disables logging, since the
	// terminal is owned by the editor while it runs.
	LogFile string
}

// Dispatcher applies key events to the session. Implemented by the
// dispatcher package; an interface here keeps the dependency pointing
// one way.
type Dispatcher interface {
	Dispatch(ev key.Event) error
	SetPageSize(lines int)
}

// Screen is the terminal surface the application draws to and reads
// events from.
type Screen interface {
	backend.Backend
	Init() error
	Fini()
	PollEvent() tcell.Event
	PostQuit()
}

// Application wires the session, dispatcher, and renderer into the
// terminal event loop.
type Application struct {
	opts    Options
	log     *Logger
	logFile *os.File
	session *Session
	disp    Dispatcher
	screen  Screen
	rend    *renderer.Renderer
	running bool
}

// New loads the document named in opts and prepares the application.
// The terminal backend and dispatcher are attached separately.
func New(opts Options) (*Application, error) {
	log, logFile, err := openLogger(opts)
	if err != nil {
		return nil, err
	}

	session, err := Load(opts.FilePath, log)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	if opts.Language != "" {
		if err := session.SetLanguage(opts.Language); err != nil {
			if logFile != nil {
				logFile.Close()
			}
			return nil, err
		}
	}

	return &Application{
		opts:    opts,
		log:     log,
		logFile: logFile,
		session: session,
	}, nil
}

// openLogger builds the application logger from opts. Without a log
// file all output is discarded.
func openLogger(opts Options) (*Logger, *os.File, error) {
	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(opts.LogLevel)

	if opts.LogFile == "" {
		log := NewLogger(cfg)
		log.Disable()
		return log, nil, nil
	}

	f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, NewOperationError("open log", opts.LogFile, err)
	}
	cfg.Output = f
	return NewLogger(cfg), f, nil
}

// Session returns the editing session.
func (a *Application) Session() *Session { return a.session }

// Logger returns the application logger.
func (a *Application) Logger() *Logger { return a.log }

// SetDispatcher attaches the key event dispatcher.
func (a *Application) SetDispatcher(d Dispatcher) { a.disp = d }

// SetScreen attaches the terminal surface and builds the renderer on it.
func (a *Application) SetScreen(s Screen) {
	a.screen = s
	a.rend = renderer.New(s)
	a.syncHighlighter()
}

// Shutdown releases the terminal and the log file. Safe to call more
// than once.
func (a *Application) Shutdown() {
	if a.screen != nil && a.running {
		a.screen.Fini()
		a.running = false
	}
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// Stop asks a running event loop to exit from another goroutine.
func (a *Application) Stop() {
	if a.screen != nil {
		a.screen.PostQuit()
	}
}

// Run initializes the terminal and processes events until quit. A
// normal quit returns ErrQuit.
func (a *Application) Run() error {
	if a.screen == nil || a.disp == nil {
		return NewOperationError("run", "", fmt.Errorf("screen or dispatcher not attached"))
	}
	if err := a.screen.Init(); err != nil {
		return NewOperationError("init terminal", "", err)
	}
	a.running = true
	defer func() {
		if a.running {
			a.screen.Fini()
			a.running = false
		}
	}()

	a.log.Info("editor started (%s)", a.session.Name())

	for {
		a.render()

		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			kev := key.FromTcell(ev)
			if kev.Key == key.KeyNone {
				continue
			}
			if err := a.disp.Dispatch(kev); err != nil {
				return err
			}
			a.syncHighlighter()
		case *tcell.EventResize:
			// Next render picks up the new size.
		case *tcell.EventInterrupt:
			return ErrQuit
		}
	}
}

// render draws one frame from the current session state.
func (a *Application) render() {
	_, height := a.screen.Size()
	if height > 1 {
		a.disp.SetPageSize(height - 1)
	}
	a.rend.Render(a.buildFrame())
}

// buildFrame assembles the renderer frame: buffer, cursor, selection,
// status bar text, and any active prompt.
func (a *Application) buildFrame() renderer.Frame {
	s := a.session
	f := renderer.Frame{
		Buf:             s.Buffer(),
		Cursor:          s.Cursor().Position(),
		CursorVisualCol: s.Cursor().VisualColumn(),
	}
	if r, ok := s.Cursor().Selection(); ok {
		f.Selection = &r
	}

	if s.Prompt() != PromptNone {
		f.Prompt = promptLabel(s.Prompt())
		f.PromptInput = s.PromptInput()
		return f
	}

	if msg := s.Message(); msg != "" {
		f.StatusLeft = " " + msg
	} else {
		dirty := ""
		if s.Dirty() {
			dirty = "*"
		}
		f.StatusLeft = fmt.Sprintf(" edlite | %s%s | %s | EOL: %s",
			s.Name(), dirty, s.Language(), s.EolMode())
	}
	pos := s.Cursor().Position()
	f.StatusRight = fmt.Sprintf("C-o save  C-x quit  %d:%d ", pos.Line+1, pos.Col+1)
	return f
}

// promptLabel returns the text shown before the prompt input.
func promptLabel(state PromptState) string {
	switch state {
	case PromptSaveName:
		return "Save as: "
	case PromptEolChoice:
		return "Line ending (unix/dos/mac): "
	case PromptLangChoice:
		return "Language: "
	case PromptQuitConfirm:
		return "Save modified buffer? (y = save, n = discard, Esc = cancel)"
	default:
		return ""
	}
}

// syncHighlighter rebuilds the renderer's tokenizer when the session
// language changes, forcing a full re-lex.
func (a *Application) syncHighlighter() {
	if a.rend == nil || a.rend.Language() == a.session.Language() {
		return
	}
	hl, err := highlight.New(a.session.Language())
	if err != nil {
		// Session language ids are validated; fall back to plain.
		a.log.Warn("highlighter %s: %v", a.session.Language(), err)
		hl = highlight.Plain{}
	}
	a.rend.SetHighlighter(hl)
	a.session.Buffer().MarkAllDirty()
}
