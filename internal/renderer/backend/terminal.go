package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/edlite/internal/renderer/core"
)

// Terminal implements Backend on a tcell screen.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal allocates a terminal backend. Init must be called before
// any painting.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// Init puts the terminal into raw mode and takes over the screen.
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

// Fini restores the terminal. Safe to call more than once.
func (t *Terminal) Fini() {
	t.screen.Fini()
}

// PollEvent blocks for the next terminal event.
func (t *Terminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// PostQuit wakes up a blocked PollEvent during shutdown.
func (t *Terminal) PostQuit() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Size implements Backend.
func (t *Terminal) Size() (int, int) { return t.screen.Size() }

// SetCell implements Backend.
func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	if cell.Rune == 0 {
		// Continuation of a wide rune; tcell manages these itself.
		return
	}
	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

// ShowCursor implements Backend.
func (t *Terminal) ShowCursor(x, y int) { t.screen.ShowCursor(x, y) }

// HideCursor implements Backend.
func (t *Terminal) HideCursor() { t.screen.HideCursor() }

// Clear implements Backend.
func (t *Terminal) Clear() { t.screen.Clear() }

// Show implements Backend.
func (t *Terminal) Show() { t.screen.Show() }

// convertStyle translates a core style to tcell.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(s.Foreground.R), int32(s.Foreground.G), int32(s.Foreground.B)))
	}
	if !s.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(s.Background.R), int32(s.Background.G), int32(s.Background.B)))
	}
	if s.Attrs.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attrs.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attrs.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attrs.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}
