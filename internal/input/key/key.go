// Package key defines the editor's key event model and its translation
// from tcell terminal events. Events are matched against bindings by
// their chord name, e.g. "C-o", "M-l", "up", "x".
package key

import "strings"

// Key identifies a non-character key. Character keys use KeyRune with
// the Rune field set.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// String returns the chord name of the key.
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyEscape:
		return "escape"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdn"
	default:
		return "none"
	}
}

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Event is one decoded keystroke.
type Event struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// IsRune reports whether the event is a printable character with no
// ctrl/alt modifier, i.e. plain text input.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Mod&(ModCtrl|ModAlt) == 0
}

// Chord returns the binding name of the event: "C-" and "M-" prefixes
// for ctrl and alt, then the key name or the lowercased rune.
func (e Event) Chord() string {
	var sb strings.Builder
	if e.Mod&ModCtrl != 0 {
		sb.WriteString("C-")
	}
	if e.Mod&ModAlt != 0 {
		sb.WriteString("M-")
	}
	if e.Key == KeyRune {
		sb.WriteString(strings.ToLower(string(e.Rune)))
	} else {
		sb.WriteString(e.Key.String())
	}
	return sb.String()
}
