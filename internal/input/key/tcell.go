package key

import "github.com/gdamore/tcell/v2"

// FromTcell decodes a tcell key event into the editor's model.
func FromTcell(ev *tcell.EventKey) Event {
	var mod Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= ModShift
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Mod: mod &^ ModCtrl}
	case tcell.KeyTab:
		return Event{Key: KeyTab, Mod: mod &^ ModCtrl}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Mod: mod &^ ModCtrl}
	case tcell.KeyDelete:
		return Event{Key: KeyDelete, Mod: mod}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape, Mod: mod}
	case tcell.KeyUp:
		return Event{Key: KeyUp, Mod: mod}
	case tcell.KeyDown:
		return Event{Key: KeyDown, Mod: mod}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return Event{Key: KeyRight, Mod: mod}
	case tcell.KeyHome:
		return Event{Key: KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return Event{Key: KeyEnd, Mod: mod}
	case tcell.KeyPgUp:
		return Event{Key: KeyPageUp, Mod: mod}
	case tcell.KeyPgDn:
		return Event{Key: KeyPageDown, Mod: mod}
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	}

	// Ctrl+letter arrives as a dedicated control code.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Event{
			Key:  KeyRune,
			Rune: rune('a' + k - tcell.KeyCtrlA),
			Mod:  mod | ModCtrl,
		}
	}

	return Event{Key: KeyNone, Mod: mod}
}
