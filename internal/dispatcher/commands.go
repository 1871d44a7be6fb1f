package dispatcher

import "github.com/dshills/edlite/internal/app"

// registerDefaults installs the built-in command set under the action
// names the default keymap binds.
func (d *Dispatcher) registerDefaults() {
	d.Register("file.save", cmdSave)
	d.Register("app.quit", cmdQuit)
	d.Register("lang.prompt", cmdLangPrompt)
	d.Register("eol.prompt", cmdEolPrompt)

	d.Register("cursor.up", func(d *Dispatcher) error { d.session.Cursor().MoveUp(); return nil })
	d.Register("cursor.down", func(d *Dispatcher) error { d.session.Cursor().MoveDown(); return nil })
	d.Register("cursor.left", func(d *Dispatcher) error { d.session.Cursor().MoveLeft(); return nil })
	d.Register("cursor.right", func(d *Dispatcher) error { d.session.Cursor().MoveRight(); return nil })
	d.Register("cursor.lineStart", func(d *Dispatcher) error { d.session.Cursor().MoveLineStart(); return nil })
	d.Register("cursor.lineEnd", func(d *Dispatcher) error { d.session.Cursor().MoveLineEnd(); return nil })
	d.Register("cursor.docStart", func(d *Dispatcher) error { d.session.Cursor().MoveDocStart(); return nil })
	d.Register("cursor.docEnd", func(d *Dispatcher) error { d.session.Cursor().MoveDocEnd(); return nil })
	d.Register("cursor.pageUp", cmdPageUp)
	d.Register("cursor.pageDown", cmdPageDown)

	d.Register("edit.newline", func(d *Dispatcher) error { return d.session.InsertNewline() })
	d.Register("edit.tab", func(d *Dispatcher) error { return d.session.InsertTab() })
	d.Register("edit.deleteBack", func(d *Dispatcher) error { return d.session.DeleteBackward() })
	d.Register("edit.deleteForward", func(d *Dispatcher) error { return d.session.DeleteForward() })
	d.Register("edit.undo", cmdUndo)
	d.Register("edit.redo", cmdRedo)

	d.Register("select.toggleAnchor", cmdToggleAnchor)
	d.Register("clip.copy", func(d *Dispatcher) error { return d.session.Copy(d.clip) })
	d.Register("clip.cut", func(d *Dispatcher) error { return d.session.Cut(d.clip) })
	d.Register("clip.paste", func(d *Dispatcher) error { return d.session.Paste(d.clip) })
}

// cmdSave writes the document, prompting for a name when the session is
// unbound. The line-ending mode chosen for the document is reused on
// every save.
func cmdSave(d *Dispatcher) error {
	if d.session.Path() == "" {
		d.session.BeginPrompt(app.PromptSaveName, d.session.DefaultSaveName())
		return nil
	}
	if err := d.session.Save(); err != nil {
		return err
	}
	d.session.SetMessage(d.session.SaveStatus())
	return nil
}

// cmdQuit exits immediately when the document is clean, otherwise asks
// whether to save first.
func cmdQuit(d *Dispatcher) error {
	if !d.session.Dirty() {
		return app.ErrQuit
	}
	d.session.BeginPrompt(app.PromptQuitConfirm, "")
	return nil
}

func cmdLangPrompt(d *Dispatcher) error {
	d.session.BeginPrompt(app.PromptLangChoice, "")
	return nil
}

func cmdEolPrompt(d *Dispatcher) error {
	d.session.BeginPrompt(app.PromptEolChoice, "")
	return nil
}

func cmdPageUp(d *Dispatcher) error {
	d.session.Cursor().MoveBy(-d.pageSize, 0)
	return nil
}

func cmdPageDown(d *Dispatcher) error {
	d.session.Cursor().MoveBy(d.pageSize, 0)
	return nil
}

func cmdUndo(d *Dispatcher) error {
	if !d.session.Undo() {
		d.session.SetMessage("Nothing to undo")
	}
	return nil
}

func cmdRedo(d *Dispatcher) error {
	if !d.session.Redo() {
		d.session.SetMessage("Nothing to redo")
	}
	return nil
}

// cmdToggleAnchor drops or clears the selection anchor.
func cmdToggleAnchor(d *Dispatcher) error {
	d.session.ToggleAnchor()
	if d.session.Cursor().Anchored() {
		d.session.SetMessage("Mark set")
	} else {
		d.session.SetMessage("Mark cleared")
	}
	return nil
}
