package keymap

// Default returns the editing keymap: nano-style file commands plus
// standard navigation and edit keys.
func Default() *Keymap {
	k := New("default")

	// File and session
	k.Add("C-o", "file.save", "Save file")
	k.Add("C-x", "app.quit", "Exit (prompts on unsaved changes)")
	k.Add("M-l", "lang.prompt", "Change syntax language")
	k.Add("M-e", "eol.prompt", "Change line-ending format")

	// Navigation
	k.Add("up", "cursor.up", "Move up")
	k.Add("down", "cursor.down", "Move down")
	k.Add("left", "cursor.left", "Move left")
	k.Add("right", "cursor.right", "Move right")
	k.Add("home", "cursor.lineStart", "Move to line start")
	k.Add("end", "cursor.lineEnd", "Move to line end")
	k.Add("pgup", "cursor.pageUp", "Page up")
	k.Add("pgdn", "cursor.pageDown", "Page down")
	k.Add("C-home", "cursor.docStart", "Move to document start")
	k.Add("C-end", "cursor.docEnd", "Move to document end")

	// Editing
	k.Add("enter", "edit.newline", "Insert line break")
	k.Add("tab", "edit.tab", "Insert tab")
	k.Add("backspace", "edit.deleteBack", "Delete before cursor")
	k.Add("delete", "edit.deleteForward", "Delete at cursor")
	k.Add("C-z", "edit.undo", "Undo")
	k.Add("C-y", "edit.redo", "Redo")

	// Selection and clipboard
	k.Add("C-a", "select.toggleAnchor", "Set or clear selection anchor")
	k.Add("C-c", "clip.copy", "Copy selection")
	k.Add("C-k", "clip.cut", "Cut selection")
	k.Add("C-u", "clip.paste", "Paste clipboard")

	return k
}
