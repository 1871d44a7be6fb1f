// Package keymap maps key chords to editor action names. The dispatcher
// resolves action names to handlers, so the whole command surface is a
// finite table rather than branching on keys.
package keymap

import "sort"

// Binding is one chord-to-action mapping.
type Binding struct {
	Chord       string
	Action      string
	Description string
}

// Keymap is a lookup table of bindings.
type Keymap struct {
	name     string
	bindings map[string]Binding
}

// New creates an empty keymap.
func New(name string) *Keymap {
	return &Keymap{name: name, bindings: make(map[string]Binding)}
}

// Name returns the keymap identifier.
func (k *Keymap) Name() string { return k.name }

// Add registers a binding, replacing any existing one for the chord.
func (k *Keymap) Add(chord, action, description string) *Keymap {
	k.bindings[chord] = Binding{Chord: chord, Action: action, Description: description}
	return k
}

// Lookup resolves a chord to its action name.
func (k *Keymap) Lookup(chord string) (string, bool) {
	b, ok := k.bindings[chord]
	return b.Action, ok
}

// Bindings returns all bindings sorted by chord, for help display.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Chord < out[j].Chord })
	return out
}
