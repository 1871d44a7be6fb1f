// Package core defines the cell, color and style primitives shared by
// the renderer packages.
package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Attribute is a bitmask of text display attributes.
type Attribute uint8

const (
	AttrBold Attribute = 1 << iota
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Has reports whether attr is set.
func (a Attribute) Has(attr Attribute) bool { return a&attr != 0 }

// Color is a 24-bit RGB color. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	set     bool
}

// ColorDefault is the terminal's own color.
var ColorDefault = Color{}

// RGB creates a color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// Hex parses a "#rrggbb" string. Invalid input yields the default color
// and an error.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool { return !c.set }

// Blend mixes c toward other in Lab space. amount 0 returns c, 1 returns
// other. Blending with the default color returns c unchanged.
func (c Color) Blend(other Color, amount float64) Color {
	if c.IsDefault() || other.IsDefault() {
		return c
	}
	if amount <= 0 {
		return c
	}
	if amount >= 1 {
		return other
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	m := a.BlendLab(b, amount).Clamped()
	r, g, bb := m.RGB255()
	return RGB(r, g, bb)
}

// Darken moves the color toward black by amount in [0, 1].
func (c Color) Darken(amount float64) Color {
	return c.Blend(RGB(0, 0, 0), amount)
}

// Lighten moves the color toward white by amount in [0, 1].
func (c Color) Lighten(amount float64) Color {
	return c.Blend(RGB(255, 255, 255), amount)
}

// Hex returns the "#rrggbb" form, or "" for the default color.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style pairs foreground and background colors with attributes.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attribute
}

// WithForeground returns a copy with the foreground replaced.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a copy with the background replaced.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a copy with the bold attribute set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Italic returns a copy with the italic attribute set.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline returns a copy with the underline attribute set.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// Reverse returns a copy with the reverse-video attribute set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Cell is one screen cell: a rune and its style. Wide runes occupy the
// following cell as well; the renderer writes a zero-rune continuation
// cell there.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a blank cell in the given style.
func EmptyCell(style Style) Cell {
	return Cell{Rune: ' ', Style: style}
}
