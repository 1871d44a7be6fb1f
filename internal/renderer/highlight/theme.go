package highlight

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/edlite/internal/renderer/core"
)

// ErrThemeInvalid is returned for theme JSON that cannot be used.
var ErrThemeInvalid = errors.New("invalid theme")

// Theme maps token types and UI elements to styles.
type Theme struct {
	Name       string
	Background core.Color
	Foreground core.Color

	// Selection is the background of selected text. When the theme
	// does not define one it is derived by blending foreground into
	// background.
	Selection core.Color

	// LineNumber styles the gutter; StatusBar styles the bottom row.
	LineNumber core.Style
	StatusBar  core.Style

	tokenStyles map[TokenType]core.Style
}

// StyleFor returns the style for a token type, falling back to the
// default foreground.
func (t *Theme) StyleFor(tt TokenType) core.Style {
	if s, ok := t.tokenStyles[tt]; ok {
		return s
	}
	return core.Style{Foreground: t.Foreground, Background: t.Background}
}

// defaultThemeJSON is the built-in dark theme. Token keys match
// TokenType.String; values are "#rrggbb" or objects with fg/bg/bold/italic.
const defaultThemeJSON = `{
  "name": "edlite-dark",
  "background": "#1e1e1e",
  "foreground": "#d4d4d4",
  "lineNumber": {"fg": "#6e7681"},
  "tokens": {
    "comment":     {"fg": "#6a9955", "italic": true},
    "keyword":     {"fg": "#569cd6", "bold": true},
    "string":      {"fg": "#ce9178"},
    "number":      {"fg": "#b5cea8"},
    "operator":    {"fg": "#d4d4d4"},
    "punctuation": {"fg": "#808080"},
    "function":    {"fg": "#dcdcaa"},
    "type":        {"fg": "#4ec9b0"}
  }
}`

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() *Theme {
	t, err := ParseTheme(defaultThemeJSON)
	if err != nil {
		// The embedded JSON is fixed at compile time.
		panic(fmt.Sprintf("built-in theme: %v", err))
	}
	return t
}

// ParseTheme builds a Theme from its JSON form.
func ParseTheme(data string) (*Theme, error) {
	if !gjson.Valid(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrThemeInvalid)
	}
	root := gjson.Parse(data)

	bg, err := parseColor(root.Get("background"))
	if err != nil {
		return nil, err
	}
	fg, err := parseColor(root.Get("foreground"))
	if err != nil {
		return nil, err
	}

	t := &Theme{
		Name:        root.Get("name").String(),
		Background:  bg,
		Foreground:  fg,
		tokenStyles: make(map[TokenType]core.Style),
	}

	if sel := root.Get("selection"); sel.Exists() {
		c, err := parseColor(sel)
		if err != nil {
			return nil, err
		}
		t.Selection = c
	} else {
		t.Selection = bg.Blend(fg, 0.3)
	}

	ln, err := parseStyle(root.Get("lineNumber"), t)
	if err != nil {
		return nil, err
	}
	t.LineNumber = ln

	if sb := root.Get("statusBar"); sb.Exists() {
		s, err := parseStyle(sb, t)
		if err != nil {
			return nil, err
		}
		t.StatusBar = s
	} else {
		t.StatusBar = core.Style{Foreground: t.Foreground, Background: t.Background}.Reverse()
	}

	var tokenErr error
	root.Get("tokens").ForEach(func(key, value gjson.Result) bool {
		tt, ok := tokenTypeFromName(key.String())
		if !ok {
			tokenErr = fmt.Errorf("%w: unknown token type %q", ErrThemeInvalid, key.String())
			return false
		}
		s, err := parseStyle(value, t)
		if err != nil {
			tokenErr = err
			return false
		}
		t.tokenStyles[tt] = s
		return true
	})
	if tokenErr != nil {
		return nil, tokenErr
	}
	return t, nil
}

// parseStyle reads either a bare color string or a style object with
// fg/bg/bold/italic/underline fields.
func parseStyle(v gjson.Result, t *Theme) (core.Style, error) {
	s := core.Style{Foreground: t.Foreground, Background: t.Background}
	if !v.Exists() {
		return s, nil
	}

	if v.Type == gjson.String {
		c, err := parseColor(v)
		if err != nil {
			return core.Style{}, err
		}
		s.Foreground = c
		return s, nil
	}

	if fg := v.Get("fg"); fg.Exists() {
		c, err := parseColor(fg)
		if err != nil {
			return core.Style{}, err
		}
		s.Foreground = c
	}
	if bg := v.Get("bg"); bg.Exists() {
		c, err := parseColor(bg)
		if err != nil {
			return core.Style{}, err
		}
		s.Background = c
	}
	if v.Get("bold").Bool() {
		s = s.Bold()
	}
	if v.Get("italic").Bool() {
		s = s.Italic()
	}
	if v.Get("underline").Bool() {
		s = s.Underline()
	}
	return s, nil
}

func parseColor(v gjson.Result) (core.Color, error) {
	if !v.Exists() {
		return core.ColorDefault, nil
	}
	c, err := core.Hex(v.String())
	if err != nil {
		return core.ColorDefault, fmt.Errorf("%w: %v", ErrThemeInvalid, err)
	}
	return c, nil
}
