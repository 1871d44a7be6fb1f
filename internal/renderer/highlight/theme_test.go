package highlight

import (
	"errors"
	"testing"

	"github.com/dshills/edlite/internal/renderer/core"
)

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()

	if th.Name != "edlite-dark" {
		t.Errorf("name = %q", th.Name)
	}
	if th.Background.IsDefault() || th.Foreground.IsDefault() {
		t.Error("built-in theme must define background and foreground")
	}

	kw := th.StyleFor(TokenKeyword)
	if !kw.Attrs.Has(core.AttrBold) {
		t.Error("keyword style should be bold")
	}
	cm := th.StyleFor(TokenComment)
	if !cm.Attrs.Has(core.AttrItalic) {
		t.Error("comment style should be italic")
	}
}

func TestStyleForFallback(t *testing.T) {
	th := DefaultTheme()

	s := th.StyleFor(TokenText)
	if s.Foreground != th.Foreground {
		t.Errorf("fallback style foreground = %+v", s.Foreground)
	}
}

func TestParseThemeSelectionDerived(t *testing.T) {
	th, err := ParseTheme(`{"background": "#000000", "foreground": "#ffffff", "tokens": {}}`)
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}
	if th.Selection.IsDefault() {
		t.Error("selection color should be derived when absent")
	}
	if th.Selection == th.Background {
		t.Error("derived selection should differ from background")
	}
}

func TestParseThemeBareColorStyle(t *testing.T) {
	th, err := ParseTheme(`{"background": "#000000", "foreground": "#ffffff", "tokens": {"comment": "#00ff00"}}`)
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}
	if th.StyleFor(TokenComment).Foreground != core.RGB(0, 255, 0) {
		t.Errorf("bare color style: %+v", th.StyleFor(TokenComment))
	}
}

func TestParseThemeErrors(t *testing.T) {
	cases := []string{
		`not json`,
		`{"background": "xyz"}`,
		`{"tokens": {"nosuch": "#ffffff"}}`,
		`{"tokens": {"comment": {"fg": "bad"}}}`,
	}
	for _, data := range cases {
		if _, err := ParseTheme(data); !errors.Is(err, ErrThemeInvalid) {
			t.Errorf("ParseTheme(%q): expected ErrThemeInvalid, got %v", data, err)
		}
	}
}

func TestParseThemeStatusBarDefault(t *testing.T) {
	th, err := ParseTheme(`{"background": "#102030", "foreground": "#ffffff"}`)
	if err != nil {
		t.Fatalf("ParseTheme failed: %v", err)
	}
	if !th.StatusBar.Attrs.Has(core.AttrReverse) {
		t.Error("default status bar style should be reverse video")
	}
}
