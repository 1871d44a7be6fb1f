// Package renderer turns the document, cursor and viewport into cells
// on a backend. Only lines whose dirty flag is set (or whose text no
// longer matches the token cache) are retokenized on a frame.
package renderer

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/edlite/internal/engine/buffer"
	"github.com/dshills/edlite/internal/renderer/backend"
	"github.com/dshills/edlite/internal/renderer/core"
	"github.com/dshills/edlite/internal/renderer/highlight"
	"github.com/dshills/edlite/internal/renderer/viewport"
)

// TabWidth is the tab stop used when painting. It matches the cursor
// package's visual column arithmetic.
const TabWidth = 4

// Frame is everything one render pass needs from the session.
type Frame struct {
	Buf             *buffer.Buffer
	Cursor          buffer.Point
	CursorVisualCol int
	Selection       *buffer.Range

	// StatusLeft and StatusRight fill the bottom row. When Prompt is
	// non-empty it replaces the status row and owns the cursor.
	StatusLeft  string
	StatusRight string
	Prompt      string
	PromptInput string
}

// cachedTokens pairs tokens with the text they were computed from, so
// lines that shifted position without changing are not re-lexed.
type cachedTokens struct {
	text   string
	tokens []highlight.Token
}

// Renderer paints frames onto a backend.
type Renderer struct {
	backend backend.Backend
	view    *viewport.Viewport
	theme   *highlight.Theme
	hl      highlight.Highlighter
	tokens  map[int]cachedTokens
}

// New creates a renderer with the plain highlighter and default theme.
func New(b backend.Backend) *Renderer {
	w, h := b.Size()
	return &Renderer{
		backend: b,
		view:    viewport.New(w, h),
		theme:   highlight.DefaultTheme(),
		hl:      highlight.Plain{},
		tokens:  make(map[int]cachedTokens),
	}
}

// SetHighlighter switches the active language highlighter and drops the
// token cache.
func (r *Renderer) SetHighlighter(h highlight.Highlighter) {
	r.hl = h
	r.tokens = make(map[int]cachedTokens)
}

// Language returns the id of the active highlighter.
func (r *Renderer) Language() string { return r.hl.Language() }

// SetTheme switches the color theme.
func (r *Renderer) SetTheme(t *highlight.Theme) { r.theme = t }

// Viewport exposes the viewport for scroll commands (page up/down).
func (r *Renderer) Viewport() *viewport.Viewport { return r.view }

// Render paints a full frame and flushes it.
func (r *Renderer) Render(f Frame) {
	width, height := r.backend.Size()
	if width < 1 || height < 2 {
		return
	}
	textRows := height - 1

	gutterWidth := len(fmt.Sprintf("%d", f.Buf.LineCount())) + 1
	if gutterWidth > width/2 {
		gutterWidth = 0 // degenerate terminal, drop the gutter
	}

	r.view.Resize(width-gutterWidth, textRows)
	r.view.SetMaxLine(f.Buf.LineCount())
	r.view.ScrollToReveal(f.Cursor.Line, f.CursorVisualCol)

	r.backend.Clear()

	start, end := r.view.VisibleLineRange()
	for line := start; line < end; line++ {
		r.paintLine(f, line, r.view.LineToRow(line), gutterWidth, width)
	}

	r.paintStatus(f, width, height-1)

	if f.Prompt != "" {
		col := runewidth.StringWidth(f.Prompt) + runewidth.StringWidth(f.PromptInput)
		if col > width-1 {
			col = width - 1
		}
		r.backend.ShowCursor(col, height-1)
	} else {
		r.backend.ShowCursor(gutterWidth+r.view.ColumnToScreen(f.CursorVisualCol), r.view.LineToRow(f.Cursor.Line))
	}

	r.backend.Show()
}

// paintLine draws one buffer line at the given screen row.
func (r *Renderer) paintLine(f Frame, line, row, gutterWidth, width int) {
	if gutterWidth > 0 {
		num := fmt.Sprintf("%*d ", gutterWidth-1, line+1)
		for i, ch := range num {
			r.backend.SetCell(i, row, core.Cell{Rune: ch, Style: r.theme.LineNumber})
		}
	}

	text := f.Buf.LineText(line)
	tokens := r.tokensFor(f.Buf, line, text)

	visual, col, rest := 0, 0, text
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		w := clusterWidth(cluster, visual)
		style := r.styleAt(tokens, col)
		if f.Selection != nil && f.Selection.Contains(buffer.Point{Line: line, Col: col}) {
			style = style.WithBackground(r.theme.Selection)
		}

		screenCol := r.view.ColumnToScreen(visual)
		if screenCol >= 0 && gutterWidth+screenCol < width {
			r.drawCluster(gutterWidth+screenCol, row, cluster, w, style)
		}

		visual += w
		col += len(cluster)
		rest = tail
	}

	// A selection spanning the line break shows one highlighted cell
	// past the end of the line.
	if f.Selection != nil && f.Selection.Contains(buffer.Point{Line: line, Col: len(text)}) {
		screenCol := r.view.ColumnToScreen(visual)
		if screenCol >= 0 && gutterWidth+screenCol < width {
			style := core.Style{Foreground: r.theme.Foreground, Background: r.theme.Selection}
			r.backend.SetCell(gutterWidth+screenCol, row, core.EmptyCell(style))
		}
	}
}

// drawCluster paints one grapheme cluster, expanding tabs to spaces and
// emitting continuation cells after wide clusters.
func (r *Renderer) drawCluster(x, y int, cluster string, width int, style core.Style) {
	if cluster == "\t" {
		for i := 0; i < width; i++ {
			r.backend.SetCell(x+i, y, core.EmptyCell(style))
		}
		return
	}

	runes := []rune(cluster)
	r.backend.SetCell(x, y, core.Cell{Rune: runes[0], Style: style})
	for i := 1; i < width; i++ {
		r.backend.SetCell(x+i, y, core.Cell{Rune: 0, Style: style})
	}
}

// tokensFor returns the token spans for a line, re-lexing only when the
// line is flagged dirty or its cached text is stale.
func (r *Renderer) tokensFor(buf *buffer.Buffer, line int, text string) []highlight.Token {
	cached, ok := r.tokens[line]
	if ok && !buf.IsLineDirty(line) && cached.text == text {
		return cached.tokens
	}
	tokens := r.hl.Tokenize(text)
	r.tokens[line] = cachedTokens{text: text, tokens: tokens}
	buf.MarkLineClean(line)
	return tokens
}

// styleAt resolves the theme style covering byte column col.
func (r *Renderer) styleAt(tokens []highlight.Token, col int) core.Style {
	for _, tok := range tokens {
		if col >= tok.Start && col < tok.End {
			return r.theme.StyleFor(tok.Type)
		}
	}
	return core.Style{Foreground: r.theme.Foreground, Background: r.theme.Background}
}

// paintStatus draws the bottom row: either the prompt or the status
// line with the right-hand segment flushed to the edge.
func (r *Renderer) paintStatus(f Frame, width, row int) {
	style := r.theme.StatusBar

	if f.Prompt != "" {
		r.paintText(0, row, width, f.Prompt+f.PromptInput, style)
		return
	}

	r.paintText(0, row, width, f.StatusLeft, style)
	if f.StatusRight != "" {
		x := width - runewidth.StringWidth(f.StatusRight)
		if x > runewidth.StringWidth(f.StatusLeft) {
			r.paintText(x, row, width, f.StatusRight, style)
		}
	}
}

// paintText writes a string from x, padding the rest of the row.
func (r *Renderer) paintText(x, row, width int, text string, style core.Style) {
	if x == 0 {
		for i := 0; i < width; i++ {
			r.backend.SetCell(i, row, core.EmptyCell(style))
		}
	}
	rest := text
	for len(rest) > 0 && x < width {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		w := runewidth.StringWidth(cluster)
		r.drawCluster(x, row, cluster, w, style)
		x += w
		rest = tail
	}
}

func clusterWidth(cluster string, atWidth int) int {
	if cluster == "\t" {
		return TabWidth - atWidth%TabWidth
	}
	return runewidth.StringWidth(cluster)
}
