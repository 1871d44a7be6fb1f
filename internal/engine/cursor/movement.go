package cursor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// nextBoundary returns the byte column of the next grapheme-cluster
// boundary after col, or len(line) when col is at or past the end.
func nextBoundary(line string, col int) int {
	if col >= len(line) {
		return len(line)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(line[col:], -1)
	return col + len(cluster)
}

// prevBoundary returns the byte column of the previous grapheme-cluster
// boundary before col, or 0 when col is at the start.
func prevBoundary(line string, col int) int {
	if col <= 0 {
		return 0
	}
	prev, rest := 0, line
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		next := prev + len(cluster)
		if next >= col {
			return prev
		}
		prev = next
		rest = tail
	}
	return prev
}

// snapBoundary returns col snapped back to the nearest cluster boundary
// at or before it, so clamped positions never land inside a cluster.
func snapBoundary(line string, col int) int {
	if col <= 0 {
		return 0
	}
	if col >= len(line) {
		return len(line)
	}
	pos, rest := 0, line
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		next := pos + len(cluster)
		if next > col {
			return pos
		}
		pos = next
		rest = tail
	}
	return pos
}

// visualColumn returns the display width of line text up to byte col.
// Tabs expand to the next multiple of tabWidth.
func visualColumn(line string, col, tabWidth int) int {
	width, pos, rest := 0, 0, line
	for len(rest) > 0 && pos < col {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		width += clusterWidth(cluster, width, tabWidth)
		pos += len(cluster)
		rest = tail
	}
	return width
}

// columnForVisual returns the byte column in line whose visual position
// is closest to, without exceeding, the target width.
func columnForVisual(line string, target, tabWidth int) int {
	width, pos, rest := 0, 0, line
	for len(rest) > 0 {
		cluster, tail, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		w := clusterWidth(cluster, width, tabWidth)
		if width+w > target {
			return pos
		}
		width += w
		pos += len(cluster)
		rest = tail
	}
	return pos
}

// clusterWidth returns the display width of one grapheme cluster at the
// given visual offset.
func clusterWidth(cluster string, atWidth, tabWidth int) int {
	if cluster == "\t" {
		return tabWidth - atWidth%tabWidth
	}
	return runewidth.StringWidth(cluster)
}
