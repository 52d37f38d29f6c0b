// Package grapheme provides the cluster-indexed text helpers used by the
// pending input buffer and the chip renderer.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster.
//
// Zero-width results from runewidth fall back to uniseg, which knows about
// emoji sequences runewidth does not.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// StringWidth returns the cell width of text, summed per cluster.
func StringWidth(text string) int {
	n := 0
	for _, c := range Split(text) {
		n += Width(c)
	}
	return n
}

// Truncate shortens text to at most cells terminal cells, appending tail
// when anything was cut. Clusters are never split.
func Truncate(text string, cells int, tail string) string {
	if cells <= 0 {
		return ""
	}
	if StringWidth(text) <= cells {
		return text
	}
	tw := StringWidth(tail)
	if tw >= cells {
		tail, tw = "", 0
	}

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := Width(c)
		if used+w > cells-tw {
			break
		}
		sb.WriteString(c)
		used += w
	}
	sb.WriteString(tail)
	return sb.String()
}
