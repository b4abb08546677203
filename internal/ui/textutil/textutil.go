// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, TruncateEllipsis)
}

// TruncateMiddle shortens s to at most maxWidth columns by cutting out the
// middle, keeping both ends visible ("images.uns…/photo-15").
func TruncateMiddle(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 2 {
		return Truncate(s, maxWidth)
	}
	avail := maxWidth - VisualWidth(TruncateEllipsis)
	headWidth := (avail + 1) / 2
	tailWidth := avail - headWidth

	runes := []rune(s)
	head := make([]rune, 0, headWidth)
	w := 0
	for _, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > headWidth {
			break
		}
		head = append(head, r)
		w += rw
	}
	var tail []rune
	w = 0
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > tailWidth {
			break
		}
		tail = append([]rune{runes[i]}, tail...)
		w += rw
	}
	return string(head) + TruncateEllipsis + string(tail)
}
