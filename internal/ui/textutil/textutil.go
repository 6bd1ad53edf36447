// Package textutil provides width-aware text helpers for laying out cards.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	avail := maxWidth - Width(Ellipsis)
	if avail <= 0 {
		return Ellipsis
	}

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + Ellipsis
}

// PadRight pads s with spaces to width columns, truncating if it is wider.
func PadRight(s string, width int) string {
	if Width(s) >= width {
		return Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// ClampLines keeps at most n lines of s. When lines are dropped the last kept
// line is truncated to width and ends in an ellipsis.
func ClampLines(s string, n, width int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	lines = lines[:n]
	last := strings.TrimRight(lines[n-1], " ")
	room := width - Width(Ellipsis)
	if Width(last) > room {
		last = runewidth.Truncate(last, room, "")
	}
	lines[n-1] = last + Ellipsis
	return strings.Join(lines, "\n")
}
