package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string. Consecutive cells with
// the same StyleKey are merged into one run and rendered with a single
// Style.Render call; keys missing from styles render as plain text.
//
// Rows are joined with "\n". An empty buffer returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	lines := make([]string, b.H)
	run := make([]rune, 0, b.W)
	for y, row := range b.Cells {
		var sb strings.Builder
		run = run[:0]
		runStyle := row[0].Style

		flush := func() {
			if s, ok := styles[runStyle]; ok {
				sb.WriteString(s.Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			run = run[:0]
		}

		for _, c := range row {
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run = append(run, c.Ch)
		}
		flush()
		lines[y] = sb.String()
	}

	return strings.Join(lines, "\n")
}

// Plain returns the buffer's characters without any styling. Trailing
// spaces are kept so every row is exactly W cells wide.
func (b *Buffer) Plain() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}
