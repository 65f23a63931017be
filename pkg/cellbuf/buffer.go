// Package cellbuf provides a 2D character buffer with per-cell styling
// and run-merged Lipgloss rendering.
//
// Each cell holds a rune and a StyleKey. The caller maps StyleKeys to
// lipgloss styles at render time, so the buffer knows nothing about colour
// schemes.
//
// Limitation: all runes are assumed to be single-width.
package cellbuf

import "image"

// StyleKey identifies a visual style.
type StyleKey int

// Cell is a single character with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// BoxChars is the set of runes used to outline a rectangle.
type BoxChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var (
	// RoundedBox draws chip-like outlines.
	RoundedBox = BoxChars{'╭', '╮', '╰', '╯', '─', '│'}
	// DashedBox draws guides such as bounding boxes.
	DashedBox = BoxChars{'┌', '┐', '└', '┘', '╌', '╎'}
)

// New creates a w×h buffer filled with spaces in defaultStyle. Negative
// sizes are treated as zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one cell per rune. Runes that
// fall outside the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// HLine draws n copies of ch rightwards from (x, y).
func (b *Buffer) HLine(x, y, n int, ch rune, style StyleKey) {
	for i := 0; i < n; i++ {
		b.Set(x+i, y, ch, style)
	}
}

// VLine draws n copies of ch downwards from (x, y).
func (b *Buffer) VLine(x, y, n int, ch rune, style StyleKey) {
	for i := 0; i < n; i++ {
		b.Set(x, y+i, ch, style)
	}
}

// Box outlines r with the given characters. The interior is left
// untouched. Rectangles narrower or shorter than two cells degrade to a
// line so that tiny items stay visible.
func (b *Buffer) Box(r image.Rectangle, chars BoxChars, style StyleKey) {
	r = r.Canon()
	w, h := r.Dx(), r.Dy()
	switch {
	case w == 0 || h == 0:
		return
	case h == 1:
		b.HLine(r.Min.X, r.Min.Y, w, chars.Horizontal, style)
		return
	case w == 1:
		b.VLine(r.Min.X, r.Min.Y, h, chars.Vertical, style)
		return
	}

	right, bottom := r.Max.X-1, r.Max.Y-1
	b.HLine(r.Min.X+1, r.Min.Y, w-2, chars.Horizontal, style)
	b.HLine(r.Min.X+1, bottom, w-2, chars.Horizontal, style)
	b.VLine(r.Min.X, r.Min.Y+1, h-2, chars.Vertical, style)
	b.VLine(right, r.Min.Y+1, h-2, chars.Vertical, style)
	b.Set(r.Min.X, r.Min.Y, chars.TopLeft, style)
	b.Set(right, r.Min.Y, chars.TopRight, style)
	b.Set(r.Min.X, bottom, chars.BottomLeft, style)
	b.Set(right, bottom, chars.BottomRight, style)
}
