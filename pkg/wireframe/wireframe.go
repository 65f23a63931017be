// Package wireframe draws a flow-layout arrangement as outlined boxes on a
// dotted grid, for inspecting how items wrapped.
package wireframe

import (
	"image"
	"math"
	"strconv"

	"github.com/wesen/nudgebud/pkg/cellbuf"
	"github.com/wesen/nudgebud/pkg/flowlayout"
)

// Style keys used in the returned buffer.
const (
	StyleBG cellbuf.StyleKey = iota
	StyleGrid
	StyleBounds
	StyleItem
	StyleOverflow
	StyleLabel
)

// Options controls the drawing.
type Options struct {
	// GridX and GridY set the dot spacing. Zero disables the grid.
	GridX, GridY int
	// Labels are written inside item boxes; missing labels fall back to
	// the item index.
	Labels []string
}

// Draw renders arr into a buffer sized to hold the bounding box and any
// item that overflows it. Coordinates are rounded to whole cells.
func Draw(arr flowlayout.Arrangement, opts Options) *cellbuf.Buffer {
	bounds := toRect(arr.Bounds())
	rects := arr.Place(flowlayout.Point{})

	w, h := bounds.Dx(), bounds.Dy()
	cells := make([]image.Rectangle, len(rects))
	for i, r := range rects {
		cells[i] = toRect(r)
		w = max(w, cells[i].Max.X)
		h = max(h, cells[i].Max.Y)
	}

	buf := cellbuf.New(w, h, StyleBG)
	DrawGrid(buf, opts.GridX, opts.GridY, StyleGrid)
	buf.Box(bounds, cellbuf.DashedBox, StyleBounds)

	for i, r := range cells {
		style := StyleItem
		if r.Max.X > bounds.Max.X {
			style = StyleOverflow
		}
		buf.Box(r, cellbuf.RoundedBox, style)

		label := strconv.Itoa(i)
		if i < len(opts.Labels) {
			label = opts.Labels[i]
		}
		drawLabel(buf, r, label)
	}
	return buf
}

// DrawGrid fills the buffer with '·' where both coordinates are multiples
// of the spacing.
func DrawGrid(buf *cellbuf.Buffer, spacingX, spacingY int, style cellbuf.StyleKey) {
	if spacingX <= 0 || spacingY <= 0 {
		return
	}
	for y := 0; y < buf.H; y += spacingY {
		for x := 0; x < buf.W; x += spacingX {
			buf.Set(x, y, '·', style)
		}
	}
}

// drawLabel centers the label vertically inside r, clipped to the box
// interior.
func drawLabel(buf *cellbuf.Buffer, r image.Rectangle, label string) {
	inner := r.Dx() - 2
	if inner <= 0 || r.Dy() == 0 {
		return
	}
	rs := []rune(label)
	if len(rs) > inner {
		rs = rs[:inner]
	}
	buf.SetString(r.Min.X+1, r.Min.Y+r.Dy()/2, string(rs), StyleLabel)
}

func toRect(r flowlayout.Rect) image.Rectangle {
	x, y := round(r.X), round(r.Y)
	return image.Rect(x, y, x+round(r.W), y+round(r.H))
}

func round(v float64) int {
	return int(math.Round(v))
}
