// Package flowlayout arranges variable-size items left to right, wrapping
// to a new row when the next item would overflow the proposed width.
//
// The computation is pure: Arrange allocates only call-scoped state, so it
// may be called concurrently and repeatedly with identical results.
package flowlayout

import "math"

// Unbounded proposes no width limit. All items land on a single row.
var Unbounded = math.Inf(1)

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Point is a top-left position relative to the arrangement's origin.
type Point struct {
	X, Y float64
}

// Item is anything that can report the space it needs when given at most
// maxWidth of horizontal room. Measure must be a pure function of maxWidth.
type Item interface {
	Measure(maxWidth float64) Size
}

// MeasureFunc adapts a plain function to the Item interface.
type MeasureFunc func(maxWidth float64) Size

// Measure implements Item.
func (f MeasureFunc) Measure(maxWidth float64) Size { return f(maxWidth) }

// Fixed returns an Item that always measures w×h.
func Fixed(w, h float64) Item {
	return MeasureFunc(func(float64) Size { return Size{W: w, H: h} })
}

// Spacing holds the gaps inserted between items on a row (Horizontal) and
// between rows (Vertical).
type Spacing struct {
	Horizontal float64
	Vertical   float64
}

// Arrangement is the result of a layout pass. Positions and Sizes have one
// entry per input item, in input order. Rows lists item indices per row.
type Arrangement struct {
	Positions []Point
	Sizes     []Size
	Rows      [][]int
	Size      Size
}

// Arrange computes item positions and the bounding size for a container of
// the given width. A width that is zero, negative, NaN or Unbounded means
// "no limit": a zero width is how hosts propose a size they have not
// measured yet, and wrapping every item alone would be wrong for them.
//
// An item is only moved to a new row when the current row already holds
// something, so an item wider than the container still gets placed.
func Arrange(width float64, items []Item, spacing Spacing) Arrangement {
	limit := wrapLimit(width)
	hs := nonNegative(spacing.Horizontal)
	vs := nonNegative(spacing.Vertical)

	arr := Arrangement{
		Positions: make([]Point, 0, len(items)),
		Sizes:     make([]Size, 0, len(items)),
	}
	if len(items) == 0 {
		return arr
	}

	var (
		x, y       float64
		lineHeight float64
		maxRowW    float64
		row        []int
	)

	for i, it := range items {
		sz := it.Measure(limit)
		sz.W = nonNegative(sz.W)
		sz.H = nonNegative(sz.H)

		// x already includes the gap after the previous item.
		if x > 0 && x+sz.W > limit {
			arr.Rows = append(arr.Rows, row)
			row = nil
			x = 0
			y += lineHeight + vs
			lineHeight = 0
		}

		arr.Positions = append(arr.Positions, Point{X: x, Y: y})
		arr.Sizes = append(arr.Sizes, sz)
		row = append(row, i)

		maxRowW = max(maxRowW, x+sz.W)
		x += sz.W + hs
		lineHeight = max(lineHeight, sz.H)
	}
	arr.Rows = append(arr.Rows, row)

	arr.Size = Size{W: min(limit, maxRowW), H: y + lineHeight}
	return arr
}

// SizeThatFits returns only the bounding size Arrange would compute.
func SizeThatFits(width float64, items []Item, spacing Spacing) Size {
	return Arrange(width, items, spacing).Size
}

// wrapLimit resolves the proposed width into the row-breaking threshold.
func wrapLimit(width float64) float64 {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return math.MaxFloat64
	}
	return width
}

// nonNegative clamps negative and non-finite values to zero.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
