package flowlayout

// Rect is a positioned size.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Len returns the number of placed items.
func (a Arrangement) Len() int { return len(a.Positions) }

// Bounds returns the bounding box anchored at the origin.
func (a Arrangement) Bounds() Rect {
	return Rect{W: a.Size.W, H: a.Size.H}
}

// Place returns each item's rectangle inside a container whose top-left
// corner is origin, sized with the item's measured size.
func (a Arrangement) Place(origin Point) []Rect {
	rects := make([]Rect, len(a.Positions))
	for i, p := range a.Positions {
		rects[i] = Rect{
			X: origin.X + p.X,
			Y: origin.Y + p.Y,
			W: a.Sizes[i].W,
			H: a.Sizes[i].H,
		}
	}
	return rects
}

// Overflows reports whether any item extends past the bounding width. This
// happens only when a lone item is wider than the proposed width.
func (a Arrangement) Overflows() bool {
	for i, p := range a.Positions {
		if p.X+a.Sizes[i].W > a.Size.W {
			return true
		}
	}
	return false
}

// RowOf returns the row index holding item i, or -1.
func (a Arrangement) RowOf(i int) int {
	for r, row := range a.Rows {
		if len(row) == 0 || i < row[0] {
			continue
		}
		if i <= row[len(row)-1] {
			return r
		}
	}
	return -1
}
