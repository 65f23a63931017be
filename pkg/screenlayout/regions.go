// Package screenlayout provides named-region layout computation and the
// chrome layers shared by Bubbletea v2 + Lipgloss v2 screens.
package screenlayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	W, H    int
	Regions map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Insets are margins applied around the content frame.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Symmetric returns vertical insets v and horizontal insets h.
func Symmetric(v, h int) Insets { return Insets{v, h, v, h} }

// Builder stacks fixed-height regions from the top and bottom of an inset
// frame, with an optional gap between stacked regions, and hands whatever
// is left to a single Remaining region.
type Builder struct {
	w, h        int
	frame       image.Rectangle
	gap         int
	top, bottom int // rows consumed inside the frame
	regions     []Region
}

// NewBuilder creates a builder for a w×h terminal.
func NewBuilder(w, h int) *Builder {
	return &Builder{w: w, h: h, frame: image.Rect(0, 0, w, h)}
}

// Inset shrinks the content frame. Call it before adding regions.
func (b *Builder) Inset(in Insets) *Builder {
	b.frame = rect(
		b.frame.Min.X+in.Left,
		b.frame.Min.Y+in.Top,
		b.frame.Max.X-in.Right,
		b.frame.Max.Y-in.Bottom,
	)
	return b
}

// Gap sets the number of rows left between stacked regions.
func (b *Builder) Gap(rows int) *Builder {
	b.gap = max(rows, 0)
	return b
}

// Top reserves rows below the previously stacked top regions.
func (b *Builder) Top(name string, height int) *Builder {
	if b.top > 0 {
		b.top += b.gap
	}
	y := b.frame.Min.Y + b.top
	b.add(name, rect(b.frame.Min.X, y, b.frame.Max.X, y+height))
	b.top += height
	return b
}

// Bottom reserves rows above the previously stacked bottom regions.
func (b *Builder) Bottom(name string, height int) *Builder {
	if b.bottom > 0 {
		b.bottom += b.gap
	}
	y := b.frame.Max.Y - b.bottom - height
	b.add(name, rect(b.frame.Min.X, y, b.frame.Max.X, y+height))
	b.bottom += height
	return b
}

// Remaining assigns the area between the top and bottom stacks, separated
// from each by the gap.
func (b *Builder) Remaining(name string) *Builder {
	y0 := b.frame.Min.Y + b.top
	if b.top > 0 {
		y0 += b.gap
	}
	y1 := b.frame.Max.Y - b.bottom
	if b.bottom > 0 {
		y1 -= b.gap
	}
	b.add(name, rect(b.frame.Min.X, y0, b.frame.Max.X, y1))
	return b
}

// rect is image.Rect without the canonicalisation, so inverted rectangles
// stay detectable in Build.
func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

func (b *Builder) add(name string, r image.Rectangle) {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
}

// Build computes the final Layout. Regions that end up degenerate or that
// spill outside the terminal are clamped.
func (b *Builder) Build() Layout {
	l := Layout{
		W:       b.w,
		H:       b.h,
		Regions: make(map[string]Region, len(b.regions)),
	}
	screen := image.Rect(0, 0, b.w, b.h)
	for _, r := range b.regions {
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		} else {
			r.Rect = r.Rect.Intersect(screen)
		}
		l.Regions[r.Name] = r
	}
	return l
}
