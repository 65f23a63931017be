// Package spatial keeps positioned, sized elements in a stable insertion
// order and answers point and neighbour queries against them.
package spatial

import "image"

// Spatial is the minimal interface for a positioned, sized element.
type Spatial interface {
	Pos() image.Point
	Size() image.Point
}

// CenterOf returns the center point of a Spatial element.
func CenterOf(s Spatial) image.Point {
	p := s.Pos()
	sz := s.Size()
	return image.Pt(p.X+sz.X/2, p.Y+sz.Y/2)
}

// BoundsOf returns the bounding rectangle of a Spatial element.
func BoundsOf(s Spatial) image.Rectangle {
	p := s.Pos()
	sz := s.Size()
	return image.Rect(p.X, p.Y, p.X+sz.X, p.Y+sz.Y)
}

// Direction names a neighbour search direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
