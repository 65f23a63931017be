package nudgeui

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/wesen/nudgebud/internal/chips"
	"github.com/wesen/nudgebud/pkg/flowlayout"
	"github.com/wesen/nudgebud/pkg/spatial"
	"github.com/wesen/nudgebud/pkg/wireframe"
)

// chipItem is a flow-layout item that renders itself while measuring.
// Labels too wide for the wrap limit are truncated with an ellipsis.
type chipItem struct {
	label    string
	style    lipgloss.Style
	rendered string
}

func (c *chipItem) Measure(maxWidth float64) flowlayout.Size {
	c.rendered = c.style.Render(c.label)
	w := lipgloss.Width(c.rendered)
	if float64(w) > maxWidth {
		room := int(maxWidth) - c.style.GetHorizontalFrameSize()
		c.rendered = c.style.Render(ansi.Truncate(c.label, max(room, 1), "…"))
		w = lipgloss.Width(c.rendered)
	}
	return flowlayout.Size{W: float64(w), H: float64(lipgloss.Height(c.rendered))}
}

// chipBox is the on-screen cell rectangle of one chip.
type chipBox struct {
	rect  image.Rectangle
	index int // position in the group
}

func (b chipBox) Pos() image.Point  { return b.rect.Min }
func (b chipBox) Size() image.Point { return b.rect.Size() }

// chipView is a group laid out at a screen origin.
type chipView struct {
	origin image.Point
	items  []*chipItem
	arr    flowlayout.Arrangement
	boxes  *spatial.Index[chipBox]
}

// layoutChips arranges the group's chips within width cells starting at
// origin. Entry IDs in the returned index equal chip positions.
func layoutChips(g *chips.Group, st styles, focus int, origin image.Point, width int, spacing flowlayout.Spacing) chipView {
	v := chipView{origin: origin, boxes: spatial.New[chipBox]()}
	if g == nil {
		return v
	}

	items := make([]flowlayout.Item, g.Len())
	for i, c := range g.Chips() {
		style := st.chip
		if c.Selected {
			style = st.chipSelected
		}
		if i == focus {
			style = style.Border(st.focusBorder)
		}
		label := c.Label
		if c.Custom {
			label = "+ " + label
		}
		it := &chipItem{label: label, style: style}
		v.items = append(v.items, it)
		items[i] = it
	}

	v.arr = flowlayout.Arrange(float64(max(width, 0)), items, spacing)
	for i, r := range v.arr.Place(flowlayout.Point{X: float64(origin.X), Y: float64(origin.Y)}) {
		rect := image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
		v.boxes.Add(chipBox{rect: rect, index: i})
	}
	return v
}

// Height returns the number of rows the chips occupy.
func (v chipView) Height() int {
	return int(v.arr.Size.H)
}

// HitTest returns the chip position under pt, or -1.
func (v chipView) HitTest(pt image.Point) int {
	if e := v.boxes.HitTest(pt); e != nil {
		return e.Data.index
	}
	return -1
}

// Neighbor returns the chip next to from in direction d, or -1.
func (v chipView) Neighbor(from int, d spatial.Direction) int {
	if e := v.boxes.Neighbor(from, d); e != nil {
		return e.Data.index
	}
	return -1
}

// Rect returns the screen rectangle of chip i.
func (v chipView) Rect(i int) image.Rectangle {
	if e := v.boxes.Get(i); e != nil {
		return spatial.BoundsOf(e.Data)
	}
	return image.Rectangle{}
}

func (v chipView) layers(z int) []*lipgloss.Layer {
	layers := make([]*lipgloss.Layer, 0, v.boxes.Len())
	for _, e := range v.boxes.Entries() {
		i := e.Data.index
		layers = append(layers,
			lipgloss.NewLayer(v.items[i].rendered).X(e.Data.rect.Min.X).Y(e.Data.rect.Min.Y).Z(z).ID(fmt.Sprintf("chip-%d", i)))
	}
	return layers
}

// wireframeLayer draws the arrangement as boxes instead of chips.
func (v chipView) wireframeLayer(st styles, z int) *lipgloss.Layer {
	labels := make([]string, len(v.items))
	for i, it := range v.items {
		labels[i] = it.label
	}
	buf := wireframe.Draw(v.arr, wireframe.Options{GridX: 4, GridY: 2, Labels: labels})
	return lipgloss.NewLayer(buf.Render(st.wire)).X(v.origin.X).Y(v.origin.Y).Z(z).ID("chip-wireframe")
}
