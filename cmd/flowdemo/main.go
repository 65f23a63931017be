// flowdemo arranges chip labels with flowlayout and prints the result twice:
// as styled chips composed on a lipgloss canvas and as a wireframe.
//
// Run: GOWORK=off go run ./cmd/flowdemo/ -width 30 Wellness "Deep work" Home
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/wesen/nudgebud/internal/tokens"
	"github.com/wesen/nudgebud/pkg/cellbuf"
	"github.com/wesen/nudgebud/pkg/flowlayout"
	"github.com/wesen/nudgebud/pkg/wireframe"
)

var defaultLabels = []string{
	"Wellness", "Deep work", "Budgeting", "Home", "Relationships", "Learning", "Creativity",
}

func main() {
	width := flag.Int("width", 32, "proposed container width in cells (0 = unbounded)")
	hspace := flag.Float64("hspace", 2, "gap between chips on a row")
	vspace := flag.Float64("vspace", 1, "gap between rows")
	grid := flag.Int("grid", 4, "wireframe grid dot spacing (0 = off)")
	dark := flag.Bool("dark", false, "use the dark palette")
	flag.Parse()

	labels := flag.Args()
	if len(labels) == 0 {
		labels = defaultLabels
	}

	scheme := tokens.Light
	if *dark {
		scheme = tokens.Dark
	}
	pal := tokens.Default().Palette(scheme)

	chip := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Outline.Over(pal.ElevatedSurface)).
		Foreground(pal.OnSurface).
		Padding(0, 1)

	rendered := make([]string, len(labels))
	items := make([]flowlayout.Item, len(labels))
	for i, l := range labels {
		rendered[i] = chip.Render(l)
		w, h := lipgloss.Width(rendered[i]), lipgloss.Height(rendered[i])
		items[i] = flowlayout.Fixed(float64(w), float64(h))
	}

	arr := flowlayout.Arrange(float64(*width), items, flowlayout.Spacing{Horizontal: *hspace, Vertical: *vspace})
	b := arr.Bounds()

	title := lipgloss.NewStyle().Foreground(pal.Primary).Bold(true).Underline(true)
	muted := lipgloss.NewStyle().Foreground(pal.OnSurface.Faded(0.6).Over(pal.Surface))

	fmt.Println()
	fmt.Println(title.Render(fmt.Sprintf("  flowlayout: %d chips in %d cells", len(labels), *width)))
	fmt.Println(muted.Render(fmt.Sprintf("  rows=%d bounds=%gx%g overflow=%t", len(arr.Rows), b.W, b.H, arr.Overflows())))
	fmt.Println()

	if arr.Len() == 0 {
		fmt.Fprintln(os.Stderr, "nothing to arrange")
		os.Exit(1)
	}

	layers := make([]*lipgloss.Layer, 0, len(rendered))
	canvasW := 2
	for i, r := range arr.Place(flowlayout.Point{X: 2}) {
		layers = append(layers, lipgloss.NewLayer(rendered[i]).X(cell(r.X)).Y(cell(r.Y)).ID(labels[i]))
		canvasW = max(canvasW, cell(r.Right()))
	}
	canvas := lipgloss.NewCanvas(canvasW, cell(b.H))
	canvas.Compose(lipgloss.NewCompositor(layers...))
	fmt.Println(canvas.Render())
	fmt.Println()

	buf := wireframe.Draw(arr, wireframe.Options{GridX: *grid, GridY: max(*grid/2, 1), Labels: labels})
	fmt.Println(buf.Render(wireStyles(pal)))
	fmt.Println()
	fmt.Println(muted.Render("  dashed=bounds  rounded=chip  red=overflow"))
	fmt.Println()
}

func wireStyles(pal tokens.Palette) map[cellbuf.StyleKey]lipgloss.Style {
	base := lipgloss.NewStyle().Background(pal.Surface)
	return map[cellbuf.StyleKey]lipgloss.Style{
		wireframe.StyleBG:       base.Foreground(pal.Surface),
		wireframe.StyleGrid:     base.Foreground(pal.Outline.Over(pal.Surface)),
		wireframe.StyleBounds:   base.Foreground(pal.Primary),
		wireframe.StyleItem:     base.Foreground(pal.OnSurface),
		wireframe.StyleOverflow: base.Foreground(lipgloss.Color("#d93025")).Bold(true),
		wireframe.StyleLabel:    base.Foreground(pal.OnSurface).Bold(true),
	}
}

func cell(v float64) int {
	return int(math.Round(v))
}
