package screenlayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// TextLayer renders content at the region's top-left corner, clipped to the
// region width.
func TextLayer(r Region, content string, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	rendered := style.Width(r.Rect.Dx()).MaxWidth(r.Rect.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// CenteredLayer places already-rendered content horizontally centered in
// the region, on the region's first row.
func CenteredLayer(r Region, rendered string, id string, z int) *lipgloss.Layer {
	x := r.Rect.Min.X + max((r.Rect.Dx()-lipgloss.Width(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(x).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// ModalLayer creates a centered high-Z overlay Layer.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := max((termW-lipgloss.Width(rendered))/2, 0)
	cy := max((termH-lipgloss.Height(rendered))/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer creates a Layer filled with the style's background at the
// region's position.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w := r.Rect.Dx()
	h := r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// Pagination renders step indicators: the current step as a wide bar,
// the others as dots. step is 1-based; out-of-range steps mark nothing.
func Pagination(step, total int, active, inactive lipgloss.Style) string {
	parts := make([]string, 0, max(total, 0))
	for i := 1; i <= total; i++ {
		if i == step {
			parts = append(parts, active.Render("━━━"))
		} else {
			parts = append(parts, inactive.Render("•"))
		}
	}
	return strings.Join(parts, " ")
}
