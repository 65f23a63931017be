package nudgeui

import (
	"image"

	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"
	"github.com/wesen/nudgebud/internal/tokens"
	"github.com/wesen/nudgebud/pkg/cellbuf"
	"github.com/wesen/nudgebud/pkg/wireframe"
)

// styles is every lipgloss style the preview uses, derived from one theme.
// Translucent tokens are flattened onto the surface they sit on.
type styles struct {
	surface lipgloss.Style
	card    lipgloss.Style
	shadow  lipgloss.Style

	header  lipgloss.Style
	title   lipgloss.Style
	body    lipgloss.Style
	eyebrow lipgloss.Style
	strong  lipgloss.Style
	muted   lipgloss.Style

	chip         lipgloss.Style
	chipSelected lipgloss.Style
	focusBorder  lipgloss.Border

	primary   lipgloss.Style
	secondary lipgloss.Style
	pageOn    lipgloss.Style
	pageOff   lipgloss.Style

	status    lipgloss.Style
	statusErr lipgloss.Style
	modal     lipgloss.Style

	shadowOffset image.Point
	wire         map[cellbuf.StyleKey]lipgloss.Style
	help         help.Styles
}

func newStyles(th tokens.Theme) styles {
	pal := th.Palette()
	surface := pal.Surface
	elevated := pal.ElevatedSurface
	onSurface := func(opacity float64, bg tokens.Color) tokens.Color {
		return pal.OnSurface.Faded(opacity).Over(bg)
	}

	border := lipgloss.NormalBorder()
	if th.Tokens.Radii.Medium > 0 {
		border = lipgloss.RoundedBorder()
	}

	chip := lipgloss.NewStyle().
		Foreground(pal.OnSurface.Over(elevated)).
		Background(elevated).
		Border(border).
		BorderForeground(pal.Outline.Over(elevated)).
		BorderBackground(elevated).
		Padding(0, 1)

	shadow := th.Card()
	s := styles{
		surface: lipgloss.NewStyle().Background(surface),
		card:    lipgloss.NewStyle().Background(elevated),
		shadow:  lipgloss.NewStyle().Background(shadow.Color.Over(surface)),

		header:  lipgloss.NewStyle().Foreground(pal.Primary.Over(surface)).Background(surface).Bold(true),
		title:   lipgloss.NewStyle().Foreground(pal.OnSurface.Over(surface)).Background(surface).Bold(true),
		body:    lipgloss.NewStyle().Foreground(onSurface(0.75, surface)).Background(surface),
		eyebrow: lipgloss.NewStyle().Foreground(onSurface(0.6, elevated)).Background(elevated).Bold(true),
		strong:  lipgloss.NewStyle().Foreground(pal.OnSurface.Over(elevated)).Background(elevated).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(onSurface(0.8, elevated)).Background(elevated),

		chip: chip,
		chipSelected: chip.
			Foreground(pal.Primary.Over(pal.ChipSelectedBackground)).
			Background(pal.ChipSelectedBackground).
			BorderForeground(pal.Primary.Over(elevated)).
			Bold(true),
		focusBorder: lipgloss.ThickBorder(),

		primary: lipgloss.NewStyle().
			Foreground(pal.OnPrimary).
			Background(pal.Primary).
			Bold(true).
			Padding(0, 3),
		secondary: lipgloss.NewStyle().Foreground(onSurface(0.7, surface)).Background(surface).Bold(true),
		pageOn:    lipgloss.NewStyle().Foreground(pal.Primary.Over(surface)).Background(surface),
		pageOff:   lipgloss.NewStyle().Foreground(onSurface(0.15, surface)).Background(surface),

		status:    lipgloss.NewStyle().Foreground(onSurface(0.6, surface)).Background(surface),
		statusErr: lipgloss.NewStyle().Foreground(pal.Primary.Over(surface)).Background(surface).Bold(true),
		modal: lipgloss.NewStyle().
			Foreground(pal.OnSurface.Over(elevated)).
			Background(elevated).
			Border(border).
			BorderForeground(pal.Primary.Over(surface)).
			BorderBackground(surface).
			Padding(1, 2),

		shadowOffset: image.Pt(sign(shadow.X), sign(shadow.Y)),
	}

	s.wire = map[cellbuf.StyleKey]lipgloss.Style{
		wireframe.StyleBG:       lipgloss.NewStyle().Background(elevated),
		wireframe.StyleGrid:     lipgloss.NewStyle().Foreground(pal.Outline.Over(elevated)).Background(elevated),
		wireframe.StyleBounds:   lipgloss.NewStyle().Foreground(onSurface(0.4, elevated)).Background(elevated),
		wireframe.StyleItem:     lipgloss.NewStyle().Foreground(pal.Primary.Over(elevated)).Background(elevated),
		wireframe.StyleOverflow: lipgloss.NewStyle().Foreground(pal.OnSurface.Over(elevated)).Background(elevated).Bold(true),
		wireframe.StyleLabel:    lipgloss.NewStyle().Foreground(pal.OnSurface.Over(elevated)).Background(elevated),
	}

	helpKey := lipgloss.NewStyle().Foreground(onSurface(0.8, surface)).Background(surface)
	helpDesc := lipgloss.NewStyle().Foreground(onSurface(0.55, surface)).Background(surface)
	helpSep := lipgloss.NewStyle().Foreground(onSurface(0.3, surface)).Background(surface)
	s.help = help.Styles{
		Ellipsis:       helpSep,
		ShortKey:       helpKey,
		ShortDesc:      helpDesc,
		ShortSeparator: helpSep,
		FullKey:        helpKey.Bold(true),
		FullDesc:       helpDesc,
		FullSeparator:  helpSep,
	}
	return s
}

// sign maps a shadow offset in points to a one-cell nudge.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
