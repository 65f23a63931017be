package nudgeui

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/nudgebud/internal/pages"
	"github.com/wesen/nudgebud/pkg/screenlayout"
)

// Z order of the screen layers.
const (
	zSurface = iota
	zShadow
	zCard
	zText
	zChips
	zModal = 100
)

// frame is the computed geometry of one screen. View draws it and mouse
// handling hit-tests against it, so both always agree.
type frame struct {
	layout screenlayout.Layout
	title  string

	card   image.Rectangle
	head   string
	headAt image.Point
	chips  chipView
	foot   string
	footAt image.Point

	primary   string
	primaryAt image.Rectangle
}

func blockHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}

func (m Model) frame() frame {
	st := m.styles
	p := m.page()
	textW := max(m.Width-2*m.padding, 1)

	f := frame{
		title: lipgloss.JoinVertical(lipgloss.Left,
			st.title.Width(textW).Render(p.Title),
			st.body.Width(textW).Render(p.Body),
		),
		primary: st.primary.Render(p.Primary),
	}
	actionsH := 1
	if p.Secondary != "" {
		actionsH = 2
	}

	f.layout = screenlayout.NewBuilder(m.Width, m.Height).
		Inset(screenlayout.Symmetric(1, m.padding)).
		Gap(1).
		Top("header", 1).
		Top("title", blockHeight(f.title)).
		Bottom("footer", 1).
		Bottom("pagination", 1).
		Bottom("actions", actionsH).
		Remaining("body").
		Build()

	body := f.layout.Get("body").Rect
	innerW := max(body.Dx()-4, 1)
	x := body.Min.X + 2
	y := body.Min.Y + 1

	f.head = m.cardHead(p, innerW)
	f.headAt = image.Pt(x, y)
	y += blockHeight(f.head)

	if p.Chips != nil && p.Chips.Len() > 0 {
		if f.head != "" {
			y++
		}
		f.chips = layoutChips(p.Chips, st, m.Focus, image.Pt(x, y), innerW, m.spacing)
		y += f.chips.Height()
	} else {
		f.chips = layoutChips(nil, st, -1, image.Pt(x, y), innerW, m.spacing)
	}

	f.foot = m.cardFoot(p, innerW)
	if f.foot != "" && y > f.headAt.Y {
		y++
	}
	f.footAt = image.Pt(x, y)
	y += blockHeight(f.foot)

	f.card = image.Rect(body.Min.X, body.Min.Y, body.Max.X, min(y+1, body.Max.Y))

	actions := f.layout.Get("actions").Rect
	pw := lipgloss.Width(f.primary)
	px := actions.Min.X + max((actions.Dx()-pw)/2, 0)
	f.primaryAt = image.Rect(px, actions.Min.Y, px+pw, actions.Min.Y+1)
	return f
}

// cardHead renders the text above the chips: a feature list, or the group
// title with the remaining-pick hint.
func (m Model) cardHead(p pages.Page, w int) string {
	st := m.styles
	var lines []string
	if len(p.Features) > 0 {
		lines = append(lines, st.eyebrow.Width(w).Render("WHY YOU’LL LOVE NUDGEBUD"), st.card.Width(w).Render(""))
		for _, f := range p.Features {
			lines = append(lines,
				st.strong.Width(w).Render("• "+f.Title),
				st.muted.Width(w).Render("  "+f.Detail))
		}
	}
	if g := p.Chips; g != nil {
		lines = append(lines, st.eyebrow.Width(w).Render(strings.ToUpper(g.Title)))
		hint := p.ChipHint
		if g.Limit > 1 {
			left := fmt.Sprintf("%d left", g.Remaining())
			if hint == "" {
				hint = left
			} else {
				hint += " · " + left
			}
		}
		if hint != "" {
			lines = append(lines, st.strong.Width(w).Render(hint))
		}
	}
	return strings.Join(lines, "\n")
}

// cardFoot renders the note under the chips, and on the home page the
// chosen vibe and today's tasks.
func (m Model) cardFoot(p pages.Page, w int) string {
	st := m.styles
	var lines []string
	if p.Note != "" {
		lines = append(lines, st.muted.Width(w).Render(p.Note))
	}
	if len(p.Vibes) > 0 && p.Chips != nil {
		if sel := p.Chips.Selected(); len(sel) > 0 {
			if v, ok := p.Vibe(sel[0].Label); ok {
				lines = append(lines,
					st.strong.Width(w).Render(v.Headline),
					st.muted.Width(w).Render(v.Detail))
			}
		}
	}
	if len(p.Tasks) > 0 {
		lines = append(lines, st.card.Width(w).Render(""), st.eyebrow.Width(w).Render("TODAY’S NUDGES"))
		for _, t := range p.Tasks {
			lines = append(lines,
				st.strong.Width(w).Render("• "+t.Title),
				st.muted.Width(w).Render("  "+t.Subtitle))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) headerLine(w int) string {
	left := "✦ NudgeBud"
	right := m.theme.Scheme.String()
	if m.Wireframe {
		right = "wireframe · " + right
	}
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// layers builds every layer of the current screen.
func (m Model) layers() []*lipgloss.Layer {
	st := m.styles
	p := m.page()
	f := m.frame()
	l := f.layout

	screen := screenlayout.Region{Name: "screen", Rect: image.Rect(0, 0, m.Width, m.Height)}
	layers := []*lipgloss.Layer{
		screenlayout.FillLayer(screen, st.surface, "surface", zSurface),
	}

	header := l.Get("header")
	layers = append(layers,
		screenlayout.TextLayer(header, m.headerLine(header.Rect.Dx()), st.header, "header", zText))
	if title := l.Get("title"); !title.Rect.Empty() {
		layers = append(layers,
			lipgloss.NewLayer(f.title).X(title.Rect.Min.X).Y(title.Rect.Min.Y).Z(zText).ID("title"))
	}

	if !f.card.Empty() {
		shadow := screenlayout.Region{Name: "shadow", Rect: f.card.Add(st.shadowOffset)}
		layers = append(layers,
			screenlayout.FillLayer(shadow, st.shadow, "card-shadow", zShadow),
			screenlayout.FillLayer(screenlayout.Region{Name: "card", Rect: f.card}, st.card, "card", zCard))
		if f.head != "" {
			layers = append(layers, lipgloss.NewLayer(f.head).X(f.headAt.X).Y(f.headAt.Y).Z(zText).ID("card-head"))
		}
		if f.foot != "" {
			layers = append(layers, lipgloss.NewLayer(f.foot).X(f.footAt.X).Y(f.footAt.Y).Z(zText).ID("card-foot"))
		}
		if m.Wireframe && f.chips.boxes.Len() > 0 {
			layers = append(layers, f.chips.wireframeLayer(st, zChips))
		} else {
			layers = append(layers, f.chips.layers(zChips)...)
		}
	}

	actions := l.Get("actions")
	if !actions.Rect.Empty() {
		layers = append(layers,
			lipgloss.NewLayer(f.primary).X(f.primaryAt.Min.X).Y(f.primaryAt.Min.Y).Z(zText).ID("primary"))
		if p.Secondary != "" {
			second := screenlayout.Region{Name: "secondary", Rect: actions.Rect.Add(image.Pt(0, 1))}
			layers = append(layers, screenlayout.CenteredLayer(second, st.secondary.Render(p.Secondary), "secondary", zText))
		}
	}

	pagination := "home"
	if p.Step > 0 {
		pagination = screenlayout.Pagination(p.Step, pages.OnboardingSteps, st.pageOn, st.pageOff)
	} else {
		pagination = st.pageOn.Render(pagination)
	}
	layers = append(layers, screenlayout.CenteredLayer(l.Get("pagination"), pagination, "pagination", zText))

	footer := l.Get("footer")
	switch {
	case m.Status != "" && m.StatusErr:
		layers = append(layers, screenlayout.TextLayer(footer, m.Status, st.statusErr, "footer", zText))
	case m.Status != "":
		layers = append(layers, screenlayout.TextLayer(footer, m.Status, st.status, "footer", zText))
	default:
		h := m.help
		h.SetWidth(footer.Rect.Dx())
		layers = append(layers, screenlayout.TextLayer(footer, h.ShortHelpView(m.keys.ShortHelp()), st.status, "footer", zText))
	}

	switch {
	case m.AddOpen:
		layers = append(layers, screenlayout.ModalLayer(m.addModalContent(), m.Width, m.Height, st.modal))
	case m.help.ShowAll:
		layers = append(layers, screenlayout.ModalLayer(m.help.FullHelpView(m.keys.FullHelp()), m.Width, m.Height, st.modal))
	}
	return layers
}

// render composes the screen into a string.
func (m Model) render() string {
	comp := lipgloss.NewCompositor(m.layers()...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.BackgroundColor = m.theme.Palette().Surface
	v.WindowTitle = "NudgeBud"
	return v
}
