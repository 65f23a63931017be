package nudgeui

import (
	"image"

	tea "charm.land/bubbletea/v2"
)

// handleMouse toggles the chip under a left click and treats a click on
// the primary action as "continue".
func handleMouse(m Model, msg tea.MouseMsg) Model {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	click, ok := msg.(tea.MouseClickMsg)
	if !ok || click.Button != tea.MouseLeft {
		return m
	}
	if m.help.ShowAll {
		m.help.ShowAll = false
		return m
	}

	pt := image.Pt(mouse.X, mouse.Y)
	f := m.frame()
	if i := f.chips.HitTest(pt); i >= 0 {
		m.Focus = i
		return m.toggle(i)
	}
	if pt.In(f.primaryAt) {
		return m.turnPage(1)
	}
	return m
}
