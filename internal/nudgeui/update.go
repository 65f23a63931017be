package nudgeui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/wesen/nudgebud/pkg/spatial"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyPressMsg:
		if m.AddOpen {
			return m.handleAddKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.AddOpen {
			return m, nil
		}
		return handleMouse(m, msg), nil
	}

	return m, nil
}

// handleKeys processes keyboard input outside the add-chip modal.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	if m.help.ShowAll && !key.Matches(msg, k.Quit) {
		// any key closes the help overlay
		m.help.ShowAll = false
		return m, nil
	}

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.NextPage):
		m = m.turnPage(1)
	case key.Matches(msg, k.PrevPage):
		m = m.turnPage(-1)

	case key.Matches(msg, k.Up):
		m = m.moveFocus(spatial.Up)
	case key.Matches(msg, k.Down):
		m = m.moveFocus(spatial.Down)
	case key.Matches(msg, k.Left):
		m = m.moveFocus(spatial.Left)
	case key.Matches(msg, k.Right):
		m = m.moveFocus(spatial.Right)
	case key.Matches(msg, k.NextChip):
		m = m.cycleFocus(1)
	case key.Matches(msg, k.PrevChip):
		m = m.cycleFocus(-1)

	case key.Matches(msg, k.Toggle):
		m = m.toggle(m.Focus)
	case key.Matches(msg, k.Primary):
		if m.Focus >= 0 {
			m = m.toggle(m.Focus)
		} else {
			m = m.turnPage(1)
		}

	case key.Matches(msg, k.Add):
		return m.openAddModal()
	case key.Matches(msg, k.Remove):
		m = m.removeFocused()

	case key.Matches(msg, k.Theme):
		m = m.setTheme(m.theme.Toggled())
		m = m.info(fmt.Sprintf("%s theme", m.theme.Scheme))
		m.log.Printf("event=theme scheme=%s", m.theme.Scheme)
	case key.Matches(msg, k.Wireframe):
		m.Wireframe = !m.Wireframe
		m.log.Printf("event=wireframe on=%t", m.Wireframe)
	case key.Matches(msg, k.Help):
		m.help.ShowAll = true
	}

	return m, nil
}

// turnPage moves by delta pages, stopping at either end.
func (m Model) turnPage(delta int) Model {
	next := min(max(m.Page+delta, 0), len(m.Pages)-1)
	if next == m.Page {
		return m
	}
	m = m.goToPage(next)
	m.Status = ""
	m.log.Printf("event=page page=%s", m.page().ID)
	return m
}

// moveFocus moves the chip focus to the spatial neighbour in d.
func (m Model) moveFocus(d spatial.Direction) Model {
	if m.Focus < 0 {
		return m.cycleFocus(1)
	}
	if next := m.frame().chips.Neighbor(m.Focus, d); next >= 0 {
		m.Focus = next
		m.log.Printf("event=focus dir=%s chip=%d", d, next)
	}
	return m
}

// cycleFocus moves the focus through the chips in reading order, wrapping.
func (m Model) cycleFocus(delta int) Model {
	g := m.page().Chips
	if g == nil || g.Len() == 0 {
		return m
	}
	if m.Focus < 0 {
		m.Focus = 0
		return m
	}
	m.Focus = ((m.Focus+delta)%g.Len() + g.Len()) % g.Len()
	return m
}

// toggle flips chip i on the current page.
func (m Model) toggle(i int) Model {
	g := m.page().Chips
	if g == nil || i < 0 || i >= g.Len() {
		return m
	}
	c := g.At(i)
	if err := g.Toggle(c.ID); err != nil {
		return m.fail(err)
	}
	c = g.At(i)
	m.log.Printf("event=toggle page=%s chip=%q selected=%t", m.page().ID, c.Label, c.Selected)

	verb := "Dropped"
	if c.Selected {
		verb = "Picked"
	}
	if r := g.Remaining(); r >= 0 && g.Limit > 1 {
		return m.info(fmt.Sprintf("%s %s · %d left", verb, c.Label, r))
	}
	return m.info(fmt.Sprintf("%s %s", verb, c.Label))
}

// removeFocused deletes the focused chip if the user added it.
func (m Model) removeFocused() Model {
	g := m.page().Chips
	if g == nil || m.Focus < 0 || m.Focus >= g.Len() {
		return m
	}
	c := g.At(m.Focus)
	if err := g.Remove(c.ID); err != nil {
		return m.fail(fmt.Errorf("%q is built in: %w", c.Label, err))
	}
	m.log.Printf("event=remove page=%s chip=%q", m.page().ID, c.Label)
	m.Focus = min(m.Focus, g.Len()-1)
	return m.info(fmt.Sprintf("Removed %s", c.Label))
}
