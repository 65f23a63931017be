package nudgeui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"github.com/wesen/nudgebud/internal/chips"
)

// openAddModal opens the add-chip modal. Single-choice groups are closed
// to new chips.
func (m Model) openAddModal() (tea.Model, tea.Cmd) {
	g := m.page().Chips
	if g == nil || g.Limit == 1 {
		return m.info("No custom chips on this page"), nil
	}

	m.AddOpen = true
	m.Status, m.StatusErr = "", false
	m.AddInput = textinput.New()
	m.AddInput.Prompt = "› "
	m.AddInput.Placeholder = "e.g. Fitness"
	m.AddInput.CharLimit = chips.MaxLabelLen

	cmd := m.AddInput.Focus()
	return m, cmd
}

// handleAddKeys processes keys when the add-chip modal is open.
func (m Model) handleAddKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.AddOpen = false
		m.AddInput.Blur()
		return m, nil

	case "enter":
		g := m.page().Chips
		c, err := g.Add(m.AddInput.Value())
		if err != nil {
			// keep the modal open so the label can be fixed
			return m.fail(err), nil
		}
		m.AddOpen = false
		m.AddInput.Blur()
		m.Focus = g.Index(c.ID)
		m.log.Printf("event=add page=%s chip=%q", m.page().ID, c.Label)
		return m.info(fmt.Sprintf("Added %s", c.Label)), nil

	default:
		var cmd tea.Cmd
		m.AddInput, cmd = m.AddInput.Update(msg)
		return m, cmd
	}
}

func (m Model) addModalContent() string {
	st := m.styles
	lines := []string{
		st.strong.Render(fmt.Sprintf("Add to %s", strings.ToLower(m.page().Chips.Title))),
		"",
		m.AddInput.View(),
		"",
	}
	if m.StatusErr && m.Status != "" {
		lines = append(lines, st.statusErr.Render(m.Status))
	}
	lines = append(lines, st.muted.Render("[enter] add  [esc] cancel"))
	return strings.Join(lines, "\n")
}
