package nudgeui

import "charm.land/bubbles/v2/key"

// keyMap implements help.KeyMap.
type keyMap struct {
	NextPage  key.Binding
	PrevPage  key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextChip  key.Binding
	PrevChip  key.Binding
	Toggle    key.Binding
	Primary   key.Binding
	Add       key.Binding
	Remove    key.Binding
	Theme     key.Binding
	Wireframe key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPage:  key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:  key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "chip above")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "chip below")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "chip left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "chip right")),
		NextChip:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next chip")),
		PrevChip:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev chip")),
		Toggle:    key.NewBinding(key.WithKeys("space", " "), key.WithHelp("space", "pick")),
		Primary:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick / continue")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add chip")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove added chip")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Wireframe: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wireframe")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.PrevPage, k.Toggle, k.Add, k.Theme, k.Wireframe, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage, k.Primary},
		{k.Up, k.Down, k.Left, k.Right, k.NextChip, k.PrevChip},
		{k.Toggle, k.Add, k.Remove},
		{k.Theme, k.Wireframe, k.Help, k.Quit},
	}
}
