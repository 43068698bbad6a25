package keys

import "github.com/charmbracelet/bubbles/key"

type ListKeyMap struct {
	Quit     key.Binding
	Enter    key.Binding
	Select   key.Binding
	DeSelect key.Binding
	All      key.Binding
}

func (k ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Enter,
		k.Select,
	}
}

func (k ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Enter, k.Select, k.DeSelect, k.All, k.Quit},
	}
}

var ListKeys = &ListKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Select: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "select"),
	),
	DeSelect: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("s+tab", "de-select"),
	),
	All: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "toggle all"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "ok"),
	),
}
