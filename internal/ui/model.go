package ui

import (
	"github.com/babarot/drash/internal/config"
	"github.com/babarot/drash/internal/ui/keys"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

// Model is the multi-select list shown by Selector
type Model struct {
	list     list.Model
	keys     *keys.ListKeyMap
	selected map[string]bool
	order    []string

	choices  []string
	canceled bool
}

func NewModel(prompt string, candidates []string, cfg config.UI) *Model {
	m := &Model{
		keys:     keys.ListKeys,
		selected: make(map[string]bool),
	}

	items := make([]list.Item, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, Item{path: c})
	}

	delegate := NewListDelegate(cfg, func(path string) bool { return m.selected[path] })
	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = prompt
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = m.keys.ShortHelp
	l.AdditionalFullHelpKeys = func() []key.Binding { return m.keys.FullHelp()[0] }
	m.list = l
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.canceled = true
			return m, tea.Quit
		}
		// while typing a filter, keys belong to the filter input
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Select):
			m.toggle(true)
			m.list.CursorDown()
			return m, nil
		case key.Matches(msg, m.keys.DeSelect):
			m.toggle(false)
			m.list.CursorUp()
			return m, nil
		case key.Matches(msg, m.keys.All):
			m.toggleAll()
			return m, nil
		case key.Matches(msg, m.keys.Enter):
			m.choices = m.Choices()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.canceled || m.choices != nil {
		return ""
	}
	return m.list.View()
}

func (m *Model) toggle(on bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return
	}
	if on && !m.selected[item.path] {
		m.order = append(m.order, item.path)
	}
	m.selected[item.path] = on
}

func (m *Model) toggleAll() {
	visible := m.list.VisibleItems()
	all := true
	for _, it := range visible {
		if !m.selected[it.(Item).path] {
			all = false
			break
		}
	}
	for _, it := range visible {
		path := it.(Item).path
		if !all && !m.selected[path] {
			m.order = append(m.order, path)
		}
		m.selected[path] = !all
	}
}

// Choices returns the picked paths in the order they were picked, or the
// item under the cursor when nothing was picked.
func (m *Model) Choices() []string {
	var picked []string
	for _, path := range m.order {
		if m.selected[path] {
			picked = append(picked, path)
		}
	}
	if len(picked) > 0 {
		return lo.Uniq(picked)
	}
	if item, ok := m.list.SelectedItem().(Item); ok {
		return []string{item.path}
	}
	return []string{}
}
