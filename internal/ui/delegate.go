package ui

import (
	"fmt"
	"io"

	"github.com/babarot/drash/internal/config"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// ListDelegate renders one candidate per line
type ListDelegate struct {
	styles   *DelegateStyles
	selected func(path string) bool
}

type DelegateStyles struct {
	Normal         lipgloss.Style
	Selected       lipgloss.Style
	Cursor         lipgloss.Style
	SelectedCursor lipgloss.Style
}

// NewListDelegate creates a delegate colored after cfg. selected reports
// whether a path is currently picked.
func NewListDelegate(cfg config.UI, selected func(path string) bool) *ListDelegate {
	return &ListDelegate{
		selected: selected,
		styles: &DelegateStyles{
			Normal: lipgloss.NewStyle().
				Padding(0, 0, 0, 2),

			Selected: lipgloss.NewStyle().
				Foreground(lipgloss.Color(cfg.Selected)).
				Padding(0, 0, 0, 2),

			Cursor: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color(cfg.Cursor)).
				Foreground(lipgloss.Color(cfg.Cursor)).
				Padding(0, 0, 0, 1),

			SelectedCursor: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color(cfg.Cursor)).
				Foreground(lipgloss.Color(cfg.Selected)).
				Padding(0, 0, 0, 1),
		},
	}
}

func (d *ListDelegate) Height() int                         { return 1 }
func (d *ListDelegate) Spacing() int                        { return 0 }
func (d *ListDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d *ListDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(Item)
	if !ok {
		return
	}

	width := m.Width() - 4
	if width < 1 {
		width = 1
	}
	title := ansi.Truncate(item.Title(), width, ellipsis)

	isCursor := index == m.Index()
	isSelected := d.selected(item.path)

	var style lipgloss.Style
	switch {
	case isCursor && isSelected:
		style = d.styles.SelectedCursor
	case isCursor:
		style = d.styles.Cursor
	case isSelected:
		style = d.styles.Selected
	default:
		style = d.styles.Normal
	}
	fmt.Fprint(w, style.Render(title))
}
