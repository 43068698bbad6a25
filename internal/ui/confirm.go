package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/babarot/drash/internal/drash"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Decision is the answer of a confirmation prompt
type Decision int

const (
	Undecided Decision = iota
	Accepted
	Denied
)

func (d Decision) String() string {
	return [...]string{"undecided", "accepted", "denied"}[d]
}

func (d Decision) IsAccepted() bool {
	return d == Accepted
}

var (
	promptPrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AD58B4")).Bold(true)
	placeholderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
)

// confirmModel asks a y/n question and returns as soon as a key decides it
type confirmModel struct {
	prompt       string
	defaultValue Decision
	selected     Decision
	input        textinput.Model
	done         bool
}

func newConfirm(prompt string) *confirmModel {
	return &confirmModel{
		prompt:       prompt,
		defaultValue: Denied,
	}
}

func (m *confirmModel) Init() tea.Cmd {
	m.selected = m.defaultValue

	input := textinput.New()
	input.Prompt = promptPrefixStyle.Render("? ") + m.prompt + " "
	input.Placeholder = "y/N"
	input.PlaceholderStyle = placeholderStyle
	input.CharLimit = 1
	input.Focus()
	m.input = input
	return textinput.Blink
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m.decide(Denied)
		case tea.KeyEnter:
			return m.decide(m.defaultValue)
		}
		switch strings.ToLower(msg.String()) {
		case "y":
			return m.decide(Accepted)
		case "n":
			return m.decide(Denied)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *confirmModel) decide(d Decision) (tea.Model, tea.Cmd) {
	m.selected = d
	m.done = true
	return m, tea.Quit
}

func (m *confirmModel) View() string {
	if m.done {
		answer := "no"
		if m.selected.IsAccepted() {
			answer = "yes"
		}
		return promptPrefixStyle.Render("? ") + m.prompt + " " + placeholderStyle.Render(answer) + "\n"
	}
	return m.input.View()
}

// Resolver answers the engine's questions on the terminal. When stdin is
// not a terminal it reads a plain "y"/"yes" line instead, and EOF means no.
type Resolver struct {
	in          io.Reader
	out         io.Writer
	interactive bool
}

func NewResolver(in io.Reader, out io.Writer) *Resolver {
	return &Resolver{
		in:          in,
		out:         out,
		interactive: isTerminal(in),
	}
}

func (r *Resolver) Confirm(q drash.Question) (bool, error) {
	if !r.interactive {
		return r.confirmLine(q.String())
	}

	m := newConfirm(q.String())
	p := tea.NewProgram(m, tea.WithInput(r.in), tea.WithOutput(r.out))
	if _, err := p.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false, err
	}
	slog.Debug("confirm answered", "question", q.Kind, "decision", m.selected)
	return m.selected.IsAccepted(), nil
}

func (r *Resolver) confirmLine(prompt string) (bool, error) {
	fmt.Fprintf(r.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(r.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
