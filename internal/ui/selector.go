package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/babarot/drash/internal/config"
	"github.com/babarot/drash/internal/drash"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

var (
	// ErrCanceled is returned when the user quits the selection
	ErrCanceled = errors.New("selection canceled")

	// ErrAmbiguous is returned when a query matches several candidates
	// and there is no terminal to choose on
	ErrAmbiguous = errors.New("query matches more than one entry")
)

// Selector picks candidates. A query that narrows the candidates down to a
// single one is answered without a prompt; otherwise the remaining
// candidates are offered in a fuzzy-filterable multi-select list.
type Selector struct {
	cfg         config.UI
	in          io.Reader
	out         io.Writer
	interactive bool
}

func NewSelector(cfg config.UI, in io.Reader, out io.Writer) *Selector {
	return &Selector{
		cfg:         cfg,
		in:          in,
		out:         out,
		interactive: isTerminal(in),
	}
}

func (s *Selector) Select(prompt, query string, candidates []string) ([]string, error) {
	if query != "" {
		candidates = Match(query, candidates)
		switch len(candidates) {
		case 0:
			return nil, fmt.Errorf("%q: %w", query, drash.ErrNotFound)
		case 1:
			slog.Debug("query resolved without prompt", "query", query, "match", candidates[0])
			return candidates, nil
		}
	}

	if !s.interactive {
		return nil, fmt.Errorf("%w (%d candidates): pass an exact path or run on a terminal", ErrAmbiguous, len(candidates))
	}

	m := NewModel(prompt, candidates, s.cfg)
	p := tea.NewProgram(m, tea.WithInput(s.in), tea.WithOutput(s.out))
	if _, err := p.Run(); err != nil {
		return nil, err
	}
	if m.canceled {
		return nil, ErrCanceled
	}
	slog.Debug("selected", "prompt", prompt, "choices", m.choices)
	return m.choices, nil
}

// Match narrows candidates down for query: exact paths win over base
// names, which win over fuzzy matches (best first).
func Match(query string, candidates []string) []string {
	query = filepath.Clean(query)
	exact := lo.Filter(candidates, func(c string, _ int) bool {
		return c == query
	})
	if len(exact) > 0 {
		return lo.Uniq(exact)
	}

	name := filepath.Base(query)
	byName := lo.Filter(candidates, func(c string, _ int) bool {
		return filepath.Base(c) == name
	})
	if len(byName) > 0 {
		return lo.Uniq(byName)
	}

	matches := fuzzy.Find(query, candidates)
	return lo.Uniq(lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	}))
}
