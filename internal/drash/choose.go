package drash

import "errors"

// ErrNoSelector is returned by Choose when the engine has no Selector
var ErrNoSelector = errors.New("no selector configured")

// Choose turns a command-line query into identifiers. "-" picks the last
// trashed entry without asking; anything else goes through the Selector
// with the trash's candidates.
func (e *Engine) Choose(prompt, query string) ([]Identifier, error) {
	if Identifier(query) == Last {
		return []Identifier{Last}, nil
	}

	candidates, err := e.Candidates()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, newError("choose", "", ErrEmptyTrash, nil)
	}
	if e.selector == nil {
		return nil, ErrNoSelector
	}

	picked, err := e.selector.Select(prompt, query, candidates)
	if err != nil {
		return nil, err
	}
	ids := make([]Identifier, 0, len(picked))
	for _, p := range picked {
		ids = append(ids, Identifier(p))
	}
	return ids, nil
}
