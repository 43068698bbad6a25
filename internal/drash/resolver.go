package drash

import "fmt"

// QuestionKind tells a Resolver what it is being asked about
type QuestionKind int

const (
	// QuestionOverwrite asks whether a restore may replace an existing entry
	QuestionOverwrite QuestionKind = iota

	// QuestionEmpty asks whether the whole trash may be purged
	QuestionEmpty
)

// Question is a yes/no decision the engine cannot take on its own
type Question struct {
	Kind QuestionKind

	// Path is the occupied restore destination (QuestionOverwrite)
	Path string

	// Count is the number of entries about to be purged (QuestionEmpty)
	Count int
}

func (q Question) String() string {
	switch q.Kind {
	case QuestionOverwrite:
		return fmt.Sprintf("File already exists: %s. Overwrite it?", q.Path)
	case QuestionEmpty:
		return fmt.Sprintf("Empty the drashcan (%d entries)?", q.Count)
	default:
		return "Continue?"
	}
}

// ConflictResolver answers yes/no questions. Implementations may block on a
// terminal; the engine waits for the answer.
type ConflictResolver interface {
	Confirm(q Question) (bool, error)
}

// ResolverFunc adapts a function to ConflictResolver
type ResolverFunc func(q Question) (bool, error)

func (f ResolverFunc) Confirm(q Question) (bool, error) { return f(q) }

var (
	// AlwaysYes accepts every question
	AlwaysYes ConflictResolver = ResolverFunc(func(Question) (bool, error) { return true, nil })

	// AlwaysNo declines every question
	AlwaysNo ConflictResolver = ResolverFunc(func(Question) (bool, error) { return false, nil })
)

// Selector narrows candidate original paths down to the ones the user
// picked. query is an optional hint typed on the command line.
type Selector interface {
	Select(prompt, query string, candidates []string) ([]string, error)
}

// SelectorFunc adapts a function to Selector
type SelectorFunc func(prompt, query string, candidates []string) ([]string, error)

func (f SelectorFunc) Select(prompt, query string, candidates []string) ([]string, error) {
	return f(prompt, query, candidates)
}
