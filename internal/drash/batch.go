package drash

import (
	"errors"
	"fmt"
	"log/slog"
)

// Outcome is the per-item result of a batch operation
type Outcome int

const (
	OutcomeDone Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ItemResult reports what happened to one item of a batch
type ItemResult struct {
	// Target is the path or identifier the item was given as
	Target string

	Outcome Outcome

	// Symlink is set by PutAll when the target was unlinked, not trashed
	Symlink bool

	// Err is set when Outcome is OutcomeFailed
	Err error
}

// PutAll trashes every path, carrying on past failures.
func (e *Engine) PutAll(paths []string) []ItemResult {
	results := make([]ItemResult, 0, len(paths))
	for _, path := range paths {
		res, err := e.Put(path)
		results = append(results, itemResult(path, err, false, res.Symlink))
	}
	return results
}

// DestroyAll permanently deletes every path, carrying on past failures.
func (e *Engine) DestroyAll(paths []string) []ItemResult {
	results := make([]ItemResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, itemResult(path, e.Destroy(path), false, false))
	}
	return results
}

// RemoveAll removes every identified entry, carrying on past failures.
func (e *Engine) RemoveAll(ids []Identifier) []ItemResult {
	results := make([]ItemResult, 0, len(ids))
	for _, id := range ids {
		_, err := e.Remove(id)
		results = append(results, itemResult(string(id), err, false, false))
	}
	return results
}

// RestoreAll restores every identified entry, carrying on past failures
// and declined conflicts.
func (e *Engine) RestoreAll(ids []Identifier, overwrite bool) []ItemResult {
	results := make([]ItemResult, 0, len(ids))
	for _, id := range ids {
		res, err := e.Restore(id, overwrite)
		target := string(id)
		if res.Entry.OriginalPath != "" {
			target = res.Entry.OriginalPath
		}
		results = append(results, itemResult(target, err, res.Outcome == RestoreSkipped, false))
	}
	return results
}

func itemResult(target string, err error, skipped, symlink bool) ItemResult {
	r := ItemResult{Target: target, Symlink: symlink}
	switch {
	case err != nil:
		slog.Error("batch item failed", "target", target, "error", err)
		r.Outcome, r.Err = OutcomeFailed, err
	case skipped:
		r.Outcome = OutcomeSkipped
	default:
		r.Outcome = OutcomeDone
	}
	return r
}

// Failures joins the errors of all failed items, or returns nil
func Failures(results []ItemResult) error {
	var errs []error
	for _, r := range results {
		if r.Outcome == OutcomeFailed {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d failed: %w", len(errs), len(results), errors.Join(errs...))
}
