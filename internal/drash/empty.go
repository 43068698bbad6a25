package drash

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

// EmptyResult is returned by Empty
type EmptyResult struct {
	// Count is the number of entries in files/ when Empty was called
	Count int

	// AlreadyEmpty is set when there was nothing to purge
	AlreadyEmpty bool

	// Declined is set when the resolver refused the purge
	Declined bool
}

// Empty purges every entry. Unless force is set the resolver has to confirm
// first. files/ and info/ are deleted and recreated; there is no rollback,
// and if recreation fails the layout is missing until EnsureLayout runs.
func (e *Engine) Empty(force bool) (EmptyResult, error) {
	const op = "empty"
	slog.Debug("drash.empty started", "force", force)
	defer slog.Debug("drash.empty finished")

	infos, err := afero.ReadDir(e.fs(), e.store.filesDir)
	if err != nil {
		return EmptyResult{}, ioError(op, e.store.filesDir, err)
	}
	res := EmptyResult{Count: len(infos)}
	if res.Count == 0 {
		res.AlreadyEmpty = true
		return res, nil
	}

	if !force {
		if e.resolver == nil {
			res.Declined = true
			return res, nil
		}
		ok, err := e.resolver.Confirm(Question{Kind: QuestionEmpty, Count: res.Count})
		if err != nil {
			return res, fmt.Errorf("confirm empty: %w", err)
		}
		if !ok {
			res.Declined = true
			return res, nil
		}
	}

	for _, dir := range []string{e.store.filesDir, e.store.infoDir} {
		if err := e.fs().RemoveAll(dir); err != nil {
			return res, ioError(op, dir, err)
		}
	}
	if err := e.store.EnsureLayout(); err != nil {
		return res, err
	}

	slog.Info("drashcan emptied", "count", res.Count)
	return res, nil
}
