package drash

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// RestoreOutcome tells whether a restore happened
type RestoreOutcome int

const (
	// RestoreNone is the outcome of a failed restore
	RestoreNone RestoreOutcome = iota

	// RestoreRestored means the payload is back at its original path
	RestoreRestored

	// RestoreSkipped means the destination was occupied and the resolver
	// declined to overwrite it. Nothing was touched.
	RestoreSkipped
)

func (o RestoreOutcome) String() string {
	switch o {
	case RestoreNone:
		return "none"
	case RestoreRestored:
		return "restored"
	case RestoreSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// RestoreResult is returned by Restore
type RestoreResult struct {
	Outcome RestoreOutcome
	Entry   Entry
}

// Restore moves a trashed entry back to its original path and deletes its
// record. If something already exists there and overwrite is false the
// resolver decides; the check always happens before the rename, since the
// rename itself would silently replace a file.
//
// Missing parent directories are not recreated: the rename fails and the
// entry stays in the trash.
func (e *Engine) Restore(id Identifier, overwrite bool) (RestoreResult, error) {
	const op = "restore"
	slog.Debug("drash.restore started", "id", id, "overwrite", overwrite)
	defer slog.Debug("drash.restore finished", "id", id)

	t, err := e.resolve(op, id)
	if err != nil {
		return RestoreResult{}, err
	}
	if !t.hasRecord {
		return RestoreResult{}, newError(op, string(id), ErrNotFound,
			fmt.Errorf("no record for %s, original path unknown", t.name))
	}

	res := RestoreResult{Entry: e.entry(t, time.Time{})}
	dst := t.rec.OriginalPath
	slog.Debug("resolved entry", "id", id, "entry", res.Entry)

	occupied, err := e.store.exists(dst)
	if err != nil {
		return res, ioError(op, dst, err)
	}
	if occupied && !overwrite {
		if e.resolver == nil {
			return res, newError(op, dst, ErrConflict, nil)
		}
		ok, err := e.resolver.Confirm(Question{Kind: QuestionOverwrite, Path: dst})
		if err != nil {
			return res, fmt.Errorf("confirm overwrite of %s: %w", dst, err)
		}
		if !ok {
			slog.Info("restore skipped, destination kept", "path", dst)
			res.Outcome = RestoreSkipped
			return res, nil
		}
	}

	if err := e.store.Move(e.store.PayloadPath(t.name), dst); err != nil {
		return res, ioError(op, dst, err)
	}
	if err := e.fs().Remove(e.store.RecordPath(t.name)); err != nil {
		return res, ioError(op, e.store.RecordPath(t.name),
			errors.Join(errors.New("entry restored but its record could not be deleted"), err))
	}

	slog.Info("restored", "name", t.name, "to", dst)
	res.Outcome = RestoreRestored
	return res, nil
}
