package drash

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Remove permanently deletes a trashed entry: its payload first, then its
// record. Both deletions are attempted. Whatever one of them leaves behind
// is reported in the error and is not repaired.
func (e *Engine) Remove(id Identifier) (Entry, error) {
	const op = "remove"
	slog.Debug("drash.remove started", "id", id)
	defer slog.Debug("drash.remove finished", "id", id)

	t, err := e.resolve(op, id)
	if err != nil {
		return Entry{}, err
	}
	ent := e.entry(t, time.Time{})
	slog.Debug("resolved entry", "id", id, "entry", ent)

	var errs []error
	payload := e.store.PayloadPath(t.name)
	fi, err := e.store.lstat(payload)
	switch {
	case err == nil:
		if fi.IsDir() {
			err = e.fs().RemoveAll(payload)
		} else {
			err = e.fs().Remove(payload)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("payload %s left in place: %w", payload, err))
		}
	case errors.Is(err, os.ErrNotExist):
		slog.Warn("payload already gone", "name", t.name)
	default:
		errs = append(errs, fmt.Errorf("payload %s: %w", payload, err))
	}

	record := e.store.RecordPath(t.name)
	if err := e.fs().Remove(record); err != nil {
		if !errors.Is(err, os.ErrNotExist) || t.hasRecord {
			errs = append(errs, fmt.Errorf("dangling record %s: %w", record, err))
		}
	}

	if len(errs) > 0 {
		return ent, ioError(op, t.rec.OriginalPath, errors.Join(errs...))
	}
	slog.Info("removed from drashcan", "name", t.name, "from", t.rec.OriginalPath)
	return ent, nil
}
