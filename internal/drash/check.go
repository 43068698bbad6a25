package drash

import (
	"log/slog"
	"strings"

	"github.com/spf13/afero"
)

// CorruptRecord is a record that failed to decode
type CorruptRecord struct {
	Name string
	Err  error
}

// CheckReport lists inconsistencies left behind by interrupted operations
type CheckReport struct {
	// Orphaned records have no payload (e.g. Put failed after writing
	// the record)
	Orphaned []Entry

	// Untracked payloads have no record (e.g. Remove could not delete
	// the payload's record, or Restore was interrupted)
	Untracked []string

	// Corrupt records cannot be decoded
	Corrupt []CorruptRecord
}

// Clean reports whether nothing was found
func (r CheckReport) Clean() bool {
	return len(r.Orphaned) == 0 && len(r.Untracked) == 0 && len(r.Corrupt) == 0
}

// Check scans the trash for records and payloads that lost their pair. It
// only reports; nothing is fixed.
func (e *Engine) Check() (CheckReport, error) {
	const op = "check"
	slog.Debug("drash.check started")
	defer slog.Debug("drash.check finished")

	records, err := e.scanRecords(op)
	if err != nil {
		return CheckReport{}, err
	}
	payloads, err := afero.ReadDir(e.fs(), e.store.filesDir)
	if err != nil {
		return CheckReport{}, ioError(op, e.store.filesDir, err)
	}

	var report CheckReport
	recorded := make(map[string]bool, len(records))
	for _, r := range records {
		recorded[r.name] = true
		if r.err != nil {
			report.Corrupt = append(report.Corrupt, CorruptRecord{Name: r.name, Err: r.err})
			continue
		}
		if ok, _ := e.store.exists(e.store.PayloadPath(r.name)); !ok {
			report.Orphaned = append(report.Orphaned, Entry{
				Name:         r.name,
				OriginalPath: r.rec.OriginalPath,
				Type:         r.rec.Type,
				TrashedAt:    r.modTime,
			})
		}
	}
	for _, fi := range payloads {
		if strings.HasPrefix(fi.Name(), "._") {
			continue
		}
		if !recorded[fi.Name()] {
			report.Untracked = append(report.Untracked, fi.Name())
		}
	}

	if !report.Clean() {
		slog.Warn("drashcan is inconsistent",
			"orphaned", len(report.Orphaned),
			"untracked", len(report.Untracked),
			"corrupt", len(report.Corrupt),
		)
	}
	return report, nil
}
