package drash

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/afero"
)

// Entry is a trashed file or directory as shown to callers
type Entry struct {
	// Name is the entry's name inside files/ and info/
	Name string

	// OriginalPath is where the entry was trashed from
	OriginalPath string

	// Type is file or directory
	Type FileType

	// TrashedAt is when the entry was trashed
	TrashedAt time.Time

	// Size is the payload size in bytes, recursive for directories
	Size int64
}

// GetName, GetPath, GetDeletedAt and GetSize let entries go through Filter
func (e Entry) GetName() string         { return filepath.Base(e.OriginalPath) }
func (e Entry) GetPath() string         { return e.OriginalPath }
func (e Entry) GetDeletedAt() time.Time { return e.TrashedAt }
func (e Entry) GetSize() int64          { return e.Size }

// String dumps every field, for debug logs
func (e Entry) String() string {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p.Sprint(e)
}

// Listing is the result of List. An empty trash is a valid Listing, not an
// error.
type Listing struct {
	Entries []Entry

	// Skipped holds one error per record that could not be decoded
	Skipped []error
}

// IsEmpty reports that no valid record was found
func (l Listing) IsEmpty() bool {
	return len(l.Entries) == 0
}

// List decodes every record. Directories come before files, then entries
// are ordered by original path.
func (e *Engine) List() (Listing, error) {
	slog.Debug("drash.list started")
	defer slog.Debug("drash.list finished")

	records, err := e.scanRecords("list")
	if err != nil {
		return Listing{}, err
	}

	var l Listing
	for _, r := range records {
		if r.err != nil {
			slog.Warn("skipped unreadable record", "name", r.name, "error", r.err)
			l.Skipped = append(l.Skipped, r.err)
			continue
		}
		l.Entries = append(l.Entries, e.entry(target{name: r.name, rec: r.rec, hasRecord: true}, r.modTime))
	}
	sortEntries(l.Entries)
	return l, nil
}

// Candidates returns the original paths of the trashed entries that pass
// the engine's filter, in List order, for a Selector to choose from.
func (e *Engine) Candidates() ([]string, error) {
	l, err := e.List()
	if err != nil {
		return nil, err
	}
	entries := l.Entries
	if e.filter != nil {
		entries = Filter(entries, *e.filter)
	}
	paths := make([]string, 0, len(entries))
	for _, ent := range entries {
		paths = append(paths, ent.OriginalPath)
	}
	return paths, nil
}

func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.Type.IsDir() != b.Type.IsDir() {
			if a.Type.IsDir() {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.OriginalPath, b.OriginalPath)
	})
}

type scannedRecord struct {
	name    string
	rec     Record
	modTime time.Time
	err     error
}

// scanRecords reads every .drashinfo file in info/. Decoding failures are
// kept per record; only an unreadable info/ directory fails the scan.
func (e *Engine) scanRecords(op string) ([]scannedRecord, error) {
	infos, err := afero.ReadDir(e.fs(), e.store.infoDir)
	if err != nil {
		return nil, ioError(op, e.store.infoDir, err)
	}

	var records []scannedRecord
	for _, fi := range infos {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), recordSuffix) {
			continue
		}
		if strings.HasPrefix(fi.Name(), "._") {
			// mac resource fork
			continue
		}
		r := scannedRecord{
			name:    strings.TrimSuffix(fi.Name(), recordSuffix),
			modTime: fi.ModTime(),
		}
		r.rec, r.err = e.store.readRecord(r.name)
		if r.err != nil {
			r.err = fmt.Errorf("%s: %w", fi.Name(), r.err)
		}
		records = append(records, r)
	}
	return records, nil
}

// dirSize returns the size of a file, or the total size of the regular files
// below a directory
func dirSize(fsys afero.Fs, path string) (int64, error) {
	var size int64
	err := afero.Walk(fsys, path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			size += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return size, nil
}
