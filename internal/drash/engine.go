// Package drash implements the trash engine: moving entries into the
// drashcan, listing, restoring and purging them.
package drash

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Identifier names a trashed entry: either its original path or Last.
type Identifier string

// Last selects the most recently trashed entry
const Last Identifier = "-"

// Engine implements the trash operations on top of a Store. It is not safe
// for concurrent use, and nothing guards the trash against other processes.
type Engine struct {
	store    *Store
	resolver ConflictResolver
	selector Selector
	filter   *FilterOptions
	getwd    func() (string, error)
}

type Option func(*Engine)

// WithResolver sets who answers overwrite and empty confirmations. Without
// one, restore conflicts fail with ErrConflict and Empty without force is
// declined.
func WithResolver(r ConflictResolver) Option {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithSelector sets who picks entries for Choose
func WithSelector(s Selector) Option {
	return func(e *Engine) {
		e.selector = s
	}
}

// WithFilter hides entries from Candidates, and so from selection
func WithFilter(opts FilterOptions) Option {
	return func(e *Engine) {
		e.filter = &opts
	}
}

// WithWorkDir overrides how relative paths given to Put are made absolute
func WithWorkDir(getwd func() (string, error)) Option {
	return func(e *Engine) {
		e.getwd = getwd
	}
}

// New creates an Engine and makes sure the store layout exists. A failure
// here means the trash is unusable.
func New(store *Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		store: store,
		getwd: os.Getwd,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := store.EnsureLayout(); err != nil {
		return nil, err
	}
	slog.Debug("drash engine ready", "root", store.Root())
	return e, nil
}

// Store returns the underlying store
func (e *Engine) Store() *Store {
	return e.store
}

func (e *Engine) fs() afero.Fs {
	return e.store.fs
}

// absPath makes path absolute against the working directory it was given in
func (e *Engine) absPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, err := e.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, path), nil
}

// isUnsafePath checks if the given path must never be trashed
func isUnsafePath(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return true
	}
	if filepath.Clean(path) == "/" {
		return true
	}
	return strings.HasPrefix(path, "//")
}

// target is a trashed entry located by an Identifier
type target struct {
	name      string
	rec       Record
	hasRecord bool
}

// resolve locates the entry named by id. A path matches records by their
// exact Path= first, then by base name; among several matches the most
// recently trashed one wins.
func (e *Engine) resolve(op string, id Identifier) (target, error) {
	if id == Last {
		return e.last(op)
	}
	if id == "" {
		return target{}, newError(op, "", ErrNotFound, errors.New("empty identifier"))
	}

	want := string(id)
	if filepath.IsAbs(want) {
		want = filepath.Clean(want)
	}
	base := filepath.Base(strings.TrimRight(want, string(filepath.Separator)))

	records, err := e.scanRecords(op)
	if err != nil {
		return target{}, err
	}

	var exact, byBase []scannedRecord
	for _, r := range records {
		if r.err != nil {
			continue
		}
		switch {
		case r.rec.OriginalPath == want:
			exact = append(exact, r)
		case filepath.Base(r.rec.OriginalPath) == base:
			byBase = append(byBase, r)
		}
	}
	for _, matches := range [][]scannedRecord{exact, byBase} {
		if len(matches) == 0 {
			continue
		}
		latest := slices.MaxFunc(matches, func(a, b scannedRecord) int {
			return a.modTime.Compare(b.modTime)
		})
		return target{name: latest.name, rec: latest.rec, hasRecord: true}, nil
	}

	// No readable record mentions it; fall back to the payload stored
	// under that very name.
	if ok, _ := e.store.exists(e.store.PayloadPath(base)); ok {
		return target{name: base}, nil
	}
	return target{}, newError(op, string(id), ErrNotFound, errors.New("not in drashcan"))
}

// last finds the entry whose payload was modified most recently
func (e *Engine) last(op string) (target, error) {
	infos, err := afero.ReadDir(e.fs(), e.store.filesDir)
	if err != nil {
		return target{}, ioError(op, e.store.filesDir, err)
	}
	if len(infos) == 0 {
		return target{}, newError(op, "", ErrEmptyTrash, nil)
	}

	latest := slices.MaxFunc(infos, func(a, b os.FileInfo) int {
		return a.ModTime().Compare(b.ModTime())
	})
	t := target{name: latest.Name()}
	rec, err := e.store.readRecord(t.name)
	if err != nil {
		slog.Warn("last trashed entry has no usable record", "name", t.name, "error", err)
		return t, nil
	}
	t.rec, t.hasRecord = rec, true
	return t, nil
}

// entry builds the public view of a located target
func (e *Engine) entry(t target, trashedAt time.Time) Entry {
	ent := Entry{
		Name:         t.name,
		OriginalPath: t.rec.OriginalPath,
		Type:         t.rec.Type,
		TrashedAt:    t.rec.TrashedAt,
	}
	if ent.TrashedAt.IsZero() {
		ent.TrashedAt = trashedAt
	}
	if size, err := dirSize(e.fs(), e.store.PayloadPath(t.name)); err == nil {
		ent.Size = size
	}
	return ent
}
