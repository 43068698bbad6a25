package drash

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/xid"
)

// PutResult describes what Put did with a path
type PutResult struct {
	// Name is the entry name inside the trash; empty for symlinks
	Name string

	// OriginalPath is the absolute path the entry came from
	OriginalPath string

	// Type is the kind of the trashed entry
	Type FileType

	// Symlink is set when path was a symbolic link and got unlinked
	// instead of trashed
	Symlink bool
}

// Put moves path into the trash. Symbolic links are deleted outright: moving
// one would change what a relative link points to.
//
// The record is written before the payload is moved. If the move fails the
// record stays behind as an orphan for Check to report.
func (e *Engine) Put(path string) (PutResult, error) {
	const op = "put"
	slog.Debug("drash.put started", "path", path)
	defer slog.Debug("drash.put finished", "path", path)

	if isUnsafePath(path) {
		return PutResult{}, newError(op, path, ErrUnsafePath, nil)
	}

	abs, err := e.absPath(path)
	if err != nil {
		return PutResult{}, newError(op, path, ErrIO, err)
	}
	if err := e.checkTrashable(abs); err != nil {
		return PutResult{}, newError(op, path, ErrUnsafePath, err)
	}

	fi, err := e.store.lstat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return PutResult{}, newError(op, path, ErrNotFound, nil)
		}
		return PutResult{}, ioError(op, path, err)
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		if err := e.fs().Remove(abs); err != nil {
			return PutResult{}, ioError(op, path, err)
		}
		slog.Info("removed symlink instead of trashing it", "path", abs)
		return PutResult{OriginalPath: abs, Symlink: true}, nil
	}

	name, err := e.entryName(filepath.Base(abs))
	if err != nil {
		return PutResult{}, ioError(op, path, err)
	}
	res := PutResult{
		Name:         name,
		OriginalPath: abs,
		Type:         fileTypeOf(fi.IsDir()),
	}

	if err := e.store.writeRecord(name, EncodeRecord(abs, fi.IsDir())); err != nil {
		return PutResult{}, ioError(op, e.store.RecordPath(name), err)
	}
	if err := e.store.Move(abs, e.store.PayloadPath(name)); err != nil {
		slog.Error("payload move failed after record was written",
			"record", e.store.RecordPath(name),
			"error", err,
		)
		return PutResult{}, ioError(op, path, err)
	}

	slog.Info("trashed", "from", abs, "name", name, "type", res.Type)
	return res, nil
}

// checkTrashable rejects paths a record cannot hold and paths the trash
// cannot be moved into
func (e *Engine) checkTrashable(abs string) error {
	if strings.ContainsAny(abs, "\r\n") {
		return errors.New("path contains a line break")
	}
	root := e.store.Root()
	if abs == root || strings.HasPrefix(root, abs+string(filepath.Separator)) {
		return fmt.Errorf("path contains the drashcan %s", root)
	}
	if strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return fmt.Errorf("path is inside the drashcan %s", root)
	}
	return nil
}

// entryName picks the name an entry is stored under. The base name is kept
// unless a record or payload already uses it, in which case a unique suffix
// is appended so that the earlier entry stays intact.
func (e *Engine) entryName(base string) (string, error) {
	name := base
	for {
		taken, err := e.nameTaken(name)
		if err != nil {
			return "", err
		}
		if !taken {
			return name, nil
		}
		name = base + "~" + xid.New().String()
		slog.Debug("entry name already in use", "base", base, "name", name)
	}
}

func (e *Engine) nameTaken(name string) (bool, error) {
	if ok, err := e.store.exists(e.store.PayloadPath(name)); ok || err != nil {
		return ok, err
	}
	return e.store.exists(e.store.RecordPath(name))
}

// Destroy deletes path permanently, bypassing the trash
func (e *Engine) Destroy(path string) error {
	const op = "destroy"
	if isUnsafePath(path) {
		return newError(op, path, ErrUnsafePath, nil)
	}
	abs, err := e.absPath(path)
	if err != nil {
		return newError(op, path, ErrIO, err)
	}
	fi, err := e.store.lstat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newError(op, path, ErrNotFound, nil)
		}
		return ioError(op, path, err)
	}
	if fi.IsDir() {
		err = e.fs().RemoveAll(abs)
	} else {
		err = e.fs().Remove(abs)
	}
	if err != nil {
		return ioError(op, path, err)
	}
	slog.Info("destroyed", "path", abs)
	return nil
}
