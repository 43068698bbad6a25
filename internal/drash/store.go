package drash

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	cp "github.com/otiai10/copy"
	"github.com/spf13/afero"
)

const (
	filesDirname = "files"
	infoDirname  = "info"

	dirPerm = 0700
)

// DefaultRoot returns the trash root under the given home directory
func DefaultRoot(home string) string {
	return filepath.Join(home, ".local", "share", "Drash")
}

// Store owns the on-disk layout of the trash: a root holding the files/
// (payloads) and info/ (records) directories.
type Store struct {
	root     string
	filesDir string
	infoDir  string

	fs          afero.Fs
	crossDevice bool
}

type StoreOption func(*Store)

// WithFs replaces the OS filesystem, mostly for tests.
func WithFs(fs afero.Fs) StoreOption {
	return func(s *Store) {
		s.fs = fs
	}
}

// WithCrossDevice lets Move fall back to copy-and-delete when a rename
// crosses filesystems. Only honoured on the OS filesystem.
func WithCrossDevice(allow bool) StoreOption {
	return func(s *Store) {
		s.crossDevice = allow
	}
}

// NewStore returns a Store rooted at root. The directories are not touched
// until EnsureLayout.
func NewStore(root string, opts ...StoreOption) (*Store, error) {
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("trash root must be an absolute path: %s", root)
	}
	root = filepath.Clean(root)
	s := &Store{
		root:     root,
		filesDir: filepath.Join(root, filesDirname),
		infoDir:  filepath.Join(root, infoDirname),
		fs:       afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// EnsureLayout creates the root, files/ and info/ directories if missing.
// It is idempotent.
func (s *Store) EnsureLayout() error {
	for _, dir := range []string{s.root, s.filesDir, s.infoDir} {
		if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
			return ioError("init", dir, err)
		}
	}
	return nil
}

func (s *Store) Root() string     { return s.root }
func (s *Store) FilesDir() string { return s.filesDir }
func (s *Store) InfoDir() string  { return s.infoDir }

// Fs is the filesystem the store operates on
func (s *Store) Fs() afero.Fs { return s.fs }

// PayloadPath is where the entry called name lives inside files/
func (s *Store) PayloadPath(name string) string {
	return filepath.Join(s.filesDir, name)
}

// RecordPath is the sidecar of the entry called name inside info/
func (s *Store) RecordPath(name string) string {
	return filepath.Join(s.infoDir, name+recordSuffix)
}

// lstat does not follow symlinks when the filesystem supports it
func (s *Store) lstat(path string) (os.FileInfo, error) {
	if l, ok := s.fs.(afero.Lstater); ok {
		fi, _, err := l.LstatIfPossible(path)
		return fi, err
	}
	return s.fs.Stat(path)
}

// exists reports whether anything, dangling symlinks included, is at path
func (s *Store) exists(path string) (bool, error) {
	_, err := s.lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// writeRecord creates the sidecar for name. It never appends to or
// truncates an existing record.
func (s *Store) writeRecord(name string, data []byte) error {
	path := s.RecordPath(name)
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Store) readRecord(name string) (Record, error) {
	data, err := afero.ReadFile(s.fs, s.RecordPath(name))
	if err != nil {
		return Record{}, err
	}
	return DecodeRecord(data)
}

// Move renames src to dst. Parent directories of dst are never created.
func (s *Store) Move(src, dst string) error {
	err := s.fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !s.crossDevice || !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if _, ok := s.fs.(*afero.OsFs); !ok {
		return err
	}

	slog.Debug("different partitions detected, falling back to copy-and-delete", "from", src, "to", dst)
	return copyAndDelete(src, dst)
}

// copyAndDelete copies a file or directory (recursively) and then deletes the original.
func copyAndDelete(src, dst string) error {
	opts := cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow
		},
		PreserveTimes: true,
		PreserveOwner: false,
		Sync:          true,
	}
	if err := cp.Copy(src, dst, opts); err != nil {
		_ = os.RemoveAll(dst)
		return fmt.Errorf("failed to copy across devices: %w", err)
	}
	if err := os.RemoveAll(src); err != nil {
		if rmErr := os.RemoveAll(dst); rmErr != nil {
			return fmt.Errorf("failed to remove both source and destination: %v, %v", err, rmErr)
		}
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return nil
}
