package drash

import "errors"

// Error kinds. Every error returned by the engine matches exactly one of
// these with errors.Is.
var (
	// ErrNotFound is returned when the entry to trash, or the trashed entry
	// named by an identifier, does not exist
	ErrNotFound = errors.New("no such file or directory")

	// ErrConflict is returned when a restore destination is occupied and the
	// caller gave no way to resolve it
	ErrConflict = errors.New("destination already exists")

	// ErrIO covers permission, cross-device, disk-full and mkdir failures
	ErrIO = errors.New("i/o failure")

	// ErrParse is returned for a malformed .drashinfo record
	ErrParse = errors.New("malformed record")

	// ErrEmptyTrash reports that there is nothing in the trash. It is a
	// status rather than a failure.
	ErrEmptyTrash = errors.New("drashcan is empty")

	// ErrUnsafePath is returned when asked to trash ".", ".." or the root
	ErrUnsafePath = errors.New("refusing to trash unsafe path")
)

// Error wraps a failure with the operation and path it concerns.
type Error struct {
	// Op is the operation that failed (e.g. "put", "restore", "remove")
	Op string

	// Path is the path the operation was working on
	Path string

	// Kind is one of the Err* sentinels of this package
	Kind error

	// Err is the underlying cause, may be nil
	Err error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": " + e.Kind.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op, path string, kind, err error) error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}

// ioError reports a failed filesystem mutation. The cause stays reachable,
// so errors.Is(err, fs.ErrNotExist) still works on the result.
func ioError(op, path string, err error) error {
	return newError(op, path, ErrIO, err)
}

// IsNotFound returns true if the error is ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIO returns true if the error is ErrIO
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsParse returns true if the error is ErrParse
func IsParse(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsEmptyTrash returns true if the error is ErrEmptyTrash
func IsEmptyTrash(err error) bool {
	return errors.Is(err, ErrEmptyTrash)
}

// IsConflict returns true if the error is ErrConflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
