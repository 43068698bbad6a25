package drash

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"
)

const (
	recordHeader = "[Drash-Info]"
	recordSuffix = ".drashinfo"

	pathKey     = "Path="
	fileTypeKey = "FileType="
	timeKey     = "Time="

	// legacyTimeFormat is how older drash releases stamped records,
	// e.g. "7 Mar, Thu 2024 14:05"
	legacyTimeFormat = "2 Jan, Mon 2006 15:04"
)

// FileType is the kind of a trashed entry
type FileType string

const (
	TypeFile      FileType = "file"
	TypeDirectory FileType = "directory"
)

func (t FileType) IsDir() bool {
	return t == TypeDirectory
}

func (t FileType) valid() bool {
	return t == TypeFile || t == TypeDirectory
}

func fileTypeOf(isDir bool) FileType {
	if isDir {
		return TypeDirectory
	}
	return TypeFile
}

// Record is the decoded contents of a .drashinfo sidecar
type Record struct {
	// OriginalPath is the absolute path the entry was trashed from
	OriginalPath string

	// Type tells whether the payload is a file or a directory
	Type FileType

	// TrashedAt is only set for records carrying a Time= line
	TrashedAt time.Time
}

// EncodeRecord renders the sidecar for an entry trashed from path.
func EncodeRecord(path string, isDir bool) []byte {
	var b bytes.Buffer
	fmt.Fprintln(&b, recordHeader)
	fmt.Fprintf(&b, "%s%s\n", pathKey, path)
	fmt.Fprintf(&b, "%s%s\n", fileTypeKey, fileTypeOf(isDir))
	return b.Bytes()
}

// DecodeRecord parses a sidecar. The first three lines are positional:
// header, Path= and FileType=. Anything after them is optional.
func DecodeRecord(data []byte) (Record, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return Record{}, newError("decode", "", ErrParse, err)
	}

	if len(lines) < 3 {
		return Record{}, parseError("expected at least 3 lines, got %d", len(lines))
	}
	if lines[0] != recordHeader {
		return Record{}, parseError("missing %s header", recordHeader)
	}

	path, ok := strings.CutPrefix(lines[1], pathKey)
	if !ok {
		return Record{}, parseError("missing Path field")
	}
	if path == "" {
		return Record{}, parseError("empty Path field")
	}

	ft, ok := strings.CutPrefix(lines[2], fileTypeKey)
	if !ok {
		return Record{}, parseError("missing FileType field")
	}
	if !FileType(ft).valid() {
		return Record{}, parseError("unknown FileType %q", ft)
	}

	rec := Record{
		OriginalPath: path,
		Type:         FileType(ft),
	}
	for _, line := range lines[3:] {
		if v, ok := strings.CutPrefix(line, timeKey); ok {
			if t, err := time.ParseInLocation(legacyTimeFormat, strings.TrimSpace(v), time.Local); err == nil {
				rec.TrashedAt = t
			}
		}
	}
	return rec, nil
}

func parseError(format string, args ...any) error {
	return newError("decode", "", ErrParse, fmt.Errorf(format, args...))
}
