package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRotateWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "debug.log")

	w, err := NewRotateWriter(path, "100B", 2)
	if err != nil {
		t.Fatalf("NewRotateWriter() error: %v", err)
	}
	defer w.Close()

	line := []byte(strings.Repeat("x", 60) + "\n")
	for i := 0; i < 5; i++ {
		if _, err := w.Write(line); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "debug.log.") {
			backups++
		}
	}
	if backups != 2 {
		t.Errorf("got %d rotated files, want 2", backups)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != int64(len(line)) {
		t.Errorf("current log size = %d, want %d", info.Size(), len(line))
	}
}

func TestRotateWriterInvalidSize(t *testing.T) {
	if _, err := NewRotateWriter(filepath.Join(t.TempDir(), "debug.log"), "lots", 1); err == nil {
		t.Error("expected error for invalid size")
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(UseOutput(&buf), UseLevel(WarnLevel), With("run_id", "abc"))

	logger.Info("hidden")
	logger.Warn("shown", "path", "/tmp/x")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record should be filtered at warn level: %q", out)
	}
	for _, want := range []string{"shown", "run_id", "abc", "/tmp/x"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": DebugLevel,
		"WARN":  WarnLevel,
		"error": ErrorLevel,
		"nope":  InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
