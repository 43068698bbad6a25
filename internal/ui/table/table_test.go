package table

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/babarot/drash/internal/drash"
	"github.com/fatih/color"
)

func TestPrintEntries(t *testing.T) {
	color.NoColor = true

	trashed := time.Date(2024, time.March, 7, 14, 5, 0, 0, time.Local)
	entries := []drash.Entry{
		{OriginalPath: "/home/u/dir", Type: drash.TypeDirectory, TrashedAt: trashed, Size: 2048},
		{OriginalPath: "/home/u/notes.txt", Type: drash.TypeFile, TrashedAt: trashed, Size: 12},
	}

	var buf bytes.Buffer
	PrintEntries(&buf, entries, PrintOptions{})
	out := buf.String()

	for _, want := range []string{
		"Trashed", "Size", "Type", "Path",
		"2024-03-07 14:05:00",
		"/home/u/dir", "directory", "2.0 kB",
		"/home/u/notes.txt", "file", "12 B",
		"Total entries: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "/home/u/dir") > strings.Index(out, "/home/u/notes.txt") {
		t.Errorf("entries were reordered:\n%s", out)
	}
}

func TestPrintEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintEntries(&buf, nil, PrintOptions{RelativeTime: true})
	if !strings.Contains(buf.String(), "Total entries: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestTrashedAt(t *testing.T) {
	if got := trashedAt(time.Time{}, true); got != "-" {
		t.Errorf("trashedAt(zero) = %q", got)
	}
	if got := trashedAt(time.Now().Add(-3*time.Hour), true); got != "3 hours ago" {
		t.Errorf("trashedAt(relative) = %q", got)
	}
}
