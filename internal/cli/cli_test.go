package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/babarot/drash/internal/config"
	"github.com/babarot/drash/internal/drash"
	"github.com/babarot/drash/internal/ui"
	"github.com/fatih/color"
)

type testCLI struct {
	CLI
	work   string
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestCLI wires a CLI to a drashcan under t.TempDir(). answers is what
// the user types at confirmation prompts.
func newTestCLI(t *testing.T, opt Option, answers string) testCLI {
	t.Helper()
	color.NoColor = true

	work := t.TempDir()
	store, err := drash.NewStore(filepath.Join(t.TempDir(), "Drash"))
	if err != nil {
		t.Fatal(err)
	}

	cfg := *config.NewDefaultConfig()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	selector := ui.NewSelector(cfg.UI, strings.NewReader(""), stderr)
	engine, err := drash.New(store,
		drash.WithWorkDir(func() (string, error) { return work, nil }),
		drash.WithResolver(ui.NewResolver(strings.NewReader(answers), stderr)),
		drash.WithSelector(selector),
		drash.WithFilter(cfg.View.FilterOptions()),
	)
	if err != nil {
		t.Fatal(err)
	}

	return testCLI{
		CLI: CLI{
			option:   opt,
			config:   cfg,
			engine:   engine,
			selector: selector,
			stdout:   stdout,
			stderr:   stderr,
		},
		work:   work,
		stdout: stdout,
		stderr: stderr,
	}
}

func (c testCLI) touch(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(c.work, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPutAndList(t *testing.T) {
	c := newTestCLI(t, Option{}, "")
	a := c.touch(t, "a.txt", "a")
	c.touch(t, "dir/b.txt", "b")

	if err := c.Run("", []string{"a.txt", "dir"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if _, err := os.Stat(a); !os.IsNotExist(err) {
		t.Errorf("%s should be trashed", a)
	}

	if err := c.Run("list", nil); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	out := c.stdout.String()
	for _, want := range []string{a, filepath.Join(c.work, "dir"), "directory", "Total entries: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output does not contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "directory") > strings.Index(out, a) {
		t.Errorf("directories should be listed first:\n%s", out)
	}
}

func TestPutContinuesAfterFailure(t *testing.T) {
	c := newTestCLI(t, Option{}, "")
	b := c.touch(t, "b.txt", "b")

	err := c.Run("", []string{"missing.txt", "b.txt"})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !drash.IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
	if _, err := os.Stat(b); !os.IsNotExist(err) {
		t.Errorf("%s should be trashed despite the earlier failure", b)
	}
	if !strings.Contains(c.stderr.String(), "missing.txt") {
		t.Errorf("failure not reported: %s", c.stderr.String())
	}
}

func TestPutForce(t *testing.T) {
	c := newTestCLI(t, Option{Force: true}, "")
	a := c.touch(t, "a.txt", "a")

	if err := c.Run("", []string{"a.txt"}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(a); !os.IsNotExist(err) {
		t.Errorf("%s should be deleted", a)
	}
	l, err := c.engine.List()
	if err != nil {
		t.Fatal(err)
	}
	if !l.IsEmpty() {
		t.Errorf("-f must not trash, got %v", l.Entries)
	}
}

func TestRestore(t *testing.T) {
	c := newTestCLI(t, Option{}, "")
	notes := c.touch(t, "notes.txt", "hello")
	if err := c.Run("", []string{"notes.txt"}); err != nil {
		t.Fatal(err)
	}

	if err := c.Run("restore", []string{"notes.txt"}); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	data, err := os.ReadFile(notes)
	if err != nil || string(data) != "hello" {
		t.Errorf("restored content = %q, %v", data, err)
	}
	if !strings.Contains(c.stdout.String(), "restored "+notes) {
		t.Errorf("verbose restore output missing: %s", c.stdout.String())
	}
}

func TestRestoreConflictDeclined(t *testing.T) {
	c := newTestCLI(t, Option{}, "n\n")
	path := c.touch(t, "x.txt", "old")
	if err := c.Run("", []string{"x.txt"}); err != nil {
		t.Fatal(err)
	}
	c.touch(t, "x.txt", "new")

	if err := c.Run("restore", []string{"-"}); err != nil {
		t.Fatalf("declined restore should not fail: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("existing file was replaced: %q", data)
	}
	if !strings.Contains(c.stdout.String(), "skipped") {
		t.Errorf("skip not reported: %s", c.stdout.String())
	}
}

func TestRestoreOverwrite(t *testing.T) {
	c := newTestCLI(t, Option{Restore: RestoreCommand{Overwrite: true}}, "")
	path := c.touch(t, "x.txt", "old")
	if err := c.Run("", []string{"x.txt"}); err != nil {
		t.Fatal(err)
	}
	c.touch(t, "x.txt", "new")

	if err := c.Run("restore", []string{path}); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "old" {
		t.Errorf("content = %q, want the trashed version", data)
	}
}

func TestRestoreEmptyTrash(t *testing.T) {
	c := newTestCLI(t, Option{}, "")
	if err := c.Run("restore", nil); err != nil {
		t.Fatalf("empty drashcan is not an error: %v", err)
	}
	if !strings.Contains(c.stderr.String(), "drashcan is empty") {
		t.Errorf("stderr = %q", c.stderr.String())
	}
}

func TestRemoveLast(t *testing.T) {
	c := newTestCLI(t, Option{}, "")
	c.touch(t, "a.txt", "a")
	if err := c.Run("", []string{"a.txt"}); err != nil {
		t.Fatal(err)
	}

	if err := c.Run("remove", []string{"-"}); err != nil {
		t.Fatal(err)
	}
	l, err := c.engine.List()
	if err != nil {
		t.Fatal(err)
	}
	if !l.IsEmpty() {
		t.Errorf("entry should be removed, got %v", l.Entries)
	}
}

func TestEmpty(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		c := newTestCLI(t, Option{}, "y\n")
		c.touch(t, "a", "a")
		c.touch(t, "b", "b")
		if err := c.Run("", []string{"a", "b"}); err != nil {
			t.Fatal(err)
		}
		if err := c.Run("empty", nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(c.stdout.String(), "Removed 2 entries.") {
			t.Errorf("stdout = %q", c.stdout.String())
		}
	})

	t.Run("declined", func(t *testing.T) {
		c := newTestCLI(t, Option{}, "\n")
		c.touch(t, "a", "a")
		if err := c.Run("", []string{"a"}); err != nil {
			t.Fatal(err)
		}
		if err := c.Run("empty", nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(c.stdout.String(), "canceled") {
			t.Errorf("stdout = %q", c.stdout.String())
		}
	})

	t.Run("already empty", func(t *testing.T) {
		c := newTestCLI(t, Option{Empty: EmptyCommand{Yes: true}}, "")
		if err := c.Run("empty", nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(c.stdout.String(), "already empty") {
			t.Errorf("stdout = %q", c.stdout.String())
		}
	})
}

func TestCheck(t *testing.T) {
	c := newTestCLI(t, Option{}, "")
	if err := c.Run("check", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.stdout.String(), "consistent") {
		t.Errorf("stdout = %q", c.stdout.String())
	}
}

func TestVersion(t *testing.T) {
	v := Version{AppName: "drash", Version: "v1.2.3", Revision: "abc", BuildDate: "today"}
	out := v.Print()
	for _, want := range []string{"drash", "version: v1.2.3", "revision: abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("Print() does not contain %q:\n%s", want, out)
		}
	}
}
