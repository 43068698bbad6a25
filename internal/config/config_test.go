package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/babarot/drash/internal/env"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		check   func(t *testing.T, cfg Config)
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			check: func(t *testing.T, cfg Config) {
				if cfg.UI.TimeFormat != "relative" {
					t.Errorf("TimeFormat = %q, want relative", cfg.UI.TimeFormat)
				}
				if cfg.Core.Logging.Rotation.MaxSize != "10MB" {
					t.Errorf("MaxSize = %q, want 10MB", cfg.Core.Logging.Rotation.MaxSize)
				}
				if cfg.Core.AllowCrossDevice {
					t.Error("AllowCrossDevice should default to false")
				}
			},
		},
		{
			name: "overrides",
			content: `
core:
  trash_dir: ~/.trash
  allow_cross_device: true
  logging:
    enabled: true
    level: debug
ui:
  time_format: absolute
view:
  include:
    within_days: 30
  exclude:
    globs: ["*.log"]
    size:
      min: 1KB
`,
			check: func(t *testing.T, cfg Config) {
				if cfg.Core.TrashDir != "~/.trash" {
					t.Errorf("TrashDir = %q", cfg.Core.TrashDir)
				}
				if !cfg.Core.AllowCrossDevice {
					t.Error("AllowCrossDevice should be true")
				}
				if !cfg.Core.Logging.Enabled || cfg.Core.Logging.Level != "debug" {
					t.Errorf("Logging = %+v", cfg.Core.Logging)
				}
				// untouched nested keys keep defaults
				if cfg.Core.Logging.Rotation.MaxFiles != 3 {
					t.Errorf("MaxFiles = %d, want 3", cfg.Core.Logging.Rotation.MaxFiles)
				}
				opts := cfg.View.FilterOptions()
				if opts.WithinDays != 30 || opts.MinSize != "1KB" || len(opts.ExcludeGlobs) != 1 {
					t.Errorf("FilterOptions() = %+v", opts)
				}
			},
		},
		{
			name:    "invalid size",
			content: "view:\n  exclude:\n    size:\n      max: 10 gigs\n",
			wantErr: "max",
		},
		{
			name:    "invalid level",
			content: "core:\n  logging:\n    level: verbose\n",
			wantErr: "level",
		},
		{
			name:    "invalid color",
			content: "ui:\n  cursor: purple\n",
			wantErr: "cursor",
		},
		{
			name:    "invalid time format",
			content: "ui:\n  time_format: iso\n",
			wantErr: "time_format",
		},
		{
			name:    "relative trash dir",
			content: "core:\n  trash_dir: trash\n",
			wantErr: "trash_dir",
		},
		{
			name:    "broken yaml",
			content: "core: [",
			wantErr: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(writeConfig(t, tt.content))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() expected error containing %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !strings.Contains(err.Error(), "Couldn't find") {
		t.Errorf("error should explain the missing file, got: %v", err)
	}
}

func TestParseCreatesDefault(t *testing.T) {
	orig := env.DRASH_CONFIG_PATH
	t.Cleanup(func() { env.DRASH_CONFIG_PATH = orig })

	env.DRASH_CONFIG_PATH = filepath.Join(t.TempDir(), "drash", "config.yaml")

	cfg, err := Parse("")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if _, err := os.Stat(env.DRASH_CONFIG_PATH); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
	if cfg.UI.Cursor != NewDefaultConfig().UI.Cursor {
		t.Errorf("Cursor = %q, want default", cfg.UI.Cursor)
	}
}

func TestTrashRoot(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{dir: "", want: "/home/u/.local/share/Drash"},
		{dir: "~/.trash", want: "/home/u/.trash"},
		{dir: "/var/tmp/trash/", want: "/var/tmp/trash"},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			got, err := Core{TrashDir: tt.dir}.TrashRoot("/home/u")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("TrashRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}
