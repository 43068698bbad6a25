package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"
)

var (
	DRASH_CONFIG_PATH string

	DRASH_LOG_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")

	DRASH_CONFIG_PATH = ConfigPath()
	DRASH_LOG_PATH = LogPath()
}

// ConfigPath follows https://specifications.freedesktop.org/basedir-spec/latest/
// unless DRASH_CONFIG_PATH is set
func ConfigPath() string {
	if e := os.Getenv("DRASH_CONFIG_PATH"); e != "" {
		return e
	}
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", defaultXDGConfigDirname), "drash", "config.yaml")
}

// LogPath is where debug logs go unless DRASH_LOG_PATH is set
func LogPath() string {
	if e := os.Getenv("DRASH_LOG_PATH"); e != "" {
		return e
	}
	return filepath.Join(xdgDir("XDG_DATA_HOME", defaultXDGDataDirname), "drash", "debug.log")
}

func xdgDir(key, fallback string) string {
	if dir := os.Getenv(key); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// relative to the working directory as a last resort; the trash
		// root itself is resolved separately and fails hard
		return fallback
	}
	return filepath.Join(home, fallback)
}
