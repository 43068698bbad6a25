package config

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	sizeRe  = regexp.MustCompile(`^\d+(B|KB|MB|GB|TB|PB)$`)
	colorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
)

// validateSize validates the size format (e.g., "10MB", "1GB")
func validateSize(fl validator.FieldLevel) bool {
	return sizeRe.MatchString(strings.ToUpper(fl.Field().String()))
}

// validateLevel accepts the level names understood by the logger
func validateLevel(fl validator.FieldLevel) bool {
	value := strings.ToLower(fl.Field().String())
	return slices.Contains([]string{"debug", "info", "warn", "error", "fatal"}, value)
}

// validateColorCode checks if the field contains a valid hex color code.
func validateColorCode(fl validator.FieldLevel) bool {
	return colorRe.MatchString(fl.Field().String())
}

// validateTrashDir wants an absolute or "~/" prefixed path
func validateTrashDir(fl validator.FieldLevel) bool {
	path := strings.TrimSpace(fl.Field().String())
	return strings.HasPrefix(path, "~/") || filepath.IsAbs(path)
}

// expandPath expands "~" against home and cleans the result
func expandPath(path, home string) (string, error) {
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
