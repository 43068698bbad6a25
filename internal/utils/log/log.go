package log

import (
	"fmt"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const levelWidth = 5

// DefaultStyles returns charm's styles with fixed-width colored levels
func DefaultStyles() *Styles {
	styles := charmlog.DefaultStyles()
	for _, ls := range levelStyles {
		styles.Levels[ls.level] = ls.style.SetString(fmt.Sprintf("%-*s", levelWidth, strings.ToUpper(ls.level.String())))
	}
	return styles
}

// New creates a new logger with the given options
func New(opts ...Option) *slog.Logger {
	o := DefaultOptions()
	o.Apply(opts...)

	if o.OutputFunc != nil {
		if w, err := o.OutputFunc(); err == nil {
			o.Writer = w
		}
	}

	handler := charmlog.NewWithOptions(o.Writer, o.Options)
	handler.SetStyles(o.Styles)

	logger := slog.New(handler)
	if len(o.Attrs) > 0 {
		logger = logger.With(o.Attrs...)
	}

	if o.Default {
		slog.SetDefault(logger)
	}

	return logger
}
