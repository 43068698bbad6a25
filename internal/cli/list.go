package cli

import (
	"fmt"
	"log/slog"

	"github.com/babarot/drash/internal/drash"
	"github.com/babarot/drash/internal/ui/table"
)

func (c CLI) List() error {
	slog.Debug("cli.list started")
	defer slog.Debug("cli.list finished")

	l, err := c.engine.List()
	if err != nil {
		return err
	}
	for _, skipped := range l.Skipped {
		fmt.Fprintf(c.stderr, "warning: %v\n", skipped)
	}

	entries := drash.Filter(l.Entries, c.config.View.FilterOptions())
	if len(entries) == 0 {
		fmt.Fprintln(c.stdout, "drashcan is empty")
		return nil
	}

	table.PrintEntries(c.stdout, entries, table.PrintOptions{
		RelativeTime: c.config.UI.TimeFormat == "relative",
	})
	return nil
}
