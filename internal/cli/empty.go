package cli

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize/english"
)

func (c CLI) Empty(yes bool) error {
	slog.Debug("cli.empty started", "yes", yes)
	defer slog.Debug("cli.empty finished")

	res, err := c.engine.Empty(yes)
	if err != nil {
		return err
	}

	switch {
	case res.AlreadyEmpty:
		fmt.Fprintln(c.stdout, "drashcan is already empty")
	case res.Declined:
		fmt.Fprintln(c.stdout, "Emptying canceled.")
	default:
		fmt.Fprintf(c.stdout, "Removed %s.\n", english.Plural(res.Count, "entry", "entries"))
	}
	return nil
}
