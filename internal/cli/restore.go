package cli

import (
	"log/slog"

	"github.com/babarot/drash/internal/drash"
	"github.com/babarot/drash/internal/ui"
)

func (c CLI) Restore(queries []string, overwrite bool) error {
	slog.Debug("cli.restore started", "queries", queries, "overwrite", overwrite)
	defer slog.Debug("cli.restore finished")

	ids, err := c.choose("restore", queries)
	if err != nil || len(ids) == 0 {
		return err
	}

	results := c.engine.RestoreAll(ids, overwrite)
	ui.PrintResults(c.stdout, "restored", results, c.config.Core.Restore.Verbose)
	return drash.Failures(results)
}

func (c CLI) Remove(queries []string) error {
	slog.Debug("cli.remove started", "queries", queries)
	defer slog.Debug("cli.remove finished")

	ids, err := c.choose("remove", queries)
	if err != nil || len(ids) == 0 {
		return err
	}

	results := c.engine.RemoveAll(ids)
	ui.PrintResults(c.stdout, "removed", results, c.config.Core.Restore.Verbose)
	return drash.Failures(results)
}
