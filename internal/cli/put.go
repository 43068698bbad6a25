package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/babarot/drash/internal/drash"
	"github.com/babarot/drash/internal/ui"
	"github.com/samber/lo"
)

// Put trashes args, or deletes them for good with -f. Without args the
// entries of the working directory are offered for selection.
func (c CLI) Put(args []string) error {
	slog.Debug("cli.put started", "force", c.option.Force)
	defer slog.Debug("cli.put finished")

	if len(args) == 0 {
		picked, err := c.selectWorkDir()
		if err != nil {
			if errors.Is(err, ui.ErrCanceled) {
				return nil
			}
			return err
		}
		args = picked
	}
	if len(args) == 0 {
		return nil
	}

	var results []drash.ItemResult
	verb := "trashed"
	if c.option.Force {
		results, verb = c.engine.DestroyAll(args), "deleted"
	} else {
		results = c.engine.PutAll(args)
	}
	ui.PrintResults(c.stderr, verb, results, false)
	return drash.Failures(results)
}

func (c CLI) selectWorkDir() ([]string, error) {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read working directory: %w", err)
	}
	if len(entries) == 0 {
		return nil, errors.New("too few arguments: working directory is empty")
	}
	names := lo.Map(entries, func(e os.DirEntry, _ int) string {
		return e.Name()
	})

	prompt := "put"
	if c.option.Force {
		prompt = "delete permanently"
	}
	return c.selector.Select(prompt, "", names)
}
