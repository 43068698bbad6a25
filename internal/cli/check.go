package cli

import (
	"log/slog"

	"github.com/babarot/drash/internal/ui"
)

// Check reports inconsistencies left by interrupted operations. It does not
// repair anything and a dirty report is not an error.
func (c CLI) Check() error {
	slog.Debug("cli.check started")
	defer slog.Debug("cli.check finished")

	report, err := c.engine.Check()
	if err != nil {
		return err
	}
	ui.PrintCheck(c.stdout, report)
	return nil
}
