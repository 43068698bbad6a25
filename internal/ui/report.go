package ui

import (
	"fmt"
	"io"

	"github.com/babarot/drash/internal/drash"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// PrintResults reports a batch. Failures are always printed, successes and
// skips only when verbose.
func PrintResults(w io.Writer, verb string, results []drash.ItemResult, verbose bool) {
	green := color.New(color.FgHiGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgHiRed).SprintFunc()

	for _, r := range results {
		switch r.Outcome {
		case drash.OutcomeDone:
			if !verbose {
				continue
			}
			if r.Symlink {
				fmt.Fprintf(w, "%s unlinked symlink %s\n", green("✓"), r.Target)
				continue
			}
			fmt.Fprintf(w, "%s %s %s\n", green("✓"), verb, r.Target)
		case drash.OutcomeSkipped:
			if verbose {
				fmt.Fprintf(w, "%s skipped %s\n", yellow("-"), r.Target)
			}
		case drash.OutcomeFailed:
			fmt.Fprintf(w, "%s %s: %v\n", red("✗"), r.Target, r.Err)
		}
	}
}

// PrintCheck reports what Check found
func PrintCheck(w io.Writer, report drash.CheckReport) {
	green := color.New(color.FgHiGreen).SprintfFunc()
	white := color.New(color.FgWhite).SprintfFunc()
	yellow := color.New(color.FgYellow).SprintfFunc()

	if report.Clean() {
		fmt.Fprintln(w, green("drashcan is consistent"))
		return
	}

	if len(report.Orphaned) > 0 {
		fmt.Fprintln(w, yellow("Records without payload (%d):", len(report.Orphaned)))
		for _, e := range report.Orphaned {
			when := "-"
			if !e.TrashedAt.IsZero() {
				when = humanize.Time(e.TrashedAt)
			}
			fmt.Fprintf(w, "  %s %s %s\n",
				white("%-20s", e.Name),
				white("%-16s", when),
				e.OriginalPath,
			)
		}
	}
	if len(report.Untracked) > 0 {
		fmt.Fprintln(w, yellow("Payloads without record (%d):", len(report.Untracked)))
		for _, name := range report.Untracked {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(report.Corrupt) > 0 {
		fmt.Fprintln(w, yellow("Unreadable records (%d):", len(report.Corrupt)))
		for _, c := range report.Corrupt {
			fmt.Fprintf(w, "  %s: %v\n", white("%s", c.Name), c.Err)
		}
	}
}
