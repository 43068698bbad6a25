package table

import (
	"fmt"
	"io"
	"time"

	"github.com/babarot/drash/internal/drash"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

const (
	timeFormat = "2006-01-02 15:04:05"
)

type PrintOptions struct {
	// RelativeTime prints "3 hours ago" instead of a timestamp
	RelativeTime bool
}

// PrintEntries writes entries as a psql-like table followed by the total
func PrintEntries(w io.Writer, entries []drash.Entry, opts PrintOptions) {
	dir := color.New(color.FgHiBlue, color.Bold).SprintFunc()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Trashed", "Size", "Type", "Path"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
	table.SetCenterSeparator("+")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")

	for _, e := range entries {
		typ := string(e.Type)
		if e.Type.IsDir() {
			typ = dir(typ)
		}
		table.Append([]string{
			trashedAt(e.TrashedAt, opts.RelativeTime),
			humanize.Bytes(uint64(e.Size)),
			typ,
			e.OriginalPath,
		})
	}
	table.Render()

	fmt.Fprintf(w, "\nTotal entries: %d\n", len(entries))
}

func trashedAt(t time.Time, relative bool) string {
	switch {
	case t.IsZero():
		return "-"
	case relative:
		return humanize.Time(t)
	default:
		return t.Format(timeFormat)
	}
}
