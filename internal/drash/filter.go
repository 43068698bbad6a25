package drash

import (
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/docker/go-units"
	"github.com/gobwas/glob"
	"github.com/k1LoW/duration"
	"github.com/samber/lo"
)

// Filterable is implemented by anything Filter can narrow down
type Filterable interface {
	// GetName returns the base name the entry had before it was trashed
	GetName() string
	// GetPath returns the original path
	GetPath() string
	// GetDeletedAt returns when the entry was trashed
	GetDeletedAt() time.Time
	// GetSize returns the payload size in bytes
	GetSize() int64
}

// FilterOptions hides entries from listings and selection. Nothing is
// deleted by filtering.
type FilterOptions struct {
	// WithinDays keeps only entries trashed in the last n days, 0 keeps all
	WithinDays int

	ExcludeNames    []string
	ExcludePatterns []string
	ExcludeGlobs    []string

	// MinSize and MaxSize are human sizes like "10KB" or "1GB"
	MinSize string
	MaxSize string
}

// Filter applies the rules of opts to items, preserving order
func Filter[T Filterable](items []T, opts FilterOptions) []T {
	items = rejectByNames(items, opts.ExcludeNames)
	items = rejectByPatterns(items, opts.ExcludePatterns)
	items = rejectByGlobs(items, opts.ExcludeGlobs)
	items = rejectBySize(items, opts.MinSize, opts.MaxSize)
	items = filterByPeriod(items, opts.WithinDays)
	return items
}

func rejectByNames[T Filterable](items []T, names []string) []T {
	if len(names) == 0 {
		return items
	}
	return lo.Reject(items, func(item T, _ int) bool {
		return lo.Contains(names, item.GetName())
	})
}

func rejectByPatterns[T Filterable](items []T, patterns []string) []T {
	if len(patterns) == 0 {
		return items
	}
	var res []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			slog.Warn("ignoring invalid exclude pattern", "pattern", p, "error", err)
			continue
		}
		res = append(res, re)
	}
	return lo.Reject(items, func(item T, _ int) bool {
		return lo.SomeBy(res, func(re *regexp.Regexp) bool {
			return re.MatchString(item.GetName())
		})
	})
}

func rejectByGlobs[T Filterable](items []T, globs []string) []T {
	if len(globs) == 0 {
		return items
	}
	var gs []glob.Glob
	for _, pattern := range globs {
		g, err := glob.Compile(pattern)
		if err != nil {
			slog.Warn("ignoring invalid exclude glob", "glob", pattern, "error", err)
			continue
		}
		gs = append(gs, g)
	}
	return lo.Reject(items, func(item T, _ int) bool {
		return lo.SomeBy(gs, func(g glob.Glob) bool {
			return g.Match(item.GetName())
		})
	})
}

func rejectBySize[T Filterable](items []T, minSize, maxSize string) []T {
	if minSize == "" && maxSize == "" {
		return items
	}
	lower, upper := int64(-1), int64(-1)
	if minSize != "" {
		if n, err := units.FromHumanSize(minSize); err == nil {
			lower = n
		}
	}
	if maxSize != "" {
		if n, err := units.FromHumanSize(maxSize); err == nil {
			upper = n
		}
	}
	return lo.Reject(items, func(item T, _ int) bool {
		size := item.GetSize()
		if lower >= 0 && size <= lower {
			return true
		}
		return upper >= 0 && upper <= size
	})
}

func filterByPeriod[T Filterable](items []T, days int) []T {
	if days <= 0 {
		return items
	}

	d, err := duration.Parse(fmt.Sprintf("%d days", days))
	if err != nil {
		slog.Error("failed to parse duration", "error", err)
		return items
	}

	return lo.Filter(items, func(item T, _ int) bool {
		return time.Since(item.GetDeletedAt()) < d
	})
}
