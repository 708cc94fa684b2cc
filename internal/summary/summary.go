// Package summary handles display of run results and skipped paths
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs how many documents were written and how long it took
func DisplayResults(logger Logger, documents int, duration time.Duration) {
	logger.Info("Wrote %d documents.", documents)
	logger.Info("Done in %v.", duration.Round(time.Millisecond))
}

// CountByReason tallies skipped items per reason
func CountByReason(items []walker.SkippedItem) map[walker.SkippedReason]int {
	counts := make(map[walker.SkippedReason]int)
	for _, item := range items {
		counts[item.Reason]++
	}
	return counts
}

// DisplaySkippedItems writes one line per skipped path to output, sorted by
// path, followed by a per-reason tally on the logger
func DisplaySkippedItems(logger Logger, items []walker.SkippedItem, output io.Writer) {
	sorted := make([]walker.SkippedItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	logger.Info("--- Skipped Items (%d) ---", len(sorted))
	if len(sorted) == 0 {
		logger.Info("No items were skipped.")
		return
	}

	for _, item := range sorted {
		kind := "FILE"
		if item.IsDir {
			kind = "DIR "
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n", kind, item.Path, item.Reason)
	}

	counts := CountByReason(sorted)
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		logger.Info("%-32s %d", reason, counts[walker.SkippedReason(reason)])
	}
}
