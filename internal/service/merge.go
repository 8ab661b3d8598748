package service

import (
	"slices"

	"reliability_calc/internal/models"
)

type intervalKey struct {
	start, end int64
}

// Merge concatenates the given interval lists in order, drops exact
// (start, end) duplicates keeping the first occurrence, and sorts by start.
// Equal starts keep their order of first appearance, so manual entries
// passed first stay ahead of table rows. The inputs are not modified.
func Merge(sources ...[]models.FailureInterval) ([]models.FailureInterval, int) {
	total := 0
	for _, s := range sources {
		total += len(s)
	}
	out := make([]models.FailureInterval, 0, total)
	seen := make(map[intervalKey]struct{}, total)
	dups := 0
	for _, s := range sources {
		for _, iv := range s {
			k := intervalKey{start: iv.Start.Unix(), end: iv.End.Unix()}
			if _, ok := seen[k]; ok {
				dups++
				continue
			}
			seen[k] = struct{}{}
			out = append(out, iv)
		}
	}
	slices.SortStableFunc(out, func(a, b models.FailureInterval) int {
		return a.Start.Compare(b.Start)
	})
	return out, dups
}
