// Package analytics derives operational and financial metrics from
// in-memory trip records: filtered totals, day-of-month series, monetary
// rollups, status breakdowns, and the narrative summary. Every function is
// a pure, synchronous computation over its input slice; nothing here
// mutates records or performs I/O, so concurrent callers need no locking.
package analytics

import (
	"sort"

	"github.com/fleetsight/fleetsight/internal/model"
)

// Dataset holds the two record collections the engine operates on. Both are
// loaded once at startup and treated as read-only for the process lifetime.
type Dataset struct {
	Trips    []model.Trip
	Closures []model.Trip
}

// Vehicles returns the sorted distinct vehicle identifiers in the set.
func Vehicles(trips []model.Trip) []string {
	return distinct(trips, func(t model.Trip) string { return t.VehicleID })
}

// RouteNames returns the sorted distinct non-empty route values in the set.
func RouteNames(trips []model.Trip) []string {
	return distinct(trips, func(t model.Trip) string { return t.Route })
}

func distinct(trips []model.Trip, key func(model.Trip) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range trips {
		k := key(t)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
