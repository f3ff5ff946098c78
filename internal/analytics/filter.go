package analytics

import "github.com/fleetsight/fleetsight/internal/model"

// Filter returns the trips matching the given selectors. Selectors compose
// conjunctively; an empty selector matches everything, so Filter(trips, "",
// "") returns the input unchanged. Matching is exact and case-sensitive. A
// selector value absent from the data yields an empty result, not an error.
func Filter(trips []model.Trip, vehicle, route string) []model.Trip {
	if vehicle == "" && route == "" {
		return trips
	}
	var out []model.Trip
	for _, t := range trips {
		if vehicle != "" && t.VehicleID != vehicle {
			continue
		}
		if route != "" && t.Route != route {
			continue
		}
		out = append(out, t)
	}
	return out
}

// WithStatus returns the subset of trips carrying the given status tag.
func WithStatus(trips []model.Trip, status model.TripStatus) []model.Trip {
	var out []model.Trip
	for _, t := range trips {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
