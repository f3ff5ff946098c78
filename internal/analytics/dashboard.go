package analytics

import "github.com/fleetsight/fleetsight/internal/model"

// Dashboard is the full derived view served to the owner dashboard: status
// buckets, financial rollup, the daily trips/audits series pair with the
// audit percentage line, the finance bar chart values, and the narrative
// report, all computed over the same filtered record set.
type Dashboard struct {
	Vehicle string `json:"vehicle,omitempty"`
	Route   string `json:"route,omitempty"`

	Counts StatusCounts `json:"counts"`
	Rollup Rollup       `json:"rollup"`

	Daily    []int     `json:"daily"`
	Audited  []int     `json:"audited"`
	AuditPct []float64 `json:"audit_pct"`

	BarLabels []string  `json:"bar_labels"`
	BarValues []float64 `json:"bar_values"`

	Report string `json:"report"`
}

// BuildDashboard filters the trip set by the optional vehicle and route
// selectors and derives every dashboard metric from the filtered set.
func BuildDashboard(trips []model.Trip, vehicle, route string) Dashboard {
	filtered := Filter(trips, vehicle, route)

	r := Summarize(filtered)
	daily := DailyCounts(filtered)
	audited := DailyCounts(WithStatus(filtered, model.StatusUnderAudit))

	return Dashboard{
		Vehicle:   vehicle,
		Route:     route,
		Counts:    Classify(filtered),
		Rollup:    r,
		Daily:     daily,
		Audited:   audited,
		AuditPct:  PercentSeries(audited, daily),
		BarLabels: []string{"Revenue", "Expense", "Profit"},
		BarValues: []float64{r.RevenueM, r.ExpenseM, r.ProfitM},
		Report:    Report(filtered),
	}
}

// TripStats is the day-of-month count breakdown by lifecycle bucket, with
// whole-set sums for the headline counters.
type TripStats struct {
	Total   []int `json:"total"`
	Ongoing []int `json:"ongoing"`
	Closed  []int `json:"closed"`

	TotalSum   int `json:"total_sum"`
	OngoingSum int `json:"ongoing_sum"`
	ClosedSum  int `json:"closed_sum"`
}

// BuildTripStats derives the trip-count statistics over the full trip set.
func BuildTripStats(trips []model.Trip) TripStats {
	s := TripStats{
		Total:   DailyCounts(trips),
		Ongoing: DailyCounts(WithStatus(trips, model.StatusPendingClosure)),
		Closed:  DailyCounts(WithStatus(trips, model.StatusCompleted)),
	}
	s.TotalSum = sum(s.Total)
	s.OngoingSum = sum(s.Ongoing)
	s.ClosedSum = sum(s.Closed)
	return s
}

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}
	return total
}
