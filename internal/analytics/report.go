package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fleetsight/fleetsight/internal/model"
)

// NoDataReport is the sentinel returned when a report is requested over an
// empty record set.
const NoDataReport = "No data available for AI report."

// NoRouteData is the top-routes value when no trip carries a route.
const NoRouteData = "N/A"

// ReportDocument is the structured form of the narrative report. Text holds
// the rendered multi-line summary; the remaining fields expose the same
// values for structured export.
type ReportDocument struct {
	TotalTrips       int     `json:"total_trips" yaml:"total_trips"`
	Ongoing          int     `json:"ongoing" yaml:"ongoing"`
	Completed        int     `json:"completed" yaml:"completed"`
	ProfitPct        float64 `json:"profit_pct" yaml:"profit_pct"`
	RevenueM         float64 `json:"revenue_m" yaml:"revenue_m"`
	ExpenseM         float64 `json:"expense_m" yaml:"expense_m"`
	ProfitM          float64 `json:"profit_m" yaml:"profit_m"`
	DistanceK        float64 `json:"distance_k" yaml:"distance_k"`
	ProfitPerKM      float64 `json:"profit_per_km" yaml:"profit_per_km"`
	TopVehicle       string  `json:"top_vehicle" yaml:"top_vehicle"`
	AvgProfitPerTrip float64 `json:"avg_profit_per_trip" yaml:"avg_profit_per_trip"`
	TopRoutes        string  `json:"top_routes" yaml:"top_routes"`
	Text             string  `json:"text" yaml:"text"`
}

// Report composes the narrative summary over the record set. The field
// order of the rendered text is a stable contract for downstream parsing.
func Report(trips []model.Trip) string {
	return BuildReport(trips).Text
}

// BuildReport derives the structured report. An empty input yields a
// zero-valued document whose Text is the NoDataReport sentinel; no
// superlative lookups are attempted.
func BuildReport(trips []model.Trip) ReportDocument {
	if len(trips) == 0 {
		return ReportDocument{Text: NoDataReport}
	}

	counts := Classify(trips)
	r := Summarize(trips)

	routes := TopRoutes(trips, 2)
	topRoutes := NoRouteData
	if len(routes) > 0 {
		topRoutes = strings.Join(routes, ", ")
	}

	doc := ReportDocument{
		TotalTrips:       counts.Total,
		Ongoing:          counts.Ongoing,
		Completed:        counts.Closed,
		ProfitPct:        r.ProfitPct,
		RevenueM:         r.RevenueM,
		ExpenseM:         r.ExpenseM,
		ProfitM:          r.ProfitM,
		DistanceK:        r.DistanceK,
		ProfitPerKM:      r.ProfitPerKM,
		TopVehicle:       TopVehicle(trips),
		AvgProfitPerTrip: round2(r.Profit / float64(len(trips))),
		TopRoutes:        topRoutes,
	}
	doc.Text = renderReport(doc)
	return doc
}

func renderReport(d ReportDocument) string {
	var b strings.Builder
	b.WriteString("AI Report Highlights:\n\n")
	fmt.Fprintf(&b, "Total Trips: %d\n", d.TotalTrips)
	fmt.Fprintf(&b, "On-going Trips: %d\n", d.Ongoing)
	fmt.Fprintf(&b, "Completed Trips: %d\n", d.Completed)
	fmt.Fprintf(&b, "Profit Percentage: %s%%\n\n", trimFloat(d.ProfitPct))
	b.WriteString("Financials:\n")
	fmt.Fprintf(&b, "- Revenue: ₹%sM\n", trimFloat(d.RevenueM))
	fmt.Fprintf(&b, "- Expense: ₹%sM\n", trimFloat(d.ExpenseM))
	fmt.Fprintf(&b, "- Profit: ₹%sM\n", trimFloat(d.ProfitM))
	fmt.Fprintf(&b, "- KMs Travelled: %sK\n", trimFloat(d.DistanceK))
	fmt.Fprintf(&b, "- Cost per KM: ₹%s\n\n", trimFloat(d.ProfitPerKM))
	b.WriteString("Insights:\n")
	fmt.Fprintf(&b, "- Top Vehicle: %s\n", d.TopVehicle)
	fmt.Fprintf(&b, "- Average Profit per Trip: ₹%s\n", trimFloat(d.AvgProfitPerTrip))
	fmt.Fprintf(&b, "- Top Routes: %s\n", d.TopRoutes)
	return b.String()
}

// TopVehicle returns the vehicle identifier with the highest summed net
// profit. Ties resolve to the lexicographically smaller identifier so the
// result does not depend on map iteration order.
func TopVehicle(trips []model.Trip) string {
	profits := make(map[string]float64)
	for _, t := range trips {
		profits[t.VehicleID] += t.NetProfit
	}

	best := ""
	first := true
	for id, p := range profits {
		if first || p > profits[best] || (p == profits[best] && id < best) {
			best = id
			first = false
		}
	}
	return best
}

// TopRoutes returns up to n route values ordered by descending frequency,
// ties broken lexicographically. Empty route values are ignored.
func TopRoutes(trips []model.Trip, n int) []string {
	freq := make(map[string]int)
	for _, t := range trips {
		if t.Route != "" {
			freq[t.Route]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	routes := make([]string, 0, len(freq))
	for r := range freq {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		if freq[routes[i]] != freq[routes[j]] {
			return freq[routes[i]] > freq[routes[j]]
		}
		return routes[i] < routes[j]
	})

	if len(routes) > n {
		routes = routes[:n]
	}
	return routes
}

// trimFloat formats a float without trailing zeros, matching how the
// rounded aggregate values read in the report (38.2, 0.17, 0).
func trimFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
