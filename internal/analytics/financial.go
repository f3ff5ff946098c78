package analytics

import (
	"fmt"
	"sort"

	"github.com/fleetsight/fleetsight/internal/model"
)

// recentDayWindow caps how many trailing days the financial overview shows.
const recentDayWindow = 10

// FinancialOverview summarizes the closure record set for the financial
// dashboard: per-day revenue/expense/profit bars over the most recent days
// present in the data, plus the scaled whole-set totals. Per-day profit is
// revenue minus expense; the whole-set totals trust the net profit field.
type FinancialOverview struct {
	DayLabels []string `json:"day_labels"`
	Revenue   []int    `json:"revenue"`
	Expense   []int    `json:"expense"`
	Profit    []int    `json:"profit"`

	TotalRevenueM  float64 `json:"total_revenue_m"`
	TotalProfitM   float64 `json:"total_profit_m"`
	TotalDistanceK float64 `json:"total_distance_k"`
}

// BuildFinancialOverview aggregates closure records by day-of-month over
// the last ten distinct days present, in ascending day order. Records
// without a derived day are excluded from the bars but still feed the
// totals.
func BuildFinancialOverview(closures []model.Trip) FinancialOverview {
	days := recentDays(closures, recentDayWindow)

	revByDay := make(map[int]float64)
	expByDay := make(map[int]float64)
	for _, t := range closures {
		if !t.HasDay() {
			continue
		}
		revByDay[t.Day] += t.Freight
		expByDay[t.Day] += t.Expense
	}

	o := FinancialOverview{
		DayLabels: make([]string, len(days)),
		Revenue:   make([]int, len(days)),
		Expense:   make([]int, len(days)),
		Profit:    make([]int, len(days)),
	}
	for i, d := range days {
		o.DayLabels[i] = fmt.Sprintf("Day %d", d)
		o.Revenue[i] = int(revByDay[d])
		o.Expense[i] = int(expByDay[d])
		o.Profit[i] = o.Revenue[i] - o.Expense[i]
	}

	r := Summarize(closures)
	o.TotalRevenueM = r.RevenueM
	o.TotalProfitM = r.ProfitM
	o.TotalDistanceK = r.DistanceK

	return o
}

// recentDays returns the last n distinct day-of-month values present in
// the set, ascending.
func recentDays(trips []model.Trip, n int) []int {
	seen := make(map[int]struct{})
	var days []int
	for _, t := range trips {
		if !t.HasDay() {
			continue
		}
		if _, ok := seen[t.Day]; ok {
			continue
		}
		seen[t.Day] = struct{}{}
		days = append(days, t.Day)
	}
	sort.Ints(days)
	if len(days) > n {
		days = days[len(days)-n:]
	}
	return days
}
