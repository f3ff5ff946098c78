package analytics

import (
	"math"

	"github.com/fleetsight/fleetsight/internal/model"
)

// Rollup aggregates the monetary and distance fields of a record set and
// derives the ratios and scaled display forms downstream consumers expect.
// Revenue, Expense, Profit, and DistanceKM are the raw sums; the M/K fields
// are divided by 1e6 and 1e3 respectively.
type Rollup struct {
	Revenue    float64 `json:"revenue"`
	Expense    float64 `json:"expense"`
	Profit     float64 `json:"profit"`
	DistanceKM float64 `json:"distance_km"`

	// ProfitPct is 100*profit/revenue rounded to 1dp, 0 when revenue is 0.
	ProfitPct float64 `json:"profit_pct"`
	// ProfitPerKM is profit/distance rounded to 2dp, 0 when distance is 0.
	ProfitPerKM float64 `json:"profit_per_km"`

	RevenueM  float64 `json:"revenue_m"`
	ExpenseM  float64 `json:"expense_m"`
	ProfitM   float64 `json:"profit_m"`
	DistanceK float64 `json:"distance_k"`
}

// Summarize sums freight, expense, net profit, and distance over the record
// set. An empty set yields an all-zero rollup; the ratio guards make
// division by zero impossible.
func Summarize(trips []model.Trip) Rollup {
	var r Rollup
	for _, t := range trips {
		r.Revenue += t.Freight
		r.Expense += t.Expense
		r.Profit += t.NetProfit
		r.DistanceKM += t.DistanceKM
	}

	if r.Revenue != 0 {
		r.ProfitPct = round1(r.Profit / r.Revenue * 100)
	}
	if r.DistanceKM != 0 {
		r.ProfitPerKM = round2(r.Profit / r.DistanceKM)
	}

	r.RevenueM = round2(r.Revenue / 1e6)
	r.ExpenseM = round2(r.Expense / 1e6)
	r.ProfitM = round2(r.Profit / 1e6)
	r.DistanceK = round1(r.DistanceKM / 1e3)

	return r
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
