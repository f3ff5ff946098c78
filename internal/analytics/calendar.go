package analytics

import "github.com/fleetsight/fleetsight/internal/model"

// DaysInSeries is the fixed length of every day-of-month series: index 0
// holds day 1, index 30 holds day 31, regardless of month or year.
const DaysInSeries = 31

// DailyCounts buckets trips by day-of-month into a dense 31-slot series.
// Days with no trips stay 0. Trips without a derived day are excluded from
// this series (they still count toward whole-set totals elsewhere).
func DailyCounts(trips []model.Trip) []int {
	counts := make([]int, DaysInSeries)
	for _, t := range trips {
		if !t.HasDay() {
			continue
		}
		counts[t.Day-1]++
	}
	return counts
}

// PercentSeries computes 100*numerator[i]/denominator[i] position-wise,
// rounded to one decimal place. Positions with a zero denominator resolve
// to 0 rather than dividing. The result has the denominator's length.
func PercentSeries(numerator, denominator []int) []float64 {
	pct := make([]float64, len(denominator))
	for i, d := range denominator {
		if i >= len(numerator) || d == 0 {
			continue
		}
		pct[i] = round1(float64(numerator[i]) / float64(d) * 100)
	}
	return pct
}
