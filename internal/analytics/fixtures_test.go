package analytics

import (
	"time"

	"github.com/fleetsight/fleetsight/internal/model"
)

func day(d int) *time.Time {
	t := time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// threeTrips is the canonical small fixture: two vehicles, three statuses,
// two days.
func threeTrips() []model.Trip {
	return []model.Trip{
		{
			ID: "T-001", VehicleID: "V1", Route: "DEL-BOM",
			Date: day(5), Day: 5,
			Status:  model.StatusCompleted,
			Freight: 100000, Expense: 60000, NetProfit: 40000, DistanceKM: 500,
		},
		{
			ID: "T-002", VehicleID: "V1", Route: "DEL-BOM",
			Date: day(5), Day: 5,
			Status:  model.StatusPendingClosure,
			Freight: 50000, Expense: 30000, NetProfit: 20000, DistanceKM: 200,
		},
		{
			ID: "T-003", VehicleID: "V2", Route: "BOM-PUN",
			Date: day(10), Day: 10,
			Status: model.StatusUnderAudit, POD: model.PODYes,
			Freight: 20000, Expense: 15000, NetProfit: 5000, DistanceKM: 100,
		},
	}
}
