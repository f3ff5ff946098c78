package model

import "time"

// TripStatus is the lifecycle tag of a trip. The classifier recognizes
// exactly the three named tags; anything else counts only toward totals.
type TripStatus string

const (
	StatusPendingClosure TripStatus = "Pending Closure"
	StatusCompleted      TripStatus = "Completed"
	StatusUnderAudit     TripStatus = "Under Audit"
)

// PODStatus is the proof-of-delivery tag on a trip.
type PODStatus string

const (
	PODYes PODStatus = "Yes"
	PODNo  PODStatus = "No"
)

// Trip is one row of fleet activity. Date is nil when the source cell was
// blank or unparseable; Day is derived from Date and is 0 when Date is nil.
// Such trips are excluded from day-bucketed series but still count toward
// totals and sums.
type Trip struct {
	ID         string     `json:"trip_id"`
	VehicleID  string     `json:"vehicle_id"`
	Route      string     `json:"route,omitempty"`
	Date       *time.Time `json:"trip_date,omitempty"`
	Day        int        `json:"day,omitempty"`
	Status     TripStatus `json:"trip_status"`
	POD        PODStatus  `json:"pod_status,omitempty"`
	Freight    float64    `json:"freight_amount"`
	Expense    float64    `json:"total_trip_expense"`
	NetProfit  float64    `json:"net_profit"`
	DistanceKM float64    `json:"actual_distance_km"`
}

// HasDay reports whether the trip carries a derived day-of-month.
func (t Trip) HasDay() bool {
	return t.Day >= 1 && t.Day <= 31
}
