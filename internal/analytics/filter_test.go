package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetsight/fleetsight/internal/model"
)

func TestFilter(t *testing.T) {
	t.Parallel()
	trips := threeTrips()

	tests := []struct {
		name    string
		vehicle string
		route   string
		wantIDs []string
	}{
		{"no selectors returns all", "", "", []string{"T-001", "T-002", "T-003"}},
		{"by vehicle", "V1", "", []string{"T-001", "T-002"}},
		{"by route", "", "BOM-PUN", []string{"T-003"}},
		{"vehicle and route compose with AND", "V1", "DEL-BOM", []string{"T-001", "T-002"}},
		{"conflicting selectors yield empty", "V2", "DEL-BOM", nil},
		{"unknown vehicle yields empty, no error", "V9", "", nil},
		{"unknown route yields empty, no error", "", "NOWHERE", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Filter(trips, tt.vehicle, tt.route)
			var ids []string
			for _, tr := range got {
				ids = append(ids, tr.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterResultIsSubset(t *testing.T) {
	t.Parallel()
	trips := threeTrips()

	got := Filter(trips, "V1", "")
	require.NotEmpty(t, got)
	for _, tr := range got {
		assert.Equal(t, "V1", tr.VehicleID)
	}

	// Re-filtering by a different vehicle leaves nothing.
	assert.Empty(t, Filter(got, "V2", ""))
}

func TestFilterEmptyInput(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Filter(nil, "V1", ""))
	assert.Empty(t, Filter([]model.Trip{}, "", ""))
}

func TestWithStatus(t *testing.T) {
	t.Parallel()
	trips := threeTrips()

	audited := WithStatus(trips, model.StatusUnderAudit)
	require.Len(t, audited, 1)
	assert.Equal(t, "T-003", audited[0].ID)

	assert.Empty(t, WithStatus(trips, model.TripStatus("Cancelled")))
}
