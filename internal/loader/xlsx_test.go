package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/fleetsight/fleetsight/internal/model"
)

var tripHeader = []string{
	"Trip ID", "Vehicle ID", "Route", "Trip Date", "Trip Status", "POD Status",
	"Freight Amount", "Total Trip Expense", "Net Profit", "Actual Distance (KM)",
}

func createTestXLSX(t *testing.T, name string, sheets map[string][][]string) string {
	t.Helper()
	f := xlsx.NewFile()
	for sheetName, rows := range sheets {
		sheet, err := f.AddSheet(sheetName)
		require.NoError(t, err)
		for _, rowData := range rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.Save(path))
	return path
}

func TestLoadTrips(t *testing.T) {
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"T-001", "V1", "DEL-BOM", "2025-03-05", "Completed", "No", "100000", "60000", "40000", "500"},
			{"T-002", "V2", "BOM-PUN", "2025-03-10", "Under Audit", "Yes", "20000", "15000", "5000", "100"},
		},
	})

	trips, err := LoadTrips(path, Options{})
	require.NoError(t, err)
	require.Len(t, trips, 2)

	assert.Equal(t, "T-001", trips[0].ID)
	assert.Equal(t, "V1", trips[0].VehicleID)
	assert.Equal(t, "DEL-BOM", trips[0].Route)
	assert.Equal(t, model.StatusCompleted, trips[0].Status)
	assert.Equal(t, 5, trips[0].Day)
	require.NotNil(t, trips[0].Date)
	assert.InDelta(t, 100000, trips[0].Freight, 0.001)
	assert.InDelta(t, 500, trips[0].DistanceKM, 0.001)

	assert.Equal(t, model.StatusUnderAudit, trips[1].Status)
	assert.Equal(t, model.PODYes, trips[1].POD)
	assert.Equal(t, 10, trips[1].Day)
}

func TestLoadTripsTrimsHeaders(t *testing.T) {
	header := make([]string, len(tripHeader))
	for i, h := range tripHeader {
		header[i] = "  " + h + " "
	}
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			header,
			{"T-001", "V1", "", "2025-03-05", "Completed", "No", "1", "1", "0", "1"},
		},
	})

	trips, err := LoadTrips(path, Options{})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "T-001", trips[0].ID)
}

func TestLoadTripsMissingRequiredColumnIsFatal(t *testing.T) {
	// No "Vehicle ID" column at all.
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			{"Trip ID", "Route", "Trip Date", "Trip Status", "POD Status",
				"Freight Amount", "Total Trip Expense", "Net Profit", "Actual Distance (KM)"},
			{"T-001", "DEL-BOM", "2025-03-05", "Completed", "No", "1", "1", "0", "1"},
		},
	})

	_, err := LoadTrips(path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "Vehicle ID"`)
}

func TestLoadTripsRouteColumnIsOptional(t *testing.T) {
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			{"Trip ID", "Vehicle ID", "Trip Date", "Trip Status", "POD Status",
				"Freight Amount", "Total Trip Expense", "Net Profit", "Actual Distance (KM)"},
			{"T-001", "V1", "2025-03-05", "Completed", "No", "100", "50", "50", "10"},
		},
	})

	trips, err := LoadTrips(path, Options{})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Empty(t, trips[0].Route)
}

func TestLoadTripsToleratesBadDates(t *testing.T) {
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"T-001", "V1", "", "not-a-date", "Completed", "No", "100", "50", "50", "10"},
			{"T-002", "V1", "", "", "Completed", "No", "100", "50", "50", "10"},
		},
	})

	trips, err := LoadTrips(path, Options{})
	require.NoError(t, err)
	require.Len(t, trips, 2)
	for _, tr := range trips {
		assert.Nil(t, tr.Date)
		assert.False(t, tr.HasDay())
	}
}

func TestLoadTripsBlankNumericCellsAreZero(t *testing.T) {
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"T-001", "V1", "", "2025-03-05", "Pending Closure", "", "", "", "", ""},
		},
	})

	trips, err := LoadTrips(path, Options{})
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Zero(t, trips[0].Freight)
	assert.Zero(t, trips[0].Expense)
	assert.Zero(t, trips[0].NetProfit)
	assert.Zero(t, trips[0].DistanceKM)
}

func TestLoadTripsRejectsGarbageAmounts(t *testing.T) {
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"T-001", "V1", "", "2025-03-05", "Completed", "No", "lots", "50", "50", "10"},
		},
	})

	_, err := LoadTrips(path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Freight Amount"`)
}

func TestLoadTripsSkipsBlankRows(t *testing.T) {
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"", "", "", "", "", "", "", "", "", ""},
			{"T-001", "V1", "", "2025-03-05", "Completed", "No", "100", "50", "50", "10"},
		},
	})

	trips, err := LoadTrips(path, Options{})
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestLoadTripsSheetSelection(t *testing.T) {
	path := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Trips": {
			tripHeader,
			{"T-001", "V1", "", "2025-03-05", "Completed", "No", "100", "50", "50", "10"},
		},
	})

	trips, err := LoadTrips(path, Options{SheetName: "Trips"})
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	_, err = LoadTrips(path, Options{SheetName: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `sheet "Missing" not found`)
}

func TestLoadAll(t *testing.T) {
	fleet := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"T-001", "V1", "", "2025-03-05", "Completed", "No", "100", "50", "50", "10"},
		},
	})
	closure := createTestXLSX(t, "closure.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"C-001", "V1", "", "2025-03-06", "Completed", "Yes", "200", "80", "120", "20"},
			{"C-002", "V2", "", "2025-03-07", "Completed", "Yes", "300", "90", "210", "30"},
		},
	})

	ds, err := LoadAll(context.Background(), fleet, closure, Options{})
	require.NoError(t, err)
	assert.Len(t, ds.Trips, 1)
	assert.Len(t, ds.Closures, 2)
}

func TestLoadAllPropagatesErrors(t *testing.T) {
	fleet := createTestXLSX(t, "fleet.xlsx", map[string][][]string{
		"Sheet1": {
			tripHeader,
			{"T-001", "V1", "", "2025-03-05", "Completed", "No", "100", "50", "50", "10"},
		},
	})

	_, err := LoadAll(context.Background(), fleet, filepath.Join(t.TempDir(), "missing.xlsx"), Options{})
	require.Error(t, err)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantDay int
		ok      bool
	}{
		{"2025-03-05", 5, true},
		{"2025-03-05 14:30:00", 5, true},
		{"03/15/2025", 15, true},
		{"", 0, false},
		{"garbage", 0, false},
		{"45717", 1, true}, // Excel serial for 2025-03-01
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			d, ok := parseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.wantDay, d.Day())
			}
		})
	}
}
