// Package loader reads Excel trip sheets into typed records. It owns the
// concerns the analytics engine explicitly does not: opening workbooks,
// trimming header names, checking that required columns exist, and parsing
// cell values with tolerance for blank or malformed dates.
package loader

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"golang.org/x/sync/errgroup"

	"github.com/fleetsight/fleetsight/internal/analytics"
	"github.com/fleetsight/fleetsight/internal/model"
)

// Column headers expected in a trip sheet, matched after trimming.
const (
	colTripID   = "Trip ID"
	colVehicle  = "Vehicle ID"
	colRoute    = "Route"
	colDate     = "Trip Date"
	colStatus   = "Trip Status"
	colPOD      = "POD Status"
	colFreight  = "Freight Amount"
	colExpense  = "Total Trip Expense"
	colProfit   = "Net Profit"
	colDistance = "Actual Distance (KM)"
)

// requiredColumns must all be present; a structurally absent column is a
// fatal configuration error, never silently defaulted. Route is optional.
var requiredColumns = []string{
	colTripID, colVehicle, colDate, colStatus, colPOD,
	colFreight, colExpense, colProfit, colDistance,
}

// Options configures workbook parsing.
type Options struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// LoadTrips reads an Excel trip sheet and returns typed trip records.
// Header cells are trimmed before matching. Blank or unparseable dates
// yield records with no day-of-month; blank numeric cells are zero.
func LoadTrips(path string, opts Options) ([]model.Trip, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: open %s", path)
	}

	sheet, err := getSheet(f, opts)
	if err != nil {
		return nil, err
	}
	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("loader: %s: sheet has no header row", path)
	}

	cols, err := headerIndex(path, sheet.Rows[0])
	if err != nil {
		return nil, err
	}

	trips := make([]model.Trip, 0, len(sheet.Rows)-1)
	for i, row := range sheet.Rows[1:] {
		cells := rowToStrings(row)
		if blankRow(cells) {
			continue
		}

		t := model.Trip{
			ID:        cols.get(cells, colTripID),
			VehicleID: cols.get(cells, colVehicle),
			Route:     cols.get(cells, colRoute),
			Status:    model.TripStatus(cols.get(cells, colStatus)),
			POD:       model.PODStatus(cols.get(cells, colPOD)),
		}

		if date, ok := parseDate(cols.get(cells, colDate)); ok {
			t.Date = &date
			t.Day = date.Day()
		}

		for _, f := range []struct {
			col string
			dst *float64
		}{
			{colFreight, &t.Freight},
			{colExpense, &t.Expense},
			{colProfit, &t.NetProfit},
			{colDistance, &t.DistanceKM},
		} {
			v, err := parseAmount(cols.get(cells, f.col))
			if err != nil {
				return nil, eris.Wrapf(err, "loader: %s: row %d column %q", path, i+2, f.col)
			}
			*f.dst = v
		}

		trips = append(trips, t)
	}

	return trips, nil
}

// LoadAll loads the fleet and closure workbooks concurrently and returns
// the assembled data context.
func LoadAll(ctx context.Context, fleetPath, closurePath string, opts Options) (*analytics.Dataset, error) {
	var ds analytics.Dataset

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		trips, err := LoadTrips(fleetPath, opts)
		if err != nil {
			return err
		}
		ds.Trips = trips
		return nil
	})
	g.Go(func() error {
		closures, err := LoadTrips(closurePath, opts)
		if err != nil {
			return err
		}
		ds.Closures = closures
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// columnIndex maps trimmed header names to cell positions.
type columnIndex map[string]int

func (c columnIndex) get(cells []string, col string) string {
	i, ok := c[col]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func headerIndex(path string, header *xlsx.Row) (columnIndex, error) {
	cols := make(columnIndex)
	for i, cell := range header.Cells {
		name := strings.TrimSpace(cell.String())
		if name == "" {
			continue
		}
		if _, dup := cols[name]; dup {
			return nil, eris.Errorf("loader: %s: duplicate column %q", path, name)
		}
		cols[name] = i
	}

	for _, col := range requiredColumns {
		if _, ok := cols[col]; !ok {
			return nil, eris.Errorf("loader: %s: missing required column %q", path, col)
		}
	}
	return cols, nil
}

func getSheet(f *xlsx.File, opts Options) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("loader: sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("loader: sheet index %d out of range (file has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// dateLayouts covers the formats seen across trip sheets.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"01-02-06",
}

// parseDate converts a cell value to a date. Excel serial numbers are
// supported alongside textual layouts. A blank or unparseable value
// reports ok=false; the record is kept, just without a day-of-month.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		return xlsx.TimeFromExcelTime(serial, false), true
	}

	return time.Time{}, false
}

// parseAmount converts a numeric cell value. Blank cells are genuinely
// absent and read as zero; a non-blank value that fails to parse is a data
// error surfaced to the caller.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse amount %q", s)
	}
	return v, nil
}
