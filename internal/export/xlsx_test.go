package export

import (
	"path/filepath"
	"testing"
	"time"

	"sharemart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteBookingsReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.xlsx")

	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	bookings := []*models.Booking{
		{
			ID:         1,
			ItemName:   "Drill",
			BookerName: "Alice",
			Start:      start,
			End:        start.Add(2 * time.Hour),
			Status:     models.StatusApproved,
			CreatedAt:  start.Add(-24 * time.Hour),
		},
	}

	require.NoError(t, WriteBookingsReport(path, bookings))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(reportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	item, err := f.GetCellValue(reportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Drill", item)

	status, err := f.GetCellValue(reportSheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, status)

	// The default sheet is dropped
	assert.Equal(t, -1, func() int {
		idx, _ := f.GetSheetIndex("Sheet1")
		return idx
	}())
}

func TestWriteBookingsReportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteBookingsReport(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
