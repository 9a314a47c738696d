package export

import (
	"fmt"
	"time"

	"sharemart/internal/models"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Bookings"

var reportHeaders = []string{"ID", "Item", "Booker", "Start", "End", "Status", "Created"}

// WriteBookingsReport renders the bookings into an xlsx file at path.
func WriteBookingsReport(path string, bookings []*models.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(reportSheet, cell, header)
	}

	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	firstCell, _ := excelize.CoordinatesToCellName(1, 1)
	lastCell, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
	_ = f.SetCellStyle(reportSheet, firstCell, lastCell, style)

	for i, booking := range bookings {
		row := i + 2
		for col, value := range bookingRow(booking) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(reportSheet, cell, value)
		}
	}

	_ = f.SetColWidth(reportSheet, "B", "C", 25)
	_ = f.SetColWidth(reportSheet, "D", "G", 20)
	_ = f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func bookingRow(b *models.Booking) []interface{} {
	return []interface{}{
		b.ID,
		b.ItemName,
		b.BookerName,
		b.Start.Format(time.RFC3339),
		b.End.Format(time.RFC3339),
		b.Status,
		b.CreatedAt.Format(time.RFC3339),
	}
}
