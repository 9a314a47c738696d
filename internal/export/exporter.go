package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"sharemart/internal/database"

	"github.com/rs/zerolog"
)

// BookingsExporter builds the bookings report: an xlsx file on disk and,
// when a sheets client is configured, a spreadsheet mirror.
type BookingsExporter struct {
	db     *database.DB
	sheets *SheetsClient
	dir    string
	logger *zerolog.Logger
}

func NewBookingsExporter(db *database.DB, sheets *SheetsClient, dir string, logger *zerolog.Logger) *BookingsExporter {
	return &BookingsExporter{
		db:     db,
		sheets: sheets,
		dir:    dir,
		logger: logger,
	}
}

func (e *BookingsExporter) ExportBookings(ctx context.Context, reason string) error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	bookings, err := e.db.ListAllBookings(ctx)
	if err != nil {
		return err
	}

	path := filepath.Join(e.dir, "bookings.xlsx")
	if err := WriteBookingsReport(path, bookings); err != nil {
		return err
	}

	if e.sheets != nil {
		if err := e.sheets.ReplaceBookings(ctx, bookings); err != nil {
			return err
		}
	}

	e.logger.Info().
		Str("reason", reason).
		Int("bookings", len(bookings)).
		Str("path", path).
		Msg("bookings report exported")
	return nil
}
