package export

import (
	"context"
	"fmt"
	"os"

	"sharemart/internal/models"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsClient mirrors the bookings report into one Google spreadsheet tab
// using a service account.
type SheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

func NewSheetsClient(credentialsFile, spreadsheetID, sheetName string) (*SheetsClient, error) {
	ctx := context.Background()

	credentialsJSON, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsClient{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// TestConnection reads one cell to verify access to the spreadsheet.
func (s *SheetsClient) TestConnection(ctx context.Context) error {
	cell := fmt.Sprintf("%s!A1", s.sheetName)
	if _, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, cell).Context(ctx).Do(); err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	return nil
}

// ReplaceBookings clears the tab and rewrites it with the current bookings.
func (s *SheetsClient) ReplaceBookings(ctx context.Context, bookings []*models.Booking) error {
	rng := fmt.Sprintf("%s!A:G", s.sheetName)

	_, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}

	values := make([][]interface{}, 0, len(bookings)+1)
	header := make([]interface{}, len(reportHeaders))
	for i, h := range reportHeaders {
		header[i] = h
	}
	values = append(values, header)
	for _, booking := range bookings {
		values = append(values, bookingRow(booking))
	}

	_, err = s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update sheet: %w", err)
	}
	return nil
}
