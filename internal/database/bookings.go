package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sharemart/internal/domain"
	"sharemart/internal/models"
)

const bookingColumns = `b.id, b.item_id, b.booker_id, b.start_at, b.end_at, b.status,
                        b.created_at, b.updated_at, i.name, u.name`

const bookingJoins = `FROM bookings b
              JOIN items i ON i.id = b.item_id
              JOIN users u ON u.id = b.booker_id`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	var startAt, endAt int64
	err := row.Scan(
		&b.ID, &b.ItemID, &b.BookerID, &startAt, &endAt, &b.Status,
		&b.CreatedAt, &b.UpdatedAt, &b.ItemName, &b.BookerName,
	)
	if err != nil {
		return nil, err
	}
	b.Start = time.Unix(startAt, 0)
	b.End = time.Unix(endAt, 0)
	return b, nil
}

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (item_id, booker_id, start_at, end_at, status, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query,
		booking.ItemID, booking.BookerID, booking.Start.Unix(), booking.End.Unix(),
		booking.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	booking.ID = id
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return nil
}

func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingJoins + ` WHERE b.id = ?`

	booking, err := scanBooking(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("booking %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return booking, nil
}

func (db *DB) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`
	result, err := db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return domain.NotFoundf("booking %d not found", id)
	}
	return nil
}

// UpdateBookingStatusWhereWaiting flips the status only when the booking is
// still WAITING and reports whether a row changed. Compare-and-swap variant
// of UpdateBookingStatus; closes the concurrent-approval window.
func (db *DB) UpdateBookingStatusWhereWaiting(ctx context.Context, id int64, status string) (bool, error) {
	query := `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ? AND status = ?`
	result, err := db.ExecContext(ctx, query, status, time.Now(), id, models.StatusWaiting)
	if err != nil {
		return false, fmt.Errorf("update booking status: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// ListBookings returns the state-filtered page for one subject, newest start
// first. Filter semantics follow the listing contract: CURRENT is
// boundary-inclusive, PAST/FUTURE strict, ALL unfiltered.
func (db *DB) ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingJoins + ` WHERE `
	var args []any

	switch {
	case filter.BookerID != 0:
		query += `b.booker_id = ?`
		args = append(args, filter.BookerID)
	case filter.OwnerID != 0:
		query += `i.owner_id = ?`
		args = append(args, filter.OwnerID)
	default:
		return nil, fmt.Errorf("booking filter needs a booker or an owner")
	}

	now := filter.Now.Unix()
	switch filter.State {
	case models.StateAll:
		// No extra predicate: ALL includes every status, REJECTED too.
	case models.StateCurrent:
		query += ` AND b.start_at <= ? AND b.end_at >= ?`
		args = append(args, now, now)
	case models.StatePast:
		query += ` AND b.end_at < ?`
		args = append(args, now)
	case models.StateFuture:
		query += ` AND b.start_at > ?`
		args = append(args, now)
	case models.StateWaiting, models.StateRejected:
		query += ` AND b.status = ?`
		args = append(args, filter.State)
	default:
		return nil, fmt.Errorf("unknown booking state %q", filter.State)
	}

	query += ` ORDER BY b.start_at DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (db *DB) ListBookingsByItem(ctx context.Context, itemID int64) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingJoins + ` WHERE b.item_id = ? ORDER BY b.start_at`

	rows, err := db.QueryContext(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by item: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

// HasBookingStarted reports whether the booker holds any booking of the item
// whose start is not after now, regardless of status.
func (db *DB) HasBookingStarted(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	found, err := db.exists(ctx,
		`SELECT 1 FROM bookings WHERE booker_id = ? AND item_id = ? AND start_at <= ?`,
		bookerID, itemID, now.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("check booking started: %w", err)
	}
	return found, nil
}

// ListAllBookings feeds the report export, newest start first.
func (db *DB) ListAllBookings(ctx context.Context) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` ` + bookingJoins + ` ORDER BY b.start_at DESC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	defer rows.Close()
	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*models.Booking, error) {
	var bookings []*models.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
