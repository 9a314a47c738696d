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

func (db *DB) CreateRequest(ctx context.Context, request *models.ItemRequest) error {
	query := `INSERT INTO requests (description, requester_id, created_at) VALUES (?, ?, ?)`
	now := time.Now()
	result, err := db.ExecContext(ctx, query, request.Description, request.RequesterID, now)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	request.ID = id
	request.CreatedAt = now
	return nil
}

func (db *DB) GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at FROM requests WHERE id = ?`

	var request models.ItemRequest
	err := db.QueryRowContext(ctx, query, id).Scan(
		&request.ID, &request.Description, &request.RequesterID, &request.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("request %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	return &request, nil
}

func (db *DB) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]*models.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at FROM requests
              WHERE requester_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := db.QueryContext(ctx, query, requesterID)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

// ListOtherRequests returns the paginated requests posted by everyone except
// the given user, newest first.
func (db *DB) ListOtherRequests(ctx context.Context, requesterID int64, limit, offset int) ([]*models.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at FROM requests
              WHERE requester_id != ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := db.QueryContext(ctx, query, requesterID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list other requests: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]*models.ItemRequest, error) {
	var requests []*models.ItemRequest
	for rows.Next() {
		request := &models.ItemRequest{}
		err := rows.Scan(&request.ID, &request.Description, &request.RequesterID, &request.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}
