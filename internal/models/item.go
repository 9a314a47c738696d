package models

import "time"

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	OwnerID     int64     `json:"owner_id"`
	RequestID   int64     `json:"request_id,omitempty"` // 0 when the item fulfils no request
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemPatch carries partial updates; nil fields are left unchanged.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

// ItemDetails is the read model for item views: the item together with its
// comments and, for the owner, its bookings ordered by start.
type ItemDetails struct {
	Item     Item
	Bookings []*Booking
	Comments []*Comment
}
