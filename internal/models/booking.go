package models

import "time"

type Booking struct {
	ID       int64     `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	ItemID   int64     `json:"item_id"`
	BookerID int64     `json:"booker_id"`
	Status   string    `json:"status"` // WAITING, APPROVED, REJECTED

	// Denormalized for views; populated by store joins.
	ItemName   string `json:"item_name,omitempty"`
	BookerName string `json:"booker_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingFilter selects bookings for the state-filtered listings. Exactly one
// of BookerID/OwnerID is set. Now is the single instant the temporal states
// are evaluated against.
type BookingFilter struct {
	BookerID int64
	OwnerID  int64
	State    string
	Now      time.Time
	Limit    int
	Offset   int
}

// ValidBookingWindow reports whether [start, end) is a bookable window as of
// now: end strictly after start, neither bound in the past.
func ValidBookingWindow(start, end, now time.Time) bool {
	if !end.After(start) {
		return false
	}
	if start.Before(now) || end.Before(now) {
		return false
	}
	return true
}
