package models

import "time"

// ItemRequest is a renter's posted need for an item not currently listed.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requester_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// RequestDetails pairs a request with the items listed to fulfil it.
type RequestDetails struct {
	Request ItemRequest
	Items   []*Item
}
