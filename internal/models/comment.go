package models

import "time"

type Comment struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	ItemID   int64  `json:"item_id"`
	AuthorID int64  `json:"author_id"`

	// Denormalized for views; populated by store joins.
	AuthorName string `json:"author_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
