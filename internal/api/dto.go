package api

import (
	"time"

	"sharemart/internal/models"
)

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type itemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   int64  `json:"requestId,omitempty"`
}

type userRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResponse struct {
	ID     int64   `json:"id"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Status string  `json:"status"`
	Booker userRef `json:"booker"`
	Item   itemRef `json:"item"`
}

type commentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

type itemDetailsResponse struct {
	itemResponse
	Bookings []bookingResponse `json:"bookings,omitempty"`
	Comments []commentResponse `json:"comments"`
}

type requestResponse struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Created     string         `json:"created"`
	Items       []itemResponse `json:"items"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		OwnerID:     i.OwnerID,
		RequestID:   i.RequestID,
	}
}

func toBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:     b.ID,
		Start:  b.Start.Format(time.RFC3339),
		End:    b.End.Format(time.RFC3339),
		Status: b.Status,
		Booker: userRef{ID: b.BookerID, Name: b.BookerName},
		Item:   itemRef{ID: b.ItemID, Name: b.ItemName},
	}
}

func toCommentResponse(c *models.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.CreatedAt.Format(time.RFC3339),
	}
}

func toItemDetailsResponse(d *models.ItemDetails) itemDetailsResponse {
	resp := itemDetailsResponse{
		itemResponse: toItemResponse(&d.Item),
		Comments:     make([]commentResponse, 0, len(d.Comments)),
	}
	for _, b := range d.Bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(b))
	}
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	return resp
}

func toRequestResponse(d *models.RequestDetails) requestResponse {
	resp := requestResponse{
		ID:          d.Request.ID,
		Description: d.Request.Description,
		Created:     d.Request.CreatedAt.Format(time.RFC3339),
		Items:       make([]itemResponse, 0, len(d.Items)),
	}
	for _, item := range d.Items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp
}

func toBookingList(bookings []*models.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

func toRequestList(details []*models.RequestDetails) []requestResponse {
	out := make([]requestResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toRequestResponse(d))
	}
	return out
}

func toItemList(items []*models.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}
