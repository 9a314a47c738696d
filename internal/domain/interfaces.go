package domain

import (
	"context"
	"time"

	"sharemart/internal/models"
)

type Repository interface {
	// Users.
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error

	// Items.
	CreateItem(ctx context.Context, item *models.Item) error
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id int64) error
	ListItemsByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*models.Item, error)
	ListItemsByRequest(ctx context.Context, requestID int64) ([]*models.Item, error)
	SearchItems(ctx context.Context, text string, limit, offset int) ([]*models.Item, error)

	// Bookings.
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) error
	UpdateBookingStatusWhereWaiting(ctx context.Context, id int64, status string) (bool, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]*models.Booking, error)
	ListBookingsByItem(ctx context.Context, itemID int64) ([]*models.Booking, error)
	HasBookingStarted(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)

	// Item requests.
	CreateRequest(ctx context.Context, request *models.ItemRequest) error
	GetRequest(ctx context.Context, id int64) (*models.ItemRequest, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64) ([]*models.ItemRequest, error)
	ListOtherRequests(ctx context.Context, requesterID int64, limit, offset int) ([]*models.ItemRequest, error)

	// Comments.
	CreateComment(ctx context.Context, comment *models.Comment) error
	ListCommentsByItem(ctx context.Context, itemID int64) ([]*models.Comment, error)
}

// RateLimitRepository counts requests per user inside a sliding window.
type RateLimitRepository interface {
	CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

// ExportScheduler queues a bookings-report refresh; callers never wait on it.
type ExportScheduler interface {
	EnqueueExport(ctx context.Context, reason string) error
}

type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, name, description string, available *bool, requestID int64) (*models.Item, error)
	UpdateItem(ctx context.Context, itemID, actingUserID int64, patch models.ItemPatch) (*models.Item, error)
	DeleteItem(ctx context.Context, itemID, actingUserID int64) error
	GetItem(ctx context.Context, itemID, requestingUserID int64) (*models.ItemDetails, error)
	ListOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemDetails, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]*models.Item, error)
	PostComment(ctx context.Context, userID, itemID int64, text string) (*models.Comment, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, itemID int64, start, end time.Time, bookerID int64) (*models.Booking, error)
	ApproveBooking(ctx context.Context, bookingID int64, approved bool, actingUserID int64) (*models.Booking, error)
	FindBooking(ctx context.Context, bookingID, requestingUserID int64) (*models.Booking, error)
	ListByState(ctx context.Context, userID int64, role, state string, from, size int) ([]*models.Booking, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, userID int64, description string) (*models.ItemRequest, error)
	ListOwnRequests(ctx context.Context, userID int64) ([]*models.RequestDetails, error)
	ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]*models.RequestDetails, error)
	GetRequest(ctx context.Context, requestID, userID int64) (*models.RequestDetails, error)
}
