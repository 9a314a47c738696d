package service

import (
	"context"
	"time"

	"sharemart/internal/domain"
	"sharemart/internal/events"
	"sharemart/internal/metrics"
	"sharemart/internal/models"

	"github.com/rs/zerolog"
)

type BookingService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewBookingService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateBooking registers a WAITING booking request. Owners cannot book their
// own items and the window must not reach into the past. Overlapping requests
// for the same item are accepted; the owner arbitrates via approval.
func (s *BookingService) CreateBooking(ctx context.Context, itemID int64, start, end time.Time, bookerID int64) (*models.Booking, error) {
	if !models.ValidBookingWindow(start, end, time.Now()) {
		return nil, domain.Validationf("booking window is invalid: start %s, end %s", start, end)
	}

	booker, err := s.repo.GetUser(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID == bookerID {
		return nil, domain.AccessDeniedf("owner cannot book own item %d", itemID)
	}
	if !item.Available {
		return nil, domain.Unavailablef("item %d is not available for booking", itemID)
	}

	booking := &models.Booking{
		ItemID:     itemID,
		BookerID:   bookerID,
		Start:      start,
		End:        end,
		Status:     models.StatusWaiting,
		ItemName:   item.Name,
		BookerName: booker.Name,
	}
	if err := s.repo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.publishBookingEvent(events.EventBookingCreated, booking, 0)

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("item_id", itemID).
		Int64("booker_id", bookerID).
		Msg("booking created")

	return booking, nil
}

// ApproveBooking records the owner's decision. Approval is final; a rejected
// booking may still be re-decided.
func (s *BookingService) ApproveBooking(ctx context.Context, bookingID int64, approved bool, actingUserID int64) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actingUserID {
		return nil, domain.NotOwnerf("user %d does not own item %d", actingUserID, item.ID)
	}
	if booking.Status == models.StatusApproved {
		return nil, domain.AlreadyApprovedf("booking %d is already approved", bookingID)
	}

	status := models.StatusRejected
	eventType := events.EventBookingRejected
	outcome := "rejected"
	if approved {
		status = models.StatusApproved
		eventType = events.EventBookingApproved
		outcome = "approved"
	}

	if err := s.repo.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	metrics.IncBookingDecision(outcome)
	s.publishBookingEvent(eventType, booking, actingUserID)

	s.logger.Info().
		Int64("booking_id", bookingID).
		Int64("owner_id", actingUserID).
		Str("status", status).
		Msg("booking decided")

	return booking, nil
}

// FindBooking returns the booking to its booker or the item's owner.
func (s *BookingService) FindBooking(ctx context.Context, bookingID, requestingUserID int64) (*models.Booking, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID == requestingUserID {
		return booking, nil
	}

	item, err := s.repo.GetItem(ctx, booking.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != requestingUserID {
		return nil, domain.AccessDeniedf("user %d has no access to booking %d", requestingUserID, bookingID)
	}
	return booking, nil
}

// ListByState returns one page of bookings for the user as booker or owner,
// newest start first. State names are matched exactly.
func (s *BookingService) ListByState(ctx context.Context, userID int64, role, state string, from, size int) ([]*models.Booking, error) {
	if !models.ValidStates[state] {
		return nil, domain.Validationf("unknown booking state: %s", state)
	}
	if from < 0 || size <= 0 {
		return nil, domain.Validationf("invalid page bounds: from %d, size %d", from, size)
	}

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	filter := models.BookingFilter{
		State:  state,
		Now:    time.Now(),
		Limit:  size,
		Offset: from,
	}
	if role == models.RoleOwner {
		filter.OwnerID = userID
	} else {
		filter.BookerID = userID
	}

	return s.repo.ListBookings(ctx, filter)
}

func (s *BookingService) publishBookingEvent(eventType string, booking *models.Booking, decidedBy int64) {
	payload := events.BookingEventPayload{
		BookingID:  booking.ID,
		ItemID:     booking.ItemID,
		ItemName:   booking.ItemName,
		BookerID:   booking.BookerID,
		BookerName: booking.BookerName,
		Status:     booking.Status,
		Start:      booking.Start,
		End:        booking.End,
		DecidedBy:  decidedBy,
	}
	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event", eventType).Msg("failed to publish booking event")
	}
}
