package service

import (
	"context"
	"strings"
	"time"

	"sharemart/internal/domain"
	"sharemart/internal/events"
	"sharemart/internal/metrics"
	"sharemart/internal/models"

	"github.com/rs/zerolog"
)

type ItemService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
}

func NewItemService(repo domain.Repository, eventBus domain.EventPublisher, logger *zerolog.Logger) *ItemService {
	return &ItemService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, name, description string, available *bool, requestID int64) (*models.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validationf("item name must not be blank")
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.Validationf("item description must not be blank")
	}
	if available == nil {
		return nil, domain.Validationf("item availability must be set")
	}

	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if requestID != 0 {
		if _, err := s.repo.GetRequest(ctx, requestID); err != nil {
			return nil, err
		}
	}

	item := &models.Item{
		Name:        name,
		Description: description,
		Available:   *available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", item.ID).Int64("owner_id", ownerID).Msg("item created")
	return item, nil
}

// UpdateItem applies the non-nil patch fields. Only the owner may edit.
func (s *ItemService) UpdateItem(ctx context.Context, itemID, actingUserID int64, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actingUserID {
		return nil, domain.AccessDeniedf("user %d does not own item %d", actingUserID, itemID)
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, domain.Validationf("item name must not be blank")
		}
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, domain.Validationf("item description must not be blank")
		}
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, itemID, actingUserID int64) error {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.OwnerID != actingUserID {
		return domain.AccessDeniedf("user %d does not own item %d", actingUserID, itemID)
	}
	return s.repo.DeleteItem(ctx, itemID)
}

// GetItem returns the item with its comments. The booking history is only
// attached when the requester owns the item.
func (s *ItemService) GetItem(ctx context.Context, itemID, requestingUserID int64) (*models.ItemDetails, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &models.ItemDetails{Item: *item}

	if item.OwnerID == requestingUserID {
		bookings, err := s.repo.ListBookingsByItem(ctx, itemID)
		if err != nil {
			return nil, err
		}
		details.Bookings = bookings
	}

	comments, err := s.repo.ListCommentsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	details.Comments = comments

	return details, nil
}

// ListOwnerItems returns one page of the owner's items, each with its booking
// history and comments.
func (s *ItemService) ListOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]*models.ItemDetails, error) {
	if from < 0 || size <= 0 {
		return nil, domain.Validationf("invalid page bounds: from %d, size %d", from, size)
	}
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsByOwner(ctx, ownerID, size, from)
	if err != nil {
		return nil, err
	}

	details := make([]*models.ItemDetails, 0, len(items))
	for _, item := range items {
		bookings, err := s.repo.ListBookingsByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		comments, err := s.repo.ListCommentsByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &models.ItemDetails{Item: *item, Bookings: bookings, Comments: comments})
	}
	return details, nil
}

// SearchItems matches available items by name or description. A blank query
// returns an empty result, not an error.
func (s *ItemService) SearchItems(ctx context.Context, text string, from, size int) ([]*models.Item, error) {
	if from < 0 || size <= 0 {
		return nil, domain.Validationf("invalid page bounds: from %d, size %d", from, size)
	}
	if strings.TrimSpace(text) == "" {
		return []*models.Item{}, nil
	}
	return s.repo.SearchItems(ctx, text, size, from)
}

// PostComment accepts feedback from a user whose booking of the item has
// started, regardless of its status.
func (s *ItemService) PostComment(ctx context.Context, userID, itemID int64, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.Validationf("comment text must not be blank")
	}

	author, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetItem(ctx, itemID); err != nil {
		return nil, err
	}

	booked, err := s.repo.HasBookingStarted(ctx, userID, itemID, time.Now())
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, domain.NotBookedf("user %d has no started booking of item %d", userID, itemID)
	}

	comment := &models.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: author.Name,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	metrics.IncCommentPosted()
	s.publishCommentEvent(comment)

	return comment, nil
}

func (s *ItemService) publishCommentEvent(comment *models.Comment) {
	payload := events.CommentEventPayload{
		CommentID:  comment.ID,
		ItemID:     comment.ItemID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		Text:       comment.Text,
	}
	if err := s.eventBus.PublishJSON(events.EventCommentAdded, payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to publish comment event")
	}
}
