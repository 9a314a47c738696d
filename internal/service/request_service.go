package service

import (
	"context"
	"strings"

	"sharemart/internal/domain"
	"sharemart/internal/models"

	"github.com/rs/zerolog"
)

type RequestService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewRequestService(repo domain.Repository, logger *zerolog.Logger) *RequestService {
	return &RequestService{repo: repo, logger: logger}
}

func (s *RequestService) CreateRequest(ctx context.Context, userID int64, description string) (*models.ItemRequest, error) {
	if strings.TrimSpace(description) == "" {
		return nil, domain.Validationf("request description must not be blank")
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	request := &models.ItemRequest{Description: description, RequesterID: userID}
	if err := s.repo.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", request.ID).Int64("requester_id", userID).Msg("item request created")
	return request, nil
}

// ListOwnRequests returns the user's requests, newest first, each with the
// items posted in response.
func (s *RequestService) ListOwnRequests(ctx context.Context, userID int64) ([]*models.RequestDetails, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListRequestsByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// ListOtherRequests returns one page of everyone else's requests.
func (s *RequestService) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]*models.RequestDetails, error) {
	if from < 0 || size <= 0 {
		return nil, domain.Validationf("invalid page bounds: from %d, size %d", from, size)
	}
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListOtherRequests(ctx, userID, size, from)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *RequestService) GetRequest(ctx context.Context, requestID, userID int64) (*models.RequestDetails, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return &models.RequestDetails{Request: *request, Items: items}, nil
}

func (s *RequestService) attachItems(ctx context.Context, requests []*models.ItemRequest) ([]*models.RequestDetails, error) {
	details := make([]*models.RequestDetails, 0, len(requests))
	for _, request := range requests {
		items, err := s.repo.ListItemsByRequest(ctx, request.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &models.RequestDetails{Request: *request, Items: items})
	}
	return details, nil
}
