package service

import (
	"context"
	"io"
	"testing"

	"sharemart/internal/domain"
	"sharemart/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequestService(repo *mockRepo) *RequestService {
	logger := zerolog.New(io.Discard)
	return NewRequestService(repo, &logger)
}

func TestCreateRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newRequestService(repo)

		repo.On("GetUser", ctx, int64(2)).Return(&models.User{ID: 2}, nil)
		repo.On("CreateRequest", ctx, mock.AnythingOfType("*models.ItemRequest")).Return(nil)

		request, err := svc.CreateRequest(ctx, 2, "need a drill")
		require.NoError(t, err)
		assert.Equal(t, int64(2), request.RequesterID)
	})

	t.Run("BlankDescription", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newRequestService(repo)

		_, err := svc.CreateRequest(ctx, 2, "  ")
		assert.True(t, domain.IsKind(err, domain.KindValidation))
		repo.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything)
	})

	t.Run("RequesterNotFound", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newRequestService(repo)

		repo.On("GetUser", ctx, int64(2)).Return(nil, domain.NotFoundf("user 2 not found"))

		_, err := svc.CreateRequest(ctx, 2, "need a drill")
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}

func TestListOwnRequests(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	svc := newRequestService(repo)

	requests := []*models.ItemRequest{{ID: 7, RequesterID: 2}}
	items := []*models.Item{{ID: 5, RequestID: 7}}

	repo.On("GetUser", ctx, int64(2)).Return(&models.User{ID: 2}, nil)
	repo.On("ListRequestsByRequester", ctx, int64(2)).Return(requests, nil)
	repo.On("ListItemsByRequest", ctx, int64(7)).Return(items, nil)

	details, err := svc.ListOwnRequests(ctx, 2)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, int64(7), details[0].Request.ID)
	assert.Len(t, details[0].Items, 1)
}

func TestListOtherRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("InvalidPageBounds", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newRequestService(repo)

		_, err := svc.ListOtherRequests(ctx, 2, -1, 20)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	})

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newRequestService(repo)

		repo.On("GetUser", ctx, int64(2)).Return(&models.User{ID: 2}, nil)
		repo.On("ListOtherRequests", ctx, int64(2), 20, 0).Return([]*models.ItemRequest{{ID: 8}}, nil)
		repo.On("ListItemsByRequest", ctx, int64(8)).Return([]*models.Item{}, nil)

		details, err := svc.ListOtherRequests(ctx, 2, 0, 20)
		require.NoError(t, err)
		assert.Len(t, details, 1)
	})
}

func TestGetRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newRequestService(repo)

		repo.On("GetUser", ctx, int64(2)).Return(&models.User{ID: 2}, nil)
		repo.On("GetRequest", ctx, int64(7)).Return(&models.ItemRequest{ID: 7}, nil)
		repo.On("ListItemsByRequest", ctx, int64(7)).Return([]*models.Item{{ID: 5}}, nil)

		details, err := svc.GetRequest(ctx, 7, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(7), details.Request.ID)
		assert.Len(t, details.Items, 1)
	})

	t.Run("RequestNotFound", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newRequestService(repo)

		repo.On("GetUser", ctx, int64(2)).Return(&models.User{ID: 2}, nil)
		repo.On("GetRequest", ctx, int64(7)).Return(nil, domain.NotFoundf("request 7 not found"))

		_, err := svc.GetRequest(ctx, 7, 2)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}
