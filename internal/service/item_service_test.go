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

func newItemService(repo *mockRepo, bus *mockEventBus) *ItemService {
	logger := zerolog.New(io.Discard)
	return NewItemService(repo, bus, &logger)
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetUser", ctx, int64(1)).Return(&models.User{ID: 1}, nil)
		repo.On("CreateItem", ctx, mock.AnythingOfType("*models.Item")).Return(nil)

		item, err := svc.CreateItem(ctx, 1, "Drill", "cordless drill", boolPtr(true), 0)
		require.NoError(t, err)
		assert.Equal(t, "Drill", item.Name)
		assert.True(t, item.Available)
		assert.Equal(t, int64(1), item.OwnerID)
	})

	t.Run("Validation", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		_, err := svc.CreateItem(ctx, 1, " ", "desc", boolPtr(true), 0)
		assert.True(t, domain.IsKind(err, domain.KindValidation))

		_, err = svc.CreateItem(ctx, 1, "Drill", "", boolPtr(true), 0)
		assert.True(t, domain.IsKind(err, domain.KindValidation))

		_, err = svc.CreateItem(ctx, 1, "Drill", "desc", nil, 0)
		assert.True(t, domain.IsKind(err, domain.KindValidation))

		repo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
	})

	t.Run("OwnerNotFound", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetUser", ctx, int64(1)).Return(nil, domain.NotFoundf("user 1 not found"))

		_, err := svc.CreateItem(ctx, 1, "Drill", "desc", boolPtr(true), 0)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})

	t.Run("LinkedRequestMustExist", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetUser", ctx, int64(1)).Return(&models.User{ID: 1}, nil)
		repo.On("GetRequest", ctx, int64(7)).Return(nil, domain.NotFoundf("request 7 not found"))

		_, err := svc.CreateItem(ctx, 1, "Drill", "desc", boolPtr(true), 7)
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()

	current := func() *models.Item {
		return &models.Item{ID: 5, Name: "Drill", Description: "old", Available: true, OwnerID: 1}
	}

	t.Run("PatchesOnlyGivenFields", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetItem", ctx, int64(5)).Return(current(), nil)
		repo.On("UpdateItem", ctx, mock.MatchedBy(func(i *models.Item) bool {
			return i.Name == "Drill" && i.Description == "old" && !i.Available
		})).Return(nil)

		item, err := svc.UpdateItem(ctx, 5, 1, models.ItemPatch{Available: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, item.Available)
		assert.Equal(t, "Drill", item.Name)
	})

	t.Run("NonOwnerDenied", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetItem", ctx, int64(5)).Return(current(), nil)

		_, err := svc.UpdateItem(ctx, 5, 99, models.ItemPatch{Name: strPtr("New")})
		assert.True(t, domain.IsKind(err, domain.KindAccessDenied))
		repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})

	t.Run("BlankNameRejected", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetItem", ctx, int64(5)).Return(current(), nil)

		_, err := svc.UpdateItem(ctx, 5, 1, models.ItemPatch{Name: strPtr("  ")})
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	})
}

func TestGetItemDetails(t *testing.T) {
	ctx := context.Background()
	item := &models.Item{ID: 5, Name: "Drill", OwnerID: 1}
	comments := []*models.Comment{{ID: 1, Text: "nice"}}
	bookings := []*models.Booking{{ID: 10}}

	t.Run("OwnerSeesBookings", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetItem", ctx, int64(5)).Return(item, nil)
		repo.On("ListBookingsByItem", ctx, int64(5)).Return(bookings, nil)
		repo.On("ListCommentsByItem", ctx, int64(5)).Return(comments, nil)

		details, err := svc.GetItem(ctx, 5, 1)
		require.NoError(t, err)
		assert.Len(t, details.Bookings, 1)
		assert.Len(t, details.Comments, 1)
	})

	t.Run("OthersSeeNoBookings", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetItem", ctx, int64(5)).Return(item, nil)
		repo.On("ListCommentsByItem", ctx, int64(5)).Return(comments, nil)

		details, err := svc.GetItem(ctx, 5, 99)
		require.NoError(t, err)
		assert.Nil(t, details.Bookings)
		assert.Len(t, details.Comments, 1)
		repo.AssertNotCalled(t, "ListBookingsByItem", mock.Anything, mock.Anything)
	})
}

func TestSearchItemsService(t *testing.T) {
	ctx := context.Background()

	t.Run("BlankQueryReturnsEmpty", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		items, err := svc.SearchItems(ctx, "   ", 0, 20)
		require.NoError(t, err)
		assert.Empty(t, items)
		repo.AssertNotCalled(t, "SearchItems", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DelegatesToStore", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("SearchItems", ctx, "drill", 20, 0).Return([]*models.Item{{ID: 5}}, nil)

		items, err := svc.SearchItems(ctx, "drill", 0, 20)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestPostComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		bus := new(mockEventBus)
		svc := newItemService(repo, bus)

		repo.On("GetUser", ctx, int64(2)).Return(&models.User{ID: 2, Name: "Booker"}, nil)
		repo.On("GetItem", ctx, int64(5)).Return(&models.Item{ID: 5, OwnerID: 1}, nil)
		repo.On("HasBookingStarted", ctx, int64(2), int64(5), mock.AnythingOfType("time.Time")).Return(true, nil)
		repo.On("CreateComment", ctx, mock.AnythingOfType("*models.Comment")).Return(nil)
		bus.On("PublishJSON", "comment_added", mock.Anything).Return(nil)

		comment, err := svc.PostComment(ctx, 2, 5, "worked great")
		require.NoError(t, err)
		assert.Equal(t, "Booker", comment.AuthorName)
		bus.AssertExpectations(t)
	})

	t.Run("BlankText", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		_, err := svc.PostComment(ctx, 2, 5, "  ")
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	})

	t.Run("WithoutStartedBooking", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newItemService(repo, new(mockEventBus))

		repo.On("GetUser", ctx, int64(2)).Return(&models.User{ID: 2}, nil)
		repo.On("GetItem", ctx, int64(5)).Return(&models.Item{ID: 5}, nil)
		repo.On("HasBookingStarted", ctx, int64(2), int64(5), mock.AnythingOfType("time.Time")).Return(false, nil)

		_, err := svc.PostComment(ctx, 2, 5, "never used it")
		assert.True(t, domain.IsKind(err, domain.KindNotBooked))
		repo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})
}

func TestListOwnerItems(t *testing.T) {
	ctx := context.Background()

	repo := new(mockRepo)
	svc := newItemService(repo, new(mockEventBus))

	items := []*models.Item{{ID: 5, OwnerID: 1}, {ID: 6, OwnerID: 1}}
	repo.On("GetUser", ctx, int64(1)).Return(&models.User{ID: 1}, nil)
	repo.On("ListItemsByOwner", ctx, int64(1), 20, 0).Return(items, nil)
	repo.On("ListBookingsByItem", ctx, mock.AnythingOfType("int64")).Return([]*models.Booking{}, nil)
	repo.On("ListCommentsByItem", ctx, mock.AnythingOfType("int64")).Return([]*models.Comment{}, nil)

	details, err := svc.ListOwnerItems(ctx, 1, 0, 20)
	require.NoError(t, err)
	assert.Len(t, details, 2)
}
