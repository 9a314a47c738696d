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

func newUserService(repo *mockRepo) *UserService {
	logger := zerolog.New(io.Discard)
	return NewUserService(repo, &logger)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newUserService(repo)

		repo.On("GetUserByEmail", ctx, "alice@example.com").Return(nil, domain.NotFoundf("not found"))
		repo.On("CreateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil)

		user, err := svc.CreateUser(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newUserService(repo)

		repo.On("GetUserByEmail", ctx, "alice@example.com").Return(&models.User{ID: 9}, nil)

		_, err := svc.CreateUser(ctx, "Other", "alice@example.com")
		assert.True(t, domain.IsKind(err, domain.KindAlreadyExists))
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Validation", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newUserService(repo)

		_, err := svc.CreateUser(ctx, "", "alice@example.com")
		assert.True(t, domain.IsKind(err, domain.KindValidation))

		_, err = svc.CreateUser(ctx, "Alice", "not-an-email")
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	current := func() *models.User {
		return &models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}
	}

	t.Run("PatchName", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newUserService(repo)

		repo.On("GetUser", ctx, int64(1)).Return(current(), nil)
		repo.On("UpdateUser", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Name == "Alicia" && u.Email == "alice@example.com"
		})).Return(nil)

		user, err := svc.UpdateUser(ctx, 1, models.UserPatch{Name: strPtr("Alicia")})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", user.Name)
	})

	t.Run("EmailConflict", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newUserService(repo)

		repo.On("GetUser", ctx, int64(1)).Return(current(), nil)
		repo.On("GetUserByEmail", ctx, "taken@example.com").Return(&models.User{ID: 2}, nil)

		_, err := svc.UpdateUser(ctx, 1, models.UserPatch{Email: strPtr("taken@example.com")})
		assert.True(t, domain.IsKind(err, domain.KindAlreadyExists))
		repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})

	t.Run("SameEmailNoLookup", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newUserService(repo)

		repo.On("GetUser", ctx, int64(1)).Return(current(), nil)
		repo.On("UpdateUser", ctx, mock.AnythingOfType("*models.User")).Return(nil)

		_, err := svc.UpdateUser(ctx, 1, models.UserPatch{Email: strPtr("alice@example.com")})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newUserService(repo)

		repo.On("GetUser", ctx, int64(1)).Return(nil, domain.NotFoundf("user 1 not found"))

		_, err := svc.UpdateUser(ctx, 1, models.UserPatch{Name: strPtr("X")})
		assert.True(t, domain.IsKind(err, domain.KindNotFound))
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepo)
	svc := newUserService(repo)

	repo.On("DeleteUser", ctx, int64(1)).Return(nil)
	assert.NoError(t, svc.DeleteUser(ctx, 1))
	repo.AssertExpectations(t)
}
