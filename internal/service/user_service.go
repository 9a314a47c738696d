package service

import (
	"context"
	"strings"

	"sharemart/internal/domain"
	"sharemart/internal/models"

	"github.com/rs/zerolog"
)

type UserService struct {
	repo   domain.Repository
	logger *zerolog.Logger
}

func NewUserService(repo domain.Repository, logger *zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validationf("user name must not be blank")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, email, 0); err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		// The UNIQUE column backstops the lookup above under concurrency.
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, domain.AlreadyExistsf("email %s is already in use", email)
		}
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateUser applies the non-nil patch fields. Changing the email re-checks
// uniqueness against everyone else.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, domain.Validationf("user name must not be blank")
		}
		user.Name = *patch.Name
	}
	if patch.Email != nil && *patch.Email != user.Email {
		if err := validateEmail(*patch.Email); err != nil {
			return nil, err
		}
		if err := s.checkEmailFree(ctx, *patch.Email, id); err != nil {
			return nil, err
		}
		user.Email = *patch.Email
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}

func (s *UserService) checkEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return domain.AlreadyExistsf("email %s is already in use", email)
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return domain.Validationf("invalid email: %q", email)
	}
	return nil
}
