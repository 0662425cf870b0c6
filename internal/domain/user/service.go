package user

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fitness-platform/backend/internal/utils"
)

type Repository interface {
	Create(ctx context.Context, u User) error
	Get(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, email, displayName, photoURL string, at time.Time) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: utils.NewValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register creates a member account. Emails are unique.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, utils.DescribeValidation(err))
	}

	u := User{
		Email:       in.Email,
		Role:        RoleMember,
		DisplayName: in.DisplayName,
		PhotoURL:    in.PhotoURL,
		Active:      true,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) Get(ctx context.Context, email string) (*User, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, email)
}

func (s *Service) UpdateProfile(ctx context.Context, email string, in UpdateProfileInput) error {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrBadRequest, utils.DescribeValidation(err))
	}
	return s.repo.UpdateProfile(ctx, email, in.DisplayName, in.PhotoURL, s.now())
}
