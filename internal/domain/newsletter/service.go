package newsletter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fitness-platform/backend/internal/utils"
)

type Repository interface {
	Create(ctx context.Context, s Subscriber) error
	List(ctx context.Context) ([]Subscriber, error)
	Count(ctx context.Context) (int, error)
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

func (s *Service) Subscribe(ctx context.Context, in SubscribeInput) (*Subscriber, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: name and email are required", ErrBadRequest)
	}
	sub := Subscriber{Name: in.Name, Email: in.Email, SubscribedAt: s.now()}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Service) List(ctx context.Context) ([]Subscriber, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
