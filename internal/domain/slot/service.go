package slot

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/utils"
)

type Repository interface {
	ListByTrainer(ctx context.Context, email string) ([]Slot, error)
	PutMany(ctx context.Context, slots []Slot) error
	Create(ctx context.Context, s Slot) (string, error)
	DeleteUnbooked(ctx context.Context, id string) error
}

type TrainerLookup interface {
	TrainerByEmail(ctx context.Context, email string) (*trainer.Trainer, error)
}

type Service struct {
	repo     Repository
	trainers TrainerLookup
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, trainers TrainerLookup) *Service {
	return &Service{
		repo:     repo,
		trainers: trainers,
		validate: utils.NewValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ListSlots returns the trainer's slots. A trainer with no slots yet gets one
// slot per available day, persisted before they are returned.
func (s *Service) ListSlots(ctx context.Context, trainerEmail string) ([]Slot, error) {
	email := utils.NormalizeEmail(trainerEmail)
	if email == "" {
		return nil, fmt.Errorf("%w: trainer email is required", ErrBadRequest)
	}

	t, err := s.trainers.TrainerByEmail(ctx, email)
	if trainer.IsErrNotFound(err) {
		return nil, fmt.Errorf("%w: trainer not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	slots, err := s.repo.ListByTrainer(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(slots) > 0 || len(t.AvailableDays) == 0 {
		return slots, nil
	}

	if err := s.repo.PutMany(ctx, s.defaults(t, email)); err != nil {
		return nil, fmt.Errorf("materialize slots: %w", err)
	}
	// another request may have materialized or booked them first
	return s.repo.ListByTrainer(ctx, email)
}

func (s *Service) defaults(t *trainer.Trainer, email string) []Slot {
	at := t.AvailableTime
	if at == "" {
		at = DefaultTime
	}
	now := s.now()
	seen := map[string]bool{}
	out := make([]Slot, 0, len(t.AvailableDays))
	for _, day := range t.AvailableDays {
		id := MaterializedID(t.ID, day)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, Slot{
			ID:           id,
			TrainerEmail: email,
			TrainerID:    t.ID,
			Day:          day,
			Time:         at,
			Package:      DefaultPackage,
			CreatedAt:    now,
		})
	}
	return out
}

func (s *Service) CreateSlot(ctx context.Context, in CreateSlotInput) (string, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("%w: %s", ErrBadRequest, utils.DescribeValidation(err))
	}
	return s.repo.Create(ctx, Slot{
		TrainerEmail: in.TrainerEmail,
		TrainerID:    in.TrainerID,
		Day:          in.Day,
		Time:         in.Time,
		Package:      in.Package,
		IsBooked:     in.IsBooked,
		BookedBy:     in.BookedBy,
		CreatedAt:    s.now(),
	})
}

// DeleteSlot refuses booked slots with ErrConflict.
func (s *Service) DeleteSlot(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: slot id is required", ErrBadRequest)
	}
	return s.repo.DeleteUnbooked(ctx, id)
}
