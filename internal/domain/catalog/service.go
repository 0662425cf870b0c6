package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/utils"
)

type Repository interface {
	Create(ctx context.Context, c Class) (*Class, error)
	Count(ctx context.Context) (int, error)
	ListPage(ctx context.Context, offset, limit int) ([]Class, error)
	ListAll(ctx context.Context) ([]Class, error)
}

type TrainerSource interface {
	ListTrainers(ctx context.Context) ([]trainer.Trainer, error)
}

type Service struct {
	repo     Repository
	trainers TrainerSource
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, trainers TrainerSource) *Service {
	return &Service{
		repo:     repo,
		trainers: trainers,
		validate: utils.NewValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) CreateClass(ctx context.Context, in CreateClassInput) (*Class, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: missing required fields", ErrBadRequest)
	}
	return s.repo.Create(ctx, Class{
		Name:      in.Name,
		NameLower: utils.NormalizeNameLower(in.Name),
		Image:     in.Image,
		Details:   in.Details,
		CreatedAt: s.now(),
	})
}

// ListClasses returns one page of classes, newest first. search is matched
// as a literal, case-insensitive substring of the class name.
func (s *Service) ListClasses(ctx context.Context, page int, search string) (*Page, error) {
	page = utils.ClampPage(page)
	search = strings.TrimSpace(search)

	var (
		classes []Class
		total   int
		err     error
	)
	if search == "" {
		total, err = s.repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		classes, err = s.repo.ListPage(ctx, utils.Offset(page, PageSize), PageSize)
		if err != nil {
			return nil, err
		}
	} else {
		all, err := s.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		matched := make([]Class, 0, len(all))
		for _, c := range all {
			if utils.ContainsFold(c.Name, search) {
				matched = append(matched, c)
			}
		}
		total = len(matched)
		lo, hi := utils.Window(total, page, PageSize)
		classes = matched[lo:hi]
	}

	out := &Page{
		Classes:     make([]ClassWithTrainers, 0, len(classes)),
		CurrentPage: page,
		TotalPages:  utils.TotalPages(total, PageSize),
	}
	if len(classes) == 0 {
		return out, nil
	}

	trainers, err := s.trainers.ListTrainers(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range classes {
		out.Classes = append(out.Classes, ClassWithTrainers{
			Class:           c,
			RelatedTrainers: related(trainers, c.Name),
		})
	}
	return out, nil
}

func related(trainers []trainer.Trainer, className string) []trainer.Summary {
	out := []trainer.Summary{}
	for _, t := range trainers {
		if len(out) == MaxRelatedTrainers {
			break
		}
		if t.HasSkill(className) {
			out = append(out, t.Summary())
		}
	}
	return out
}
