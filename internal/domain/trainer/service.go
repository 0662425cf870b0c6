package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/utils"
)

type Repository interface {
	CreateApplication(ctx context.Context, a Application) error
	GetApplication(ctx context.Context, email string) (*Application, error)
	ListApplications(ctx context.Context) ([]Application, error)
	CommitAcceptance(ctx context.Context, t Trainer) (AcceptResult, error)
	CommitRejection(ctx context.Context, r Rejection) (RejectResult, error)
	ListRejections(ctx context.Context) ([]Rejection, error)
	Demote(ctx context.Context, email string) (DemoteResult, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)
	GetTrainer(ctx context.Context, id string) (*Trainer, error)
	TrainerByEmail(ctx context.Context, email string) (*Trainer, error)
}

// RoleDirectory lists users by role for the status report.
type RoleDirectory interface {
	ListByRole(ctx context.Context, role string) ([]user.User, error)
}

type Service struct {
	repo     Repository
	users    RoleDirectory
	validate *validator.Validate
	now      func() time.Time
}

func NewService(repo Repository, users RoleDirectory) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		validate: utils.NewValidator(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Apply(ctx context.Context, in ApplyInput) (*Application, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, utils.DescribeValidation(err))
	}

	if _, err := s.repo.TrainerByEmail(ctx, in.Email); err == nil {
		return nil, fmt.Errorf("%w: %s is already a trainer", ErrConflict, in.Email)
	} else if !IsErrNotFound(err) {
		return nil, err
	}

	a := Application{
		Email:         in.Email,
		FullName:      in.FullName,
		Age:           in.Age,
		ProfileImage:  in.ProfileImage,
		Skills:        in.Skills,
		AvailableDays: in.AvailableDays,
		AvailableTime: in.AvailableTime,
		Experience:    in.Experience,
		Biography:     in.Biography,
		Status:        StatusPending,
		AppliedAt:     s.now(),
	}
	if err := s.repo.CreateApplication(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Service) ListPending(ctx context.Context) ([]Application, error) {
	return s.repo.ListApplications(ctx)
}

func (s *Service) Accept(ctx context.Context, email string) (AcceptResult, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return AcceptResult{}, fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	app, err := s.repo.GetApplication(ctx, email)
	if err != nil {
		return AcceptResult{}, err
	}
	return s.repo.CommitAcceptance(ctx, app.Accept(s.now()))
}

func (s *Service) Reject(ctx context.Context, in DecisionInput) (RejectResult, error) {
	in.Trim()
	if in.Email == "" {
		return RejectResult{}, fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	app, err := s.repo.GetApplication(ctx, in.Email)
	if err != nil {
		return RejectResult{}, err
	}
	return s.repo.CommitRejection(ctx, app.Reject(in.Feedback, s.now()))
}

func (s *Service) ListRejected(ctx context.Context) ([]Rejection, error) {
	return s.repo.ListRejections(ctx)
}

func (s *Service) Demote(ctx context.Context, email string) (DemoteResult, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return DemoteResult{}, fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	return s.repo.Demote(ctx, email)
}

// StatusReport lists pending, rejected and approved entries in that order.
// Approved entries come from users holding the trainer role.
func (s *Service) StatusReport(ctx context.Context) ([]StatusEntry, error) {
	pending, err := s.repo.ListApplications(ctx)
	if err != nil {
		return nil, err
	}
	rejected, err := s.repo.ListRejections(ctx)
	if err != nil {
		return nil, err
	}
	approved, err := s.users.ListByRole(ctx, user.RoleTrainer)
	if err != nil {
		return nil, err
	}

	out := make([]StatusEntry, 0, len(pending)+len(rejected)+len(approved))
	for _, p := range pending {
		out = append(out, StatusEntry{FullName: orNA(p.FullName), Email: p.Email, Status: "Pending"})
	}
	for _, r := range rejected {
		fb := r.Feedback
		out = append(out, StatusEntry{FullName: orNA(r.FullName), Email: r.Email, Status: "Rejected", Feedback: &fb})
	}
	for _, u := range approved {
		out = append(out, StatusEntry{FullName: u.NameOr("N/A"), Email: u.Email, Status: "Approved"})
	}
	return out, nil
}

func (s *Service) ListTrainers(ctx context.Context) ([]Trainer, error) {
	return s.repo.ListTrainers(ctx)
}

func (s *Service) GetTrainer(ctx context.Context, id string) (*Trainer, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: trainer id is required", ErrBadRequest)
	}
	return s.repo.GetTrainer(ctx, id)
}

func (s *Service) TrainerByEmail(ctx context.Context, email string) (*Trainer, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrBadRequest)
	}
	return s.repo.TrainerByEmail(ctx, email)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
