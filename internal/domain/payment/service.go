package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76/webhook"

	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/lib/sl"
	"fitness-platform/backend/internal/utils"
)

type Repository interface {
	Create(ctx context.Context, p Payment) (string, error)
	Get(ctx context.Context, id string) (*Payment, error)
	TotalRevenue(ctx context.Context) (float64, error)
	Recent(ctx context.Context, limit int) ([]Payment, error)
	SaveEvent(ctx context.Context, e Event) error
}

type Provider interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

type BookingCounter interface {
	IncrementBookings(ctx context.Context, className string) (bool, error)
}

type SubscriberCounter interface {
	Count(ctx context.Context) (int, error)
}

type MemberCounter interface {
	CountByRole(ctx context.Context, role string) (int, error)
}

type Config struct {
	Currency      string
	WebhookSecret string
}

type Deps struct {
	Repo        Repository
	Provider    Provider
	Bookings    BookingCounter
	Subscribers SubscriberCounter
	Members     MemberCounter
	Log         *slog.Logger
}

type Service struct {
	repo        Repository
	provider    Provider
	bookings    BookingCounter
	subscribers SubscriberCounter
	members     MemberCounter
	log         *slog.Logger
	cfg         Config
	validate    *validator.Validate
	now         func() time.Time
}

// NewService wires the payment recorder. A nil Provider disables intent
// creation; everything else keeps working.
func NewService(d Deps, cfg Config) *Service {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if d.Log == nil {
		d.Log = sl.Discard()
	}
	return &Service{
		repo:        d.Repo,
		provider:    d.Provider,
		bookings:    d.Bookings,
		subscribers: d.Subscribers,
		members:     d.Members,
		log:         d.Log,
		cfg:         cfg,
		validate:    utils.NewValidator(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateIntent opens a provider payment intent for price in major units.
// An empty idempotencyKey gets a fresh one.
func (s *Service) CreateIntent(ctx context.Context, in IntentInput, idempotencyKey string) (*Intent, error) {
	price, err := ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, ErrNotConfigured
	}
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	intent, err := s.provider.CreateIntent(ctx, IntentRequest{
		Amount:         MinorUnits(price),
		Currency:       s.cfg.Currency,
		Metadata:       map[string]string{"trainerId": in.TrainerID},
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return nil, err
	}
	return intent, nil
}

// RecordPayment stores the payment and then bumps the booking counter of the
// class named by its package. The two writes are independent.
func (s *Service) RecordPayment(ctx context.Context, in RecordInput) (*RecordResult, error) {
	in.Trim()
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, utils.DescribeValidation(err))
	}

	p := Payment{
		Price:           in.Price,
		Package:         in.Package,
		TrainerID:       in.TrainerID,
		TrainerName:     in.TrainerName,
		SlotID:          in.SlotID,
		Day:             in.Day,
		Time:            in.Time,
		UserEmail:       in.UserEmail,
		UserName:        in.UserName,
		PaymentIntentID: in.PaymentIntentID,
		PaidAt:          s.now(),
	}
	if in.PaidAt != nil && !in.PaidAt.IsZero() {
		p.PaidAt = in.PaidAt.UTC()
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	res := &RecordResult{ID: id}
	if p.Package == "" {
		return res, nil
	}
	counted, err := s.bookings.IncrementBookings(ctx, p.Package)
	if err != nil {
		s.log.Error("failed to increment class bookings",
			slog.String("payment_id", id),
			slog.String("package", p.Package),
			sl.Err(err),
		)
		return res, nil
	}
	res.BookingCounted = counted
	return res, nil
}

func (s *Service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrBadRequest)
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Balance(ctx context.Context) (*Balance, error) {
	total, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}
	recent, err := s.repo.Recent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent payments: %w", err)
	}
	subs, err := s.subscribers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("subscriber count: %w", err)
	}
	members, err := s.members.CountByRole(ctx, user.RoleMember)
	if err != nil {
		return nil, fmt.Errorf("member count: %w", err)
	}
	return &Balance{
		TotalBalance:     total,
		RecentPayments:   recent,
		TotalSubscribers: subs,
		TotalPaidMembers: members,
	}, nil
}

// HandleWebhook verifies the Stripe-Signature header and records the event.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (*Event, error) {
	if s.cfg.WebhookSecret == "" {
		return nil, ErrNotConfigured
	}
	ev, err := webhook.ConstructEventWithOptions(payload, signature, s.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: webhook signature verification failed", ErrBadRequest)
	}

	e := Event{
		ID:         ev.ID,
		Type:       string(ev.Type),
		Created:    time.Unix(ev.Created, 0).UTC(),
		Livemode:   ev.Livemode,
		ReceivedAt: s.now(),
	}
	if err := s.repo.SaveEvent(ctx, e); err != nil {
		return nil, fmt.Errorf("save webhook event: %w", err)
	}
	s.log.Info("stripe webhook received", slog.String("event_id", e.ID), slog.String("type", e.Type))
	return &e, nil
}
