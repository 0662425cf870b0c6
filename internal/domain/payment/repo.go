package payment

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/firebase"
)

const (
	colPayments = "payments"
	colEvents   = "stripeEvents"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) Create(ctx context.Context, p Payment) (string, error) {
	ref := r.fs.Collection(colPayments).NewDoc()
	if _, err := ref.Create(ctx, p); err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Payment, error) {
	doc, err := r.fs.Collection(colPayments).Doc(id).Get(ctx)
	if firebase.IsNotFound(err) {
		return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var p Payment
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode payment: %w", err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (r *Repo) TotalRevenue(ctx context.Context) (float64, error) {
	return firebase.Sum(ctx, r.fs.Collection(colPayments).Query, "price")
}

func (r *Repo) Recent(ctx context.Context, limit int) ([]Payment, error) {
	it := r.fs.Collection(colPayments).OrderBy("paidAt", firestore.Desc).Limit(limit).Documents(ctx)
	return firebase.DecodeAll(it, func(p *Payment, id string) { p.ID = id })
}

// SaveEvent is keyed by the provider event ID so redeliveries overwrite.
func (r *Repo) SaveEvent(ctx context.Context, e Event) error {
	_, err := r.fs.Collection(colEvents).Doc(e.ID).Set(ctx, e)
	return err
}
