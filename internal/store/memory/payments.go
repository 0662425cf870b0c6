package memory

import (
	"context"
	"fmt"
	"time"

	"fitness-platform/backend/internal/domain/payment"
)

type Payments struct {
	db *DB
}

func (r *Payments) Create(ctx context.Context, p payment.Payment) (string, error) {
	if err := alive(ctx); err != nil {
		return "", err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p.ID = r.db.nextID("payment")
	r.db.payments.put(p.ID, p)
	return p.ID, nil
}

func (r *Payments) Get(ctx context.Context, id string) (*payment.Payment, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.payments.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: booking not found", payment.ErrNotFound)
	}
	return &p, nil
}

func (r *Payments) TotalRevenue(ctx context.Context) (float64, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	var total float64
	for _, p := range r.db.payments.all() {
		total += p.Price
	}
	return total, nil
}

func (r *Payments) Recent(ctx context.Context, limit int) ([]payment.Payment, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	all := r.db.payments.newestFirst(func(p payment.Payment) time.Time { return p.PaidAt })
	return page(all, 0, limit), nil
}

func (r *Payments) SaveEvent(ctx context.Context, e payment.Event) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.events.put(e.ID, e)
	return nil
}

// Event returns a stored webhook receipt.
func (r *Payments) Event(id string) (payment.Event, bool) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.events.get(id)
}
