package memory

import (
	"context"
	"fmt"
	"time"

	"fitness-platform/backend/internal/domain/newsletter"
)

type Newsletter struct {
	db *DB
}

func (r *Newsletter) Create(ctx context.Context, s newsletter.Subscriber) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.subscribers.get(s.Email); ok {
		return fmt.Errorf("%w: you are already subscribed", newsletter.ErrConflict)
	}
	r.db.subscribers.put(s.Email, s)
	return nil
}

func (r *Newsletter) List(ctx context.Context) ([]newsletter.Subscriber, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.subscribers.newestFirst(func(s newsletter.Subscriber) time.Time { return s.SubscribedAt }), nil
}

func (r *Newsletter) Count(ctx context.Context) (int, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.subscribers.len(), nil
}
