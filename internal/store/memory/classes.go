package memory

import (
	"context"
	"time"

	"fitness-platform/backend/internal/domain/catalog"
)

type Classes struct {
	db *DB
}

func (r *Classes) Create(ctx context.Context, c catalog.Class) (*catalog.Class, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c.ID = r.db.nextID("class")
	r.db.classes.put(c.ID, c)
	return &c, nil
}

func (r *Classes) Count(ctx context.Context) (int, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.classes.len(), nil
}

func (r *Classes) ListPage(ctx context.Context, offset, limit int) ([]catalog.Class, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return page(all, offset, limit), nil
}

func (r *Classes) ListAll(ctx context.Context) ([]catalog.Class, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.classes.newestFirst(func(c catalog.Class) time.Time { return c.CreatedAt }), nil
}

func (r *Classes) IncrementBookings(ctx context.Context, name string) (bool, error) {
	if err := alive(ctx); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, c := range r.db.classes.all() {
		if c.Name == name {
			c.Bookings++
			r.db.classes.put(c.ID, c)
			return true, nil
		}
	}
	return false, nil
}
