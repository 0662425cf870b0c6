package memory

import (
	"context"
	"fmt"

	"fitness-platform/backend/internal/domain/slot"
)

type Slots struct {
	db *DB
}

func (r *Slots) ListByTrainer(ctx context.Context, email string) ([]slot.Slot, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.slots.filter(func(s slot.Slot) bool { return s.TrainerEmail == email }), nil
}

func (r *Slots) PutMany(ctx context.Context, slots []slot.Slot) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, s := range slots {
		if _, ok := r.db.slots.get(s.ID); ok {
			continue
		}
		r.db.slots.put(s.ID, s)
	}
	return nil
}

func (r *Slots) Create(ctx context.Context, s slot.Slot) (string, error) {
	if err := alive(ctx); err != nil {
		return "", err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s.ID = r.db.nextID("slot")
	r.db.slots.put(s.ID, s)
	return s.ID, nil
}

func (r *Slots) DeleteUnbooked(ctx context.Context, id string) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.slots.get(id)
	if !ok {
		return fmt.Errorf("%w: slot not found", slot.ErrNotFound)
	}
	if s.IsBooked {
		return fmt.Errorf("%w: cannot delete a booked slot", slot.ErrConflict)
	}
	r.db.slots.del(id)
	return nil
}
