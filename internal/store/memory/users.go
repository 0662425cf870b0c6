package memory

import (
	"context"
	"fmt"
	"time"

	"fitness-platform/backend/internal/domain/user"
)

type Users struct {
	db *DB
}

func (r *Users) Create(ctx context.Context, u user.User) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users.get(u.Email); ok {
		return fmt.Errorf("%w: user already exists", user.ErrConflict)
	}
	r.db.users.put(u.Email, u)
	return nil
}

func (r *Users) Get(ctx context.Context, email string) (*user.User, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users.get(email)
	if !ok {
		return nil, fmt.Errorf("%w: user not found", user.ErrNotFound)
	}
	return &u, nil
}

func (r *Users) UpdateProfile(ctx context.Context, email, displayName, photoURL string, at time.Time) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users.get(email)
	if !ok {
		return fmt.Errorf("%w: user not found", user.ErrNotFound)
	}
	u.DisplayName = displayName
	u.PhotoURL = photoURL
	u.UpdatedAt = at
	r.db.users.put(email, u)
	return nil
}

func (r *Users) ProfilesByEmail(ctx context.Context, emails []string) (map[string]user.User, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := map[string]user.User{}
	for _, e := range emails {
		if u, ok := r.db.users.get(e); ok {
			out[e] = u
		}
	}
	return out, nil
}

func (r *Users) ListByRole(ctx context.Context, role string) ([]user.User, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.users.filter(func(u user.User) bool { return u.Role == role }), nil
}

func (r *Users) CountByRole(ctx context.Context, role string) (int, error) {
	out, err := r.ListByRole(ctx, role)
	return len(out), err
}
