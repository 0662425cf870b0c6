package memory

import (
	"context"
	"fmt"
	"time"

	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/domain/user"
)

type Trainers struct {
	db *DB
}

func (r *Trainers) CreateApplication(ctx context.Context, a trainer.Application) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.applications.get(a.Email); ok {
		return fmt.Errorf("%w: an application for this email is already pending", trainer.ErrConflict)
	}
	r.db.applications.put(a.Email, a)
	return nil
}

func (r *Trainers) GetApplication(ctx context.Context, email string) (*trainer.Application, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	a, ok := r.db.applications.get(email)
	if !ok {
		return nil, fmt.Errorf("%w: trainer application not found", trainer.ErrNotFound)
	}
	return &a, nil
}

func (r *Trainers) ListApplications(ctx context.Context) ([]trainer.Application, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.applications.newestFirst(func(a trainer.Application) time.Time { return a.AppliedAt }), nil
}

func (r *Trainers) CommitAcceptance(ctx context.Context, t trainer.Trainer) (trainer.AcceptResult, error) {
	if err := alive(ctx); err != nil {
		return trainer.AcceptResult{}, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.applications.get(t.Email); !ok {
		return trainer.AcceptResult{}, fmt.Errorf("%w: trainer application not found", trainer.ErrNotFound)
	}

	var res trainer.AcceptResult
	t.ID = ""
	for _, existing := range r.db.trainers.all() {
		if existing.Email == t.Email {
			t.ID = existing.ID
			break
		}
	}
	if t.ID == "" {
		t.ID = r.db.nextID("trainer")
	}
	r.db.trainers.put(t.ID, t)

	if u, ok := r.db.users.get(t.Email); ok && u.Role != user.RoleTrainer {
		u.Role = user.RoleTrainer
		r.db.users.put(u.Email, u)
		res.UserUpdated = 1
	}
	r.db.applications.del(t.Email)
	res.DeletedFromPending = 1
	return res, nil
}

func (r *Trainers) CommitRejection(ctx context.Context, rej trainer.Rejection) (trainer.RejectResult, error) {
	if err := alive(ctx); err != nil {
		return trainer.RejectResult{}, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.applications.get(rej.Email); !ok {
		return trainer.RejectResult{}, fmt.Errorf("%w: trainer application not found", trainer.ErrNotFound)
	}
	rej.ID = r.db.nextID("rejection")
	r.db.rejections.put(rej.ID, rej)
	r.db.applications.del(rej.Email)
	return trainer.RejectResult{Deleted: 1, Rejected: true}, nil
}

func (r *Trainers) ListRejections(ctx context.Context) ([]trainer.Rejection, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.rejections.newestFirst(func(rj trainer.Rejection) time.Time { return rj.RejectedAt }), nil
}

func (r *Trainers) Demote(ctx context.Context, email string) (trainer.DemoteResult, error) {
	if err := alive(ctx); err != nil {
		return trainer.DemoteResult{}, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var res trainer.DemoteResult
	if u, ok := r.db.users.get(email); ok && u.Role != user.RoleMember {
		u.Role = user.RoleMember
		r.db.users.put(email, u)
		res.Modified = 1
	}
	for _, t := range r.db.trainers.filter(func(t trainer.Trainer) bool { return t.Email == email }) {
		if r.db.trainers.del(t.ID) {
			res.Deleted++
		}
	}
	return res, nil
}

func (r *Trainers) ListTrainers(ctx context.Context) ([]trainer.Trainer, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.trainers.newestFirst(func(t trainer.Trainer) time.Time { return t.AcceptedAt }), nil
}

func (r *Trainers) GetTrainer(ctx context.Context, id string) (*trainer.Trainer, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	t, ok := r.db.trainers.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: trainer not found", trainer.ErrNotFound)
	}
	return &t, nil
}

func (r *Trainers) TrainerByEmail(ctx context.Context, email string) (*trainer.Trainer, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	for _, t := range r.db.trainers.all() {
		if t.Email == email {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: trainer not found", trainer.ErrNotFound)
}
