package trainer

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/firebase"
)

const (
	colPending    = "become-a-trainer"
	colTrainers   = "trainers"
	colRejections = "trainer-rejections"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) CreateApplication(ctx context.Context, a Application) error {
	_, err := r.fs.Collection(colPending).Doc(a.Email).Create(ctx, a)
	if firebase.IsAlreadyExists(err) {
		return fmt.Errorf("%w: an application for this email is already pending", ErrConflict)
	}
	return err
}

func (r *Repo) GetApplication(ctx context.Context, email string) (*Application, error) {
	doc, err := r.fs.Collection(colPending).Doc(email).Get(ctx)
	if firebase.IsNotFound(err) {
		return nil, fmt.Errorf("%w: trainer application not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var a Application
	if err := doc.DataTo(&a); err != nil {
		return nil, fmt.Errorf("failed to decode application: %w", err)
	}
	return &a, nil
}

func (r *Repo) ListApplications(ctx context.Context) ([]Application, error) {
	it := r.fs.Collection(colPending).OrderBy("appliedAt", firestore.Desc).Documents(ctx)
	return firebase.DecodeAll[Application](it, nil)
}

// CommitAcceptance writes the accepted trainer, promotes the user and removes
// the pending application in one transaction.
func (r *Repo) CommitAcceptance(ctx context.Context, t Trainer) (AcceptResult, error) {
	var res AcceptResult
	pendingRef := r.fs.Collection(colPending).Doc(t.Email)
	userRef := r.fs.Collection(user.Collection).Doc(t.Email)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		res = AcceptResult{}

		if _, err := tx.Get(pendingRef); err != nil {
			if firebase.IsNotFound(err) {
				return fmt.Errorf("%w: trainer application not found", ErrNotFound)
			}
			return err
		}

		existing, err := tx.Documents(r.fs.Collection(colTrainers).Where("email", "==", t.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		trainerRef := r.fs.Collection(colTrainers).NewDoc()
		if len(existing) > 0 {
			trainerRef = existing[0].Ref
		}

		userSnap, err := tx.Get(userRef)
		if err != nil && !firebase.IsNotFound(err) {
			return err
		}

		if err := tx.Set(trainerRef, t); err != nil {
			return err
		}
		if userSnap != nil && userSnap.Exists() {
			if role, _ := userSnap.Data()["role"].(string); role != user.RoleTrainer {
				if err := tx.Update(userRef, []firestore.Update{{Path: "role", Value: user.RoleTrainer}}); err != nil {
					return err
				}
				res.UserUpdated = 1
			}
		}
		if err := tx.Delete(pendingRef); err != nil {
			return err
		}
		res.DeletedFromPending = 1
		return nil
	})
	if err != nil {
		return AcceptResult{}, err
	}
	return res, nil
}

// CommitRejection appends the rejection and removes the pending application.
func (r *Repo) CommitRejection(ctx context.Context, rej Rejection) (RejectResult, error) {
	var res RejectResult
	pendingRef := r.fs.Collection(colPending).Doc(rej.Email)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		res = RejectResult{}
		if _, err := tx.Get(pendingRef); err != nil {
			if firebase.IsNotFound(err) {
				return fmt.Errorf("%w: trainer application not found", ErrNotFound)
			}
			return err
		}
		if err := tx.Create(r.fs.Collection(colRejections).NewDoc(), rej); err != nil {
			return err
		}
		if err := tx.Delete(pendingRef); err != nil {
			return err
		}
		res.Deleted = 1
		res.Rejected = true
		return nil
	})
	if err != nil {
		return RejectResult{}, err
	}
	return res, nil
}

func (r *Repo) ListRejections(ctx context.Context) ([]Rejection, error) {
	it := r.fs.Collection(colRejections).OrderBy("rejectedAt", firestore.Desc).Documents(ctx)
	return firebase.DecodeAll(it, func(rj *Rejection, id string) { rj.ID = id })
}

// Demote drops the user back to member and removes the accepted record.
// Missing documents are not an error; the counts say what changed.
func (r *Repo) Demote(ctx context.Context, email string) (DemoteResult, error) {
	var res DemoteResult
	userRef := r.fs.Collection(user.Collection).Doc(email)

	err := r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		res = DemoteResult{}

		userSnap, err := tx.Get(userRef)
		if err != nil && !firebase.IsNotFound(err) {
			return err
		}
		accepted, err := tx.Documents(r.fs.Collection(colTrainers).Where("email", "==", email)).GetAll()
		if err != nil {
			return err
		}

		if userSnap != nil && userSnap.Exists() {
			if role, _ := userSnap.Data()["role"].(string); role != user.RoleMember {
				if err := tx.Update(userRef, []firestore.Update{{Path: "role", Value: user.RoleMember}}); err != nil {
					return err
				}
				res.Modified = 1
			}
		}
		for _, doc := range accepted {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
			res.Deleted++
		}
		return nil
	})
	if err != nil {
		return DemoteResult{}, err
	}
	return res, nil
}

func (r *Repo) ListTrainers(ctx context.Context) ([]Trainer, error) {
	it := r.fs.Collection(colTrainers).OrderBy("acceptedAt", firestore.Desc).Documents(ctx)
	return firebase.DecodeAll(it, func(t *Trainer, id string) { t.ID = id })
}

func (r *Repo) GetTrainer(ctx context.Context, id string) (*Trainer, error) {
	doc, err := r.fs.Collection(colTrainers).Doc(id).Get(ctx)
	if firebase.IsNotFound(err) {
		return nil, fmt.Errorf("%w: trainer not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var t Trainer
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("failed to decode trainer: %w", err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}

func (r *Repo) TrainerByEmail(ctx context.Context, email string) (*Trainer, error) {
	it := r.fs.Collection(colTrainers).Where("email", "==", email).Limit(1).Documents(ctx)
	out, err := firebase.DecodeAll(it, func(t *Trainer, id string) { t.ID = id })
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: trainer not found", ErrNotFound)
	}
	return &out[0], nil
}
