package slot

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/firebase"
)

const colSlots = "trainer-slots"

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) ListByTrainer(ctx context.Context, email string) ([]Slot, error) {
	it := r.fs.Collection(colSlots).Where("trainerEmail", "==", email).Documents(ctx)
	return firebase.DecodeAll(it, func(s *Slot, id string) { s.ID = id })
}

// PutMany creates slots under their own IDs. A slot that already exists is
// left untouched, so a concurrent booking is never reset.
func (r *Repo) PutMany(ctx context.Context, slots []Slot) error {
	if len(slots) == 0 {
		return nil
	}
	bw := r.fs.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(slots))
	for _, s := range slots {
		j, err := bw.Create(r.fs.Collection(colSlots).Doc(s.ID), s)
		if err != nil {
			bw.End()
			return err
		}
		jobs = append(jobs, j)
	}
	bw.End()
	for _, j := range jobs {
		if _, err := j.Results(); err != nil && !firebase.IsAlreadyExists(err) {
			return fmt.Errorf("write slot: %w", err)
		}
	}
	return nil
}

func (r *Repo) Create(ctx context.Context, s Slot) (string, error) {
	ref := r.fs.Collection(colSlots).NewDoc()
	if _, err := ref.Create(ctx, s); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// DeleteUnbooked removes the slot unless it is booked, checking and deleting
// inside one transaction.
func (r *Repo) DeleteUnbooked(ctx context.Context, id string) error {
	ref := r.fs.Collection(colSlots).Doc(id)
	return r.fs.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if firebase.IsNotFound(err) {
			return fmt.Errorf("%w: slot not found", ErrNotFound)
		}
		if err != nil {
			return err
		}
		if booked, _ := doc.Data()["isBooked"].(bool); booked {
			return fmt.Errorf("%w: cannot delete a booked slot", ErrConflict)
		}
		return tx.Delete(ref, firestore.Exists)
	})
}
