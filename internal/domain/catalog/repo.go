package catalog

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/firebase"
)

const colClasses = "classes"

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) Create(ctx context.Context, c Class) (*Class, error) {
	ref := r.fs.Collection(colClasses).NewDoc()
	if _, err := ref.Create(ctx, c); err != nil {
		return nil, err
	}
	c.ID = ref.ID
	return &c, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	return firebase.Count(ctx, r.fs.Collection(colClasses).Query)
}

// ListPage returns classes newest first, skipping offset.
func (r *Repo) ListPage(ctx context.Context, offset, limit int) ([]Class, error) {
	it := r.fs.Collection(colClasses).
		OrderBy("createdAt", firestore.Desc).
		Offset(offset).
		Limit(limit).
		Documents(ctx)
	return firebase.DecodeAll(it, setClassID)
}

func (r *Repo) ListAll(ctx context.Context) ([]Class, error) {
	it := r.fs.Collection(colClasses).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return firebase.DecodeAll(it, setClassID)
}

// IncrementBookings bumps the counter on the first class with that exact name.
// It reports whether a class matched.
func (r *Repo) IncrementBookings(ctx context.Context, name string) (bool, error) {
	docs, err := r.fs.Collection(colClasses).Where("name", "==", name).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return false, err
	}
	if len(docs) == 0 {
		return false, nil
	}
	_, err = docs[0].Ref.Update(ctx, []firestore.Update{{Path: "bookings", Value: firestore.Increment(1)}})
	if err != nil {
		return false, fmt.Errorf("increment bookings: %w", err)
	}
	return true, nil
}

func setClassID(c *Class, id string) { c.ID = id }
