package newsletter

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/firebase"
)

const colNewsletter = "newsletter"

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

// Create is keyed by email, so a second subscription fails atomically.
func (r *Repo) Create(ctx context.Context, s Subscriber) error {
	_, err := r.fs.Collection(colNewsletter).Doc(s.Email).Create(ctx, s)
	if firebase.IsAlreadyExists(err) {
		return fmt.Errorf("%w: you are already subscribed", ErrConflict)
	}
	return err
}

func (r *Repo) List(ctx context.Context) ([]Subscriber, error) {
	it := r.fs.Collection(colNewsletter).OrderBy("subscribedAt", firestore.Desc).Documents(ctx)
	return firebase.DecodeAll[Subscriber](it, nil)
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	return firebase.Count(ctx, r.fs.Collection(colNewsletter).Query)
}
