package forum

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/firebase"
)

const colPosts = "forumPosts"

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) Create(ctx context.Context, p Post) (string, error) {
	ref := r.fs.Collection(colPosts).NewDoc()
	if _, err := ref.Create(ctx, p); err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Post, error) {
	doc, err := r.fs.Collection(colPosts).Doc(id).Get(ctx)
	if firebase.IsNotFound(err) {
		return nil, fmt.Errorf("%w: post not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var p Post
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode post: %w", err)
	}
	p.ID = doc.Ref.ID
	return &p, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	return firebase.Count(ctx, r.fs.Collection(colPosts).Query)
}

func (r *Repo) ListPage(ctx context.Context, offset, limit int) ([]Post, error) {
	it := r.fs.Collection(colPosts).
		OrderBy("createdAt", firestore.Desc).
		Offset(offset).
		Limit(limit).
		Documents(ctx)
	return firebase.DecodeAll(it, func(p *Post, id string) { p.ID = id })
}

// Vote adds email to the chosen vote set and removes it from the other one
// in a single document write.
func (r *Repo) Vote(ctx context.Context, postID, email, kind string) error {
	_, err := r.fs.Collection(colPosts).Doc(postID).Update(ctx, []firestore.Update{
		{Path: field(kind), Value: firestore.ArrayUnion(email)},
		{Path: field(opposite(kind)), Value: firestore.ArrayRemove(email)},
	})
	if firebase.IsNotFound(err) {
		return fmt.Errorf("%w: post not found", ErrNotFound)
	}
	return err
}
