package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	"fitness-platform/backend/internal/firebase"
)

// Collection holds user documents keyed by normalized email.
const Collection = "users"

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) Create(ctx context.Context, u User) error {
	_, err := r.fs.Collection(Collection).Doc(u.Email).Create(ctx, u)
	if firebase.IsAlreadyExists(err) {
		return fmt.Errorf("%w: user already exists", ErrConflict)
	}
	return err
}

func (r *Repo) Get(ctx context.Context, email string) (*User, error) {
	doc, err := r.fs.Collection(Collection).Doc(email).Get(ctx)
	if firebase.IsNotFound(err) {
		return nil, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var u User
	if err := doc.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	if u.Email == "" {
		u.Email = email
	}
	return &u, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, email, displayName, photoURL string, at time.Time) error {
	_, err := r.fs.Collection(Collection).Doc(email).Update(ctx, []firestore.Update{
		{Path: "displayName", Value: displayName},
		{Path: "photoURL", Value: photoURL},
		{Path: "updatedAt", Value: at},
	})
	if firebase.IsNotFound(err) {
		return fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return err
}

// ProfilesByEmail fetches the given users in one round trip. Unknown emails
// are simply absent from the result.
func (r *Repo) ProfilesByEmail(ctx context.Context, emails []string) (map[string]User, error) {
	out := map[string]User{}
	if len(emails) == 0 {
		return out, nil
	}

	seen := map[string]bool{}
	refs := make([]*firestore.DocumentRef, 0, len(emails))
	for _, e := range emails {
		// not a valid document ID, so it cannot name a user
		if e == "" || seen[e] || strings.Contains(e, "/") {
			continue
		}
		seen[e] = true
		refs = append(refs, r.fs.Collection(Collection).Doc(e))
	}
	if len(refs) == 0 {
		return out, nil
	}

	snaps, err := r.fs.GetAll(ctx, refs)
	if err != nil {
		return nil, err
	}
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		var u User
		if err := snap.DataTo(&u); err != nil {
			continue
		}
		if u.Email == "" {
			u.Email = snap.Ref.ID
		}
		out[u.Email] = u
	}
	return out, nil
}

func (r *Repo) ListByRole(ctx context.Context, role string) ([]User, error) {
	it := r.fs.Collection(Collection).Where("role", "==", role).Documents(ctx)
	return firebase.DecodeAll(it, func(u *User, id string) {
		if u.Email == "" {
			u.Email = id
		}
	})
}

func (r *Repo) CountByRole(ctx context.Context, role string) (int, error) {
	return firebase.Count(ctx, r.fs.Collection(Collection).Where("role", "==", role))
}
