package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"fitness-platform/backend/internal/domain/forum"
)

type Posts struct {
	db *DB
}

func (r *Posts) Create(ctx context.Context, p forum.Post) (string, error) {
	if err := alive(ctx); err != nil {
		return "", err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p.ID = r.db.nextID("post")
	p.Upvotes = cloneStrings(p.Upvotes)
	p.Downvotes = cloneStrings(p.Downvotes)
	r.db.posts.put(p.ID, p)
	return p.ID, nil
}

func (r *Posts) Get(ctx context.Context, id string) (*forum.Post, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.posts.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: post not found", forum.ErrNotFound)
	}
	p = clonePost(p)
	return &p, nil
}

func (r *Posts) Count(ctx context.Context) (int, error) {
	if err := alive(ctx); err != nil {
		return 0, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	return r.db.posts.len(), nil
}

func (r *Posts) ListPage(ctx context.Context, offset, limit int) ([]forum.Post, error) {
	if err := alive(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	all := r.db.posts.newestFirst(func(p forum.Post) time.Time { return p.CreatedAt })
	out := page(all, offset, limit)
	for i := range out {
		out[i] = clonePost(out[i])
	}
	return out, nil
}

func (r *Posts) Vote(ctx context.Context, postID, email, kind string) error {
	if err := alive(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.posts.get(postID)
	if !ok {
		return fmt.Errorf("%w: post not found", forum.ErrNotFound)
	}
	add, remove := &p.Upvotes, &p.Downvotes
	if kind == forum.VoteDown {
		add, remove = &p.Downvotes, &p.Upvotes
	}
	if !slices.Contains(*add, email) {
		*add = append(cloneStrings(*add), email)
	}
	*remove = slices.DeleteFunc(cloneStrings(*remove), func(e string) bool { return e == email })
	r.db.posts.put(p.ID, p)
	return nil
}

func clonePost(p forum.Post) forum.Post {
	p.Upvotes = cloneStrings(p.Upvotes)
	p.Downvotes = cloneStrings(p.Downvotes)
	return p
}
