// Package memory is a process-local implementation of every repository the
// domain services need. It backs local runs without a Firebase project and
// the test suites.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/domain/newsletter"
	"fitness-platform/backend/internal/domain/payment"
	"fitness-platform/backend/internal/domain/slot"
	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/domain/user"
)

// DB holds all collections behind one lock so multi-collection writes are
// atomic, like the Firestore transactions they stand in for.
type DB struct {
	mu  sync.RWMutex
	seq int

	users        *table[user.User]
	applications *table[trainer.Application]
	trainers     *table[trainer.Trainer]
	rejections   *table[trainer.Rejection]
	classes      *table[catalog.Class]
	posts        *table[forum.Post]
	payments     *table[payment.Payment]
	events       *table[payment.Event]
	slots        *table[slot.Slot]
	subscribers  *table[newsletter.Subscriber]
}

func New() *DB {
	return &DB{
		users:        newTable[user.User](),
		applications: newTable[trainer.Application](),
		trainers:     newTable[trainer.Trainer](),
		rejections:   newTable[trainer.Rejection](),
		classes:      newTable[catalog.Class](),
		posts:        newTable[forum.Post](),
		payments:     newTable[payment.Payment](),
		events:       newTable[payment.Event](),
		slots:        newTable[slot.Slot](),
		subscribers:  newTable[newsletter.Subscriber](),
	}
}

func (db *DB) Users() *Users           { return &Users{db: db} }
func (db *DB) Trainers() *Trainers     { return &Trainers{db: db} }
func (db *DB) Classes() *Classes       { return &Classes{db: db} }
func (db *DB) Posts() *Posts           { return &Posts{db: db} }
func (db *DB) Payments() *Payments     { return &Payments{db: db} }
func (db *DB) Slots() *Slots           { return &Slots{db: db} }
func (db *DB) Newsletter() *Newsletter { return &Newsletter{db: db} }

// nextID must be called with mu held.
func (db *DB) nextID(prefix string) string {
	db.seq++
	return fmt.Sprintf("%s-%06d", prefix, db.seq)
}

func alive(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// table keeps rows in insertion order.
type table[T any] struct {
	keys []string
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: map[string]T{}}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.keys = append(t.keys, id)
	}
	t.rows[id] = v
}

func (t *table[T]) del(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, k := range t.keys {
		if k == id {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) len() int { return len(t.rows) }

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.rows[k])
	}
	return out
}

func (t *table[T]) filter(keep func(T) bool) []T {
	out := []T{}
	for _, k := range t.keys {
		if v := t.rows[k]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// newestFirst orders rows by at descending. Rows with equal timestamps come
// out in reverse insertion order.
func (t *table[T]) newestFirst(at func(T) time.Time) []T {
	out := make([]T, 0, len(t.keys))
	for i := len(t.keys) - 1; i >= 0; i-- {
		out = append(out, t.rows[t.keys[i]])
	}
	sort.SliceStable(out, func(i, j int) bool { return at(out[i]).After(at(out[j])) })
	return out
}

func page[T any](rows []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset > len(rows) {
		offset = len(rows)
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}

func cloneStrings(in []string) []string {
	return append([]string{}, in...)
}
