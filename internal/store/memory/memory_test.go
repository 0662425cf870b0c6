package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/domain/slot"
	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/domain/user"
)

func TestTableNewestFirst(t *testing.T) {
	tb := newTable[forum.Post]()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tb.put("a", forum.Post{ID: "a", CreatedAt: t0})
	tb.put("b", forum.Post{ID: "b", CreatedAt: t0.Add(time.Hour)})
	tb.put("c", forum.Post{ID: "c", CreatedAt: t0})

	got := tb.newestFirst(func(p forum.Post) time.Time { return p.CreatedAt })
	ids := []string{}
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, ids)

	assert.True(t, tb.del("c"))
	assert.False(t, tb.del("c"))
	assert.Equal(t, 2, tb.len())
}

func TestPageBounds(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, page(rows, 2, 2))
	assert.Equal(t, []int{5}, page(rows, 4, 6))
	assert.Empty(t, page(rows, 9, 6))
	assert.Equal(t, []int{1, 2}, page(rows, -4, 2))
}

func TestPutManyKeepsExistingSlots(t *testing.T) {
	ctx := context.Background()
	db := New()
	who := "member@fit.test"
	require.NoError(t, db.Slots().PutMany(ctx, []slot.Slot{
		{ID: "tr-monday", TrainerEmail: "c@fit.test", Day: "Monday", IsBooked: true, BookedBy: &who},
	}))

	require.NoError(t, db.Slots().PutMany(ctx, []slot.Slot{
		{ID: "tr-monday", TrainerEmail: "c@fit.test", Day: "Monday"},
		{ID: "tr-friday", TrainerEmail: "c@fit.test", Day: "Friday"},
	}))

	got, err := db.Slots().ListByTrainer(ctx, "c@fit.test")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsBooked)
	require.NotNil(t, got[0].BookedBy)
	assert.Equal(t, who, *got[0].BookedBy)
	assert.False(t, got[1].IsBooked)
}

func TestCommitAcceptancePromotesUser(t *testing.T) {
	ctx := context.Background()
	db := New()
	require.NoError(t, db.Users().Create(ctx, user.User{Email: "coach@fit.test", Role: user.RoleMember}))
	require.NoError(t, db.Trainers().CreateApplication(ctx, trainer.Application{Email: "coach@fit.test", FullName: "Coach"}))

	res, err := db.Trainers().CommitAcceptance(ctx, trainer.Trainer{Email: "coach@fit.test", FullName: "Coach"})
	require.NoError(t, err)
	assert.Equal(t, trainer.AcceptResult{UserUpdated: 1, DeletedFromPending: 1}, res)

	u, err := db.Users().Get(ctx, "coach@fit.test")
	require.NoError(t, err)
	assert.Equal(t, user.RoleTrainer, u.Role)

	_, err = db.Trainers().CommitAcceptance(ctx, trainer.Trainer{Email: "coach@fit.test"})
	assert.True(t, trainer.IsErrNotFound(err))
}

func TestVoteSetsStayDisjoint(t *testing.T) {
	ctx := context.Background()
	posts := New().Posts()
	id, err := posts.Create(ctx, forum.Post{Title: "t", CreatedAt: time.Now()})
	require.NoError(t, err)

	require.NoError(t, posts.Vote(ctx, id, "a@fit.test", forum.VoteUp))
	require.NoError(t, posts.Vote(ctx, id, "a@fit.test", forum.VoteUp))
	require.NoError(t, posts.Vote(ctx, id, "a@fit.test", forum.VoteDown))

	p, err := posts.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, p.Upvotes)
	assert.Equal(t, []string{"a@fit.test"}, p.Downvotes)

	assert.True(t, forum.IsErrNotFound(posts.Vote(ctx, "missing", "a@fit.test", forum.VoteUp)))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Classes().Count(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
