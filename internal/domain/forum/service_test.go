package forum_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/store/memory"
)

func newService(t *testing.T) (*forum.Service, *memory.DB) {
	t.Helper()
	db := memory.New()
	return forum.NewService(db.Posts(), db.Users()), db
}

func TestVoteIsIdempotentAndExclusive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	id, err := svc.CreatePost(ctx, forum.CreatePostInput{Title: "Form check", Content: "Deadlift", AuthorEmail: "a@fit.test"})
	require.NoError(t, err)

	require.NoError(t, svc.Vote(ctx, forum.VoteInput{PostID: id, Email: "v@fit.test", Type: forum.VoteUp}))
	require.NoError(t, svc.Vote(ctx, forum.VoteInput{PostID: id, Email: "V@fit.test", Type: forum.VoteUp}))

	p, err := svc.GetPost(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"v@fit.test"}, p.Upvotes)
	assert.Equal(t, 1, p.UpvoteCount)
	assert.Equal(t, 0, p.DownvoteCount)

	require.NoError(t, svc.Vote(ctx, forum.VoteInput{PostID: id, Email: "v@fit.test", Type: forum.VoteDown}))
	p, err = svc.GetPost(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, p.Upvotes)
	assert.Equal(t, []string{"v@fit.test"}, p.Downvotes)
	assert.Equal(t, 0, p.UpvoteCount)
	assert.Equal(t, 1, p.DownvoteCount)
}

func TestVoteValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	err := svc.Vote(ctx, forum.VoteInput{PostID: "x", Email: "v@fit.test", Type: "sideways"})
	assert.True(t, forum.IsErrBadRequest(err))

	err = svc.Vote(ctx, forum.VoteInput{PostID: "x", Type: forum.VoteUp})
	assert.True(t, forum.IsErrBadRequest(err))

	err = svc.Vote(ctx, forum.VoteInput{PostID: "missing", Email: "v@fit.test", Type: forum.VoteUp})
	assert.True(t, forum.IsErrNotFound(err))
}

func TestAuthorEnrichment(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	users := user.NewService(db.Users())
	_, err := users.Register(ctx, user.RegisterInput{Email: "coach@fit.test", DisplayName: "Coach Kim"})
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, forum.CreatePostInput{Title: "a", Content: "b", AuthorEmail: "Coach@fit.test"})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, forum.CreatePostInput{Title: "c", Content: "d", AuthorEmail: "stranger@fit.test"})
	require.NoError(t, err)

	feed, err := svc.HomeFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, "stranger@fit.test", feed[0].AuthorEmail)
	assert.Equal(t, "Anonymous", feed[0].AuthorName)
	assert.Equal(t, user.RoleMember, feed[0].Role)

	assert.Equal(t, "Coach Kim", feed[1].AuthorName)
	assert.Equal(t, user.RoleMember, feed[1].Role)
	assert.NotNil(t, feed[1].Upvotes)
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	for i := 0; i < 8; i++ {
		_, err := svc.CreatePost(ctx, forum.CreatePostInput{Title: fmt.Sprintf("post %d", i), Content: "c", AuthorEmail: "a@fit.test"})
		require.NoError(t, err)
	}

	p, err := svc.ListPosts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	require.Len(t, p.Posts, 2)
	assert.Equal(t, "post 1", p.Posts[0].Title)

	feed, err := svc.HomeFeed(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, forum.PageSize)
	assert.Equal(t, "post 7", feed[0].Title)
}

func TestCreateAndGetPost(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.CreatePost(ctx, forum.CreatePostInput{Title: "no body"})
	assert.True(t, forum.IsErrBadRequest(err))

	_, err = svc.GetPost(ctx, "missing")
	assert.True(t, forum.IsErrNotFound(err))
}

func TestCreatePostRejectsBadAuthor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	for _, email := range []string{"not-an-email", "a/b@fit.test/x", "users/a"} {
		_, err := svc.CreatePost(ctx, forum.CreatePostInput{Title: "t", Content: "c", AuthorEmail: email})
		assert.True(t, forum.IsErrBadRequest(err), email)
	}

	p, err := svc.ListPosts(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, p.Posts)
}

func TestListPostsPastLastPage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	for i := 0; i < 8; i++ {
		_, err := svc.CreatePost(ctx, forum.CreatePostInput{Title: fmt.Sprintf("post %d", i), Content: "c", AuthorEmail: "a@fit.test"})
		require.NoError(t, err)
	}

	for _, page := range []int{3, 1537228672809129303} {
		p, err := svc.ListPosts(ctx, page)
		require.NoError(t, err)
		assert.NotNil(t, p.Posts)
		assert.Empty(t, p.Posts)
		assert.Equal(t, 2, p.TotalPages)
	}
}
