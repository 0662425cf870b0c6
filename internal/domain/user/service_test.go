package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/store/memory"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(memory.New().Users())

	u, err := svc.Register(ctx, user.RegisterInput{Email: "  Jane@Fit.TEST ", DisplayName: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "jane@fit.test", u.Email)
	assert.Equal(t, user.RoleMember, u.Role)
	assert.True(t, u.Active)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = svc.Register(ctx, user.RegisterInput{Email: "jane@fit.test"})
	assert.True(t, user.IsErrConflict(err))

	_, err = svc.Register(ctx, user.RegisterInput{})
	assert.True(t, user.IsErrBadRequest(err))
}

func TestGetAndUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(memory.New().Users())

	_, err := svc.Get(ctx, "")
	assert.True(t, user.IsErrBadRequest(err))

	_, err = svc.Get(ctx, "ghost@fit.test")
	assert.True(t, user.IsErrNotFound(err))

	err = svc.UpdateProfile(ctx, "ghost@fit.test", user.UpdateProfileInput{DisplayName: "Ghost"})
	assert.True(t, user.IsErrNotFound(err))

	_, err = svc.Register(ctx, user.RegisterInput{Email: "sam@fit.test"})
	require.NoError(t, err)

	err = svc.UpdateProfile(ctx, "SAM@fit.test", user.UpdateProfileInput{DisplayName: "  "})
	assert.True(t, user.IsErrBadRequest(err))

	require.NoError(t, svc.UpdateProfile(ctx, "SAM@fit.test", user.UpdateProfileInput{DisplayName: "Sam", PhotoURL: "https://img.test/sam.png"}))

	got, err := svc.Get(ctx, "sam@fit.test")
	require.NoError(t, err)
	assert.Equal(t, "Sam", got.DisplayName)
	assert.Equal(t, "https://img.test/sam.png", got.PhotoURL)
	assert.False(t, got.UpdatedAt.IsZero())
}
