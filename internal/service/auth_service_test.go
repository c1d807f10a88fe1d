package service

import (
	"Brightline/internal/api/config"
	"Brightline/internal/pkg/security"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeKV) {
	hash, err := security.HashPassword("s3cret")
	require.NoError(t, err)
	kv := newFakeKV()
	svc := NewAuthService([]config.AdminUser{{
		UID:          "admin-1",
		Email:        "admin@brightline.agency",
		DisplayName:  "Site Admin",
		PasswordHash: hash,
	}}, security.NewJWTManager("test-secret", time.Hour), kv)
	return svc, kv
}

func TestAuthService_SignInAndVerify(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	token, err := svc.SignIn(ctx, "Admin@Brightline.agency", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", token.User.UID)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	user, err := svc.Verify(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, "Site Admin", user.DisplayName)
}

func TestAuthService_BadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "admin@brightline.agency", "wrong")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
	_, err = svc.SignIn(ctx, "nobody@brightline.agency", "s3cret")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, UnauthorizedError)
}

func TestAuthService_SignOutRevokesToken(t *testing.T) {
	svc, kv := newAuthFixture(t)
	ctx := context.Background()

	var states []*security.AuthUser
	unsubscribe := svc.OnAuthStateChanged(func(user *security.AuthUser) {
		states = append(states, user)
	})

	token, err := svc.SignIn(ctx, "admin@brightline.agency", "s3cret")
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, token.Token))

	_, err = svc.Verify(ctx, token.Token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.Len(t, kv.values, 1)

	require.Len(t, states, 2)
	assert.Equal(t, "admin-1", states[0].UID)
	assert.Nil(t, states[1])

	unsubscribe()
	_, err = svc.SignIn(ctx, "admin@brightline.agency", "s3cret")
	require.NoError(t, err)
	assert.Len(t, states, 2)
}
