package service

import (
	"context"
	"testing"
	"time"

	"github.com/Beka01247/cafe/internal/domain"
	"github.com/Beka01247/cafe/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_LoginFlow(t *testing.T) {
	ctx := context.Background()
	auth, err := NewAuthService(AuthConfig{Username: "admin", Password: "s3cret"}, memory.New().Sessions(), zap.NewNop().Sugar())
	require.NoError(t, err)
	require.True(t, auth.Enabled())

	_, err = auth.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = auth.Login(ctx, "root", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	session, err := auth.Login(ctx, "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	got, err := auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)

	require.NoError(t, auth.Logout(ctx, session.Token))
	_, err = auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_SessionExpires(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	auth, err := NewAuthService(AuthConfig{Username: "admin", PasswordHash: string(hash), SessionTTL: time.Hour}, memory.New().Sessions(), zap.NewNop().Sugar())
	require.NoError(t, err)

	session, err := auth.Login(ctx, "admin", "pw")
	require.NoError(t, err)

	auth.now = func() time.Time { return session.ExpiresAt.Add(-time.Second) }
	_, err = auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)

	auth.now = func() time.Time { return session.ExpiresAt }
	_, err = auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Disabled(t *testing.T) {
	auth, err := NewAuthService(AuthConfig{}, memory.New().Sessions(), zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.False(t, auth.Enabled())

	_, err = auth.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = NewAuthService(AuthConfig{Username: "a", PasswordHash: "plain"}, memory.New().Sessions(), zap.NewNop().Sugar())
	assert.Error(t, err)
}
