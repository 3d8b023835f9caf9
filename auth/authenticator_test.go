package auth

import (
	"context"
	"job-chat/domain"
	"job-chat/errors"
	"job-chat/infrastructure/storage"
	"job-chat/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticator_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	tokens := NewTokenManager("secret", "job-chat", time.Hour)
	authenticator := NewAuthenticator(tokens, users)
	ctx := context.Background()

	token, err := tokens.Generate(domain.Identity{UserID: "bob", Role: domain.RoleCandidate})
	require.NoError(t, err)

	t.Run("should resolve an active account", func(t *testing.T) {
		req := require.New(t)
		users.EXPECT().GetUserByID("bob").Return(storage.User{
			ID: "bob", DisplayName: "Bob", Role: domain.RoleCandidate, Status: domain.StatusActive,
		}, nil)

		identity, err := authenticator.Authenticate(ctx, token)

		req.NoError(err)
		req.Equal(domain.Identity{UserID: "bob", Name: "Bob", Role: domain.RoleCandidate}, identity)
	})

	t.Run("should reject a missing token", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, " ")
		require.ErrorIs(t, err, errors.ErrMissingToken)
	})

	t.Run("should reject an invalid token without touching accounts", func(t *testing.T) {
		users.EXPECT().GetUserByID(gomock.Any()).Times(0)
		_, err := authenticator.Authenticate(ctx, "invalid-token-string")
		require.ErrorIs(t, err, errors.ErrInvalidToken)
	})

	t.Run("should reject a suspended account", func(t *testing.T) {
		users.EXPECT().GetUserByID("bob").Return(storage.User{ID: "bob", Status: domain.StatusSuspended}, nil)
		_, err := authenticator.Authenticate(ctx, token)
		require.ErrorIs(t, err, errors.ErrAccountInactive)
	})

	t.Run("should reject a deleted account", func(t *testing.T) {
		req := require.New(t)
		users.EXPECT().GetUserByID("bob").Return(storage.User{}, errors.ErrUserNotFound)

		_, err := authenticator.Authenticate(ctx, token)

		req.ErrorIs(err, errors.ErrInvalidToken)
		req.Equal(errors.CodeUnauthenticated, errors.CodeOf(err))
	})
}

func TestBearerToken(t *testing.T) {
	req := require.New(t)
	req.Equal("abc", BearerToken("Bearer abc"))
	req.Equal("abc", BearerToken("bearer  abc "))
	req.Empty(BearerToken("Basic abc"))
	req.Empty(BearerToken(""))
}
