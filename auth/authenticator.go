package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"job-chat/domain"
	"job-chat/errors"
	"job-chat/infrastructure/storage"
	"strings"
)

// Authenticator resolves a bearer credential into the identity owning a connection.
// It never creates session state.
type Authenticator struct {
	tokens *TokenManager
	users  storage.IUserRepository
}

func NewAuthenticator(tokens *TokenManager, users storage.IUserRepository) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Authenticate rejects missing, invalid or expired tokens
// and tokens whose account is not active.
func (a *Authenticator) Authenticate(_ context.Context, raw string) (domain.Identity, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.Identity{}, errors.ErrMissingToken
	}
	claims, err := a.tokens.Validate(raw)
	if err != nil {
		return domain.Identity{}, err
	}

	user, err := a.users.GetUserByID(claims.UserID)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		return domain.Identity{}, fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}
	if err != nil {
		return domain.Identity{}, err
	}
	if user.Status != domain.StatusActive {
		return domain.Identity{}, errors.ErrAccountInactive
	}
	return user.Identity(), nil
}

// BearerToken extracts the credential of an Authorization header.
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) >= len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
