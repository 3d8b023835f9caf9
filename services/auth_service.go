package services

import (
	stderrors "errors"
	"fmt"
	"job-chat/auth"
	"job-chat/domain"
	"job-chat/errors"
	"job-chat/infrastructure/storage"
)

type IAuthService interface {
	Login(email, password string) (Token, error)
	Register(req auth.RegisterRequest) (Token, error)
}

// AuthService stands in for the account collaborator so the chat can be exercised end to end.
type AuthService struct {
	userRepository storage.IUserRepository
	tokens         *auth.TokenManager
}

type Token string

func NewAuthService(repo storage.IUserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{userRepository: repo, tokens: tokens}
}

func (s *AuthService) Register(req auth.RegisterRequest) (Token, error) {
	// Validate before any expensive cryptographic operation.
	if err := auth.ValidateRegister(req); err != nil {
		return "", err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.userRepository.CreateUser(storage.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         domain.Role(req.Role),
		Status:       domain.StatusActive,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Generate(user.Identity())
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) Login(email, password string) (Token, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		// Same answer as a wrong password
		return "", errors.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}
	if user.Status != domain.StatusActive {
		return "", errors.ErrAccountInactive
	}

	token, err := s.tokens.Generate(user.Identity())
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}
