package errors

import "fmt"

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrOnlyCensoredFiles = fmt.Errorf("censored directory contains directories")
	ErrEmptyWords        = fmt.Errorf("no words have been found")

	// Authentication
	ErrMissingToken       = fmt.Errorf("authorization token is missing")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
	ErrAccountInactive    = fmt.Errorf("account is not active")
	ErrForbidden          = fmt.Errorf("caller is not allowed to perform this operation")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")

	// Validation
	ErrEmptyBody          = fmt.Errorf("message body is empty")
	ErrBodyTooLong        = fmt.Errorf("message body is too long")
	ErrSubjectTooLong     = fmt.Errorf("message subject is too long")
	ErrInvalidMessageKind = fmt.Errorf("unknown message kind")
	ErrReceiverNotFound   = fmt.Errorf("receiver cannot be resolved")
	ErrSenderNotFound     = fmt.Errorf("sender cannot be resolved")
	ErrSelfMessage        = fmt.Errorf("sender and receiver are the same user")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")
	ErrUnknownCommand     = fmt.Errorf("unknown command")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")

	// Not found
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrSessionNotFound = fmt.Errorf("session not found")

	// Storage
	ErrStore = fmt.Errorf("message store failure")

	// Delivery
	ErrSinkFull = fmt.Errorf("session buffer is full")
)
