package errors

import (
	stderrors "errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code is the stable error code sent to clients in error acknowledgments.
type Code string

const (
	CodeUnauthenticated  Code = "unauthenticated"
	CodeForbidden        Code = "forbidden"
	CodeValidationFailed Code = "validation_failed"
	CodeNotFound         Code = "not_found"
	CodeConflict         Code = "conflict"
	CodeStoreFailure     Code = "store_failure"
	CodeInternal         Code = "internal"
)

var (
	authentication = []error{ErrMissingToken, ErrInvalidToken, ErrAccountInactive, ErrInvalidCredentials}
	validation     = []error{
		ErrEmptyBody, ErrBodyTooLong, ErrSubjectTooLong, ErrInvalidMessageKind,
		ErrReceiverNotFound, ErrSenderNotFound, ErrSelfMessage, ErrInvalidPayload,
		ErrUnknownCommand, ErrInvalidPassword,
	}
	notFound = []error{ErrMessageNotFound, ErrUserNotFound, ErrSessionNotFound}
)

// CodeOf classifies err into the client-facing taxonomy.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case isAny(err, authentication):
		return CodeUnauthenticated
	case stderrors.Is(err, ErrForbidden):
		return CodeForbidden
	case isAny(err, validation):
		return CodeValidationFailed
	case isAny(err, notFound):
		return CodeNotFound
	case stderrors.Is(err, ErrUserAlreadyExists):
		return CodeConflict
	case stderrors.Is(err, ErrStore):
		return CodeStoreFailure
	default:
		return CodeInternal
	}
}

// MapToGRPCError converts a domain error into a gRPC status error.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch CodeOf(err) {
	case CodeUnauthenticated:
		return status.Error(codes.Unauthenticated, err.Error())
	case CodeForbidden:
		return status.Error(codes.PermissionDenied, err.Error())
	case CodeValidationFailed:
		return status.Error(codes.InvalidArgument, err.Error())
	case CodeNotFound:
		return status.Error(codes.NotFound, err.Error())
	case CodeConflict:
		return status.Error(codes.AlreadyExists, err.Error())
	case CodeStoreFailure:
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// HTTPStatus maps a domain error onto an HTTP status code.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case "":
		return http.StatusOK
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeValidationFailed:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeStoreFailure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}
