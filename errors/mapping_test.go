package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Nil error", nil, ""},
		{"Expired token", ErrInvalidToken, CodeUnauthenticated},
		{"Wrapped empty body", fmt.Errorf("send: %w", ErrEmptyBody), CodeValidationFailed},
		{"Self message", ErrSelfMessage, CodeValidationFailed},
		{"Unknown message", ErrMessageNotFound, CodeNotFound},
		{"Store failure", fmt.Errorf("%w: disk full", ErrStore), CodeStoreFailure},
		{"Anything else", fmt.Errorf("boom"), CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestMapToGRPCError(t *testing.T) {
	req := require.New(t)

	st, ok := status.FromError(MapToGRPCError(fmt.Errorf("wrap: %w", ErrReceiverNotFound)))
	req.True(ok)
	req.Equal(codes.InvalidArgument, st.Code())

	st, _ = status.FromError(MapToGRPCError(ErrForbidden))
	req.Equal(codes.PermissionDenied, st.Code())

	already := status.Error(codes.Aborted, "aborted")
	req.Equal(already, MapToGRPCError(already))
	req.NoError(MapToGRPCError(nil))
}

func TestHTTPStatus(t *testing.T) {
	req := require.New(t)

	req.Equal(http.StatusUnauthorized, HTTPStatus(ErrMissingToken))
	req.Equal(http.StatusNotFound, HTTPStatus(ErrMessageNotFound))
	req.Equal(http.StatusConflict, HTTPStatus(ErrUserAlreadyExists))
	req.Equal(http.StatusServiceUnavailable, HTTPStatus(ErrStore))
}
