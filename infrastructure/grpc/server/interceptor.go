package server

import (
	"context"
	"job-chat/auth"
	"job-chat/domain"
	"job-chat/errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const healthPrefix = "/grpc.health.v1.Health/"

type identityKey struct{}

func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(domain.Identity)
	return identity, ok
}

// AuthInterceptor only lets through callers holding a token with one of the allowed roles.
// Health checks are public.
func AuthInterceptor(tokens *auth.TokenManager, allowed ...domain.Role) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if strings.HasPrefix(info.FullMethod, healthPrefix) {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, errors.MapToGRPCError(errors.ErrMissingToken)
		}
		claims, err := tokens.Validate(auth.BearerToken(values[0]))
		if err != nil {
			return nil, errors.MapToGRPCError(errors.ErrInvalidToken)
		}
		identity := claims.Identity()
		if !hasRole(identity, allowed) {
			return nil, errors.MapToGRPCError(errors.ErrForbidden)
		}
		return handler(context.WithValue(ctx, identityKey{}, identity), req)
	}
}

func hasRole(identity domain.Identity, allowed []domain.Role) bool {
	for _, role := range allowed {
		if identity.Role == role {
			return true
		}
	}
	return false
}
