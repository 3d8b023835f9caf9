package rest

import (
	"context"
	"job-chat/auth"
	"job-chat/domain"
	"job-chat/errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (domain.Identity, error)
}

// RequireIdentity resolves the bearer token of the request or aborts with 401.
func RequireIdentity(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authenticator.Authenticate(c.Request.Context(), auth.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			abort(c, err)
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func identityFrom(c *gin.Context) domain.Identity {
	identity, _ := c.Get(identityKey)
	id, _ := identity.(domain.Identity)
	return id
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func abort(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"code": errors.CodeOf(err), "error": message})
}
