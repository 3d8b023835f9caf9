// Package rest is the thin HTTP boundary around the real-time core:
// the websocket endpoint, account stand-in, history and health.
package rest

import (
	"job-chat/runtime"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth      *AuthHandler
	Messages  *MessageHandler
	WebSocket http.Handler
}

func NewRouter(log *slog.Logger, o *runtime.Orchestrator, authenticator Authenticator, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	router.GET("/healthz", Health(o))
	router.GET("/ws", gin.WrapH(h.WebSocket))

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)

		protected := api.Group("")
		protected.Use(RequireIdentity(authenticator))
		protected.GET("/conversations/:peer/messages", h.Messages.List)
		protected.DELETE("/messages/:id", h.Messages.Delete)
	}
	return router
}
