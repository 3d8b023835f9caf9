package rest

import (
	"fmt"
	"job-chat/auth"
	"job-chat/domain"
	"job-chat/domain/chat"
	"job-chat/errors"
	"job-chat/protocol"
	"job-chat/runtime"
	"job-chat/services"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler(authService services.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token services.Token `json:"token"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err))
		return
	}
	token, err := h.authService.Register(req)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err))
		return
	}
	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

type MessageHandler struct {
	chatService services.IChatService
}

func NewMessageHandler(chatService services.IChatService) *MessageHandler {
	return &MessageHandler{chatService: chatService}
}

type conversationResponse struct {
	Messages []protocol.MessagePayload `json:"messages"`
	Cursor   *string                   `json:"cursor"`
}

// List returns one page of the conversation with :peer, newest first.
func (h *MessageHandler) List(c *gin.Context) {
	cmd := chat.GetMessagesCommand{PeerUserID: c.Param("peer")}
	if cursor, ok := c.GetQuery("cursor"); ok && cursor != "" {
		cmd.Cursor = &cursor
	}
	messages, next, err := h.chatService.GetMessages(identityFrom(c), cmd)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, conversationResponse{
		Messages: lo.Map(messages, func(m domain.Message, _ int) protocol.MessagePayload {
			return protocol.ToMessagePayload(m)
		}),
		Cursor: next,
	})
}

func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abort(c, fmt.Errorf("%w: message id %q", errors.ErrInvalidPayload, c.Param("id")))
		return
	}
	if err := h.chatService.DeleteMessage(identityFrom(c), id); err != nil {
		abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
	Users    int    `json:"users"`
	Rooms    int    `json:"rooms"`
}

func Health(o *runtime.Orchestrator) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := o.Stats()
		status, code := "ok", http.StatusOK
		if !o.Running() {
			status, code = "starting", http.StatusServiceUnavailable
		}
		c.JSON(code, healthResponse{Status: status, Sessions: stats.Sessions, Users: stats.Users, Rooms: stats.Rooms})
	}
}
