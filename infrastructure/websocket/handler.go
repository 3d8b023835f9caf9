package websocket

import (
	"context"
	"job-chat/auth"
	"job-chat/domain"
	"job-chat/errors"
	"job-chat/services"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (domain.Identity, error)
}

// Handler authenticates before upgrading: a rejected credential never creates a session.
// Upgraded connections escape http.Server.Shutdown, so the handler tracks them itself.
type Handler struct {
	log      *slog.Logger
	auth     Authenticator
	service  services.IChatService
	settings Settings
	upgrader websocket.Upgrader
	ctx      context.Context
	cancel   context.CancelFunc
	sessions sync.WaitGroup
}

func NewHandler(log *slog.Logger, authenticator Authenticator, service services.IChatService, settings Settings) *Handler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Handler{
		log:      log,
		auth:     authenticator,
		service:  service,
		settings: settings,
		ctx:      ctx,
		cancel:   cancel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.sessions.Add(1)
	defer h.sessions.Done()
	if h.ctx.Err() != nil {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}

	token := auth.BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	identity, err := h.auth.Authenticate(r.Context(), token)
	if err != nil {
		h.log.Debug("Connection refused", "remote_addr", r.RemoteAddr, "error", err)
		http.Error(w, err.Error(), errors.HTTPStatus(err))
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Upgrade failed", "user_id", identity.UserID, "error", err)
		return
	}
	sessionID := domain.SessionID(uuid.NewString())
	h.log.Info("Session opened", "session_id", sessionID, "user_id", identity.UserID)

	ctx, stop := context.WithCancel(r.Context())
	defer stop()
	defer context.AfterFunc(h.ctx, stop)()
	NewConnection(h.log, conn, h.service, h.settings, sessionID, identity).Serve(ctx)
}

// Shutdown closes every live session and waits until each one has finished
// its in-flight request and unregistered, or until ctx is done.
func (h *Handler) Shutdown(ctx context.Context) error {
	h.cancel()
	done := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
