package services

import (
	"context"
	"fmt"
	"job-chat/domain/event"
	"job-chat/errors"
	"job-chat/runtime"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// NotificationRequest is raised by another part of the marketplace
// (application status, interview scheduling) for one user.
type NotificationRequest struct {
	UserID string `validate:"required"`
	Type   string `validate:"required,max=64"`
	Title  string `validate:"required,max=200"`
	Body   string `validate:"max=2000"`
	Data   map[string]string
}

type NotificationService struct {
	log          *slog.Logger
	orchestrator *runtime.Orchestrator
}

func NewNotificationService(log *slog.Logger, o *runtime.Orchestrator) *NotificationService {
	return &NotificationService{log: log, orchestrator: o}
}

// Notify delivers to whatever sessions the user has right now.
// Zero delivered sessions is not an error.
func (s *NotificationService) Notify(ctx context.Context, req NotificationRequest) (int, error) {
	if err := validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	delivered := s.orchestrator.Notify(ctx, req.UserID, event.Notification{
		Type:  req.Type,
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
		At:    time.Now().UTC(),
	})
	s.log.Debug("Notification fanned out", "user_id", req.UserID, "type", req.Type, "sessions", delivered)
	return delivered, nil
}
