package websocket

import (
	"context"
	"job-chat/domain"
	"job-chat/domain/event"
	"job-chat/errors"
	"log/slog"
)

// Sink buffers the events routed to one session until its write pump sends them.
type Sink struct {
	log       *slog.Logger
	sessionID domain.SessionID
	events    chan event.Event
}

func NewSink(log *slog.Logger, sessionID domain.SessionID, bufferSize int) *Sink {
	return &Sink{log: log, sessionID: sessionID, events: make(chan event.Event, bufferSize)}
}

// Consume never blocks the router: a full buffer drops the event.
func (s *Sink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		s.log.Warn("Session buffer full, event dropped",
			"session_id", s.sessionID,
			"kind", e.Kind(),
			"capacity", cap(s.events))
		return errors.ErrSinkFull
	}
}

func (s *Sink) Events() <-chan event.Event {
	return s.events
}
