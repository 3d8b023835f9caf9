package runtime

import (
	"context"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/domain/event"
	"log/slog"
)

// Router publishes stored messages and transient signals to rooms.
// It never persists anything and never fails.
type Router struct {
	log           *slog.Logger
	registry      contract.IRegistry
	notifier      *Notifier
	previewLength int
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, notifier *Notifier, previewLength int) *Router {
	return &Router{log: log, registry: registry, notifier: notifier, previewLength: previewLength}
}

// RouteMessage publishes a committed message to its conversation room,
// sender's own sessions included. When the receiver has no session in the room
// a message_notification goes to the receiver's personal channel.
func (r *Router) RouteMessage(ctx context.Context, message domain.Message, senderName string) int {
	room := message.Room()
	delivered := r.Publish(ctx, event.Envelope{Target: room, Event: event.NewMessage{Message: message, SenderName: senderName}})

	if !r.registry.UserInRoom(message.ReceiverID, room) {
		r.notifier.Notify(ctx, message.ReceiverID, event.MessageNotification{
			MessageID:  message.ID,
			SenderID:   message.SenderID,
			SenderName: senderName,
			Subject:    message.Subject,
			Preview:    domain.Preview(message.Body, r.previewLength),
			At:         message.SentAt,
		})
	}
	return delivered
}

// RouteSignal broadcasts a transient event to a room, skipping the originating session.
func (r *Router) RouteSignal(ctx context.Context, roomID domain.RoomID, origin domain.SessionID, evt event.Event) int {
	return r.Publish(ctx, event.Envelope{Target: roomID, Exclude: origin, Event: evt})
}

func (r *Router) Publish(ctx context.Context, env event.Envelope) int {
	sinks := r.registry.SinksForRoom(env.Target, env.Exclude)
	if len(sinks) == 0 {
		r.log.Debug("Nobody listening", "room_id", env.Target, "kind", env.Event.Kind())
		return 0
	}
	return publish(ctx, r.log, sinks, env.Event)
}
