package runtime

import (
	"context"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/domain/event"
	"log/slog"
)

// Notifier delivers events to a user's personal channel, whatever rooms the user joined.
type Notifier struct {
	log      *slog.Logger
	registry contract.IRegistry
}

func NewNotifier(log *slog.Logger, registry contract.IRegistry) *Notifier {
	return &Notifier{log: log, registry: registry}
}

// Notify is best effort: with no live session the event is simply dropped.
// It returns the number of sessions that accepted the event.
func (n *Notifier) Notify(ctx context.Context, userID string, evt event.Event) int {
	channel := domain.PersonalChannel(userID)
	sinks := n.registry.SinksForRoom(channel, "")
	if len(sinks) == 0 {
		n.log.Debug("No live session for notification", "user_id", userID, "kind", evt.Kind())
		return 0
	}
	return publish(ctx, n.log, sinks, evt)
}
