package runtime

import (
	"context"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/domain/event"
	"log/slog"
	"time"
)

// PresenceBroadcaster tells every other session when a user comes and goes.
// Presence is advisory: nothing in the delivery path reads it.
type PresenceBroadcaster struct {
	log       *slog.Logger
	registry  contract.IRegistry
	observers []contract.PresenceObserver
}

func NewPresenceBroadcaster(log *slog.Logger, registry contract.IRegistry) *PresenceBroadcaster {
	return &PresenceBroadcaster{log: log, registry: registry}
}

func (p *PresenceBroadcaster) Observe(observers ...contract.PresenceObserver) *PresenceBroadcaster {
	p.observers = append(p.observers, observers...)
	return p
}

// Online is called after each session registration.
// Observers only hear about the first session of the user.
func (p *PresenceBroadcaster) Online(ctx context.Context, sessionID domain.SessionID, userID string, first bool) {
	change := event.PresenceChange{UserID: userID, Status: domain.Online, At: time.Now().UTC()}
	publish(ctx, p.log, p.registry.SinksExcept(sessionID), change)
	if first {
		p.notifyObservers(ctx, change)
	}
}

// Offline is called once the last session of userID is unregistered.
func (p *PresenceBroadcaster) Offline(ctx context.Context, userID string) {
	change := event.PresenceChange{UserID: userID, Status: domain.Offline, At: time.Now().UTC()}
	publish(ctx, p.log, p.registry.SinksExcept(""), change)
	p.notifyObservers(ctx, change)
}

func (p *PresenceBroadcaster) notifyObservers(ctx context.Context, change event.PresenceChange) {
	for _, o := range p.observers {
		o.PresenceChanged(ctx, change)
	}
}
