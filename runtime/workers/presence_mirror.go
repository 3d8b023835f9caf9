package workers

import (
	"context"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/domain/event"
	"log/slog"
	"time"
)

type OnlineSource interface {
	OnlineUsers() []string
}

// PresenceMirror copies presence transitions to an external store.
// Online entries expire on their own, so they are refreshed on every tick.
type PresenceMirror struct {
	log      *slog.Logger
	store    contract.PresenceStore
	source   OnlineSource
	changes  chan event.PresenceChange
	interval time.Duration
}

func NewPresenceMirror(log *slog.Logger, store contract.PresenceStore, source OnlineSource,
	bufferSize int, interval time.Duration) *PresenceMirror {
	return &PresenceMirror{
		log:      log,
		store:    store,
		source:   source,
		changes:  make(chan event.PresenceChange, bufferSize),
		interval: interval,
	}
}

func (m *PresenceMirror) PresenceChanged(_ context.Context, change event.PresenceChange) {
	select {
	case m.changes <- change:
	default:
		m.log.Warn("Presence buffer full, change not mirrored", "user_id", change.UserID, "status", change.Status)
	}
}

func (m *PresenceMirror) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-m.changes:
			m.apply(ctx, change)
		case <-ticker.C:
			for _, userID := range m.source.OnlineUsers() {
				if err := m.store.SetOnline(ctx, userID); err != nil {
					m.log.Debug("Presence not refreshed", "user_id", userID, "error", err)
				}
			}
		}
	}
}

func (m *PresenceMirror) apply(ctx context.Context, change event.PresenceChange) {
	var err error
	switch change.Status {
	case domain.Online:
		err = m.store.SetOnline(ctx, change.UserID)
	case domain.Offline:
		err = m.store.SetOffline(ctx, change.UserID)
	}
	if err != nil {
		m.log.Warn("Presence not mirrored", "user_id", change.UserID, "status", change.Status, "error", err)
	}
}
