// Package runtime owns live sessions and everything pushed to them.
// It sequences and publishes but contains no message validation rules.
package runtime

import (
	"context"
	"fmt"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/domain/event"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Persist commits a message and returns its stored form.
type Persist func(ctx context.Context) (domain.Message, error)

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	router     *Router
	notifier   *Notifier
	presence   *PresenceBroadcaster
	sequencer  *Sequencer
	workers    []contract.Worker
	running    atomic.Bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, previewLength, stripes int) *Orchestrator {
	notifier := NewNotifier(log, registry)
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		router:     NewRouter(log, registry, notifier, previewLength),
		notifier:   notifier,
		presence:   NewPresenceBroadcaster(log, registry),
		sequencer:  NewSequencer(stripes),
	}
}

// Add registers background workers started with the orchestrator.
func (o *Orchestrator) Add(workers ...contract.Worker) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, workers...)
	return o
}

func (o *Orchestrator) Observe(observers ...contract.PresenceObserver) *Orchestrator {
	o.presence.Observe(observers...)
	return o
}

// Start hands every worker to the supervisor and blocks until ctx is done.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	o.supervisor.Add(o.workers...)
	count := len(o.workers)
	o.mu.Unlock()

	o.log.Info(fmt.Sprintf("Starting orchestrator with %d supervised workers", count))
	o.running.Store(true)
	defer o.running.Store(false)
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}

func (o *Orchestrator) Running() bool {
	return o.running.Load()
}

// Connect registers an authenticated session and announces its owner.
// Registration and announcement share the owner's personal channel stripe,
// so presence changes of one user are published in registry order.
func (o *Orchestrator) Connect(ctx context.Context, sessionID domain.SessionID, identity domain.Identity, sink contract.EventSink) {
	_ = o.sequencer.Do(domain.PersonalChannel(identity.UserID), func() error {
		first := o.registry.Register(sessionID, identity.UserID, sink)
		o.log.Debug("Session registered", "session_id", sessionID, "user_id", identity.UserID, "first", first)
		o.presence.Online(ctx, sessionID, identity.UserID, first)
		return nil
	})
}

// Disconnect always succeeds. The user goes offline with its last session.
func (o *Orchestrator) Disconnect(ctx context.Context, sessionID domain.SessionID) {
	userID, ok := o.registry.Owner(sessionID)
	if !ok {
		return
	}
	_ = o.sequencer.Do(domain.PersonalChannel(userID), func() error {
		_, last, ok := o.registry.Unregister(sessionID)
		if !ok {
			return nil
		}
		o.log.Debug("Session unregistered", "session_id", sessionID, "user_id", userID, "last", last)
		if last {
			o.presence.Offline(ctx, userID)
		}
		return nil
	})
}

func (o *Orchestrator) JoinRoom(sessionID domain.SessionID, roomID domain.RoomID) error {
	return o.registry.JoinRoom(sessionID, roomID)
}

func (o *Orchestrator) LeaveRoom(sessionID domain.SessionID, roomID domain.RoomID) error {
	return o.registry.LeaveRoom(sessionID, roomID)
}

// Deliver persists then routes one message while holding the room stripe,
// so live sessions see a room's messages in commit order.
// The persist step ignores cancellation of ctx: a closing connection
// never aborts a message it already handed over.
// Nothing is routed when persist fails.
func (o *Orchestrator) Deliver(ctx context.Context, roomID domain.RoomID, senderName string, persist Persist) (domain.Message, error) {
	detached := context.WithoutCancel(ctx)
	var stored domain.Message
	err := o.sequencer.Do(roomID, func() error {
		message, err := persist(detached)
		if err != nil {
			return err
		}
		stored = message
		o.router.RouteMessage(detached, message, senderName)
		return nil
	})
	return stored, err
}

// Signal is fire and forget: the originating session is skipped.
func (o *Orchestrator) Signal(ctx context.Context, roomID domain.RoomID, origin domain.SessionID, evt event.Event) int {
	return o.router.RouteSignal(ctx, roomID, origin, evt)
}

func (o *Orchestrator) Notify(ctx context.Context, userID string, evt event.Event) int {
	return o.notifier.Notify(ctx, userID, evt)
}

func (o *Orchestrator) Stats() contract.RegistryStats {
	return o.registry.Stats()
}

func (o *Orchestrator) OnlineUsers() []string {
	return o.registry.OnlineUsers()
}
