//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"job-chat/domain"
	"job-chat/domain/event"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the outbound side of one live session.
// Consume must not block: a sink that cannot accept an event drops it.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

type IRegistry interface {
	Register(sessionID domain.SessionID, userID string, sink EventSink) bool
	JoinRoom(sessionID domain.SessionID, roomID domain.RoomID) error
	LeaveRoom(sessionID domain.SessionID, roomID domain.RoomID) error
	Unregister(sessionID domain.SessionID) (userID string, last bool, ok bool)
	SinksForRoom(roomID domain.RoomID, exclude domain.SessionID) []EventSink
	SinksExcept(exclude domain.SessionID) []EventSink
	UserInRoom(userID string, roomID domain.RoomID) bool
	OnlineUsers() []string
	Owner(sessionID domain.SessionID) (userID string, ok bool)
	Stats() RegistryStats
}

type RegistryStats struct {
	Sessions int
	Users    int
	Rooms    int
}

// PostPersistHook runs after a message is committed to the store.
// Implementations must return quickly and never fail the send.
type PostPersistHook interface {
	AfterPersist(ctx context.Context, message domain.Message)
}

// PresenceObserver receives coarse presence transitions in addition to live sessions.
type PresenceObserver interface {
	PresenceChanged(ctx context.Context, change event.PresenceChange)
}

// MessagePublisher forwards committed messages to the rest of the marketplace.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, message domain.Message) error
}

// PresenceStore mirrors presence outside the process.
type PresenceStore interface {
	SetOnline(ctx context.Context, userID string) error
	SetOffline(ctx context.Context, userID string) error
}
