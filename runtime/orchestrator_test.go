package runtime

import (
	"context"
	stderrors "errors"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/domain/event"
	"job-chat/errors"
	"job-chat/mocks"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	return NewOrchestrator(logs.GetLoggerFromLevel(slog.LevelDebug), supervisor, NewRegistry(), 100, 16)
}

func TestOrchestrator_Start_Hands_Workers_To_Supervisor(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	supervisor := mocks.NewMockISupervisor(ctrl)
	worker := mocks.NewMockWorker(ctrl)
	o := NewOrchestrator(logs.GetLoggerFromLevel(slog.LevelDebug), supervisor, NewRegistry(), 100, 16).Add(worker)

	supervisor.EXPECT().Add(worker).Return(supervisor)
	supervisor.EXPECT().Run(gomock.Any()).Do(func(ctx context.Context) {
		req.True(o.Running())
	})

	req.NoError(o.Start(context.Background()))
	req.False(o.Running())
}

func TestOrchestrator_Deliver_Persists_Before_Routing(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator(t)
	room := domain.ConversationRoom("alice", "bob")
	bob := newRecordingSink("bob")
	o.Connect(context.Background(), "b1", domain.Identity{UserID: "bob"}, bob)
	req.NoError(o.JoinRoom("b1", room))

	persisted := false
	message, err := o.Deliver(context.Background(), room, "Alice", func(ctx context.Context) (domain.Message, error) {
		req.Zero(bob.OfKind(event.NewMessageKind))
		persisted = true
		return storedMessage(7, "alice", "bob", "hello"), nil
	})

	req.NoError(err)
	req.True(persisted)
	req.Equal(int64(7), message.ID)
	req.Len(bob.OfKind(event.NewMessageKind), 1)
}

func TestOrchestrator_Deliver_Routes_Nothing_On_Store_Failure(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator(t)
	room := domain.ConversationRoom("alice", "bob")
	bob := newRecordingSink("bob")
	o.Connect(context.Background(), "b1", domain.Identity{UserID: "bob"}, bob)

	_, err := o.Deliver(context.Background(), room, "Alice", func(ctx context.Context) (domain.Message, error) {
		return domain.Message{}, errors.ErrStore
	})

	req.ErrorIs(err, errors.ErrStore)
	req.Zero(bob.OfKind(event.NewMessageKind))
	req.Zero(bob.OfKind(event.MessageNotificationKind))
}

func TestOrchestrator_Deliver_Ignores_Caller_Cancellation(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Deliver(ctx, domain.ConversationRoom("alice", "bob"), "Alice", func(ctx context.Context) (domain.Message, error) {
		if ctx.Err() != nil {
			return domain.Message{}, stderrors.New("persist canceled")
		}
		return storedMessage(1, "alice", "bob", "hello"), nil
	})

	req.NoError(err)
}

func TestOrchestrator_Deliver_Keeps_Commit_Order_Under_Race(t *testing.T) {
	req := require.New(t)
	o := newTestOrchestrator(t)
	room := domain.ConversationRoom("alice", "bob")
	bob := newRecordingSink("bob")
	o.Connect(context.Background(), "b1", domain.Identity{UserID: "bob"}, bob)
	req.NoError(o.JoinRoom("b1", room))

	var mu sync.Mutex
	next := int64(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = o.Deliver(context.Background(), room, "Alice", func(ctx context.Context) (domain.Message, error) {
				mu.Lock()
				next++
				id := next
				mu.Unlock()
				time.Sleep(time.Duration(id%3) * time.Millisecond)
				return storedMessage(id, "alice", "bob", "hello"), nil
			})
		}()
	}
	wg.Wait()

	events := bob.OfKind(event.NewMessageKind)
	req.Len(events, 50)
	for i, e := range events {
		req.Equal(int64(i+1), e.(event.NewMessage).Message.ID)
	}
}

func TestOrchestrator_Connect_Disconnect_Presence(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	o := newTestOrchestrator(t)
	bob := newRecordingSink("bob")
	o.Connect(ctx, "b1", domain.Identity{UserID: "bob"}, bob)

	o.Connect(ctx, "a1", domain.Identity{UserID: "alice"}, newRecordingSink("alice"))
	o.Disconnect(ctx, "a1")
	o.Disconnect(ctx, "a1")

	statuses := bob.OfKind(event.UserStatusChangeKind)
	req.Len(statuses, 2)
	req.Equal(domain.Online, statuses[0].(event.PresenceChange).Status)
	req.Equal(domain.Offline, statuses[1].(event.PresenceChange).Status)
	req.Equal(contract.RegistryStats{Sessions: 1, Users: 1, Rooms: 1}, o.Stats())
}

type slowSink struct {
	delay time.Duration
}

func (s slowSink) Consume(context.Context, event.Event) error {
	time.Sleep(s.delay)
	return nil
}

func TestOrchestrator_Reconnect_Race_Ends_Online(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		o := newTestOrchestrator(t)
		observer := &recordingObserver{}
		o.Observe(observer)
		watcher := newRecordingSink("carol")
		o.Connect(ctx, "c1", domain.Identity{UserID: "carol"}, watcher)
		o.Connect(ctx, "slow", domain.Identity{UserID: "dave"}, slowSink{delay: 2 * time.Millisecond})
		o.Connect(ctx, "b-old", domain.Identity{UserID: "bob"}, newRecordingSink("bob-old"))

		// When bob's old tab closes while a new one opens
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			o.Disconnect(ctx, "b-old")
		}()
		go func() {
			defer wg.Done()
			o.Connect(ctx, "b-new", domain.Identity{UserID: "bob"}, newRecordingSink("bob-new"))
		}()
		wg.Wait()

		// Then bob is online and the last status everyone heard says so
		req.Contains(o.OnlineUsers(), "bob")
		var last event.PresenceChange
		for _, e := range watcher.OfKind(event.UserStatusChangeKind) {
			if change := e.(event.PresenceChange); change.UserID == "bob" {
				last = change
			}
		}
		req.Equal(domain.Online, last.Status, "iteration %d", i)

		observer.mu.Lock()
		observed := observer.changes[len(observer.changes)-1]
		observer.mu.Unlock()
		req.Equal("bob", observed.UserID)
		req.Equal(domain.Online, observed.Status, "iteration %d", i)
	}
}
