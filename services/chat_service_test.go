package services

import (
	"context"
	"job-chat/domain"
	"job-chat/domain/chat"
	"job-chat/domain/event"
	"job-chat/errors"
	"job-chat/mocks"
	"job-chat/runtime"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	name   string
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) OfKind(kind event.Kind) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []event.Event
	for _, e := range s.events {
		if e.Kind() == kind {
			res = append(res, e)
		}
	}
	return res
}

var (
	alice = domain.Identity{UserID: "alice", Name: "Alice", Role: domain.RoleEmployer}
	bob   = domain.Identity{UserID: "bob", Name: "Bob", Role: domain.RoleCandidate}
)

func newChatFixture(t *testing.T) (*ChatService, storeFixture) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	supervisor := mocks.NewMockISupervisor(gomock.NewController(t))
	o := runtime.NewOrchestrator(log, supervisor, runtime.NewRegistry(), 10, 16)
	f := newStoreFixture(t)
	f.knownUsers("alice", "bob")
	f.hook.EXPECT().AfterPersist(gomock.Any(), gomock.Any()).AnyTimes()
	return NewChatService(log, o, f.store), f
}

func TestChatService_Send_While_Receiver_Offline(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, f := newChatFixture(t)
	f.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)

	aliceSink := &recordingSink{name: "alice"}
	svc.Connect(ctx, "a1", alice, aliceSink)
	_, err := svc.JoinConversation("a1", alice, chat.JoinConversationCommand{PeerUserID: "bob"})
	req.NoError(err)

	// When alice sends while bob is offline
	message, err := svc.SendMessage(ctx, alice, chat.SendMessageCommand{
		ReceiverID: "bob", Subject: "Hi", Body: "Available for interview?",
	})

	// Then alice is acknowledged with an id and sees her own message
	req.NoError(err)
	req.NotZero(message.ID)
	req.Len(aliceSink.OfKind(event.NewMessageKind), 1)

	// And bob connecting later gets no replay: the message lives in the store only
	bobSink := &recordingSink{name: "bob"}
	svc.Connect(ctx, "b1", bob, bobSink)
	req.Empty(bobSink.OfKind(event.NewMessageKind))
	req.Empty(bobSink.OfKind(event.MessageNotificationKind))
}

func TestChatService_Send_Notifies_Receiver_Outside_Room(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, f := newChatFixture(t)
	f.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)
	bobSink := &recordingSink{name: "bob"}
	svc.Connect(ctx, "b1", bob, bobSink)

	message, err := svc.SendMessage(ctx, alice, chat.SendMessageCommand{
		ReceiverID: "bob", Subject: "Hi", Body: "Available for interview?",
	})
	req.NoError(err)

	notifications := bobSink.OfKind(event.MessageNotificationKind)
	req.Len(notifications, 1)
	notification := notifications[0].(event.MessageNotification)
	req.Equal(message.ID, notification.MessageID)
	req.Equal("Alice", notification.SenderName)
	req.Equal("Available ...", notification.Preview)
	req.Empty(bobSink.OfKind(event.NewMessageKind))
}

func TestChatService_Both_Joined_Then_Read(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, f := newChatFixture(t)
	f.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)

	aliceLaptop := &recordingSink{name: "alice-laptop"}
	alicePhone := &recordingSink{name: "alice-phone"}
	bobSink := &recordingSink{name: "bob"}
	svc.Connect(ctx, "a1", alice, aliceLaptop)
	svc.Connect(ctx, "a2", alice, alicePhone)
	svc.Connect(ctx, "b1", bob, bobSink)
	for _, join := range []struct {
		session domain.SessionID
		who     domain.Identity
		peer    string
	}{{"a1", alice, "bob"}, {"a2", alice, "bob"}, {"b1", bob, "alice"}} {
		_, err := svc.JoinConversation(join.session, join.who, chat.JoinConversationCommand{PeerUserID: join.peer})
		req.NoError(err)
	}

	// When alice sends
	message, err := svc.SendMessage(ctx, alice, chat.SendMessageCommand{ReceiverID: "bob", Body: "hello"})
	req.NoError(err)

	// Then every session of the room receives it, second device included
	req.Len(aliceLaptop.OfKind(event.NewMessageKind), 1)
	req.Len(alicePhone.OfKind(event.NewMessageKind), 1)
	req.Len(bobSink.OfKind(event.NewMessageKind), 1)

	// When bob reads it twice
	readAt := time.Now().UTC()
	read := message
	read.IsRead = true
	read.ReadAt = &readAt
	f.messages.EXPECT().MarkRead(message.ID, "bob", gomock.Any()).Return(read, true, nil)
	f.messages.EXPECT().MarkRead(message.ID, "bob", gomock.Any()).Return(read, false, nil)

	_, err = svc.MarkAsRead(ctx, "b1", bob, chat.MarkAsReadCommand{MessageID: message.ID})
	req.NoError(err)
	again, err := svc.MarkAsRead(ctx, "b1", bob, chat.MarkAsReadCommand{MessageID: message.ID})
	req.NoError(err)
	req.True(again.IsRead)

	// Then alice gets exactly one receipt, not earlier than sent_at
	receipts := aliceLaptop.OfKind(event.MessageReadKind)
	req.Len(receipts, 1)
	receipt := receipts[0].(event.ReadReceipt)
	req.Equal("bob", receipt.ReaderID)
	req.False(receipt.At.Before(message.SentAt))
	req.Empty(bobSink.OfKind(event.MessageReadKind))
}

func TestChatService_Validation_Error_Creates_Nothing(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, f := newChatFixture(t)
	f.messages.EXPECT().StoreMessage(gomock.Any()).Times(0)
	bobSink := &recordingSink{name: "bob"}
	svc.Connect(ctx, "b1", bob, bobSink)

	_, err := svc.SendMessage(ctx, alice, chat.SendMessageCommand{ReceiverID: "bob", Body: ""})
	req.ErrorIs(err, errors.ErrEmptyBody)

	_, err = svc.SendMessage(ctx, alice, chat.SendMessageCommand{Body: "hello"})
	req.ErrorIs(err, errors.ErrInvalidPayload)

	req.Empty(bobSink.OfKind(event.MessageNotificationKind))
}

func TestChatService_Typing(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, _ := newChatFixture(t)
	aliceSink := &recordingSink{name: "alice"}
	bobSink := &recordingSink{name: "bob"}
	svc.Connect(ctx, "a1", alice, aliceSink)
	svc.Connect(ctx, "b1", bob, bobSink)
	_, err := svc.JoinConversation("a1", alice, chat.JoinConversationCommand{PeerUserID: "bob"})
	req.NoError(err)
	_, err = svc.JoinConversation("b1", bob, chat.JoinConversationCommand{PeerUserID: "alice"})
	req.NoError(err)

	req.NoError(svc.Typing(ctx, "a1", alice, chat.TypingCommand{ReceiverID: "bob", Typing: true}))

	typing := bobSink.OfKind(event.UserTypingKind)
	req.Len(typing, 1)
	req.Equal(event.TypingSignal{UserID: "alice", Name: "Alice", Typing: true}, typing[0])
	req.Empty(aliceSink.OfKind(event.UserTypingKind))
	req.ErrorIs(svc.Typing(ctx, "a1", alice, chat.TypingCommand{ReceiverID: "alice"}), errors.ErrSelfMessage)
}

func TestChatService_Leave_Conversation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, f := newChatFixture(t)
	f.messages.EXPECT().StoreMessage(gomock.Any()).Return(nil)
	bobSink := &recordingSink{name: "bob"}
	svc.Connect(ctx, "b1", bob, bobSink)
	_, err := svc.JoinConversation("b1", bob, chat.JoinConversationCommand{PeerUserID: "alice"})
	req.NoError(err)

	room, err := svc.LeaveConversation("b1", bob, chat.LeaveConversationCommand{PeerUserID: "alice"})
	req.NoError(err)
	req.Equal(domain.ConversationRoom("alice", "bob"), room)

	_, err = svc.SendMessage(ctx, alice, chat.SendMessageCommand{ReceiverID: "bob", Body: "still there?"})
	req.NoError(err)
	req.Empty(bobSink.OfKind(event.NewMessageKind))
	req.Len(bobSink.OfKind(event.MessageNotificationKind), 1)
}
