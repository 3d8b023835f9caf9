package websocket

import (
	"context"
	"encoding/json"
	"job-chat/auth"
	"job-chat/domain"
	"job-chat/domain/event"
	"job-chat/errors"
	"job-chat/infrastructure/storage"
	"job-chat/mocks"
	"job-chat/protocol"
	"job-chat/runtime"
	"job-chat/services"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testServer struct {
	url          string
	tokens       *auth.TokenManager
	orchestrator *runtime.Orchestrator
	handler      *Handler
	messages     storage.MessageRepository
	users        map[string]storage.User
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	userRepository := storage.NewUserRepository(db)
	users := make(map[string]storage.User)
	for _, u := range []storage.User{
		{Email: "alice@acme.io", DisplayName: "Alice", Role: domain.RoleEmployer, Status: domain.StatusActive},
		{Email: "bob@mail.io", DisplayName: "Bob", Role: domain.RoleCandidate, Status: domain.StatusActive},
	} {
		created, err := userRepository.CreateUser(u)
		req.NoError(err)
		users[created.DisplayName] = created
	}
	ids, err := storage.NewIDGenerator(1)
	req.NoError(err)

	o := runtime.NewOrchestrator(log, mocks.NewMockISupervisor(gomock.NewController(t)), runtime.NewRegistry(), 10, 16)
	messages := storage.NewMessageRepository(db, log, nil)
	store := services.NewMessageStore(log, messages, userRepository, ids, 5000, 200)
	tokens := auth.NewTokenManager("secret", "job-chat", time.Hour)
	handler := NewHandler(log, auth.NewAuthenticator(tokens, userRepository), services.NewChatService(log, o, store), Settings{
		WriteWait:    time.Second,
		PongWait:     time.Minute,
		MaxFrameSize: 8192,
		BufferSize:   32,
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return testServer{
		url:          "ws" + strings.TrimPrefix(srv.URL, "http"),
		tokens:       tokens,
		orchestrator: o,
		handler:      handler,
		messages:     messages,
		users:        users,
	}
}

func (s testServer) dial(t *testing.T, name string) *websocket.Conn {
	t.Helper()
	token, err := s.tokens.Generate(s.users[name].Identity())
	require.NoError(t, err)
	conn, _, err := websocket.DefaultDialer.Dial(s.url+"?token="+token, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.Equal(t, protocol.Connected, readFrame(t, conn).Type)
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) protocol.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	f, err := protocol.ParseFrame(data)
	require.NoError(t, err)
	return f
}

// readUntil skips frames of other types, presence changes for instance.
func readUntil(t *testing.T, conn *websocket.Conn, frameType string) protocol.Frame {
	t.Helper()
	for {
		if f := readFrame(t, conn); f.Type == frameType {
			return f
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, frameType, requestID string, payload any) {
	t.Helper()
	f, err := protocol.NewFrame(frameType, requestID, payload)
	require.NoError(t, err)
	data, err := f.Marshal()
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func TestHandler_Refuses_Missing_Or_Bad_Token(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)

	for _, url := range []string{srv.url, srv.url + "?token=garbage"} {
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		req.ErrorIs(err, websocket.ErrBadHandshake)
		req.Equal(http.StatusUnauthorized, resp.StatusCode)
	}
	req.Zero(srv.orchestrator.Stats().Sessions)
}

func TestHandler_Accepts_Bearer_Header(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)
	token, err := srv.tokens.Generate(srv.users["Alice"].Identity())
	req.NoError(err)

	conn, _, err := websocket.DefaultDialer.Dial(srv.url, http.Header{"Authorization": {"Bearer " + token}})
	req.NoError(err)
	defer conn.Close()

	f := readFrame(t, conn)
	var connected protocol.ConnectedPayload
	req.NoError(json.Unmarshal(f.Payload, &connected))
	req.Equal(protocol.Connected, f.Type)
	req.Equal(srv.users["Alice"].ID, connected.UserID)
	req.NotEmpty(connected.SessionID)
	req.Equal(1, srv.orchestrator.Stats().Sessions)
}

func TestConnection_Send_Then_Read_Receipt(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)
	alice, bob := srv.users["Alice"], srv.users["Bob"]
	aliceConn := srv.dial(t, "Alice")
	bobConn := srv.dial(t, "Bob")

	// Given both joined the conversation
	send(t, aliceConn, protocol.JoinConversation, "j1", map[string]string{"peer_user_id": bob.ID})
	send(t, bobConn, protocol.JoinConversation, "j2", map[string]string{"peer_user_id": alice.ID})
	joined := readUntil(t, aliceConn, protocol.Ack)
	readUntil(t, bobConn, protocol.Ack)
	var room protocol.JoinedPayload
	req.NoError(json.Unmarshal(joined.Payload, &room))
	req.Equal(domain.ConversationRoom(alice.ID, bob.ID), room.RoomID)

	// When alice sends
	send(t, aliceConn, protocol.SendMessage, "s1", map[string]string{
		"receiver_id": bob.ID, "subject": "Hi", "body": "Available for interview?",
	})
	ack := readUntil(t, aliceConn, protocol.Ack)
	var sent protocol.MessagePayload
	req.NoError(json.Unmarshal(ack.Payload, &sent))
	req.Equal("s1", ack.RequestID)
	req.NotZero(sent.ID)
	req.False(sent.SentAt.IsZero())

	// Then bob receives the same message
	var received protocol.MessagePayload
	req.NoError(json.Unmarshal(readUntil(t, bobConn, string(event.NewMessageKind)).Payload, &received))
	req.Equal(sent.ID, received.ID)
	req.Equal("Alice", received.SenderName)
	req.False(received.IsRead)

	// When bob reads it
	send(t, bobConn, protocol.MarkAsRead, "r1", map[string]string{"message_id": strconv.FormatInt(sent.ID, 10)})
	var read protocol.MessagePayload
	req.NoError(json.Unmarshal(readUntil(t, bobConn, protocol.Ack).Payload, &read))
	req.True(read.IsRead)

	// Then alice gets the receipt
	var receipt protocol.ReadPayload
	req.NoError(json.Unmarshal(readUntil(t, aliceConn, string(event.MessageReadKind)).Payload, &receipt))
	req.Equal(sent.ID, receipt.MessageID)
	req.Equal(bob.ID, receipt.ReaderID)
	req.False(receipt.Timestamp.Before(sent.SentAt))
}

func TestConnection_Rejected_Request_Answers_Origin_Only(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)
	conn := srv.dial(t, "Alice")

	send(t, conn, protocol.SendMessage, "s1", map[string]string{"receiver_id": srv.users["Bob"].ID, "body": "  "})
	f := readUntil(t, conn, protocol.Error)
	var payload protocol.ErrorPayload
	req.NoError(json.Unmarshal(f.Payload, &payload))
	req.Equal("s1", f.RequestID)
	req.Equal(errors.CodeValidationFailed, payload.Code)

	send(t, conn, "dance", "d1", nil)
	f = readUntil(t, conn, protocol.Error)
	req.NoError(json.Unmarshal(f.Payload, &payload))
	req.Equal("d1", f.RequestID)
	req.Equal(errors.CodeValidationFailed, payload.Code)

	// The connection survives both
	send(t, conn, protocol.JoinConversation, "j1", map[string]string{"peer_user_id": srv.users["Bob"].ID})
	req.Equal("j1", readUntil(t, conn, protocol.Ack).RequestID)
}

func TestConnection_Close_Unregisters(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)
	conn := srv.dial(t, "Alice")
	req.Equal(1, srv.orchestrator.Stats().Sessions)

	req.NoError(conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	_ = conn.Close()

	req.Eventually(func() bool {
		return srv.orchestrator.Stats().Sessions == 0
	}, 2*time.Second, 10*time.Millisecond)
	req.Empty(srv.orchestrator.OnlineUsers())
}

func TestConnection_Typing_And_Reconnect_Leave_History_Unchanged(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)
	alice, bob := srv.users["Alice"], srv.users["Bob"]
	room := domain.ConversationRoom(alice.ID, bob.ID)
	aliceConn := srv.dial(t, "Alice")
	bobConn := srv.dial(t, "Bob")

	// Given one message in the conversation
	send(t, aliceConn, protocol.JoinConversation, "j1", map[string]string{"peer_user_id": bob.ID})
	send(t, bobConn, protocol.JoinConversation, "j2", map[string]string{"peer_user_id": alice.ID})
	readUntil(t, aliceConn, protocol.Ack)
	readUntil(t, bobConn, protocol.Ack)
	send(t, aliceConn, protocol.SendMessage, "s1", map[string]string{
		"receiver_id": bob.ID, "subject": "Offer", "body": "We would like to make you an offer",
	})
	readUntil(t, aliceConn, protocol.Ack)
	readUntil(t, bobConn, string(event.NewMessageKind))
	before, _, err := srv.messages.GetConversation(room, nil)
	req.NoError(err)
	req.Len(before, 1)

	// When alice types then stops
	send(t, aliceConn, protocol.TypingStart, "", map[string]string{"receiver_id": bob.ID})
	send(t, aliceConn, protocol.TypingStop, "", map[string]string{"receiver_id": bob.ID})

	// Then bob sees both signals
	var typing protocol.TypingPayload
	req.NoError(json.Unmarshal(readUntil(t, bobConn, string(event.UserTypingKind)).Payload, &typing))
	req.True(typing.IsTyping)
	req.NoError(json.Unmarshal(readUntil(t, bobConn, string(event.UserTypingKind)).Payload, &typing))
	req.False(typing.IsTyping)

	// When bob types, drops and comes back
	send(t, bobConn, protocol.TypingStart, "", map[string]string{"receiver_id": alice.ID})
	readUntil(t, aliceConn, string(event.UserTypingKind))
	_ = bobConn.Close()
	req.Eventually(func() bool {
		return srv.orchestrator.Stats().Sessions == 1
	}, 2*time.Second, 10*time.Millisecond)
	bobConn = srv.dial(t, "Bob")
	send(t, bobConn, protocol.JoinConversation, "j3", map[string]string{"peer_user_id": alice.ID})
	readUntil(t, bobConn, protocol.Ack)

	// Then nothing was written to the conversation
	after, _, err := srv.messages.GetConversation(room, nil)
	req.NoError(err)
	req.Equal(before, after)
}

func TestHandler_Shutdown_Waits_For_Sessions(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t)
	aliceConn := srv.dial(t, "Alice")
	srv.dial(t, "Bob")
	req.Equal(2, srv.orchestrator.Stats().Sessions)

	// When the handler shuts down
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	req.NoError(srv.handler.Shutdown(ctx))

	// Then every session is already unregistered and closed
	req.Zero(srv.orchestrator.Stats().Sessions)
	req.NoError(aliceConn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	for {
		if _, _, err := aliceConn.ReadMessage(); err != nil {
			req.True(websocket.IsCloseError(err, websocket.CloseNormalClosure), err.Error())
			break
		}
	}

	// And new sessions are refused
	token, err := srv.tokens.Generate(srv.users["Alice"].Identity())
	req.NoError(err)
	_, resp, err := websocket.DefaultDialer.Dial(srv.url+"?token="+token, nil)
	req.ErrorIs(err, websocket.ErrBadHandshake)
	req.Equal(http.StatusServiceUnavailable, resp.StatusCode)
}

func TestConnection_Write_Failure_Cancels_Session(t *testing.T) {
	req := require.New(t)
	accepted := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err == nil {
			accepted <- conn
		}
	}))
	defer srv.Close()
	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	req.NoError(err)
	defer client.Close()
	serverConn := <-accepted

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	c := NewConnection(log, serverConn, nil, Settings{WriteWait: time.Second, PongWait: time.Minute, BufferSize: 1},
		"s1", domain.Identity{UserID: "alice"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given a dead socket and a pending reply
	_ = serverConn.Close()
	c.reply(ctx, protocol.ErrorFrame("r1", errors.ErrUnknownCommand))

	// When the write pump fails on it
	c.writePump(ctx, cancel)

	// Then the session context is cancelled and a blocked reply returns
	req.Error(ctx.Err())
	replied := make(chan struct{})
	go func() {
		c.reply(ctx, protocol.ErrorFrame("r2", errors.ErrUnknownCommand))
		c.reply(ctx, protocol.ErrorFrame("r3", errors.ErrUnknownCommand))
		close(replied)
	}()
	select {
	case <-replied:
	case <-time.After(2 * time.Second):
		req.Fail("reply stayed blocked after the write pump stopped")
	}
}

func TestSink_Drops_When_Full(t *testing.T) {
	req := require.New(t)
	sink := NewSink(logs.GetLoggerFromLevel(slog.LevelDebug), "s1", 1)
	ctx := context.Background()

	req.NoError(sink.Consume(ctx, event.TypingSignal{UserID: "alice", Typing: true}))
	req.ErrorIs(sink.Consume(ctx, event.TypingSignal{UserID: "alice"}), errors.ErrSinkFull)
	req.Len(sink.Events(), 1)
}
