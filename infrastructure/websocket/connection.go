// Package websocket serves live chat sessions over a persistent connection.
package websocket

import (
	"context"
	"fmt"
	"job-chat/domain"
	"job-chat/domain/chat"
	"job-chat/errors"
	"job-chat/protocol"
	"job-chat/services"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

type Settings struct {
	WriteWait    time.Duration
	PongWait     time.Duration
	MaxFrameSize int64
	BufferSize   int
}

func (s Settings) pingPeriod() time.Duration {
	return s.PongWait * 9 / 10
}

// Connection is one authenticated session: a read pump decoding client frames
// and a write pump draining the session sink and request replies.
type Connection struct {
	log      *slog.Logger
	conn     *websocket.Conn
	service  services.IChatService
	settings Settings
	id       domain.SessionID
	identity domain.Identity
	sink     *Sink
	replies  chan protocol.Frame
}

func NewConnection(log *slog.Logger, conn *websocket.Conn, service services.IChatService,
	settings Settings, id domain.SessionID, identity domain.Identity) *Connection {
	log = log.With("session_id", id, "user_id", identity.UserID)
	return &Connection{
		log:      log,
		conn:     conn,
		service:  service,
		settings: settings,
		id:       id,
		identity: identity,
		sink:     NewSink(log, id, settings.BufferSize),
		replies:  make(chan protocol.Frame, settings.BufferSize),
	}
}

// Serve blocks until the connection ends. The session is unregistered on every exit path.
func (c *Connection) Serve(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	defer func() {
		cancel()
		<-done
		c.service.Disconnect(context.WithoutCancel(ctx), c.id)
		_ = c.conn.Close()
		c.log.Info("Session closed")
	}()

	c.service.Connect(ctx, c.id, c.identity, c.sink)
	if f, err := protocol.ConnectedFrame(c.id, c.identity); err == nil {
		_ = c.write(f)
	}
	go func() {
		defer close(done)
		c.writePump(ctx, cancel)
	}()
	c.readPump(ctx)
}

func (c *Connection) readPump(ctx context.Context) {
	c.conn.SetReadLimit(c.settings.MaxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.settings.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.settings.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("Connection read failed", "error", err)
			}
			return
		}
		f, err := protocol.ParseFrame(data)
		if err != nil {
			c.reply(ctx, protocol.ErrorFrame("", err))
			continue
		}
		c.handle(ctx, f)
	}
}

// writePump owns every write. When it stops, cancel releases a read pump
// waiting on a full reply queue.
func (c *Connection) writePump(ctx context.Context, cancel context.CancelFunc) {
	ticker := time.NewTicker(c.settings.pingPeriod())
	defer func() {
		ticker.Stop()
		cancel()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.settings.WriteWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case f := <-c.replies:
			if err := c.write(f); err != nil {
				return
			}
		case e := <-c.sink.Events():
			f, err := protocol.Encode(e)
			if err != nil {
				c.log.Error("Event not encoded", "kind", e.Kind(), "error", err)
				continue
			}
			if err := c.write(f); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.settings.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Connection) write(f protocol.Frame) error {
	data, err := f.Marshal()
	if err != nil {
		c.log.Error("Frame not marshalled", "type", f.Type, "error", err)
		return nil
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.settings.WriteWait))
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.log.Debug("Connection write failed", "error", err)
		return err
	}
	return nil
}

func (c *Connection) reply(ctx context.Context, f protocol.Frame) {
	select {
	case c.replies <- f:
	case <-ctx.Done():
	}
}

// handle answers each request with an ack or an error, to this session only.
func (c *Connection) handle(ctx context.Context, f protocol.Frame) {
	cmd, err := protocol.Decode(f)
	if err != nil {
		c.reply(ctx, protocol.ErrorFrame(f.RequestID, err))
		return
	}
	payload, err := c.dispatch(ctx, cmd)
	if err != nil {
		c.log.Debug("Request rejected", "type", f.Type, "code", errors.CodeOf(err), "error", err)
		c.reply(ctx, protocol.ErrorFrame(f.RequestID, err))
		return
	}
	if payload == nil {
		return
	}
	ack, err := protocol.AckFrame(f.RequestID, payload)
	if err != nil {
		c.reply(ctx, protocol.ErrorFrame(f.RequestID, err))
		return
	}
	c.reply(ctx, ack)
}

func (c *Connection) dispatch(ctx context.Context, cmd chat.Command) (any, error) {
	switch cmd := cmd.(type) {
	case chat.JoinConversationCommand:
		room, err := c.service.JoinConversation(c.id, c.identity, cmd)
		return protocol.JoinedPayload{RoomID: room}, err
	case chat.LeaveConversationCommand:
		room, err := c.service.LeaveConversation(c.id, c.identity, cmd)
		return protocol.JoinedPayload{RoomID: room}, err
	case chat.SendMessageCommand:
		message, err := c.service.SendMessage(ctx, c.identity, cmd)
		return protocol.ToMessagePayload(message), err
	case chat.MarkAsReadCommand:
		message, err := c.service.MarkAsRead(ctx, c.id, c.identity, cmd)
		return protocol.ToMessagePayload(message), err
	case chat.TypingCommand:
		return nil, c.service.Typing(ctx, c.id, c.identity, cmd)
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownCommand, cmd.Name())
	}
}
