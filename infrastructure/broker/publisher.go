// Package broker forwards committed chat messages to the rest of the marketplace.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"job-chat/domain"
	"job-chat/protocol"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

const DefaultSubject = "chat.message.created"

type conn interface {
	Publish(subject string, data []byte) error
}

// MessageCreated is the payload published for every committed message.
type MessageCreated struct {
	RoomID  domain.RoomID           `json:"room_id"`
	Message protocol.MessagePayload `json:"message"`
}

type Publisher struct {
	log     *slog.Logger
	conn    conn
	subject string
}

func NewPublisher(log *slog.Logger, nc *nats.Conn, subject string) *Publisher {
	return newPublisher(log, nc, subject)
}

func newPublisher(log *slog.Logger, c conn, subject string) *Publisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{log: log, conn: c, subject: subject}
}

// Connect keeps reconnecting forever: the chat must not depend on the broker being up.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("job-chat"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

func (p *Publisher) PublishMessage(_ context.Context, message domain.Message) error {
	data, err := json.Marshal(MessageCreated{RoomID: message.Room(), Message: protocol.ToMessagePayload(message)})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish message to subject '%s': %w", p.subject, err)
	}
	p.log.Debug("Message published", "subject", p.subject, "message_id", message.ID)
	return nil
}
