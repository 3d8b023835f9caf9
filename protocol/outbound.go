package protocol

import (
	"fmt"
	"job-chat/domain"
	"job-chat/domain/event"
	"time"
)

// MessagePayload is the full message record as seen by clients.
// Ids are strings: snowflake ids do not fit in a JavaScript number.
type MessagePayload struct {
	ID                   int64      `json:"id,string"`
	SenderID             string     `json:"sender_id"`
	SenderName           string     `json:"sender_name,omitempty"`
	ReceiverID           string     `json:"receiver_id"`
	Subject              string     `json:"subject"`
	Body                 string     `json:"body"`
	Kind                 string     `json:"kind"`
	RelatedJobID         *string    `json:"related_job_id,omitempty"`
	RelatedApplicationID *string    `json:"related_application_id,omitempty"`
	InReplyTo            *int64     `json:"in_reply_to,omitempty,string"`
	IsRead               bool       `json:"is_read"`
	ReadAt               *time.Time `json:"read_at,omitempty"`
	SentAt               time.Time  `json:"sent_at"`
}

type NotificationPreviewPayload struct {
	MessageID  int64     `json:"message_id,string"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Subject    string    `json:"subject"`
	Preview    string    `json:"preview"`
	Timestamp  time.Time `json:"timestamp"`
}

type ReadPayload struct {
	MessageID int64     `json:"message_id,string"`
	ReaderID  string    `json:"reader_id"`
	Timestamp time.Time `json:"timestamp"`
}

type TypingPayload struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	IsTyping bool   `json:"is_typing"`
}

type StatusPayload struct {
	UserID    string    `json:"user_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type NotificationPayload struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body,omitempty"`
	Data      map[string]string `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// encoders is the single table from event kind to wire payload.
var encoders = map[event.Kind]func(event.Event) any{
	event.NewMessageKind: func(e event.Event) any {
		evt := e.(event.NewMessage)
		p := ToMessagePayload(evt.Message)
		p.SenderName = evt.SenderName
		return p
	},
	event.MessageNotificationKind: func(e event.Event) any {
		evt := e.(event.MessageNotification)
		return NotificationPreviewPayload{
			MessageID:  evt.MessageID,
			SenderID:   evt.SenderID,
			SenderName: evt.SenderName,
			Subject:    evt.Subject,
			Preview:    evt.Preview,
			Timestamp:  evt.At,
		}
	},
	event.MessageReadKind: func(e event.Event) any {
		evt := e.(event.ReadReceipt)
		return ReadPayload{MessageID: evt.MessageID, ReaderID: evt.ReaderID, Timestamp: evt.At}
	},
	event.UserTypingKind: func(e event.Event) any {
		evt := e.(event.TypingSignal)
		return TypingPayload{UserID: evt.UserID, Name: evt.Name, IsTyping: evt.Typing}
	},
	event.UserStatusChangeKind: func(e event.Event) any {
		evt := e.(event.PresenceChange)
		return StatusPayload{UserID: evt.UserID, Status: string(evt.Status), Timestamp: evt.At}
	},
	event.NotificationKind: func(e event.Event) any {
		evt := e.(event.Notification)
		return NotificationPayload{Type: evt.Type, Title: evt.Title, Body: evt.Body, Data: evt.Data, Timestamp: evt.At}
	},
}

// Encode renders a server event as a frame named after its kind.
func Encode(e event.Event) (Frame, error) {
	encode, ok := encoders[e.Kind()]
	if !ok {
		return Frame{}, fmt.Errorf("no encoder for event kind %q", e.Kind())
	}
	return NewFrame(string(e.Kind()), "", encode(e))
}

func ToMessagePayload(m domain.Message) MessagePayload {
	return MessagePayload{
		ID:                   m.ID,
		SenderID:             m.SenderID,
		ReceiverID:           m.ReceiverID,
		Subject:              m.Subject,
		Body:                 m.Body,
		Kind:                 string(m.Kind),
		RelatedJobID:         m.RelatedJobID,
		RelatedApplicationID: m.RelatedApplicationID,
		InReplyTo:            m.InReplyTo,
		IsRead:               m.IsRead,
		ReadAt:               m.ReadAt,
		SentAt:               m.SentAt,
	}
}
