// Package event defines every event the server pushes to live sessions.
// Events form a closed set: each kind has exactly one payload type.
package event

import (
	"job-chat/domain"
	"time"
)

type Kind string

const (
	NewMessageKind          Kind = "new_message"
	MessageNotificationKind Kind = "message_notification"
	MessageReadKind         Kind = "message_read"
	UserTypingKind          Kind = "user_typing"
	UserStatusChangeKind    Kind = "user_status_change"
	NotificationKind        Kind = "notification"
)

// Event is the tagged union of server-to-client payloads.
type Event interface {
	Kind() Kind
}

// Envelope carries an event to a room or personal channel.
// Exclude, when set, is the originating session that must not receive it.
type Envelope struct {
	Target  domain.RoomID
	Exclude domain.SessionID
	Event   Event
}

type NewMessage struct {
	Message    domain.Message
	SenderName string
}

func (NewMessage) Kind() Kind { return NewMessageKind }

// MessageNotification alerts a receiver that is not looking at the conversation.
type MessageNotification struct {
	MessageID  int64
	SenderID   string
	SenderName string
	Subject    string
	Preview    string
	At         time.Time
}

func (MessageNotification) Kind() Kind { return MessageNotificationKind }

type ReadReceipt struct {
	MessageID int64
	ReaderID  string
	At        time.Time
}

func (ReadReceipt) Kind() Kind { return MessageReadKind }

type TypingSignal struct {
	UserID string
	Name   string
	Typing bool
}

func (TypingSignal) Kind() Kind { return UserTypingKind }

type PresenceChange struct {
	UserID string
	Status domain.Presence
	At     time.Time
}

func (PresenceChange) Kind() Kind { return UserStatusChangeKind }

// Notification is a non-chat event raised by another part of the marketplace
// (application or interview updates).
type Notification struct {
	Type  string
	Title string
	Body  string
	Data  map[string]string
	At    time.Time
}

func (Notification) Kind() Kind { return NotificationKind }
