// Package chat holds the intents a connected session can issue.
package chat

import "job-chat/domain"

type Command interface {
	Name() string
}

type JoinConversationCommand struct {
	PeerUserID string `validate:"required"`
}

func (JoinConversationCommand) Name() string { return "join_conversation" }

type LeaveConversationCommand struct {
	PeerUserID string `validate:"required"`
}

func (LeaveConversationCommand) Name() string { return "leave_conversation" }

type SendMessageCommand struct {
	ReceiverID           string `validate:"required"`
	Subject              string
	Body                 string
	Kind                 domain.MessageKind
	RelatedJobID         *string
	RelatedApplicationID *string
	InReplyTo            *int64
}

func (SendMessageCommand) Name() string { return "send_message" }

type MarkAsReadCommand struct {
	MessageID int64 `validate:"required"`
}

func (MarkAsReadCommand) Name() string { return "mark_as_read" }

type TypingCommand struct {
	ReceiverID string `validate:"required"`
	Typing     bool
}

func (c TypingCommand) Name() string {
	if c.Typing {
		return "typing_start"
	}
	return "typing_stop"
}

// GetMessagesCommand pages through a conversation, newest first.
type GetMessagesCommand struct {
	PeerUserID string
	Cursor     *string
}
