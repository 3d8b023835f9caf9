package protocol

import (
	"encoding/json"
	"fmt"
	"job-chat/domain"
	"job-chat/domain/chat"
	"job-chat/errors"
)

type joinPayload struct {
	PeerUserID string `json:"peer_user_id"`
}

type sendPayload struct {
	ReceiverID           string  `json:"receiver_id"`
	Subject              string  `json:"subject"`
	Body                 string  `json:"body"`
	Kind                 string  `json:"kind"`
	RelatedJobID         *string `json:"related_job_id"`
	RelatedApplicationID *string `json:"related_application_id"`
	InReplyTo            *int64  `json:"in_reply_to,string"`
}

type readPayload struct {
	MessageID int64 `json:"message_id,string"`
}

type typingPayload struct {
	ReceiverID string `json:"receiver_id"`
}

var decoders = map[string]func(json.RawMessage) (chat.Command, error){
	JoinConversation: func(raw json.RawMessage) (chat.Command, error) {
		var p joinPayload
		err := unmarshal(raw, &p)
		return chat.JoinConversationCommand{PeerUserID: p.PeerUserID}, err
	},
	LeaveConversation: func(raw json.RawMessage) (chat.Command, error) {
		var p joinPayload
		err := unmarshal(raw, &p)
		return chat.LeaveConversationCommand{PeerUserID: p.PeerUserID}, err
	},
	SendMessage: func(raw json.RawMessage) (chat.Command, error) {
		var p sendPayload
		err := unmarshal(raw, &p)
		return chat.SendMessageCommand{
			ReceiverID:           p.ReceiverID,
			Subject:              p.Subject,
			Body:                 p.Body,
			Kind:                 domain.MessageKind(p.Kind),
			RelatedJobID:         p.RelatedJobID,
			RelatedApplicationID: p.RelatedApplicationID,
			InReplyTo:            p.InReplyTo,
		}, err
	},
	MarkAsRead: func(raw json.RawMessage) (chat.Command, error) {
		var p readPayload
		err := unmarshal(raw, &p)
		return chat.MarkAsReadCommand{MessageID: p.MessageID}, err
	},
	TypingStart: typing(true),
	TypingStop:  typing(false),
}

func typing(on bool) func(json.RawMessage) (chat.Command, error) {
	return func(raw json.RawMessage) (chat.Command, error) {
		var p typingPayload
		err := unmarshal(raw, &p)
		return chat.TypingCommand{ReceiverID: p.ReceiverID, Typing: on}, err
	}
}

// Decode turns a client frame into the command it carries.
func Decode(f Frame) (chat.Command, error) {
	decode, ok := decoders[f.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCommand, f.Type)
	}
	cmd, err := decode(f.Payload)
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

func unmarshal(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return nil
}
