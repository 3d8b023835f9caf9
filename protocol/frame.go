// Package protocol maps the JSON frames exchanged on a live connection
// to chat commands and server events.
package protocol

import (
	"encoding/json"
	"job-chat/domain"
	"job-chat/errors"
)

// Inbound frame types.
const (
	JoinConversation  = "join_conversation"
	LeaveConversation = "leave_conversation"
	SendMessage       = "send_message"
	MarkAsRead        = "mark_as_read"
	TypingStart       = "typing_start"
	TypingStop        = "typing_stop"
)

// Server-only frame types.
const (
	Connected = "connected"
	Ack       = "ack"
	Error     = "error"
)

// Frame is the envelope of every message on the wire, in both directions.
type Frame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type ConnectedPayload struct {
	SessionID domain.SessionID `json:"session_id"`
	UserID    string           `json:"user_id"`
	Name      string           `json:"name"`
}

type JoinedPayload struct {
	RoomID domain.RoomID `json:"room_id"`
}

func ParseFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, errors.ErrInvalidPayload
	}
	if f.Type == "" {
		return Frame{}, errors.ErrUnknownCommand
	}
	return f, nil
}

func (f Frame) Marshal() ([]byte, error) {
	return json.Marshal(f)
}

func NewFrame(frameType, requestID string, payload any) (Frame, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Type: frameType, RequestID: requestID, Payload: raw}, nil
}

func AckFrame(requestID string, payload any) (Frame, error) {
	return NewFrame(Ack, requestID, payload)
}

// ErrorFrame reports a failed request to its originating session only.
// Internal failures never leak their message.
func ErrorFrame(requestID string, err error) Frame {
	payload := ErrorPayload{Code: errors.CodeOf(err), Message: err.Error()}
	if payload.Code == errors.CodeInternal {
		payload.Message = "internal error"
	}
	f, _ := NewFrame(Error, requestID, payload)
	return f
}

func ConnectedFrame(sessionID domain.SessionID, identity domain.Identity) (Frame, error) {
	return NewFrame(Connected, "", ConnectedPayload{
		SessionID: sessionID,
		UserID:    identity.UserID,
		Name:      identity.Name,
	})
}
