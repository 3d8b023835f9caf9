// Package domain contains core concepts of the messaging system.
// This file defines Message records and related rules.
// A stored message is immutable except for its read state.
package domain

import (
	"time"
	"unicode/utf8"
)

type MessageKind string

const (
	KindGeneral             MessageKind = "general"
	KindInterviewInvitation MessageKind = "interview_invitation"
	KindJobInquiry          MessageKind = "job_inquiry"
	KindApplicationFollowup MessageKind = "application_followup"
	KindOfferNegotiation    MessageKind = "offer_negotiation"
)

var messageKinds = map[MessageKind]struct{}{
	KindGeneral:             {},
	KindInterviewInvitation: {},
	KindJobInquiry:          {},
	KindApplicationFollowup: {},
	KindOfferNegotiation:    {},
}

// IsValid reports whether k is one of the known kinds.
// The empty kind is not valid; callers default it to KindGeneral.
func (k MessageKind) IsValid() bool {
	_, ok := messageKinds[k]
	return ok
}

// Message is the durable record of a chat message.
type Message struct {
	ID                   int64
	SenderID             string
	ReceiverID           string
	Subject              string
	Body                 string
	Kind                 MessageKind
	RelatedJobID         *string
	RelatedApplicationID *string
	InReplyTo            *int64
	IsRead               bool
	ReadAt               *time.Time
	SentAt               time.Time
}

// Room returns the conversation the message belongs to.
func (m Message) Room() RoomID {
	return ConversationRoom(m.SenderID, m.ReceiverID)
}

// Draft is a message not yet accepted by the store.
type Draft struct {
	SenderID             string
	ReceiverID           string
	Subject              string
	Body                 string
	Kind                 MessageKind
	RelatedJobID         *string
	RelatedApplicationID *string
	InReplyTo            *int64
}

// Preview truncates s to at most limit runes, appending "..." when cut.
func Preview(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit]) + "..."
}
