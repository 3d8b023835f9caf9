package domain

import "strings"

// RoomID addresses a fan-out scope: either a two-party conversation
// or the personal channel of a single user.
type RoomID string

const (
	conversationPrefix = "conversation_"
	personalPrefix     = "user_"
)

// ConversationRoom derives the room shared by two participants.
// The pair is sorted so both sides compute the same identifier.
func ConversationRoom(userA, userB string) RoomID {
	if userB < userA {
		userA, userB = userB, userA
	}
	return RoomID(conversationPrefix + userA + "_" + userB)
}

// PersonalChannel is the room every session of a user joins on registration.
func PersonalChannel(userID string) RoomID {
	return RoomID(personalPrefix + userID)
}

func (r RoomID) IsConversation() bool {
	return strings.HasPrefix(string(r), conversationPrefix)
}

func (r RoomID) IsPersonal() bool {
	return strings.HasPrefix(string(r), personalPrefix)
}

func (r RoomID) String() string {
	return string(r)
}
