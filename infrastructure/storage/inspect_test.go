package storage

import (
	"job-chat/domain"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInspectMapper_Renders_Known_Records(t *testing.T) {
	req := require.New(t)
	ids, err := NewIDGenerator(1)
	req.NoError(err)

	// Given a stored message and user
	message := newMessage(ids, "alice", "bob", "Available for interview?")
	message.IsRead = true
	user := User{ID: "u-1", Email: "a@b.c", DisplayName: "Alice", Role: domain.RoleEmployer,
		Status: domain.StatusActive, CreatedAt: time.Unix(1700000000, 0)}

	messageBytes, err := EncodeMessage(message)
	req.NoError(err)
	userBytes, err := EncodeUser(user)
	req.NoError(err)

	// When they go through the inspector mapper
	messageRow := InspectMapper(string(messageKey(message.ID)), messageBytes)
	userRow := InspectMapper(string(userIDKey(user.ID)), userBytes)
	indexRow := InspectMapper(string(conversationKey(message.Room(), message.ID)), nil)

	// Then each row is typed and carries its identifiers
	req.Equal("MESSAGE", messageRow.Type)
	req.Equal(strconv.FormatInt(message.ID, 10), messageRow.EntityID)
	req.Equal("conversation_alice_bob", messageRow.Namespace)
	req.Equal("read", messageRow.Scores)
	req.Equal("USER", userRow.Type)
	req.Equal("u-1", userRow.EntityID)
	req.Equal("employer", userRow.Namespace)
	req.Equal("INDEX", indexRow.Type)
}

func TestInspectMapper_Corrupted_Message(t *testing.T) {
	req := require.New(t)

	// Given bytes that are not a protobuf record
	row := InspectMapper(string(messageKey(42)), []byte{0xff, 0xff, 0xff})

	// Then the row reports the failure instead of panicking
	req.Equal("Error: decode failed", row.Detail)
}
