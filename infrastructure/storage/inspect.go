package storage

import (
	"strconv"
	"strings"
	"time"

	"github.com/mama165/sdk-go/database"
)

// InspectMapper renders badger entries for the debug inspector.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, messagePrefix):
		message, err := DecodeMessage(val)
		if err != nil {
			row.Detail = "Error: decode failed"
			return row
		}
		row.Type = "MESSAGE"
		row.EntityID = strconv.FormatInt(message.ID, 10)
		row.Namespace = message.Room().String()
		row.Timestamp = message.SentAt.Format(time.RFC3339)
		row.Detail = message.Subject + " | " + message.Body
		if message.IsRead {
			row.Scores = "read"
		}
	case strings.HasPrefix(key, "user:id:"):
		user, err := DecodeUser(val)
		if err != nil {
			row.Detail = "Error: decode failed"
			return row
		}
		row.Type = "USER"
		row.EntityID = user.ID
		row.Namespace = string(user.Role)
		row.Timestamp = user.CreatedAt.Format(time.RFC3339)
		row.Detail = user.DisplayName + " <" + user.Email + "> " + string(user.Status)
	case strings.HasPrefix(key, conversationPrefix):
		row.Type = "INDEX"
	}
	return row
}
