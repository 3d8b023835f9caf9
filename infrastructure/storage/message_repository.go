//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../../mocks/mock_message_repository.go -package=mocks
package storage

import (
	stderrors "errors"
	"fmt"
	"job-chat/domain"
	"job-chat/errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	messagePrefix      = "msg:"
	conversationPrefix = "conv:"
	maxConflictRetries = 3
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessage(id int64) (domain.Message, error)
	MarkRead(id int64, readerID string, at time.Time) (domain.Message, bool, error)
	DeleteMessage(id int64) error
	GetConversation(room domain.RoomID, cursor *string) ([]domain.Message, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// Keys are zero padded on 19 digits so lexicographical order is id order,
// and ids are time ordered.
//
//	msg:{id}              -> encoded message
//	conv:{room}:{id}      -> empty, conversation index
func messageKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%019d", messagePrefix, id))
}

func conversationKey(room domain.RoomID, id int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d", conversationPrefix, room, id))
}

// StoreMessage writes the record and its conversation index in one transaction.
// Either both keys exist afterward or none does.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	bytes, err := EncodeMessage(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(message.ID), bytes); err != nil {
			return err
		}
		return txn.Set(conversationKey(message.Room(), message.ID), nil)
	})
}

func (m MessageRepository) GetMessage(id int64) (domain.Message, error) {
	var message domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		var err error
		message, err = getMessage(txn, id)
		return err
	})
	return message, err
}

// MarkRead flips the read state once, only for the receiver.
// A message owned by someone else is reported as not found.
// changed is false when the message was already read.
func (m MessageRepository) MarkRead(id int64, readerID string, at time.Time) (domain.Message, bool, error) {
	var message domain.Message
	var changed bool
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		changed = false
		err = m.db.Update(func(txn *badger.Txn) error {
			current, err := getMessage(txn, id)
			if err != nil {
				return err
			}
			if current.ReceiverID != readerID {
				return errors.ErrMessageNotFound
			}
			message = current
			if current.IsRead {
				return nil
			}
			readAt := at.UTC()
			message.IsRead = true
			message.ReadAt = &readAt
			changed = true
			data, err := EncodeMessage(message)
			if err != nil {
				return err
			}
			return txn.Set(messageKey(id), data)
		})
		if !stderrors.Is(err, badger.ErrConflict) {
			break
		}
		m.log.Debug("Read state conflict, retrying", "message_id", id, "attempt", attempt+1)
	}
	if err != nil {
		return domain.Message{}, false, err
	}
	return message, changed, nil
}

func (m MessageRepository) DeleteMessage(id int64) error {
	return m.db.Update(func(txn *badger.Txn) error {
		message, err := getMessage(txn, id)
		if err != nil {
			return err
		}
		if err = txn.Delete(messageKey(id)); err != nil {
			return err
		}
		return txn.Delete(conversationKey(message.Room(), id))
	})
}

// GetConversation returns the newest messages of a room first.
// The cursor is the padded id of the last message of the previous page;
// a nil cursor in the result means there is nothing older.
func (m MessageRepository) GetConversation(room domain.RoomID, cursor *string) ([]domain.Message, *string, error) {
	var messages []domain.Message
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("%s%s:", conversationPrefix, room)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[prefixLen:]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				return nil
			}
			key := string(it.Item().Key()[prefixLen:])
			id, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return fmt.Errorf("corrupted conversation key %q: %w", key, err)
			}
			message, err := getMessage(txn, id)
			if err != nil {
				return err
			}
			messages = append(messages, message)
			lastKey = key
		}
		lastKey = ""
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if lastKey == "" {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

func getMessage(txn *badger.Txn, id int64) (domain.Message, error) {
	item, err := txn.Get(messageKey(id))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}
	var message domain.Message
	err = item.Value(func(val []byte) error {
		message, err = DecodeMessage(val)
		return err
	})
	return message, err
}
