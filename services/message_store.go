package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/errors"
	"job-chat/infrastructure/storage"
	"job-chat/moderation"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

type IDGenerator interface {
	Next() (int64, time.Time)
}

// MessageStore is the only writer of messages.
// A message is committed before anything is published about it.
type MessageStore struct {
	log              *slog.Logger
	messages         storage.IMessageRepository
	users            storage.IUserRepository
	ids              IDGenerator
	moderator        *moderation.Moderator
	hooks            []contract.PostPersistHook
	maxBodyLength    int
	maxSubjectLength int
}

func NewMessageStore(log *slog.Logger, messages storage.IMessageRepository, users storage.IUserRepository,
	ids IDGenerator, maxBodyLength, maxSubjectLength int) *MessageStore {
	return &MessageStore{
		log:              log,
		messages:         messages,
		users:            users,
		ids:              ids,
		maxBodyLength:    maxBodyLength,
		maxSubjectLength: maxSubjectLength,
	}
}

// WithModerator censors subject and body before they are measured and stored.
func (s *MessageStore) WithModerator(moderator moderation.Moderator) *MessageStore {
	s.moderator = &moderator
	return s
}

// AddHooks registers side effects run after each commit, in order.
func (s *MessageStore) AddHooks(hooks ...contract.PostPersistHook) *MessageStore {
	s.hooks = append(s.hooks, hooks...)
	return s
}

// Persist validates a draft, assigns its id and sent_at and writes it.
// No state is created when validation fails.
func (s *MessageStore) Persist(ctx context.Context, draft domain.Draft) (domain.Message, error) {
	if draft.Kind == "" {
		draft.Kind = domain.KindGeneral
	}
	if !draft.Kind.IsValid() {
		return domain.Message{}, fmt.Errorf("%w: %q", errors.ErrInvalidMessageKind, draft.Kind)
	}
	if draft.SenderID == draft.ReceiverID {
		return domain.Message{}, errors.ErrSelfMessage
	}
	if strings.TrimSpace(draft.Body) == "" {
		return domain.Message{}, errors.ErrEmptyBody
	}
	if s.moderator != nil {
		draft.Subject = s.moderator.Moderate(draft.SenderID, draft.Subject)
		draft.Body = s.moderator.Moderate(draft.SenderID, draft.Body)
	}
	if utf8.RuneCountInString(draft.Body) > s.maxBodyLength {
		return domain.Message{}, fmt.Errorf("%w: max %d characters", errors.ErrBodyTooLong, s.maxBodyLength)
	}
	if utf8.RuneCountInString(draft.Subject) > s.maxSubjectLength {
		return domain.Message{}, fmt.Errorf("%w: max %d characters", errors.ErrSubjectTooLong, s.maxSubjectLength)
	}
	if err := s.resolve(draft.SenderID, errors.ErrSenderNotFound); err != nil {
		return domain.Message{}, err
	}
	if err := s.resolve(draft.ReceiverID, errors.ErrReceiverNotFound); err != nil {
		return domain.Message{}, err
	}

	id, sentAt := s.ids.Next()
	message := domain.Message{
		ID:                   id,
		SenderID:             draft.SenderID,
		ReceiverID:           draft.ReceiverID,
		Subject:              draft.Subject,
		Body:                 draft.Body,
		Kind:                 draft.Kind,
		RelatedJobID:         emptyToNil(draft.RelatedJobID),
		RelatedApplicationID: emptyToNil(draft.RelatedApplicationID),
		InReplyTo:            draft.InReplyTo,
		SentAt:               sentAt,
	}
	if err := s.messages.StoreMessage(message); err != nil {
		s.log.Error("Message not persisted", "sender_id", message.SenderID, "error", err)
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrStore, err)
	}
	s.log.Debug("Message persisted", "message_id", message.ID, "room_id", message.Room())

	for _, hook := range s.hooks {
		hook.AfterPersist(ctx, message)
	}
	return message, nil
}

// MarkRead flips the read state for the receiver only.
// A second call returns the same state with changed set to false.
func (s *MessageStore) MarkRead(messageID int64, readerID string) (domain.Message, bool, error) {
	message, changed, err := s.messages.MarkRead(messageID, readerID, time.Now().UTC())
	if err != nil {
		return domain.Message{}, false, storeError(err)
	}
	return message, changed, nil
}

// Get returns a message only to one of its two participants.
func (s *MessageStore) Get(messageID int64, requesterID string) (domain.Message, error) {
	message, err := s.messages.GetMessage(messageID)
	if err != nil {
		return domain.Message{}, storeError(err)
	}
	if !isParticipant(message, requesterID) {
		return domain.Message{}, errors.ErrMessageNotFound
	}
	return message, nil
}

func (s *MessageStore) Conversation(userID, peerID string, cursor *string) ([]domain.Message, *string, error) {
	if peerID == "" || peerID == userID {
		return nil, nil, errors.ErrInvalidPayload
	}
	messages, next, err := s.messages.GetConversation(domain.ConversationRoom(userID, peerID), cursor)
	if err != nil {
		return nil, nil, storeError(err)
	}
	return messages, next, nil
}

// Delete removes a message on explicit request of the sender or the receiver.
func (s *MessageStore) Delete(messageID int64, requesterID string) error {
	if _, err := s.Get(messageID, requesterID); err != nil {
		return err
	}
	return storeError(s.messages.DeleteMessage(messageID))
}

func (s *MessageStore) resolve(userID string, notFound error) error {
	_, err := s.users.GetUserByID(userID)
	switch {
	case err == nil:
		return nil
	case stderrors.Is(err, errors.ErrUserNotFound):
		return fmt.Errorf("%w: %s", notFound, userID)
	default:
		return fmt.Errorf("%w: %v", errors.ErrStore, err)
	}
}

func isParticipant(message domain.Message, userID string) bool {
	return message.SenderID == userID || message.ReceiverID == userID
}

// storeError keeps domain errors and turns everything else into a store failure.
func storeError(err error) error {
	if err == nil || stderrors.Is(err, errors.ErrMessageNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", errors.ErrStore, err)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return lo.ToPtr(*s)
}
