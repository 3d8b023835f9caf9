package services

import (
	"context"
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/domain/chat"
	"job-chat/domain/event"
	"job-chat/errors"
	"job-chat/runtime"
	"log/slog"
	"time"
)

// IChatService is what a live connection can do once authenticated.
type IChatService interface {
	Connect(ctx context.Context, sessionID domain.SessionID, identity domain.Identity, sink contract.EventSink)
	Disconnect(ctx context.Context, sessionID domain.SessionID)
	JoinConversation(sessionID domain.SessionID, identity domain.Identity, cmd chat.JoinConversationCommand) (domain.RoomID, error)
	LeaveConversation(sessionID domain.SessionID, identity domain.Identity, cmd chat.LeaveConversationCommand) (domain.RoomID, error)
	SendMessage(ctx context.Context, identity domain.Identity, cmd chat.SendMessageCommand) (domain.Message, error)
	MarkAsRead(ctx context.Context, sessionID domain.SessionID, identity domain.Identity, cmd chat.MarkAsReadCommand) (domain.Message, error)
	Typing(ctx context.Context, sessionID domain.SessionID, identity domain.Identity, cmd chat.TypingCommand) error
	GetMessages(identity domain.Identity, cmd chat.GetMessagesCommand) ([]domain.Message, *string, error)
	DeleteMessage(identity domain.Identity, messageID int64) error
}

type ChatService struct {
	log          *slog.Logger
	orchestrator *runtime.Orchestrator
	store        *MessageStore
}

func NewChatService(log *slog.Logger, o *runtime.Orchestrator, store *MessageStore) *ChatService {
	return &ChatService{log: log, orchestrator: o, store: store}
}

func (s *ChatService) Connect(ctx context.Context, sessionID domain.SessionID, identity domain.Identity, sink contract.EventSink) {
	s.orchestrator.Connect(ctx, sessionID, identity, sink)
}

func (s *ChatService) Disconnect(ctx context.Context, sessionID domain.SessionID) {
	s.orchestrator.Disconnect(ctx, sessionID)
}

func (s *ChatService) JoinConversation(sessionID domain.SessionID, identity domain.Identity, cmd chat.JoinConversationCommand) (domain.RoomID, error) {
	room, err := conversationWith(identity, cmd)
	if err != nil {
		return "", err
	}
	return room, s.orchestrator.JoinRoom(sessionID, room)
}

func (s *ChatService) LeaveConversation(sessionID domain.SessionID, identity domain.Identity, cmd chat.LeaveConversationCommand) (domain.RoomID, error) {
	room, err := conversationWith(identity, chat.JoinConversationCommand(cmd))
	if err != nil {
		return "", err
	}
	return room, s.orchestrator.LeaveRoom(sessionID, room)
}

// SendMessage persists then routes. The returned message is what the sender is acknowledged with.
func (s *ChatService) SendMessage(ctx context.Context, identity domain.Identity, cmd chat.SendMessageCommand) (domain.Message, error) {
	if err := chat.Validate(cmd); err != nil {
		return domain.Message{}, err
	}
	draft := domain.Draft{
		SenderID:             identity.UserID,
		ReceiverID:           cmd.ReceiverID,
		Subject:              cmd.Subject,
		Body:                 cmd.Body,
		Kind:                 cmd.Kind,
		RelatedJobID:         cmd.RelatedJobID,
		RelatedApplicationID: cmd.RelatedApplicationID,
		InReplyTo:            cmd.InReplyTo,
	}
	room := domain.ConversationRoom(identity.UserID, cmd.ReceiverID)
	return s.orchestrator.Deliver(ctx, room, identity.Name, func(ctx context.Context) (domain.Message, error) {
		return s.store.Persist(ctx, draft)
	})
}

// MarkAsRead emits a read receipt to the room only the first time the state flips.
func (s *ChatService) MarkAsRead(ctx context.Context, sessionID domain.SessionID, identity domain.Identity, cmd chat.MarkAsReadCommand) (domain.Message, error) {
	if err := chat.Validate(cmd); err != nil {
		return domain.Message{}, err
	}
	message, changed, err := s.store.MarkRead(cmd.MessageID, identity.UserID)
	if err != nil {
		return domain.Message{}, err
	}
	if changed {
		s.orchestrator.Signal(ctx, message.Room(), sessionID, event.ReadReceipt{
			MessageID: message.ID,
			ReaderID:  identity.UserID,
			At:        *message.ReadAt,
		})
	}
	return message, nil
}

// Typing is never persisted and never fails once the command is well formed.
func (s *ChatService) Typing(ctx context.Context, sessionID domain.SessionID, identity domain.Identity, cmd chat.TypingCommand) error {
	room, err := conversationWith(identity, chat.JoinConversationCommand{PeerUserID: cmd.ReceiverID})
	if err != nil {
		return err
	}
	s.orchestrator.Signal(ctx, room, sessionID, event.TypingSignal{
		UserID: identity.UserID,
		Name:   identity.Name,
		Typing: cmd.Typing,
	})
	return nil
}

func (s *ChatService) GetMessages(identity domain.Identity, cmd chat.GetMessagesCommand) ([]domain.Message, *string, error) {
	return s.store.Conversation(identity.UserID, cmd.PeerUserID, cmd.Cursor)
}

func (s *ChatService) DeleteMessage(identity domain.Identity, messageID int64) error {
	if err := s.store.Delete(messageID, identity.UserID); err != nil {
		return err
	}
	s.log.Info("Message deleted", "message_id", messageID, "user_id", identity.UserID, "at", time.Now().UTC())
	return nil
}

func conversationWith(identity domain.Identity, cmd chat.JoinConversationCommand) (domain.RoomID, error) {
	if err := chat.Validate(cmd); err != nil {
		return "", err
	}
	if cmd.PeerUserID == identity.UserID {
		return "", errors.ErrSelfMessage
	}
	return domain.ConversationRoom(identity.UserID, cmd.PeerUserID), nil
}
