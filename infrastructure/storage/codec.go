package storage

import (
	"fmt"
	"job-chat/domain"
	pb "job-chat/proto/storage"
	"time"

	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
)

func EncodeMessage(m domain.Message) ([]byte, error) {
	record := &pb.Message{
		Id:                   m.ID,
		SenderId:             m.SenderID,
		ReceiverId:           m.ReceiverID,
		Subject:              m.Subject,
		Body:                 m.Body,
		Kind:                 string(m.Kind),
		RelatedJobId:         lo.FromPtr(m.RelatedJobID),
		RelatedApplicationId: lo.FromPtr(m.RelatedApplicationID),
		InReplyTo:            lo.FromPtr(m.InReplyTo),
		IsRead:               m.IsRead,
		SentAt:               m.SentAt.UnixNano(),
	}
	if m.ReadAt != nil {
		record.ReadAt = m.ReadAt.UnixNano()
	}
	b, err := proto.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode message %d: %w", m.ID, err)
	}
	return b, nil
}

func DecodeMessage(b []byte) (domain.Message, error) {
	var record pb.Message
	if err := proto.Unmarshal(b, &record); err != nil {
		return domain.Message{}, fmt.Errorf("decode message: %w", err)
	}
	m := domain.Message{
		ID:                   record.GetId(),
		SenderID:             record.GetSenderId(),
		ReceiverID:           record.GetReceiverId(),
		Subject:              record.GetSubject(),
		Body:                 record.GetBody(),
		Kind:                 domain.MessageKind(record.GetKind()),
		RelatedJobID:         lo.EmptyableToPtr(record.GetRelatedJobId()),
		RelatedApplicationID: lo.EmptyableToPtr(record.GetRelatedApplicationId()),
		InReplyTo:            lo.EmptyableToPtr(record.GetInReplyTo()),
		IsRead:               record.GetIsRead(),
		SentAt:               time.Unix(0, record.GetSentAt()).UTC(),
	}
	if record.GetReadAt() != 0 {
		m.ReadAt = lo.ToPtr(time.Unix(0, record.GetReadAt()).UTC())
	}
	return m, nil
}

func EncodeUser(u User) ([]byte, error) {
	b, err := proto.Marshal(&pb.User{
		Id:           u.ID,
		Email:        u.Email,
		DisplayName:  u.DisplayName,
		Role:         string(u.Role),
		Status:       string(u.Status),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("encode user %s: %w", u.ID, err)
	}
	return b, nil
}

func DecodeUser(b []byte) (User, error) {
	var record pb.User
	if err := proto.Unmarshal(b, &record); err != nil {
		return User{}, fmt.Errorf("decode user: %w", err)
	}
	return User{
		ID:           record.GetId(),
		Email:        record.GetEmail(),
		DisplayName:  record.GetDisplayName(),
		Role:         domain.Role(record.GetRole()),
		Status:       domain.AccountStatus(record.GetStatus()),
		PasswordHash: record.GetPasswordHash(),
		CreatedAt:    time.Unix(record.GetCreatedAt(), 0).UTC(),
	}, nil
}
