package server

import (
	"context"
	"job-chat/errors"
	pb "job-chat/proto/notification"
	"job-chat/services"
)

type NotificationServer struct {
	pb.UnimplementedNotificationServiceServer
	notifications *services.NotificationService
}

func NewNotificationServer(notifications *services.NotificationService) *NotificationServer {
	return &NotificationServer{notifications: notifications}
}

// Notify pushes a collaborator notification to the live sessions of one user.
// Nobody online is a success with zero sessions.
func (s *NotificationServer) Notify(ctx context.Context, req *pb.NotifyRequest) (*pb.NotifyResponse, error) {
	delivered, err := s.notifications.Notify(ctx, services.NotificationRequest{
		UserID: req.GetUserId(),
		Type:   req.GetType(),
		Title:  req.GetTitle(),
		Body:   req.GetBody(),
		Data:   req.GetData(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.NotifyResponse{DeliveredSessions: int32(delivered)}, nil
}
