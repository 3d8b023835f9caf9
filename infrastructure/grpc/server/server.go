// Package server exposes the notification ingress used by other marketplace services.
package server

import (
	"job-chat/auth"
	"job-chat/domain"
	pb "job-chat/proto/notification"
	"log/slog"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewServer builds the gRPC server. The health status starts NOT_SERVING;
// the caller flips it once the orchestrator runs.
const notificationServiceName = "jobchat.NotificationService"

func NewServer(log *slog.Logger, tokens *auth.TokenManager, notifications *NotificationServer) (*grpc.Server, *health.Server) {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			AuthInterceptor(tokens, domain.RoleService),
		))
	pb.RegisterNotificationServiceServer(s, notifications)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(notificationServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)
	return s, healthServer
}

func SetServing(h *health.Server, serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.SetServingStatus(notificationServiceName, status)
	h.SetServingStatus("", status)
}
