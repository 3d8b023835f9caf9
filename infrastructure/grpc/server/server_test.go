package server

import (
	"context"
	"job-chat/auth"
	"job-chat/domain"
	"job-chat/domain/event"
	"job-chat/mocks"
	pb "job-chat/proto/notification"
	"job-chat/runtime"
	"job-chat/services"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

type fixture struct {
	conn         *grpc.ClientConn
	tokens       *auth.TokenManager
	orchestrator *runtime.Orchestrator
	health       func(bool)
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	tokens := auth.NewTokenManager("secret", "job-chat", time.Hour)
	o := runtime.NewOrchestrator(log, mocks.NewMockISupervisor(gomock.NewController(t)), runtime.NewRegistry(), 100, 16)
	s, healthServer := NewServer(log, tokens, NewNotificationServer(services.NewNotificationService(log, o)))

	listener := bufconn.Listen(1024 * 1024)
	go func() { _ = s.Serve(listener) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return fixture{
		conn:         conn,
		tokens:       tokens,
		orchestrator: o,
		health:       func(serving bool) { SetServing(healthServer, serving) },
	}
}

func (f fixture) as(t *testing.T, role domain.Role) context.Context {
	t.Helper()
	token, err := f.tokens.Generate(domain.Identity{UserID: "applications", Name: "applications", Role: role})
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestNotificationServer_Notify(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	sink := &recordingSink{}
	f.orchestrator.Connect(context.Background(), "b1", domain.Identity{UserID: "bob", Name: "Bob"}, sink)
	client := pb.NewNotificationServiceClient(f.conn)

	// When the applications service raises an interview update for bob
	resp, err := client.Notify(f.as(t, domain.RoleService), &pb.NotifyRequest{
		UserId: "bob",
		Type:   "interview_update",
		Title:  "Interview scheduled",
		Data:   map[string]string{"interview_id": "42"},
	})

	// Then bob's only session receives it
	req.NoError(err)
	req.Equal(int32(1), resp.GetDeliveredSessions())
	events := sink.Events()
	req.Len(events, 1)
	notification := events[0].(event.Notification)
	req.Equal("Interview scheduled", notification.Title)
	req.Equal("42", notification.Data["interview_id"])
}

func TestNotificationServer_Notify_Nobody_Online(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	resp, err := pb.NewNotificationServiceClient(f.conn).Notify(f.as(t, domain.RoleService), &pb.NotifyRequest{
		UserId: "carol", Type: "application_update", Title: "Application viewed",
	})

	req.NoError(err)
	req.Zero(resp.GetDeliveredSessions())
}

func TestNotificationServer_Rejects(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	client := pb.NewNotificationServiceClient(f.conn)
	valid := &pb.NotifyRequest{UserId: "bob", Type: "t", Title: "t"}

	tests := []struct {
		name string
		ctx  context.Context
		in   *pb.NotifyRequest
		code codes.Code
	}{
		{"no token", context.Background(), valid, codes.Unauthenticated},
		{"bad token", metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope"), valid, codes.Unauthenticated},
		{"end user token", f.as(t, domain.RoleCandidate), valid, codes.PermissionDenied},
		{"missing title", f.as(t, domain.RoleService), &pb.NotifyRequest{UserId: "bob", Type: "t"}, codes.InvalidArgument},
	}
	for _, tt := range tests {
		_, err := client.Notify(tt.ctx, tt.in)
		req.Equal(tt.code, status.Code(err), tt.name)
	}
}

func TestHealth_Follows_Orchestrator(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	client := healthpb.NewHealthClient(f.conn)
	ctx := context.Background()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: notificationServiceName})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)

	f.health(true)
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_SERVING, resp.Status)
}
