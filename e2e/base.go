package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	pb "job-chat/proto/notification"
	"job-chat/protocol"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// Participant is a registered account with its live connection.
type Participant struct {
	UserID string
	Name   string
	Token  string
	Conn   *websocket.Conn
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerAddr == "" {
		s.T().Skip("E2E_SERVER_ADDR not set")
	}
}

func (s *BaseSuite) step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *BaseSuite) debug(direction string, v any) {
	if !s.Config.DebugJSON {
		return
	}
	data, _ := json.MarshalIndent(v, "", "  ")
	s.T().Logf("%s:\n%s", direction, data)
}

// Register creates a fresh account and connects it.
func (s *BaseSuite) Register(name, role string) *Participant {
	s.step("Register " + name)
	body, err := json.Marshal(map[string]string{
		"email":        strings.ToLower(name) + "-" + uuid.NewString()[:8] + "@e2e.test",
		"password":     "Str0ng!Passw0rd",
		"display_name": name,
		"role":         role,
	})
	s.Require().NoError(err)

	resp, err := http.Post("http://"+s.Config.ServerAddr+"/api/auth/register", "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var token struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&token))

	p := &Participant{Name: name, Token: token.Token}
	s.connect(p)
	return p
}

func (s *BaseSuite) connect(p *Participant) {
	u := url.URL{Scheme: "ws", Host: s.Config.ServerAddr, Path: "/ws"}
	header := http.Header{"Authorization": []string{"Bearer " + p.Token}}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	s.Require().NoError(err, "Failed to open live connection at "+u.String())
	p.Conn = conn
	s.T().Cleanup(func() { _ = conn.Close() })

	var connected protocol.ConnectedPayload
	s.Require().NoError(json.Unmarshal(s.ReadUntil(p, protocol.Connected).Payload, &connected))
	p.UserID = connected.UserID
}

func (s *BaseSuite) Send(p *Participant, frameType string, payload any) string {
	requestID := uuid.NewString()
	f, err := protocol.NewFrame(frameType, requestID, payload)
	s.Require().NoError(err)
	s.debug(p.Name+" SENDS", f)
	data, err := f.Marshal()
	s.Require().NoError(err)
	s.Require().NoError(p.Conn.WriteMessage(websocket.TextMessage, data))
	return requestID
}

// ReadUntil skips frames of other types, presence changes for instance.
func (s *BaseSuite) ReadUntil(p *Participant, frameType string) protocol.Frame {
	for {
		s.Require().NoError(p.Conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
		_, data, err := p.Conn.ReadMessage()
		s.Require().NoError(err, p.Name+" waited for "+frameType)
		f, err := protocol.ParseFrame(data)
		s.Require().NoError(err)
		s.debug(p.Name+" RECEIVES", f)
		if f.Type == frameType {
			return f
		}
	}
}

// WithNotifications provides a notification client authenticated with the service token.
func (s *BaseSuite) WithNotifications(name string, fn func(ctx context.Context, client pb.NotificationServiceClient)) {
	if s.Config.GrpcAddr == "" || s.Config.ServiceToken == "" {
		s.T().Skip("E2E_GRPC_ADDR or E2E_SERVICE_TOKEN not set")
	}
	s.step(name)
	conn, err := grpc.NewClient(s.Config.GrpcAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)
			s.T().Logf("GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			s.debug("REQUEST", req)
			s.debug("RESPONSE", reply)
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.GrpcAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+s.Config.ServiceToken)

	fn(ctx, pb.NewNotificationServiceClient(conn))
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}
