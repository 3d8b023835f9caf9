package main

import (
	"context"
	"errors"
	"fmt"
	"job-chat/auth"
	"job-chat/infrastructure/broker"
	grpcserver "job-chat/infrastructure/grpc/server"
	"job-chat/infrastructure/presence"
	"job-chat/infrastructure/rest"
	"job-chat/infrastructure/storage"
	"job-chat/infrastructure/websocket"
	"job-chat/internal"
	"job-chat/moderation"
	"job-chat/runtime"
	"job-chat/runtime/workers"
	"job-chat/services"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes for the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Deferred cleanups always run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if config.DebugPort != 0 {
		endpoint := "/inspect"
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, storage.InspectMapper)
	}

	// 3. Storage & Services
	ids, err := storage.NewIDGenerator(config.SnowflakeNode)
	if err != nil {
		return exitConfig, err
	}
	userRepository := storage.NewUserRepository(db)
	messageRepository := storage.NewMessageRepository(db, logger, config.LimitMessages)
	tokens := auth.NewTokenManager(config.JwtSecret, config.JwtIssuer, config.AuthTokenDuration)
	authenticator := auth.NewAuthenticator(tokens, userRepository)

	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, supervisor, runtime.NewRegistry(), config.PreviewLength, config.RoomStripes)
	orchestrator.Add(workers.NewTelemetryWorker(logger, orchestrator, config.MetricInterval))

	store := services.NewMessageStore(logger, messageRepository, userRepository, ids, config.MaxBodyLength, config.MaxSubjectLength)
	if config.EnableModeration {
		moderator, err := buildModerator(config, logger)
		if err != nil {
			return exitConfig, err
		}
		store.WithModerator(moderator)
	}

	// 4. Optional collaborators: broker egress and presence mirror
	if config.NatsURL != "" {
		nc, err := broker.Connect(config.NatsURL)
		if err != nil {
			return exitRuntime, err
		}
		defer nc.Close()
		hook := workers.NewHookPublisher(logger, broker.NewPublisher(logger, nc, config.NatsSubject), config.HookBufferSize)
		store.AddHooks(hook)
		orchestrator.Add(hook)
	}
	if config.RedisURL != "" {
		client, err := presence.NewClient(ctx, config.RedisURL)
		if err != nil {
			return exitRuntime, err
		}
		defer client.Close()
		mirror := workers.NewPresenceMirror(logger, presence.NewPresenceStore(client, config.PresenceTTL),
			orchestrator, config.HookBufferSize, config.PresenceTTL/3)
		orchestrator.Observe(mirror).Add(mirror)
	}

	chatService := services.NewChatService(logger, orchestrator, store)
	notificationService := services.NewNotificationService(logger, orchestrator)
	authService := services.NewAuthService(userRepository, tokens)

	errChan := make(chan error, 3)

	// 5. Start the Engine (supervised workers)
	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 6. gRPC notification ingress
	grpcAddress := fmt.Sprintf("0.0.0.0:%d", config.GrpcPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	grpcServer, healthServer := grpcserver.NewServer(logger, tokens, grpcserver.NewNotificationServer(notificationService))
	go func() {
		logger.Info("Starting gRPC server", "address", grpcAddress, "at", time.Now().UTC())
		grpcserver.SetServing(healthServer, true)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. HTTP: websocket sessions and REST boundary
	if !logger.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	wsHandler := websocket.NewHandler(logger, authenticator, chatService, websocket.Settings{
		WriteWait:    config.WriteWait,
		PongWait:     config.PongWait,
		MaxFrameSize: config.MaxFrameSize,
		BufferSize:   config.ConnectionBufferSize,
	})
	router := rest.NewRouter(logger, orchestrator, authenticator, rest.Handlers{
		Auth:      rest.NewAuthHandler(authService),
		Messages:  rest.NewMessageHandler(chatService),
		WebSocket: wsHandler,
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", config.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful shutdown
	logger.Info("Shutting down gracefully...")
	grpcserver.SetServing(healthServer, false)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	if err := wsHandler.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Websocket sessions still open at shutdown", "error", err)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithSyncWrites(config.BadgerSyncWrites)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}

func buildModerator(config internal.Config, logger *slog.Logger) (moderation.Moderator, error) {
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return moderation.Moderator{}, err
	}
	data, err := moderation.NewDefaultLoader().LoadAll(config.CensoredPath)
	if err != nil {
		return moderation.Moderator{}, fmt.Errorf("censored words loading failed: %w", err)
	}
	logger.Info("Moderation enabled", "languages", data.Languages, "words", len(data.Words))
	return moderation.NewModerator(data.Words, charReplacement, logger)
}
