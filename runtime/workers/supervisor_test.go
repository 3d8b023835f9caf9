package workers

import (
	"context"
	"fmt"
	"job-chat/mocks"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_Restart_On_Panic(t *testing.T) {
	req := require.New(t)
	workerMock := mocks.NewMockWorker(gomock.NewController(t))

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(logs.GetLoggerFromLevel(slog.LevelDebug), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sup.Add(workerMock).Run(ctx)

	req.Eventually(func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestSupervisor_Restart_On_Error(t *testing.T) {
	req := require.New(t)
	workerMock := mocks.NewMockWorker(gomock.NewController(t))

	// Given a worker failing once then finishing
	gomock.InOrder(
		workerMock.EXPECT().Run(gomock.Any()).Return(fmt.Errorf("nats unreachable")),
		workerMock.EXPECT().Run(gomock.Any()).Return(nil),
	)

	done := make(chan struct{})
	go func() {
		NewSupervisor(logs.GetLoggerFromLevel(slog.LevelDebug), time.Millisecond).Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Supervisor should have stopped after the worker finished")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	req := require.New(t)
	workerMock := mocks.NewMockWorker(gomock.NewController(t))
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}).
		MaxTimes(1)

	sup := NewSupervisor(logs.GetLoggerFromLevel(slog.LevelDebug), time.Millisecond)
	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()
	<-started

	// When stopped, possibly before Run registered its cancel
	req.Eventually(func() bool {
		sup.Stop()
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
