package workers

import (
	"context"
	"job-chat/contract"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

type StatsSource interface {
	Stats() contract.RegistryStats
}

// TelemetryWorker logs process health next to the live session counters.
type TelemetryWorker struct {
	log      *slog.Logger
	source   StatsSource
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, source StatsSource, interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, source: source, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.report(p)
		}
	}
}

func (w *TelemetryWorker) report(p *process.Process) {
	stats := w.source.Stats()
	rss, cpu, err := selfStats(p)
	if err != nil {
		w.log.Warn("Failed to collect self stats", "error", err)
	}
	w.log.Info("telemetry",
		"sessions", stats.Sessions,
		"users", stats.Users,
		"rooms", stats.Rooms,
		"rss_bytes", rss,
		"cpu_percent", cpu)
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return memInfo.RSS, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
