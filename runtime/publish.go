package runtime

import (
	"context"
	"job-chat/contract"
	"job-chat/domain/event"
	"log/slog"
)

// publish hands evt to every sink and returns how many accepted it.
// Sinks never block, so a slow session cannot stall the caller.
func publish(ctx context.Context, log *slog.Logger, sinks []contract.EventSink, evt event.Event) int {
	delivered := 0
	for _, sink := range sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			log.Debug("Event dropped by sink", "kind", evt.Kind(), "error", err)
			continue
		}
		delivered++
	}
	return delivered
}
