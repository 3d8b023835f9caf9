package workers

import (
	"context"
	"job-chat/contract"
	"job-chat/domain"
	"log/slog"
)

// HookPublisher is a post-persist hook that hands committed messages to a publisher
// without ever blocking the send path. Its Run loop drains the queue.
type HookPublisher struct {
	log       *slog.Logger
	publisher contract.MessagePublisher
	queue     chan domain.Message
}

func NewHookPublisher(log *slog.Logger, publisher contract.MessagePublisher, bufferSize int) *HookPublisher {
	return &HookPublisher{log: log, publisher: publisher, queue: make(chan domain.Message, bufferSize)}
}

func (h *HookPublisher) AfterPersist(_ context.Context, message domain.Message) {
	select {
	case h.queue <- message:
	default:
		h.log.Warn("Hook buffer full, message not published",
			"message_id", message.ID,
			"capacity", cap(h.queue))
	}
}

func (h *HookPublisher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case message := <-h.queue:
			if err := h.publisher.PublishMessage(ctx, message); err != nil {
				h.log.Warn("Message not published", "message_id", message.ID, "error", err)
			}
		}
	}
}
