package runtime

import (
	"context"
	"job-chat/domain/event"
	"sync"
)

// recordingSink keeps every consumed event. The name keeps two sinks distinguishable
// for require.Contains, which compares values deeply.
type recordingSink struct {
	name   string
	mu     sync.Mutex
	events []event.Event
}

func newRecordingSink(name string) *recordingSink {
	return &recordingSink{name: name}
}

func (s *recordingSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) OfKind(kind event.Kind) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []event.Event
	for _, e := range s.events {
		if e.Kind() == kind {
			res = append(res, e)
		}
	}
	return res
}

func (s *recordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}
