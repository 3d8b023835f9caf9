package runtime

import (
	"job-chat/domain"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultStripes = 256

// Sequencer serializes work per room: deliveries per conversation,
// presence transitions per personal channel.
// Rooms hashing to different stripes never wait on each other.
type Sequencer struct {
	stripes []sync.Mutex
}

func NewSequencer(stripes int) *Sequencer {
	if stripes <= 0 {
		stripes = defaultStripes
	}
	return &Sequencer{stripes: make([]sync.Mutex, stripes)}
}

// Do runs fn while holding the stripe of roomID.
// Persist and route of one message happen inside the same Do call,
// so publish order within a room follows commit order.
func (s *Sequencer) Do(roomID domain.RoomID, fn func() error) error {
	m := &s.stripes[xxhash.Sum64String(string(roomID))%uint64(len(s.stripes))]
	m.Lock()
	defer m.Unlock()
	return fn()
}
