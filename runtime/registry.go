package runtime

import (
	"job-chat/contract"
	"job-chat/domain"
	"job-chat/errors"
	"sync"
)

var _ contract.IRegistry = (*Registry)(nil)

type Set[K comparable] map[K]struct{}

type session struct {
	userID string
	sink   contract.EventSink
	rooms  Set[domain.RoomID]
}

// Registry is the only owner of session and room membership state.
// Every session sits in its user's personal channel from Register until Unregister.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*session
	rooms    map[domain.RoomID]Set[domain.SessionID]
	users    map[string]Set[domain.SessionID]
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.SessionID]*session),
		rooms:    make(map[domain.RoomID]Set[domain.SessionID]),
		users:    make(map[string]Set[domain.SessionID]),
	}
}

// Register adds a session and subscribes it to the user's personal channel.
// It returns true when this is the first live session of the user.
// Registering the same session twice is a no-op.
func (r *Registry) Register(sessionID domain.SessionID, userID string, sink contract.EventSink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; ok {
		return false
	}
	s := &session{userID: userID, sink: sink, rooms: make(Set[domain.RoomID])}
	r.sessions[sessionID] = s

	if _, ok := r.users[userID]; !ok {
		r.users[userID] = make(Set[domain.SessionID])
	}
	r.users[userID][sessionID] = struct{}{}
	r.join(sessionID, s, domain.PersonalChannel(userID))

	return len(r.users[userID]) == 1
}

// JoinRoom subscribes a registered session to a room.
// If the room does not yet exist in the registry, it is initialized on the fly.
func (r *Registry) JoinRoom(sessionID domain.SessionID, roomID domain.RoomID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return errors.ErrSessionNotFound
	}
	r.join(sessionID, s, roomID)
	return nil
}

// LeaveRoom removes a session from a conversation room.
// The personal channel cannot be left while the session is alive.
func (r *Registry) LeaveRoom(sessionID domain.SessionID, roomID domain.RoomID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return errors.ErrSessionNotFound
	}
	if roomID == domain.PersonalChannel(s.userID) {
		return nil
	}
	r.leave(sessionID, s, roomID)
	return nil
}

// Unregister removes the session from every room it joined.
// last reports whether the owner has no session left.
func (r *Registry) Unregister(sessionID domain.SessionID) (string, bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return "", false, false
	}
	for roomID := range s.rooms {
		r.leave(sessionID, s, roomID)
	}
	delete(r.sessions, sessionID)

	last := false
	if owned, ok := r.users[s.userID]; ok {
		delete(owned, sessionID)
		if len(owned) == 0 {
			delete(r.users, s.userID)
			last = true
		}
	}
	return s.userID, last, true
}

// SinksForRoom resolves the sinks of every session joined to roomID,
// minus the excluded session. Returns nil if nobody is in the room.
func (r *Registry) SinksForRoom(roomID domain.RoomID, exclude domain.SessionID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	var sinks []contract.EventSink
	for sessionID := range members {
		if sessionID == exclude {
			continue
		}
		if s, exists := r.sessions[sessionID]; exists {
			sinks = append(sinks, s.sink)
		}
	}
	return sinks
}

// SinksExcept returns every live sink but the excluded one.
func (r *Registry) SinksExcept(exclude domain.SessionID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.EventSink, 0, len(r.sessions))
	for sessionID, s := range r.sessions {
		if sessionID != exclude {
			sinks = append(sinks, s.sink)
		}
	}
	return sinks
}

// UserInRoom reports whether any session of userID is joined to roomID.
func (r *Registry) UserInRoom(userID string, roomID domain.RoomID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for sessionID := range r.rooms[roomID] {
		if s, ok := r.sessions[sessionID]; ok && s.userID == userID {
			return true
		}
	}
	return false
}

func (r *Registry) OnlineUsers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]string, 0, len(r.users))
	for userID := range r.users {
		users = append(users, userID)
	}
	return users
}

// Owner returns the user a live session belongs to.
func (r *Registry) Owner(sessionID domain.SessionID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return "", false
	}
	return s.userID, true
}

func (r *Registry) Stats() contract.RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return contract.RegistryStats{
		Sessions: len(r.sessions),
		Users:    len(r.users),
		Rooms:    len(r.rooms),
	}
}

func (r *Registry) join(sessionID domain.SessionID, s *session, roomID domain.RoomID) {
	if _, ok := r.rooms[roomID]; !ok {
		r.rooms[roomID] = make(Set[domain.SessionID])
	}
	r.rooms[roomID][sessionID] = struct{}{}
	s.rooms[roomID] = struct{}{}
}

// leave also drops empty rooms so the map does not grow forever.
func (r *Registry) leave(sessionID domain.SessionID, s *session, roomID domain.RoomID) {
	delete(s.rooms, roomID)
	if members, ok := r.rooms[roomID]; ok {
		delete(members, sessionID)
		if len(members) == 0 {
			delete(r.rooms, roomID)
		}
	}
}
