/*
Package classroom contains the core logic of the presence server.

This file defines the Manager struct: the process-scoped registry of
rooms and live sessions. The default classroom is seeded once at
construction; further rooms are created administratively and are never
deleted.
*/
package classroom

import (
	"sync"

	"github.com/rs/zerolog"

	"vclassroom/internal/pkg/errs"
	"vclassroom/internal/pkg/logx"
)

// Default room seeded at startup.
const (
	DefaultRoomID   = "main-classroom"
	DefaultRoomName = "Fast Track Academy - Main Classroom"
)

// Manager coordinates all rooms and tracks live connection sessions.
// It is the only entry point to room lookup; rooms are never reachable
// as ambient global state.
type Manager struct {
	// rooms maps room id to Room.
	rooms map[string]*Room

	// roomsMu protects concurrent access to the rooms map.
	roomsMu sync.RWMutex

	// sessions maps session id to the live connection. A session may
	// exist without a joined user.
	sessions map[string]*Client

	// sessionsMu protects concurrent access to the sessions map.
	sessionsMu sync.RWMutex

	// structured logger with Manager context.
	logger zerolog.Logger
}

// NewManager constructs a Manager with the default classroom seeded.
func NewManager() *Manager {
	managerLogger := logx.Logger().With().Str("component", "Manager").Logger()

	m := &Manager{
		rooms:    make(map[string]*Room),
		sessions: make(map[string]*Client),
		logger:   managerLogger,
	}

	defaultRoom := NewRoom(DefaultRoomID, DefaultRoomName, DefaultClassroomMap())
	m.rooms[defaultRoom.ID] = defaultRoom

	m.logger.Info().
		Str("room_id", defaultRoom.ID).
		Str("room_name", defaultRoom.Name).
		Msg("Default classroom seeded.")

	return m
}

// GetRoom returns the room with the given id, or nil when it does not
// exist. Lookups never auto-create.
func (m *Manager) GetRoom(roomID string) *Room {
	m.roomsMu.RLock()
	defer m.roomsMu.RUnlock()

	room, ok := m.rooms[roomID]
	if !ok {
		return nil
	}
	return room
}

// CreateRoom registers a new room with the default classroom map under
// the given id. Creating an existing id fails.
func (m *Manager) CreateRoom(roomID, name string) (*Room, *errs.CustomError) {
	m.roomsMu.Lock()
	defer m.roomsMu.Unlock()

	if _, ok := m.rooms[roomID]; ok {
		m.logger.Warn().Str("room_id", roomID).Msg("Attempted to create existing room.")
		return nil, errs.NewError(errs.ErrRoomExists)
	}

	newRoom := NewRoom(roomID, name, DefaultClassroomMap())
	m.rooms[roomID] = newRoom

	m.logger.Info().Str("room_id", roomID).Str("room_name", name).Msg("New room created.")
	return newRoom, nil
}

// RoomIDs returns the ids of all rooms.
func (m *Manager) RoomIDs() []string {
	m.roomsMu.RLock()
	defer m.roomsMu.RUnlock()

	ids := make([]string, 0, len(m.rooms))
	for id := range m.rooms {
		ids = append(ids, id)
	}
	return ids
}

// RoomCount returns the number of rooms.
func (m *Manager) RoomCount() int {
	m.roomsMu.RLock()
	defer m.roomsMu.RUnlock()

	return len(m.rooms)
}

// SessionCount returns the number of live connection sessions.
func (m *Manager) SessionCount() int {
	m.sessionsMu.RLock()
	defer m.sessionsMu.RUnlock()

	return len(m.sessions)
}

// RegisterSession tracks a freshly connected client.
func (m *Manager) RegisterSession(c *Client) {
	m.sessionsMu.Lock()
	defer m.sessionsMu.Unlock()

	m.sessions[c.sessionID] = c

	m.logger.Info().
		Str("session_id", c.sessionID).
		Int("total_sessions", len(m.sessions)).
		Msg("Session registered.")
}

// removeSession forgets a disconnected client.
func (m *Manager) removeSession(c *Client) {
	m.sessionsMu.Lock()
	defer m.sessionsMu.Unlock()

	if current, ok := m.sessions[c.sessionID]; ok && current == c {
		delete(m.sessions, c.sessionID)

		m.logger.Info().
			Str("session_id", c.sessionID).
			Int("total_sessions", len(m.sessions)).
			Msg("Session removed.")
	}
}

// Shutdown closes the send channel of every live session, which
// terminates their write pumps and closes the connections.
func (m *Manager) Shutdown() {
	m.logger.Info().Msg("Shutting down Manager...")

	m.sessionsMu.Lock()

	for _, c := range m.sessions {
		c.closeSend()
	}
	m.sessions = make(map[string]*Client)

	m.sessionsMu.Unlock()

	m.logger.Info().Msg("Manager shutdown complete.")
}
