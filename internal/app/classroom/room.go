/*
Package classroom contains the core logic of the presence server.

This file defines the Room struct: the authoritative owner of a room's
membership, bounded message history, and static map. Every mutation is
serialized by the room's mutex, and broadcast fan-out composes its
snapshot under the same lock so receivers never observe a
partially-updated member list.
*/
package classroom

import (
	"sync"

	"github.com/rs/zerolog"

	"vclassroom/internal/app/user"
	"vclassroom/internal/pkg/logx"
	"vclassroom/internal/pkg/randx"
)

const (
	// maxRoomMessages caps a room's retained chat history. The oldest
	// message is evicted first.
	maxRoomMessages = 100

	// MaxMessageBytes caps the size of a single chat message body.
	MaxMessageBytes = 2000
)

// Room represents one shared session space. It owns its member list and
// message history exclusively; no other component mutates them.
type Room struct {
	// ID is the unique room identifier.
	ID string

	// Name is the human-readable room name.
	Name string

	// mapConfig is the room's static map. Immutable after creation.
	mapConfig MapConfig

	// mu serializes all membership, history, and position mutation.
	mu sync.RWMutex

	// members holds joined users in join order.
	members []*user.User

	// clients maps a member's user ID to its connection, for fan-out.
	clients map[string]*Client

	// messages is the bounded chat history, oldest first.
	messages []ChatMessage

	// structured logger with room context.
	logger zerolog.Logger
}

// NewRoom creates a Room with the given identity and static map.
func NewRoom(id, name string, mapConfig MapConfig) *Room {
	roomLogger := logx.Logger().With().
		Str("room_id", id).
		Logger()

	return &Room{
		ID:        id,
		Name:      name,
		mapConfig: mapConfig,
		clients:   make(map[string]*Client),
		logger:    roomLogger,
	}
}

// MapConfig returns the room's static map.
func (r *Room) MapConfig() MapConfig {
	return r.mapConfig
}

// MemberCount returns the current number of joined members.
func (r *Room) MemberCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.members)
}

// Members returns a copy of the member list in join order.
func (r *Room) Members() []user.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.membersLocked()
}

// Join creates a new user for the given connection, places it at a
// spawn position, registers it as a member, and emits the join
// broadcasts: the full room snapshot to the joiner, the new user to the
// rest of the room, and the updated member list to everyone.
func (r *Room) Join(c *Client, name string, avatar user.Avatar) *user.User {
	u := &user.User{
		ID:     randx.UserID(),
		Name:   name,
		Avatar: avatar.Normalize(),
		RoomID: r.ID,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u.Position = PickSpawn(r.mapConfig)

	r.members = append(r.members, u)
	r.clients[u.ID] = c

	r.logger.Info().
		Str("user_id", u.ID).
		Str("user_name", u.Name).
		Int("total_members", len(r.members)).
		Msg("User joined room.")

	snapshot := RoomSnapshot{
		ID:        r.ID,
		Name:      r.Name,
		Users:     r.membersLocked(),
		Messages:  append([]ChatMessage(nil), r.messages...),
		MapConfig: r.mapConfig,
	}

	r.sendToLocked(u.ID, EventRoomJoined, snapshot)
	r.broadcastLocked(EventUserJoined, UserJoinedPayload{User: *u}, u.ID)
	r.broadcastLocked(EventUserListUpdate, UserListUpdatePayload{Users: r.membersLocked()}, "")

	return u
}

// Leave removes the user from the room and emits the departure
// broadcasts: the departed user id to the rest of the room and the
// updated member list to everyone. It is a no-op for unknown users and
// for stale connections that were already replaced.
func (r *Room) Leave(c *Client, userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.clients[userID]
	if !ok || current != c {
		return false
	}

	delete(r.clients, userID)
	for i, m := range r.members {
		if m.ID == userID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}

	r.logger.Info().
		Str("user_id", userID).
		Int("total_members", len(r.members)).
		Msg("User left room.")

	r.broadcastLocked(EventUserLeft, UserLeftPayload{UserID: userID}, "")
	r.broadcastLocked(EventUserListUpdate, UserListUpdatePayload{Users: r.membersLocked()}, "")

	return true
}

// Move validates the requested position against the room's map and, if
// valid, updates the user's position and notifies the rest of the room.
// Invalid positions and unknown users are dropped silently: stale moves
// are an expected race in a live position stream, not an error.
func (r *Room) Move(userID string, pos user.Position) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.memberLocked(userID)
	if u == nil {
		return
	}

	if !IsValidPosition(pos.X, pos.Y, r.mapConfig) {
		return
	}

	u.Position = pos

	r.broadcastLocked(EventUserMoved, UserMovedPayload{UserID: userID, Position: pos}, userID)
}

// SendChat appends a chat message authored by the given user to the
// room history, evicting the oldest entry beyond the cap, and
// broadcasts it to the whole room including the sender. Unknown users
// are dropped silently.
func (r *Room) SendChat(userID, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.memberLocked(userID)
	if u == nil {
		return
	}

	msg := NewChatMessage(u, body)

	r.messages = append(r.messages, msg)
	if len(r.messages) > maxRoomMessages {
		r.messages = r.messages[len(r.messages)-maxRoomMessages:]
	}

	r.broadcastLocked(EventChatMessage, msg, "")
}

// UpdateAvatar replaces the user's avatar and broadcasts the updated
// member list to the whole room. Unknown users are dropped silently.
func (r *Room) UpdateAvatar(userID string, avatar user.Avatar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := r.memberLocked(userID)
	if u == nil {
		return
	}

	u.Avatar = avatar.Normalize()

	r.broadcastLocked(EventUserListUpdate, UserListUpdatePayload{Users: r.membersLocked()}, "")
}

// memberLocked returns the member with the given id, or nil. Caller
// holds r.mu.
func (r *Room) memberLocked(userID string) *user.User {
	for _, m := range r.members {
		if m.ID == userID {
			return m
		}
	}
	return nil
}

// membersLocked returns a value copy of the member list in join order.
// Caller holds r.mu.
func (r *Room) membersLocked() []user.User {
	out := make([]user.User, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, *m)
	}
	return out
}

// sendToLocked queues an event frame to a single member's connection.
// Caller holds r.mu.
func (r *Room) sendToLocked(userID string, eventType EventType, payload any) {
	c, ok := r.clients[userID]
	if !ok {
		return
	}

	frame, err := NewEvent(eventType, payload)
	if err != nil {
		r.logger.Error().
			Str("event_type", string(eventType)).
			Err(err).
			Msg("Error marshaling event for unicast.")
		return
	}

	c.queueFrame(frame)
}

// broadcastLocked queues an event frame to every member connection,
// optionally excluding one user id. Sends are non-blocking; a client
// whose send queue is full simply misses the frame. Caller holds r.mu.
func (r *Room) broadcastLocked(eventType EventType, payload any, excludeUserID string) {
	frame, err := NewEvent(eventType, payload)
	if err != nil {
		r.logger.Error().
			Str("event_type", string(eventType)).
			Err(err).
			Msg("Error marshaling event for broadcast.")
		return
	}

	for userID, c := range r.clients {
		if userID == excludeUserID {
			continue
		}
		c.queueFrame(frame)
	}
}
