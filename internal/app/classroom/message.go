/*
Package classroom contains the core logic of the presence server.

This file defines the wire protocol: the JSON event envelope exchanged
over WebSocket connections, the event type constants, the payload
shapes, and the chat message model. Payload field names match the
format existing presentation clients consume.
*/
package classroom

import (
	"encoding/json"
	"strings"
	"time"

	"vclassroom/internal/app/user"
	"vclassroom/internal/pkg/randx"
)

// EventType identifies an inbound or outbound protocol event.
type EventType string

// Inbound event types (client to server).
const (
	EventJoinRoom     EventType = "joinRoom"
	EventLeaveRoom    EventType = "leaveRoom"
	EventMove         EventType = "move"
	EventSendMessage  EventType = "sendMessage"
	EventUpdateAvatar EventType = "updateAvatar"
)

// Outbound event types (server to client).
const (
	EventRoomJoined     EventType = "roomJoined"
	EventUserJoined     EventType = "userJoined"
	EventUserLeft       EventType = "userLeft"
	EventUserMoved      EventType = "userMoved"
	EventUserListUpdate EventType = "userListUpdate"
	EventChatMessage    EventType = "chatMessage"
	EventError          EventType = "error"
)

// Envelope is the frame every WebSocket message travels in, both
// directions.
type Envelope struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ChatMessage is one entry in a room's bounded message history.
// Immutable once created.
type ChatMessage struct {
	ID         string `json:"id"`
	AuthorID   string `json:"userId"`
	AuthorName string `json:"userName"`
	Body       string `json:"message"`
	Timestamp  int64  `json:"timestamp"`
	RoomID     string `json:"room"`
}

// NewChatMessage builds a chat message authored by u, with a fresh id
// and the current wall clock in milliseconds. The body is
// whitespace-trimmed.
func NewChatMessage(u *user.User, body string) ChatMessage {
	return ChatMessage{
		ID:         randx.MessageID(),
		AuthorID:   u.ID,
		AuthorName: u.Name,
		Body:       strings.TrimSpace(body),
		Timestamp:  time.Now().UnixMilli(),
		RoomID:     u.RoomID,
	}
}

// JoinRoomPayload is the inbound joinRoom payload. Position and room
// fields a client may send inside User are ignored: the server assigns
// both.
type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
	User   struct {
		Name   string      `json:"name"`
		Avatar user.Avatar `json:"avatar"`
	} `json:"user"`
}

// SendMessagePayload is the inbound sendMessage payload.
type SendMessagePayload struct {
	Message string `json:"message"`
}

// UpdateAvatarPayload is the inbound updateAvatar payload.
type UpdateAvatarPayload struct {
	Avatar user.Avatar `json:"avatar"`
}

// RoomSnapshot is the roomJoined payload: the full room state sent to a
// joining connection.
type RoomSnapshot struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Users     []user.User   `json:"users"`
	Messages  []ChatMessage `json:"messages"`
	MapConfig MapConfig     `json:"mapConfig"`
}

// UserJoinedPayload is the userJoined payload sent to the rest of the
// room.
type UserJoinedPayload struct {
	User user.User `json:"user"`
}

// UserLeftPayload is the userLeft payload sent to the rest of the room.
type UserLeftPayload struct {
	UserID string `json:"userId"`
}

// UserMovedPayload is the userMoved payload sent to the rest of the
// room.
type UserMovedPayload struct {
	UserID   string        `json:"userId"`
	Position user.Position `json:"position"`
}

// UserListUpdatePayload is the userListUpdate payload sent to the whole
// room on any membership or avatar change.
type UserListUpdatePayload struct {
	Users []user.User `json:"users"`
}

// ErrorPayload is the error payload sent to a single requester.
type ErrorPayload struct {
	Message string `json:"message"`
}

// NewEvent marshals payload into a ready-to-send envelope frame.
func NewEvent(eventType EventType, payload any) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Envelope{
		Type:    eventType,
		Payload: payloadBytes,
	})
}
