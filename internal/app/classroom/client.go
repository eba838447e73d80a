/*
Package classroom contains the core logic of the presence server.

This file defines the Client struct, representing one active WebSocket
connection. A client is a session: it exists from connect to
disconnect, and is bound to a user identity only while joined to a
room. The client owns the read and write pumps and dispatches inbound
protocol events.
*/
package classroom

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"vclassroom/internal/app/user"
	"vclassroom/internal/pkg/errs"
	"vclassroom/internal/pkg/logx"
	"vclassroom/internal/pkg/randx"
)

const (
	// timeout for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time the server waits for a Pong from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends Ping messages.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of an inbound frame.
	maxMessageSize = 8192

	// outbound queue capacity per connection.
	sendQueueSize = 256
)

// Client represents an active WebSocket connection and, once joined,
// its user identity. The room and userID fields are written only from
// the read pump goroutine.
type Client struct {
	// manager is the process-wide room and session registry.
	manager *Manager

	// conn is the underlying WebSocket connection.
	conn *websocket.Conn

	// sessionID uniquely identifies this connection.
	sessionID string

	// room is the room this session has joined, nil before join and
	// after leave.
	room *Room

	// userID is the identity bound to this session, empty before join
	// and after leave.
	userID string

	// send buffers frames waiting to be written to the connection.
	send chan []byte

	// sendMu guards sendClosed and the closing of send, so that frames
	// queued from room fan-out never race a shutdown-time close.
	sendMu sync.Mutex

	// sendClosed records that send has been closed.
	sendClosed bool

	// structured logger with session context.
	logger zerolog.Logger
}

// NewClient constructs a Client for a freshly upgraded connection. No
// user identity is associated until the connection joins a room.
func NewClient(manager *Manager, conn *websocket.Conn) *Client {
	sessionID := randx.SessionID()

	clientLogger := logx.Logger().With().
		Str("session_id", sessionID).
		Logger()

	return &Client{
		manager:   manager,
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan []byte, sendQueueSize),
		logger:    clientLogger,
	}
}

// SessionID returns the connection's unique session identifier.
func (c *Client) SessionID() string {
	return c.sessionID
}

// ReadPump reads frames from the WebSocket connection until it closes,
// handling heartbeats and dispatching protocol events. It performs full
// session cleanup on exit, so a dead connection surfaces to the rest of
// the room as a normal departure.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, frameBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading message (client close/going away)")
			}
			break
		}

		c.processInboundFrame(frameBytes)
	}
}

// cleanupOnDisconnect leaves the current room, deregisters the session,
// and closes the connection.
func (c *Client) cleanupOnDisconnect() {
	c.logger.Info().Msg("Session cleanup starting.")

	c.leaveCurrentRoom()

	c.manager.removeSession(c)

	if err := c.conn.Close(); err != nil {
		c.logger.Error().Err(err).Msg("Connection close error")
	}
}

// leaveCurrentRoom removes the session's user from its room, if any,
// and clears the session-to-user binding.
func (c *Client) leaveCurrentRoom() {
	if c.room == nil {
		return
	}

	c.room.Leave(c, c.userID)
	c.room = nil
	c.userID = ""
}

// processInboundFrame parses one inbound envelope and dispatches it.
// Malformed frames and unknown event types are logged and dropped; they
// never terminate the connection or reach other members.
func (c *Client) processInboundFrame(frameBytes []byte) {
	var envelope Envelope

	if err := json.Unmarshal(frameBytes, &envelope); err != nil {
		c.logger.Warn().Err(err).
			Bytes("frame_bytes", frameBytes).
			Msg("Client sent invalid JSON")
		return
	}

	switch envelope.Type {
	case EventJoinRoom:
		c.handleJoinRoom(envelope.Payload)

	case EventLeaveRoom:
		c.handleLeaveRoom()

	case EventMove:
		c.handleMove(envelope.Payload)

	case EventSendMessage:
		c.handleSendMessage(envelope.Payload)

	case EventUpdateAvatar:
		c.handleUpdateAvatar(envelope.Payload)

	default:
		c.logger.Warn().Str("event_type", string(envelope.Type)).Msg("Client sent unsupported event type")
	}
}

// handleJoinRoom binds this session to a room. An unknown room id is
// the one failure reported back to the requester; a session that is
// already joined is rejected without state change.
func (c *Client) handleJoinRoom(payloadBytes json.RawMessage) {
	var payload JoinRoomPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid joinRoom payload")
		return
	}

	if c.room != nil {
		c.logger.Warn().
			Str("room_id", payload.RoomID).
			Str("current_room_id", c.room.ID).
			Msg("Join rejected: session already in a room.")
		c.SendErrorEvent(errs.NewError(errs.ErrAlreadyJoined).Message)
		return
	}

	room := c.manager.GetRoom(payload.RoomID)
	if room == nil {
		c.logger.Info().Str("room_id", payload.RoomID).Msg("Join rejected: room not found.")
		c.SendErrorEvent(errs.NewError(errs.ErrRoomNotFound).Message)
		return
	}

	name := strings.TrimSpace(payload.User.Name)
	if name == "" {
		generated, err := randx.GuestName()
		if err != nil {
			c.logger.Error().Err(err).Msg("Failed to generate guest name, using static fallback.")
			generated = "Guest"
		}
		name = generated
	}

	u := room.Join(c, name, payload.User.Avatar)

	c.room = room
	c.userID = u.ID

	c.logger = c.logger.With().
		Str("user_id", u.ID).
		Str("room_id", room.ID).
		Logger()
}

// handleLeaveRoom processes an explicit leave request. The connection
// stays open and may join again.
func (c *Client) handleLeaveRoom() {
	c.leaveCurrentRoom()
}

// handleMove forwards a position update to the room. Before a join this
// is a no-op.
func (c *Client) handleMove(payloadBytes json.RawMessage) {
	var pos user.Position
	if err := json.Unmarshal(payloadBytes, &pos); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid move payload")
		return
	}

	if c.room == nil {
		return
	}

	c.room.Move(c.userID, pos)
}

// handleSendMessage forwards a chat message to the room. Overlong
// bodies are rejected back to the sender and never stored.
func (c *Client) handleSendMessage(payloadBytes json.RawMessage) {
	var payload SendMessagePayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid sendMessage payload")
		return
	}

	if c.room == nil {
		return
	}

	if len(payload.Message) > MaxMessageBytes {
		c.SendErrorEvent(errs.NewError(errs.ErrMessageTooLong).Message)
		return
	}

	c.room.SendChat(c.userID, payload.Message)
}

// handleUpdateAvatar forwards an avatar replacement to the room. Before
// a join this is a no-op.
func (c *Client) handleUpdateAvatar(payloadBytes json.RawMessage) {
	var payload UpdateAvatarPayload
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid updateAvatar payload")
		return
	}

	if c.room == nil {
		return
	}

	c.room.UpdateAvatar(c.userID, payload.Avatar)
}

// SendErrorEvent queues an error event to this connection only.
func (c *Client) SendErrorEvent(message string) {
	frame, err := NewEvent(EventError, ErrorPayload{Message: message})
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build error event")
		return
	}

	c.queueFrame(frame)
}

// queueFrame enqueues an outbound frame without blocking. A full queue
// drops the frame: live state is re-sent continuously, so a slow
// consumer misses frames instead of stalling the room. Frames queued
// after closeSend are dropped.
func (c *Client) queueFrame(frame []byte) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.sendClosed {
		return
	}

	select {
	case c.send <- frame:
	default:
		c.logger.Warn().Int("queue_len", len(c.send)).Msg("Client send queue full, dropping frame")
	}
}

// closeSend closes the send channel exactly once, which terminates the
// write pump after it drains any queued frames. Safe to call more than
// once and concurrently with queueFrame.
func (c *Client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.sendClosed {
		return
	}

	c.sendClosed = true
	close(c.send)
}

// WritePump writes queued frames to the WebSocket connection and keeps
// the heartbeat alive. It terminates when the send channel closes or a
// write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Connection close error in WritePump")
		}
	}()

	for {
		select {
		case frame, ok := <-c.send:
			if !c.writeQueuedFrame(frame, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePingMessage() {
				return
			}
		}
	}
}

// writeQueuedFrame writes one frame pulled from the send channel.
// Returns false when the pump should terminate.
func (c *Client) writeQueuedFrame(frame []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Error().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		c.logger.Error().Err(err).Msg("Error writing frame")
		return false
	}

	return true
}

// writePingMessage sends a heartbeat ping. Returns false when the pump
// should terminate.
func (c *Client) writePingMessage() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Error().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}
