package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vclassroom/internal/app/classroom"
)

// dialWS connects a test WebSocket client to the server.
func dialWS(t *testing.T, serverURL string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

// readEvent reads frames until one of the wanted type arrives, skipping
// interleaved broadcasts.
func readEvent(t *testing.T, conn *websocket.Conn, wanted classroom.EventType) classroom.Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))

	for {
		_, frame, err := conn.ReadMessage()
		require.NoError(t, err, "expected a %s event", wanted)

		var envelope classroom.Envelope
		require.NoError(t, json.Unmarshal(frame, &envelope))

		if envelope.Type == wanted {
			return envelope
		}
	}
}

func sendEvent(t *testing.T, conn *websocket.Conn, frame string) {
	t.Helper()
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
}

func TestWebSocketJoinAndChat(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	conn1 := dialWS(t, srv.URL)
	sendEvent(t, conn1, `{"type":"joinRoom","payload":{"roomId":"main-classroom","user":{"name":"Ben","avatar":{"type":"teacher","color":"#00f"}}}}`)

	joined := readEvent(t, conn1, classroom.EventRoomJoined)
	var snapshot1 classroom.RoomSnapshot
	require.NoError(t, json.Unmarshal(joined.Payload, &snapshot1))
	require.Len(t, snapshot1.Users, 1)
	assert.Equal(t, "Ben", snapshot1.Users[0].Name)

	conn2 := dialWS(t, srv.URL)
	sendEvent(t, conn2, `{"type":"joinRoom","payload":{"roomId":"main-classroom","user":{"name":"Ava","avatar":{"type":"student","color":"#f00"}}}}`)

	joined = readEvent(t, conn2, classroom.EventRoomJoined)
	var snapshot2 classroom.RoomSnapshot
	require.NoError(t, json.Unmarshal(joined.Payload, &snapshot2))
	require.Len(t, snapshot2.Users, 2, "joiner's snapshot includes both members")

	// The first member sees Ava arrive.
	userJoined := readEvent(t, conn1, classroom.EventUserJoined)
	var joinedPayload classroom.UserJoinedPayload
	require.NoError(t, json.Unmarshal(userJoined.Payload, &joinedPayload))
	assert.Equal(t, "Ava", joinedPayload.User.Name)

	// Chat reaches both members with the same message id.
	sendEvent(t, conn1, `{"type":"sendMessage","payload":{"message":"hi"}}`)

	chat1 := readEvent(t, conn1, classroom.EventChatMessage)
	chat2 := readEvent(t, conn2, classroom.EventChatMessage)

	var msg1, msg2 classroom.ChatMessage
	require.NoError(t, json.Unmarshal(chat1.Payload, &msg1))
	require.NoError(t, json.Unmarshal(chat2.Payload, &msg2))

	assert.Equal(t, "hi", msg1.Body)
	assert.Equal(t, msg1.ID, msg2.ID)
}

func TestWebSocketJoinUnknownRoom(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	conn := dialWS(t, srv.URL)
	sendEvent(t, conn, `{"type":"joinRoom","payload":{"roomId":"nonexistent","user":{"name":"Ava","avatar":{"type":"student","color":"#f00"}}}}`)

	errEvent := readEvent(t, conn, classroom.EventError)

	var payload classroom.ErrorPayload
	require.NoError(t, json.Unmarshal(errEvent.Payload, &payload))
	assert.Equal(t, "Room not found", payload.Message)
}

func TestWebSocketDisconnectBroadcastsDeparture(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	conn1 := dialWS(t, srv.URL)
	sendEvent(t, conn1, `{"type":"joinRoom","payload":{"roomId":"main-classroom","user":{"name":"stayer","avatar":{"type":"student","color":"#0f0"}}}}`)
	readEvent(t, conn1, classroom.EventRoomJoined)

	conn2 := dialWS(t, srv.URL)
	sendEvent(t, conn2, `{"type":"joinRoom","payload":{"roomId":"main-classroom","user":{"name":"leaver","avatar":{"type":"student","color":"#00f"}}}}`)
	joined := readEvent(t, conn2, classroom.EventRoomJoined)

	var snapshot classroom.RoomSnapshot
	require.NoError(t, json.Unmarshal(joined.Payload, &snapshot))
	require.Len(t, snapshot.Users, 2)
	leaverID := snapshot.Users[1].ID

	require.NoError(t, conn2.Close())

	userLeft := readEvent(t, conn1, classroom.EventUserLeft)
	var leftPayload classroom.UserLeftPayload
	require.NoError(t, json.Unmarshal(userLeft.Payload, &leftPayload))
	assert.Equal(t, leaverID, leftPayload.UserID)

	listUpdate := readEvent(t, conn1, classroom.EventUserListUpdate)
	var listPayload classroom.UserListUpdatePayload
	require.NoError(t, json.Unmarshal(listUpdate.Payload, &listPayload))
	require.Len(t, listPayload.Users, 1)
	assert.NotEqual(t, leaverID, listPayload.Users[0].ID)
}
