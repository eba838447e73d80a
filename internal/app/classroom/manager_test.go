package classroom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vclassroom/internal/app/classroom"
	"vclassroom/internal/pkg/errs"
)

func TestManagerSeedsDefaultRoom(t *testing.T) {
	m := classroom.NewManager()

	room := m.GetRoom(classroom.DefaultRoomID)
	require.NotNil(t, room)
	assert.Equal(t, classroom.DefaultRoomID, room.ID)
	assert.Equal(t, classroom.DefaultRoomName, room.Name)
	assert.Equal(t, 0, room.MemberCount())
	assert.Equal(t, 800.0, room.MapConfig().Width)
	assert.Equal(t, 600.0, room.MapConfig().Height)

	assert.Equal(t, 1, m.RoomCount())
	assert.Equal(t, 0, m.SessionCount())
	assert.Equal(t, []string{classroom.DefaultRoomID}, m.RoomIDs())
}

func TestManagerGetRoom_NotFound(t *testing.T) {
	m := classroom.NewManager()

	assert.Nil(t, m.GetRoom("nonexistent"), "lookups never auto-create")
	assert.Equal(t, 1, m.RoomCount())
}

func TestManagerCreateRoom(t *testing.T) {
	m := classroom.NewManager()

	room, err := m.CreateRoom("physics-lab", "Physics Lab")
	require.Nil(t, err)
	require.NotNil(t, room)
	assert.Equal(t, "physics-lab", room.ID)
	assert.Equal(t, "Physics Lab", room.Name)
	assert.Equal(t, 2, m.RoomCount())

	assert.Same(t, room, m.GetRoom("physics-lab"))
}

func TestManagerCreateRoom_DuplicateFails(t *testing.T) {
	m := classroom.NewManager()

	_, err := m.CreateRoom(classroom.DefaultRoomID, "Impostor")
	require.NotNil(t, err)
	assert.Equal(t, errs.ErrRoomExists, err.Code)
	assert.Equal(t, 1, m.RoomCount())
}
