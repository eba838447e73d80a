package randx_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vclassroom/internal/pkg/randx"
)

func TestUserID(t *testing.T) {
	seen := make(map[string]struct{})

	for range 100 {
		id := randx.UserID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)

		_, dup := seen[id]
		assert.False(t, dup, "ids must be unique")
		seen[id] = struct{}{}
	}
}

func TestGuestName(t *testing.T) {
	name, err := randx.GuestName()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, randx.GuestNamePrefix))
	assert.Len(t, name, len(randx.GuestNamePrefix)+6)

	for _, char := range name[len(randx.GuestNamePrefix):] {
		assert.True(t, strings.ContainsRune(randx.Base62Chars, char))
	}
}

func TestIsValidRoomID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"default room slug", "main-classroom", true},
		{"single letter", "a", true},
		{"digits and hyphens", "room-101", true},
		{"empty", "", false},
		{"uppercase", "Main-Classroom", false},
		{"spaces", "main classroom", false},
		{"leading hyphen", "-room", false},
		{"trailing hyphen", "room-", false},
		{"underscore", "main_classroom", false},
		{"too long", strings.Repeat("a", randx.RoomIDMaxLength+1), false},
		{"max length", strings.Repeat("a", randx.RoomIDMaxLength), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, randx.IsValidRoomID(tt.id))
		})
	}
}
