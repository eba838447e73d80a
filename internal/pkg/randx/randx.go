/*
Package randx provides identifier generation and validation helpers.

User, session, and message identifiers are random UUIDs, which stay
unique under concurrent joins. Room ids are human-chosen slugs and are
only validated here.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	// Base62Chars is the character set used for generated name suffixes.
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the size of the Base62 character set.
	Base62Len = int64(len(Base62Chars))

	// GuestNamePrefix is the prefix for generated display names.
	GuestNamePrefix = "Guest_"

	// guestNameRandomLength is the length of the random name suffix.
	guestNameRandomLength = 6

	// RoomIDMaxLength bounds administratively chosen room slugs.
	RoomIDMaxLength = 64
)

// UserID generates a unique identifier for a newly joined user.
func UserID() string {
	return uuid.New().String()
}

// SessionID generates a unique identifier for a connection session.
func SessionID() string {
	return uuid.New().String()
}

// MessageID generates a unique identifier for a chat message.
func MessageID() string {
	return uuid.New().String()
}

// GuestName generates a fallback display name of the form Guest_XXXXXX,
// used when a join request carries an empty name.
func GuestName() (string, error) {
	result := make([]byte, guestNameRandomLength)

	for i := range guestNameRandomLength {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number for guest name: %v", err)
		}
		result[i] = Base62Chars[num.Int64()]
	}

	return GuestNamePrefix + string(result), nil
}

// IsValidRoomID reports whether id is an acceptable room slug:
// non-empty, at most RoomIDMaxLength characters, lowercase letters,
// digits, and hyphens only, with no hyphen at either end.
func IsValidRoomID(id string) bool {
	if id == "" || len(id) > RoomIDMaxLength {
		return false
	}

	if id[0] == '-' || id[len(id)-1] == '-' {
		return false
	}

	for _, char := range id {
		switch {
		case char >= 'a' && char <= 'z':
		case char >= '0' && char <= '9':
		case char == '-':
		default:
			return false
		}
	}

	return true
}
