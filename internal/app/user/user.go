/*
Package user contains the data structures describing a classroom
participant.

Field JSON tags match the wire format consumed by existing presentation
clients.
*/
package user

// Avatar kinds. Unknown kinds coming off the wire are coerced to guest.
const (
	AvatarStudent = "student"
	AvatarTeacher = "teacher"
	AvatarGuest   = "guest"
)

// Position is a point on a room's map.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Avatar describes how a participant is rendered.
type Avatar struct {

	// Kind is one of the avatar kind constants. Serialized as "type"
	// on the wire.
	Kind string `json:"type"`

	// Color is a client-interpreted color spec.
	Color string `json:"color"`

	// Accessories is an ordered list of accessory identifiers.
	Accessories []string `json:"accessories,omitempty"`
}

// Normalize returns a copy of the avatar with an unknown kind replaced
// by guest.
func (a Avatar) Normalize() Avatar {
	switch a.Kind {
	case AvatarStudent, AvatarTeacher, AvatarGuest:
	default:
		a.Kind = AvatarGuest
	}
	return a
}

// User represents a joined participant inside a room.
type User struct {

	// ID is the unique, server-generated identifier for this user.
	// It is never reused across reconnects.
	ID string `json:"id"`

	// Name is the display name shown to other participants.
	Name string `json:"name"`

	// Avatar describes the participant's appearance.
	Avatar Avatar `json:"avatar"`

	// Position is the current, server-validated map position.
	Position Position `json:"position"`

	// RoomID references the room this user belongs to. Serialized as
	// "room" on the wire.
	RoomID string `json:"room"`
}
