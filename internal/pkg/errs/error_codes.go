/*
Package errs provides the custom error type and error code constants for
the classroom server.

Error codes identify specific business or system failures both in server
logs and in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body is not valid JSON.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate exceeded the configured limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Room and Content Business Logic Errors
const (
	// ErrRoomIDInvalid indicates that a provided room id is not a valid room slug.
	ErrRoomIDInvalid = 2101

	// ErrRoomExists indicates that a room with the requested id already exists.
	ErrRoomExists = 2102

	// ErrRoomNotFound indicates that the requested room does not exist.
	ErrRoomNotFound = 2103

	// ErrAlreadyJoined indicates that the session is already a member of a room.
	ErrAlreadyJoined = 2104

	// ErrMessageTooLong indicates that a chat message exceeded the maximum length.
	ErrMessageTooLong = 2201
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal server error.
	ErrUnknown = 5000
)
