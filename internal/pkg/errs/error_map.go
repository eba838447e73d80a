/*
Package errs provides the custom error type and error code constants for
the classroom server.

This file maps every error code to its CustomError template, which
standardizes both HTTP responses and WebSocket error events.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error
// code. A zero Status renders as HTTP 200 with a non-zero business code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Request body is not valid JSON.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Room and Content Business Logic Errors
	ErrRoomIDInvalid:  {Code: ErrRoomIDInvalid, Message: "Invalid room id.", Status: http.StatusBadRequest},
	ErrRoomExists:     {Code: ErrRoomExists, Message: "Room already exists.", Status: http.StatusConflict},
	ErrRoomNotFound:   {Code: ErrRoomNotFound, Message: "Room not found", Status: http.StatusNotFound},
	ErrAlreadyJoined:  {Code: ErrAlreadyJoined, Message: "Already in a room"},
	ErrMessageTooLong: {Code: ErrMessageTooLong, Message: "Message is too long."},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
