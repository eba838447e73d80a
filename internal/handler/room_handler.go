/*
Package handler provides the HTTP handlers and routing setup for the
classroom server.

This file contains the room API: a read-only room info endpoint and
administrative room creation.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vclassroom/internal/app/classroom"
	"vclassroom/internal/pkg/errs"
	"vclassroom/internal/pkg/randx"
	"vclassroom/internal/pkg/req"
	"vclassroom/internal/pkg/resp"
)

// RoomInfo is the public, non-authoritative view of a room.
type RoomInfo struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	UserCount int                 `json:"userCount"`
	MapConfig classroom.MapConfig `json:"mapConfig"`
}

// HandleGetRoomInfo returns the public info for one room, 404 when the
// room does not exist.
func HandleGetRoomInfo(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomID := chi.URLParam(r, "roomID")

		room := deps.Manager.GetRoom(roomID)
		if room == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrRoomNotFound))
			return
		}

		resp.RespondSuccess(w, r, RoomInfo{
			ID:        room.ID,
			Name:      room.Name,
			UserCount: room.MemberCount(),
			MapConfig: room.MapConfig(),
		})
	}
}

type CreateRoomInput struct {
	// ID is the room slug clients will join with.
	ID string `json:"id"`
	// Name is the human-readable room name.
	Name string `json:"name"`
}

// HandleCreateRoom creates a room administratively. New rooms get the
// default classroom map; rooms are never deleted.
func HandleCreateRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateRoomInput

		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !randx.IsValidRoomID(input.ID) {
			resp.RespondError(w, r, errs.NewError(errs.ErrRoomIDInvalid))
			return
		}

		name := input.Name
		if name == "" {
			name = input.ID
		}

		room, createErr := deps.Manager.CreateRoom(input.ID, name)
		if createErr != nil {
			resp.RespondError(w, r, createErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"id":   room.ID,
			"name": room.Name,
		})
	}
}
