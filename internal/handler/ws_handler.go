/*
Package handler provides the HTTP handlers and routing setup for the
classroom server.

This file contains the WebSocket upgrade handler. A connection becomes
a session immediately; joining a room happens later over the socket
itself.
*/
package handler

import (
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"vclassroom/internal/app/classroom"
	"vclassroom/internal/pkg/errs"
	"vclassroom/internal/pkg/limiter"
	"vclassroom/internal/pkg/logx"
	"vclassroom/internal/pkg/resp"
)

// HandleWebSocket creates the HandlerFunc that upgrades connections and
// starts the client pumps.
func HandleWebSocket(upgrader websocket.Upgrader, rateLimiter *limiter.IPRateLimiter, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if ip == "" {
			ip = "unknown_ip"
		}

		if !rateLimiter.GetLimiter(ip).Allow() {
			logx.Warn("WebSocket connection rejected: Rate limit exceeded.", "ip", ip)
			rateLimitErr := errs.NewError(errs.ErrRateLimitExceeded)
			resp.RespondError(w, r, rateLimitErr)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket")
			return
		}

		client := classroom.NewClient(deps.Manager, conn)

		deps.Manager.RegisterSession(client)

		logx.Info("WebSocket connection established", "session_id", client.SessionID())

		go client.WritePump()

		client.ReadPump()
	}
}
