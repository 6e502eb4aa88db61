package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"serenity/internal/app/chat"
	"serenity/internal/pkg/logx"
)

// newUpgrader builds the WebSocket upgrader with the configured origin policy.
// With no configured origins (development) every origin is accepted.
func newUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}

			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
}

// HandleChatWebSocket upgrades the request and runs the assistant conversation
// until the widget disconnects. Conversations are anonymous: the assistant
// serves signed-in and signed-out visitors the same way.
func HandleChatWebSocket(deps *AppDeps) http.HandlerFunc {
	upgrader := newUpgrader(deps.Config.AllowedOrigins)

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Warn("WebSocket upgrade failed", "error", err, "origin", r.Header.Get("Origin"))
			return
		}

		client := chat.NewClient(
			uuid.New().String(),
			conn,
			deps.ChatManager.Engine(),
			deps.Config.BotReplyDelay,
			deps.ChatManager,
		)

		deps.ChatManager.Register(client)

		go client.WritePump()

		if err := client.SendInit(); err != nil {
			logx.Warn("Failed to queue INIT frame", "error", err)
		}

		client.ReadPump()
	}
}
