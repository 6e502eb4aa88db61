package handler

import (
	"serenity/internal/app/chat"
	"serenity/internal/app/reservation"
	"serenity/internal/app/session"
	"serenity/internal/app/storage"
	"serenity/internal/app/user"
	"serenity/internal/configs"
)

// AppDeps bundles the application's injected dependencies for the handlers.
type AppDeps struct {
	Config         *configs.AppConfig
	Users          user.Store
	Sessions       *session.Manager
	Reservations   reservation.Store
	ChatManager    *chat.Manager
	StorageService storage.StorageService
}
