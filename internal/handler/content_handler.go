package handler

import (
	"net/http"

	"serenity/internal/app/content"
	"serenity/internal/pkg/resp"
)

// HandleListRooms serves the room catalog for the accommodations section.
func HandleListRooms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, content.Rooms())
	}
}

// HandleListServices serves the hotel services list.
func HandleListServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, content.Services())
	}
}

// HandleListTestimonials serves the guest reviews carousel content.
func HandleListTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, content.Testimonials())
	}
}
