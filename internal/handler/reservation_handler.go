package handler

import (
	"errors"
	"net/http"
	"time"

	"serenity/internal/app/reservation"
	"serenity/internal/pkg/errs"
	"serenity/internal/pkg/logx"
	"serenity/internal/pkg/randx"
	"serenity/internal/pkg/req"
	"serenity/internal/pkg/resp"
)

const inquiryDateLayout = "2006-01-02"

type InquiryInput struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	RoomType string `json:"roomType"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// mapInquiryError translates reservation validation failures to API errors.
func mapInquiryError(err error) *errs.CustomError {
	switch {
	case errors.Is(err, reservation.ErrMissingFields):
		return errs.NewError(errs.ErrReservationFieldsMissing)
	case errors.Is(err, reservation.ErrInvalidDates):
		return errs.NewError(errs.ErrReservationDatesInvalid)
	case errors.Is(err, reservation.ErrInvalidRoomType):
		return errs.NewError(errs.ErrRoomTypeInvalid)
	default:
		return errs.NewError(errs.ErrUnknown)
	}
}

// HandleCreateInquiry records a reservation inquiry from the booking dialog.
func HandleCreateInquiry(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input InquiryInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.CheckIn == "" || input.CheckOut == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrReservationFieldsMissing))
			return
		}

		checkIn, err := time.Parse(inquiryDateLayout, input.CheckIn)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrReservationDatesInvalid))
			return
		}

		checkOut, err := time.Parse(inquiryDateLayout, input.CheckOut)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrReservationDatesInvalid))
			return
		}

		inquiry := &reservation.Inquiry{
			ID:        randx.MessageID(),
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			RoomType:  input.RoomType,
			Adults:    input.Adults,
			Children:  input.Children,
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			CreatedAt: time.Now(),
		}

		if err := inquiry.Validate(time.Now()); err != nil {
			resp.RespondError(w, r, mapInquiryError(err))
			return
		}

		if err := deps.Reservations.SaveInquiry(r.Context(), inquiry); err != nil {
			logx.Error(err, "failed to save reservation inquiry", "email", inquiry.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		logx.Info("reservation inquiry received", "inquiry_id", inquiry.ID, "room_type", inquiry.RoomType)

		resp.RespondSuccess(w, r, map[string]any{
			"inquiryId": inquiry.ID,
			"message":   "Recebemos sua solicitação de reserva. Entraremos em contato em breve.",
		})
	}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// HandleContact records a message sent through the contact form.
func HandleContact(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ContactInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		msg := &reservation.ContactMessage{
			ID:        randx.MessageID(),
			Name:      input.Name,
			Email:     input.Email,
			Message:   input.Message,
			CreatedAt: time.Now(),
		}

		if err := msg.Validate(); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrContactFieldsMissing))
			return
		}

		if err := deps.Reservations.SaveContactMessage(r.Context(), msg); err != nil {
			logx.Error(err, "failed to save contact message", "email", msg.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"message": "Mensagem enviada com sucesso. Obrigado pelo contato!",
		})
	}
}
