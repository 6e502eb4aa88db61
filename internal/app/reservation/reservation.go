/*
Package reservation handles booking inquiries and contact messages sent from
the site's forms.

Submissions are validated and persisted; no payment or availability engine
sits behind them. The reception team follows up on stored inquiries by hand.
*/
package reservation

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMissingFields reports an inquiry or contact message with an empty
	// required field.
	ErrMissingFields = errors.New("required field is empty")

	// ErrInvalidDates reports a check-in in the past or a check-out that is
	// not strictly after the check-in.
	ErrInvalidDates = errors.New("invalid check-in/check-out dates")

	// ErrInvalidRoomType reports an unknown room category.
	ErrInvalidRoomType = errors.New("unknown room type")
)

// roomTypes enumerates the bookable categories offered on the site.
var roomTypes = map[string]struct{}{
	"standard":        {},
	"deluxe":          {},
	"suite-executiva": {},
}

// Inquiry is one reservation request from the booking dialog.
type Inquiry struct {
	ID        string    `json:"id"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	RoomType  string    `json:"roomType"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the booking rules. now anchors the "today or later" check
// so tests can pin the clock.
func (i *Inquiry) Validate(now time.Time) error {
	if i.Name == "" || i.Email == "" || i.Phone == "" || i.RoomType == "" ||
		i.CheckIn.IsZero() || i.CheckOut.IsZero() {
		return ErrMissingFields
	}

	if _, ok := roomTypes[i.RoomType]; !ok {
		return ErrInvalidRoomType
	}

	if i.Adults < 1 {
		return ErrMissingFields
	}

	// Compare calendar days: a check-in later today is still valid. Today is
	// anchored in the check-in's own zone so a date parsed at UTC midnight is
	// not pushed into yesterday on servers west of UTC.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, i.CheckIn.Location())
	if i.CheckIn.Before(today) {
		return ErrInvalidDates
	}

	if !i.CheckOut.After(i.CheckIn) {
		return ErrInvalidDates
	}

	return nil
}

// ContactMessage is one submission from the contact section.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks that no required field is empty.
func (c *ContactMessage) Validate() error {
	if c.Name == "" || c.Email == "" || c.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// Store is the storage port for inquiries and contact messages.
type Store interface {
	SaveInquiry(ctx context.Context, inq *Inquiry) error
	SaveContactMessage(ctx context.Context, msg *ContactMessage) error
}
