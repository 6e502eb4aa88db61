package reservation

import (
	"context"
	"testing"
	"time"
)

var clock = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func validInquiry() *Inquiry {
	return &Inquiry{
		ID:       "inq-1",
		CheckIn:  time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
		RoomType: "deluxe",
		Adults:   2,
		Children: 1,
		Name:     "Ana Souza",
		Email:    "ana@example.com",
		Phone:    "+55 11 91234-5678",
	}
}

func TestInquiryValidateAccepts(t *testing.T) {
	if err := validInquiry().Validate(clock); err != nil {
		t.Fatalf("valid inquiry rejected: %v", err)
	}
}

func TestInquiryValidateCheckInLaterToday(t *testing.T) {
	inq := validInquiry()
	// Midnight of "today" is before the 15:30 clock but still the same day.
	inq.CheckIn = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	inq.CheckOut = time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	if err := inq.Validate(clock); err != nil {
		t.Fatalf("same-day check-in rejected: %v", err)
	}
}

func TestInquiryValidateSameDayAcrossZones(t *testing.T) {
	// Dates arrive as UTC midnight; the server clock may sit in another zone.
	saoPaulo := time.FixedZone("-03", -3*60*60)
	sydney := time.FixedZone("+10", 10*60*60)

	tests := []struct {
		name    string
		now     time.Time
		checkIn time.Time
		wantErr error
	}{
		{
			"same day, server west of UTC",
			time.Date(2026, time.March, 10, 12, 0, 0, 0, saoPaulo),
			time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			nil,
		},
		{
			"same day, server east of UTC",
			time.Date(2026, time.March, 10, 12, 0, 0, 0, sydney),
			time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			nil,
		},
		{
			"yesterday, server west of UTC",
			time.Date(2026, time.March, 10, 12, 0, 0, 0, saoPaulo),
			time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
			ErrInvalidDates,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inq := validInquiry()
			inq.CheckIn = tc.checkIn
			inq.CheckOut = tc.checkIn.AddDate(0, 0, 2)
			if err := inq.Validate(tc.now); err != tc.wantErr {
				t.Errorf("Validate = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestInquiryValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Inquiry)
		want   error
	}{
		{"empty name", func(i *Inquiry) { i.Name = "" }, ErrMissingFields},
		{"empty email", func(i *Inquiry) { i.Email = "" }, ErrMissingFields},
		{"empty phone", func(i *Inquiry) { i.Phone = "" }, ErrMissingFields},
		{"zero adults", func(i *Inquiry) { i.Adults = 0 }, ErrMissingFields},
		{"unknown room type", func(i *Inquiry) { i.RoomType = "presidential" }, ErrInvalidRoomType},
		{"check-in in the past", func(i *Inquiry) {
			i.CheckIn = time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
		}, ErrInvalidDates},
		{"check-out equals check-in", func(i *Inquiry) {
			i.CheckOut = i.CheckIn
		}, ErrInvalidDates},
		{"check-out before check-in", func(i *Inquiry) {
			i.CheckOut = i.CheckIn.AddDate(0, 0, -1)
		}, ErrInvalidDates},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inq := validInquiry()
			tc.mutate(inq)
			if err := inq.Validate(clock); err != tc.want {
				t.Errorf("Validate = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestContactMessageValidate(t *testing.T) {
	msg := &ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "Olá!"}
	if err := msg.Validate(); err != nil {
		t.Fatalf("valid message rejected: %v", err)
	}

	msg.Message = ""
	if err := msg.Validate(); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestMemoryStoreKeepsSubmissions(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.SaveInquiry(ctx, validInquiry()); err != nil {
		t.Fatalf("SaveInquiry: %v", err)
	}
	if err := s.SaveContactMessage(ctx, &ContactMessage{
		ID: "msg-1", Name: "Ana", Email: "ana@example.com", Message: "Olá!",
	}); err != nil {
		t.Fatalf("SaveContactMessage: %v", err)
	}

	if got := len(s.Inquiries()); got != 1 {
		t.Errorf("expected 1 stored inquiry, got %d", got)
	}
	if got := len(s.ContactMessages()); got != 1 {
		t.Errorf("expected 1 stored contact message, got %d", got)
	}
}
