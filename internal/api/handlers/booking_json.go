package handlers

import (
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/internal/service/bookings/models"
)

// BookingJSON is the wire shape of a booking, shared by the read handlers.
type BookingJSON struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// FromServiceBooking converts a service-layer booking to its wire shape.
func FromServiceBooking(b *models.BookingResponse) *BookingJSON {
	return &BookingJSON{
		ID:          b.ID,
		Date:        b.Date.Format(domain.DateFormat),
		Time:        b.StartTime,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		Notes:       b.Notes,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromServiceBookingList converts a service-layer booking list.
func FromServiceBookingList(list *models.BookingListResponse) []BookingJSON {
	out := make([]BookingJSON, len(list.Bookings))
	for i := range list.Bookings {
		out[i] = *FromServiceBooking(&list.Bookings[i])
	}
	return out
}
