package bookingwidget

import (
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/whatsapp"
)

// handoffURL builds the WhatsApp deep link for a confirmed booking.
func (c *Client) handoffURL(payload createBookingPayload) string {
	return whatsapp.Link(c.studioPhone, whatsapp.ConfirmationMessage(c.summary(payload)))
}

// manualHandoffURL builds the degraded-mode deep link. The text asks to book
// rather than announcing a booking: the backend never answered, so no
// completed booking may be claimed to the studio.
func (c *Client) manualHandoffURL(payload createBookingPayload) string {
	return whatsapp.Link(c.studioPhone, whatsapp.ManualBookingMessage(c.summary(payload)))
}

func (c *Client) summary(payload createBookingPayload) whatsapp.BookingSummary {
	date, err := time.Parse(domain.DateFormat, payload.Date)
	if err != nil {
		date = time.Time{}
	}

	return whatsapp.BookingSummary{
		Date:        date,
		Time:        payload.Time,
		ClientName:  payload.ClientName,
		ClientPhone: payload.ClientPhone,
		Notes:       payload.Notes,
	}
}
