package bookingwidget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/th-alves/nails-booking-service/internal/domain"
)

// Confirmation is the outcome of a successful (or degraded) submission.
type Confirmation struct {
	BookingID   string
	Date        string
	Time        string
	ClientName  string
	ClientPhone string
	Notes       string

	// HandoffURL opens WhatsApp with the prefilled pt-BR confirmation text.
	// Navigation to it is one-way; nothing comes back into the widget.
	HandoffURL string

	// Degraded is true when the backend never answered and the manual
	// hand-off option produced this confirmation anyway. The booking may or
	// may not exist server-side; the studio confirms it by hand.
	Degraded bool
}

type createBookingPayload struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

type createdBooking struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

// Submit posts the session's booking request.
//
// On success the form fields are cleared, the session's booked-dates summary
// is refreshed and the confirmation carries the WhatsApp hand-off link. Every
// failure maps to exactly one taxonomy sentinel; nothing is retried, the user
// re-initiates. With ManualHandoff enabled an unreachable backend still yields
// a confirmation, marked Degraded, instead of ErrUnreachable.
func (c *Client) Submit(ctx context.Context, session *Session) (*Confirmation, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	payload := createBookingPayload{
		Date:        session.Date.Format(domain.DateFormat),
		Time:        session.Time.String(),
		ClientName:  strings.TrimSpace(session.ClientName),
		ClientPhone: strings.TrimSpace(session.ClientPhone),
		Notes:       session.Notes,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerFault, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerFault, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.manualHandoff {
			return c.degradedConfirmation(payload), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if c.manualHandoff {
			return c.degradedConfirmation(payload), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, classify(resp.StatusCode, respBody)
	}

	var created createdBooking
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("%w: malformed booking response: %v", ErrServerFault, err)
	}

	confirmation := &Confirmation{
		BookingID:   created.ID,
		Date:        created.Date,
		Time:        created.Time,
		ClientName:  created.ClientName,
		ClientPhone: created.ClientPhone,
		Notes:       created.Notes,
		HandoffURL:  c.handoffURL(payload),
	}

	session.Reset()

	// Refresh failure keeps the previous summary; the booking succeeded
	// either way.
	_ = c.RefreshBookedDates(ctx, session)

	return confirmation, nil
}

// validateSession is the required-field gate. The backend validates
// independently; this only keeps obviously incomplete forms off the wire.
func validateSession(session *Session) error {
	switch {
	case session == nil:
		return invalidFields("sessão de agendamento vazia")
	case session.Date.IsZero():
		return invalidFields("selecione uma data")
	case session.Time.IsZero():
		return invalidFields("selecione um horário")
	case strings.TrimSpace(session.ClientName) == "":
		return invalidFields("informe seu nome")
	case strings.TrimSpace(session.ClientPhone) == "":
		return invalidFields("informe seu telefone")
	default:
		return nil
	}
}

func (c *Client) degradedConfirmation(payload createBookingPayload) *Confirmation {
	return &Confirmation{
		Date:        payload.Date,
		Time:        payload.Time,
		ClientName:  payload.ClientName,
		ClientPhone: payload.ClientPhone,
		Notes:       payload.Notes,
		HandoffURL:  c.manualHandoffURL(payload),
		Degraded:    true,
	}
}
