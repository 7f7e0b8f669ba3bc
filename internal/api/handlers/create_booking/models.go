package create_booking

import (
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	createBooking "github.com/th-alves/nails-booking-service/internal/usecase/create_booking"
	"github.com/th-alves/nails-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Field names follow the public API contract (snake_case).
type CreateBookingRequest struct {
	Date        string `json:"date"` // "2025-10-15"
	Time        string `json:"time"` // "09:00"
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
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

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing date and time.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		Date:        date,
		StartTime:   startTime,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.StartTime.String(),
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		Notes:       resp.Notes,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
