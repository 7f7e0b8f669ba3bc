// Package models holds the request/response shapes of the bookings service.
package models

import (
	"fmt"
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
)

// ListBookingsRequest filters the booking list.
type ListBookingsRequest struct {
	Date   *time.Time
	Status *string
}

// ToDomainFilter converts the request into a repository filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{Date: r.Date}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// BookingResponse is one booking as returned by the service layer.
type BookingResponse struct {
	ID          string
	Date        time.Time
	StartTime   string
	ClientName  string
	ClientPhone string
	Notes       string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookingListResponse is an ordered list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse
}

// StatsResponse aggregates confirmed booking counts.
type StatsResponse struct {
	TotalBookings int64
	TodayBookings int64
	MonthBookings int64
	GeneratedAt   time.Time
}

// FromDomainBooking converts a domain booking.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		Date:        b.Date,
		StartTime:   b.StartTime.String(),
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		Notes:       b.Notes,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out}
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}
