package bookingwidget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/th-alves/nails-booking-service/internal/domain"
	"github.com/th-alves/nails-booking-service/pkg/types"
)

// IsDateOfferable reports whether a date can be offered for booking at all:
// a weekday that is not strictly before today. Pure; call it before fetching
// slots so weekends and past dates never hit the network.
func IsDateOfferable(date, today time.Time) bool {
	return domain.IsDateOfferable(date, today)
}

// SlotGrid returns the full static daily grid, hourly 08:00 through 17:00.
func SlotGrid() []types.TimeString {
	return domain.SlotGrid()
}

// Availability is the slot list for one date.
type Availability struct {
	Date  time.Time
	Slots []types.TimeString

	// Verified is false when Slots is the optimistic fallback grid served
	// because live availability could not be determined. An unverified slot
	// may still be rejected as taken at submit time.
	Verified bool
}

// AvailableSlots fetches the free slots for a date.
//
// A fully booked date is an empty verified list, not an error. A backend
// rejection classified as weekend or past date returns the matching sentinel
// error so the caller can show the reason with an empty slot list. Anything
// else, including network failure and timeout, degrades to the full fallback
// grid with Verified set to false: the widget prefers letting the user try a
// slot over blocking the form on a transient failure.
func (c *Client) AvailableSlots(ctx context.Context, date time.Time) (*Availability, error) {
	endpoint := fmt.Sprintf("%s/api/available-slots?date=%s",
		c.baseURL, url.QueryEscape(date.Format(domain.DateFormat)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerFault, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fallbackGrid(date), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fallbackGrid(date), nil
	}

	if resp.StatusCode == http.StatusOK {
		var raw []string
		if err := json.Unmarshal(body, &raw); err != nil {
			return c.fallbackGrid(date), nil
		}

		slots := make([]types.TimeString, 0, len(raw))
		for _, s := range raw {
			slot, err := types.NewTimeStringFromString(s)
			if err != nil {
				return c.fallbackGrid(date), nil
			}
			slots = append(slots, slot)
		}
		return &Availability{Date: date, Slots: slots, Verified: true}, nil
	}

	classified := classify(resp.StatusCode, body)
	if errors.Is(classified, ErrWeekendRejected) || errors.Is(classified, ErrPastDateRejected) {
		return nil, classified
	}

	return c.fallbackGrid(date), nil
}

func (c *Client) fallbackGrid(date time.Time) *Availability {
	return &Availability{Date: date, Slots: SlotGrid(), Verified: false}
}
