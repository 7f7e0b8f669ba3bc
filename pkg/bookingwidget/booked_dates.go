package bookingwidget

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type bookingListItem struct {
	Date string `json:"date"`
}

// BookedDates returns the set of dates holding at least one booking, keyed
// "2006-01-02". It annotates the calendar with busy-day markers; it never
// gates selection, so a failure here should not block the booking flow.
func (c *Client) BookedDates(ctx context.Context) (map[string]struct{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/bookings", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServerFault, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classify(resp.StatusCode, body)
	}

	var items []bookingListItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("%w: malformed booking list: %v", ErrServerFault, err)
	}

	// Multiple bookings on the same day collapse into one busy marker.
	dates := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Date != "" {
			dates[item.Date] = struct{}{}
		}
	}
	return dates, nil
}

// RefreshBookedDates loads the summary into the session. On failure the
// previous summary is kept and the error returned for optional surfacing.
func (c *Client) RefreshBookedDates(ctx context.Context, session *Session) error {
	dates, err := c.BookedDates(ctx)
	if err != nil {
		return err
	}
	session.setBookedDates(dates)
	return nil
}
