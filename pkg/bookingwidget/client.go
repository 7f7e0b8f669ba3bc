// Package bookingwidget is the client-side core of the booking flow: date
// offerability, availability lookup, booking submission and the booked-dates
// calendar summary. The three site variants embed this one implementation and
// keep only presentation to themselves.
package bookingwidget

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every backend request. The transport default is
// effectively unbounded, which is useless for a form the user is staring at.
const DefaultTimeout = 5 * time.Second

// Options configures a Client.
type Options struct {
	// BaseURL is the booking backend root, e.g. "https://api.studio.com".
	BaseURL string

	// StudioPhone is the studio's WhatsApp number, digits only with
	// country code. Used to build the confirmation hand-off link.
	StudioPhone string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// ManualHandoff, when enabled, makes Submit return the WhatsApp
	// hand-off link even if the backend never answered, so the studio can
	// confirm the appointment by hand. The confirmation is explicitly
	// marked degraded; the booking may or may not have landed server-side.
	// Off by default.
	ManualHandoff bool

	// HTTPClient overrides the transport, mainly for tests. Its own
	// timeout is ignored in favor of Timeout.
	HTTPClient *http.Client
}

// Client talks to the booking backend. Safe for concurrent use; all booking
// session state lives in Session, not here.
type Client struct {
	baseURL       string
	studioPhone   string
	manualHandoff bool
	httpClient    *http.Client
}

// NewClient creates a widget client over the given backend.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{}
	if opts.HTTPClient != nil {
		// Copy so the caller's client is not mutated by the timeout override.
		clone := *opts.HTTPClient
		httpClient = &clone
	}
	httpClient.Timeout = timeout

	return &Client{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		studioPhone:   opts.StudioPhone,
		manualHandoff: opts.ManualHandoff,
		httpClient:    httpClient,
	}
}
