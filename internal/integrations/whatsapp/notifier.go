// Package whatsapp notifies the studio owner about booking changes.
//
// There is no WhatsApp Business API integration yet; the notifier renders the
// message and the wa.me deep link and records them in the log, which is what
// the studio dashboard tails today.
// TODO: wire the WhatsApp Business API once the studio account is approved.
package whatsapp

import (
	"context"

	"github.com/th-alves/nails-booking-service/pkg/whatsapp"
)

// Notifier sends owner notifications for booking lifecycle events.
type Notifier struct {
	studioPhone string
	enabled     bool
	log         Logger
}

// NewNotifier creates a notifier for the studio's WhatsApp number.
func NewNotifier(studioPhone string, enabled bool, log Logger) *Notifier {
	return &Notifier{
		studioPhone: studioPhone,
		enabled:     enabled,
		log:         log,
	}
}

// NotifyBookingCreated announces a new confirmed booking to the studio.
// Failures are logged, never returned: notification must not affect the
// outcome of the booking itself.
func (n *Notifier) NotifyBookingCreated(ctx context.Context, summary whatsapp.BookingSummary) {
	if !n.enabled {
		return
	}

	message := whatsapp.OwnerCreatedMessage(summary)
	link := whatsapp.Link(n.studioPhone, message)

	n.log.Info("WhatsApp notification for %s: new booking %s %s (client=%s) link=%s",
		n.studioPhone, summary.Date.Format("2006-01-02"), summary.Time, summary.ClientName, link)
}

// NotifyBookingCancelled announces a cancelled booking to the studio.
func (n *Notifier) NotifyBookingCancelled(ctx context.Context, summary whatsapp.BookingSummary) {
	if !n.enabled {
		return
	}

	message := whatsapp.OwnerCancelledMessage(summary)
	link := whatsapp.Link(n.studioPhone, message)

	n.log.Info("WhatsApp notification for %s: cancelled booking %s %s (client=%s) link=%s",
		n.studioPhone, summary.Date.Format("2006-01-02"), summary.Time, summary.ClientName, link)
}
