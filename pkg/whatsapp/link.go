// Package whatsapp builds wa.me deep links with prefilled booking messages.
// The link is a one-way hand-off: opening it is the only "send" there is.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// localDateLayout renders dates the way clients read them (dd/mm/yyyy).
const localDateLayout = "02/01/2006"

// Link returns the wa.me URL for the given phone (digits only, with country
// code) carrying the message as prefilled text.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// BookingSummary is the data rendered into confirmation messages.
type BookingSummary struct {
	Date        time.Time
	Time        string
	ClientName  string
	ClientPhone string
	Notes       string
}

// ConfirmationMessage is the text a client sends right after booking online.
func ConfirmationMessage(s BookingSummary) string {
	return summaryMessage("Olá! Acabei de agendar um horário para manicure:", s)
}

// ManualBookingMessage is the degraded-mode text used when the booking could
// not be confirmed online and the client books directly over WhatsApp.
func ManualBookingMessage(s BookingSummary) string {
	return summaryMessage("Olá! Gostaria de agendar um horário para manicure:", s)
}

// OwnerCreatedMessage notifies the studio about a new confirmed booking.
func OwnerCreatedMessage(s BookingSummary) string {
	return fmt.Sprintf("Novo agendamento confirmado!\n\nData: %s\nHorário: %s\nCliente: %s\nTelefone: %s",
		s.Date.Format(localDateLayout), s.Time, s.ClientName, s.ClientPhone)
}

// OwnerCancelledMessage notifies the studio about a cancelled booking.
func OwnerCancelledMessage(s BookingSummary) string {
	return fmt.Sprintf("Agendamento cancelado!\n\nData: %s\nHorário: %s\nCliente: %s",
		s.Date.Format(localDateLayout), s.Time, s.ClientName)
}

func summaryMessage(header string, s BookingSummary) string {
	msg := fmt.Sprintf("%s\n\nData: %s\nHorário: %s\nNome: %s\nTelefone: %s",
		header, s.Date.Format(localDateLayout), s.Time, s.ClientName, s.ClientPhone)
	if notes := strings.TrimSpace(s.Notes); notes != "" {
		msg += fmt.Sprintf("\nObservações: %s", notes)
	}
	return msg
}
