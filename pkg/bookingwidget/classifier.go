package bookingwidget

import (
	"encoding/json"
	"net/http"
	"strings"
)

// errorBody is the backend's structured error shape. Older deployments sent
// FastAPI-style {"detail": "..."} instead, so that field is kept around for
// the message-sniffing shim.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// classify maps a non-2xx response to the widget error taxonomy. The code
// field is authoritative; message sniffing only runs for responses that carry
// no code at all.
func classify(status int, body []byte) error {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	if parsed.Code != "" {
		switch parsed.Code {
		case "WEEKEND":
			return ErrWeekendRejected
		case "PAST_DATE":
			return ErrPastDateRejected
		case "SLOT_TAKEN":
			return ErrSlotTaken
		case "UNPROCESSABLE":
			return ErrUnprocessableInput
		case "INVALID_REQUEST", "INVALID_DATE", "INVALID_TIME":
			return invalidFields(parsed.Message)
		default:
			return ErrServerFault
		}
	}

	message := parsed.Message
	if message == "" {
		message = parsed.Detail
	}

	switch {
	case status == http.StatusConflict:
		return ErrSlotTaken
	case status == http.StatusUnprocessableEntity:
		return ErrUnprocessableInput
	case status == http.StatusBadRequest:
		return sniffRejection(message)
	default:
		return ErrServerFault
	}
}

// sniffRejection is the legacy shim: classify a 400 by its message text.
// Both English and Portuguese phrasings existed across backend versions.
func sniffRejection(message string) error {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(lowered, "weekend") || strings.Contains(lowered, "fim de semana"):
		return ErrWeekendRejected
	case strings.Contains(lowered, "past") || strings.Contains(lowered, "passad"):
		return ErrPastDateRejected
	default:
		return invalidFields(message)
	}
}
