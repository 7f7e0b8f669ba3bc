// Package handlers holds the helpers shared by all HTTP handlers.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the wire shape of every error. Code is the machine-readable
// classifier; Message is the human-readable text shown to the client.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Stable error codes of the booking API. Clients classify failures by code;
// matching on message text is a legacy shim only.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidDate    = "INVALID_DATE"
	CodeInvalidTime    = "INVALID_TIME"
	CodeWeekend        = "WEEKEND"
	CodePastDate       = "PAST_DATE"
	CodeSlotTaken      = "SLOT_TAKEN"
	CodeUnprocessable  = "UNPROCESSABLE"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL"
)

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// RespondJSON writes v as a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError writes a structured error response.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// RespondBadRequest writes a 400 with the given code and message.
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondNotFound writes a 404.
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondConflict writes a 409.
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondUnprocessable writes a 422.
func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, CodeUnprocessable, message)
}

// RespondInternalError writes a 500 with a generic message.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, "erro interno do servidor")
}
