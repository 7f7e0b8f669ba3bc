package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/th-alves/nails-booking-service/internal/service/bookings"
	"github.com/th-alves/nails-booking-service/internal/service/bookings/models"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stubService struct {
	resp *models.BookingResponse
	err  error
}

func (s *stubService) Cancel(context.Context, string) (*models.BookingResponse, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, svc BookingService, bookingID string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validID = "0f8c2f5e-0000-4000-8000-000000000001"

func TestHandle_Cancelled(t *testing.T) {
	svc := &stubService{resp: &models.BookingResponse{ID: validID, Status: "cancelled"}}

	rec := doRequest(t, svc, validID)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cancelled", body.Status)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &stubService{err: bookings.ErrBookingNotFound}

	rec := doRequest(t, svc, validID)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &stubService{}, "not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
