package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/th-alves/nails-booking-service/internal/usecase/get_available_slots"
	"github.com/th-alves/nails-booking-service/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, uc GetAvailableSlotsUseCase, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, noopLogger{})
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_ReturnsBareSlotArray(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:  time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		Slots: []types.TimeString{"08:00", "10:00"},
	}}

	rec := doRequest(t, uc, "/api/available-slots?date=2026-09-07")

	require.Equal(t, http.StatusOK, rec.Code)

	var slots []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	assert.Equal(t, []string{"08:00", "10:00"}, slots)
}

func TestHandle_FullyBookedIsEmptyArray(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Slots: []types.TimeString{}}}

	rec := doRequest(t, uc, "/api/available-slots?date=2026-09-07")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		err      error
		wantCode string
	}{
		{"missing date", "/api/available-slots", nil, "INVALID_REQUEST"},
		{"bad date format", "/api/available-slots?date=07-09-2026", nil, "INVALID_DATE"},
		{"weekend", "/api/available-slots?date=2026-09-05", getAvailableSlots.ErrWeekend, "WEEKEND"},
		{"past date", "/api/available-slots?date=2020-01-06", getAvailableSlots.ErrPastDate, "PAST_DATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, tt.target)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var payload struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.Equal(t, tt.wantCode, payload.Code)
		})
	}
}
