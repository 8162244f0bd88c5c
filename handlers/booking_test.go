// File: handlers/booking_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/booking"
)

// stubEngine lets each test script the engine's responses.
type stubEngine struct {
	available []string
	requested *models.Meeting
	reqErr    error
	updated   *models.Meeting
	updateErr error
}

func (s *stubEngine) GetBookedTimeSlots(context.Context, time.Time) []string { return nil }
func (s *stubEngine) GetAvailableSlots(context.Context, time.Time) []string {
	return s.available
}
func (s *stubEngine) RequestMeeting(context.Context, models.MeetingRequest) (*models.Meeting, error) {
	return s.requested, s.reqErr
}
func (s *stubEngine) GetMeeting(context.Context, string) (*models.Meeting, error) {
	return nil, booking.ErrMeetingNotFound
}
func (s *stubEngine) ListMeetings(context.Context, string, int, int) ([]models.Meeting, error) {
	return nil, nil
}
func (s *stubEngine) ListMeetingsForDay(context.Context, time.Time, string) ([]models.Meeting, error) {
	return nil, nil
}
func (s *stubEngine) UpdateMeetingStatus(context.Context, string, string) (*models.Meeting, error) {
	return s.updated, s.updateErr
}
func (s *stubEngine) DeleteMeeting(context.Context, string) error { return nil }
func (s *stubEngine) CompletePastMeetings(context.Context) (int64, error) {
	return 0, nil
}

func newBookingRouter(engine booking.SchedulingEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(engine, zap.NewNop())
	r := gin.New()
	r.GET("/api/meetings/availability", h.GetAvailability)
	r.POST("/api/meetings", h.RequestMeeting)
	r.PATCH("/api/admin/meetings/:id/status", h.UpdateMeetingStatus)
	return r
}

func TestGetAvailability(t *testing.T) {
	engine := &stubEngine{available: []string{"09:00", "09:30", "10:00"}}
	router := newBookingRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/availability?date=2024-06-10", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var slots []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slots)
}

func TestGetAvailability_EmptyIsJSONArray(t *testing.T) {
	engine := &stubEngine{available: []string{}}
	router := newBookingRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/meetings/availability?date=2024-06-08", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetAvailability_BadDate(t *testing.T) {
	router := newBookingRouter(&stubEngine{})

	for _, url := range []string{
		"/api/meetings/availability",
		"/api/meetings/availability?date=June-10",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestRequestMeeting_Handler(t *testing.T) {
	engine := &stubEngine{requested: &models.Meeting{
		ID:     "m-1",
		Status: models.MeetingStatusPending,
		Time:   "11:00",
	}}
	router := newBookingRouter(engine)

	body := `{"name":"Jane","email":"jane@example.com","date":"2024-06-10","time":"11:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var meeting models.Meeting
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meeting))
	assert.Equal(t, models.MeetingStatusPending, meeting.Status)
}

func TestRequestMeeting_WeekendRejected(t *testing.T) {
	engine := &stubEngine{reqErr: booking.ErrWeekendDate}
	router := newBookingRouter(engine)

	body := `{"name":"Jane","email":"jane@example.com","date":"2024-06-08","time":"11:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/meetings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMeetingStatus_Conflict(t *testing.T) {
	engine := &stubEngine{updateErr: booking.ErrSlotConflict}
	router := newBookingRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/meetings/m-1/status",
		strings.NewReader(`{"status":"CONFIRMED"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}
