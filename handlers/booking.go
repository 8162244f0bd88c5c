// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/booking"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

// BookingHandler serves the meeting scheduler endpoints.
type BookingHandler struct {
	Engine booking.SchedulingEngine
	Logger *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(engine booking.SchedulingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// GetAvailability returns the open slot labels for a day as a JSON array.
// GET /api/meetings/availability?date=YYYY-MM-DD
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}
	day, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	slots := h.Engine.GetAvailableSlots(c.Request.Context(), day)
	c.JSON(http.StatusOK, slots)
}

// RequestMeeting creates a PENDING meeting from a public booking request.
// POST /api/meetings
func (h *BookingHandler) RequestMeeting(c *gin.Context) {
	var req models.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	meeting, err := h.Engine.RequestMeeting(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrInvalidSlot),
			errors.Is(err, booking.ErrWeekendDate):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking request", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create meeting", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// ListMeetings serves the admin dashboard listing.
// GET /api/admin/meetings?status=&date=&limit=&offset=
func (h *BookingHandler) ListMeetings(c *gin.Context) {
	status := c.Query("status")

	if dateParam := c.Query("date"); dateParam != "" {
		day, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
		meetings, err := h.Engine.ListMeetingsForDay(c.Request.Context(), day, status)
		if err != nil {
			h.respondListError(c, err)
			return
		}
		c.JSON(http.StatusOK, meetings)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	meetings, err := h.Engine.ListMeetings(c.Request.Context(), status, limit, offset)
	if err != nil {
		h.respondListError(c, err)
		return
	}
	c.JSON(http.StatusOK, meetings)
}

func (h *BookingHandler) respondListError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrInvalidStatus) {
		utils.JSONError(c, http.StatusBadRequest, "invalid status filter", err.Error())
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "failed to list meetings", err.Error())
}

// GetMeeting returns one meeting by ID.
// GET /api/admin/meetings/:id
func (h *BookingHandler) GetMeeting(c *gin.Context) {
	meeting, err := h.Engine.GetMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrMeetingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "meeting not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch meeting", err.Error())
		return
	}
	c.JSON(http.StatusOK, meeting)
}

// UpdateMeetingStatus drives the meeting lifecycle from the dashboard.
// PATCH /api/admin/meetings/:id/status
func (h *BookingHandler) UpdateMeetingStatus(c *gin.Context) {
	var req models.MeetingStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	meeting, err := h.Engine.UpdateMeetingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMeetingNotFound):
			utils.JSONError(c, http.StatusNotFound, "meeting not found", "")
		case errors.Is(err, booking.ErrInvalidStatus), errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusBadRequest, "invalid status change", err.Error())
		case errors.Is(err, booking.ErrSlotConflict):
			utils.JSONError(c, http.StatusConflict, "slot conflict", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update meeting", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// DeleteMeeting removes a meeting record.
// DELETE /api/admin/meetings/:id
func (h *BookingHandler) DeleteMeeting(c *gin.Context) {
	if err := h.Engine.DeleteMeeting(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, booking.ErrMeetingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "meeting not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete meeting", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
