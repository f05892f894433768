// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/services/availability"
	"github.com/darshanpawar101/mini-calendly-clone/services/event"
	"github.com/darshanpawar101/mini-calendly-clone/services/meeting"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// slotStep is the spacing between generated candidate start times.
const slotStep = 15 * time.Minute

// maxSlotRange caps how wide a slot query window may be.
const maxSlotRange = 31 * 24 * time.Hour

// BookingHandler serves the public booking endpoints.
type BookingHandler struct {
	Events       event.EventService
	Availability availability.AvailabilityService
	Meetings     meeting.MeetingService
}

func NewBookingHandler(events event.EventService, avail availability.AvailabilityService, meetings meeting.MeetingService) *BookingHandler {
	return &BookingHandler{Events: events, Availability: avail, Meetings: meetings}
}

// ListPublicEventsHandler handles GET /api/book/:userId/events. Only active event
// types are exposed to guests.
func (h *BookingHandler) ListPublicEventsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.Param("userId")

	events, err := h.Events.GetActiveEvents(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list public events", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetSlotsHandler handles GET /api/book/events/:eventId/slots?from=...&to=...
// The from/to bounds are RFC3339 timestamps; the offsets they carry determine the
// frame in which candidate weekdays are read, so clients should send them in the
// timezone they want slots evaluated against.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	eventID := c.Param("eventId")

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid 'from' timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid 'to' timestamp")
		return
	}
	if to.Before(from) || to.Sub(from) > maxSlotRange {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot range")
		return
	}

	evt, err := h.Events.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	if !evt.IsActive {
		utils.JSONError(c, http.StatusNotFound, "Event is not active")
		return
	}

	candidates := availability.CandidateTimes(from, to, slotStep)
	slots, err := h.Availability.ResolveAvailableSlots(c.Request.Context(), candidates, models.EventRequest{
		UserID:            evt.UserID,
		DurationInMinutes: evt.DurationInMinutes,
	})
	if err != nil {
		logger.Error("Failed to resolve slots", zap.String("eventID", eventID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if slots == nil {
		slots = []time.Time{}
	}
	c.JSON(http.StatusOK, gin.H{"event": evt, "slots": slots})
}

// BookMeetingHandler handles POST /api/book/events/:eventId.
func (h *BookingHandler) BookMeetingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	eventID := c.Param("eventId")

	var req struct {
		StartTime  time.Time `json:"startTime" binding:"required"`
		Timezone   string    `json:"timezone"`
		GuestName  string    `json:"guestName" binding:"required"`
		GuestEmail string    `json:"guestEmail" binding:"required,email"`
		GuestNotes string    `json:"guestNotes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	mtg, err := h.Meetings.BookMeeting(c.Request.Context(), meeting.BookMeetingRequest{
		EventID:    eventID,
		StartTime:  req.StartTime,
		Timezone:   req.Timezone,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestNotes: req.GuestNotes,
	})
	if err != nil {
		var unavailable meeting.SlotUnavailableError
		if errors.As(err, &unavailable) {
			utils.JSONError(c, http.StatusConflict, unavailable.Error())
			return
		}
		var invalid meeting.InvalidBookingError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
			return
		}
		logger.Error("Failed to book meeting", zap.String("eventID", eventID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, mtg)
}
