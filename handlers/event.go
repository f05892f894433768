package handlers

import (
	"errors"
	"net/http"

	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/services/event"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventHandler serves the authenticated event-type endpoints.
type EventHandler struct {
	Service event.EventService
}

func NewEventHandler(svc event.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

type eventPayload struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	DurationInMinutes int    `json:"durationInMinutes" binding:"required"`
	IsActive          *bool  `json:"isActive"`
}

// CreateEventHandler handles POST /api/events.
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req eventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	evt := &models.Event{
		UserID:            userID,
		Name:              req.Name,
		Description:       req.Description,
		DurationInMinutes: req.DurationInMinutes,
		IsActive:          active,
	}

	created, err := h.Service.CreateEvent(c.Request.Context(), evt)
	if err != nil {
		var invalid event.InvalidEventError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
			return
		}
		logger.Error("Failed to create event", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListEventsHandler handles GET /api/events.
func (h *EventHandler) ListEventsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	events, err := h.Service.GetUserEvents(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list events", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventHandler handles GET /api/events/:id.
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	evt, err := h.Service.GetEvent(c.Request.Context(), id)
	if err != nil {
		logger.Error("Event not found", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	if evt.UserID != c.GetString("userID") {
		utils.JSONError(c, http.StatusForbidden, "Not your event")
		return
	}
	c.JSON(http.StatusOK, evt)
}

// UpdateEventHandler handles PUT /api/events/:id.
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")
	id := c.Param("id")

	var req eventPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid event payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	evt := &models.Event{
		ID:                id,
		UserID:            userID,
		Name:              req.Name,
		Description:       req.Description,
		DurationInMinutes: req.DurationInMinutes,
		IsActive:          active,
	}

	if err := h.Service.UpdateEvent(c.Request.Context(), userID, evt); err != nil {
		var invalid event.InvalidEventError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
			return
		}
		logger.Error("Failed to update event", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, evt)
}

// DeleteEventHandler handles DELETE /api/events/:id.
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")
	id := c.Param("id")

	if err := h.Service.DeleteEvent(c.Request.Context(), userID, id); err != nil {
		logger.Error("Failed to delete event", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
