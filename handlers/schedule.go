package handlers

import (
	"errors"
	"net/http"

	"github.com/darshanpawar101/mini-calendly-clone/models"
	"github.com/darshanpawar101/mini-calendly-clone/services/schedule"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the authenticated schedule endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetScheduleHandler handles GET /api/schedule.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	sched, err := h.Service.GetSchedule(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load schedule", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if sched == nil {
		utils.JSONError(c, http.StatusNotFound, "No schedule configured")
		return
	}
	c.JSON(http.StatusOK, sched)
}

// SaveScheduleHandler handles PUT /api/schedule.
func (h *ScheduleHandler) SaveScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req struct {
		Timezone       string                `json:"timezone" binding:"required"`
		Availabilities []models.Availability `json:"availabilities"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	sched := &models.Schedule{
		UserID:         userID,
		Timezone:       req.Timezone,
		Availabilities: req.Availabilities,
	}
	if err := h.Service.SaveSchedule(c.Request.Context(), sched); err != nil {
		var invalid schedule.InvalidScheduleError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
			return
		}
		logger.Error("Failed to save schedule", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, sched)
}

// DeleteScheduleHandler handles DELETE /api/schedule.
func (h *ScheduleHandler) DeleteScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	if err := h.Service.DeleteSchedule(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to delete schedule", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
