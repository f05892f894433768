package handlers

import (
	"net/http"

	"github.com/darshanpawar101/mini-calendly-clone/services/meeting"
	"github.com/darshanpawar101/mini-calendly-clone/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler serves the authenticated meeting endpoints.
type MeetingHandler struct {
	Service meeting.MeetingService
}

func NewMeetingHandler(svc meeting.MeetingService) *MeetingHandler {
	return &MeetingHandler{Service: svc}
}

// ListMeetingsHandler handles GET /api/meetings.
func (h *MeetingHandler) ListMeetingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	meetings, err := h.Service.GetHostMeetings(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list meetings", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, meetings)
}
