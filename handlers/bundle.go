// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Schedule endpoints.
	GetScheduleHandler    gin.HandlerFunc
	SaveScheduleHandler   gin.HandlerFunc
	DeleteScheduleHandler gin.HandlerFunc

	// Event-type endpoints.
	CreateEventHandler gin.HandlerFunc
	ListEventsHandler  gin.HandlerFunc
	GetEventHandler    gin.HandlerFunc
	UpdateEventHandler gin.HandlerFunc
	DeleteEventHandler gin.HandlerFunc

	// Meeting endpoints.
	ListMeetingsHandler gin.HandlerFunc

	// Public booking endpoints.
	ListPublicEventsHandler gin.HandlerFunc
	GetSlotsHandler         gin.HandlerFunc
	BookMeetingHandler      gin.HandlerFunc
}
