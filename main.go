// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/darshanpawar101/mini-calendly-clone/config"
	"github.com/darshanpawar101/mini-calendly-clone/database"
	eventRepoPkg "github.com/darshanpawar101/mini-calendly-clone/database/repository/event"
	meetingRepoPkg "github.com/darshanpawar101/mini-calendly-clone/database/repository/meeting"
	scheduleRepoPkg "github.com/darshanpawar101/mini-calendly-clone/database/repository/schedule"
	"github.com/darshanpawar101/mini-calendly-clone/handlers"
	"github.com/darshanpawar101/mini-calendly-clone/middleware"
	"github.com/darshanpawar101/mini-calendly-clone/routes"
	"github.com/darshanpawar101/mini-calendly-clone/services/availability"
	"github.com/darshanpawar101/mini-calendly-clone/services/calendar"
	"github.com/darshanpawar101/mini-calendly-clone/services/event"
	"github.com/darshanpawar101/mini-calendly-clone/services/meeting"
	"github.com/darshanpawar101/mini-calendly-clone/services/schedule"
	"github.com/darshanpawar101/mini-calendly-clone/utils"
	"github.com/darshanpawar101/mini-calendly-clone/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	evtRepo := eventRepoPkg.NewMongoEventRepo()
	mtgRepo := meetingRepoPkg.NewMongoMeetingRepo()

	// collaborators.
	calendarService, err := calendar.NewGoogleCalendarService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize google calendar service: %v", err)
	}
	reminderQueue := workers.NewReminderQueue()
	workers.InitReminderWorker(workers.LogNotifier{})
	workers.StartReminderSweep(mtgRepo, reminderQueue, 10*time.Minute)

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:  schedRepo,
		Cache: utils.GetCacheClient(),
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Schedules: schedRepo,
		Calendar:  calendarService,
	}
	eventService := &event.DefaultEventService{
		Repo: evtRepo,
	}
	meetingService := &meeting.DefaultMeetingService{
		Repo:         mtgRepo,
		EventRepo:    evtRepo,
		Availability: availabilityService,
		Calendar:     calendarService,
		Reminders:    reminderQueue,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	eventHandler := handlers.NewEventHandler(eventService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	bookingHandler := handlers.NewBookingHandler(eventService, availabilityService, meetingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Schedule endpoints.
		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		SaveScheduleHandler:   scheduleHandler.SaveScheduleHandler,
		DeleteScheduleHandler: scheduleHandler.DeleteScheduleHandler,

		// Event-type endpoints.
		CreateEventHandler: eventHandler.CreateEventHandler,
		ListEventsHandler:  eventHandler.ListEventsHandler,
		GetEventHandler:    eventHandler.GetEventHandler,
		UpdateEventHandler: eventHandler.UpdateEventHandler,
		DeleteEventHandler: eventHandler.DeleteEventHandler,

		// Meeting endpoints.
		ListMeetingsHandler: meetingHandler.ListMeetingsHandler,

		// Public booking endpoints.
		ListPublicEventsHandler: bookingHandler.ListPublicEventsHandler,
		GetSlotsHandler:         bookingHandler.GetSlotsHandler,
		BookMeetingHandler:      bookingHandler.BookMeetingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
