package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	UpdateCapacity(c *ginext.Context)
	Reserve(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ListParticipantReservations(c *ginext.Context)
	CheckIn(c *ginext.Context)
	Summary(c *ginext.Context)
	ListEventReservations(c *ginext.Context)
}

// Options carries the per-route middleware the router cannot build
// itself.
type Options struct {
	RateLimit    ginext.HandlerFunc
	RequireAdmin ginext.HandlerFunc
}

func InitRouter(h Handler, opts Options, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New()
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", opts.RequireAdmin, h.CreateEvent)
		api.PATCH("/events/:id/capacity", opts.RequireAdmin, h.UpdateCapacity)

		// Reservations
		api.POST("/events/:id/reservations", opts.RateLimit, h.Reserve)
		api.DELETE("/reservations/:id", opts.RateLimit, h.CancelReservation)
		api.GET("/participants/:id/reservations", h.ListParticipantReservations)

		// Check-in
		api.POST("/checkins", opts.RateLimit, h.CheckIn)

		// Reporting
		api.GET("/events/:id/reservations/summary", h.Summary)
		api.GET("/events/:id/reservations", opts.RequireAdmin, h.ListEventReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
