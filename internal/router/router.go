package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ReserveSeats(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	ReservationStatus(c *ginext.Context)
	GetBookingByPNR(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	SeatMatrix(c *ginext.Context)
	SearchTrains(c *ginext.Context)
	CreateTrain(c *ginext.Context)
	CreateSchedule(c *ginext.Context)
	SetFare(c *ginext.Context)
	CreateStation(c *ginext.Context)
	ListStations(c *ginext.Context)
	ListCoachTypes(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
}

// InitRouter wires the HTTP surface. Booking and seat routes go through
// the identity middleware; reference data and user registration stay open.
// The rate limiter guards hold placement only.
func InitRouter(mode string, h Handler, identity, rateLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Reference data
		api.POST("/stations", h.CreateStation)
		api.GET("/stations", h.ListStations)
		api.GET("/coach-types", h.ListCoachTypes)
		api.POST("/trains", h.CreateTrain)
		api.POST("/schedules", h.CreateSchedule)
		api.POST("/fares", h.SetFare)

		// Search
		api.POST("/trains/search", h.SearchTrains)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		authed := api.Group("", identity)
		{
			// Seats
			authed.POST("/seats/matrix", h.SeatMatrix)

			// Booking
			authed.POST("/booking/reserve-seats", rateLimit, h.ReserveSeats)
			authed.POST("/booking/confirm", h.ConfirmBooking)
			authed.GET("/booking/reservation/:id/status", h.ReservationStatus)
			authed.GET("/booking/pnr/:pnr", h.GetBookingByPNR)
			authed.GET("/booking/my", h.ListMyBookings)
			authed.POST("/booking/:id/cancel", h.CancelBooking)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
