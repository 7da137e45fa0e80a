package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/controllers"
	"github.com/hostelmate/hostelmate-api/middlewares"
)

func BookingRoutes(server *gin.Engine) {
	server.POST("/booking", middlewares.RequireAuth(), middlewares.RequireRole("tenant"), controllers.CreateBooking)
	server.PATCH("/booking/:bookingId/end", middlewares.RequireAuth(), controllers.EndBooking)
	server.GET("/tenant/:tenantId/bookings", middlewares.RequireAuth(), controllers.GetBookingsByTenant)
}
