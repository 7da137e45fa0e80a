package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/controllers"
	"github.com/hostelmate/hostelmate-api/middlewares"
)

func CanteenRoutes(server *gin.Engine) {
	server.POST("/canteen", middlewares.RequireAuth(), middlewares.RequireRole("provider", "admin"), controllers.CreateCanteen)
	server.GET("/canteen/:id", controllers.GetCanteen)
	server.POST("/menu-item", middlewares.RequireAuth(), middlewares.RequireRole("provider", "admin"), controllers.AddMenuItem)
	server.PUT("/meal-plan", middlewares.RequireAuth(), middlewares.RequireRole("provider", "admin"), controllers.UpsertMealPlan)
}
