package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/controllers"
	"github.com/hostelmate/hostelmate-api/middlewares"
)

func HostelRoutes(server *gin.Engine) {
	server.POST("/hostel", middlewares.RequireAuth(), middlewares.RequireRole("owner", "admin"), controllers.CreateHostel)
	server.GET("/hostel", controllers.GetHostels)
	server.GET("/hostel/:id", controllers.GetHostel)
	server.POST("/hostel-images", middlewares.RequireAuth(), middlewares.RequireRole("owner", "admin"), controllers.UploadHostelImages)
	server.POST("/room", middlewares.RequireAuth(), middlewares.RequireRole("owner", "admin"), controllers.AddRoom)
}
