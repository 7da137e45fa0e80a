package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/controllers"
	"github.com/hostelmate/hostelmate-api/middlewares"
)

func ContractRoutes(server *gin.Engine) {
	contract := server.Group("/contract", middlewares.RequireAuth())
	{
		contract.POST("", middlewares.RequireRole("owner", "admin"), controllers.CreateContract)
		contract.GET("/:contractId", controllers.GetContractById)
		contract.POST("/:contractId/sign", controllers.SignContract)
		contract.PATCH("/:contractId/terminate", middlewares.RequireRole("owner", "admin"), controllers.TerminateContract)
	}
	server.GET("/tenant/:tenantId/contracts", middlewares.RequireAuth(), controllers.GetContractsByTenant)
}
