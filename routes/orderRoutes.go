package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/controllers"
	"github.com/hostelmate/hostelmate-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	order := server.Group("/order", middlewares.RequireAuth())
	{
		order.POST("", middlewares.RequireRole("tenant"), controllers.CreateOrder)
		order.GET("", middlewares.RequireRole("provider", "admin"), controllers.GetOrders)
		order.GET("/:orderId", controllers.GetOrderById)
		order.POST("/:orderId/payment-intent", middlewares.RequireRole("tenant"), controllers.CreateOrderPaymentIntent)
		order.POST("/:orderId/verify-payment", controllers.VerifyOrderPayment)
		order.PATCH("/:orderId/status", middlewares.RequireRole("provider", "admin"), controllers.UpdateOrderStatus)
		order.POST("/:orderId/feedback", middlewares.RequireRole("tenant"), controllers.SubmitOrderFeedback)
		order.POST("/:orderId/provider-feedback", middlewares.RequireRole("provider"), controllers.SubmitProviderFeedback)
	}
	server.GET("/tenant/:tenantId/orders", middlewares.RequireAuth(), controllers.GetOrdersByTenant)
}
