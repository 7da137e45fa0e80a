package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/controllers"
	"github.com/hostelmate/hostelmate-api/middlewares"
)

func SubscriptionRoutes(server *gin.Engine) {
	subscription := server.Group("/subscription", middlewares.RequireAuth())
	{
		subscription.POST("/payment-intent", middlewares.RequireRole("tenant"), controllers.CreateSubscriptionPaymentIntent)
		subscription.POST("/:subscriptionId/verify-payment", controllers.VerifySubscriptionPayment)
		subscription.PATCH("/:subscriptionId/cancel", middlewares.RequireRole("tenant"), controllers.CancelSubscription)
		subscription.PATCH("/:subscriptionId/pause", middlewares.RequireRole("tenant"), controllers.PauseSubscription)
		subscription.PATCH("/:subscriptionId/resume", middlewares.RequireRole("tenant"), controllers.ResumeSubscription)
	}
	server.GET("/tenant/:tenantId/subscriptions", middlewares.RequireAuth(), controllers.GetSubscriptionsByTenant)
}
