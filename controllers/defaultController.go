package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to HostelMate API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account
- POST "/auth/verify-email/:activationToken" - Activate user account
- POST "/auth/forgot-password" - Request password reset
- POST "/auth/reset-password/:resetToken" - Reset user password

HOSTEL
- POST "/hostel" - Create a hostel listing
- GET "/hostel" - Search hostels
- GET "/hostel/:id" - Get hostel by ID
- POST "/hostel-images" - Upload hostel images
- POST "/room" - Add a room to a hostel

BOOKING
- POST "/booking" - Book a room
- GET "/tenant/:tenantId/bookings" - Get bookings for a tenant
- PATCH "/booking/:bookingId/end" - End a booking

CANTEEN
- POST "/canteen" - Create a canteen
- GET "/canteen/:id" - Get canteen with menu and meal plans
- POST "/menu-item" - Add a menu item
- PUT "/meal-plan" - Create or update a meal plan

ORDER
- POST "/order" - Create a food order
- GET "/order" - Retrieve orders (provider)
- GET "/tenant/:tenantId/orders" - Get orders for a tenant
- GET "/order/:orderId" - Get order by ID
- POST "/order/:orderId/payment-intent" - Open a payment for an order
- POST "/order/:orderId/verify-payment" - Verify a gateway callback
- PATCH "/order/:orderId/status" - Update order status
- POST "/order/:orderId/feedback" - Rate a delivered order
- POST "/order/:orderId/provider-feedback" - Provider rates the tenant

SUBSCRIPTION
- POST "/subscription/payment-intent" - Purchase a meal plan
- POST "/subscription/:subscriptionId/verify-payment" - Verify and activate
- GET "/tenant/:tenantId/subscriptions" - Get subscriptions for a tenant
- PATCH "/subscription/:subscriptionId/cancel" - Cancel
- PATCH "/subscription/:subscriptionId/pause" - Pause
- PATCH "/subscription/:subscriptionId/resume" - Resume

CONTRACT
- POST "/contract" - Draft a lease contract
- GET "/contract/:contractId" - Get contract by ID
- GET "/tenant/:tenantId/contracts" - Get contracts for a tenant
- POST "/contract/:contractId/sign" - Sign as tenant or owner
- PATCH "/contract/:contractId/terminate" - Terminate an active contract`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
