package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"github.com/hostelmate/hostelmate-api/payments"
	"github.com/hostelmate/hostelmate-api/services"
)

// CreateSubscriptionPaymentIntent starts a meal plan purchase: it
// resolves the plan price server-side, creates the pending
// subscription and returns the gateway order id for checkout.
func CreateSubscriptionPaymentIntent(ctx *gin.Context) {
	var body struct {
		CanteenID        int             `json:"canteenId" binding:"required"`
		PlanKey          models.PlanKey  `json:"planKey" binding:"required"`
		FoodType         models.FoodType `json:"foodType" binding:"required"`
		DeliveryLocation string          `json:"deliveryLocation" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	tenantID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	subscription, err := services.CreateSubscriptionPaymentIntent(tenantID, body.CanteenID, body.PlanKey, body.FoodType, body.DeliveryLocation)
	if err != nil {
		if errors.Is(err, models.ErrPlanUnavailable) {
			sendErrorResponse(ctx, http.StatusBadRequest, "This meal plan is not available for the requested food type.")
			return
		}
		log.Println("Subscription intent error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to initiate subscription payment")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"subscriptionId": subscription.ID,
		"gatewayOrderId": subscription.RazorpayOrderID,
		"amount":         subscription.AmountPaise(),
		"currency":       "INR",
	})
}

// VerifySubscriptionPayment consumes the gateway callback and, on a
// valid signature, activates the subscription for one month.
func VerifySubscriptionPayment(ctx *gin.Context) {
	subscriptionId, err := strconv.Atoi(ctx.Param("subscriptionId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse subscriptionId")
		return
	}

	var payload struct {
		PaymentID string `json:"paymentId" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	subscription, err := services.VerifySubscriptionPayment(subscriptionId, payload.PaymentID, payload.Signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSignatureMismatch):
			sendErrorResponse(ctx, http.StatusBadRequest, "Payment verification failed.")
		case errors.Is(err, payments.ErrMissingSecret):
			log.Println("Payment verification misconfigured:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Payment verification is not configured")
		default:
			log.Println("Subscription verification error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to verify payment")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":       "Payment verified.",
		"status":        subscription.EffectiveStatus(time.Now()),
		"paymentStatus": subscription.PaymentStatus,
		"startDate":     subscription.StartDate,
		"endDate":       subscription.EndDate,
	})
}

// GetSubscriptionsByTenant lists a tenant's subscriptions with their
// effective (lazily expired) status.
func GetSubscriptionsByTenant(ctx *gin.Context) {
	tenantId, err := strconv.Atoi(ctx.Param("tenantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse tenantId")
		return
	}

	var subscriptions []models.Subscription
	if result := initializers.DB.
		Where("tenant_id = ?", tenantId).
		Order("created_at desc").
		Find(&subscriptions); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch subscriptions")
		return
	}

	now := time.Now()
	out := make([]gin.H, 0, len(subscriptions))
	for _, s := range subscriptions {
		out = append(out, gin.H{
			"subscription": s,
			"status":       s.EffectiveStatus(now),
		})
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"subscriptions": out})
}

func subscriptionStatusChange(ctx *gin.Context, change func(subscriptionID, tenantID int) (*models.Subscription, error)) {
	subscriptionId, err := strconv.Atoi(ctx.Param("subscriptionId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse subscriptionId")
		return
	}

	tenantID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	subscription, err := change(subscriptionId, tenantID)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionStateChange) {
			sendErrorResponse(ctx, http.StatusConflict, "Subscription does not allow this change.")
			return
		}
		log.Println("Subscription status change error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update subscription")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": subscription.Status})
}

// CancelSubscription permanently ends a subscription.
func CancelSubscription(ctx *gin.Context) {
	subscriptionStatusChange(ctx, services.CancelSubscription)
}

// PauseSubscription suspends deliveries.
func PauseSubscription(ctx *gin.Context) {
	subscriptionStatusChange(ctx, services.PauseSubscription)
}

// ResumeSubscription re-enables a paused subscription.
func ResumeSubscription(ctx *gin.Context) {
	subscriptionStatusChange(ctx, services.ResumeSubscription)
}
