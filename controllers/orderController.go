package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"github.com/hostelmate/hostelmate-api/payments"
	"github.com/hostelmate/hostelmate-api/services"
)

// currentUserID pulls the authenticated user's id out of the JWT
// claims placed on the context by the auth middleware.
func currentUserID(ctx *gin.Context) (int, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return 0, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return int(id), true
}

// CreateOrder places a food order against a canteen. The total is
// computed server-side from the menu; the client only sends item ids
// and quantities.
func CreateOrder(ctx *gin.Context) {
	var orderInfo struct {
		CanteenID        int                         `json:"canteenId" binding:"required"`
		DeliveryLocation string                      `json:"deliveryLocation" binding:"required"`
		Items            []services.OrderItemRequest `json:"items" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	tenantID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	order, err := services.CreateOrder(tenantID, orderInfo.CanteenID, orderInfo.DeliveryLocation, orderInfo.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveBooking):
			sendErrorResponse(ctx, http.StatusForbidden, "You need an active booking in this hostel to order from its canteen.")
		case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrMenuItemUnavailable):
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		default:
			log.Println("Order creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"order":   order,
	})
}

// CreateOrderPaymentIntent opens a gateway order for an order's
// stored total and returns the id the client needs for checkout.
func CreateOrderPaymentIntent(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	gatewayOrderID, amountPaise, err := services.CreateOrderPaymentIntent(orderId)
	if err != nil {
		if errors.Is(err, services.ErrOrderAlreadyPaid) {
			sendErrorResponse(ctx, http.StatusConflict, "Order is already paid.")
			return
		}
		log.Println("Payment intent error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to initiate payment")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"gatewayOrderId": gatewayOrderID,
		"amount":         amountPaise,
		"currency":       "INR",
	})
}

// VerifyOrderPayment consumes the gateway callback for an order.
func VerifyOrderPayment(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
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

	order, err := services.VerifyOrderPayment(orderId, payload.PaymentID, payload.Signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSignatureMismatch):
			sendErrorResponse(ctx, http.StatusBadRequest, "Payment verification failed.")
		case errors.Is(err, payments.ErrMissingSecret):
			log.Println("Payment verification misconfigured:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Payment verification is not configured")
		default:
			log.Println("Payment verification error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to verify payment")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":       "Payment verified.",
		"orderStatus":   order.OrderStatus,
		"paymentStatus": order.PaymentStatus,
	})
}

// UpdateOrderStatus applies one provider-driven transition.
func UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.TransitionOrderStatus(orderId, orderStatusData.Status)
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransition) {
			sendErrorResponse(ctx, http.StatusConflict, "Order cannot move to the requested status.")
			return
		}
		log.Println("Order transition error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":     "Order status updated successfully.",
		"orderStatus": order.OrderStatus,
	})
}

// SubmitOrderFeedback records the tenant's one-time rating of a
// delivered order.
func SubmitOrderFeedback(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var body struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
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

	feedback, err := services.SubmitOrderFeedback(orderId, tenantID, body.Rating, body.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotDelivered):
			sendErrorResponse(ctx, http.StatusConflict, "Feedback can only be left after delivery.")
		case errors.Is(err, services.ErrFeedbackExists):
			sendErrorResponse(ctx, http.StatusConflict, "Feedback has already been submitted for this order.")
		default:
			log.Println("Feedback error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save feedback")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"feedback": feedback})
}

// SubmitProviderFeedback records the provider's rating of the tenant.
func SubmitProviderFeedback(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var body struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	providerID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	feedback, err := services.SubmitProviderFeedback(orderId, providerID, body.Rating, body.Comment)
	if err != nil {
		if errors.Is(err, services.ErrFeedbackExists) {
			sendErrorResponse(ctx, http.StatusConflict, "Feedback has already been submitted for this order.")
			return
		}
		log.Println("Feedback error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"feedback": feedback})
}

// GetOrders returns a paginated listing for the provider dashboard.
func GetOrders(ctx *gin.Context) {
	var orders []models.Order

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	offset := (page - 1) * limit

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	query := initializers.DB.Preload("OrderItems")

	if canteenId := ctx.Query("canteenId"); canteenId != "" {
		query = query.Where("canteen_id = ?", canteenId)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("order_status = ?", status)
	}

	query = query.Order("created_at " + sortOrder)

	result := query.Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	var count int64
	countQuery := initializers.DB.Model(&models.Order{})
	if canteenId := ctx.Query("canteenId"); canteenId != "" {
		countQuery = countQuery.Where("canteen_id = ?", canteenId)
	}
	if status := ctx.Query("status"); status != "" {
		countQuery = countQuery.Where("order_status = ?", status)
	}
	countQuery.Count(&count)

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// GetOrdersByTenant returns a tenant's own orders.
func GetOrdersByTenant(ctx *gin.Context) {
	tenantId, err := strconv.Atoi(ctx.Param("tenantId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse tenantId")
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	var orders []models.Order
	result := initializers.DB.Preload("OrderItems").
		Where("tenant_id = ?", tenantId).
		Order("created_at " + sortOrder).
		Find(&orders)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrderById returns a single order with its items.
func GetOrderById(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	var order models.Order
	if result := initializers.DB.Preload("OrderItems").First(&order, orderId); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusNotFound, "Failed to fetch order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}
