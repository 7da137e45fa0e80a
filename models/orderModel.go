package models

import (
	"errors"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
	PaymentFailed PaymentStatus = "failed"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

// orderTransitions is the full set of allowed status edges. Providers
// move an order along the happy path; cancellation is only possible
// before preparation starts. Delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderReady},
	OrderReady:     {OrderDelivered},
	OrderDelivered: {},
	OrderCancelled: {},
}

type Order struct {
	gorm.Model
	TenantID          int           `json:"tenantId"`
	CanteenID         int           `json:"canteenId"`
	DeliveryLocation  string        `json:"deliveryLocation"`
	DeliveryCharge    float64       `json:"deliveryCharge"`
	Total             float64       `json:"total"`
	OrderStatus       OrderStatus   `json:"orderStatus"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	RazorpayOrderID   string        `json:"razorpayOrderId"`
	RazorpayPaymentID string        `json:"razorpayPaymentId"`
	OrderItems        []OrderItem   `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID    int     `json:"orderId"`
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// OrderFeedback is the tenant's post-delivery rating of an order.
// Write-once: a second submission for the same order is rejected.
type OrderFeedback struct {
	gorm.Model
	OrderID  int    `json:"orderId" gorm:"uniqueIndex"`
	TenantID int    `json:"tenantId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// ProviderFeedback is the provider's rating of the tenant. It is
// independent of order state and does not gate any transition.
type ProviderFeedback struct {
	gorm.Model
	OrderID    int    `json:"orderId" gorm:"uniqueIndex"`
	ProviderID int    `json:"providerId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// CanTransition reports whether moving from the order's current status
// to target is an allowed edge.
func (o *Order) CanTransition(target OrderStatus) bool {
	for _, next := range orderTransitions[o.OrderStatus] {
		if next == target {
			return true
		}
	}
	return false
}

// ApplyTransition moves the order to target or returns
// ErrInvalidTransition leaving the order unchanged.
func (o *Order) ApplyTransition(target OrderStatus) error {
	if !o.CanTransition(target) {
		return ErrInvalidTransition
	}
	o.OrderStatus = target
	return nil
}

// MarkPaid records a verified gateway payment. It is idempotent: once
// the order is paid, further calls report no change and never touch
// the stored payment id.
func (o *Order) MarkPaid(paymentID string) (changed bool) {
	if o.PaymentStatus == PaymentPaid {
		return false
	}
	o.PaymentStatus = PaymentPaid
	o.RazorpayPaymentID = paymentID
	return true
}

// AmountPaise returns the order total in minor currency units, which
// is what the payment gateway expects.
func (o *Order) AmountPaise() int64 {
	return toPaise(o.Total)
}
