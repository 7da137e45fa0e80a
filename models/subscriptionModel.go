package models

import (
	"time"

	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	// SubscriptionPending is the pre-payment record created alongside
	// the gateway order; it activates only on a verified callback.
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type Subscription struct {
	gorm.Model
	TenantID          int                `json:"tenantId"`
	CanteenID         int                `json:"canteenId"`
	PlanKey           PlanKey            `json:"planKey"`
	FoodType          FoodType           `json:"foodType"`
	Price             float64            `json:"price"`
	DeliveryLocation  string             `json:"deliveryLocation"`
	Status            SubscriptionStatus `json:"status"`
	PaymentStatus     PaymentStatus      `json:"paymentStatus"`
	RazorpayOrderID   string             `json:"razorpayOrderId"`
	RazorpayPaymentID string             `json:"razorpayPaymentId"`
	StartDate         time.Time          `json:"startDate"`
	EndDate           time.Time          `json:"endDate"`
}

// Activate flips a pending subscription to active for one calendar
// month starting now. Idempotent: an already active subscription is
// left untouched.
func (s *Subscription) Activate(paymentID string, now time.Time) (changed bool) {
	if s.PaymentStatus == PaymentPaid {
		return false
	}
	s.PaymentStatus = PaymentPaid
	s.RazorpayPaymentID = paymentID
	s.Status = SubscriptionActive
	s.StartDate = now
	s.EndDate = now.AddDate(0, 1, 0)
	return true
}

// EffectiveStatus is the status as seen by readers. Expiry is lazy:
// no sweeper flips rows, an active subscription past its end date
// simply reads as expired.
func (s *Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if s.Status == SubscriptionActive && now.After(s.EndDate) {
		return SubscriptionExpired
	}
	return s.Status
}

// AmountPaise returns the resolved monthly price in minor units.
func (s *Subscription) AmountPaise() int64 {
	return toPaise(s.Price)
}
