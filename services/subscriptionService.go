package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"github.com/hostelmate/hostelmate-api/payments"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSubscriptionStateChange = errors.New("subscription does not allow this status change")

// CreateSubscriptionPaymentIntent resolves the monthly price from the
// canteen's plan table, creates a pending subscription with the price
// copied (later edits to the plan table never touch it) and opens a
// gateway order for exactly that amount.
func CreateSubscriptionPaymentIntent(tenantID, canteenID int, planKey models.PlanKey, foodType models.FoodType, deliveryLocation string) (*models.Subscription, error) {
	if !models.ValidPlanKey(planKey) {
		return nil, models.ErrPlanUnavailable
	}

	var plan models.MealPlan
	err := initializers.DB.
		Where("canteen_id = ? AND plan_key = ?", canteenID, planKey).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPlanUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("meal plan lookup failed: %w", err)
	}

	price, err := plan.ResolvePrice(foodType)
	if err != nil {
		return nil, err
	}

	subscription := models.Subscription{
		TenantID:         tenantID,
		CanteenID:        canteenID,
		PlanKey:          planKey,
		FoodType:         foodType,
		Price:            price,
		DeliveryLocation: deliveryLocation,
		Status:           models.SubscriptionPending,
		PaymentStatus:    models.PaymentUnpaid,
	}
	if err := initializers.DB.Create(&subscription).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	client, err := payments.NewClient()
	if err != nil {
		return nil, err
	}

	receipt := fmt.Sprintf("subscription-%d-%s", subscription.ID, uuid.NewString())
	gatewayOrderID, err := client.CreateOrder(subscription.AmountPaise(), "INR", receipt)
	if err != nil {
		return nil, err
	}

	if err := initializers.DB.Model(&subscription).
		Update("razorpay_order_id", gatewayOrderID).Error; err != nil {
		return nil, fmt.Errorf("failed to save gateway order id: %w", err)
	}
	subscription.RazorpayOrderID = gatewayOrderID
	return &subscription, nil
}

// VerifySubscriptionPayment validates the gateway callback for a
// pending subscription and activates it for one month from now. Same
// locking and replay rules as order verification: a second valid
// callback is a no-op, an invalid one changes nothing.
func VerifySubscriptionPayment(subscriptionID int, paymentID, signature string) (*models.Subscription, error) {
	secret := os.Getenv("RAZORPAY_KEY_SECRET")

	var subscription models.Subscription
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&subscription, subscriptionID).Error; err != nil {
			return fmt.Errorf("subscription lookup failed: %w", err)
		}

		if subscription.PaymentStatus == models.PaymentPaid {
			return nil
		}

		ok, err := payments.VerifyPaymentSignature(secret, subscription.RazorpayOrderID, paymentID, signature)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSignatureMismatch
		}

		subscription.Activate(paymentID, time.Now())
		return tx.Save(&subscription).Error
	})
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// CancelSubscription is the tenant's explicit, terminal cancellation.
// Only active or paused subscriptions can be cancelled; expiry is not
// cancellation and there is no refund path here.
func CancelSubscription(subscriptionID, tenantID int) (*models.Subscription, error) {
	return changeSubscriptionStatus(subscriptionID, tenantID, models.SubscriptionCancelled,
		models.SubscriptionActive, models.SubscriptionPaused)
}

// PauseSubscription suspends deliveries without ending the term.
func PauseSubscription(subscriptionID, tenantID int) (*models.Subscription, error) {
	return changeSubscriptionStatus(subscriptionID, tenantID, models.SubscriptionPaused,
		models.SubscriptionActive)
}

// ResumeSubscription re-enables a paused subscription.
func ResumeSubscription(subscriptionID, tenantID int) (*models.Subscription, error) {
	return changeSubscriptionStatus(subscriptionID, tenantID, models.SubscriptionActive,
		models.SubscriptionPaused)
}

func changeSubscriptionStatus(subscriptionID, tenantID int, target models.SubscriptionStatus, allowedFrom ...models.SubscriptionStatus) (*models.Subscription, error) {
	var subscription models.Subscription
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND tenant_id = ?", subscriptionID, tenantID).
			First(&subscription).Error; err != nil {
			return fmt.Errorf("subscription lookup failed: %w", err)
		}

		// Expiry is evaluated lazily, so a row that still says active
		// may already be past its end date and must not be mutable.
		current := subscription.EffectiveStatus(time.Now())
		for _, from := range allowedFrom {
			if current == from {
				subscription.Status = target
				return tx.Save(&subscription).Error
			}
		}
		return ErrSubscriptionStateChange
	})
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}
