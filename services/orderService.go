package services

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hostelmate/hostelmate-api/initializers"
	"github.com/hostelmate/hostelmate-api/models"
	"github.com/hostelmate/hostelmate-api/payments"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNoActiveBooking     = errors.New("tenant has no active booking for this canteen's hostel")
	ErrSignatureMismatch   = errors.New("payment signature verification failed")
	ErrOrderAlreadyPaid    = errors.New("order is already paid")
	ErrFeedbackExists      = errors.New("feedback already submitted for this order")
	ErrOrderNotDelivered   = errors.New("order has not been delivered yet")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrMenuItemUnavailable = errors.New("menu item is unavailable")
)

type OrderItemRequest struct {
	MenuItemID int `json:"menuItemId" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,min=1"`
}

// CreateOrder creates a food order for a tenant. The canteen must be
// reachable from the tenant's active booking, and this is checked
// before anything is written so no gateway order is ever opened for
// an order that cannot exist. Item prices are snapshotted from the
// menu at creation time and the total is computed here, server-side.
func CreateOrder(tenantID, canteenID int, deliveryLocation string, items []OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var canteen models.Canteen
	if err := initializers.DB.First(&canteen, canteenID).Error; err != nil {
		return nil, fmt.Errorf("canteen lookup failed: %w", err)
	}

	var booking models.Booking
	err := initializers.DB.
		Where("tenant_id = ? AND hostel_id = ? AND status = ?", tenantID, canteen.HostelID, models.BookingActive).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveBooking
	}
	if err != nil {
		return nil, fmt.Errorf("booking lookup failed: %w", err)
	}

	order := models.Order{
		TenantID:         tenantID,
		CanteenID:        canteenID,
		DeliveryLocation: deliveryLocation,
		DeliveryCharge:   canteen.DeliveryCharge,
		OrderStatus:      models.OrderPending,
		PaymentStatus:    models.PaymentUnpaid,
	}

	total := canteen.DeliveryCharge
	for _, item := range items {
		var menuItem models.MenuItem
		if err := initializers.DB.
			Where("id = ? AND canteen_id = ?", item.MenuItemID, canteenID).
			First(&menuItem).Error; err != nil {
			return nil, fmt.Errorf("menu item %d lookup failed: %w", item.MenuItemID, err)
		}
		if !menuItem.Available {
			return nil, ErrMenuItemUnavailable
		}
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			MenuItemID: int(menuItem.ID),
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   item.Quantity,
		})
		total += menuItem.Price * float64(item.Quantity)
	}
	order.Total = total

	if err := initializers.DB.Create(&order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// CreateOrderPaymentIntent opens a gateway order for the stored order
// total and persists its id before returning. Calling it again for
// the same order replaces the previous gateway order id, so only the
// latest intent can be verified.
func CreateOrderPaymentIntent(orderID int) (gatewayOrderID string, amountPaise int64, err error) {
	var order models.Order
	if err := initializers.DB.First(&order, orderID).Error; err != nil {
		return "", 0, fmt.Errorf("order lookup failed: %w", err)
	}
	if order.PaymentStatus == models.PaymentPaid {
		return "", 0, ErrOrderAlreadyPaid
	}

	client, err := payments.NewClient()
	if err != nil {
		return "", 0, err
	}

	amountPaise = order.AmountPaise()
	receipt := fmt.Sprintf("order-%d-%s", order.ID, uuid.NewString())
	gatewayOrderID, err = client.CreateOrder(amountPaise, "INR", receipt)
	if err != nil {
		return "", 0, err
	}

	if err := initializers.DB.Model(&order).
		Update("razorpay_order_id", gatewayOrderID).Error; err != nil {
		return "", 0, fmt.Errorf("failed to save gateway order id: %w", err)
	}
	return gatewayOrderID, amountPaise, nil
}

// VerifyOrderPayment validates a gateway callback for an order and,
// on success, flips paymentStatus to paid. The read-check-write runs
// under a row lock so a client retry and a gateway webhook racing
// each other cannot both apply the transition; a repeat callback for
// an already paid order is a success no-op. A mismatched signature
// leaves the order exactly as it was.
func VerifyOrderPayment(orderID int, paymentID, signature string) (*models.Order, error) {
	secret := os.Getenv("RAZORPAY_KEY_SECRET")

	var order models.Order
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			return fmt.Errorf("order lookup failed: %w", err)
		}

		if order.PaymentStatus == models.PaymentPaid {
			return nil
		}

		ok, err := payments.VerifyPaymentSignature(secret, order.RazorpayOrderID, paymentID, signature)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSignatureMismatch
		}

		order.MarkPaid(paymentID)
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// TransitionOrderStatus moves an order along the provider-driven
// lifecycle. Anything outside the transition table fails with
// models.ErrInvalidTransition and the order is left unchanged.
func TransitionOrderStatus(orderID int, target models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			return fmt.Errorf("order lookup failed: %w", err)
		}
		if err := order.ApplyTransition(target); err != nil {
			return err
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SubmitOrderFeedback attaches the tenant's write-once rating to a
// delivered order.
func SubmitOrderFeedback(orderID, tenantID, rating int, comment string) (*models.OrderFeedback, error) {
	var order models.Order
	if err := initializers.DB.First(&order, orderID).Error; err != nil {
		return nil, fmt.Errorf("order lookup failed: %w", err)
	}
	if order.OrderStatus != models.OrderDelivered {
		return nil, ErrOrderNotDelivered
	}

	var existing models.OrderFeedback
	err := initializers.DB.Where("order_id = ?", orderID).First(&existing).Error
	if err == nil {
		return nil, ErrFeedbackExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("feedback lookup failed: %w", err)
	}

	feedback := models.OrderFeedback{
		OrderID:  orderID,
		TenantID: tenantID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := initializers.DB.Create(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return &feedback, nil
}

// SubmitProviderFeedback records the provider's rating of the tenant
// for an order. It does not touch order state.
func SubmitProviderFeedback(orderID, providerID, rating int, comment string) (*models.ProviderFeedback, error) {
	var existing models.ProviderFeedback
	err := initializers.DB.Where("order_id = ?", orderID).First(&existing).Error
	if err == nil {
		return nil, ErrFeedbackExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("feedback lookup failed: %w", err)
	}

	feedback := models.ProviderFeedback{
		OrderID:    orderID,
		ProviderID: providerID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := initializers.DB.Create(&feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}
	return &feedback, nil
}
