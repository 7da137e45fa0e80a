package models

import "testing"

var allOrderStatuses = []OrderStatus{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled,
}

func TestApplyTransition_AllowedEdges(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
	}{
		{OrderPending, OrderConfirmed},
		{OrderPending, OrderCancelled},
		{OrderConfirmed, OrderPreparing},
		{OrderConfirmed, OrderCancelled},
		{OrderPreparing, OrderReady},
		{OrderReady, OrderDelivered},
	}
	for _, c := range cases {
		order := Order{OrderStatus: c.from}
		if err := order.ApplyTransition(c.to); err != nil {
			t.Errorf("%s -> %s: unexpected error %v", c.from, c.to, err)
		}
		if order.OrderStatus != c.to {
			t.Errorf("%s -> %s: status is %s", c.from, c.to, order.OrderStatus)
		}
	}
}

func TestApplyTransition_RejectsEverythingElse(t *testing.T) {
	allowed := map[OrderStatus][]OrderStatus{
		OrderPending:   {OrderConfirmed, OrderCancelled},
		OrderConfirmed: {OrderPreparing, OrderCancelled},
		OrderPreparing: {OrderReady},
		OrderReady:     {OrderDelivered},
	}
	isAllowed := func(from, to OrderStatus) bool {
		for _, next := range allowed[from] {
			if next == to {
				return true
			}
		}
		return false
	}

	for _, from := range allOrderStatuses {
		for _, to := range allOrderStatuses {
			if isAllowed(from, to) {
				continue
			}
			order := Order{OrderStatus: from}
			err := order.ApplyTransition(to)
			if err != ErrInvalidTransition {
				t.Errorf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
			}
			if order.OrderStatus != from {
				t.Errorf("%s -> %s: order mutated on rejected transition", from, to)
			}
		}
	}
}

func TestApplyTransition_NoCancellationOncePreparing(t *testing.T) {
	order := Order{OrderStatus: OrderPreparing}
	if err := order.ApplyTransition(OrderCancelled); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if order.OrderStatus != OrderPreparing {
		t.Fatalf("order status changed to %s", order.OrderStatus)
	}
}

func TestMarkPaid_Idempotent(t *testing.T) {
	order := Order{PaymentStatus: PaymentUnpaid}

	if changed := order.MarkPaid("pay_1"); !changed {
		t.Fatal("first MarkPaid should report a change")
	}
	if order.PaymentStatus != PaymentPaid || order.RazorpayPaymentID != "pay_1" {
		t.Fatalf("unexpected state after MarkPaid: %s %s", order.PaymentStatus, order.RazorpayPaymentID)
	}

	// Replayed callback: no change, original payment id kept.
	if changed := order.MarkPaid("pay_2"); changed {
		t.Fatal("second MarkPaid should be a no-op")
	}
	if order.RazorpayPaymentID != "pay_1" {
		t.Fatalf("payment id overwritten on replay: %s", order.RazorpayPaymentID)
	}
}

func TestAmountPaise(t *testing.T) {
	// 2 x 150 items + 10 delivery = 310 rupees = 31000 paise.
	order := Order{
		DeliveryCharge: 10,
		Total:          2*150 + 10,
	}
	if got := order.AmountPaise(); got != 31000 {
		t.Fatalf("expected 31000 paise, got %d", got)
	}
}

func TestAmountPaise_Rounding(t *testing.T) {
	order := Order{Total: 99.999999999}
	if got := order.AmountPaise(); got != 10000 {
		t.Fatalf("expected 10000 paise, got %d", got)
	}
}
