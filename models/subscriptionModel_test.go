package models

import (
	"testing"
	"time"
)

func TestActivate_SetsOneMonthTerm(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	subscription := Subscription{
		Status:        SubscriptionPending,
		PaymentStatus: PaymentUnpaid,
		Price:         2400,
	}

	if changed := subscription.Activate("pay_sub_1", now); !changed {
		t.Fatal("first Activate should report a change")
	}
	if subscription.Status != SubscriptionActive {
		t.Fatalf("expected active, got %s", subscription.Status)
	}
	if !subscription.StartDate.Equal(now) {
		t.Fatalf("start date %v, want %v", subscription.StartDate, now)
	}
	if want := now.AddDate(0, 1, 0); !subscription.EndDate.Equal(want) {
		t.Fatalf("end date %v, want %v", subscription.EndDate, want)
	}
}

func TestActivate_ReplayIsNoOp(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	subscription := Subscription{Status: SubscriptionPending, PaymentStatus: PaymentUnpaid}

	subscription.Activate("pay_sub_1", now)
	later := now.Add(48 * time.Hour)
	if changed := subscription.Activate("pay_sub_2", later); changed {
		t.Fatal("replayed activation should be a no-op")
	}
	if subscription.RazorpayPaymentID != "pay_sub_1" {
		t.Fatalf("payment id overwritten on replay: %s", subscription.RazorpayPaymentID)
	}
	if !subscription.StartDate.Equal(now) {
		t.Fatal("term restarted on replayed activation")
	}
}

func TestEffectiveStatus_LazyExpiry(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	subscription := Subscription{
		Status:    SubscriptionActive,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
	}

	if got := subscription.EffectiveStatus(start.AddDate(0, 0, 20)); got != SubscriptionActive {
		t.Fatalf("within term: got %s", got)
	}
	if got := subscription.EffectiveStatus(start.AddDate(0, 2, 0)); got != SubscriptionExpired {
		t.Fatalf("past term: got %s", got)
	}
	// The stored row is untouched; expiry is read-time only.
	if subscription.Status != SubscriptionActive {
		t.Fatalf("stored status mutated to %s", subscription.Status)
	}
}

func TestEffectiveStatus_CancelledStaysCancelled(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	subscription := Subscription{
		Status:  SubscriptionCancelled,
		EndDate: start.AddDate(0, 1, 0),
	}
	if got := subscription.EffectiveStatus(start.AddDate(0, 3, 0)); got != SubscriptionCancelled {
		t.Fatalf("expected cancelled, got %s", got)
	}
}
