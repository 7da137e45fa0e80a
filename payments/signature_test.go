package payments

import "testing"

func TestVerifyPaymentSignature_RoundTrip(t *testing.T) {
	secret := "test-secret"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"

	signature := SignPayment(secret, orderID, paymentID)

	ok, err := VerifyPaymentSignature(secret, orderID, paymentID, signature)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected signature to verify")
	}
}

func TestVerifyPaymentSignature_SingleBitMutation(t *testing.T) {
	secret := "test-secret"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"

	signature := SignPayment(secret, orderID, paymentID)

	// Flip one bit in every byte position in turn; none may verify.
	for i := range signature {
		mutated := []byte(signature)
		mutated[i] ^= 0x01
		ok, err := VerifyPaymentSignature(secret, orderID, paymentID, string(mutated))
		if err != nil {
			t.Fatalf("verify error at position %d: %v", i, err)
		}
		if ok {
			t.Fatalf("mutated signature verified at position %d", i)
		}
	}
}

func TestVerifyPaymentSignature_WrongOrder(t *testing.T) {
	secret := "test-secret"
	signature := SignPayment(secret, "order_A", "pay_1")

	ok, err := VerifyPaymentSignature(secret, "order_B", "pay_1", signature)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if ok {
		t.Fatal("signature for a different order must not verify")
	}
}

func TestVerifyPaymentSignature_MissingSecret(t *testing.T) {
	_, err := VerifyPaymentSignature("", "order_A", "pay_1", "whatever")
	if err != ErrMissingSecret {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}
