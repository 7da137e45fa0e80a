package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrMissingSecret means the gateway webhook secret is not configured.
// Unlike a signature mismatch this is fatal for the caller: no
// callback can ever be trusted without it.
var ErrMissingSecret = errors.New("payment gateway secret is not configured")

// SignPayment computes the callback signature the gateway is expected
// to send for a payment: lowercase hex HMAC-SHA256 over
// "<paymentID>|<orderID>".
func SignPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(paymentID + "|" + orderID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature checks a gateway callback against the shared
// secret. A mismatch is an expected outcome and reported as false,
// not as an error; the comparison is constant time. The only error
// case is a missing secret.
func VerifyPaymentSignature(secret, orderID, paymentID, signature string) (bool, error) {
	if secret == "" {
		return false, ErrMissingSecret
	}
	expected := SignPayment(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
