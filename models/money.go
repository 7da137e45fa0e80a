package models

import "math"

// toPaise converts a rupee amount to integer paise for the payment
// gateway. Rounding guards against float drift on sums like 309.999...
func toPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}
