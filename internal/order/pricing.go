// Package order is the canonical implementation of the cart, pricing
// and checkout-link logic that the generated document's embedded script
// mirrors. Keeping a Go twin gives the behavior one testable source of
// truth and powers the editor API's quote endpoint.
package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/menusmith/menusmith/internal/menu"
)

// ParsePrice normalizes a display price string to a number: every
// character outside [0-9.] is stripped before parsing. Anything that
// still fails to parse is worth 0 — a malformed price must never
// poison totals.
func ParsePrice(price string) float64 {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatMoney renders an amount with a currency symbol and exactly two
// decimal places.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Summary holds the computed totals for a cart.
type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// Totals computes the summary for a cart. Tax always applies to the
// subtotal; the delivery fee is added only for delivery orders with
// delivery enabled.
func Totals(c *Cart, cs menu.CartSettings, orderType menu.OrderType) Summary {
	sub := c.Subtotal()
	s := Summary{
		Subtotal: sub,
		Tax:      sub * cs.TaxPercentage / 100,
	}
	if orderType == menu.OrderDelivery && cs.DeliveryEnabled {
		s.DeliveryFee = cs.DeliveryFee
	}
	s.Total = s.Subtotal + s.Tax + s.DeliveryFee
	return s
}

// MeetsMinimum reports whether the cart subtotal reaches the minimum
// order amount. Fees and tax never count toward the minimum.
func MeetsMinimum(c *Cart, cs menu.CartSettings) bool {
	return c.Subtotal() >= cs.MinimumOrderAmount
}
