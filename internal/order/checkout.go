package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/menusmith/menusmith/internal/menu"
)

// CheckoutMessage builds the human-readable order summary placed in the
// checkout deep link: itemized lines, subtotal, tax and delivery fee
// when they apply, total, and the order type. The embedded script
// produces exactly this text.
func CheckoutMessage(info menu.Info, c *Cart, cs menu.CartSettings, orderType menu.OrderType) string {
	t := Totals(c, cs, orderType)

	lines := []string{"Order from " + info.Name, ""}
	for _, l := range c.Lines() {
		lines = append(lines, fmt.Sprintf("%dx %s - %s", l.Quantity, l.Name, FormatMoney(ParsePrice(l.Price)*float64(l.Quantity))))
	}
	lines = append(lines, "", "Subtotal: "+FormatMoney(t.Subtotal))
	if t.Tax > 0 {
		lines = append(lines, "Tax: "+FormatMoney(t.Tax))
	}
	if t.DeliveryFee > 0 {
		lines = append(lines, "Delivery fee: "+FormatMoney(t.DeliveryFee))
	}
	lines = append(lines, "Total: "+FormatMoney(t.Total))
	if orderType != menu.OrderNone {
		lines = append(lines, "Order type: "+string(orderType))
	}
	return strings.Join(lines, "\n")
}

// SMSLink returns an sms: deep link with the order summary as the body.
func SMSLink(phone, message string) string {
	return "sms:" + phone + "?body=" + encodeComponent(message)
}

// encodeComponent matches JavaScript's encodeURIComponent: spaces are
// %20, not +, since messaging apps take the body verbatim.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// WhatsAppLink returns a wa.me deep link; the phone is reduced to
// digits, which is the only form wa.me accepts.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + encodeComponent(message)
}
