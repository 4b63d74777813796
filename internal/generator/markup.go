package generator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/menusmith/menusmith/internal/menu"
)

// buildMarkup emits the static HTML skeleton. The navigation list and
// menu sections are empty placeholders filled in by the embedded script
// at load time; rendering them here as well would mean implementing the
// menu rendering twice. Every free-text field is sanitized before it
// lands in a text node or attribute.
func buildMarkup(r *menu.Restaurant, year int) string {
	var b strings.Builder

	name := SanitizeHTML(r.Info.Name)
	phone := SanitizeHTML(r.Info.Phone)
	address := SanitizeHTML(r.Info.Address)
	cs := r.CartSettings

	// Header: name, tel: link, and the navigation placeholder. The nav
	// <ul> is present even with zero categories; an empty list is valid.
	b.WriteString("<header class=\"site-header\" id=\"site-header\">\n  <div class=\"header-inner\">\n")
	if r.Info.Logo != "" {
		fmt.Fprintf(&b, "    <img class=\"header-logo\" src=\"%s\" alt=\"%s\">\n", SanitizeHTML(r.Info.Logo), name)
	}
	fmt.Fprintf(&b, "    <h1 class=\"restaurant-name\">%s</h1>\n", name)
	fmt.Fprintf(&b, "    <a class=\"phone-link\" href=\"tel:%s\">%s</a>\n", phone, phone)
	b.WriteString("  </div>\n")
	b.WriteString("  <nav class=\"category-nav\" id=\"category-nav\"><ul id=\"category-list\"></ul></nav>\n")
	b.WriteString("</header>\n")

	b.WriteString("<main class=\"menu\" id=\"menu-sections\"></main>\n")

	// Location block. The map iframe is a progressive enhancement: the
	// document works with it blocked.
	b.WriteString("<section class=\"location\">\n  <h2>Find Us</h2>\n")
	fmt.Fprintf(&b, "  <p class=\"address\">%s</p>\n", address)
	if r.Info.Address != "" {
		fmt.Fprintf(&b, "  <iframe src=\"https://www.google.com/maps?q=%s&amp;output=embed\" loading=\"lazy\" title=\"Map\"></iframe>\n",
			url.QueryEscape(r.Info.Address))
	}
	fmt.Fprintf(&b, "  <a class=\"contact-link\" href=\"tel:%s\">Call us to order</a>\n", phone)
	b.WriteString("</section>\n")

	fmt.Fprintf(&b, "<footer class=\"site-footer\"><p>&copy; %d %s</p></footer>\n", year, name)

	if cs.Enabled {
		b.WriteString(cartMarkup(cs))
	}

	return b.String()
}

// cartMarkup emits the cart bar, overlay, and bottom sheet. Checkout
// buttons appear per enabled channel, and the order-type selector only
// when at least one fulfilment mode is on.
func cartMarkup(cs menu.CartSettings) string {
	var b strings.Builder

	b.WriteString("<div class=\"cart-bar\" id=\"cart-bar\">\n")
	b.WriteString("  <button class=\"cart-open\" id=\"cart-open\">View Order <span class=\"cart-count\" id=\"cart-count\">0</span></button>\n")
	b.WriteString("</div>\n")
	b.WriteString("<div class=\"cart-overlay\" id=\"cart-overlay\"></div>\n")
	b.WriteString("<div class=\"cart-sheet\" id=\"cart-sheet\" role=\"dialog\" aria-label=\"Your order\">\n")
	b.WriteString("  <div class=\"cart-sheet-header\">\n    <h2>Your Order</h2>\n    <button class=\"cart-close\" id=\"cart-close\" aria-label=\"Close\">&times;</button>\n  </div>\n")

	if cs.DeliveryEnabled || cs.PickupEnabled {
		b.WriteString("  <div class=\"order-type\" id=\"order-type\">\n")
		def := cs.DefaultOrderType()
		if cs.DeliveryEnabled {
			b.WriteString(orderTypeRadio(menu.OrderDelivery, "Delivery", def))
		}
		if cs.PickupEnabled {
			b.WriteString(orderTypeRadio(menu.OrderPickup, "Pickup", def))
		}
		b.WriteString("  </div>\n")
	}

	b.WriteString("  <ul class=\"cart-lines\" id=\"cart-lines\"></ul>\n")
	b.WriteString("  <div class=\"cart-totals\" id=\"cart-totals\"></div>\n")
	b.WriteString("  <p class=\"minimum-note\" id=\"minimum-note\" hidden></p>\n")
	b.WriteString("  <div class=\"cart-actions\">\n")
	if cs.AllowSMSCheckout {
		b.WriteString("    <button class=\"checkout-btn sms\" id=\"checkout-sms\">Order via SMS</button>\n")
	}
	if cs.AllowWhatsAppCheckout {
		b.WriteString("    <button class=\"checkout-btn whatsapp\" id=\"checkout-whatsapp\">Order via WhatsApp</button>\n")
	}
	b.WriteString("  </div>\n</div>\n")
	b.WriteString("<div class=\"toast\" id=\"toast\" role=\"status\"></div>\n")

	return b.String()
}

func orderTypeRadio(value menu.OrderType, label string, def menu.OrderType) string {
	checked := ""
	if value == def {
		checked = " checked"
	}
	return fmt.Sprintf("    <label><input type=\"radio\" name=\"order-type\" value=\"%s\"%s> %s</label>\n", value, checked, label)
}
