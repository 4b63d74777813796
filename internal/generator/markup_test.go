package generator

import (
	"strings"
	"testing"

	"github.com/menusmith/menusmith/internal/menu"
)

func testRestaurant() *menu.Restaurant {
	return &menu.Restaurant{
		Info: menu.Info{
			Name:    "Luigi's Trattoria",
			Phone:   "+1 555 0100",
			Address: "12 Via Roma, Springfield",
		},
		Categories: []menu.Category{
			{
				ID:   "starters",
				Name: "Starters",
				Items: []menu.Item{
					{ID: "garlic-bread", Name: "Garlic Bread", Description: "Toasted, with herbs", Price: "$4.99"},
				},
			},
		},
	}
}

func TestBuildMarkupHeader(t *testing.T) {
	r := testRestaurant()
	html := buildMarkup(r, 2026)

	if !strings.Contains(html, "Luigi&#39;s Trattoria") {
		t.Error("expected sanitized restaurant name in header")
	}
	if !strings.Contains(html, `id="category-list"`) {
		t.Error("expected navigation list placeholder")
	}
	if !strings.Contains(html, `id="menu-sections"`) {
		t.Error("expected menu sections placeholder")
	}
	if !strings.Contains(html, `href="tel:+1 555 0100"`) {
		t.Error("expected tel link")
	}
	if !strings.Contains(html, "&copy; 2026 Luigi&#39;s Trattoria") {
		t.Error("expected copyright footer with pinned year")
	}
}

func TestBuildMarkupEscapesName(t *testing.T) {
	r := testRestaurant()
	r.Info.Name = `<script>alert(1)</script>`
	html := buildMarkup(r, 2026)

	if strings.Contains(html, "<script>alert(1)") {
		t.Fatal("unescaped script tag in markup")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped script tag to remain visible as text")
	}
}

func TestBuildMarkupMapEmbed(t *testing.T) {
	r := testRestaurant()
	html := buildMarkup(r, 2026)
	if !strings.Contains(html, "https://www.google.com/maps?q=") {
		t.Error("expected map embed for a restaurant with an address")
	}

	r.Info.Address = ""
	html = buildMarkup(r, 2026)
	if strings.Contains(html, "iframe") {
		t.Error("expected no map embed without an address")
	}
}

func TestBuildMarkupCartConditional(t *testing.T) {
	r := testRestaurant()
	r.CartSettings = menu.DefaultCartSettings()
	html := buildMarkup(r, 2026)
	for _, want := range []string{`id="cart-bar"`, `id="cart-sheet"`, `id="toast"`} {
		if !strings.Contains(html, want) {
			t.Errorf("cart enabled: missing %s", want)
		}
	}

	r.CartSettings.Enabled = false
	html = buildMarkup(r, 2026)
	for _, absent := range []string{"cart-bar", "cart-sheet", "toast", "checkout"} {
		if strings.Contains(html, absent) {
			t.Errorf("cart disabled: found %s", absent)
		}
	}
}

func TestCartMarkupOrderTypes(t *testing.T) {
	cs := menu.DefaultCartSettings()
	cs.DeliveryEnabled = true
	cs.PickupEnabled = true
	html := cartMarkup(cs)
	if !strings.Contains(html, `value="delivery" checked`) {
		t.Error("expected delivery preselected when both modes are on")
	}
	if !strings.Contains(html, `value="pickup"`) {
		t.Error("expected pickup radio")
	}

	cs.DeliveryEnabled = false
	html = cartMarkup(cs)
	if strings.Contains(html, `value="delivery"`) {
		t.Error("expected no delivery radio when delivery is off")
	}
	if !strings.Contains(html, `value="pickup" checked`) {
		t.Error("expected pickup preselected when it is the only mode")
	}

	cs.PickupEnabled = false
	html = cartMarkup(cs)
	if strings.Contains(html, "order-type") {
		t.Error("expected no order-type selector with no fulfilment modes")
	}
}

func TestCartMarkupCheckoutButtons(t *testing.T) {
	cs := menu.DefaultCartSettings()
	cs.AllowSMSCheckout = true
	cs.AllowWhatsAppCheckout = false
	html := cartMarkup(cs)
	if !strings.Contains(html, `id="checkout-sms"`) {
		t.Error("expected SMS checkout button")
	}
	if strings.Contains(html, "checkout-whatsapp") {
		t.Error("expected no WhatsApp button when disabled")
	}
}
