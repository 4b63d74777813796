package generator

import (
	"strings"
	"testing"

	"github.com/menusmith/menusmith/internal/menu"
)

func TestBuildScriptEmbedsMenu(t *testing.T) {
	r := testRestaurant()
	js := buildScript(r)

	if !strings.Contains(js, `"Garlic Bread"`) {
		t.Error("expected item name in embedded data")
	}
	if !strings.Contains(js, `"id":"garlic-bread"`) {
		t.Error("expected explicit item id to be kept")
	}
	if !strings.Contains(js, `"$4.99"`) {
		t.Error("expected price string in embedded data")
	}
}

func TestBuildScriptFallsBackToSluggedIDs(t *testing.T) {
	r := testRestaurant()
	r.Categories[0].ID = ""
	r.Categories[0].Items[0].ID = ""
	js := buildScript(r)

	if !strings.Contains(js, `"id":"starters"`) {
		t.Error("expected slugged category id")
	}
	if !strings.Contains(js, `"id":"garlic-bread"`) {
		t.Error("expected slugged item id")
	}
}

func TestBuildScriptEscapesClosingTag(t *testing.T) {
	// A literal </script> inside embedded data would terminate the
	// script element early. json.Marshal escapes < and >, so the
	// sequence must never appear.
	r := testRestaurant()
	r.Categories[0].Items[0].Description = `</script><script>alert(1)</script>`
	js := buildScript(r)

	if strings.Contains(js, "</script>") {
		t.Fatal("embedded data contains a literal </script>")
	}
}

func TestBuildScriptStripsMarkdownFromText(t *testing.T) {
	r := testRestaurant()
	r.Categories[0].Items[0].Name = "**Garlic** Bread"
	js := buildScript(r)

	if !strings.Contains(js, `"Garlic Bread"`) {
		t.Error("expected markdown stripped from item name")
	}
	if strings.Contains(js, "**Garlic**") {
		t.Error("markdown syntax leaked into embedded data")
	}
}

func TestBuildScriptCartConditional(t *testing.T) {
	r := testRestaurant()
	r.CartSettings = menu.DefaultCartSettings()
	js := buildScript(r)
	for _, want := range []string{"addToCart", "orderMessage", "smsLink", "whatsappLink"} {
		if !strings.Contains(js, want) {
			t.Errorf("cart enabled: missing %s", want)
		}
	}

	r.CartSettings.Enabled = false
	js = buildScript(r)
	// The renderer still probes for addToCart via typeof, but the cart
	// runtime itself must be gone.
	for _, absent := range []string{"orderMessage", "smsLink", "var cart = []"} {
		if strings.Contains(js, absent) {
			t.Errorf("cart disabled: found %s", absent)
		}
	}
	// Rendering still works without the cart.
	if !strings.Contains(js, "renderSections") {
		t.Error("cart disabled: menu rendering missing")
	}
}

func TestBuildScriptDeliveryFeeConditional(t *testing.T) {
	r := testRestaurant()
	r.CartSettings = menu.DefaultCartSettings()
	r.CartSettings.DeliveryEnabled = false
	r.CartSettings.DeliveryFee = 3.50
	menu.Normalize(r)
	js := buildScript(r)

	if strings.Contains(js, "Delivery fee") {
		t.Error("delivery-fee label emitted with delivery disabled")
	}
	if strings.Contains(js, `"deliveryFee":3.5`) {
		t.Error("delivery fee amount emitted with delivery disabled")
	}
	if !strings.Contains(js, `var orderType = "pickup";`) {
		t.Error("expected pickup as the default order type")
	}

	r.CartSettings.DeliveryEnabled = true
	r.CartSettings.DeliveryFee = 3.50
	js = buildScript(r)
	if !strings.Contains(js, "Delivery fee") {
		t.Error("expected delivery-fee logic with delivery enabled")
	}
	if !strings.Contains(js, `var orderType = "delivery";`) {
		t.Error("expected delivery as the default order type")
	}
}
