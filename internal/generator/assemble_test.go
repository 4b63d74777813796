package generator

import (
	"strings"
	"testing"

	"github.com/menusmith/menusmith/internal/menu"
)

func TestGenerateDocumentShell(t *testing.T) {
	gen := New(WithYear(2026))
	html := gen.Generate(testRestaurant())

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("expected DOCTYPE prefix")
	}
	if !strings.HasSuffix(strings.TrimSpace(html), "</html>") {
		t.Error("expected closing html tag")
	}
	for _, want := range []string{
		"<title>Luigi&#39;s Trattoria — Menu</title>",
		"<style>", "</style>",
		"<script>", "</script>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen := New(WithYear(2026))
	r := testRestaurant()
	a := gen.Generate(r)
	b := gen.Generate(r)
	if a != b {
		t.Error("same input produced different documents")
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	gen := New(WithYear(2026))
	r := testRestaurant()
	r.CartSettings = menu.CartSettings{}
	gen.Generate(r)
	if r.CartSettings != (menu.CartSettings{}) {
		t.Error("Generate normalized the caller's value")
	}
	if r.TemplateType != "" {
		t.Error("Generate set the caller's template type")
	}
}

func TestGenerateUntitled(t *testing.T) {
	gen := New(WithYear(2026))
	html := gen.Generate(&menu.Restaurant{})
	if !strings.Contains(html, "<title>Menu</title>") {
		t.Errorf("expected fallback title")
	}
}

func TestGenerateFontLink(t *testing.T) {
	gen := New(WithYear(2026))

	r := testRestaurant()
	r.TemplateType = menu.TemplateElegant
	html := gen.Generate(r)
	if !strings.Contains(html, "fonts.googleapis.com") {
		t.Error("expected font stylesheet link for a Google font")
	}

	r.TemplateType = menu.TemplateBasic
	html = gen.Generate(r)
	if strings.Contains(html, "fonts.googleapis.com") {
		t.Error("expected no font link for a system font")
	}
}

func TestGenerateNoDeliveryTracesWhenDisabled(t *testing.T) {
	gen := New(WithYear(2026))
	r := testRestaurant()
	r.CartSettings = menu.DefaultCartSettings()
	r.CartSettings.DeliveryEnabled = false
	r.CartSettings.DeliveryFee = 5

	html := gen.Generate(r)
	for _, absent := range []string{"Delivery fee", `value="delivery"`, "Delivery</label>"} {
		if strings.Contains(html, absent) {
			t.Errorf("delivery disabled: document contains %q", absent)
		}
	}
}

func TestGenerateCartDisabledDocument(t *testing.T) {
	gen := New(WithYear(2026))
	r := testRestaurant()
	r.CartSettings = menu.DefaultCartSettings()
	r.CartSettings.Enabled = false

	html := gen.Generate(r)
	for _, absent := range []string{"cart-bar", "checkout-sms", "orderMessage", "wa.me"} {
		if strings.Contains(html, absent) {
			t.Errorf("cart disabled: document contains %q", absent)
		}
	}
	if !strings.Contains(html, "renderSections") {
		t.Error("menu rendering missing from cart-less document")
	}
}

func TestGenerateWithVisualOverride(t *testing.T) {
	gen := New(WithYear(2026))
	r := testRestaurant()
	override := menu.VisualPreset(menu.TemplateBasic)
	override.PrimaryColor = "#123456"

	html := gen.GenerateWithVisual(r, &override)
	if !strings.Contains(html, "--primary: #123456;") {
		t.Error("expected override primary color in stylesheet")
	}

	plain := gen.Generate(r)
	if strings.Contains(plain, "#123456") {
		t.Error("override leaked into a generation without it")
	}
}

func TestGenerateThemeColorsOverlayPreset(t *testing.T) {
	gen := New(WithYear(2026))
	r := testRestaurant()
	r.ThemeColors.Primary = "#ab12cd"

	html := gen.Generate(r)
	if !strings.Contains(html, "--primary: #ab12cd;") {
		t.Error("expected theme color to override the preset")
	}
}

func TestGenerateEscapedNameEverywhere(t *testing.T) {
	gen := New(WithYear(2026))
	r := testRestaurant()
	r.Info.Name = `<img src=x onerror=alert(1)>`

	html := gen.Generate(r)
	if strings.Contains(html, "<img src=x") {
		t.Fatal("unescaped injection in document")
	}
}
