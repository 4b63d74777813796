package generator

import (
	"fmt"
	"strings"

	"github.com/menusmith/menusmith/internal/menu"
)

// buildStylesheet emits the complete inline stylesheet for a document.
// Everything is parameterized through CSS custom properties declared at
// the top; the rule bodies below never hardcode a theme color. Cart
// rules are emitted only when the cart is enabled, and hover/shadow
// rules only when the corresponding visual flags are on, so disabled
// features leave no dead CSS in the exported file.
func buildStylesheet(vs menu.VisualSettings, cart menu.CartSettings) string {
	var b strings.Builder

	// Light-mode surfaces come from the visual settings; dark mode swaps
	// the neutral surfaces for a fixed dark palette at emission time.
	// The exported document must look the same on every device, so this
	// is a build-time branch, not a prefers-color-scheme media query.
	bg, surface, border, text, muted := vs.BackgroundColor, "#ffffff", "#e5e7eb", vs.TextColor, "#6b7280"
	if vs.DarkMode {
		bg, surface, border, text, muted = "#14161f", "#1d2029", "#2a2f3d", "#e6e8f0", "#9aa3b5"
	}

	shadow, shadowLG := "0 1px 3px rgba(0,0,0,0.1)", "0 8px 24px rgba(0,0,0,0.14)"
	if vs.DarkMode {
		shadow, shadowLG = "0 1px 3px rgba(0,0,0,0.4)", "0 8px 24px rgba(0,0,0,0.5)"
	}
	if !vs.Shadows {
		shadow, shadowLG = "none", "none"
	}

	b.WriteString("/* ============ Theme Variables ============ */\n")
	fmt.Fprintf(&b, `:root {
  --primary: %s;
  --primary-dark: %s;
  --primary-light: %s;
  --secondary: %s;
  --accent: %s;
  --accent-dark: %s;
  --bg: %s;
  --surface: %s;
  --border: %s;
  --text: %s;
  --muted: %s;
  --radius: %s;
  --font: %s;
  --shadow: %s;
  --shadow-lg: %s;
}
`,
		vs.PrimaryColor,
		AdjustColor(vs.PrimaryColor, -15),
		AdjustColor(vs.PrimaryColor, 25),
		vs.SecondaryColor,
		vs.AccentColor,
		AdjustColor(vs.AccentColor, -15),
		bg, surface, border, text, muted,
		vs.ButtonRadius,
		fontStack(vs.FontFamily),
		shadow, shadowLG,
	)

	b.WriteString(baseCSS)

	if vs.HoverEffects {
		b.WriteString(hoverCSS)
	}

	if cart.Enabled {
		b.WriteString(cartCSS)
		b.WriteString(toastPositionCSS(vs.ToastPosition))
	}

	b.WriteString(responsiveCSS)
	if cart.Enabled {
		b.WriteString(cartResponsiveCSS)
	}

	return b.String()
}

// systemFonts are families that need no external stylesheet.
var systemFonts = map[string]bool{
	"system-ui":       true,
	"sans-serif":      true,
	"serif":           true,
	"monospace":       true,
	"Arial":           true,
	"Helvetica":       true,
	"Georgia":         true,
	"Times New Roman": true,
}

// fontStack wraps the configured family in a safe fallback stack.
func fontStack(family string) string {
	if family == "" || family == "system-ui" {
		return `system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`
	}
	quoted := family
	if strings.ContainsAny(family, " ") {
		quoted = `"` + family + `"`
	}
	return quoted + `, system-ui, -apple-system, sans-serif`
}

// toastPositionCSS pins the toast to the configured screen corner.
func toastPositionCSS(pos menu.ToastPosition) string {
	var placement string
	switch pos {
	case menu.ToastTopLeft:
		placement = "top: 16px; left: 16px;"
	case menu.ToastTopRight:
		placement = "top: 16px; right: 16px;"
	case menu.ToastBottomLeft:
		placement = "bottom: 88px; left: 16px;"
	case menu.ToastBottomRight:
		placement = "bottom: 88px; right: 16px;"
	default: // bottom-center
		placement = "bottom: 88px; left: 50%; transform: translateX(-50%);"
	}
	return "/* ============ Toast ============ */\n.toast { position: fixed; " + placement + ` z-index: 60; background: var(--text); color: var(--bg); padding: 10px 18px; border-radius: var(--radius); box-shadow: var(--shadow-lg); font-size: 0.9rem; opacity: 0; pointer-events: none; transition: opacity 0.25s ease; }
.toast.visible { opacity: 1; }
`
}

const baseCSS = `
/* ============ Reset & Base ============ */
*, *::before, *::after { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; scroll-padding-top: 120px; }
body {
  font-family: var(--font);
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
  padding-bottom: 96px;
}
img { max-width: 100%; display: block; }
a { color: var(--primary); text-decoration: none; }

/* ============ Header ============ */
.site-header {
  position: sticky;
  top: 0;
  z-index: 40;
  background: var(--surface);
  border-bottom: 1px solid var(--border);
  box-shadow: var(--shadow);
  transition: transform 0.25s ease;
}
.site-header.header-hidden { transform: translateY(-100%); }
.header-inner {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 14px 16px 8px;
}
.header-logo { width: 44px; height: 44px; object-fit: cover; border-radius: 50%; }
.restaurant-name { font-size: 1.35rem; color: var(--primary); flex: 1; }
.phone-link { font-size: 0.9rem; color: var(--secondary); white-space: nowrap; }

/* ============ Category Navigation ============ */
.category-nav { overflow-x: auto; -webkit-overflow-scrolling: touch; scrollbar-width: none; }
.category-nav::-webkit-scrollbar { display: none; }
.category-nav ul {
  display: flex;
  gap: 8px;
  list-style: none;
  padding: 6px 16px 12px;
  white-space: nowrap;
}
.category-nav a {
  display: inline-block;
  padding: 6px 14px;
  border-radius: var(--radius);
  border: 1px solid var(--border);
  background: var(--surface);
  color: var(--text);
  font-size: 0.85rem;
}
.category-nav a.active {
  background: var(--primary);
  border-color: var(--primary);
  color: #fff;
}

/* ============ Menu Sections ============ */
.menu { max-width: 960px; margin: 0 auto; padding: 24px 16px; }
.menu-section { margin-bottom: 36px; }
.menu-section h2 {
  font-size: 1.2rem;
  color: var(--secondary);
  border-bottom: 2px solid var(--accent);
  padding-bottom: 6px;
  margin-bottom: 16px;
}
.section-empty { color: var(--muted); font-size: 0.9rem; font-style: italic; }
.menu-grid { display: grid; grid-template-columns: 1fr; gap: 14px; }
.menu-item {
  display: flex;
  gap: 12px;
  align-items: flex-start;
  background: var(--surface);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  padding: 14px;
  box-shadow: var(--shadow);
  transition: transform 0.15s ease, box-shadow 0.15s ease;
}
.item-image { width: 64px; height: 64px; object-fit: cover; border-radius: var(--radius); flex-shrink: 0; }
.item-body { flex: 1; min-width: 0; }
.item-name { font-size: 1rem; font-weight: 600; }
.item-desc { font-size: 0.85rem; color: var(--muted); margin-top: 2px; }
.item-side { display: flex; flex-direction: column; align-items: flex-end; gap: 8px; }
.item-price { font-weight: 700; color: var(--primary); white-space: nowrap; }
.add-btn {
  background: var(--primary);
  color: #fff;
  border: none;
  border-radius: var(--radius);
  padding: 7px 14px;
  font-size: 0.8rem;
  font-family: var(--font);
  cursor: pointer;
  white-space: nowrap;
  transition: background 0.15s ease;
}
.add-btn.in-cart { background: var(--accent); }

/* ============ Location ============ */
.location { max-width: 960px; margin: 0 auto; padding: 8px 16px 32px; }
.location h2 { font-size: 1.1rem; color: var(--secondary); margin-bottom: 8px; }
.location .address { color: var(--muted); margin-bottom: 12px; }
.location iframe {
  width: 100%;
  height: 220px;
  border: 1px solid var(--border);
  border-radius: var(--radius);
  margin-bottom: 12px;
}
.contact-link { font-weight: 600; }

/* ============ Footer ============ */
.site-footer {
  text-align: center;
  color: var(--muted);
  font-size: 0.8rem;
  padding: 24px 16px;
  border-top: 1px solid var(--border);
}
`

const hoverCSS = `
/* ============ Hover Effects ============ */
.menu-item:hover { transform: translateY(-2px); box-shadow: var(--shadow-lg); }
.add-btn:hover { background: var(--primary-dark); }
.add-btn.in-cart:hover { background: var(--accent-dark); }
.category-nav a:hover { border-color: var(--primary); color: var(--primary); }
.category-nav a.active:hover { color: #fff; }
`

const cartCSS = `
/* ============ Cart Bar ============ */
.cart-bar {
  position: fixed;
  left: 0;
  right: 0;
  bottom: 0;
  z-index: 50;
  background: var(--surface);
  border-top: 1px solid var(--border);
  padding: 10px 16px;
  box-shadow: var(--shadow-lg);
}
.cart-open {
  width: 100%;
  background: var(--primary);
  color: #fff;
  border: none;
  border-radius: var(--radius);
  padding: 12px;
  font-size: 1rem;
  font-family: var(--font);
  cursor: pointer;
}
.cart-count {
  display: inline-block;
  min-width: 24px;
  margin-left: 8px;
  background: var(--accent);
  border-radius: 999px;
  padding: 1px 8px;
  font-size: 0.85rem;
}

/* ============ Cart Sheet ============ */
.cart-overlay {
  position: fixed;
  inset: 0;
  z-index: 51;
  background: rgba(0,0,0,0.45);
  opacity: 0;
  pointer-events: none;
  transition: opacity 0.2s ease;
}
.cart-overlay.visible { opacity: 1; pointer-events: auto; }
.cart-sheet {
  position: fixed;
  left: 0;
  right: 0;
  bottom: 0;
  z-index: 52;
  max-height: 80vh;
  overflow-y: auto;
  background: var(--surface);
  border-radius: var(--radius) var(--radius) 0 0;
  box-shadow: var(--shadow-lg);
  padding: 18px 16px 24px;
  transform: translateY(100%);
  transition: transform 0.25s ease;
}
.cart-sheet.open { transform: translateY(0); }
.cart-sheet-header { display: flex; align-items: center; justify-content: space-between; margin-bottom: 12px; }
.cart-sheet-header h2 { font-size: 1.1rem; color: var(--secondary); }
.cart-close {
  background: none;
  border: none;
  font-size: 1.4rem;
  color: var(--muted);
  cursor: pointer;
  line-height: 1;
}

/* ============ Order Type ============ */
.order-type { display: flex; gap: 16px; margin-bottom: 14px; font-size: 0.9rem; }
.order-type label { display: flex; align-items: center; gap: 6px; cursor: pointer; }
.order-type input { accent-color: var(--primary); }

/* ============ Cart Lines ============ */
.cart-lines { list-style: none; margin-bottom: 14px; }
.cart-lines li {
  display: flex;
  align-items: center;
  gap: 10px;
  padding: 8px 0;
  border-bottom: 1px solid var(--border);
  font-size: 0.9rem;
}
.cart-empty { color: var(--muted); font-style: italic; border-bottom: none; }
.line-name { flex: 1; min-width: 0; }
.line-qty { display: flex; align-items: center; gap: 8px; }
.qty-btn {
  width: 26px;
  height: 26px;
  border: 1px solid var(--border);
  border-radius: 50%;
  background: var(--surface);
  color: var(--text);
  font-size: 0.9rem;
  cursor: pointer;
  line-height: 1;
}
.line-total { min-width: 64px; text-align: right; font-weight: 600; }

/* ============ Totals ============ */
.cart-totals { font-size: 0.9rem; margin-bottom: 16px; }
.cart-totals .row { display: flex; justify-content: space-between; padding: 3px 0; }
.cart-totals .row.grand { font-weight: 700; font-size: 1.05rem; border-top: 1px solid var(--border); margin-top: 6px; padding-top: 8px; }
.minimum-note { color: var(--accent-dark); font-size: 0.8rem; margin-bottom: 10px; }

/* ============ Checkout ============ */
.cart-actions { display: flex; flex-direction: column; gap: 10px; }
.checkout-btn {
  display: block;
  text-align: center;
  border: none;
  border-radius: var(--radius);
  padding: 12px;
  font-size: 0.95rem;
  font-family: var(--font);
  color: #fff;
  cursor: pointer;
}
.checkout-btn.sms { background: var(--secondary); }
.checkout-btn.whatsapp { background: #25d366; }
.checkout-btn:disabled { opacity: 0.45; cursor: not-allowed; }
`

const responsiveCSS = `
/* ============ Responsive ============ */
@media (min-width: 768px) {
  .header-inner { padding: 18px 24px 10px; }
  .restaurant-name { font-size: 1.6rem; }
  .menu { padding: 32px 24px; }
  .menu-grid { grid-template-columns: 1fr 1fr; }
  .location iframe { height: 300px; }
}
`

const cartResponsiveCSS = `@media (min-width: 768px) {
  .cart-bar { padding: 12px 24px; }
  .cart-open { max-width: 420px; margin: 0 auto; display: block; }
  .cart-sheet { left: 50%; right: auto; width: 480px; transform: translate(-50%, 100%); }
  .cart-sheet.open { transform: translate(-50%, 0); }
  .cart-actions { flex-direction: row; }
  .cart-actions .checkout-btn { flex: 1; }
}
`
