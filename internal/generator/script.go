package generator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/menusmith/menusmith/internal/menu"
)

// scriptItem is the shape of one item as embedded in the generated
// script. Text fields are markdown-stripped but not HTML-escaped: the
// runtime inserts them via textContent, and json.Marshal escapes <, >
// and & inside the string literals, which is the escaping this context
// needs. Reusing HTML-escaped text here would double-encode.
type scriptItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
}

type scriptCategory struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Items []scriptItem `json:"items"`
}

type scriptInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// scriptSettings is the cart configuration the runtime needs. Checkout
// phone numbers and flags pass through as-is; button text is stripped
// of markdown like every other free-text field.
type scriptSettings struct {
	Enabled               bool    `json:"enabled"`
	AllowSMSCheckout      bool    `json:"allowSmsCheckout"`
	AllowWhatsAppCheckout bool    `json:"allowWhatsAppCheckout"`
	AllowQuantityChange   bool    `json:"allowQuantityChange"`
	ShowItemImages        bool    `json:"showItemImages"`
	ButtonText            string  `json:"buttonText"`
	TaxPercentage         float64 `json:"taxPercentage"`
	MinimumOrderAmount    float64 `json:"minimumOrderAmount"`
	DeliveryEnabled       bool    `json:"deliveryEnabled"`
	DeliveryFee           float64 `json:"deliveryFee"`
	PickupEnabled         bool    `json:"pickupEnabled"`
	SMSPhone              string  `json:"smsPhone"`
	WhatsAppPhone         string  `json:"whatsappPhone"`
}

// buildScript emits the embedded client script: the serialized menu
// data plus the self-contained runtime. The script shares no code with
// the editor; it must run standalone in the exported file.
func buildScript(r *menu.Restaurant) string {
	cs := r.CartSettings

	categories := make([]scriptCategory, 0, len(r.Categories))
	for _, cat := range r.Categories {
		sc := scriptCategory{
			ID:    cat.ID,
			Name:  StripMarkdown(cat.Name),
			Items: make([]scriptItem, 0, len(cat.Items)),
		}
		if sc.ID == "" {
			sc.ID = Slugify(cat.Name)
		}
		for _, item := range cat.Items {
			si := scriptItem{
				ID:          item.ID,
				Name:        StripMarkdown(item.Name),
				Description: StripMarkdown(item.Description),
				Price:       StripMarkdown(item.Price),
				Image:       item.Image,
			}
			if si.ID == "" {
				si.ID = Slugify(item.Name)
			}
			sc.Items = append(sc.Items, si)
		}
		categories = append(categories, sc)
	}

	settings := scriptSettings{
		Enabled:               cs.Enabled,
		AllowSMSCheckout:      cs.AllowSMSCheckout,
		AllowWhatsAppCheckout: cs.AllowWhatsAppCheckout,
		AllowQuantityChange:   cs.AllowQuantityChange,
		ShowItemImages:        cs.ShowItemImages,
		ButtonText:            StripMarkdown(cs.ButtonText),
		TaxPercentage:         cs.TaxPercentage,
		MinimumOrderAmount:    cs.MinimumOrderAmount,
		DeliveryEnabled:       cs.DeliveryEnabled,
		DeliveryFee:           cs.DeliveryFee,
		PickupEnabled:         cs.PickupEnabled,
		SMSPhone:              cs.SMSPhone,
		WhatsAppPhone:         cs.WhatsAppPhone,
	}
	if !cs.DeliveryEnabled {
		settings.DeliveryFee = 0
	}

	info := scriptInfo{
		Name:  StripMarkdown(r.Info.Name),
		Phone: r.Info.Phone,
	}

	var b strings.Builder
	b.WriteString("(function() {\n  \"use strict\";\n\n")
	b.WriteString("  var MENU = " + mustJSON(categories) + ";\n")
	b.WriteString("  var SETTINGS = " + mustJSON(settings) + ";\n")
	b.WriteString("  var INFO = " + mustJSON(info) + ";\n")
	b.WriteString(jsHelpers)

	if cs.Enabled {
		b.WriteString("\n  var orderType = " + strconv.Quote(string(cs.DefaultOrderType())) + ";\n")
		if cs.DeliveryEnabled {
			b.WriteString(jsDeliveryFee)
		} else {
			b.WriteString(jsNoDeliveryFee)
		}
		b.WriteString(jsCart)
	}

	b.WriteString(jsRender)
	b.WriteString(jsScrollSpy)
	b.WriteString(jsHeader)
	b.WriteString(jsInit)
	b.WriteString("})();\n")
	return b.String()
}

// mustJSON serializes embedded data. Marshalling these view structs
// cannot fail; a failure would be a programming error.
func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

const jsHelpers = `
  // ===== Helpers =====
  function parsePrice(p) {
    var n = parseFloat(String(p == null ? "" : p).replace(/[^0-9.]/g, ""));
    return isNaN(n) ? 0 : n;
  }
  function money(n) { return "$" + n.toFixed(2); }
  function slugify(name) {
    return String(name).toLowerCase().trim()
      .replace(/\s+/g, "-")
      .replace(/[^a-z0-9-]/g, "")
      .replace(/-+/g, "-")
      .replace(/^-|-$/g, "");
  }
  function itemId(item) { return item.id || slugify(item.name); }
  function categoryId(cat) { return cat.id || slugify(cat.name); }
  function el(tag, className, text) {
    var node = document.createElement(tag);
    if (className) node.className = className;
    if (text != null) node.textContent = text;
    return node;
  }
`

// jsDeliveryFee is the fee logic emitted when delivery is enabled. Its
// no-op twin below keeps every fee reference out of documents that have
// delivery switched off.
const jsDeliveryFee = `
  // ===== Delivery fee =====
  function currentFee() {
    return orderType === "delivery" ? (SETTINGS.deliveryFee || 0) : 0;
  }
  function feeRow(t, row) {
    if (t.fee > 0) row("Delivery fee", t.fee, false);
  }
  function feeMessageLine(t, lines) {
    if (t.fee > 0) lines.push("Delivery fee: " + money(t.fee));
  }
`

const jsNoDeliveryFee = `
  function currentFee() { return 0; }
  function feeRow(t, row) {}
  function feeMessageLine(t, lines) {}
`

const jsCart = `
  // ===== Cart state =====
  var cart = [];

  function findLine(id) {
    for (var i = 0; i < cart.length; i++) {
      if (cart[i].id === id) return cart[i];
    }
    return null;
  }

  function cartCount() {
    var n = 0;
    for (var i = 0; i < cart.length; i++) n += cart[i].qty;
    return n;
  }

  function addToCart(item) {
    var id = itemId(item);
    var line = findLine(id);
    if (line) {
      line.qty += 1;
    } else {
      cart.push({ id: id, name: item.name, price: item.price, qty: 1 });
    }
    refreshCart();
    showToast(item.name + " added to order");
  }

  function removeFromCart(id) {
    for (var i = 0; i < cart.length; i++) {
      if (cart[i].id !== id) continue;
      if (cart[i].qty > 1) {
        cart[i].qty -= 1;
      } else {
        cart.splice(i, 1);
      }
      refreshCart();
      return;
    }
  }

  function subtotal() {
    var s = 0;
    for (var i = 0; i < cart.length; i++) {
      s += parsePrice(cart[i].price) * cart[i].qty;
    }
    return s;
  }

  function totals() {
    var sub = subtotal();
    var tax = sub * (SETTINGS.taxPercentage || 0) / 100;
    var fee = currentFee();
    return { subtotal: sub, tax: tax, fee: fee, total: sub + tax + fee };
  }

  function meetsMinimum() {
    return subtotal() >= (SETTINGS.minimumOrderAmount || 0);
  }

  // ===== Checkout links =====
  function orderMessage() {
    var t = totals();
    var lines = ["Order from " + INFO.name, ""];
    for (var i = 0; i < cart.length; i++) {
      lines.push(cart[i].qty + "x " + cart[i].name + " - " + money(parsePrice(cart[i].price) * cart[i].qty));
    }
    lines.push("");
    lines.push("Subtotal: " + money(t.subtotal));
    if (t.tax > 0) lines.push("Tax: " + money(t.tax));
    feeMessageLine(t, lines);
    lines.push("Total: " + money(t.total));
    if (orderType) lines.push("Order type: " + orderType);
    return lines.join("\n");
  }

  function smsLink() {
    return "sms:" + SETTINGS.smsPhone + "?body=" + encodeURIComponent(orderMessage());
  }

  function whatsappLink() {
    var digits = String(SETTINGS.whatsappPhone).replace(/[^0-9]/g, "");
    return "https://wa.me/" + digits + "?text=" + encodeURIComponent(orderMessage());
  }

  // ===== Cart UI =====
  // Every mutation re-renders the whole cart UI; no incremental
  // patching, so the DOM always matches the state.
  function refreshCart() {
    var count = document.getElementById("cart-count");
    if (count) count.textContent = String(cartCount());

    var buttons = document.querySelectorAll(".add-btn");
    for (var i = 0; i < buttons.length; i++) {
      var id = buttons[i].getAttribute("data-item-id");
      if (findLine(id)) {
        buttons[i].classList.add("in-cart");
      } else {
        buttons[i].classList.remove("in-cart");
      }
    }

    renderCartLines();
    renderTotals();
    updateCheckoutState();
  }

  function renderCartLines() {
    var list = document.getElementById("cart-lines");
    if (!list) return;
    list.innerHTML = "";
    if (cart.length === 0) {
      list.appendChild(el("li", "cart-empty", "Your order is empty"));
      return;
    }
    for (var i = 0; i < cart.length; i++) {
      (function(line) {
        var li = el("li", null, null);
        li.appendChild(el("span", "line-name", line.name));
        var qty = el("span", "line-qty", null);
        if (SETTINGS.allowQuantityChange) {
          var minus = el("button", "qty-btn", "−");
          minus.addEventListener("click", function() { removeFromCart(line.id); });
          qty.appendChild(minus);
          qty.appendChild(el("span", null, String(line.qty)));
          var plus = el("button", "qty-btn", "+");
          plus.addEventListener("click", function() {
            addToCart({ id: line.id, name: line.name, price: line.price });
          });
          qty.appendChild(plus);
        } else {
          qty.appendChild(el("span", null, "x" + line.qty));
        }
        li.appendChild(qty);
        li.appendChild(el("span", "line-total", money(parsePrice(line.price) * line.qty)));
        list.appendChild(li);
      })(cart[i]);
    }
  }

  function renderTotals() {
    var box = document.getElementById("cart-totals");
    if (!box) return;
    box.innerHTML = "";
    var t = totals();
    function row(label, amount, grand) {
      var div = el("div", grand ? "row grand" : "row", null);
      div.appendChild(el("span", null, label));
      div.appendChild(el("span", null, money(amount)));
      box.appendChild(div);
    }
    row("Subtotal", t.subtotal, false);
    if (SETTINGS.taxPercentage > 0) row("Tax", t.tax, false);
    feeRow(t, row);
    row("Total", t.total, true);
  }

  // The minimum applies to the subtotal only; fees never count toward
  // it, so this re-runs on order-type changes too. An empty cart stays
  // disabled even when the minimum is zero.
  function updateCheckoutState() {
    var ok = cart.length > 0 && meetsMinimum();
    var ids = ["checkout-sms", "checkout-whatsapp"];
    for (var i = 0; i < ids.length; i++) {
      var btn = document.getElementById(ids[i]);
      if (btn) btn.disabled = !ok;
    }
    var note = document.getElementById("minimum-note");
    if (note) {
      if (cart.length > 0 && !meetsMinimum()) {
        note.hidden = false;
        note.textContent = "Minimum order is " + money(SETTINGS.minimumOrderAmount);
      } else {
        note.hidden = true;
      }
    }
  }

  var toastTimer = null;
  function showToast(message) {
    var toast = document.getElementById("toast");
    if (!toast) return;
    toast.textContent = message;
    toast.classList.add("visible");
    if (toastTimer) clearTimeout(toastTimer);
    toastTimer = setTimeout(function() { toast.classList.remove("visible"); }, 2000);
  }

  function setupCartUI() {
    var sheet = document.getElementById("cart-sheet");
    var overlay = document.getElementById("cart-overlay");
    function openSheet() {
      sheet.classList.add("open");
      overlay.classList.add("visible");
    }
    function closeSheet() {
      sheet.classList.remove("open");
      overlay.classList.remove("visible");
    }

    var open = document.getElementById("cart-open");
    if (open) open.addEventListener("click", openSheet);
    var close = document.getElementById("cart-close");
    if (close) close.addEventListener("click", closeSheet);
    if (overlay) overlay.addEventListener("click", closeSheet);

    var radios = document.querySelectorAll('input[name="order-type"]');
    for (var i = 0; i < radios.length; i++) {
      radios[i].addEventListener("change", function() {
        orderType = this.value;
        renderTotals();
        updateCheckoutState();
      });
    }

    var sms = document.getElementById("checkout-sms");
    if (sms) sms.addEventListener("click", function() { window.open(smsLink(), "_blank"); });
    var wa = document.getElementById("checkout-whatsapp");
    if (wa) wa.addEventListener("click", function() { window.open(whatsappLink(), "_blank"); });
  }
`

const jsRender = `
  // ===== Menu rendering =====
  function renderNav() {
    var list = document.getElementById("category-list");
    if (!list) return;
    for (var i = 0; i < MENU.length; i++) {
      var li = document.createElement("li");
      var a = document.createElement("a");
      a.href = "#section-" + categoryId(MENU[i]);
      a.textContent = MENU[i].name;
      li.appendChild(a);
      list.appendChild(li);
    }
  }

  function renderSections() {
    var root = document.getElementById("menu-sections");
    if (!root) return;
    for (var i = 0; i < MENU.length; i++) {
      var cat = MENU[i];
      var section = el("section", "menu-section", null);
      section.id = "section-" + categoryId(cat);
      section.appendChild(el("h2", null, cat.name));
      if (!cat.items || cat.items.length === 0) {
        section.appendChild(el("p", "section-empty", "Nothing here yet"));
        root.appendChild(section);
        continue;
      }
      var grid = el("div", "menu-grid", null);
      for (var j = 0; j < cat.items.length; j++) {
        grid.appendChild(renderItem(cat.items[j]));
      }
      section.appendChild(grid);
      root.appendChild(section);
    }
  }

  function renderItem(item) {
    var card = el("article", "menu-item", null);
    if (SETTINGS.showItemImages && item.image) {
      var img = document.createElement("img");
      img.className = "item-image";
      img.src = item.image;
      img.alt = item.name;
      card.appendChild(img);
    }
    var body = el("div", "item-body", null);
    body.appendChild(el("div", "item-name", item.name));
    if (item.description) {
      body.appendChild(el("div", "item-desc", item.description));
    }
    card.appendChild(body);
    var side = el("div", "item-side", null);
    side.appendChild(el("span", "item-price", item.price));
    if (SETTINGS.enabled && typeof addToCart === "function") {
      var btn = el("button", "add-btn", SETTINGS.buttonText);
      btn.setAttribute("data-item-id", itemId(item));
      btn.addEventListener("click", function() { addToCart(item); });
      side.appendChild(btn);
    }
    card.appendChild(side);
    return card;
  }
`

const jsScrollSpy = `
  // ===== Scroll spy =====
  function setupScrollSpy() {
    if (!("IntersectionObserver" in window)) return;
    var sections = document.querySelectorAll(".menu-section");
    if (sections.length === 0) return;
    var visible = {};

    var observer = new IntersectionObserver(function(entries) {
      for (var i = 0; i < entries.length; i++) {
        visible[entries[i].target.id] = entries[i].isIntersecting;
      }
      // Among intersecting sections, the topmost wins.
      var best = null;
      var bestTop = Infinity;
      for (var j = 0; j < sections.length; j++) {
        if (!visible[sections[j].id]) continue;
        var top = sections[j].getBoundingClientRect().top;
        if (top < bestTop) {
          bestTop = top;
          best = sections[j];
        }
      }
      if (!best) return;
      var links = document.querySelectorAll("#category-list a");
      for (var k = 0; k < links.length; k++) {
        var active = links[k].getAttribute("href") === "#" + best.id;
        links[k].classList.toggle("active", active);
        if (active) {
          links[k].scrollIntoView({ block: "nearest", inline: "center", behavior: "smooth" });
        }
      }
    }, { rootMargin: "-120px 0px -55% 0px" });

    for (var i = 0; i < sections.length; i++) observer.observe(sections[i]);
  }
`

const jsHeader = `
  // ===== Header collapse =====
  function setupHeader() {
    var header = document.getElementById("site-header");
    if (!header) return;
    var lastY = window.pageYOffset;
    window.addEventListener("scroll", function() {
      var y = window.pageYOffset;
      if (y > lastY && y > 80) {
        header.classList.add("header-hidden");
      } else {
        header.classList.remove("header-hidden");
      }
      lastY = y;
    }, { passive: true });
  }
`

const jsInit = `
  // ===== Init =====
  renderNav();
  renderSections();
  if (SETTINGS.enabled && typeof setupCartUI === "function") {
    setupCartUI();
    refreshCart();
  }
  setupScrollSpy();
  setupHeader();
`
