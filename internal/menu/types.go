// Package menu defines the restaurant data model shared by the editor
// API, the importer, and the document generator.
package menu

// TemplateType selects one of the built-in visual presets.
type TemplateType string

const (
	TemplateBasic   TemplateType = "basic"
	TemplatePremium TemplateType = "premium"
	TemplateModern  TemplateType = "modern"
	TemplateElegant TemplateType = "elegant"
)

// ToastPosition is the screen corner the add-to-cart toast appears in.
type ToastPosition string

const (
	ToastTopRight     ToastPosition = "top-right"
	ToastTopLeft      ToastPosition = "top-left"
	ToastBottomRight  ToastPosition = "bottom-right"
	ToastBottomLeft   ToastPosition = "bottom-left"
	ToastBottomCenter ToastPosition = "bottom-center"
)

// Info holds the restaurant's public contact details.
type Info struct {
	Name    string `json:"name" yaml:"name"`
	Phone   string `json:"phone" yaml:"phone"`
	Address string `json:"address" yaml:"address"`
	Logo    string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// Item is a single dish on the menu. Price is a display string and may
// carry a currency symbol; arithmetic always goes through order.ParsePrice.
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Price       string `json:"price" yaml:"price"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Category is an ordered group of items rendered as one menu section.
// Ordering is significant: it drives both navigation and section order.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// ThemeColors are the base palette colors of a restaurant.
type ThemeColors struct {
	Primary    string `json:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" yaml:"secondary"`
	Background string `json:"background" yaml:"background"`
	Text       string `json:"text" yaml:"text"`
	Accent     string `json:"accent" yaml:"accent"`
}

// VisualSettings drives the style emitter exclusively. It has no effect
// on data correctness.
type VisualSettings struct {
	ButtonRadius    string        `json:"buttonRadius" yaml:"buttonRadius"`
	HoverEffects    bool          `json:"hoverEffects" yaml:"hoverEffects"`
	Shadows         bool          `json:"shadows" yaml:"shadows"`
	ToastPosition   ToastPosition `json:"toastPosition" yaml:"toastPosition"`
	FontFamily      string        `json:"fontFamily" yaml:"fontFamily"`
	PrimaryColor    string        `json:"primaryColor" yaml:"primaryColor"`
	SecondaryColor  string        `json:"secondaryColor" yaml:"secondaryColor"`
	AccentColor     string        `json:"accentColor" yaml:"accentColor"`
	BackgroundColor string        `json:"backgroundColor" yaml:"backgroundColor"`
	TextColor       string        `json:"textColor" yaml:"textColor"`
	DarkMode        bool          `json:"darkMode" yaml:"darkMode"`
}

// PaymentOptions lists the payment methods shown in the checkout summary.
type PaymentOptions struct {
	CashOnDelivery bool `json:"cashOnDelivery" yaml:"cashOnDelivery"`
	CashOnPickup   bool `json:"cashOnPickup" yaml:"cashOnPickup"`
	Stripe         bool `json:"stripe" yaml:"stripe"`
}

// CartSettings configures the cart and checkout behavior of the
// generated document. TaxPercentage is a percentage (0-100), not a
// fraction.
type CartSettings struct {
	Enabled               bool           `json:"enabled" yaml:"enabled"`
	AllowSMSCheckout      bool           `json:"allowSmsCheckout" yaml:"allowSmsCheckout"`
	AllowWhatsAppCheckout bool           `json:"allowWhatsAppCheckout" yaml:"allowWhatsAppCheckout"`
	AllowQuantityChange   bool           `json:"allowQuantityChange" yaml:"allowQuantityChange"`
	ShowItemImages        bool           `json:"showItemImages" yaml:"showItemImages"`
	ButtonText            string         `json:"buttonText" yaml:"buttonText"`
	TaxPercentage         float64        `json:"taxPercentage" yaml:"taxPercentage"`
	MinimumOrderAmount    float64        `json:"minimumOrderAmount" yaml:"minimumOrderAmount"`
	DeliveryEnabled       bool           `json:"deliveryEnabled" yaml:"deliveryEnabled"`
	DeliveryFee           float64        `json:"deliveryFee" yaml:"deliveryFee"`
	PickupEnabled         bool           `json:"pickupEnabled" yaml:"pickupEnabled"`
	SMSPhone              string         `json:"smsPhone" yaml:"smsPhone"`
	WhatsAppPhone         string         `json:"whatsappPhone" yaml:"whatsappPhone"`
	PaymentOptions        PaymentOptions `json:"paymentOptions" yaml:"paymentOptions"`
}

// Restaurant is the generation input root: everything the generator
// needs to emit one self-contained menu document.
type Restaurant struct {
	ID           string          `json:"id" yaml:"id"`
	Info         Info            `json:"info" yaml:"info"`
	Categories   []Category      `json:"categories" yaml:"categories"`
	TemplateType TemplateType    `json:"templateType" yaml:"templateType"`
	ThemeColors  ThemeColors     `json:"themeColors" yaml:"themeColors"`
	CartSettings CartSettings    `json:"cartSettings" yaml:"cartSettings"`
	Visual       *VisualSettings `json:"visualSettings,omitempty" yaml:"visualSettings,omitempty"`
}

// OrderType is the fulfilment mode chosen at checkout.
type OrderType string

const (
	OrderDelivery OrderType = "delivery"
	OrderPickup   OrderType = "pickup"
	OrderNone     OrderType = ""
)

// DefaultOrderType returns the initial order-type selection for the
// given settings: delivery when enabled, otherwise pickup when enabled,
// otherwise none.
func (c CartSettings) DefaultOrderType() OrderType {
	switch {
	case c.DeliveryEnabled:
		return OrderDelivery
	case c.PickupEnabled:
		return OrderPickup
	default:
		return OrderNone
	}
}
