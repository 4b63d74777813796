package menu

// DefaultCartSettings returns the cart configuration a fresh restaurant
// starts with.
func DefaultCartSettings() CartSettings {
	return CartSettings{
		Enabled:               true,
		AllowSMSCheckout:      true,
		AllowWhatsAppCheckout: true,
		AllowQuantityChange:   true,
		ButtonText:            "Add to Cart",
		TaxPercentage:         0,
		MinimumOrderAmount:    0,
		DeliveryEnabled:       true,
		DeliveryFee:           0,
		PickupEnabled:         true,
		PaymentOptions: PaymentOptions{
			CashOnDelivery: true,
			CashOnPickup:   true,
		},
	}
}

// visualPresets maps each template to its visual defaults.
var visualPresets = map[TemplateType]VisualSettings{
	TemplateBasic: {
		ButtonRadius:    "6px",
		HoverEffects:    true,
		Shadows:         true,
		ToastPosition:   ToastBottomCenter,
		FontFamily:      "system-ui",
		PrimaryColor:    "#e63946",
		SecondaryColor:  "#457b9d",
		AccentColor:     "#f4a261",
		BackgroundColor: "#f8f9fa",
		TextColor:       "#212529",
	},
	TemplatePremium: {
		ButtonRadius:    "10px",
		HoverEffects:    true,
		Shadows:         true,
		ToastPosition:   ToastBottomRight,
		FontFamily:      "Poppins",
		PrimaryColor:    "#9d4edd",
		SecondaryColor:  "#5a189a",
		AccentColor:     "#ffb703",
		BackgroundColor: "#fdfcff",
		TextColor:       "#241b2f",
	},
	TemplateModern: {
		ButtonRadius:    "999px",
		HoverEffects:    true,
		Shadows:         false,
		ToastPosition:   ToastBottomCenter,
		FontFamily:      "Inter",
		PrimaryColor:    "#0d9488",
		SecondaryColor:  "#134e4a",
		AccentColor:     "#f97316",
		BackgroundColor: "#ffffff",
		TextColor:       "#1c1917",
	},
	TemplateElegant: {
		ButtonRadius:    "2px",
		HoverEffects:    false,
		Shadows:         true,
		ToastPosition:   ToastTopRight,
		FontFamily:      "Playfair Display",
		PrimaryColor:    "#b08968",
		SecondaryColor:  "#7f5539",
		AccentColor:     "#ddb892",
		BackgroundColor: "#fefae0",
		TextColor:       "#3d2c1e",
		DarkMode:        false,
	},
}

// VisualPreset returns the visual settings for a template. Unknown
// templates fall back to the basic preset.
func VisualPreset(t TemplateType) VisualSettings {
	if preset, ok := visualPresets[t]; ok {
		return preset
	}
	return visualPresets[TemplateBasic]
}

// ResolveVisual computes the effective visual settings for a restaurant:
// the template preset, overridden by any non-empty theme colors, then by
// an explicit override when one is supplied. An explicit override wins
// wholesale — it is what the editor's visual panel produces.
func ResolveVisual(r *Restaurant, override *VisualSettings) VisualSettings {
	if override != nil {
		return *override
	}
	if r.Visual != nil {
		return *r.Visual
	}
	vs := VisualPreset(r.TemplateType)
	if c := r.ThemeColors.Primary; c != "" {
		vs.PrimaryColor = c
	}
	if c := r.ThemeColors.Secondary; c != "" {
		vs.SecondaryColor = c
	}
	if c := r.ThemeColors.Accent; c != "" {
		vs.AccentColor = c
	}
	if c := r.ThemeColors.Background; c != "" {
		vs.BackgroundColor = c
	}
	if c := r.ThemeColors.Text; c != "" {
		vs.TextColor = c
	}
	return vs
}
