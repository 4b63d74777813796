package menu

// Normalize applies defensive defaults in place. Persisted payloads may
// predate newer settings blocks, so missing sections are filled rather
// than trusted to exist.
func Normalize(r *Restaurant) {
	if r == nil {
		return
	}

	if r.TemplateType == "" {
		r.TemplateType = TemplateBasic
	}

	cs := &r.CartSettings
	if *cs == (CartSettings{}) {
		*cs = DefaultCartSettings()
	}
	if cs.ButtonText == "" {
		cs.ButtonText = "Add to Cart"
	}
	if cs.TaxPercentage < 0 {
		cs.TaxPercentage = 0
	}
	if cs.TaxPercentage > 100 {
		cs.TaxPercentage = 100
	}
	if cs.MinimumOrderAmount < 0 {
		cs.MinimumOrderAmount = 0
	}
	if cs.DeliveryFee < 0 {
		cs.DeliveryFee = 0
	}
	// Delivery-fee logic must not survive with delivery off.
	if !cs.DeliveryEnabled {
		cs.DeliveryFee = 0
		cs.PaymentOptions.CashOnDelivery = false
	}
	if !cs.PickupEnabled {
		cs.PaymentOptions.CashOnPickup = false
	}
	if cs.SMSPhone == "" {
		cs.SMSPhone = r.Info.Phone
	}
	if cs.WhatsAppPhone == "" {
		cs.WhatsAppPhone = r.Info.Phone
	}

	if r.Visual != nil {
		vs := r.Visual
		preset := VisualPreset(r.TemplateType)
		if vs.ButtonRadius == "" {
			vs.ButtonRadius = preset.ButtonRadius
		}
		if vs.ToastPosition == "" {
			vs.ToastPosition = preset.ToastPosition
		}
		if vs.FontFamily == "" {
			vs.FontFamily = preset.FontFamily
		}
		if vs.PrimaryColor == "" {
			vs.PrimaryColor = preset.PrimaryColor
		}
		if vs.SecondaryColor == "" {
			vs.SecondaryColor = preset.SecondaryColor
		}
		if vs.AccentColor == "" {
			vs.AccentColor = preset.AccentColor
		}
		if vs.BackgroundColor == "" {
			vs.BackgroundColor = preset.BackgroundColor
		}
		if vs.TextColor == "" {
			vs.TextColor = preset.TextColor
		}
	}

	if r.Categories == nil {
		r.Categories = []Category{}
	}
	for i := range r.Categories {
		if r.Categories[i].Items == nil {
			r.Categories[i].Items = []Item{}
		}
	}
}
