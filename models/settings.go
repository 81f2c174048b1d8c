package models

// DefaultBasePriceAED applies when the settings document has never been written.
const DefaultBasePriceAED = 500.0

// GlobalSettings is the singleton settings document.
type GlobalSettings struct {
	BasePriceAED float64 `bson:"base_price_aed" json:"base_price_aed"`
}

// SettingsRequest updates the singleton settings document.
type SettingsRequest struct {
	BasePriceAED float64 `json:"base_price_aed" binding:"required,gt=0"`
}

// CurrencyConvertRequest asks for a display-currency amount.
type CurrencyConvertRequest struct {
	AmountAED      float64 `json:"amount_aed" binding:"required,gt=0"`
	TargetCurrency string  `json:"target_currency" binding:"required"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
