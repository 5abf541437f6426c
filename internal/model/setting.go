package model

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Well-known setting keys.
const (
	SettingShopName   = "shop_name"
	SettingCurrency   = "currency"
	SettingTaxEnabled = "tax_enabled"
	SettingTaxRate    = "tax_rate"
)
