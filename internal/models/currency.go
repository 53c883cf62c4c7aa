package models

// TargetCurrency is a static registry entry for a currency amounts are
// converted into.
type TargetCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Flag   string `json:"flag"`
}

var targetCurrencies = [...]TargetCurrency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Flag: "🇺🇸"},
	{Code: "EUR", Name: "Euro", Symbol: "€", Flag: "🇪🇺"},
	{Code: "KRW", Name: "Korean Won", Symbol: "₩", Flag: "🇰🇷"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Flag: "🇨🇳"},
	{Code: "TWD", Name: "Taiwan Dollar", Symbol: "NT$", Flag: "🇹🇼"},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Flag: "🇬🇧"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Flag: "🇦🇺"},
	{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM", Flag: "🇲🇾"},
}

// TargetCurrencies returns a copy of the registry in display order.
func TargetCurrencies() []TargetCurrency {
	out := make([]TargetCurrency, len(targetCurrencies))
	copy(out, targetCurrencies[:])
	return out
}

// TargetCurrencyCodes returns the registry codes in display order.
func TargetCurrencyCodes() []string {
	codes := make([]string, len(targetCurrencies))
	for i, c := range targetCurrencies {
		codes[i] = c.Code
	}
	return codes
}
