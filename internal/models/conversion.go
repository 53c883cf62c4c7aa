package models

type ConversionResult struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Flag   string  `json:"flag"`
	Amount float64 `json:"amount"`
}

// Convert multiplies jpyAmount by each registry currency's rate. The result
// always follows registry order and length; a code missing from rates
// yields an amount of 0 and codes outside the registry are ignored.
// Amounts are not rounded here.
func Convert(jpyAmount float64, rates map[string]float64) []ConversionResult {
	out := make([]ConversionResult, 0, len(targetCurrencies))
	for _, c := range targetCurrencies {
		out = append(out, ConversionResult{
			Code:   c.Code,
			Name:   c.Name,
			Symbol: c.Symbol,
			Flag:   c.Flag,
			Amount: jpyAmount * rates[c.Code],
		})
	}
	return out
}
