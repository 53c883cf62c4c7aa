package formatters

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"math"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders amount with en-US digit grouping and no symbol.
// KRW and JPY are whole units; every other code gets exactly two decimals.
func FormatAmount(amount float64, currencyCode string) string {
	if currencyCode == "KRW" || currencyCode == "JPY" {
		rounded := math.Floor(amount + 0.5)
		if rounded == 0 {
			rounded = 0 // drop the sign of -0
		}
		return printer.Sprintf("%.0f", rounded)
	}

	// Round on the shortest decimal form of the float, half away from zero.
	rounded := decimal.NewFromFloat(amount).Round(2).InexactFloat64()
	return printer.Sprintf("%.2f", rounded)
}

// FormatYen renders a JPY amount with its symbol, as shown on the amount
// display and the preset buttons.
func FormatYen(amount int64) string {
	return "¥" + printer.Sprintf("%d", amount)
}
