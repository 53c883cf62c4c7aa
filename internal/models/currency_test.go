package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetCurrencies_HasEightEntries(t *testing.T) {
	assert.Len(t, TargetCurrencies(), 8)
}

func TestTargetCurrencies_CodesInDisplayOrder(t *testing.T) {
	assert.Equal(t, []string{"USD", "EUR", "KRW", "CNY", "TWD", "GBP", "AUD", "MYR"}, TargetCurrencyCodes())
}

func TestTargetCurrencies_EveryEntryHasFlag(t *testing.T) {
	for _, c := range TargetCurrencies() {
		assert.NotEmpty(t, c.Flag, c.Code)
		assert.NotEmpty(t, c.Symbol, c.Code)
		assert.NotEmpty(t, c.Name, c.Code)
	}
}

func TestTargetCurrencies_ReturnsCopy(t *testing.T) {
	list := TargetCurrencies()
	list[0].Code = "XXX"

	assert.Equal(t, "USD", TargetCurrencies()[0].Code)
}
