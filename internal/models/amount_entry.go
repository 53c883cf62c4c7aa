package models

import (
	"errors"
	"strconv"
)

const (
	KeyClear       = "clear"
	KeyBackspace   = "backspace"
	MaxEntryDigits = 10
)

var ErrUnknownKey = errors.New("unknown keypad key")

// QuickAmounts are the preset JPY amounts offered next to the number pad.
var QuickAmounts = []int64{10000, 20000, 30000, 50000}

type Preset struct {
	Amount   int64  `json:"amount"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// AmountEntry is the number pad buffer. It holds decimal digits only and
// is never empty.
type AmountEntry struct {
	input string
}

func NewAmountEntry(initial int64) *AmountEntry {
	if initial < 0 {
		initial = 0
	}
	return &AmountEntry{input: strconv.FormatInt(initial, 10)}
}

func (e *AmountEntry) Input() string {
	return e.input
}

// Press applies one key. A digit replaces a lone "0" and is ignored once the
// buffer holds MaxEntryDigits digits; backspace on the last digit leaves "0".
func (e *AmountEntry) Press(key string) error {
	switch key {
	case KeyClear:
		e.input = "0"
	case KeyBackspace:
		e.input = e.input[:len(e.input)-1]
		if e.input == "" {
			e.input = "0"
		}
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		switch {
		case e.input == "0":
			e.input = key
		case len(e.input) >= MaxEntryDigits:
		default:
			e.input += key
		}
	default:
		return ErrUnknownKey
	}
	return nil
}

// Confirm returns the entered amount; ok is false unless it is positive.
func (e *AmountEntry) Confirm() (int64, bool) {
	amount, err := strconv.ParseInt(e.input, 10, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}
