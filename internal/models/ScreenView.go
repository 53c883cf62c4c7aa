package models

const (
	ScreenStatusLoading = "loading"
	ScreenStatusReady   = "ready"
)

type ConversionView struct {
	ConversionResult
	Formatted string `json:"formatted"`
	Display   string `json:"display"`
}

// ScreenView is everything a client needs to draw the rates screen.
type ScreenView struct {
	Status           string           `json:"status"`
	Loading          bool             `json:"loading"`
	Refreshing       bool             `json:"refreshing"`
	Amount           int64            `json:"amount"`
	AmountLabel      string           `json:"amountLabel"`
	HeaderDate       string           `json:"headerDate"`
	LastUpdateUnix   int64            `json:"lastUpdateUnix,omitempty"`
	LastUpdatedClock string           `json:"lastUpdatedClock,omitempty"`
	LastUpdatedText  string           `json:"lastUpdatedText,omitempty"`
	Conversions      []ConversionView `json:"conversions"`
	Presets          []Preset         `json:"presets"`
	Layout           *Layout          `json:"layout,omitempty"`
}
