package models

import "time"

const (
	ResultSuccess = "success"
	BaseCurrency  = "JPY"
)

// RateSnapshot is one decoded response of the JPY latest-rates endpoint.
// It is never mutated after decoding; a newer fetch replaces it whole.
type RateSnapshot struct {
	Result             string             `json:"result"`
	Provider           string             `json:"provider,omitempty"`
	Documentation      string             `json:"documentation,omitempty"`
	TermsOfUse         string             `json:"terms_of_use,omitempty"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	TimeLastUpdateUTC  string             `json:"time_last_update_utc,omitempty"`
	TimeNextUpdateUnix int64              `json:"time_next_update_unix,omitempty"`
	TimeNextUpdateUTC  string             `json:"time_next_update_utc,omitempty"`
	TimeEOLUnix        int64              `json:"time_eol_unix"`
	BaseCode           string             `json:"base_code"`
	Rates              map[string]float64 `json:"rates"`
	ErrorType          string             `json:"error-type,omitempty"`
}

func (s *RateSnapshot) IsSuccess() bool {
	return s != nil && s.Result == ResultSuccess
}

func (s *RateSnapshot) LastUpdate() time.Time {
	return time.Unix(s.TimeLastUpdateUnix, 0)
}
