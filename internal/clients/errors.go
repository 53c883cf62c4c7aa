package clients

import "fmt"

// TransportError reports a request that did not produce a 2xx response.
// StatusCode is 0 when no response arrived at all.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 && e.Err != nil {
		return fmt.Sprintf("exchange rate request failed: %s", e.Err)
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ApiError reports a 2xx response whose body carries a non-success result.
type ApiError struct {
	Result    string
	ErrorType string
}

func (e *ApiError) Error() string {
	if e.ErrorType != "" {
		return fmt.Sprintf("API returned error result (%s)", e.ErrorType)
	}
	return "API returned error result"
}

// ParseError reports a 2xx response whose body is not a rate table.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to decode exchange rate response: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
