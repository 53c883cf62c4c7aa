package clients

import (
	"context"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"io"
	"net/http"
	"time"
	"yenboard/internal/models"
	"yenboard/internal/providers"
	"yenboard/internal/structures"
)

const maxResponseBodySize = 1 << 20 // 1 MB

type RateClientInterface interface {
	FetchRates(ctx context.Context) (*models.RateSnapshot, error)
}

// RateClient fetches the JPY rate table. Every call is a fresh request;
// retries are left to the caller.
type RateClient struct {
	endpoint   string
	httpClient *http.Client
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewRateClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) RateClientInterface {
	endpoint := conf.Rates.Endpoint
	if endpoint == "" {
		endpoint = structures.DefaultRatesEndpoint
	}
	timeout := conf.Rates.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RateClient{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

func (c *RateClient) FetchRates(ctx context.Context) (*models.RateSnapshot, error) {
	fetchID := uuid.NewString()
	c.logger.Debugf(providers.TypeFetch, "[%s] GET %s", fetchID, c.endpoint)

	start := time.Now()
	snapshot, err := c.fetch(ctx)
	c.metrics.ObserveFetchDuration(time.Since(start))
	c.metrics.IncFetchTotal(fetchOutcome(err))

	if err != nil {
		c.logger.Errorf(providers.TypeFetch, "[%s] Failed to fetch exchange rates: %s", fetchID, err)
		return nil, err
	}

	c.logger.Infof(providers.TypeFetch, "[%s] Fetched %d rates, provider update %d", fetchID, len(snapshot.Rates), snapshot.TimeLastUpdateUnix)
	return snapshot, nil
}

func (c *RateClient) fetch(ctx context.Context) (*models.RateSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build exchange rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	var snapshot models.RateSnapshot
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBodySize)).Decode(&snapshot); err != nil {
		return nil, &ParseError{Err: err}
	}

	if !snapshot.IsSuccess() {
		return nil, &ApiError{Result: snapshot.Result, ErrorType: snapshot.ErrorType}
	}

	return &snapshot, nil
}

func fetchOutcome(err error) string {
	var (
		apiErr   *ApiError
		parseErr *ParseError
	)
	switch {
	case err == nil:
		return providers.FetchOutcomeSuccess
	case errors.As(err, &apiErr):
		return providers.FetchOutcomeApiError
	case errors.As(err, &parseErr):
		return providers.FetchOutcomeParseError
	default:
		return providers.FetchOutcomeTransportError
	}
}
