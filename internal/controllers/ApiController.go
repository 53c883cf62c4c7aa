package controllers

import (
	"errors"
	json "github.com/goccy/go-json"
	"net/http"
	"strconv"
	"yenboard/internal/models"
	"yenboard/internal/providers"
	"yenboard/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger providers.Logger
	screen services.ScreenServiceInterface
	cache  providers.CacheProviderInterface
}

type amountRequest struct {
	Amount *int64   `json:"amount"`
	Keys   []string `json:"keys"`
}

type amountResponse struct {
	Amount  int64           `json:"amount"`
	Label   string          `json:"label"`
	Presets []models.Preset `json:"presets"`
}

func NewApiController(logger providers.Logger, screen services.ScreenServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger: logger,
		screen: screen,
		cache:  cache,
	}
}

// serveFromCacheOrCompute stores the computed payload only when compute
// reports it as cacheable.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, bool, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, cacheable, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		ac.cache.Set(cacheKey, gson)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func (ac *ApiController) writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		ac.logger.Errorf(providers.TypeApp, "Failed to encode response: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// parseAmount reads the optional amount query parameter; 0 means the held amount.
func parseAmount(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("amount")
	if raw == "" {
		return 0, nil
	}
	amount, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || amount <= 0 || amount > services.MaxAmount {
		return 0, services.ErrInvalidAmount
	}
	return amount, nil
}

// parseLayout classifies the viewport when both width and height are given.
func parseLayout(r *http.Request) (*models.Layout, error) {
	q := r.URL.Query()
	rawWidth, rawHeight := q.Get("width"), q.Get("height")
	if rawWidth == "" && rawHeight == "" {
		return nil, nil
	}

	width, err := strconv.ParseFloat(rawWidth, 64)
	if err != nil || width < 0 {
		return nil, errors.New("invalid width")
	}
	height, err := strconv.ParseFloat(rawHeight, 64)
	if err != nil || height < 0 {
		return nil, errors.New("invalid height")
	}

	layout := models.ClassifyLayout(width, height)
	return &layout, nil
}

func (ac *ApiController) GetRates(w http.ResponseWriter, r *http.Request) {
	amount, err := parseAmount(r)
	if err != nil {
		ac.rejectQuery(w, r, err)
		return
	}
	layout, err := parseLayout(r)
	if err != nil {
		ac.rejectQuery(w, r, err)
		return
	}
	if amount == 0 {
		amount = ac.screen.Amount()
	}

	layoutName := ""
	if layout != nil {
		layoutName = layout.Name
	}
	state := ac.screen.StateKey()
	cacheKey := "rates:" + state + ":" + strconv.FormatInt(amount, 10) + ":" + layoutName
	ac.serveFromCacheOrCompute(w, cacheKey, func() (any, bool, error) {
		view := ac.screen.View(amount, layout)
		// A refresh that landed while rendering belongs to a newer key.
		return view, ac.screen.StateKey() == state, nil
	})
}

func (ac *ApiController) rejectQuery(w http.ResponseWriter, r *http.Request, err error) {
	ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Rejected query %q: %s", r.URL.RawQuery, err)
	http.Error(w, "Bad Request", http.StatusBadRequest)
}

func (ac *ApiController) GetAmount(w http.ResponseWriter, r *http.Request) {
	amount := ac.screen.Amount()
	view := ac.screen.View(amount, nil)
	ac.writeJSON(w, http.StatusOK, amountResponse{
		Amount:  amount,
		Label:   view.AmountLabel,
		Presets: view.Presets,
	})
}

func (ac *ApiController) SetAmount(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload amountRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	switch {
	case len(payload.Keys) > 0:
		if _, err := ac.screen.ApplyKeys(payload.Keys); err != nil {
			ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Rejected keypad input %v: %s", payload.Keys, err)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	case payload.Amount != nil:
		if err := ac.screen.SetAmount(*payload.Amount); err != nil {
			ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "Rejected amount %d: %s", *payload.Amount, err)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
	default:
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ac.writeJSON(w, http.StatusOK, ac.screen.View(0, nil))
}

// Refresh runs a pull-to-refresh fetch. A failed fetch is logged and the
// unchanged screen is returned.
func (ac *ApiController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := ac.screen.Load(r.Context(), true); err != nil {
		ac.logger.Warnf(providers.GetLogTypeByRequestType(r.Method), "Refresh failed: %s", err)
	}
	ac.writeJSON(w, http.StatusOK, ac.screen.View(0, nil))
}
