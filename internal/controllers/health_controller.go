package controllers

import (
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"time"
	"yenboard/internal/services"
)

type HealthController struct {
	screen    services.ScreenServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status         string  `json:"status"`
	Uptime         string  `json:"uptime"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	SnapshotLoaded bool    `json:"snapshot_loaded"`
	LastUpdateUnix int64   `json:"last_update_unix,omitempty"`
	Refreshing     bool    `json:"refreshing"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		Refreshing:    hc.screen.IsRefreshing(),
	}
	if snapshot := hc.screen.Snapshot(); snapshot != nil {
		resp.SnapshotLoaded = true
		resp.LastUpdateUnix = snapshot.TimeLastUpdateUnix
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(screen services.ScreenServiceInterface) *HealthController {
	return &HealthController{
		screen:    screen,
		startTime: time.Now(),
	}
}
