package handler

import (
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"agrovet-rest-api/pkg/apierror"
	"agrovet-rest-api/pkg/response"

	"github.com/go-chi/chi/v5"
)

// StartTime tracks when the server started for uptime calculation
var StartTime = time.Now()

// Handler contains the health and status HTTP handlers.
type Handler struct {
	version string
}

// New creates a new handler.
func New(version string) *Handler {
	return &Handler{version: version}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// Health handles GET /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	})
}

// Ready handles GET /api/v1/ready
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]interface{}{
		"ready":     true,
		"timestamp": time.Now().UTC(),
	})
}

// StatusResponse represents the unified status response for monitoring.
type StatusResponse struct {
	Service       string  `json:"service"`
	Status        string  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	MemoryMB      float64 `json:"memory_mb"`
	Goroutines    int     `json:"goroutines"`
}

// Status handles GET /api/status - unified health check for monitoring
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	resp := StatusResponse{
		Service:       "agrovet-rest-api",
		Status:        "ok",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: int64(time.Since(StartTime).Seconds()),
		MemoryMB:      float64(int(float64(memStats.Alloc)/1024/1024*100)) / 100,
		Goroutines:    runtime.NumGoroutine(),
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	response.OK(w, resp)
}

// idParam coerces the {id} URL parameter to the numeric id type.
// Form and path values arrive as strings and must never be compared
// to stored ids without this conversion.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.BadRequest("invalid id: " + raw)
	}
	return id, nil
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierror.BadRequest("invalid JSON body")
	}
	return nil
}
