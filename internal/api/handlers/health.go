package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ConnectionStatus reports whether the realtime channel is up
type ConnectionStatus interface {
	Connected() bool
}

// EpisodeStatus reports the selected episode
type EpisodeStatus interface {
	EpisodeID() int64
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	realtime ConnectionStatus
	episodes EpisodeStatus
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(realtime ConnectionStatus, episodes EpisodeStatus) *HealthHandler {
	return &HealthHandler{
		realtime: realtime,
		episodes: episodes,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	EpisodeID int64             `json:"episode_id"`
	Services  map[string]string `json:"services"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status including the realtime channel
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Console is healthy"
// @Failure 503 {object} HealthResponse "Realtime channel is down"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		EpisodeID: h.episodes.EpisodeID(),
		Services:  make(map[string]string),
	}

	if h.realtime.Connected() {
		response.Services["realtime"] = "connected"
	} else {
		response.Status = "unhealthy"
		response.Services["realtime"] = "disconnected"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Ready once the realtime channel is up and an episode is selected
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Console is ready"
// @Failure 503 {object} map[string]interface{} "Console is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready := true
	services := make(map[string]string)

	if h.realtime.Connected() {
		services["realtime"] = "ready"
	} else {
		ready = false
		services["realtime"] = "not ready: disconnected"
	}

	if h.episodes.EpisodeID() != 0 {
		services["episode"] = "ready"
	} else {
		ready = false
		services["episode"] = "not ready: no episode selected"
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Console is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
