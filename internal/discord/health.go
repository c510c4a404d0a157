package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

const healthPingTimeout = 2 * time.Second

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandUnix atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandUnix.Store(time.Now().UnixNano())
}

func lastCommandTime() time.Time {
	n := lastCommandUnix.Load()
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}

// HandleHealth returns the bot's health status
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		apiReachable = h.bot.Client.Ping(ctx) == nil
		cancel()
	}

	status := "healthy"
	code := http.StatusOK
	if !connected || !apiReachable {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	health := HealthStatus{
		Status:           status,
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  lastCommandTime(),
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Error("Failed to encode health status", "error", err)
	}
}
