package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CheckHealth probes a running server's /api/health endpoint.
// It fails unless the server answers 200 with status "healthy".
func CheckHealth(ctx context.Context, url string) (*HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	if health.Status != "healthy" {
		msg := health.Message
		if msg == "" {
			msg = "unknown error"
		}
		return &health, fmt.Errorf("service unhealthy: %s", msg)
	}
	return &health, nil
}
