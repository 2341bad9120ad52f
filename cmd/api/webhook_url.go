package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	telegramWebhookPath = "/webhook/telegram"
	ngrokAttempts       = 10
	ngrokRetryInterval  = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// webhookResolver finds the public URL Telegram should call.
type webhookResolver struct {
	client   *http.Client
	attempts int
	interval time.Duration
}

func newWebhookResolver() webhookResolver {
	return webhookResolver{
		client:   &http.Client{Timeout: 5 * time.Second},
		attempts: ngrokAttempts,
		interval: ngrokRetryInterval,
	}
}

// Resolve returns configured when set, otherwise the tunnel URL reported by
// the ngrok API plus the webhook path. An empty result means no webhook.
func (r webhookResolver) Resolve(ctx context.Context, configured, ngrokAPI string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if ngrokAPI == "" {
		return "", nil
	}

	publicURL, err := r.detectNgrokURL(ctx, strings.TrimRight(ngrokAPI, "/"))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(publicURL, "/") + telegramWebhookPath, nil
}

// detectNgrokURL polls the ngrok API until a tunnel shows up, preferring https.
func (r webhookResolver) detectNgrokURL(ctx context.Context, apiBase string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		url, err := r.fetchTunnel(ctx, apiBase+"/api/tunnels")
		if err == nil && url != "" {
			return url, nil
		}
		lastErr = err

		if attempt < r.attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(r.interval):
			}
		}
	}

	if lastErr != nil {
		return "", fmt.Errorf("ngrok API not usable after %d attempts: %w", r.attempts, lastErr)
	}
	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", r.attempts)
}

func (r webhookResolver) fetchTunnel(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", nil
}
