package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production LINE Messaging API endpoint.
const DefaultBaseURL = "https://api.line.me"

// Config contains credentials required to talk to the LINE Messaging API.
type Config struct {
	ChannelAccessToken string
	BaseURL            string
	Timeout            time.Duration
}

// Client pushes messages to LINE groups via the Messaging API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

// New constructs a LINE Messaging API client instance.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.ChannelAccessToken == "" {
		return nil, fmt.Errorf("line channel access token must be provided")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		token:      cfg.ChannelAccessToken,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "line").Logger(),
	}, nil
}

// PushText sends a single text message to the given group or user ID.
// Any non-2xx status is returned as an error carrying the upstream body.
func (c *Client) PushText(ctx context.Context, to, text string) error {
	payload, err := json.Marshal(pushRequest{
		To:       to,
		Messages: []textMessage{{Type: "text", Text: text}},
	})
	if err != nil {
		return fmt.Errorf("failed to encode push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/bot/message/push", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("line request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("line api error: status %d: %s", resp.StatusCode, string(body))
	}

	c.logger.Debug().Str("to", to).Msg("push message accepted")
	return nil
}
