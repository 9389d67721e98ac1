package turnstile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultVerifyURL is the production Turnstile verification endpoint.
const DefaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Config contains the pre-shared secret for verification calls.
type Config struct {
	SecretKey string
	VerifyURL string
	Timeout   time.Duration
}

// Client verifies challenge tokens against the Turnstile siteverify endpoint.
type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
	logger     zerolog.Logger
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// New constructs a Turnstile verification client.
func New(cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("turnstile secret key must be provided")
	}

	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		secret:     cfg.SecretKey,
		verifyURL:  verifyURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "turnstile").Logger(),
	}, nil
}

// Verify sends the client-supplied token for scoring. It fails closed: any
// transport fault, non-2xx status, or decode failure counts as a rejection.
func (c *Client) Verify(ctx context.Context, token string) bool {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to build verification request")
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("verification request failed")
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("verification endpoint returned error status")
		return false
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn().Err(err).Msg("failed to decode verification response")
		return false
	}

	if !result.Success {
		c.logger.Info().Strs("error_codes", result.ErrorCodes).Msg("token rejected")
	}

	return result.Success
}
