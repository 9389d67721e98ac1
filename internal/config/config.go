package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the contact gateway.
type Config struct {
	AppName string
	AppEnv  string
	AppPort string

	ResendAPIKey      string
	ResendFromAddress string
	NotificationEmail string

	// ReplyEmail and ReplyPhone are printed in the acknowledgment email as
	// the human-reachable fallback contact.
	ReplyEmail string
	ReplyPhone string

	LineChannelAccessToken string
	LineGroupID            string

	// TurnstileSecretKey enables the bot-verification gate when set.
	// This is a per-deployment policy switch, not a runtime toggle.
	TurnstileSecretKey string

	AllowedOrigin   string
	OutboundTimeout time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// BotCheckEnabled reports whether submissions must carry a verification token.
func (c Config) BotCheckEnabled() bool {
	return c.TurnstileSecretKey != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CONTACT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Contact Gateway")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("resend.from_address", "info@stagelight.example")
	v.SetDefault("reply.email", "contact@stagelight.example")
	v.SetDefault("reply.phone", "050-0000-0000")
	v.SetDefault("allowed.origin", "http://localhost:3000")
	v.SetDefault("outbound.timeout", "10s")

	timeoutString := v.GetString("outbound.timeout")
	timeout, err := time.ParseDuration(timeoutString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid outbound timeout: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("app.name"),
		AppEnv:                 v.GetString("app.env"),
		AppPort:                v.GetString("app.port"),
		ResendAPIKey:           v.GetString("resend.api_key"),
		ResendFromAddress:      v.GetString("resend.from_address"),
		NotificationEmail:      v.GetString("notification.email"),
		ReplyEmail:             v.GetString("reply.email"),
		ReplyPhone:             v.GetString("reply.phone"),
		LineChannelAccessToken: v.GetString("line.channel_access_token"),
		LineGroupID:            v.GetString("line.group_id"),
		TurnstileSecretKey:     v.GetString("turnstile.secret_key"),
		AllowedOrigin:          v.GetString("allowed.origin"),
		OutboundTimeout:        timeout,
	}

	if cfg.ResendAPIKey == "" {
		return Config{}, fmt.Errorf("resend api key must be provided")
	}

	if cfg.NotificationEmail == "" {
		return Config{}, fmt.Errorf("notification email must be provided")
	}

	if cfg.LineChannelAccessToken == "" || cfg.LineGroupID == "" {
		return Config{}, fmt.Errorf("line credentials must be provided")
	}

	return cfg, nil
}
