package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/stagelight/contact-gateway/internal/config"
	"github.com/stagelight/contact-gateway/internal/handler"
	"github.com/stagelight/contact-gateway/internal/middleware"
	"github.com/stagelight/contact-gateway/internal/router"
	"github.com/stagelight/contact-gateway/internal/service"
	"github.com/stagelight/contact-gateway/internal/utils"
	"github.com/stagelight/contact-gateway/pkg/line"
	"github.com/stagelight/contact-gateway/pkg/resend"
	"github.com/stagelight/contact-gateway/pkg/turnstile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	emailClient, err := resend.New(resend.Config{
		APIKey:  cfg.ResendAPIKey,
		Timeout: cfg.OutboundTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create resend client: %v", err)
	}

	lineClient, err := line.New(line.Config{
		ChannelAccessToken: cfg.LineChannelAccessToken,
		Timeout:            cfg.OutboundTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("failed to create line client: %v", err)
	}

	var verifier handler.TokenVerifier
	if cfg.BotCheckEnabled() {
		verifier, err = turnstile.New(turnstile.Config{
			SecretKey: cfg.TurnstileSecretKey,
			Timeout:   cfg.OutboundTimeout,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create turnstile client: %v", err)
		}
	}

	dispatcher := service.NewDispatcher([]service.ChannelSender{
		service.NewOperatorEmailSender(emailClient, cfg.ResendFromAddress, cfg.NotificationEmail, logger),
		service.NewAcknowledgmentEmailSender(emailClient, cfg.ResendFromAddress, cfg.ReplyEmail, cfg.ReplyPhone, logger),
		service.NewLineSender(lineClient, cfg.LineGroupID, logger),
	}, logger)

	validate := utils.NewValidator()
	contactHandler := handler.NewContactHandler(dispatcher, verifier, validate, logger)
	webhookHandler := handler.NewLineWebhookHandler(logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:        &logger,
		AllowedOrigin: cfg.AllowedOrigin,
	})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler: contactHandler,
		WebhookHandler: webhookHandler,
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
