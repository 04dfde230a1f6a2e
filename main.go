package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/erikamanning/poker-planning/cliparse"
	"github.com/erikamanning/poker-planning/handlers"
	"github.com/erikamanning/poker-planning/router"
	"github.com/erikamanning/poker-planning/session"
)

func main() {
	// A .env file is optional; deployments set the environment directly
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Slack clients: Web API plus the socket-mode connection
	api := slack.New(cfg.BotToken, slack.OptionAppLevelToken(cfg.AppToken))
	smClient := socketmode.New(api)

	// Create the session store and wire the handlers
	store := session.NewStore()
	h := handlers.New(store, api)
	r := router.New(smClient, h)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
	}()

	// Consume events while the client maintains the connection
	go r.Run()

	slog.Info("Planning poker bot is running")
	err = smClient.RunContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Socket mode closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
