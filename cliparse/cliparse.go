package cliparse

import (
	"errors"
	"flag"
	"os"
	"strings"
)

type Config struct {
	BotToken string
	AppToken string
	Debug    bool
}

// ParseFlags validates flags and resolves Slack credentials
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("poker-planning", flag.ContinueOnError)

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.BotToken, "bot-token", "", "Slack bot token (prefer env)")
	fs.StringVar(&cfg.AppToken, "app-token", "", "Slack app-level token (prefer env)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.BotToken == "" {
		cfg.BotToken = os.Getenv("SLACK_BOT_TOKEN")
	}
	if cfg.BotToken == "" {
		return Config{}, errors.New("SLACK_BOT_TOKEN required")
	}
	if !strings.HasPrefix(cfg.BotToken, "xoxb-") {
		return Config{}, errors.New("SLACK_BOT_TOKEN must start with xoxb-")
	}

	if cfg.AppToken == "" {
		cfg.AppToken = os.Getenv("SLACK_APP_TOKEN")
	}
	if cfg.AppToken == "" {
		return Config{}, errors.New("SLACK_APP_TOKEN required")
	}
	if !strings.HasPrefix(cfg.AppToken, "xapp-") {
		return Config{}, errors.New("SLACK_APP_TOKEN must start with xapp-")
	}

	if !cfg.Debug && os.Getenv("DEBUG") != "" {
		cfg.Debug = true
	}

	return cfg, nil
}
