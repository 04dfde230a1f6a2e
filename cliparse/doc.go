/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - BotToken: Slack bot token, xoxb- prefixed (required)
  - AppToken: Slack app-level token for socket mode, xapp- prefixed (required)
  - Debug: enable debug logging (default: false)

# CLI Flags

	-bot-token  Slack bot token
	-app-token  Slack app-level token
	-debug      Enable debug logging

# Environment Variables

Flags fall back to environment variables:

	SLACK_BOT_TOKEN → -bot-token
	SLACK_APP_TOKEN → -app-token
	DEBUG           → -debug

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded at startup before parsing.

# Validation

ParseFlags returns an error if either token is missing or carries the
wrong prefix, so a swapped pair of tokens fails at boot instead of at the
first API call.
*/
package cliparse
