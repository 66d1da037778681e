package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/datban/datban-cli/internal/cli"
	"github.com/datban/datban-cli/internal/config"
	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/session"
)

var version = "dev"

const baseURLEnv = "DATBAN_API_BASE_URL"

func main() {
	// A .env next to the binary is a developer convenience; absence is fine.
	_ = godotenv.Load()

	configStore, err := config.NewStore()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	sessionStore, err := session.NewStore()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	options := []datban.Option{datban.WithTokenSource(sessionStore)}
	if baseURL := resolveBaseURL(configStore); baseURL != "" {
		options = append(options, datban.WithBaseURL(baseURL))
	}

	deps := cli.Dependencies{
		API:     datban.NewClient(options...),
		Session: sessionStore,
		Config:  configStore,
		Version: version,
	}

	exitCode := cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// resolveBaseURL prefers the environment over the stored config.
func resolveBaseURL(store *config.Store) string {
	if raw := strings.TrimSpace(os.Getenv(baseURLEnv)); raw != "" {
		return raw
	}
	settings, err := store.Load(context.Background())
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			_, _ = os.Stderr.WriteString("warning: " + err.Error() + "\n")
		}
		return ""
	}
	return strings.TrimSpace(settings.BaseURL)
}
