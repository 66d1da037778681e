package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/datban/datban-cli/internal/config"
	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/gateway/datban"
)

var unknownCommandPattern = regexp.MustCompile(`unknown command "([^"]+)"`)

// SessionManager persists the login session between invocations.
type SessionManager interface {
	Path() string
	Load(ctx context.Context) (domain.Session, error)
	Set(ctx context.Context, sess domain.Session) error
	Clear(ctx context.Context) error
}

// ConfigManager stores local CLI defaults.
type ConfigManager interface {
	Path() string
	Load(ctx context.Context) (config.Settings, error)
	Save(ctx context.Context, settings config.Settings) error
}

// Dependencies wires runtime services.
type Dependencies struct {
	API     datban.API
	Session SessionManager
	Config  ConfigManager
	Version string
}

var errVersionShown = fmt.Errorf("version shown")

// Execute runs the CLI with injected dependencies.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil || err == errVersionShown {
		return 0
	}
	var controlled *exitError
	if errors.As(err, &controlled) {
		return controlled.code
	}

	if matches := unknownCommandPattern.FindStringSubmatch(err.Error()); len(matches) > 1 {
		_, _ = fmt.Fprintf(stderr, "No such command '%s'\n", matches[1])
		return 2
	}

	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, msg)
	}
	return 1
}
