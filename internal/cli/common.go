package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/service/output"
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return ""
}

type globalFlags struct {
	Format  string
	Output  string
	Verbose bool
	BaseURL string
}

const sharedGlobalFlagAnnotation = "datban_cli_shared_global"

// msgBackendError is the generic user-facing failure line; --verbose swaps
// in the full diagnostic.
const msgBackendError = "Có lỗi xảy ra khi gọi máy chủ đặt bàn. Vui lòng thử lại sau."

func addGlobalFlags(cmd *cobra.Command, flags *globalFlags) {
	addSharedGlobalFlag(cmd, "format", func() {
		cmd.Flags().StringVar(&flags.Format, "format", "table", "Output format: table, json, or yaml.")
	})
	addSharedGlobalFlag(cmd, "output", func() {
		cmd.Flags().StringVar(&flags.Output, "output", "", "Also write the rendered output to this file.")
	})
	addSharedGlobalFlag(cmd, "verbose", func() {
		cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Enable verbose output (prints backend request trace and detailed error diagnostics).")
	})
	addSharedGlobalFlag(cmd, "base-url", func() {
		cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Backend base URL for this invocation only.")
	})
}

func addSharedGlobalFlag(cmd *cobra.Command, name string, register func()) {
	if cmd.Flags().Lookup(name) != nil {
		return
	}
	register()
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return
	}
	if flag.Annotations == nil {
		flag.Annotations = map[string][]string{}
	}
	flag.Annotations[sharedGlobalFlagAnnotation] = []string{"true"}
}

func parseOutputFormat(format string) (output.Format, error) {
	return output.ParseFormat(format)
}

func writeTable(cmd *cobra.Command, text string, outputPath string) error {
	return output.WriteOutput(cmd.OutOrStdout(), text, outputPath)
}

func writeMachinePayload(cmd *cobra.Command, env output.Envelope, format output.Format, outputPath string) error {
	rendered, err := output.RenderPayload(env, format)
	if err != nil {
		return err
	}
	return output.WriteOutput(cmd.OutOrStdout(), rendered, outputPath)
}

func emitError(
	cmd *cobra.Command,
	format output.Format,
	outputPath string,
	code string,
	message string,
) error {
	if format == output.FormatTable {
		if err := output.WriteOutput(cmd.OutOrStdout(), message, outputPath); err != nil {
			return err
		}
		return &exitError{code: 1}
	}
	env := output.BuildEnvelope(output.SourceAPI, nil, []string{}, map[string]any{
		"code":    code,
		"message": message,
	})
	if err := writeMachinePayload(cmd, env, format, outputPath); err != nil {
		return err
	}
	return &exitError{code: 1}
}

func emitBackendError(
	cmd *cobra.Command,
	format output.Format,
	outputPath string,
	verbose bool,
	err error,
) error {
	if err == nil {
		err = datban.ErrBackend
	}
	if verbose {
		return emitError(cmd, format, outputPath, "DATBAN_BACKEND_ERROR", err.Error())
	}

	message := msgBackendError + " (dùng --verbose để xem chi tiết)"
	var reqErr *datban.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode > 0 {
		message = fmt.Sprintf("%s (status %d, dùng --verbose để xem chi tiết)", msgBackendError, reqErr.StatusCode)
	}
	return emitError(cmd, format, outputPath, "DATBAN_BACKEND_ERROR", message)
}

func requiredArg(name string) string {
	return fmt.Sprintf("%s is required", name)
}

// loadedSession returns the stored session if one exists. A missing or
// broken session file means anonymous.
func loadedSession(ctx context.Context, deps Dependencies) (domain.Session, bool) {
	if deps.Session == nil {
		return domain.Session{}, false
	}
	sess, err := deps.Session.Load(ctx)
	if err != nil {
		return domain.Session{}, false
	}
	return sess, true
}

func requireLogin(
	ctx context.Context,
	deps Dependencies,
	cmd *cobra.Command,
	format output.Format,
	outputPath string,
) (domain.Session, error) {
	sess, ok := loadedSession(ctx, deps)
	if !ok {
		return domain.Session{}, emitError(
			cmd,
			format,
			outputPath,
			"DATBAN_AUTH_REQUIRED",
			"Vui lòng đăng nhập để tiếp tục. Chạy 'datban auth login' trước.",
		)
	}
	return sess, nil
}

func boolToYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func dash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
