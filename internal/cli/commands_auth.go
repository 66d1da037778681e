package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/service/output"
)

func newAuthCommand(deps Dependencies) *cobra.Command {
	auth := &cobra.Command{
		Use:   "auth",
		Short: "Log in, register, and manage the stored session.",
	}
	auth.AddCommand(newAuthLoginCommand(deps))
	auth.AddCommand(newAuthRegisterCommand(deps))
	auth.AddCommand(newAuthLogoutCommand(deps))
	auth.AddCommand(newAuthStatusCommand(deps))
	return auth
}

func newAuthLoginCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var req datban.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if req.Email == "" || req.Password == "" {
				return fmt.Errorf("%s", requiredArg("--email and --password"))
			}
			sess, err := deps.API.Login(cmd.Context(), req)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			if err := deps.Session.Set(cmd.Context(), sess); err != nil {
				return err
			}

			if format == output.FormatTable {
				return writeTable(cmd, "Logged in as "+sess.User.Name+" ("+sess.User.Email+")", flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, sess.User, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email.")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newAuthRegisterCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var req datban.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session locally.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if req.Email == "" || req.Password == "" || req.Name == "" {
				return fmt.Errorf("%s", requiredArg("--email, --password and --name"))
			}
			sess, err := deps.API.Register(cmd.Context(), req)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			if err := deps.Session.Set(cmd.Context(), sess); err != nil {
				return err
			}

			if format == output.FormatTable {
				return writeTable(cmd, "Registered and logged in as "+sess.User.Name, flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, sess.User, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email.")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password.")
	cmd.Flags().StringVar(&req.Name, "name", "", "Display name.")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newAuthLogoutCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.Session.Clear(cmd.Context()); err != nil {
				return err
			}
			return writeTable(cmd, "Logged out.", flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newAuthStatusCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show who is logged in.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			sess, ok := loadedSession(cmd.Context(), deps)
			if !ok {
				return writeTable(cmd, "Not logged in.", flags.Output)
			}

			if format == output.FormatTable {
				return writeTable(cmd, "Logged in as "+sess.User.Name+" ("+sess.User.Email+")", flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, sess.User, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}
