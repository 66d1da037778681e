package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/config"
	"github.com/datban/datban-cli/internal/service/output"
)

func newConfigureCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var baseURL string
	var defaultCity string
	var defaultFormat string
	var show bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Set local defaults: backend URL, city, and output format.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}

			settings, err := deps.Config.Load(cmd.Context())
			if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
				return err
			}

			if show {
				if format == output.FormatTable {
					text := "Config: " + deps.Config.Path() +
						"\nBase URL: " + dash(settings.BaseURL) +
						"\nDefault city: " + dash(settings.DefaultCity) +
						"\nDefault format: " + dash(settings.DefaultFormat)
					return writeTable(cmd, text, flags.Output)
				}
				env := output.BuildEnvelope(output.SourceAPI, settings, nil, nil)
				return writeMachinePayload(cmd, env, format, flags.Output)
			}

			changed := false
			if cmd.Flags().Changed("base-url") {
				settings.BaseURL = baseURL
				changed = true
			}
			if cmd.Flags().Changed("default-city") {
				settings.DefaultCity = defaultCity
				changed = true
			}
			if cmd.Flags().Changed("default-format") {
				if _, err := output.ParseFormat(defaultFormat); err != nil {
					return err
				}
				settings.DefaultFormat = defaultFormat
				changed = true
			}
			if !changed {
				return fmt.Errorf("provide --base-url, --default-city, or --default-format (or --show)")
			}
			if err := deps.Config.Save(cmd.Context(), settings); err != nil {
				return err
			}
			return writeTable(cmd, "Config saved to "+deps.Config.Path(), flags.Output)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Backend base URL.")
	cmd.Flags().StringVar(&defaultCity, "default-city", "", "Default city slug.")
	cmd.Flags().StringVar(&defaultFormat, "default-format", "", "Default output format: table, json, or yaml.")
	cmd.Flags().BoolVar(&show, "show", false, "Print the stored settings and exit.")
	addGlobalFlags(cmd, &flags)
	return cmd
}
