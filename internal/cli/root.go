package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	version := resolvedVersion(deps.Version)

	root := &cobra.Command{
		Use:           "datban",
		Short:         "Discover restaurants, read the food blog, and book tables.",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			showVersion, _ := cmd.Flags().GetBool("version")
			if showVersion {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
				return errVersionShown
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			applyConfigDefaults(cmd, deps)
			applyBaseURLOverride(cmd, deps.API)
			attachVerboseHTTPTrace(cmd, deps.API)
			showVersion, _ := cmd.Flags().GetBool("version")
			if !showVersion {
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
			return errVersionShown
		},
	}
	root.Flags().BoolP("version", "v", false, "Show CLI version and exit.")
	root.SetHelpCommand(&cobra.Command{Hidden: true})

	root.AddCommand(newRestaurantsCommand(deps))
	root.AddCommand(newLocationsCommand(deps))
	root.AddCommand(newCollectionsCommand(deps))
	root.AddCommand(newBlogCommand(deps))
	root.AddCommand(newBookCommand(deps))
	root.AddCommand(newBookingsCommand(deps))
	root.AddCommand(newReviewsCommand(deps))
	root.AddCommand(newAuthCommand(deps))
	root.AddCommand(newProfileCommand(deps))
	root.AddCommand(newConfigureCommand(deps))

	return root
}

type verboseHTTPTraceSetter interface {
	SetVerboseOutput(out io.Writer)
}

type baseURLSetter interface {
	SetBaseURL(baseURL string)
}

// applyConfigDefaults seeds flags from the stored settings. A flag the user
// set on the command line always wins over the configured default.
func applyConfigDefaults(cmd *cobra.Command, deps Dependencies) {
	if cmd == nil || deps.Config == nil {
		return
	}
	settings, err := deps.Config.Load(cmd.Context())
	if err != nil {
		return
	}
	seedFlagDefault(cmd, "format", settings.DefaultFormat)
	seedFlagDefault(cmd, "city", settings.DefaultCity)
}

func seedFlagDefault(cmd *cobra.Command, name, value string) {
	if value == "" {
		return
	}
	flag := cmd.Flags().Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	_ = cmd.Flags().Set(name, value)
}

func applyBaseURLOverride(cmd *cobra.Command, api any) {
	if cmd == nil || api == nil {
		return
	}
	baseURL, err := cmd.Flags().GetString("base-url")
	if err != nil || baseURL == "" {
		return
	}
	if setter, ok := api.(baseURLSetter); ok {
		setter.SetBaseURL(baseURL)
	}
}

func attachVerboseHTTPTrace(cmd *cobra.Command, api any) {
	if cmd == nil || api == nil {
		return
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	setter, ok := api.(verboseHTTPTraceSetter)
	if !ok {
		return
	}
	setter.SetVerboseOutput(cmd.ErrOrStderr())
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "[verbose] http trace enabled")
}
