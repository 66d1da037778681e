package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/mockdata"
	"github.com/datban/datban-cli/internal/service/output"
	"github.com/datban/datban-cli/internal/taxonomy"
)

func newLocationsCommand(deps Dependencies) *cobra.Command {
	locations := &cobra.Command{
		Use:   "locations",
		Short: "Browse cities, districts, and cuisine types.",
	}
	locations.AddCommand(newLocationsCitiesCommand(deps))
	locations.AddCommand(newLocationsDistrictsCommand(deps))
	locations.AddCommand(newLocationsCuisinesCommand(deps))
	return locations
}

func newLocationsCitiesCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "cities",
		Short: "List available cities.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			source := output.SourceAPI
			warnings := []string{}
			cities, err := deps.API.Cities(cmd.Context())
			if datban.IsUnreachable(err) {
				cities, source, warnings = mockdata.Cities(), output.SourceMock, []string{mockFallbackWarning}
			} else if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				headers := []string{"ID", "Name", "Code"}
				rows := [][]string{}
				for _, city := range cities {
					rows = append(rows, []string{city.ID, city.Name, dash(city.Code)})
				}
				return writeTable(cmd, output.RenderTable("Cities", headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(source, map[string]any{
				"cities": cities,
				"count":  len(cities),
			}, warnings, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newLocationsDistrictsCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var citySlug string

	cmd := &cobra.Command{
		Use:   "districts",
		Short: "List districts of one city.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if citySlug == "" {
				return fmt.Errorf("%s", requiredArg("--city"))
			}

			source := output.SourceAPI
			warnings := []string{}
			var city domain.City
			var districts []domain.District

			cities, err := deps.API.Cities(cmd.Context())
			if datban.IsUnreachable(err) {
				source, warnings = output.SourceMock, []string{mockFallbackWarning}
				cities = mockdata.Cities()
			} else if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			city, ok := taxonomy.ResolveCity(cities, citySlug)
			if !ok {
				return fmt.Errorf("no cities available to resolve %q", citySlug)
			}

			if source == output.SourceMock {
				districts = mockdata.Districts(city.ID)
			} else {
				districts, err = deps.API.Districts(cmd.Context(), city.ID)
				if err != nil {
					return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
				}
			}
			districts = taxonomy.DistrictsOf(districts, city.ID)

			if format == output.FormatTable {
				headers := []string{"ID", "Name"}
				rows := [][]string{}
				for _, district := range districts {
					rows = append(rows, []string{district.ID, district.Name})
				}
				return writeTable(cmd, output.RenderTable("Districts of "+city.Name, headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(source, map[string]any{
				"city":      city,
				"districts": districts,
				"count":     len(districts),
			}, warnings, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&citySlug, "city", "", "City slug or id.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newLocationsCuisinesCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "cuisines",
		Short: "List cuisine types.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			source := output.SourceAPI
			warnings := []string{}
			cuisines, err := deps.API.CuisineTypes(cmd.Context())
			if datban.IsUnreachable(err) {
				cuisines, source, warnings = mockdata.CuisineTypes(), output.SourceMock, []string{mockFallbackWarning}
			} else if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				headers := []string{"ID", "Name", "Slug"}
				rows := [][]string{}
				for _, cuisine := range cuisines {
					rows = append(rows, []string{cuisine.ID, cuisine.Name, dash(cuisine.Slug)})
				}
				return writeTable(cmd, output.RenderTable("Cuisine types", headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(source, map[string]any{
				"cuisines": cuisines,
				"count":    len(cuisines),
			}, warnings, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}
