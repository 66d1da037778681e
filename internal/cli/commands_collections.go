package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/service/output"
	"github.com/datban/datban-cli/internal/taxonomy"
)

func newCollectionsCommand(deps Dependencies) *cobra.Command {
	collections := &cobra.Command{
		Use:   "collections",
		Short: "Browse curated restaurant collections.",
	}
	collections.AddCommand(newCollectionsListCommand(deps))
	collections.AddCommand(newCollectionsGetCommand(deps))
	return collections
}

func newCollectionsListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var citySlug string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections, optionally for one city.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			cityID := ""
			if citySlug != "" {
				cities, err := deps.API.Cities(cmd.Context())
				if err != nil {
					return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
				}
				city, ok := taxonomy.ResolveCity(cities, citySlug)
				if !ok {
					return fmt.Errorf("no cities available to resolve %q", citySlug)
				}
				cityID = city.ID
			}
			collections, err := deps.API.Collections(cmd.Context(), cityID)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				headers := []string{"Title", "Slug", "Featured", "Restaurants"}
				rows := [][]string{}
				for _, collection := range collections {
					rows = append(rows, []string{
						collection.Title,
						dash(collection.Slug),
						boolToYesNo(collection.IsFeatured),
						strconv.Itoa(len(collection.Restaurants)),
					})
				}
				return writeTable(cmd, output.RenderTable("Collections", headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"collections": collections,
				"count":       len(collections),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&citySlug, "city", "", "City slug or id.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newCollectionsGetCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var slug string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show one collection and its restaurants.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			var collection domain.Collection
			switch {
			case slug != "":
				collection, err = deps.API.CollectionBySlug(cmd.Context(), slug)
			case len(args) == 1 && args[0] != "":
				collection, err = deps.API.CollectionByID(cmd.Context(), args[0])
			default:
				return fmt.Errorf("%s", requiredArg("collection id or --slug"))
			}
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				headers := []string{"Restaurant", "Rating", "Reviews"}
				rows := [][]string{}
				for _, member := range collection.Restaurants {
					rating := "-"
					if member.Rating > 0 {
						rating = fmt.Sprintf("%.1f", member.Rating)
					}
					rows = append(rows, []string{member.Name, rating, strconv.Itoa(member.ReviewCount)})
				}
				return writeTable(cmd, output.RenderTable("Collection: "+collection.Title, headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, collection, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "Look the collection up by slug instead of id.")
	addGlobalFlags(cmd, &flags)
	return cmd
}
