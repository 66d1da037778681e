package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/service/output"
)

func newProfileCommand(deps Dependencies) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "View your account, bookings, and favorites.",
	}
	profile.AddCommand(newProfileShowCommand(deps))
	profile.AddCommand(newProfileBookingsCommand(deps))
	profile.AddCommand(newProfileFavoritesCommand(deps))
	return profile
}

func newProfileShowCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the logged-in account with activity counters.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			user, err := deps.API.Profile(cmd.Context())
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				text := "Name: " + user.Name +
					"\nEmail: " + user.Email +
					"\nPhone: " + dash(user.Phone)
				if user.Stats != nil {
					text += fmt.Sprintf("\nBookings: %d\nReviews: %d\nFavorites: %d",
						user.Stats.BookingsCount, user.Stats.ReviewsCount, user.Stats.FavoritesCount)
				}
				return writeTable(cmd, text, flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, user, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newProfileBookingsCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List your bookings.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			bookings, err := deps.API.MyBookings(cmd.Context())
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				return writeTable(cmd, buildBookingsTable("Your bookings", bookings), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"bookings": bookings,
				"count":    len(bookings),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newProfileFavoritesCommand(deps Dependencies) *cobra.Command {
	favorites := &cobra.Command{
		Use:   "favorites",
		Short: "List and edit your favorite restaurants.",
	}
	favorites.AddCommand(newProfileFavoritesListCommand(deps))
	favorites.AddCommand(newProfileFavoritesAddCommand(deps))
	favorites.AddCommand(newProfileFavoritesRemoveCommand(deps))
	return favorites
}

func newProfileFavoritesListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your favorite restaurants.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			favorites, err := deps.API.Favorites(cmd.Context())
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				headers := []string{"Restaurant ID", "Name", "Rating"}
				rows := [][]string{}
				for _, favorite := range favorites {
					name, rating := "-", "-"
					if favorite.Restaurant != nil {
						name = favorite.Restaurant.Name
						if favorite.Restaurant.Rating > 0 {
							rating = strconv.FormatFloat(favorite.Restaurant.Rating, 'f', 1, 64)
						}
					}
					rows = append(rows, []string{favorite.RestaurantID, name, rating})
				}
				return writeTable(cmd, output.RenderTable("Favorites", headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"favorites": favorites,
				"count":     len(favorites),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newProfileFavoritesAddCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "add <restaurant-id>",
		Short: "Add a restaurant to your favorites.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			favorite, err := deps.API.AddFavorite(cmd.Context(), args[0])
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				return writeTable(cmd, "Added to favorites: "+favorite.RestaurantID, flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, favorite, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newProfileFavoritesRemoveCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "remove <restaurant-id>",
		Short: "Remove a restaurant from your favorites.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			if err := deps.API.RemoveFavorite(cmd.Context(), args[0]); err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			return writeTable(cmd, "Removed from favorites: "+args[0], flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}
