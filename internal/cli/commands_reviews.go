package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/service/output"
)

func newReviewsCommand(deps Dependencies) *cobra.Command {
	reviews := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write restaurant reviews.",
	}
	reviews.AddCommand(newReviewsListCommand(deps))
	reviews.AddCommand(newReviewsAddCommand(deps))
	reviews.AddCommand(newReviewsGetCommand(deps))
	return reviews
}

func newReviewsListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var restaurantID string
	var page int
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reviews of one restaurant.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if restaurantID == "" {
				return fmt.Errorf("%s", requiredArg("--restaurant"))
			}
			reviews, err := deps.API.Reviews(cmd.Context(), restaurantID, page, limit)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				headers := []string{"Author", "Rating", "Comment"}
				rows := [][]string{}
				for _, review := range reviews {
					rows = append(rows, []string{
						review.FormatAuthor(),
						review.FormatRating(),
						dash(review.Comment),
					})
				}
				return writeTable(cmd, output.RenderTable("Reviews", headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"reviews": reviews,
				"count":   len(reviews),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&restaurantID, "restaurant", "", "Restaurant id.")
	cmd.Flags().IntVar(&page, "page", 0, "1-based page number.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Limit returned rows.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newReviewsAddCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var req domain.ReviewRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a review for a restaurant you visited.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if req.RestaurantID == "" {
				return fmt.Errorf("%s", requiredArg("--restaurant"))
			}
			if req.Rating < 1 || req.Rating > 5 {
				return fmt.Errorf("--rating must be between 1 and 5")
			}
			if _, err := requireLogin(cmd.Context(), deps, cmd, format, flags.Output); err != nil {
				return err
			}
			review, err := deps.API.CreateReview(cmd.Context(), req)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				return writeTable(cmd, "Review posted: "+review.FormatRating(), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, review, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&req.RestaurantID, "restaurant", "", "Restaurant id.")
	cmd.Flags().StringVar(&req.BookingID, "booking", "", "Booking id the review refers to.")
	cmd.Flags().IntVar(&req.Rating, "rating", 0, "Overall rating between 1 and 5.")
	cmd.Flags().IntVar(&req.FoodRating, "food-rating", 0, "Food rating between 1 and 5.")
	cmd.Flags().IntVar(&req.ServiceRating, "service-rating", 0, "Service rating between 1 and 5.")
	cmd.Flags().IntVar(&req.AmbianceRating, "ambiance-rating", 0, "Ambiance rating between 1 and 5.")
	cmd.Flags().StringVar(&req.Comment, "comment", "", "Review text.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newReviewsGetCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one review.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			review, err := deps.API.ReviewByID(cmd.Context(), args[0])
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				text := "Author: " + review.FormatAuthor() +
					"\nRating: " + review.FormatRating()
				if review.Comment != "" {
					text += "\n\n" + review.Comment
				}
				return writeTable(cmd, text, flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, review, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}
