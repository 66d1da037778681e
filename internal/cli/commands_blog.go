package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/filter"
	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/service/output"
	"github.com/datban/datban-cli/internal/taxonomy"
)

func newBlogCommand(deps Dependencies) *cobra.Command {
	blog := &cobra.Command{
		Use:   "blog",
		Short: "Read the food blog.",
	}
	blog.AddCommand(newBlogListCommand(deps))
	blog.AddCommand(newBlogCategoriesCommand(deps))
	blog.AddCommand(newBlogMostViewedCommand(deps))
	blog.AddCommand(newBlogGetCommand(deps))
	return blog
}

func newBlogListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var categoryID string
	var citySlug string
	var page int
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published blog posts, newest first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			blogFilter := datban.BlogFilter{
				CategoryID: categoryID,
				Page:       page,
				Limit:      limit,
			}
			cityName := ""
			if citySlug != "" {
				cities, err := deps.API.Cities(cmd.Context())
				if err != nil {
					return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
				}
				resolved, ok := taxonomy.ResolveCity(cities, citySlug)
				if !ok {
					return fmt.Errorf("no cities available to resolve %q", citySlug)
				}
				cityName = resolved.Name
				blogFilter.CityID = resolved.ID
			}
			posts, err := deps.API.BlogPosts(cmd.Context(), blogFilter)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			// The backend already scopes by category and city id; refine
			// locally so posts tagged with the city name only also stay in.
			posts = filter.PostsForCity(posts, cityName)
			posts = filter.PostsForCategory(posts, categoryID)
			posts = filter.Latest(posts, limit)

			if format == output.FormatTable {
				return writeTable(cmd, buildBlogTable("Blog posts", posts), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"posts": posts,
				"count": len(posts),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "Category id.")
	cmd.Flags().StringVar(&citySlug, "city", "", "City slug or id.")
	cmd.Flags().IntVar(&page, "page", 0, "1-based page number.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Limit returned rows.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newBlogCategoriesCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List blog categories.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			categories, err := deps.API.BlogCategories(cmd.Context())
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				headers := []string{"ID", "Name", "Slug"}
				rows := [][]string{}
				for _, category := range categories {
					rows = append(rows, []string{category.ID, category.Name, dash(category.Slug)})
				}
				return writeTable(cmd, output.RenderTable("Blog categories", headers, rows), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"categories": categories,
				"count":      len(categories),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	addGlobalFlags(cmd, &flags)
	return cmd
}

func newBlogMostViewedCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "most-viewed",
		Short: "List the most viewed blog posts.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			posts, err := deps.API.BlogMostViewed(cmd.Context(), limit)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			// Order locally too; the ranking must hold even when the backend
			// returns an unsorted page.
			posts = filter.MostViewed(posts, limit)

			if format == output.FormatTable {
				return writeTable(cmd, buildBlogTable("Most viewed posts", posts), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"posts": posts,
				"count": len(posts),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Limit returned rows (default 6).")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newBlogGetCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var slug string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show one blog post by id or slug.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			var post domain.BlogPost
			switch {
			case slug != "":
				post, err = deps.API.BlogPostBySlug(cmd.Context(), slug)
			case len(args) == 1 && args[0] != "":
				post, err = deps.API.BlogPostByID(cmd.Context(), args[0])
			default:
				return fmt.Errorf("%s", requiredArg("post id or --slug"))
			}
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				lines := "Title: " + post.Title +
					"\nCategory: " + post.FormatCategory() +
					"\nPublished: " + dash(post.FormatPublished()) +
					"\nViews: " + strconv.Itoa(post.Views)
				if post.Author != nil && post.Author.Name != "" {
					lines += "\nAuthor: " + post.Author.Name
				}
				if post.Excerpt != "" {
					lines += "\n\n" + post.Excerpt
				}
				if post.Content != "" {
					lines += "\n\n" + post.Content
				}
				return writeTable(cmd, lines, flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, post, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "Look the post up by slug instead of id.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func buildBlogTable(title string, posts []domain.BlogPost) string {
	headers := []string{"Title", "Category", "Published", "Views"}
	rows := [][]string{}
	for _, post := range posts {
		rows = append(rows, []string{
			post.Title,
			post.FormatCategory(),
			dash(post.FormatPublished()),
			strconv.Itoa(post.Views),
		})
	}
	return output.RenderTable(title, headers, rows)
}
