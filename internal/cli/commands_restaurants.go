package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/filter"
	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/mockdata"
	"github.com/datban/datban-cli/internal/service/output"
	"github.com/datban/datban-cli/internal/taxonomy"
)

const mockFallbackWarning = "backend unreachable; using built-in sample data"

func newRestaurantsCommand(deps Dependencies) *cobra.Command {
	restaurants := &cobra.Command{
		Use:   "restaurants",
		Short: "Browse and search restaurants.",
	}
	restaurants.AddCommand(newRestaurantsListCommand(deps))
	restaurants.AddCommand(newRestaurantsGetCommand(deps))
	restaurants.AddCommand(newRestaurantsNearbyCommand(deps))
	restaurants.AddCommand(newRestaurantsTrustedCommand(deps))
	restaurants.AddCommand(newRestaurantsFeaturedCommand(deps))
	return restaurants
}

// listingCatalog is the taxonomy and restaurant data one listing command
// works from, fetched from the backend or the built-in sample data.
type listingCatalog struct {
	cities      []domain.City
	cuisines    []domain.Cuisine
	restaurants []domain.Restaurant
	source      string
	warnings    []string
}

// fetchListingCatalog loads the listing inputs, falling back to sample data
// when the backend cannot be reached. Any other backend error is returned
// as-is.
func fetchListingCatalog(ctx context.Context, deps Dependencies, apiFilter datban.RestaurantFilter) (listingCatalog, error) {
	catalog := listingCatalog{source: output.SourceAPI, warnings: []string{}}

	restaurants, err := deps.API.Restaurants(ctx, apiFilter)
	if datban.IsUnreachable(err) {
		return listingCatalog{
			cities:      mockdata.Cities(),
			cuisines:    mockdata.CuisineTypes(),
			restaurants: mockdata.Restaurants(),
			source:      output.SourceMock,
			warnings:    []string{mockFallbackWarning},
		}, nil
	}
	if err != nil {
		return catalog, err
	}
	catalog.restaurants = restaurants

	if catalog.cities, err = deps.API.Cities(ctx); err != nil {
		return catalog, err
	}
	if catalog.cuisines, err = deps.API.CuisineTypes(ctx); err != nil {
		return catalog, err
	}
	return catalog, nil
}

// resolveListingState maps user-entered slugs onto filter keys. Sample data
// carries legacy records keyed by display name, so the mock source filters
// on names where the backend filters on ids.
func resolveListingState(ctx context.Context, deps Dependencies, catalog listingCatalog, citySlug, districtSlug, query, price string, cuisineSlugs, suitableFor []string) (filter.State, error) {
	var state filter.State
	state.SetQuery(query)
	if price != "" {
		state.TogglePriceRange(price)
	}
	for _, tag := range suitableFor {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			state.ToggleSuitableFor(trimmed)
		}
	}

	if citySlug != "" {
		city, ok := taxonomy.ResolveCity(catalog.cities, citySlug)
		if !ok {
			return state, fmt.Errorf("no cities available to resolve %q", citySlug)
		}
		if catalog.source == output.SourceMock {
			state.SetCity(city.Name)
		} else {
			state.SetCity(city.ID)
		}

		if districtSlug != "" {
			districts, err := fetchDistricts(ctx, deps, catalog, city.ID)
			if err != nil {
				return state, err
			}
			district, ok := resolveDistrict(districts, districtSlug)
			if !ok {
				return state, fmt.Errorf("district %q not found in %s", districtSlug, city.Name)
			}
			if catalog.source == output.SourceMock {
				state.SetDistrict(district.Name)
			} else {
				state.SetDistrict(district.ID)
			}
		}
	} else if districtSlug != "" {
		return state, fmt.Errorf("--district requires --city")
	}

	for _, slug := range cuisineSlugs {
		cuisine, ok := taxonomy.ResolveCuisine(catalog.cuisines, slug)
		if !ok {
			return state, fmt.Errorf("unknown cuisine %q", slug)
		}
		if catalog.source == output.SourceMock {
			state.ToggleCuisine(cuisine.Name)
		} else {
			state.ToggleCuisine(cuisine.ID)
		}
	}
	return state, nil
}

func fetchDistricts(ctx context.Context, deps Dependencies, catalog listingCatalog, cityID string) ([]domain.District, error) {
	if catalog.source == output.SourceMock {
		return mockdata.Districts(cityID), nil
	}
	return deps.API.Districts(ctx, cityID)
}

func resolveDistrict(districts []domain.District, slug string) (domain.District, bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.District{}, false
	}
	for _, district := range districts {
		if district.ID == slug || strings.EqualFold(district.Name, slug) {
			return district, true
		}
	}
	return domain.District{}, false
}

func newRestaurantsListCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var citySlug string
	var districtSlug string
	var query string
	var price string
	var cuisineSlugs []string
	var suitableFor []string
	var minRating float64
	var minRatingSet bool
	var privateRoom bool
	var privateRoomSet bool
	var exclusive bool
	var exclusiveSet bool
	var withCoordinates bool
	var page int
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants matching the active filters.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if minRatingSet && (minRating < 0 || minRating > 5) {
				return fmt.Errorf("--min-rating must be between 0 and 5")
			}

			apiFilter := datban.RestaurantFilter{
				Search: query,
				Page:   page,
				Limit:  limit,
			}
			if minRatingSet {
				apiFilter.MinRating = &minRating
			}
			if privateRoomSet {
				apiFilter.HasPrivateRoom = &privateRoom
			}
			if exclusiveSet {
				apiFilter.IsExclusive = &exclusive
			}

			catalog, err := fetchListingCatalog(cmd.Context(), deps, apiFilter)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			state, err := resolveListingState(cmd.Context(), deps, catalog, citySlug, districtSlug, query, price, cuisineSlugs, suitableFor)
			if err != nil {
				return err
			}

			listed := filter.Apply(catalog.restaurants, state)
			if withCoordinates {
				listed = filter.WithCoordinates(listed)
			}

			if format == output.FormatTable {
				warning := strings.Join(catalog.warnings, "; ")
				return writeTable(cmd, buildRestaurantsTable("Restaurants", listed, warning), flags.Output)
			}
			env := output.BuildEnvelope(catalog.source, map[string]any{
				"restaurants": listed,
				"count":       len(listed),
			}, catalog.warnings, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&citySlug, "city", "", "City slug or id, for example hanoi.")
	cmd.Flags().StringVar(&districtSlug, "district", "", "District id or name (requires --city).")
	cmd.Flags().StringVar(&query, "query", "", "Match restaurant name or address.")
	cmd.Flags().StringVar(&price, "price", "", "Exact price range label, for example '200K - 300K'.")
	cmd.Flags().StringArrayVar(&cuisineSlugs, "cuisine", nil, "Cuisine slug or id (repeatable; any match).")
	cmd.Flags().StringArrayVar(&suitableFor, "suitable-for", nil, "Occasion tag (repeatable; any match).")
	cmd.Flags().Float64Var(&minRating, "min-rating", 0, "Minimum rating between 0 and 5.")
	cmd.Flags().BoolVar(&privateRoom, "private-room", false, "Only restaurants with private rooms.")
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Only exclusive partner restaurants.")
	cmd.Flags().BoolVar(&withCoordinates, "with-coordinates", false, "Only restaurants with map coordinates.")
	cmd.Flags().IntVar(&page, "page", 0, "1-based page number.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Limit returned rows.")
	addGlobalFlags(cmd, &flags)
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		minRatingSet = cmd.Flags().Changed("min-rating")
		privateRoomSet = cmd.Flags().Changed("private-room")
		exclusiveSet = cmd.Flags().Changed("exclusive")
	}

	return cmd
}

func newRestaurantsGetCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var slug string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show one restaurant by id or slug.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			var restaurant domain.Restaurant
			switch {
			case slug != "":
				restaurant, err = deps.API.RestaurantBySlug(cmd.Context(), slug)
			case len(args) == 1 && args[0] != "":
				restaurant, err = deps.API.RestaurantByID(cmd.Context(), args[0])
			default:
				return fmt.Errorf("%s", requiredArg("restaurant id or --slug"))
			}
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			if format == output.FormatTable {
				return writeTable(cmd, buildRestaurantDetail(restaurant), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, restaurant, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&slug, "slug", "", "Look the restaurant up by slug instead of id.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newRestaurantsNearbyCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var lat float64
	var lng float64
	var radius float64
	var radiusSet bool

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List restaurants around a coordinate, closest first.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
				return fmt.Errorf("%s", requiredArg("--lat and --lng"))
			}
			var radiusPtr *float64
			if radiusSet {
				if radius <= 0 {
					return fmt.Errorf("--radius must be > 0")
				}
				radiusPtr = &radius
			}
			restaurants, err := deps.API.NearbyRestaurants(cmd.Context(), lat, lng, radiusPtr)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			restaurants = filter.WithCoordinates(restaurants)

			if format == output.FormatTable {
				return writeTable(cmd, buildNearbyTable(restaurants), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"restaurants": restaurants,
				"count":       len(restaurants),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude of the search center.")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude of the search center.")
	cmd.Flags().Float64Var(&radius, "radius", 0, "Search radius in kilometers.")
	addGlobalFlags(cmd, &flags)
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		radiusSet = cmd.Flags().Changed("radius")
	}
	return cmd
}

func newRestaurantsTrustedCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var citySlug string
	var districtSlug string
	var query string

	cmd := &cobra.Command{
		Use:   "trusted",
		Short: "List verified partner restaurants.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			if districtSlug != "" && citySlug == "" {
				return fmt.Errorf("--district requires --city")
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
			restaurants, err := deps.API.TrustedRestaurants(cmd.Context(), cityID)
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}

			// The backend scopes by city; district and text narrow locally
			// over the fetched list.
			var state filter.State
			state.SetQuery(query)
			if districtSlug != "" {
				districts, err := deps.API.Districts(cmd.Context(), cityID)
				if err != nil {
					return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
				}
				district, ok := resolveDistrict(districts, districtSlug)
				if !ok {
					return fmt.Errorf("district %q not found", districtSlug)
				}
				state.SetDistrict(district.ID)
			}
			restaurants = filter.Apply(restaurants, state)

			if format == output.FormatTable {
				return writeTable(cmd, buildRestaurantsTable("Trusted restaurants", restaurants, ""), flags.Output)
			}
			env := output.BuildEnvelope(output.SourceAPI, map[string]any{
				"restaurants": restaurants,
				"count":       len(restaurants),
			}, nil, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&citySlug, "city", "", "City slug or id.")
	cmd.Flags().StringVar(&districtSlug, "district", "", "District id or name (requires --city).")
	cmd.Flags().StringVar(&query, "query", "", "Match restaurant name or address.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func newRestaurantsFeaturedCommand(deps Dependencies) *cobra.Command {
	var flags globalFlags
	var citySlug string

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show the highly rated restaurants of the home surface.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(flags.Format)
			if err != nil {
				return err
			}
			catalog, err := fetchListingCatalog(cmd.Context(), deps, datban.RestaurantFilter{})
			if err != nil {
				return emitBackendError(cmd, format, flags.Output, flags.Verbose, err)
			}
			state, err := resolveListingState(cmd.Context(), deps, catalog, citySlug, "", "", "", nil, nil)
			if err != nil {
				return err
			}
			featured := filter.Featured(filter.Apply(catalog.restaurants, state))

			if format == output.FormatTable {
				warning := strings.Join(catalog.warnings, "; ")
				return writeTable(cmd, buildRestaurantsTable("Featured restaurants", featured, warning), flags.Output)
			}
			env := output.BuildEnvelope(catalog.source, map[string]any{
				"restaurants": featured,
				"count":       len(featured),
			}, catalog.warnings, nil)
			return writeMachinePayload(cmd, env, format, flags.Output)
		},
	}

	cmd.Flags().StringVar(&citySlug, "city", "", "City slug or id.")
	addGlobalFlags(cmd, &flags)
	return cmd
}

func buildRestaurantsTable(title string, restaurants []domain.Restaurant, warning string) string {
	headers := []string{"Name", "Cuisines", "Location", "Price", "Rating"}
	rows := [][]string{}
	for _, restaurant := range restaurants {
		rows = append(rows, []string{
			restaurant.Name,
			dash(restaurant.FormatCuisines()),
			dash(restaurant.FormatLocation()),
			dash(restaurant.FormatPriceRange()),
			restaurant.FormatRating(),
		})
	}
	if warning != "" {
		title = title + " (" + warning + ")"
	}
	return output.RenderTable(title, headers, rows)
}

func buildNearbyTable(restaurants []domain.Restaurant) string {
	headers := []string{"Name", "Distance", "Location", "Price", "Rating"}
	rows := [][]string{}
	for _, restaurant := range restaurants {
		rows = append(rows, []string{
			restaurant.Name,
			dash(restaurant.FormatDistance()),
			dash(restaurant.FormatLocation()),
			dash(restaurant.FormatPriceRange()),
			restaurant.FormatRating(),
		})
	}
	return output.RenderTable("Nearby restaurants", headers, rows)
}

func buildRestaurantDetail(r domain.Restaurant) string {
	lines := []string{
		"Name: " + r.Name,
		"Cuisines: " + dash(r.FormatCuisines()),
		"Address: " + dash(r.FormatLocation()),
		"Price: " + dash(r.FormatPriceRange()),
		"Rating: " + r.FormatRating(),
		"Open today: " + dash(r.FormatOpeningToday()),
		"Private room: " + boolToYesNo(r.HasPrivateRoom),
		"Exclusive: " + boolToYesNo(r.IsExclusive),
	}
	if r.Description != "" {
		lines = append(lines, "About: "+r.Description)
	}
	return strings.Join(lines, "\n")
}
