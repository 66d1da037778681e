package filter

import (
	"strings"

	"github.com/datban/datban-cli/internal/domain"
)

// Apply returns the subset of restaurants matching every active dimension of
// the state, in the input order. Dimensions compose with logical AND;
// cuisine and suitable-for match on set intersection, the text query on a
// case-insensitive substring of name or address. Inactive dimensions match
// everything, so applying the same state twice is a no-op.
func Apply(restaurants []domain.Restaurant, state State) []domain.Restaurant {
	filtered := make([]domain.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if Matches(restaurant, state) {
			filtered = append(filtered, restaurant)
		}
	}
	return filtered
}

// Matches evaluates every active predicate against one restaurant.
func Matches(r domain.Restaurant, state State) bool {
	if state.CityID != "" && r.CityKey() != state.CityID {
		return false
	}
	if state.DistrictID != "" && r.DistrictKey() != state.DistrictID {
		return false
	}
	if state.HasQuery() && !matchesQuery(r, state.Query) {
		return false
	}
	if state.PriceRange != "" && r.PriceRange != state.PriceRange {
		return false
	}
	if len(state.CuisineIDs) > 0 && !matchesCuisines(r, state.CuisineIDs) {
		return false
	}
	if len(state.SuitableFor) > 0 && !matchesSuitableFor(r, state.SuitableFor) {
		return false
	}
	return true
}

func matchesQuery(r domain.Restaurant, query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Address), needle)
}

func matchesCuisines(r domain.Restaurant, selected []string) bool {
	for _, cuisine := range r.Cuisines {
		for _, id := range selected {
			if cuisine.ID == id {
				return true
			}
		}
	}
	return false
}

func matchesSuitableFor(r domain.Restaurant, selected []string) bool {
	for _, tag := range r.SuitableFor {
		for _, want := range selected {
			if tag == want {
				return true
			}
		}
	}
	return false
}

// WithCoordinates drops restaurants missing either coordinate. Only records
// with a full coordinate pair participate in distance-based listing.
func WithCoordinates(restaurants []domain.Restaurant) []domain.Restaurant {
	located := make([]domain.Restaurant, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if restaurant.HasCoordinates() {
			located = append(located, restaurant)
		}
	}
	return located
}

// Featured returns the highly rated prefix shown on the home surface.
func Featured(restaurants []domain.Restaurant) []domain.Restaurant {
	featured := make([]domain.Restaurant, 0, 4)
	for _, restaurant := range restaurants {
		if restaurant.Rating >= 4.5 {
			featured = append(featured, restaurant)
			if len(featured) == 4 {
				break
			}
		}
	}
	return featured
}
