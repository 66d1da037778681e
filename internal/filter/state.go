// Package filter holds the client-side filter state and the predicate
// pipeline applied to restaurant and blog listings.
package filter

import "strings"

// State is the active filter set for a listing surface. City and price range
// are single-select, cuisine and suitable-for are toggle sets, and the
// district selection is only meaningful inside the selected city.
type State struct {
	CityID      string
	DistrictID  string
	Query       string
	PriceRange  string
	CuisineIDs  []string
	SuitableFor []string
}

// SetCity selects a city. Switching city clears the district selection,
// since districts belong to exactly one city.
func (s *State) SetCity(cityID string) {
	if s.CityID != cityID {
		s.DistrictID = ""
	}
	s.CityID = cityID
}

// SetDistrict selects a district within the current city.
func (s *State) SetDistrict(districtID string) {
	s.DistrictID = districtID
}

// SetQuery sets the free-text query.
func (s *State) SetQuery(query string) {
	s.Query = query
}

// TogglePriceRange selects a price bucket; selecting the active bucket again
// clears it. Single-select despite the multi-select widget affordance.
func (s *State) TogglePriceRange(label string) {
	if s.PriceRange == label {
		s.PriceRange = ""
		return
	}
	s.PriceRange = label
}

// ToggleCuisine adds or removes one cuisine id. The set never holds
// duplicates and keeps insertion order.
func (s *State) ToggleCuisine(cuisineID string) {
	s.CuisineIDs = toggle(s.CuisineIDs, cuisineID)
}

// ToggleSuitableFor mirrors ToggleCuisine over the suitable-for tags.
func (s *State) ToggleSuitableFor(tag string) {
	s.SuitableFor = toggle(s.SuitableFor, tag)
}

func toggle(values []string, value string) []string {
	for i, existing := range values {
		if existing == value {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return append(values, value)
}

// HasQuery reports whether the trimmed free-text query is active.
func (s State) HasQuery() bool {
	return strings.TrimSpace(s.Query) != ""
}

// IsEmpty reports whether no dimension is active.
func (s State) IsEmpty() bool {
	return s.CityID == "" && s.DistrictID == "" && !s.HasQuery() &&
		s.PriceRange == "" && len(s.CuisineIDs) == 0 && len(s.SuitableFor) == 0
}
