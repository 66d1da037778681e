// Package taxonomy resolves human-entered route slugs against the
// authoritative city and cuisine lists.
package taxonomy

import (
	"strings"

	"github.com/datban/datban-cli/internal/domain"
)

// ResolveCity maps a city slug (code or id) to an entry of the authoritative
// list. Codes match case-insensitively, ids exactly; the first match wins.
// When nothing matches, the first entry is the selection, so a loaded list
// always yields a concrete city. The boolean is false only for an empty list.
func ResolveCity(cities []domain.City, slug string) (domain.City, bool) {
	if len(cities) == 0 {
		return domain.City{}, false
	}
	slug = strings.TrimSpace(slug)
	if slug != "" {
		for _, city := range cities {
			if (city.Code != "" && strings.EqualFold(city.Code, slug)) || city.ID == slug {
				return city, true
			}
		}
	}
	return cities[0], true
}

// ResolveCuisine maps a cuisine slug to an entry of the authoritative list,
// matching slug case-insensitively and id exactly. Unlike cities there is no
// default cuisine: an unmatched slug selects nothing.
func ResolveCuisine(cuisines []domain.Cuisine, slug string) (domain.Cuisine, bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.Cuisine{}, false
	}
	for _, cuisine := range cuisines {
		if (cuisine.Slug != "" && strings.EqualFold(cuisine.Slug, slug)) || cuisine.ID == slug {
			return cuisine, true
		}
	}
	return domain.Cuisine{}, false
}

// DistrictsOf keeps the districts belonging to one city. The caller is
// responsible for clearing a stale district selection when the city changes.
func DistrictsOf(districts []domain.District, cityID string) []domain.District {
	filtered := make([]domain.District, 0, len(districts))
	for _, district := range districts {
		if district.CityID == cityID {
			filtered = append(filtered, district)
		}
	}
	return filtered
}
