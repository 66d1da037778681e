package datban

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/datban/datban-cli/internal/domain"
)

// RestaurantFilter carries the server-side filter dimensions of the listing
// endpoint. Zero values are omitted from the query string entirely.
type RestaurantFilter struct {
	CityID         string
	DistrictID     string
	CuisineIDs     []string
	PriceRange     string
	Search         string
	MinRating      *float64
	HasPrivateRoom *bool
	IsExclusive    *bool
	Page           int
	Limit          int
}

func (f RestaurantFilter) values() url.Values {
	values := url.Values{}
	setParam(values, "cityId", f.CityID)
	setParam(values, "districtId", f.DistrictID)
	addListParam(values, "cuisineIds", f.CuisineIDs)
	setParam(values, "priceRange", f.PriceRange)
	setParam(values, "search", f.Search)
	if f.MinRating != nil {
		values.Set("minRating", strconv.FormatFloat(*f.MinRating, 'f', -1, 64))
	}
	if f.HasPrivateRoom != nil {
		values.Set("hasPrivateRoom", strconv.FormatBool(*f.HasPrivateRoom))
	}
	if f.IsExclusive != nil {
		values.Set("isExclusive", strconv.FormatBool(*f.IsExclusive))
	}
	setIntParam(values, "page", f.Page)
	setIntParam(values, "limit", f.Limit)
	return values
}

func normalizeAll(rawRecords []map[string]any) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, len(rawRecords))
	for _, raw := range rawRecords {
		restaurants = append(restaurants, domain.NormalizeRestaurant(raw))
	}
	return restaurants
}

// Restaurants lists restaurants with server-side filters applied. Every
// record runs through the normalizer regardless of payload shape.
func (c *Client) Restaurants(ctx context.Context, filter RestaurantFilter) ([]domain.Restaurant, error) {
	raw, err := c.do(ctx, http.MethodGet, "/restaurants", filter.values(), nil)
	if err != nil {
		return nil, err
	}
	rawRecords, err := decodeList[map[string]any](raw)
	if err != nil {
		return nil, err
	}
	return normalizeAll(rawRecords), nil
}

func (c *Client) restaurant(ctx context.Context, path string) (domain.Restaurant, error) {
	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return domain.Restaurant{}, err
	}
	rawRecord, err := decodeObject[map[string]any](raw)
	if err != nil {
		return domain.Restaurant{}, err
	}
	return domain.NormalizeRestaurant(rawRecord), nil
}

// RestaurantByID loads one restaurant by identifier.
func (c *Client) RestaurantByID(ctx context.Context, id string) (domain.Restaurant, error) {
	return c.restaurant(ctx, "/restaurants/"+url.PathEscape(id))
}

// RestaurantBySlug loads one restaurant by slug.
func (c *Client) RestaurantBySlug(ctx context.Context, slug string) (domain.Restaurant, error) {
	return c.restaurant(ctx, "/restaurants/slug/"+url.PathEscape(slug))
}

// NearbyRestaurants lists restaurants around a point. Filtering by distance
// happens server-side; the client never recomputes distances locally.
func (c *Client) NearbyRestaurants(ctx context.Context, lat, lng float64, radius *float64) ([]domain.Restaurant, error) {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	if radius != nil {
		values.Set("radius", strconv.FormatFloat(*radius, 'f', -1, 64))
	}
	raw, err := c.do(ctx, http.MethodGet, "/restaurants/nearby", values, nil)
	if err != nil {
		return nil, err
	}
	rawRecords, err := decodeList[map[string]any](raw)
	if err != nil {
		return nil, err
	}
	return normalizeAll(rawRecords), nil
}

// TrustedRestaurants lists the verified selection for one city.
func (c *Client) TrustedRestaurants(ctx context.Context, cityID string) ([]domain.Restaurant, error) {
	values := url.Values{}
	setParam(values, "cityId", cityID)
	raw, err := c.do(ctx, http.MethodGet, "/restaurants/trusted", values, nil)
	if err != nil {
		return nil, err
	}
	rawRecords, err := decodeList[map[string]any](raw)
	if err != nil {
		return nil, err
	}
	return normalizeAll(rawRecords), nil
}
