package datban

import (
	"context"
	"net/http"
	"net/url"

	"github.com/datban/datban-cli/internal/domain"
)

// Cities lists the authoritative city taxonomy.
func (c *Client) Cities(ctx context.Context) ([]domain.City, error) {
	raw, err := c.do(ctx, http.MethodGet, "/locations/cities", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.City](raw)
}

// CityByID loads one city.
func (c *Client) CityByID(ctx context.Context, id string) (domain.City, error) {
	raw, err := c.do(ctx, http.MethodGet, "/locations/cities/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.City{}, err
	}
	return decodeObject[domain.City](raw)
}

// Districts lists the districts of one city.
func (c *Client) Districts(ctx context.Context, cityID string) ([]domain.District, error) {
	raw, err := c.do(ctx, http.MethodGet, "/locations/cities/"+url.PathEscape(cityID)+"/districts", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.District](raw)
}

// CuisineTypes lists the cuisine taxonomy.
func (c *Client) CuisineTypes(ctx context.Context) ([]domain.Cuisine, error) {
	raw, err := c.do(ctx, http.MethodGet, "/locations/cuisines", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Cuisine](raw)
}
