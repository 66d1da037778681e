package datban

import (
	"context"
	"net/http"
	"net/url"

	"github.com/datban/datban-cli/internal/domain"
)

// Collections lists curated restaurant collections, optionally for one city.
func (c *Client) Collections(ctx context.Context, cityID string) ([]domain.Collection, error) {
	values := url.Values{}
	setParam(values, "cityId", cityID)
	raw, err := c.do(ctx, http.MethodGet, "/collections", values, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Collection](raw)
}

// CollectionByID loads one collection with its member restaurants.
func (c *Client) CollectionByID(ctx context.Context, id string) (domain.Collection, error) {
	raw, err := c.do(ctx, http.MethodGet, "/collections/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.Collection{}, err
	}
	return decodeObject[domain.Collection](raw)
}

// CollectionBySlug loads one collection by slug.
func (c *Client) CollectionBySlug(ctx context.Context, slug string) (domain.Collection, error) {
	raw, err := c.do(ctx, http.MethodGet, "/collections/slug/"+url.PathEscape(slug), nil, nil)
	if err != nil {
		return domain.Collection{}, err
	}
	return decodeObject[domain.Collection](raw)
}

// BlogFilter narrows blog listings.
type BlogFilter struct {
	CategoryID string
	CityID     string
	Page       int
	Limit      int
}

func (f BlogFilter) values() url.Values {
	values := url.Values{}
	setParam(values, "categoryId", f.CategoryID)
	setParam(values, "cityId", f.CityID)
	setIntParam(values, "page", f.Page)
	setIntParam(values, "limit", f.Limit)
	return values
}

// BlogPosts lists posts matching the filter.
func (c *Client) BlogPosts(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, error) {
	raw, err := c.do(ctx, http.MethodGet, "/blog", filter.values(), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BlogPost](raw)
}

// BlogCategories lists post categories.
func (c *Client) BlogCategories(ctx context.Context) ([]domain.BlogCategory, error) {
	raw, err := c.do(ctx, http.MethodGet, "/blog/categories", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BlogCategory](raw)
}

// BlogMostViewed lists the most viewed posts, server-ordered.
func (c *Client) BlogMostViewed(ctx context.Context, limit int) ([]domain.BlogPost, error) {
	values := url.Values{}
	setIntParam(values, "limit", limit)
	raw, err := c.do(ctx, http.MethodGet, "/blog/most-viewed", values, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BlogPost](raw)
}

// BlogPostByID loads one post.
func (c *Client) BlogPostByID(ctx context.Context, id string) (domain.BlogPost, error) {
	raw, err := c.do(ctx, http.MethodGet, "/blog/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.BlogPost{}, err
	}
	return decodeObject[domain.BlogPost](raw)
}

// BlogPostBySlug loads one post by slug.
func (c *Client) BlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	raw, err := c.do(ctx, http.MethodGet, "/blog/slug/"+url.PathEscape(slug), nil, nil)
	if err != nil {
		return domain.BlogPost{}, err
	}
	return decodeObject[domain.BlogPost](raw)
}
