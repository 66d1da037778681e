package datban

import (
	"context"
	"net/http"
	"net/url"

	"github.com/datban/datban-cli/internal/domain"
)

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries registration data.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

// Login exchanges credentials for a session. Persisting the session is the
// caller's responsibility.
func (c *Client) Login(ctx context.Context, req LoginRequest) (domain.Session, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/login", nil, req)
	if err != nil {
		return domain.Session{}, err
	}
	res, err := decodeObject[authResponse](raw)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{Token: res.AccessToken, User: res.User}, nil
}

// Register creates an account and returns its session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (domain.Session, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/register", nil, req)
	if err != nil {
		return domain.Session{}, err
	}
	res, err := decodeObject[authResponse](raw)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{Token: res.AccessToken, User: res.User}, nil
}

// Profile loads the authenticated account.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/me", nil, nil)
	if err != nil {
		return domain.User{}, err
	}
	return decodeObject[domain.User](raw)
}

// MyBookings lists the authenticated account's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]domain.Booking, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/me/bookings", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Booking](raw)
}

// Favorites lists the authenticated account's favorite restaurants.
func (c *Client) Favorites(ctx context.Context) ([]domain.Favorite, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/me/favorites", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Favorite](raw)
}

// AddFavorite marks one restaurant as favorite.
func (c *Client) AddFavorite(ctx context.Context, restaurantID string) (domain.Favorite, error) {
	raw, err := c.do(ctx, http.MethodPost, "/users/me/favorites/"+url.PathEscape(restaurantID), nil, nil)
	if err != nil {
		return domain.Favorite{}, err
	}
	return decodeObject[domain.Favorite](raw)
}

// RemoveFavorite removes one restaurant from favorites.
func (c *Client) RemoveFavorite(ctx context.Context, restaurantID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/users/me/favorites/"+url.PathEscape(restaurantID), nil, nil)
	return err
}

// UserByID loads one account's public profile.
func (c *Client) UserByID(ctx context.Context, id string) (domain.User, error) {
	raw, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.User{}, err
	}
	return decodeObject[domain.User](raw)
}
