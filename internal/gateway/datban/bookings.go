package datban

import (
	"context"
	"net/http"
	"net/url"

	"github.com/datban/datban-cli/internal/domain"
)

// CreateBooking submits one reservation. The request is attempted exactly
// once and never retried automatically.
func (c *Client) CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	raw, err := c.do(ctx, http.MethodPost, "/bookings", nil, req)
	if err != nil {
		return domain.Booking{}, err
	}
	return decodeObject[domain.Booking](raw)
}

// Bookings lists bookings, optionally for one restaurant.
func (c *Client) Bookings(ctx context.Context, restaurantID string) ([]domain.Booking, error) {
	values := url.Values{}
	setParam(values, "restaurantId", restaurantID)
	raw, err := c.do(ctx, http.MethodGet, "/bookings", values, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Booking](raw)
}

// BookingByID loads one booking.
func (c *Client) BookingByID(ctx context.Context, id string) (domain.Booking, error) {
	raw, err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.Booking{}, err
	}
	return decodeObject[domain.Booking](raw)
}

// UpdateBookingStatus transitions one booking's status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id, status, reason string) (domain.Booking, error) {
	body := map[string]any{"status": status}
	if reason != "" {
		body["cancellationReason"] = reason
	}
	raw, err := c.do(ctx, http.MethodPatch, "/bookings/"+url.PathEscape(id)+"/status", nil, body)
	if err != nil {
		return domain.Booking{}, err
	}
	return decodeObject[domain.Booking](raw)
}

// CancelBooking cancels one booking. The backend models cancel as delete.
func (c *Client) CancelBooking(ctx context.Context, id string) (domain.Booking, error) {
	raw, err := c.do(ctx, http.MethodDelete, "/bookings/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.Booking{}, err
	}
	return decodeObject[domain.Booking](raw)
}

// CreateReview submits one review.
func (c *Client) CreateReview(ctx context.Context, req domain.ReviewRequest) (domain.Review, error) {
	raw, err := c.do(ctx, http.MethodPost, "/reviews", nil, req)
	if err != nil {
		return domain.Review{}, err
	}
	return decodeObject[domain.Review](raw)
}

// Reviews lists reviews, optionally for one restaurant, with pagination.
func (c *Client) Reviews(ctx context.Context, restaurantID string, page, limit int) ([]domain.Review, error) {
	values := url.Values{}
	setParam(values, "restaurantId", restaurantID)
	setIntParam(values, "page", page)
	setIntParam(values, "limit", limit)
	raw, err := c.do(ctx, http.MethodGet, "/reviews", values, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Review](raw)
}

// ReviewByID loads one review.
func (c *Client) ReviewByID(ctx context.Context, id string) (domain.Review, error) {
	raw, err := c.do(ctx, http.MethodGet, "/reviews/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return domain.Review{}, err
	}
	return decodeObject[domain.Review](raw)
}
