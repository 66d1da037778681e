package datban

import (
	"context"

	"github.com/datban/datban-cli/internal/domain"
)

// API is the full surface commands consume. *Client implements it; tests
// substitute doubles.
type API interface {
	Login(ctx context.Context, req LoginRequest) (domain.Session, error)
	Register(ctx context.Context, req RegisterRequest) (domain.Session, error)

	Restaurants(ctx context.Context, filter RestaurantFilter) ([]domain.Restaurant, error)
	RestaurantByID(ctx context.Context, id string) (domain.Restaurant, error)
	RestaurantBySlug(ctx context.Context, slug string) (domain.Restaurant, error)
	NearbyRestaurants(ctx context.Context, lat, lng float64, radius *float64) ([]domain.Restaurant, error)
	TrustedRestaurants(ctx context.Context, cityID string) ([]domain.Restaurant, error)

	Cities(ctx context.Context) ([]domain.City, error)
	CityByID(ctx context.Context, id string) (domain.City, error)
	Districts(ctx context.Context, cityID string) ([]domain.District, error)
	CuisineTypes(ctx context.Context) ([]domain.Cuisine, error)

	Collections(ctx context.Context, cityID string) ([]domain.Collection, error)
	CollectionByID(ctx context.Context, id string) (domain.Collection, error)
	CollectionBySlug(ctx context.Context, slug string) (domain.Collection, error)

	BlogPosts(ctx context.Context, filter BlogFilter) ([]domain.BlogPost, error)
	BlogCategories(ctx context.Context) ([]domain.BlogCategory, error)
	BlogMostViewed(ctx context.Context, limit int) ([]domain.BlogPost, error)
	BlogPostByID(ctx context.Context, id string) (domain.BlogPost, error)
	BlogPostBySlug(ctx context.Context, slug string) (domain.BlogPost, error)

	CreateBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error)
	Bookings(ctx context.Context, restaurantID string) ([]domain.Booking, error)
	BookingByID(ctx context.Context, id string) (domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status, reason string) (domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (domain.Booking, error)

	CreateReview(ctx context.Context, req domain.ReviewRequest) (domain.Review, error)
	Reviews(ctx context.Context, restaurantID string, page, limit int) ([]domain.Review, error)
	ReviewByID(ctx context.Context, id string) (domain.Review, error)

	Profile(ctx context.Context) (domain.User, error)
	MyBookings(ctx context.Context) ([]domain.Booking, error)
	Favorites(ctx context.Context) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, restaurantID string) (domain.Favorite, error)
	RemoveFavorite(ctx context.Context, restaurantID string) error
	UserByID(ctx context.Context, id string) (domain.User, error)
}

var _ API = (*Client)(nil)
