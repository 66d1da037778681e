package domain

// Image roles used by the backend.
const (
	ImageTypeMain    = "MAIN"
	ImageTypeGallery = "GALLERY"
	ImageTypeMenu    = "MENU"
)

// City is a geographic taxonomy entry.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// District belongs to exactly one city.
type District struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Code   string `json:"code,omitempty"`
	CityID string `json:"cityId"`
}

// Cuisine is a named category attached many-to-many to restaurants.
type Cuisine struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// Image is one restaurant image tagged by role.
type Image struct {
	ID        string `json:"id"`
	ImageURL  string `json:"imageUrl"`
	ImageType string `json:"imageType"`
}

// OpeningHour is one weekly opening-hours entry.
type OpeningHour struct {
	ID        string `json:"id,omitempty"`
	DayOfWeek string `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsClosed  bool   `json:"isClosed"`
}

// Regulation is one free-text house rule.
type Regulation struct {
	ID             string `json:"id,omitempty"`
	RegulationText string `json:"regulationText"`
}

// Amenities lists independent venue facilities. Either the whole record is
// present or the restaurant carries none.
type Amenities struct {
	ID              string `json:"id,omitempty"`
	Wifi            bool   `json:"wifi"`
	AirConditioning bool   `json:"airConditioning"`
	CardPayment     bool   `json:"cardPayment"`
	PrivateRoom     bool   `json:"privateRoom"`
	Parking         bool   `json:"parking"`
	Smoking         bool   `json:"smoking"`
	Karaoke         bool   `json:"karaoke"`
	Stage           bool   `json:"stage"`
	EventDecoration bool   `json:"eventDecoration"`
	OutsideFood     bool   `json:"outsideFood"`
	OutsideDrinks   bool   `json:"outsideDrinks"`
}

// Restaurant is the canonical view model every display surface consumes,
// independent of whether the record came from the live backend or the
// built-in sample dataset. Cuisines, Images, OpeningHours, Regulations and
// SuitableFor are never nil after normalization.
type Restaurant struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Slug         string        `json:"slug,omitempty"`
	Description  string        `json:"description,omitempty"`
	Address      string        `json:"address"`
	CityID       string        `json:"cityId,omitempty"`
	DistrictID   string        `json:"districtId,omitempty"`
	City         *City         `json:"city,omitempty"`
	District     *District     `json:"district,omitempty"`
	Cuisines     []Cuisine     `json:"cuisines"`
	PriceRange   string        `json:"priceRange,omitempty"`
	AveragePrice string        `json:"averagePrice,omitempty"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"reviewCount"`
	ViewCount    int           `json:"viewCount"`
	Images       []Image       `json:"images"`
	SuitableFor  []string      `json:"suitableFor"`
	MealTypes    []string      `json:"mealTypes,omitempty"`
	Capacity     int           `json:"capacity"`
	Phone        string        `json:"phone,omitempty"`
	Email        string        `json:"email,omitempty"`
	Website      string        `json:"website,omitempty"`
	Latitude     *float64      `json:"latitude,omitempty"`
	Longitude    *float64      `json:"longitude,omitempty"`
	Amenities    *Amenities    `json:"amenities"`
	OpeningHours []OpeningHour `json:"openingHours"`
	Regulations  []Regulation  `json:"regulations"`
	Distance     *float64      `json:"distance,omitempty"`

	HasPrivateRoom bool `json:"hasPrivateRoom"`
	IsExclusive    bool `json:"isExclusive"`
	IsActive       bool `json:"isActive"`
	IsVerified     bool `json:"isVerified"`
}

// HasCoordinates reports whether the restaurant can participate in
// distance-based listing.
func (r Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// CityKey returns the identifier the city predicate compares against:
// the resolved city id where present, the display name for legacy records.
func (r Restaurant) CityKey() string {
	if r.CityID != "" {
		return r.CityID
	}
	if r.City != nil {
		if r.City.ID != "" {
			return r.City.ID
		}
		return r.City.Name
	}
	return ""
}

// DistrictKey mirrors CityKey for the district dimension.
func (r Restaurant) DistrictKey() string {
	if r.DistrictID != "" {
		return r.DistrictID
	}
	if r.District != nil {
		if r.District.ID != "" {
			return r.District.ID
		}
		return r.District.Name
	}
	return ""
}

// RestaurantSummary is the trimmed shape collections carry for member
// restaurants. Collections reference restaurants; they do not own full
// records.
type RestaurantSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug,omitempty"`
	Image       string  `json:"image,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// Collection is a curated named group of restaurants for a city.
type Collection struct {
	ID           string              `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug,omitempty"`
	Description  string              `json:"description,omitempty"`
	ImageURL     string              `json:"imageUrl,omitempty"`
	CityID       string              `json:"cityId,omitempty"`
	IsFeatured   bool                `json:"isFeatured"`
	DisplayOrder int                 `json:"displayOrder"`
	Restaurants  []RestaurantSummary `json:"restaurants"`
}

// BlogCategory groups blog posts.
type BlogCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// BlogAuthor identifies a post author.
type BlogAuthor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// BlogPost is one content post.
type BlogPost struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug,omitempty"`
	Excerpt       string        `json:"excerpt,omitempty"`
	Content       string        `json:"content,omitempty"`
	FeaturedImage string        `json:"featuredImage,omitempty"`
	CityID        string        `json:"cityId,omitempty"`
	Views         int           `json:"views"`
	IsPublished   bool          `json:"isPublished"`
	PublishedAt   string        `json:"publishedAt,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
	UpdatedAt     string        `json:"updatedAt,omitempty"`
	Author        *BlogAuthor   `json:"author,omitempty"`
	Category      *BlogCategory `json:"category,omitempty"`
	City          *City         `json:"city,omitempty"`
}

// Booking statuses as the backend reports them.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusNoShow    = "NO_SHOW"
)

// BookingRequest is the create-booking payload. SpecialRequests carries the
// composite note built by the booking flow.
type BookingRequest struct {
	RestaurantID    string `json:"restaurantId"`
	BookingDate     string `json:"bookingDate"` // YYYY-MM-DD
	BookingTime     string `json:"bookingTime"` // HH:mm
	NumberOfGuests  int    `json:"numberOfGuests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// BookingRestaurant is the restaurant summary attached to bookings.
type BookingRestaurant struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug,omitempty"`
	Address string  `json:"address,omitempty"`
	City    *City   `json:"city,omitempty"`
	Images  []Image `json:"images,omitempty"`
}

// Booking is one table reservation.
type Booking struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"userId,omitempty"`
	RestaurantID       string             `json:"restaurantId"`
	BookingDate        string             `json:"bookingDate"`
	BookingTime        string             `json:"bookingTime"`
	NumberOfGuests     int                `json:"numberOfGuests"`
	SpecialRequests    string             `json:"specialRequests,omitempty"`
	Status             string             `json:"status"`
	CancellationReason string             `json:"cancellationReason,omitempty"`
	CancelledAt        string             `json:"cancelledAt,omitempty"`
	CreatedAt          string             `json:"createdAt,omitempty"`
	UpdatedAt          string             `json:"updatedAt,omitempty"`
	Restaurant         *BookingRestaurant `json:"restaurant,omitempty"`
}

// ReviewRequest is the create-review payload.
type ReviewRequest struct {
	RestaurantID   string `json:"restaurantId"`
	BookingID      string `json:"bookingId,omitempty"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment,omitempty"`
	FoodRating     int    `json:"foodRating,omitempty"`
	ServiceRating  int    `json:"serviceRating,omitempty"`
	AmbianceRating int    `json:"ambianceRating,omitempty"`
}

// ReviewUser identifies a review author.
type ReviewUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Review is one restaurant review.
type Review struct {
	ID             string      `json:"id"`
	UserID         string      `json:"userId,omitempty"`
	RestaurantID   string      `json:"restaurantId"`
	BookingID      string      `json:"bookingId,omitempty"`
	Rating         int         `json:"rating"`
	Comment        string      `json:"comment,omitempty"`
	FoodRating     int         `json:"foodRating,omitempty"`
	ServiceRating  int         `json:"serviceRating,omitempty"`
	AmbianceRating int         `json:"ambianceRating,omitempty"`
	IsVerified     bool        `json:"isVerified"`
	HelpfulCount   int         `json:"helpfulCount"`
	CreatedAt      string      `json:"createdAt,omitempty"`
	User           *ReviewUser `json:"user,omitempty"`
}

// UserStats aggregates account activity counters.
type UserStats struct {
	BookingsCount  int `json:"bookingsCount"`
	ReviewsCount   int `json:"reviewsCount"`
	FavoritesCount int `json:"favoritesCount"`
}

// User is an account profile.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone,omitempty"`
	Avatar        string     `json:"avatar,omitempty"`
	Role          string     `json:"role,omitempty"`
	IsActive      bool       `json:"isActive,omitempty"`
	EmailVerified bool       `json:"emailVerified,omitempty"`
	Stats         *UserStats `json:"stats,omitempty"`
}

// Favorite links an account to a restaurant.
type Favorite struct {
	ID           string             `json:"id"`
	RestaurantID string             `json:"restaurantId"`
	Restaurant   *RestaurantSummary `json:"restaurant,omitempty"`
}

// Session is the persisted credential pair: bearer token plus the user it
// belongs to. Both are written and cleared together.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// HasToken reports whether the session can authenticate requests.
func (s Session) HasToken() bool {
	return s.Token != ""
}
