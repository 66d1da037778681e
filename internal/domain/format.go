package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatCuisines renders the cuisine tags for list tables.
func (r Restaurant) FormatCuisines() string {
	if len(r.Cuisines) == 0 {
		return "-"
	}
	names := make([]string, 0, len(r.Cuisines))
	for _, cuisine := range r.Cuisines {
		if cuisine.Name != "" {
			names = append(names, cuisine.Name)
		}
	}
	return strings.Join(names, ", ")
}

// FormatRating renders the average rating with review volume.
func (r Restaurant) FormatRating() string {
	if r.ReviewCount == 0 && r.Rating == 0 {
		return "(No rating)"
	}
	return fmt.Sprintf("%.1f (%d reviews)", r.Rating, r.ReviewCount)
}

// FormatPriceRange renders the price bucket label.
func (r Restaurant) FormatPriceRange() string {
	if strings.TrimSpace(r.PriceRange) == "" {
		return "-"
	}
	return r.PriceRange
}

// FormatLocation renders "district, city" as far as the record carries them.
func (r Restaurant) FormatLocation() string {
	parts := make([]string, 0, 2)
	if r.District != nil && r.District.Name != "" {
		parts = append(parts, r.District.Name)
	}
	if r.City != nil && r.City.Name != "" {
		parts = append(parts, r.City.Name)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// FormatDistance renders the server-computed distance in kilometers.
func (r Restaurant) FormatDistance() string {
	if r.Distance == nil {
		return "-"
	}
	return fmt.Sprintf("%.2fkm", *r.Distance)
}

// MainImage picks the MAIN-tagged image, falling back to the first one.
func (r Restaurant) MainImage() string {
	for _, image := range r.Images {
		if image.ImageType == ImageTypeMain {
			return image.ImageURL
		}
	}
	if len(r.Images) > 0 {
		return r.Images[0].ImageURL
	}
	return ""
}

// FormatOpeningToday renders today's opening window.
func (r Restaurant) FormatOpeningToday() string {
	weekday := strings.ToLower(time.Now().Weekday().String())
	for _, hour := range r.OpeningHours {
		if !strings.EqualFold(hour.DayOfWeek, weekday) {
			continue
		}
		if hour.IsClosed {
			return "(Closed)"
		}
		if hour.OpenTime == "" && hour.CloseTime == "" {
			return "-"
		}
		return fmt.Sprintf("%s - %s", hour.OpenTime, hour.CloseTime)
	}
	return "-"
}

var bookingStatusLabels = map[string]string{
	BookingStatusPending:   "Chờ xác nhận",
	BookingStatusConfirmed: "Đã xác nhận",
	BookingStatusCancelled: "Đã hủy",
	BookingStatusCompleted: "Hoàn thành",
	BookingStatusNoShow:    "Không đến",
}

// FormatStatus renders the booking status label shown to users.
func (b Booking) FormatStatus() string {
	if label, ok := bookingStatusLabels[b.Status]; ok {
		return label
	}
	return b.Status
}

// FormatWhen renders the booked date and time.
func (b Booking) FormatWhen() string {
	return strings.TrimSpace(b.BookingDate + " " + b.BookingTime)
}

// FormatRestaurant renders the booked restaurant name.
func (b Booking) FormatRestaurant() string {
	if b.Restaurant != nil && b.Restaurant.Name != "" {
		return b.Restaurant.Name
	}
	return b.RestaurantID
}

// FormatPublished renders the post's publish timestamp, preferring
// publishedAt over createdAt.
func (p BlogPost) FormatPublished() string {
	if p.PublishedAt != "" {
		return p.PublishedAt
	}
	return p.CreatedAt
}

// FormatCategory renders the post category name.
func (p BlogPost) FormatCategory() string {
	if p.Category == nil || p.Category.Name == "" {
		return "-"
	}
	return p.Category.Name
}

// FormatRating renders a review rating with its per-axis scores when present.
func (v Review) FormatRating() string {
	base := fmt.Sprintf("%d/5", v.Rating)
	axes := make([]string, 0, 3)
	if v.FoodRating > 0 {
		axes = append(axes, fmt.Sprintf("food %d", v.FoodRating))
	}
	if v.ServiceRating > 0 {
		axes = append(axes, fmt.Sprintf("service %d", v.ServiceRating))
	}
	if v.AmbianceRating > 0 {
		axes = append(axes, fmt.Sprintf("ambiance %d", v.AmbianceRating))
	}
	if len(axes) == 0 {
		return base
	}
	return base + " (" + strings.Join(axes, ", ") + ")"
}

// FormatAuthor renders the review author name.
func (v Review) FormatAuthor() string {
	if v.User != nil && v.User.Name != "" {
		return v.User.Name
	}
	return "-"
}
