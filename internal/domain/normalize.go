package domain

import (
	"fmt"
	"strconv"
)

// RecordShape tags the two raw restaurant payload variants the platform
// produces: the nested API DTO and the flat legacy record used by the
// built-in sample dataset.
type RecordShape int

const (
	ShapeAPI RecordShape = iota
	ShapeLegacy
)

// DetectShape classifies a raw restaurant-like payload. Legacy records carry
// a `cuisine` string list and flat `city`/`district` strings; API DTOs carry
// `cuisines` object lists and nested `city`/`district` objects.
func DetectShape(raw map[string]any) RecordShape {
	if _, ok := raw["cuisine"]; ok {
		return ShapeLegacy
	}
	if _, ok := raw["city"].(string); ok {
		return ShapeLegacy
	}
	if _, ok := raw["image"].(string); ok {
		return ShapeLegacy
	}
	return ShapeAPI
}

// NormalizeRestaurant reconciles one raw restaurant payload of either shape
// into the canonical view model. It is pure and total: any well-formed map
// yields a Restaurant, absent lists become empty slices and unknown fields
// are dropped. Normalizing an already-canonical payload is a no-op.
func NormalizeRestaurant(raw map[string]any) Restaurant {
	if DetectShape(raw) == ShapeLegacy {
		return normalizeLegacy(raw)
	}
	return normalizeAPI(raw)
}

func normalizeAPI(raw map[string]any) Restaurant {
	r := Restaurant{
		ID:             NormalizeID(raw["id"]),
		Name:           stringField(raw, "name"),
		Slug:           stringField(raw, "slug"),
		Description:    stringField(raw, "description"),
		Address:        stringField(raw, "address"),
		CityID:         NormalizeID(raw["cityId"]),
		DistrictID:     NormalizeID(raw["districtId"]),
		PriceRange:     stringField(raw, "priceRange"),
		AveragePrice:   stringField(raw, "averagePrice"),
		Rating:         floatField(raw, "rating"),
		ReviewCount:    intField(raw, "reviewCount"),
		ViewCount:      intField(raw, "viewCount"),
		Capacity:       intField(raw, "capacity"),
		Phone:          stringField(raw, "phone"),
		Email:          stringField(raw, "email"),
		Website:        stringField(raw, "website"),
		Latitude:       floatPtrField(raw, "latitude"),
		Longitude:      floatPtrField(raw, "longitude"),
		Distance:       floatPtrField(raw, "distance"),
		HasPrivateRoom: boolField(raw, "hasPrivateRoom"),
		IsExclusive:    boolField(raw, "isExclusive"),
		IsActive:       boolField(raw, "isActive"),
		IsVerified:     boolField(raw, "isVerified"),
		SuitableFor:    stringListField(raw, "suitableFor"),
		MealTypes:      nil,
	}

	if city := mapField(raw, "city"); city != nil {
		r.City = &City{
			ID:   NormalizeID(city["id"]),
			Name: stringField(city, "name"),
			Code: stringField(city, "code"),
		}
		if r.CityID == "" {
			r.CityID = r.City.ID
		}
	}
	if district := mapField(raw, "district"); district != nil {
		r.District = &District{
			ID:     NormalizeID(district["id"]),
			Name:   stringField(district, "name"),
			Code:   stringField(district, "code"),
			CityID: NormalizeID(district["cityId"]),
		}
		if r.DistrictID == "" {
			r.DistrictID = r.District.ID
		}
	}

	r.Cuisines = normalizeCuisines(sliceField(raw, "cuisines"))
	r.Images = normalizeImages(sliceField(raw, "images"))
	r.OpeningHours = normalizeOpeningHours(sliceField(raw, "openingHours"))
	r.Regulations = normalizeRegulations(sliceField(raw, "regulations"))
	r.Amenities = normalizeAmenities(mapField(raw, "amenities"))
	if mealTypes := stringListField(raw, "mealTypes"); len(mealTypes) > 0 {
		r.MealTypes = mealTypes
	}
	return r
}

func normalizeLegacy(raw map[string]any) Restaurant {
	r := Restaurant{
		ID:             NormalizeID(raw["id"]),
		Name:           stringField(raw, "name"),
		Description:    stringField(raw, "description"),
		Address:        stringField(raw, "address"),
		PriceRange:     stringField(raw, "priceRange"),
		AveragePrice:   stringField(raw, "averagePrice"),
		Rating:         floatField(raw, "rating"),
		ReviewCount:    intField(raw, "reviewCount"),
		Capacity:       intField(raw, "capacity"),
		Latitude:       floatPtrField(raw, "lat"),
		Longitude:      floatPtrField(raw, "lng"),
		Distance:       floatPtrField(raw, "distance"),
		HasPrivateRoom: boolField(raw, "hasPrivateRoom"),
		IsExclusive:    boolField(raw, "isExclusive"),
		IsActive:       true,
		SuitableFor:    stringListField(raw, "suitableFor"),
	}
	if mealTypes := stringListField(raw, "mealTypes"); len(mealTypes) > 0 {
		r.MealTypes = mealTypes
	}
	if city := stringField(raw, "city"); city != "" {
		r.City = &City{Name: city}
	}
	if district := stringField(raw, "district"); district != "" {
		r.District = &District{Name: district}
	}

	// Legacy cuisine entries are bare names, not taxonomy entries with ids.
	cuisines := make([]Cuisine, 0)
	for _, name := range stringListField(raw, "cuisine") {
		cuisines = append(cuisines, Cuisine{ID: name, Name: name})
	}
	r.Cuisines = cuisines

	images := make([]Image, 0)
	if main := stringField(raw, "image"); main != "" {
		images = append(images, Image{ImageURL: main, ImageType: ImageTypeMain})
	}
	for _, u := range stringListField(raw, "gallery") {
		images = append(images, Image{ImageURL: u, ImageType: ImageTypeGallery})
	}
	for _, u := range stringListField(raw, "menuImages") {
		images = append(images, Image{ImageURL: u, ImageType: ImageTypeMenu})
	}
	r.Images = images

	// Legacy opening hours are a day-keyed map of open/close pairs.
	hours := make([]OpeningHour, 0)
	if openingHours := mapField(raw, "openingHours"); openingHours != nil {
		for _, day := range weekDays {
			window := mapField(openingHours, day)
			if window == nil {
				continue
			}
			hours = append(hours, OpeningHour{
				DayOfWeek: day,
				OpenTime:  stringField(window, "open"),
				CloseTime: stringField(window, "close"),
			})
		}
	}
	r.OpeningHours = hours

	r.Regulations = normalizeRegulations(sliceField(raw, "regulations"))
	r.Amenities = normalizeAmenities(mapField(raw, "amenities"))
	return r
}

var weekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func normalizeCuisines(entries []any) []Cuisine {
	cuisines := make([]Cuisine, 0, len(entries))
	for _, entry := range entries {
		raw := asMap(entry)
		if raw == nil {
			continue
		}
		// Join-table rows wrap the taxonomy entry in a nested `cuisine` object.
		if nested := mapField(raw, "cuisine"); nested != nil {
			raw = nested
		}
		cuisines = append(cuisines, Cuisine{
			ID:   NormalizeID(raw["id"]),
			Name: stringField(raw, "name"),
			Slug: stringField(raw, "slug"),
			Icon: stringField(raw, "icon"),
		})
	}
	return cuisines
}

func normalizeImages(entries []any) []Image {
	images := make([]Image, 0, len(entries))
	for _, entry := range entries {
		raw := asMap(entry)
		if raw == nil {
			continue
		}
		images = append(images, Image{
			ID:        NormalizeID(raw["id"]),
			ImageURL:  stringField(raw, "imageUrl"),
			ImageType: stringField(raw, "imageType"),
		})
	}
	return images
}

func normalizeOpeningHours(entries []any) []OpeningHour {
	hours := make([]OpeningHour, 0, len(entries))
	for _, entry := range entries {
		raw := asMap(entry)
		if raw == nil {
			continue
		}
		hours = append(hours, OpeningHour{
			ID:        NormalizeID(raw["id"]),
			DayOfWeek: stringField(raw, "dayOfWeek"),
			OpenTime:  stringField(raw, "openTime"),
			CloseTime: stringField(raw, "closeTime"),
			IsClosed:  boolField(raw, "isClosed"),
		})
	}
	return hours
}

func normalizeRegulations(entries []any) []Regulation {
	regulations := make([]Regulation, 0, len(entries))
	for _, entry := range entries {
		// Legacy records list regulations as bare strings.
		if text, ok := entry.(string); ok {
			regulations = append(regulations, Regulation{RegulationText: text})
			continue
		}
		raw := asMap(entry)
		if raw == nil {
			continue
		}
		text := stringField(raw, "regulationText")
		regulations = append(regulations, Regulation{
			ID:             NormalizeID(raw["id"]),
			RegulationText: text,
		})
	}
	return regulations
}

func normalizeAmenities(raw map[string]any) *Amenities {
	if raw == nil {
		return nil
	}
	return &Amenities{
		ID:              NormalizeID(raw["id"]),
		Wifi:            boolField(raw, "wifi"),
		AirConditioning: boolField(raw, "airConditioning"),
		CardPayment:     boolField(raw, "cardPayment"),
		PrivateRoom:     boolField(raw, "privateRoom"),
		Parking:         boolField(raw, "parking"),
		Smoking:         boolField(raw, "smoking"),
		Karaoke:         boolField(raw, "karaoke"),
		Stage:           boolField(raw, "stage"),
		EventDecoration: boolField(raw, "eventDecoration"),
		OutsideFood:     boolField(raw, "outsideFood"),
		OutsideDrinks:   boolField(raw, "outsideDrinks"),
	}
}

// NormalizeID normalizes mixed payload id values: strings pass through,
// JSON numbers lose their float rendering.
func NormalizeID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

func asMap(value any) map[string]any {
	m, _ := value.(map[string]any)
	return m
}

func mapField(raw map[string]any, key string) map[string]any {
	return asMap(raw[key])
}

func sliceField(raw map[string]any, key string) []any {
	values, _ := raw[key].([]any)
	return values
}

func stringField(raw map[string]any, key string) string {
	s, _ := raw[key].(string)
	return s
}

func stringListField(raw map[string]any, key string) []string {
	switch values := raw[key].(type) {
	case []string:
		out := make([]string, len(values))
		copy(out, values)
		return out
	case []any:
		out := make([]string, 0, len(values))
		for _, v := range values {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

func boolField(raw map[string]any, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func floatField(raw map[string]any, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func floatPtrField(raw map[string]any, key string) *float64 {
	if _, ok := raw[key]; !ok {
		return nil
	}
	switch raw[key].(type) {
	case float64, float32, int, int64:
		v := floatField(raw, key)
		return &v
	default:
		return nil
	}
}

func intField(raw map[string]any, key string) int {
	return int(floatField(raw, key))
}
