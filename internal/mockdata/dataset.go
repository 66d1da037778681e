// Package mockdata is the built-in sample dataset used when the backend is
// unreachable. Records are kept in the legacy flat shape on purpose: they
// exercise the same normalization path the web client used for its static
// data, so the rest of the CLI only ever sees canonical restaurants.
package mockdata

import "github.com/datban/datban-cli/internal/domain"

// Cities returns the sample city taxonomy.
func Cities() []domain.City {
	return []domain.City{
		{ID: "hanoi", Name: "Hà Nội", Code: "HN"},
		{ID: "hcm", Name: "Hồ Chí Minh", Code: "HCM"},
		{ID: "danang", Name: "Đà Nẵng", Code: "DN"},
	}
}

// Districts returns the sample districts of one city.
func Districts(cityID string) []domain.District {
	all := []domain.District{
		{ID: "dong-da", Name: "Quận Đống Đa", CityID: "hanoi"},
		{ID: "hoan-kiem", Name: "Quận Hoàn Kiếm", CityID: "hanoi"},
		{ID: "ba-dinh", Name: "Quận Ba Đình", CityID: "hanoi"},
		{ID: "cau-giay", Name: "Quận Cầu Giấy", CityID: "hanoi"},
		{ID: "quan-1", Name: "Quận 1", CityID: "hcm"},
		{ID: "quan-3", Name: "Quận 3", CityID: "hcm"},
		{ID: "binh-thanh", Name: "Bình Thạnh", CityID: "hcm"},
		{ID: "hai-chau", Name: "Quận Hải Châu", CityID: "danang"},
		{ID: "son-tra", Name: "Quận Sơn Trà", CityID: "danang"},
	}
	districts := make([]domain.District, 0, len(all))
	for _, district := range all {
		if cityID == "" || district.CityID == cityID {
			districts = append(districts, district)
		}
	}
	return districts
}

// CuisineTypes returns the sample cuisine taxonomy.
func CuisineTypes() []domain.Cuisine {
	return []domain.Cuisine{
		{ID: "buffet", Name: "Buffet", Slug: "buffet"},
		{ID: "lau", Name: "Lẩu", Slug: "lau"},
		{ID: "hai-san", Name: "Hải sản", Slug: "hai-san"},
		{ID: "mon-viet", Name: "Món Việt", Slug: "mon-viet"},
		{ID: "mon-nhat", Name: "Món Nhật", Slug: "mon-nhat"},
		{ID: "mon-han", Name: "Món Hàn", Slug: "mon-han"},
	}
}

// RawRestaurants returns the sample records in the legacy flat shape.
func RawRestaurants() []map[string]any {
	return []map[string]any{
		{
			"id":       "1",
			"name":     "Lộc-Ally Restaurant - Cát Linh",
			"address":  "Tầng 2, Khách Sạn Grand Mercure Hanoi, Số 9 Cát Linh, P. Cát Linh",
			"district": "Quận Đống Đa",
			"city":     "Hà Nội",
			"cuisine":  []string{"Buffet", "Món Việt"},
			"priceRange":     "200K - 300K",
			"rating":         4.0,
			"reviewCount":    234,
			"image":          "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
			"hasPrivateRoom": true,
			"capacity":       100,
			"suitableFor":    []string{"Tiệc/Hội nghị", "Gia đình", "Hẹn hò"},
			"mealTypes":      []string{"Bữa trưa", "Bữa tối"},
			"isExclusive":    true,
			"lat":            21.0075,
			"lng":            105.8442,
		},
		{
			"id":       "2",
			"name":     "Sườn Nướng Hàn Quốc GoGi - Tràng Thi",
			"address":  "Số 38 Tràng Thi, P. Hàng Bông",
			"district": "Quận Hoàn Kiếm",
			"city":     "Hà Nội",
			"cuisine":  []string{"Món Hàn", "Buffet"},
			"priceRange":     "300K - 500K",
			"rating":         4.6,
			"reviewCount":    512,
			"image":          "https://images.unsplash.com/photo-1552566626-52f8b828add9?w=800",
			"hasPrivateRoom": false,
			"capacity":       80,
			"suitableFor":    []string{"Bạn bè", "Gia đình"},
			"mealTypes":      []string{"Bữa tối"},
			"isExclusive":    false,
			"lat":            21.0278,
			"lng":            105.8466,
		},
		{
			"id":       "3",
			"name":     "Lẩu Phan - Cầu Giấy",
			"address":  "Số 161 Trung Kính, P. Yên Hòa",
			"district": "Quận Cầu Giấy",
			"city":     "Hà Nội",
			"cuisine":  []string{"Lẩu", "Buffet"},
			"priceRange":     "150K - 250K",
			"rating":         4.2,
			"reviewCount":    891,
			"image":          "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=800",
			"hasPrivateRoom": true,
			"capacity":       150,
			"suitableFor":    []string{"Bạn bè", "Tiệc/Hội nghị"},
			"mealTypes":      []string{"Bữa trưa", "Bữa tối"},
			"isExclusive":    false,
			"lat":            21.0169,
			"lng":            105.7938,
		},
		{
			"id":       "4",
			"name":     "Sushi Hokkaido Sachi - Lê Thánh Tôn",
			"address":  "Số 23 Lê Thánh Tôn, P. Bến Nghé",
			"district": "Quận 1",
			"city":     "Hồ Chí Minh",
			"cuisine":  []string{"Món Nhật"},
			"priceRange":     "300K - 500K",
			"rating":         4.7,
			"reviewCount":    327,
			"image":          "https://images.unsplash.com/photo-1579871494447-9811cf80d66c?w=800",
			"hasPrivateRoom": true,
			"capacity":       60,
			"suitableFor":    []string{"Hẹn hò", "Đối tác"},
			"mealTypes":      []string{"Bữa trưa", "Bữa tối"},
			"isExclusive":    true,
			"lat":            10.7797,
			"lng":            106.7032,
		},
		{
			"id":       "5",
			"name":     "Hải Sản Biển Đông - Bình Thạnh",
			"address":  "Số 12 Phan Văn Trị, P. 7",
			"district": "Bình Thạnh",
			"city":     "Hồ Chí Minh",
			"cuisine":  []string{"Hải sản", "Món Việt"},
			"priceRange":     "150K - 250K",
			"rating":         3.9,
			"reviewCount":    164,
			"image":          "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=800",
			"hasPrivateRoom": false,
			"capacity":       120,
			"suitableFor":    []string{"Gia đình", "Bạn bè"},
			"mealTypes":      []string{"Bữa tối"},
			"isExclusive":    false,
		},
		{
			"id":       "6",
			"name":     "Bé Mặn - Võ Nguyên Giáp",
			"address":  "Lô 14 Võ Nguyên Giáp, P. Mân Thái",
			"district": "Quận Sơn Trà",
			"city":     "Đà Nẵng",
			"cuisine":  []string{"Hải sản"},
			"priceRange":     "200K - 300K",
			"rating":         4.5,
			"reviewCount":    448,
			"image":          "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=800",
			"hasPrivateRoom": false,
			"capacity":       200,
			"suitableFor":    []string{"Gia đình", "Bạn bè", "Tiệc/Hội nghị"},
			"mealTypes":      []string{"Bữa trưa", "Bữa tối"},
			"isExclusive":    false,
			"lat":            16.0839,
			"lng":            108.2498,
		},
	}
}

// Restaurants returns the sample records normalized to the canonical shape.
func Restaurants() []domain.Restaurant {
	rawRecords := RawRestaurants()
	restaurants := make([]domain.Restaurant, 0, len(rawRecords))
	for _, raw := range rawRecords {
		restaurants = append(restaurants, domain.NormalizeRestaurant(raw))
	}
	return restaurants
}
