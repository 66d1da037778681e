package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/filter"
)

func restaurantFixture(id, city, district, price string, cuisines, suitableFor []string) domain.Restaurant {
	tagged := make([]domain.Cuisine, 0, len(cuisines))
	for _, cuisine := range cuisines {
		tagged = append(tagged, domain.Cuisine{ID: cuisine, Name: cuisine})
	}
	return domain.Restaurant{
		ID:          id,
		Name:        "Nhà hàng " + id,
		Address:     "Số " + id + " Phố Huế",
		CityID:      city,
		DistrictID:  district,
		PriceRange:  price,
		Cuisines:    tagged,
		SuitableFor: suitableFor,
	}
}

func TestApplyComposesWithAND(t *testing.T) {
	restaurants := []domain.Restaurant{
		restaurantFixture("1", "hanoi", "dong-da", "200K - 300K", []string{"buffet"}, []string{"Gia đình"}),
		restaurantFixture("2", "hanoi", "hoan-kiem", "200K - 300K", []string{"lau"}, []string{"Bạn bè"}),
		restaurantFixture("3", "hcm", "quan-1", "200K - 300K", []string{"buffet"}, []string{"Gia đình"}),
	}

	var state filter.State
	state.SetCity("hanoi")
	state.TogglePriceRange("200K - 300K")
	state.ToggleCuisine("buffet")

	got := filter.Apply(restaurants, state)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestApplyCuisineMatchesAnyOfSelection(t *testing.T) {
	restaurants := []domain.Restaurant{
		restaurantFixture("1", "", "", "", []string{"1", "2"}, nil),
		restaurantFixture("2", "", "", "", []string{"2"}, nil),
		restaurantFixture("3", "", "", "", []string{"3"}, nil),
		restaurantFixture("4", "", "", "", nil, nil),
	}

	var state filter.State
	state.ToggleCuisine("1")
	state.ToggleCuisine("3")

	got := filter.Apply(restaurants, state)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestApplyQueryMatchesNameOrAddress(t *testing.T) {
	restaurants := []domain.Restaurant{
		{ID: "1", Name: "Lẩu Phan", Address: "Trung Kính"},
		{ID: "2", Name: "GoGi House", Address: "Phố Lẩu Cũ"},
		{ID: "3", Name: "Sushi Sachi", Address: "Lê Thánh Tôn"},
	}

	var state filter.State
	state.SetQuery("lẩu")

	got := filter.Apply(restaurants, state)
	require.Len(t, got, 2, "query matches name or address, case-insensitively")
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestApplyIsStableAndIdempotent(t *testing.T) {
	restaurants := []domain.Restaurant{
		restaurantFixture("b", "hanoi", "", "", nil, nil),
		restaurantFixture("a", "hanoi", "", "", nil, nil),
		restaurantFixture("c", "hcm", "", "", nil, nil),
	}

	var state filter.State
	state.SetCity("hanoi")

	once := filter.Apply(restaurants, state)
	require.Len(t, once, 2)
	assert.Equal(t, "b", once[0].ID, "input order is preserved")
	assert.Equal(t, "a", once[1].ID)

	twice := filter.Apply(once, state)
	assert.Equal(t, once, twice)
}

func TestApplyEmptyStateMatchesEverything(t *testing.T) {
	restaurants := []domain.Restaurant{
		restaurantFixture("1", "hanoi", "", "", nil, nil),
		restaurantFixture("2", "hcm", "", "", nil, nil),
	}
	got := filter.Apply(restaurants, filter.State{})
	assert.Len(t, got, len(restaurants))
}

func TestWithCoordinates(t *testing.T) {
	lat, lng := 21.0, 105.8
	restaurants := []domain.Restaurant{
		{ID: "1", Latitude: &lat, Longitude: &lng},
		{ID: "2", Latitude: &lat},
		{ID: "3"},
	}
	got := filter.WithCoordinates(restaurants)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFeaturedTakesFirstFourHighlyRated(t *testing.T) {
	restaurants := []domain.Restaurant{
		{ID: "1", Rating: 4.5},
		{ID: "2", Rating: 4.4},
		{ID: "3", Rating: 5},
		{ID: "4", Rating: 4.6},
		{ID: "5", Rating: 4.9},
		{ID: "6", Rating: 4.8},
	}
	got := filter.Featured(restaurants)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"1", "3", "4", "5"}, []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
}
