package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datban/datban-cli/internal/filter"
)

func TestSetCityClearsDistrict(t *testing.T) {
	var state filter.State
	state.SetCity("hanoi")
	state.SetDistrict("dong-da")

	state.SetCity("hcm")
	assert.Equal(t, "hcm", state.CityID)
	assert.Empty(t, state.DistrictID, "district belongs to the previous city")

	state.SetDistrict("quan-1")
	state.SetCity("hcm")
	assert.Equal(t, "quan-1", state.DistrictID, "re-selecting the same city keeps the district")
}

func TestTogglePriceRangeIsSingleSelect(t *testing.T) {
	var state filter.State
	state.TogglePriceRange("200K - 300K")
	assert.Equal(t, "200K - 300K", state.PriceRange)

	state.TogglePriceRange("300K - 500K")
	assert.Equal(t, "300K - 500K", state.PriceRange, "selecting another bucket replaces the first")

	state.TogglePriceRange("300K - 500K")
	assert.Empty(t, state.PriceRange, "toggling the active bucket clears it")
}

func TestToggleCuisineNeverDuplicates(t *testing.T) {
	var state filter.State
	state.ToggleCuisine("lau")
	state.ToggleCuisine("buffet")
	state.ToggleCuisine("lau")
	assert.Equal(t, []string{"buffet"}, state.CuisineIDs)

	state.ToggleCuisine("lau")
	assert.Equal(t, []string{"buffet", "lau"}, state.CuisineIDs, "insertion order is kept")
}

func TestIsEmpty(t *testing.T) {
	var state filter.State
	assert.True(t, state.IsEmpty())

	state.SetQuery("   ")
	assert.True(t, state.IsEmpty(), "whitespace query is not active")

	state.SetQuery("lẩu")
	assert.False(t, state.IsEmpty())
}
