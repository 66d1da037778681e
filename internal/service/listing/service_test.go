package listing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/filter"
	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/service/listing"
)

type fakeAPI struct {
	datban.API
	restaurants func(filter datban.RestaurantFilter) ([]domain.Restaurant, error)
}

func (f *fakeAPI) Restaurants(_ context.Context, filter datban.RestaurantFilter) ([]domain.Restaurant, error) {
	return f.restaurants(filter)
}

func (f *fakeAPI) Cities(context.Context) ([]domain.City, error) {
	return []domain.City{{ID: "hanoi", Name: "Hà Nội"}}, nil
}

func (f *fakeAPI) CuisineTypes(context.Context) ([]domain.Cuisine, error) {
	return []domain.Cuisine{{ID: "lau", Name: "Lẩu"}}, nil
}

func TestRefreshPopulatesSnapshot(t *testing.T) {
	api := &fakeAPI{restaurants: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
		return []domain.Restaurant{{ID: "1", Name: "Lẩu Phan"}}, nil
	}}
	svc := listing.NewService(api)

	version := svc.UpdateState(func(*filter.State) {})
	snap, err := svc.Refresh(context.Background(), version)
	require.NoError(t, err)
	assert.Equal(t, listing.PhasePopulated, snap.Phase)
	require.Len(t, snap.Restaurants, 1)
	assert.Len(t, snap.Cities, 1)
	assert.Len(t, snap.Cuisines, 1)
	assert.Equal(t, version, snap.Version)
}

func TestRefreshAppliesClientSideFilters(t *testing.T) {
	api := &fakeAPI{restaurants: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
		return []domain.Restaurant{
			{ID: "1", Name: "Lẩu Phan", Cuisines: []domain.Cuisine{{ID: "lau"}}},
			{ID: "2", Name: "GoGi House", Cuisines: []domain.Cuisine{{ID: "nuong"}}},
		}, nil
	}}
	svc := listing.NewService(api)

	version := svc.UpdateState(func(state *filter.State) {
		state.ToggleCuisine("lau")
	})
	snap, err := svc.Refresh(context.Background(), version)
	require.NoError(t, err)
	require.Len(t, snap.Restaurants, 1)
	assert.Equal(t, "1", snap.Restaurants[0].ID)
}

func TestRefreshDiscardsStaleResult(t *testing.T) {
	calls := 0
	api := &fakeAPI{restaurants: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
		calls++
		if calls == 1 {
			return []domain.Restaurant{{ID: "new", CityID: "hcm"}}, nil
		}
		return []domain.Restaurant{{ID: "old", CityID: "hcm"}}, nil
	}}
	svc := listing.NewService(api)

	stale := svc.UpdateState(func(state *filter.State) { state.SetCity("hanoi") })
	fresh := svc.UpdateState(func(state *filter.State) { state.SetCity("hcm") })

	// The fresh fetch lands first; the stale one finishes afterwards and
	// must not overwrite it.
	snap, err := svc.Refresh(context.Background(), fresh)
	require.NoError(t, err)
	require.Len(t, snap.Restaurants, 1)
	assert.Equal(t, "new", snap.Restaurants[0].ID)

	snap, err = svc.Refresh(context.Background(), stale)
	require.NoError(t, err)
	require.Len(t, snap.Restaurants, 1)
	assert.Equal(t, "new", snap.Restaurants[0].ID, "stale fetch result is discarded")
	assert.Equal(t, fresh, snap.Version)
}

func TestRefreshReportsError(t *testing.T) {
	api := &fakeAPI{restaurants: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
		return nil, &datban.RequestError{Message: "Network error"}
	}}
	svc := listing.NewService(api)

	version := svc.UpdateState(func(*filter.State) {})
	snap, err := svc.Refresh(context.Background(), version)
	require.Error(t, err)
	assert.Equal(t, listing.PhaseError, snap.Phase)
	assert.Error(t, snap.Err)
}
