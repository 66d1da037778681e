// Package listing keeps a filtered restaurant listing in sync with its
// filter state. Every state change bumps a version; a fetch finishing for
// an older version is discarded so a slow response never overwrites the
// result of a newer one.
package listing

import (
	"context"
	"sync"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/filter"
	"github.com/datban/datban-cli/internal/gateway/datban"
)

// Phase is the snapshot lifecycle.
type Phase string

const (
	PhaseLoading   Phase = "loading"
	PhaseError     Phase = "error"
	PhasePopulated Phase = "populated"
)

// Snapshot is one consistent view of the listing.
type Snapshot struct {
	Phase       Phase
	State       filter.State
	Restaurants []domain.Restaurant
	Cities      []domain.City
	Cuisines    []domain.Cuisine
	Err         error
	Version     uint64
}

// Service owns the filter state and the last fetched listing.
type Service struct {
	api datban.API

	mu       sync.Mutex
	state    filter.State
	version  uint64
	snapshot Snapshot
}

// NewService creates a listing service over the given API.
func NewService(api datban.API) *Service {
	svc := &Service{api: api}
	svc.snapshot = Snapshot{Phase: PhaseLoading}
	return svc
}

// UpdateState applies fn to the filter state and bumps the version. The
// returned version identifies the fetch that should satisfy this state.
func (s *Service) UpdateState(fn func(*filter.State)) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.version++
	s.snapshot.Phase = PhaseLoading
	s.snapshot.State = s.state
	return s.version
}

// State returns a copy of the current filter state.
func (s *Service) State() filter.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the last consistent view.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Refresh fetches restaurants, cities and cuisines for the given version
// and applies the client-side filter pipeline. Taxonomies are fetched
// concurrently with the listing. A result for a stale version is dropped.
func (s *Service) Refresh(ctx context.Context, version uint64) (Snapshot, error) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	var (
		wg          sync.WaitGroup
		restaurants []domain.Restaurant
		cities      []domain.City
		cuisines    []domain.Cuisine
		restErr     error
		cityErr     error
		cuisineErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		restaurants, restErr = s.api.Restaurants(ctx, datban.RestaurantFilter{
			CityID:     state.CityID,
			DistrictID: state.DistrictID,
			PriceRange: state.PriceRange,
		})
	}()
	go func() {
		defer wg.Done()
		cities, cityErr = s.api.Cities(ctx)
	}()
	go func() {
		defer wg.Done()
		cuisines, cuisineErr = s.api.CuisineTypes(ctx)
	}()
	wg.Wait()

	if restErr == nil {
		restaurants = filter.Apply(restaurants, state)
	}

	err := restErr
	if err == nil && cityErr != nil {
		err = cityErr
	}
	if err == nil && cuisineErr != nil {
		err = cuisineErr
	}

	return s.applyResult(version, state, restaurants, cities, cuisines, err)
}

func (s *Service) applyResult(version uint64, state filter.State, restaurants []domain.Restaurant, cities []domain.City, cuisines []domain.Cuisine, err error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version < s.version {
		// A newer state change superseded this fetch.
		return s.snapshot, nil
	}
	snap := Snapshot{
		State:       state,
		Restaurants: restaurants,
		Cities:      cities,
		Cuisines:    cuisines,
		Version:     version,
	}
	if err != nil {
		snap.Phase = PhaseError
		snap.Err = err
	} else {
		snap.Phase = PhasePopulated
	}
	s.snapshot = snap
	return snap, err
}
