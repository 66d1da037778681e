package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datban/datban-cli/internal/cli"
	"github.com/datban/datban-cli/internal/config"
	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/gateway/datban"
	"github.com/datban/datban-cli/internal/session"
)

// stubAPI overrides only what a test needs; calling anything else panics.
type stubAPI struct {
	datban.API
	restaurantsFn func(datban.RestaurantFilter) ([]domain.Restaurant, error)
	citiesFn      func() ([]domain.City, error)
	cuisinesFn    func() ([]domain.Cuisine, error)
	districtsFn   func(cityID string) ([]domain.District, error)
	trustedFn     func(cityID string) ([]domain.Restaurant, error)
	loginFn       func(datban.LoginRequest) (domain.Session, error)
}

func (s *stubAPI) Restaurants(_ context.Context, filter datban.RestaurantFilter) ([]domain.Restaurant, error) {
	return s.restaurantsFn(filter)
}

func (s *stubAPI) Cities(context.Context) ([]domain.City, error) {
	return s.citiesFn()
}

func (s *stubAPI) CuisineTypes(context.Context) ([]domain.Cuisine, error) {
	return s.cuisinesFn()
}

func (s *stubAPI) Districts(_ context.Context, cityID string) ([]domain.District, error) {
	return s.districtsFn(cityID)
}

func (s *stubAPI) TrustedRestaurants(_ context.Context, cityID string) ([]domain.Restaurant, error) {
	return s.trustedFn(cityID)
}

func (s *stubAPI) Login(_ context.Context, req datban.LoginRequest) (domain.Session, error) {
	return s.loginFn(req)
}

func testDeps(t *testing.T, api datban.API) cli.Dependencies {
	t.Helper()
	dir := t.TempDir()
	return cli.Dependencies{
		API:     api,
		Session: session.NewStoreAt(filepath.Join(dir, "session.json")),
		Config:  config.NewStoreAt(filepath.Join(dir, "config.json")),
		Version: "test",
	}
}

func runCLI(t *testing.T, deps cli.Dependencies, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), args, deps, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRestaurantsListFallsBackToSampleData(t *testing.T) {
	api := &stubAPI{
		restaurantsFn: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
			return nil, &datban.RequestError{Message: "Network error"}
		},
	}
	deps := testDeps(t, api)

	code, stdout, stderr := runCLI(t, deps, "restaurants", "list")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "backend unreachable; using built-in sample data")
	assert.Contains(t, stdout, "Lộc-Ally Restaurant - Cát Linh")
}

func TestRestaurantsListJSONReportsSource(t *testing.T) {
	api := &stubAPI{
		restaurantsFn: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
			return []domain.Restaurant{{ID: "1", Name: "Lẩu Phan"}}, nil
		},
		citiesFn:   func() ([]domain.City, error) { return []domain.City{}, nil },
		cuisinesFn: func() ([]domain.Cuisine, error) { return []domain.Cuisine{}, nil },
	}
	deps := testDeps(t, api)

	code, stdout, _ := runCLI(t, deps, "restaurants", "list", "--format", "json")
	require.Zero(t, code)

	var env struct {
		Meta map[string]any `json:"meta"`
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &env))
	assert.Equal(t, "api", env.Meta["source"])
	assert.Equal(t, 1, env.Data.Count)
}

func TestRestaurantsListResolvesCitySlug(t *testing.T) {
	var gotFilter datban.RestaurantFilter
	api := &stubAPI{
		restaurantsFn: func(f datban.RestaurantFilter) ([]domain.Restaurant, error) {
			gotFilter = f
			return []domain.Restaurant{
				{ID: "1", Name: "Lẩu Phan", CityID: "city-1"},
				{ID: "2", Name: "Sushi Sachi", CityID: "city-2"},
			}, nil
		},
		citiesFn: func() ([]domain.City, error) {
			return []domain.City{
				{ID: "city-1", Name: "Hà Nội", Code: "hanoi"},
				{ID: "city-2", Name: "Hồ Chí Minh", Code: "hcm"},
			}, nil
		},
		cuisinesFn: func() ([]domain.Cuisine, error) { return []domain.Cuisine{}, nil },
	}
	deps := testDeps(t, api)

	code, stdout, stderr := runCLI(t, deps, "restaurants", "list", "--city", "hcm")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Sushi Sachi")
	assert.NotContains(t, stdout, "Lẩu Phan")
	assert.Empty(t, gotFilter.CityID, "city is filtered client-side after slug resolution")
}

func TestTrustedNarrowsByDistrictAndQuery(t *testing.T) {
	api := &stubAPI{
		citiesFn: func() ([]domain.City, error) {
			return []domain.City{{ID: "city-1", Name: "Hà Nội", Code: "hanoi"}}, nil
		},
		trustedFn: func(cityID string) ([]domain.Restaurant, error) {
			require.Equal(t, "city-1", cityID)
			return []domain.Restaurant{
				{ID: "1", Name: "Lẩu Phan", DistrictID: "d1"},
				{ID: "2", Name: "GoGi House", DistrictID: "d1"},
				{ID: "3", Name: "Lẩu Hương", DistrictID: "d2"},
			}, nil
		},
		districtsFn: func(cityID string) ([]domain.District, error) {
			return []domain.District{
				{ID: "d1", Name: "Cầu Giấy", CityID: "city-1"},
				{ID: "d2", Name: "Đống Đa", CityID: "city-1"},
			}, nil
		},
	}
	deps := testDeps(t, api)

	code, stdout, stderr := runCLI(t, deps,
		"restaurants", "trusted", "--city", "hanoi", "--district", "Cầu Giấy", "--query", "lẩu")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Lẩu Phan")
	assert.NotContains(t, stdout, "GoGi House", "query must narrow the trusted list")
	assert.NotContains(t, stdout, "Lẩu Hương", "district must narrow the trusted list")
}

func TestTrustedDistrictRequiresCity(t *testing.T) {
	deps := testDeps(t, &stubAPI{})
	code, _, stderr := runCLI(t, deps, "restaurants", "trusted", "--district", "d1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--district requires --city")
}

func TestConfiguredDefaultFormatApplies(t *testing.T) {
	api := &stubAPI{
		restaurantsFn: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
			return []domain.Restaurant{{ID: "1", Name: "Lẩu Phan"}}, nil
		},
		citiesFn:   func() ([]domain.City, error) { return []domain.City{}, nil },
		cuisinesFn: func() ([]domain.Cuisine, error) { return []domain.Cuisine{}, nil },
	}
	deps := testDeps(t, api)
	require.NoError(t, deps.Config.Save(context.Background(), config.Settings{DefaultFormat: "json"}))

	code, stdout, stderr := runCLI(t, deps, "restaurants", "list")
	require.Zero(t, code, "stderr: %s", stderr)

	var env struct {
		Meta map[string]any `json:"meta"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &env), "stored default format must render json")
	assert.Equal(t, "api", env.Meta["source"])
}

func TestConfiguredDefaultCityApplies(t *testing.T) {
	api := &stubAPI{
		restaurantsFn: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
			return []domain.Restaurant{
				{ID: "1", Name: "Lẩu Phan", CityID: "city-1"},
				{ID: "2", Name: "Sushi Sachi", CityID: "city-2"},
			}, nil
		},
		citiesFn: func() ([]domain.City, error) {
			return []domain.City{
				{ID: "city-1", Name: "Hà Nội", Code: "hanoi"},
				{ID: "city-2", Name: "Hồ Chí Minh", Code: "hcm"},
			}, nil
		},
		cuisinesFn: func() ([]domain.Cuisine, error) { return []domain.Cuisine{}, nil },
	}
	deps := testDeps(t, api)
	require.NoError(t, deps.Config.Save(context.Background(), config.Settings{DefaultCity: "hcm"}))

	code, stdout, stderr := runCLI(t, deps, "restaurants", "list")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Sushi Sachi")
	assert.NotContains(t, stdout, "Lẩu Phan")

	// An explicit flag wins over the stored default.
	code, stdout, stderr = runCLI(t, deps, "restaurants", "list", "--city", "hanoi")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Lẩu Phan")
	assert.NotContains(t, stdout, "Sushi Sachi")
}

func TestBackendErrorShowsVietnameseSummary(t *testing.T) {
	api := &stubAPI{
		restaurantsFn: func(datban.RestaurantFilter) ([]domain.Restaurant, error) {
			return nil, &datban.RequestError{StatusCode: 500, Message: "boom"}
		},
	}
	deps := testDeps(t, api)

	code, stdout, _ := runCLI(t, deps, "restaurants", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Có lỗi xảy ra khi gọi máy chủ đặt bàn")
	assert.Contains(t, stdout, "status 500")
	assert.NotContains(t, stdout, "booking api", "the raw sentinel text is verbose-only")
}

func TestUnknownCommandExitsWithTwo(t *testing.T) {
	deps := testDeps(t, &stubAPI{})
	code, _, stderr := runCLI(t, deps, "nope")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "No such command 'nope'")
}

func TestAuthLoginStoresSession(t *testing.T) {
	api := &stubAPI{
		loginFn: func(req datban.LoginRequest) (domain.Session, error) {
			require.Equal(t, "an@example.com", req.Email)
			return domain.Session{
				Token: "jwt-abc",
				User:  domain.User{ID: "u1", Name: "An", Email: req.Email},
			}, nil
		},
	}
	deps := testDeps(t, api)

	code, stdout, stderr := runCLI(t, deps, "auth", "login", "--email", "an@example.com", "--password", "secret")
	require.Zero(t, code, "stderr: %s", stderr)
	assert.True(t, strings.Contains(stdout, "Logged in as An"))

	sess, err := deps.Session.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", sess.Token)
}

func TestBookingsListRequiresLogin(t *testing.T) {
	deps := testDeps(t, &stubAPI{})
	code, stdout, _ := runCLI(t, deps, "bookings", "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Vui lòng đăng nhập")
}

func TestBookRejectsMissingPolicyBeforeNetwork(t *testing.T) {
	deps := testDeps(t, &stubAPI{})
	require.NoError(t, deps.Session.Set(context.Background(), domain.Session{Token: "jwt-abc"}))

	code, stdout, _ := runCLI(t, deps,
		"book",
		"--restaurant", "r1",
		"--date", "2099-01-01",
		"--time", "19:00",
		"--name", "An", "--phone", "090", "--email", "an@example.com",
	)
	assert.Equal(t, 1, code)
	// Date is out of range, so the booking-info message fires first.
	assert.Contains(t, stdout, "Vui lòng điền đầy đủ thông tin đặt bàn.")
}

func TestVersionFlag(t *testing.T) {
	deps := testDeps(t, &stubAPI{})
	code, stdout, _ := runCLI(t, deps, "--version")
	require.Zero(t, code)
	assert.Equal(t, "test", strings.TrimSpace(stdout))
}
