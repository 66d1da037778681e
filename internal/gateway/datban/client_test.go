package datban

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
)

type captureHTTPClient struct {
	requests  []*http.Request
	responses []*http.Response
	errs      []error
}

func (c *captureHTTPClient) Do(req *http.Request) (*http.Response, error) {
	index := len(c.requests)
	c.requests = append(c.requests, req)
	var err error
	if index < len(c.errs) {
		err = c.errs[index]
	}
	if err != nil {
		return nil, err
	}
	if index < len(c.responses) {
		return c.responses[index], nil
	}
	return jsonResponse(200, `{}`), nil
}

func jsonResponse(status int, payload string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(payload))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

type staticTokens struct {
	token string
}

func (s staticTokens) Token() string { return s.token }

func TestClientAttachesBearerToken(t *testing.T) {
	httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(200, `[]`)}}
	client := NewClient(
		WithHTTPClient(httpClient),
		WithBaseURL("http://backend.test"),
		WithTokenSource(staticTokens{token: "jwt-token"}),
	)

	if _, err := client.MyBookings(context.Background()); err != nil {
		t.Fatalf("my bookings failed: %v", err)
	}
	if len(httpClient.requests) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(httpClient.requests))
	}
	if got := httpClient.requests[0].Header.Get("Authorization"); got != "Bearer jwt-token" {
		t.Fatalf("expected bearer header, got %q", got)
	}
}

func TestClientOmitsEmptyFilterParams(t *testing.T) {
	httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(200, `[]`)}}
	client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))

	_, err := client.Restaurants(context.Background(), RestaurantFilter{
		CityID:     "city-1",
		CuisineIDs: []string{"cuisine-1", "", "cuisine-3"},
	})
	if err != nil {
		t.Fatalf("restaurants failed: %v", err)
	}

	query := httpClient.requests[0].URL.Query()
	if got := query.Get("cityId"); got != "city-1" {
		t.Fatalf("expected cityId=city-1, got %q", got)
	}
	for _, absent := range []string{"districtId", "priceRange", "search", "page", "limit"} {
		if _, ok := query[absent]; ok {
			t.Fatalf("expected %s to be omitted, query was %q", absent, httpClient.requests[0].URL.RawQuery)
		}
	}
	cuisines := query["cuisineIds"]
	if len(cuisines) != 2 || cuisines[0] != "cuisine-1" || cuisines[1] != "cuisine-3" {
		t.Fatalf("expected repeated non-empty cuisineIds, got %v", cuisines)
	}
}

func TestClientSurfacesServerErrorEnvelope(t *testing.T) {
	httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(404, `{"message":"Not found"}`)}}
	client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))

	_, err := client.RestaurantByID(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected an error")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.StatusCode != 404 {
		t.Fatalf("expected status 404, got %d", reqErr.StatusCode)
	}
	if reqErr.Message != "Not found" {
		t.Fatalf("expected server message, got %q", reqErr.Message)
	}
	if !errors.Is(err, ErrBackend) {
		t.Fatal("expected error to unwrap to ErrBackend")
	}
}

func TestClientMapsTransportFailureToStatusZero(t *testing.T) {
	httpClient := &captureHTTPClient{errs: []error{fmt.Errorf("connection refused")}}
	client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))

	_, err := client.Cities(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.StatusCode != 0 {
		t.Fatalf("expected status 0 for transport failure, got %d", reqErr.StatusCode)
	}
	if reqErr.Message != "Network error" {
		t.Fatalf("expected network error message, got %q", reqErr.Message)
	}
	if !IsUnreachable(err) {
		t.Fatal("expected IsUnreachable to report true")
	}
	if len(httpClient.requests) != 1 {
		t.Fatalf("expected exactly one attempt, got %d", len(httpClient.requests))
	}
}

func TestClientDecodesBareArrayAndEnvelope(t *testing.T) {
	bare := `[{"id":"c1","name":"Hà Nội"}]`
	enveloped := `{"data":[{"id":"c2","name":"Đà Nẵng"}],"meta":{"total":1}}`

	for name, payload := range map[string]string{"bare": bare, "envelope": enveloped} {
		httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(200, payload)}}
		client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))
		cities, err := client.Cities(context.Background())
		if err != nil {
			t.Fatalf("%s: cities failed: %v", name, err)
		}
		if len(cities) != 1 {
			t.Fatalf("%s: expected one city, got %d", name, len(cities))
		}
	}
}

func TestClientListNeverReturnsNil(t *testing.T) {
	httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(200, `null`)}}
	client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))

	cities, err := client.Cities(context.Background())
	if err != nil {
		t.Fatalf("cities failed: %v", err)
	}
	if cities == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestClientTypesDecodeFailures(t *testing.T) {
	cases := map[string]func(*Client) error{
		"object": func(client *Client) error {
			_, err := client.CityByID(context.Background(), "c1")
			return err
		},
		"list": func(client *Client) error {
			_, err := client.Cities(context.Background())
			return err
		},
	}
	payloads := map[string]string{
		"object": `{not json`,
		"list":   `["not-a-city-object"]`,
	}

	for name, call := range cases {
		httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(200, payloads[name])}}
		client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))

		err := call(client)
		if err == nil {
			t.Fatalf("%s: expected an error", name)
		}
		var reqErr *RequestError
		if !errors.As(err, &reqErr) {
			t.Fatalf("%s: expected *RequestError, got %T", name, err)
		}
		if !errors.Is(err, ErrBackend) {
			t.Fatalf("%s: expected error to unwrap to ErrBackend", name)
		}
		if IsUnreachable(err) {
			t.Fatalf("%s: a decode failure must not look like a transport failure", name)
		}
	}
}

func TestClientNormalizesListedRestaurants(t *testing.T) {
	payload := `[{"id":1,"name":"Lẩu Phan","city":"Hà Nội","cuisine":["Lẩu"],"image":"http://img/main.jpg"}]`
	httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(200, payload)}}
	client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))

	restaurants, err := client.Restaurants(context.Background(), RestaurantFilter{})
	if err != nil {
		t.Fatalf("restaurants failed: %v", err)
	}
	if len(restaurants) != 1 {
		t.Fatalf("expected one restaurant, got %d", len(restaurants))
	}
	got := restaurants[0]
	if got.ID != "1" {
		t.Fatalf("expected numeric id coerced to string, got %q", got.ID)
	}
	if got.City == nil || got.City.Name != "Hà Nội" {
		t.Fatalf("expected legacy city string promoted to object, got %+v", got.City)
	}
	if len(got.Cuisines) != 1 || got.Cuisines[0].Name != "Lẩu" {
		t.Fatalf("expected cuisine names promoted, got %+v", got.Cuisines)
	}
	if len(got.Images) != 1 || got.Images[0].ImageURL != "http://img/main.jpg" {
		t.Fatalf("expected legacy image promoted, got %+v", got.Images)
	}
}

func TestLoginReturnsSession(t *testing.T) {
	payload := `{"access_token":"jwt-abc","user":{"id":"u1","email":"an@example.com","name":"An"}}`
	httpClient := &captureHTTPClient{responses: []*http.Response{jsonResponse(201, payload)}}
	client := NewClient(WithHTTPClient(httpClient), WithBaseURL("http://backend.test"))

	sess, err := client.Login(context.Background(), LoginRequest{Email: "an@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sess.Token != "jwt-abc" {
		t.Fatalf("expected token from access_token, got %q", sess.Token)
	}
	if sess.User.Name != "An" {
		t.Fatalf("expected user attached to session, got %+v", sess.User)
	}
	if httpClient.requests[0].Method != http.MethodPost {
		t.Fatalf("expected POST, got %s", httpClient.requests[0].Method)
	}
}
