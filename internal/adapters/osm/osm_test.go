package osm

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/ports"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNominatim(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *NominatimGeocoder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := NewNominatimGeocoder(NominatimConfig{
		BaseURL:   srv.URL,
		UserAgent: "carbon-test",
		Timeout:   timeout,
		RPS:       1000,
		Burst:     10,
	})
	require.NoError(t, err)
	return g
}

func TestNominatimGeocode(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "carbon-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"48.8588897","lon":"2.3200410","display_name":"Paris, France"}]`))
	}, time.Second)

	c, err := g.Geocode(context.Background(), "Paris")
	require.NoError(t, err)
	assert.InDelta(t, 48.8588897, c.Lat, 1e-9)
	assert.InDelta(t, 2.3200410, c.Lon, 1e-9)
}

func TestNominatimNoMatch(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}, time.Second)

	_, err := g.Geocode(context.Background(), "Atlantis")
	require.ErrorIs(t, err, domain.ErrNoGeocodeMatch)
}

func TestNominatimServerErrorIsNotRetried(t *testing.T) {
	calls := 0
	g := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}, time.Second)

	_, err := g.Geocode(context.Background(), "Paris")
	var he *httpStatusError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusServiceUnavailable, he.Code)
	assert.Equal(t, 1, calls)
	assert.False(t, errors.Is(err, domain.ErrNoGeocodeMatch))
}

func TestNominatimTimeout(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	_, err := g.Geocode(context.Background(), "Paris")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNominatimRejectsOutOfRangeCoordinates(t *testing.T) {
	g := newTestNominatim(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"123.0","lon":"2.0"}]`))
	}, time.Second)

	_, err := g.Geocode(context.Background(), "Nowhere")
	require.ErrorContains(t, err, "latitude")
}

func TestNewNominatimRequiresUserAgent(t *testing.T) {
	_, err := NewNominatimGeocoder(NominatimConfig{})
	require.Error(t, err)
}

func newTestOSRM(t *testing.T, handler http.HandlerFunc) *OSRMRouteProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOSRMRouteProvider(OSRMConfig{BaseURL: srv.URL, Timeout: time.Second})
}

func TestOSRMRoute(t *testing.T) {
	p := newTestOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/route/v1/driving/-0.127800,51.507400;2.352200,48.856600", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("overview"))
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":456789.5,"duration":18000},{"distance":1,"duration":1}]}`))
	})

	london := domain.Coordinates{Lat: 51.5074, Lon: -0.1278}
	paris := domain.Coordinates{Lat: 48.8566, Lon: 2.3522}

	r, err := p.Route(context.Background(), london, paris)
	require.NoError(t, err)
	assert.Equal(t, &ports.RouteResult{DistanceMeters: 456789.5, DurationSeconds: 18000}, r)
}

func TestOSRMNoRoute(t *testing.T) {
	p := newTestOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"NoRoute","message":"Impossible route between points"}`))
	})

	r, err := p.Route(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1, Lon: 1})
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestOSRMServerError(t *testing.T) {
	p := newTestOSRM(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := p.Route(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1, Lon: 1})
	var he *httpStatusError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadGateway, he.Code)
}

func TestStaticGeocoderCountsCalls(t *testing.T) {
	g := NewStaticGeocoder(map[string]domain.Coordinates{"Oslo": {Lat: 59.91, Lon: 10.75}})
	ctx := context.Background()

	_, err := g.Geocode(ctx, "Oslo")
	require.NoError(t, err)
	_, err = g.Geocode(ctx, "Bergen")
	require.ErrorIs(t, err, domain.ErrNoGeocodeMatch)

	assert.Equal(t, 1, g.Calls("Oslo"))
	assert.Equal(t, 2, g.TotalCalls())
}
