package api

import (
	"bytes"
	"carbon-logistics-service/internal/adapters/osm"
	"carbon-logistics-service/internal/adapters/repositories"
	"carbon-logistics-service/internal/api/dto"
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/ports"
	"carbon-logistics-service/internal/services"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newTestServer(t *testing.T, geocoder ports.Geocoder, ping error) *httptest.Server {
	t.Helper()

	repo := repositories.NewMemoryPartRepository(
		domain.PartRecord{
			PartKey:                     domain.PartKey{Manufacturer: "Komatsu", PartName: "Mining Haul Truck", SerialID: "HD785-7"},
			WeightKg:                    100,
			UsedHours:                   4500,
			ManufacturingEmissionFactor: 245.44,
			MaterialEmissions:           domain.MaterialEmissions{Steel: 145.04, Aluminum: 93.5, Rubber: 6.9},
		},
		domain.PartRecord{
			PartKey:  domain.PartKey{Manufacturer: "Caterpillar", PartName: "Mining Haul Truck", SerialID: "777G"},
			WeightKg: 100,
		},
	)
	router := &osm.MockRouteProvider{Result: &ports.RouteResult{DistanceMeters: 120000, DurationSeconds: 5400}}

	srv := httptest.NewServer(NewRouter(Deps{
		Parts:          repo,
		Calculator:     services.NewCalculator(repo, geocoder, router),
		DB:             fakePinger{err: ping},
		AllowedOrigins: []string{"http://localhost:5173"},
	}))
	t.Cleanup(srv.Close)
	return srv
}

func defaultGeocoder() *osm.StaticGeocoder {
	return osm.NewStaticGeocoder(map[string]domain.Coordinates{
		"Tokyo":    {Lat: 35.6762, Lon: 139.6503},
		"Yokohama": {Lat: 35.4437, Lon: 139.6380},
		"Perth":    {Lat: -31.9523, Lon: 115.8613},
	})
}

func postCalculate(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/calculate", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, defaultGeocoder(), nil)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	down := newTestServer(t, defaultGeocoder(), errors.New("db gone"))
	resp2, err := http.Get(down.URL + "/health")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp2.StatusCode)
}

func TestManufacturersAndParts(t *testing.T) {
	srv := newTestServer(t, defaultGeocoder(), nil)

	resp, err := http.Get(srv.URL + "/api/manufacturers")
	require.NoError(t, err)
	defer resp.Body.Close()
	var ms []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ms))
	assert.Equal(t, []string{"Caterpillar", "Komatsu"}, ms)

	resp2, err := http.Get(srv.URL + "/api/parts?manufacturer=Komatsu")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var parts []dto.PartSummaryResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&parts))
	assert.Equal(t, []dto.PartSummaryResponse{{PartName: "Mining Haul Truck", SerialID: "HD785-7"}}, parts)

	resp3, err := http.Get(srv.URL + "/api/parts")
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp3.StatusCode)
}

func TestCalculateOK(t *testing.T) {
	srv := newTestServer(t, defaultGeocoder(), nil)

	resp := postCalculate(t, srv, `{
		"manufacturer": "Komatsu",
		"part_name": "Mining Haul Truck",
		"serial_id": "HD785-7",
		"equipment_type": "Old",
		"pickup": "Tokyo",
		"delivery": "Yokohama",
		"G_pickup": "Perth",
		"G_delivery": "Tokyo"
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Old", body.EquipmentType)
	assert.Equal(t, 120.0, body.LogisticsInfo.Distance)
	assert.Equal(t, 1.5, body.LogisticsInfo.Duration)
	assert.Equal(t, "live_route", body.LogisticsInfo.Source)
	require.NotNil(t, body.GLogisticsInfo)
	assert.Equal(t, "great_circle_estimate", body.GLogisticsInfo.Source)
	assert.Equal(t, body.OldTotalEmissions, body.FinalEmission)
	assert.Equal(t, []string{"Global Emission", "Local Emission"}, body.ChartData.Labels)
	assert.Equal(t, []float64{145.04, 93.5, 6.9}, body.ComponentChart.Values)
	assert.Len(t, body.RouteSummary.Waypoints, 4)
	assert.Equal(t, "Local Pickup", body.RouteSummary.Waypoints[0].Label)
	assert.Equal(t, []float64{35.6762, 139.6503}, body.RouteSummary.Center)
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		errMsg string
	}{
		{
			name:   "malformed json",
			body:   `{"manufacturer":`,
			status: http.StatusBadRequest,
			errMsg: "invalid json body",
		},
		{
			name:   "missing fields",
			body:   `{"manufacturer":"Komatsu"}`,
			status: http.StatusBadRequest,
			errMsg: "invalid request",
		},
		{
			name:   "unknown part",
			body:   `{"manufacturer":"Komatsu","part_name":"Mining Haul Truck","serial_id":"X","equipment_type":"New","pickup":"Tokyo","delivery":"Yokohama"}`,
			status: http.StatusNotFound,
			errMsg: "Part not found",
		},
		{
			name:   "unknown place",
			body:   `{"manufacturer":"Komatsu","part_name":"Mining Haul Truck","serial_id":"HD785-7","equipment_type":"New","pickup":"Tokyo","delivery":"Atlantis"}`,
			status: http.StatusUnprocessableEntity,
			errMsg: "location not found: Atlantis",
		},
	}

	srv := newTestServer(t, defaultGeocoder(), nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postCalculate(t, srv, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.errMsg, body.Error)
		})
	}
}

func TestCalculateGeocoderDown(t *testing.T) {
	geocoder := defaultGeocoder().FailWith("Tokyo", errors.New("connection refused"))
	srv := newTestServer(t, geocoder, nil)

	resp := postCalculate(t, srv, `{"manufacturer":"Komatsu","part_name":"Mining Haul Truck","serial_id":"HD785-7","equipment_type":"New","pickup":"Tokyo","delivery":"Yokohama"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, defaultGeocoder(), nil)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
