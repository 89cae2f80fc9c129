package osm

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/platform/obs"
	"carbon-logistics-service/internal/platform/tracing"
	"carbon-logistics-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

const DefaultOSRMURL = "https://router.project-osrm.org"

type OSRMConfig struct {
	BaseURL   string
	UserAgent string
	Profile   string
	Timeout   time.Duration
}

// OSRM road router (/route/v1/{profile}, overview=false).
type OSRMRouteProvider struct {
	client
	profile string
	timeout time.Duration
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

func NewOSRMRouteProvider(cfg OSRMConfig) *OSRMRouteProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOSRMURL
	}
	if cfg.Profile == "" {
		cfg.Profile = "driving"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "carbon-logistics-service"
	}

	return &OSRMRouteProvider{
		client: client{
			service:   "osrm",
			baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
			userAgent: cfg.UserAgent,
			session:   &http.Client{},
		},
		profile: cfg.Profile,
		timeout: cfg.Timeout,
	}
}

// Route returns the first route, or nil when OSRM answers without routes
// (including NoRoute/NoSegment 400 responses).
func (o *OSRMRouteProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (_ *ports.RouteResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "osrm.route",
		attribute.Float64Slice("origin", origin.CoordsToList()),
		attribute.Float64Slice("destination", destination.CoordsToList()),
	)
	defer tracing.End(span, &err)
	defer obs.Time(ctx, "osrm.route")(&err)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	// OSRM expects lon,lat pairs.
	endpoint := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f",
		o.baseURL, o.profile,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
	)

	req, err := o.newRequest(ctx, http.MethodGet, endpoint)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("overview", "false")
	req.URL.RawQuery = q.Encode()

	status, body, err := o.do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	var decoded osrmResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		if status >= 400 {
			return nil, &httpStatusError{Code: status, Body: truncate(string(body), maxErrorBody)}
		}
		return nil, fmt.Errorf("decode route response: %w", err)
	}

	if len(decoded.Routes) == 0 {
		return nil, nil
	}

	r := decoded.Routes[0]
	return &ports.RouteResult{
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}, nil
}
