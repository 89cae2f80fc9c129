package osm

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/platform/metrics"
	"carbon-logistics-service/internal/platform/obs"
	"carbon-logistics-service/internal/platform/tracing"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	// Bounded wait for one lookup. No retries are attempted.
	Timeout time.Duration
	// Client-side rate limit; the public instance allows 1 request/second.
	RPS   float64
	Burst int
}

// Nominatim geocoder (/search, format=jsonv2, first result only).
type NominatimGeocoder struct {
	client
	timeout time.Duration
	limiter *rate.Limiter
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func NewNominatimGeocoder(cfg NominatimConfig) (*NominatimGeocoder, error) {
	if strings.TrimSpace(cfg.UserAgent) == "" {
		return nil, errors.New("nominatim: user agent is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultNominatimURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 1
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}

	return &NominatimGeocoder{
		client: client{
			service:   "nominatim",
			baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
			userAgent: cfg.UserAgent,
			session:   &http.Client{},
		},
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
	}, nil
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, place string) (_ domain.Coordinates, err error) {
	ctx, span := tracing.StartSpan(ctx, "nominatim.geocode", attribute.String("place", place))
	defer tracing.End(span, &err)
	defer obs.Time(ctx, "nominatim.geocode")(&err)

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	waitStart := time.Now()
	if err := n.limiter.Wait(ctx); err != nil {
		return domain.Coordinates{}, fmt.Errorf("rate limit wait: %w", err)
	}
	metrics.RecordRateLimitWait(n.service, time.Since(waitStart))

	req, err := n.newRequest(ctx, http.MethodGet, n.baseURL+"/search")
	if err != nil {
		return domain.Coordinates{}, err
	}
	q := req.URL.Query()
	q.Set("q", place)
	q.Set("format", "jsonv2")
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	status, body, err := n.do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute request: %w", err)
	}
	if status != http.StatusOK {
		return domain.Coordinates{}, &httpStatusError{Code: status, Body: truncate(string(body), maxErrorBody)}
	}

	var decoded []nominatimPlace
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(decoded) == 0 {
		return domain.Coordinates{}, domain.ErrNoGeocodeMatch
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse latitude %q: %w", decoded[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse longitude %q: %w", decoded[0].Lon, err)
	}

	return domain.NewCoordinates(lat, lon)
}
