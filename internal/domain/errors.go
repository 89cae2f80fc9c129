package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrPartNotFound    = errors.New("part not found")
	ErrNoGeocodeMatch  = errors.New("no geocode match")
	ErrEmptyPlaceName  = errors.New("place name is empty")
	ErrRoutingNoRoutes = errors.New("routing service returned no routes")
)

// GeocodeError is terminal for the request that triggered it.
type GeocodeError struct {
	Place string
	Err   error
}

func (e *GeocodeError) Error() string {
	return fmt.Sprintf("geocode %q: %v", e.Place, e.Err)
}

func (e *GeocodeError) Unwrap() error { return e.Err }

// NoMatch reports whether the upstream answered but found nothing.
func (e *GeocodeError) NoMatch() bool {
	return errors.Is(e.Err, ErrNoGeocodeMatch) || errors.Is(e.Err, ErrEmptyPlaceName)
}

type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid transport mode %q", e.Mode)
}

// RoutingServiceError wraps any failure of the live routing lookup.
// It never leaves the distance resolver.
type RoutingServiceError struct {
	Err error
}

func (e *RoutingServiceError) Error() string {
	return fmt.Sprintf("routing service: %v", e.Err)
}

func (e *RoutingServiceError) Unwrap() error { return e.Err }

// ValidationError lists every invalid field of a request at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid request: " + strings.Join(parts, "; ")
}
