package osm

import (
	"carbon-logistics-service/internal/domain"
	"carbon-logistics-service/internal/ports"
	"context"
	"sync"
)

// MockRouteProvider returns a fixed result (or error) and counts calls.
// A nil Result with a nil Err models a response with zero routes.
type MockRouteProvider struct {
	Result *ports.RouteResult
	Err    error

	mu    sync.Mutex
	calls int
}

func (p *MockRouteProvider) Route(_ context.Context, _, _ domain.Coordinates) (*ports.RouteResult, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	if p.Result == nil {
		return nil, nil
	}
	r := *p.Result
	return &r, nil
}

func (p *MockRouteProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
