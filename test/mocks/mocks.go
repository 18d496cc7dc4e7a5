package mocks

import (
	"context"
	"time"

	"github.com/edmetrics/galaxydata/internal/core/domain/galaxy"
	"github.com/edmetrics/galaxydata/internal/core/domain/market"
	"github.com/edmetrics/galaxydata/internal/core/ports"
)

// MarketRepositoryMock is a lightweight mock for MarketRepository. Calls
// counts invocations so tests can assert the aggregation was (not) re-run.
type MarketRepositoryMock struct {
	GetCommodityFn func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error)
	Calls          int
}

func (m *MarketRepositoryMock) GetCommodity(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
	m.Calls++
	if m.GetCommodityFn != nil {
		return m.GetCommodityFn(ctx, name, odyssey)
	}
	return nil, ports.ErrNotFound
}

// GalaxyRepositoryMock is a lightweight mock for GalaxyRepository.
type GalaxyRepositoryMock struct {
	GetSystemFn func(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error)
	Calls       int
}

func (m *GalaxyRepositoryMock) GetSystem(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error) {
	m.Calls++
	if m.GetSystemFn != nil {
		return m.GetSystemFn(ctx, address, odyssey)
	}
	return nil, ports.ErrNotFound
}

// MarketServiceMock is a lightweight mock for MarketService.
type MarketServiceMock struct {
	LookupCommodityFn func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error)
}

func (m *MarketServiceMock) LookupCommodity(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
	if m.LookupCommodityFn != nil {
		return m.LookupCommodityFn(ctx, name, odyssey)
	}
	return nil, ports.ErrNotFound
}

// GalaxyServiceMock is a lightweight mock for GalaxyService.
type GalaxyServiceMock struct {
	LookupSystemFn func(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error)
}

func (m *GalaxyServiceMock) LookupSystem(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error) {
	if m.LookupSystemFn != nil {
		return m.LookupSystemFn(ctx, address, odyssey)
	}
	return nil, ports.ErrNotFound
}

// RateLimitRepositoryMock is a lightweight mock for RateLimitRepository.
type RateLimitRepositoryMock struct {
	IncrementWindowFn func(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error)
}

func (m *RateLimitRepositoryMock) IncrementWindow(ctx context.Context, clientKey string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	if m.IncrementWindowFn != nil {
		return m.IncrementWindowFn(ctx, clientKey, window, keyPrefix, ttl)
	}
	return 1, time.Now().Truncate(window), nil
}

// RateLimiterServiceMock is a lightweight mock for RateLimiterService.
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, clientKey string) (bool, int, int, time.Time, error)
}

func (m *RateLimiterServiceMock) Allow(ctx context.Context, clientKey string) (bool, int, int, time.Time, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, clientKey)
	}
	return true, 1, 1, time.Now(), nil
}

// Compile-time interface checks
var _ ports.MarketRepository = (*MarketRepositoryMock)(nil)
var _ ports.GalaxyRepository = (*GalaxyRepositoryMock)(nil)
var _ ports.MarketService = (*MarketServiceMock)(nil)
var _ ports.GalaxyService = (*GalaxyServiceMock)(nil)
var _ ports.RateLimitRepository = (*RateLimitRepositoryMock)(nil)
var _ ports.RateLimiterService = (*RateLimiterServiceMock)(nil)
