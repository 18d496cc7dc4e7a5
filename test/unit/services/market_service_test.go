package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	impl "github.com/edmetrics/galaxydata/internal/application/services"
	"github.com/edmetrics/galaxydata/internal/core/domain/market"
	"github.com/edmetrics/galaxydata/internal/core/ports"
	"github.com/edmetrics/galaxydata/internal/infrastructure/memcache"
	tmocks "github.com/edmetrics/galaxydata/test/mocks"
)

func floatPtr(v float64) *float64 { return &v }

func commodityCache(now *time.Time) *memcache.Store[string, market.Commodity] {
	return memcache.New(600*time.Second, memcache.WithClock[string, market.Commodity](func() time.Time { return *now }))
}

func goldCommodity() *market.Commodity {
	return &market.Commodity{
		Name:         "gold",
		AvgBuyPrice:  floatPtr(150),
		AvgSellPrice: floatPtr(148),
		AvgMeanPrice: floatPtr(149),
		BestBuy:      &market.Offer{Price: 100, Station: "Abraham Lincoln", System: "Sol"},
		BestSell:     &market.Offer{Price: 180, Station: "Cleve Hub", System: "Eravate"},
	}
}

func TestLookupCommodity_CacheHitSkipsAggregation(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := &tmocks.MarketRepositoryMock{
		GetCommodityFn: func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
			return goldCommodity(), nil
		},
	}
	svc := impl.NewMarketService(repo, commodityCache(&now), nil)

	first, err := svc.LookupCommodity(context.Background(), "gold", false)
	require.NoError(t, err)
	require.Equal(t, 150.0, *first.AvgBuyPrice)
	require.Equal(t, 100.0, first.BestBuy.Price)

	second, err := svc.LookupCommodity(context.Background(), "gold", false)
	require.NoError(t, err)
	require.Equal(t, 1, repo.Calls, "second lookup must be answered from cache")
	require.Equal(t, first, second)
}

func TestLookupCommodity_StaleEntryReinvokesAggregation(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := &tmocks.MarketRepositoryMock{
		GetCommodityFn: func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
			return goldCommodity(), nil
		},
	}
	svc := impl.NewMarketService(repo, commodityCache(&now), nil)

	_, err := svc.LookupCommodity(context.Background(), "gold", false)
	require.NoError(t, err)

	now = now.Add(601 * time.Second)
	_, err = svc.LookupCommodity(context.Background(), "gold", false)
	require.NoError(t, err)
	require.Equal(t, 2, repo.Calls, "stale entry must trigger recomputation")
}

func TestLookupCommodity_NotFoundNeverCached(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := &tmocks.MarketRepositoryMock{}
	svc := impl.NewMarketService(repo, commodityCache(&now), nil)

	_, err := svc.LookupCommodity(context.Background(), "unobtanium", false)
	require.ErrorIs(t, err, ports.ErrNotFound)

	_, err = svc.LookupCommodity(context.Background(), "unobtanium", false)
	require.ErrorIs(t, err, ports.ErrNotFound)
	require.Equal(t, 2, repo.Calls, "a not-found result must not poison the cache")
}

func TestLookupCommodity_QueryFailureSurfacesAsNotFound(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := &tmocks.MarketRepositoryMock{
		GetCommodityFn: func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := impl.NewMarketService(repo, commodityCache(&now), nil)

	_, err := svc.LookupCommodity(context.Background(), "gold", false)
	require.ErrorIs(t, err, ports.ErrNotFound)

	_, err = svc.LookupCommodity(context.Background(), "gold", false)
	require.Equal(t, 2, repo.Calls, "a failed computation must not be cached")
}

func TestLookupCommodity_AllNullPricesReturnedButNotCached(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := &tmocks.MarketRepositoryMock{
		GetCommodityFn: func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
			return &market.Commodity{Name: name}, nil
		},
	}
	svc := impl.NewMarketService(repo, commodityCache(&now), nil)

	c, err := svc.LookupCommodity(context.Background(), "void opals", false)
	require.NoError(t, err)
	require.Nil(t, c.AvgBuyPrice)
	require.Nil(t, c.AvgSellPrice)
	require.Nil(t, c.AvgMeanPrice)

	_, err = svc.LookupCommodity(context.Background(), "void opals", false)
	require.NoError(t, err)
	require.Equal(t, 2, repo.Calls, "an all-null result must not be cached")
}

func TestLookupCommodity_KeysAreCaseSensitive(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := &tmocks.MarketRepositoryMock{
		GetCommodityFn: func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
			c := goldCommodity()
			c.Name = name
			return c, nil
		},
	}
	svc := impl.NewMarketService(repo, commodityCache(&now), nil)

	_, err := svc.LookupCommodity(context.Background(), "gold", false)
	require.NoError(t, err)
	_, err = svc.LookupCommodity(context.Background(), "Gold", false)
	require.NoError(t, err)
	require.Equal(t, 2, repo.Calls, "keys are compared by exact value, no normalization")
}

func TestLookupCommodity_IdempotentRecomputation(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	repo := &tmocks.MarketRepositoryMock{
		GetCommodityFn: func(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
			return goldCommodity(), nil
		},
	}
	svc := impl.NewMarketService(repo, commodityCache(&now), nil)

	first, err := svc.LookupCommodity(context.Background(), "gold", false)
	require.NoError(t, err)

	now = now.Add(time.Hour)
	second, err := svc.LookupCommodity(context.Background(), "gold", false)
	require.NoError(t, err)
	require.Equal(t, first, second, "unchanged backing data must recompute to an equal object")
}
