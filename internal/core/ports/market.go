package ports

import (
	"context"

	"github.com/edmetrics/galaxydata/internal/core/domain/market"
)

// MarketRepository runs the commodity aggregation queries against the backing
// store and assembles the result. Returns ErrNotFound when zero listings
// match the name and edition filter.
type MarketRepository interface {
	GetCommodity(ctx context.Context, name string, odyssey bool) (*market.Commodity, error)
}

// MarketService is the cached commodity lookup exposed to the HTTP layer.
// Safe for concurrent use; idempotent apart from cache population.
type MarketService interface {
	LookupCommodity(ctx context.Context, name string, odyssey bool) (*market.Commodity, error)
}
