package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/edmetrics/galaxydata/internal/core/domain/market"
	"github.com/edmetrics/galaxydata/internal/core/ports"
)

// MarketService orchestrates the cached commodity lookup: cache read, then on
// miss the aggregation queries, then a conditional cache write. Concurrent
// misses for the same name are coalesced into one repository call.
type MarketService struct {
	repo   ports.MarketRepository
	cache  ports.LookupCache[string, market.Commodity]
	logger *logrus.Logger
	sf     singleflight.Group
}

func NewMarketService(repo ports.MarketRepository, cache ports.LookupCache[string, market.Commodity], logger *logrus.Logger) *MarketService {
	return &MarketService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// LookupCommodity returns the aggregated market picture for name. The cache
// key is the caller-provided name, case-sensitive and untrimmed. Failed and
// not-found computations are never cached, and neither is a result without
// any price data; both rules keep repeated bad lookups from growing the
// store.
func (s *MarketService) LookupCommodity(ctx context.Context, name string, odyssey bool) (*market.Commodity, error) {
	if v, ok := s.cache.Get(name); ok {
		lookupCacheHits.WithLabelValues("commodity").Inc()
		return &v, nil
	}
	lookupCacheMisses.WithLabelValues("commodity").Inc()

	res, err, _ := s.sf.Do(name, func() (any, error) {
		return s.repo.GetCommodity(ctx, name, odyssey)
	})
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"commodity": name, "odyssey": odyssey}).
				WithError(err).Error("commodity aggregation failed")
		}
		// Callers only ever see found / not found.
		return nil, ports.ErrNotFound
	}

	commodity := res.(*market.Commodity)
	if commodity.HasPriceData() {
		s.cache.Put(name, *commodity)
	}
	return commodity, nil
}

var _ ports.MarketService = (*MarketService)(nil)
