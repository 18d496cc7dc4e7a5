package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/edmetrics/galaxydata/internal/core/domain/galaxy"
	"github.com/edmetrics/galaxydata/internal/core/ports"
)

// GalaxyService orchestrates the cached system lookup, mirroring
// MarketService for the system cache kind.
type GalaxyService struct {
	repo   ports.GalaxyRepository
	cache  ports.LookupCache[uint64, galaxy.System]
	logger *logrus.Logger
	sf     singleflight.Group
}

func NewGalaxyService(repo ports.GalaxyRepository, cache ports.LookupCache[uint64, galaxy.System], logger *logrus.Logger) *GalaxyService {
	return &GalaxyService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// LookupSystem returns the system record for address with its star and planet
// collections attached. Failed and not-found computations are never cached; a
// successful record is cached only when its name is defined.
func (s *GalaxyService) LookupSystem(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error) {
	if v, ok := s.cache.Get(address); ok {
		lookupCacheHits.WithLabelValues("system").Inc()
		return &v, nil
	}
	lookupCacheMisses.WithLabelValues("system").Inc()

	res, err, _ := s.sf.Do(strconv.FormatUint(address, 10), func() (any, error) {
		return s.repo.GetSystem(ctx, address, odyssey)
	})
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"address": address, "odyssey": odyssey}).
				WithError(err).Error("system assembly failed")
		}
		return nil, ports.ErrNotFound
	}

	system := res.(*galaxy.System)
	if system.Name != "" {
		s.cache.Put(address, *system)
	}
	return system, nil
}

var _ ports.GalaxyService = (*GalaxyService)(nil)
