package ports

import (
	"context"

	"github.com/edmetrics/galaxydata/internal/core/domain/galaxy"
)

// GalaxyRepository assembles a fully-populated System (attributes plus star
// and planet collections) from the backing store. The assembly is not
// transactional across its queries; any query error aborts the whole record,
// a partially populated System is never returned. Returns ErrNotFound when no
// system row matches the address and edition filter.
type GalaxyRepository interface {
	GetSystem(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error)
}

// GalaxyService is the cached system lookup exposed to the HTTP layer.
type GalaxyService interface {
	LookupSystem(ctx context.Context, address uint64, odyssey bool) (*galaxy.System, error)
}
