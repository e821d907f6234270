package interfaces

import (
	"context"

	"offertehub/internal/domain/entities"
)

// IPricingOverrideRepository abstracts persistence of tenant-specific rate
// tables. An override replaces the default table in full for its domain; there
// is no partial merge, so Get returns either a complete table or nil.

type IPricingOverrideRepository interface {
	Get(ctx context.Context, tenantID string, domain entities.ProjectDomain) (*entities.RateTable, error)
	Put(ctx context.Context, tenantID string, domain entities.ProjectDomain, table entities.RateTable) error
}
