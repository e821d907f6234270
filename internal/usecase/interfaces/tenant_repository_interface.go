package interfaces

import (
	"context"

	"offertehub/internal/domain/entities"
)

// ITenantRepository abstracts DynamoDB persistence for Tenant.
//
// Quota handling is the delicate part: concurrent lead submissions race on the
// usage counter, so the check and the increment must be one atomic storage
// operation (conditional update), never a read followed by a separate write.

type ITenantRepository interface {
	GetByID(ctx context.Context, id string) (entities.Tenant, error)

	// ConsumeQuota atomically increments the tenant's used counter iff
	// used < limit. It returns false (without error) when the quota is
	// exhausted.
	ConsumeQuota(ctx context.Context, id string) (bool, error)

	// ReleaseQuota undoes one ConsumeQuota reservation. Best-effort: callers
	// log and swallow the error.
	ReleaseQuota(ctx context.Context, id string) error

	// AddQuota raises the tenant's quota limit by credits (credit top-up).
	AddQuota(ctx context.Context, id string, credits int) (entities.Tenant, error)
}
