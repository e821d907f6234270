package interfaces

import (
	"context"
	"time"

	"offertehub/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Leads are immutable snapshots of the submission except for status and the
// appointment slot; the interface deliberately offers no general update or
// delete (retention is an external concern).

type ILeadRepository interface {
	Create(ctx context.Context, lead entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error)
	UpdateAppointment(ctx context.Context, id string, slot time.Time) (entities.Lead, error)
}
