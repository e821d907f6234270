package interfaces

import (
	"context"

	"offertehub/internal/domain/entities"
)

// INotifier abstracts the transactional-email provider.
//
// Both calls are best-effort: the lead is already persisted when they fire and
// the HTTP response to the submitter does not depend on their outcome.
type INotifier interface {
	SendCustomerConfirmation(ctx context.Context, lead entities.Lead) error
	SendBusinessNotification(ctx context.Context, lead entities.Lead, tenant entities.Tenant) error
}
