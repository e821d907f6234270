package interfaces

import (
	"context"

	"offertehub/internal/domain/entities"
)

// ICreditPurchaseRepository abstracts DynamoDB persistence for CreditPurchase.
type ICreditPurchaseRepository interface {
	Create(ctx context.Context, p entities.CreditPurchase) (entities.CreditPurchase, error)
	GetByID(ctx context.Context, id string) (entities.CreditPurchase, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.CreditPurchase, error)
}
