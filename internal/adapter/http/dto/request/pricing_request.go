package request

import "offertehub/internal/domain/entities"

// PricingOverrideRequest carries a complete tenant rate table for one domain.
// The table replaces the default in full; there is no partial merge.
type PricingOverrideRequest struct {
	Rates entities.RateTable `json:"rates" binding:"required"`
}

func (r PricingOverrideRequest) ResolveRates() entities.RateTable {
	return r.Rates
}
