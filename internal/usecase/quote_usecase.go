package usecase

import (
	"context"
	"errors"
	"strings"

	"offertehub/internal/domain/entities"
	"offertehub/internal/domain/pricing"
	"offertehub/internal/usecase/interfaces"
)

var ErrInvalidRateTable = errors.New("invalid rate table")

// IQuoteUseCase exposes quote computation.
//
// Rate resolution has a single entry point: a tenant-specific table, when one
// exists for the (tenant, domain) pair, replaces the default table in full;
// otherwise the built-in default applies. Computation itself is delegated to
// the pure per-domain calculators.

type IQuoteUseCase interface {
	ResolveRates(ctx context.Context, tenantID string, domain entities.ProjectDomain) (entities.RateTable, error)
	UpsertRates(ctx context.Context, tenantID string, domain entities.ProjectDomain, table entities.RateTable) error
	Quote(ctx context.Context, tenantID string, req entities.QuoteRequest) (entities.PriceBreakdown, error)
}

type QuoteUseCase struct {
	overrides interfaces.IPricingOverrideRepository
	defaults  map[entities.ProjectDomain]entities.RateTable
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(overrides interfaces.IPricingOverrideRepository, defaults map[entities.ProjectDomain]entities.RateTable) *QuoteUseCase {
	return &QuoteUseCase{overrides: overrides, defaults: defaults}
}

func (u *QuoteUseCase) ResolveRates(ctx context.Context, tenantID string, domain entities.ProjectDomain) (entities.RateTable, error) {
	def, ok := u.defaults[domain]
	if !ok {
		return entities.RateTable{}, pricing.ErrUnknownDomain
	}

	if tenantID == "" || u.overrides == nil {
		return def, nil
	}

	override, err := u.overrides.Get(ctx, tenantID, domain)
	if err != nil {
		return entities.RateTable{}, err
	}
	if override != nil {
		return *override, nil
	}
	return def, nil
}

// UpsertRates stores a tenant-specific rate table for one domain. The stored
// table replaces the default in full on subsequent ResolveRates calls, so it
// must be complete: material rates present and every value non-negative.
func (u *QuoteUseCase) UpsertRates(ctx context.Context, tenantID string, domain entities.ProjectDomain, table entities.RateTable) error {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return ErrInvalidTenantID
	}
	if _, ok := u.defaults[domain]; !ok {
		return pricing.ErrUnknownDomain
	}
	if err := validateRateTable(table); err != nil {
		return err
	}
	if u.overrides == nil {
		return errors.New("pricing override repository not configured")
	}
	return u.overrides.Put(ctx, tenantID, domain, table)
}

func validateRateTable(table entities.RateTable) error {
	if len(table.MaterialRatePerM2) == 0 {
		return ErrInvalidRateTable
	}
	for _, v := range table.MaterialRatePerM2 {
		if v < 0 {
			return ErrInvalidRateTable
		}
	}
	for _, v := range table.GlazingRatePerM2 {
		if v < 0 {
			return ErrInvalidRateTable
		}
	}
	for _, v := range table.Multipliers {
		if v < 0 {
			return ErrInvalidRateTable
		}
	}
	for _, v := range table.ColorSurchargePerFrame {
		if v < 0 {
			return ErrInvalidRateTable
		}
	}
	if table.InstallationPerFrame < 0 || table.InstallationPerM2 < 0 ||
		table.RemovalFee < 0 || table.PrepFee < 0 || table.MinimumOrderValue < 0 {
		return ErrInvalidRateTable
	}
	return nil
}

func (u *QuoteUseCase) Quote(ctx context.Context, tenantID string, req entities.QuoteRequest) (entities.PriceBreakdown, error) {
	rates, err := u.ResolveRates(ctx, tenantID, req.Domain)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}
	return pricing.Compute(req, rates)
}
