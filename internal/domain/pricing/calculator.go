package pricing

import (
	"errors"
	"math"

	"offertehub/internal/domain/entities"
)

var (
	ErrUnknownDomain   = errors.New("unknown project domain")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownMaterial = errors.New("material not present in rate table")
	ErrUnknownGlazing  = errors.New("glazing not present in rate table")
	ErrMissingFrames   = errors.New("windows require a positive frame count")
)

// Line item labels shared across domains so breakdowns stay comparable.
const (
	LabelFrames     = "frames"
	LabelGlazing    = "glazing"
	LabelMaterial   = "material"
	LabelInstall    = "installation"
	LabelRemoval    = "removal"
	LabelPrep       = "preparation"
	LabelMinimumAdj = "minimum order adjustment"
)

// Compute maps a validated quote request plus a rate table to a price
// breakdown. It is a pure function: no I/O, no clock, no randomness - identical
// inputs always produce identical breakdowns.
//
// Monetary amounts are kept as float euros during computation and rounded to
// whole euros only at the per-line-item boundary, so intermediate rounding
// error cannot compound. Total is always the exact sum of the emitted line
// items; when the subtotal falls short of the table's minimum order value the
// gap is emitted as an explicit adjustment line.
func Compute(req entities.QuoteRequest, rates entities.RateTable) (entities.PriceBreakdown, error) {
	switch req.Domain {
	case entities.DomainWindows:
		return computeWindows(req, rates)
	case entities.DomainFloors:
		return computeFloors(req, rates)
	case entities.DomainPainting:
		return computePainting(req, rates)
	default:
		return entities.PriceBreakdown{}, ErrUnknownDomain
	}
}

func computeWindows(req entities.QuoteRequest, rates entities.RateTable) (entities.PriceBreakdown, error) {
	if err := validateBase(req, rates); err != nil {
		return entities.PriceBreakdown{}, err
	}
	if req.FrameCount <= 0 {
		return entities.PriceBreakdown{}, ErrMissingFrames
	}

	mult := modifierProduct(req.Modifiers, rates.Multipliers)
	frames := float64(req.FrameCount)

	var items []entities.LineItem

	frameCost := req.Area * rates.MaterialRatePerM2[req.Material] * mult
	if surcharge, ok := rates.ColorSurchargePerFrame[req.Color]; ok && req.Color != "" {
		frameCost += frames * surcharge
	}
	items = append(items, line(LabelFrames, frameCost))

	if req.Glazing != "" {
		rate, ok := rates.GlazingRatePerM2[req.Glazing]
		if !ok {
			return entities.PriceBreakdown{}, ErrUnknownGlazing
		}
		items = append(items, line(LabelGlazing, req.Area*rate*mult))
	}

	if req.Installation && rates.InstallationPerFrame > 0 {
		items = append(items, line(LabelInstall, frames*rates.InstallationPerFrame))
	}
	if req.Removal && rates.RemovalFee > 0 {
		items = append(items, line(LabelRemoval, rates.RemovalFee))
	}

	return finalize(items, rates.MinimumOrderValue), nil
}

func computeFloors(req entities.QuoteRequest, rates entities.RateTable) (entities.PriceBreakdown, error) {
	if err := validateBase(req, rates); err != nil {
		return entities.PriceBreakdown{}, err
	}

	mult := modifierProduct(req.Modifiers, rates.Multipliers)

	items := []entities.LineItem{
		line(LabelMaterial, req.Area*rates.MaterialRatePerM2[req.Material]*mult),
	}
	if req.Installation && rates.InstallationPerM2 > 0 {
		items = append(items, line(LabelInstall, req.Area*rates.InstallationPerM2))
	}
	if req.Removal && rates.RemovalFee > 0 {
		items = append(items, line(LabelRemoval, rates.RemovalFee))
	}

	return finalize(items, rates.MinimumOrderValue), nil
}

func computePainting(req entities.QuoteRequest, rates entities.RateTable) (entities.PriceBreakdown, error) {
	if err := validateBase(req, rates); err != nil {
		return entities.PriceBreakdown{}, err
	}

	mult := modifierProduct(req.Modifiers, rates.Multipliers)

	items := []entities.LineItem{
		line(LabelMaterial, req.Area*rates.MaterialRatePerM2[req.Material]*mult),
	}
	if req.Installation && rates.PrepFee > 0 {
		items = append(items, line(LabelPrep, rates.PrepFee))
	}
	if req.Removal && rates.RemovalFee > 0 {
		items = append(items, line(LabelRemoval, rates.RemovalFee))
	}

	return finalize(items, rates.MinimumOrderValue), nil
}

func validateBase(req entities.QuoteRequest, rates entities.RateTable) error {
	if req.Area <= 0 {
		return ErrInvalidQuantity
	}
	if _, ok := rates.MaterialRatePerM2[req.Material]; !ok {
		return ErrUnknownMaterial
	}
	return nil
}

// modifierProduct multiplies the table factors for the requested modifiers.
// Modifiers absent from the table contribute 1.0.
func modifierProduct(mods []entities.ModifierKind, table map[entities.ModifierKind]float64) float64 {
	p := 1.0
	for _, m := range mods {
		if f, ok := table[m]; ok {
			p *= f
		}
	}
	return p
}

func line(label string, amount float64) entities.LineItem {
	return entities.LineItem{Label: label, Amount: math.Round(amount)}
}

func finalize(items []entities.LineItem, minimum float64) entities.PriceBreakdown {
	b := entities.PriceBreakdown{Currency: "EUR", Items: items}
	subtotal := b.Sum()
	if minimum > 0 && subtotal < minimum {
		b.Items = append(b.Items, line(LabelMinimumAdj, minimum-subtotal))
	}
	b.Total = b.Sum()
	return b
}
