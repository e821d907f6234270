package entities

// MaterialKind identifies the primary material of a project (e.g. "kunststof"
// window frames, "pvc" flooring, "binnen"/"buiten" paint jobs).
type MaterialKind string

// GlazingKind identifies the glass package for window projects.
type GlazingKind string

// ColorKind identifies a color/style choice carrying a per-unit surcharge.
type ColorKind string

// ModifierKind identifies a multiplicative adjustment (frame type, ceiling
// height and similar).
type ModifierKind string

const (
	ModifierFixedFrame  ModifierKind = "vast"
	ModifierTiltTurn    ModifierKind = "draaikiep"
	ModifierHighCeiling ModifierKind = "hoog_plafond"
)

// QuoteRequest is the canonical, validated form input a quote is computed from.
//
// Area is the surface in m². FrameCount is only meaningful for the windows
// domain, which requires both frame count and area; floors/painting use Area
// alone.
type QuoteRequest struct {
	Domain     ProjectDomain  `json:"domain"`
	Area       float64        `json:"area_m2"`
	FrameCount int            `json:"frame_count,omitempty"`
	Material   MaterialKind   `json:"material"`
	Glazing    GlazingKind    `json:"glazing,omitempty"`
	Color      ColorKind      `json:"color,omitempty"`
	Modifiers  []ModifierKind `json:"modifiers,omitempty"`

	Installation bool `json:"installation"`
	Removal      bool `json:"removal"`
}

// LineItem is one labeled amount within a price breakdown. Amounts are whole
// euros; rounding happens only at the line-item boundary.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdown is the result of a quote computation. Total always equals the
// sum of Items; when a minimum-order floor applies the gap is present as an
// explicit adjustment line, never folded in silently.
type PriceBreakdown struct {
	Currency string     `json:"currency"`
	Items    []LineItem `json:"line_items"`
	Total    float64    `json:"total"`
}

// Sum returns the sum of all line items.
func (b PriceBreakdown) Sum() float64 {
	var s float64
	for _, it := range b.Items {
		s += it.Amount
	}
	return s
}

// RateTable holds the pricing coefficients for one project domain. Tables are
// immutable per calculation; a tenant override replaces the default table in
// full, sub-fields are never merged.
type RateTable struct {
	MaterialRatePerM2      map[MaterialKind]float64 `json:"material_rate_per_m2"`
	GlazingRatePerM2       map[GlazingKind]float64  `json:"glazing_rate_per_m2,omitempty"`
	Multipliers            map[ModifierKind]float64 `json:"multipliers,omitempty"`
	ColorSurchargePerFrame map[ColorKind]float64    `json:"color_surcharge_per_frame,omitempty"`

	InstallationPerFrame float64 `json:"installation_per_frame,omitempty"`
	InstallationPerM2    float64 `json:"installation_per_m2,omitempty"`
	RemovalFee           float64 `json:"removal_fee,omitempty"`
	PrepFee              float64 `json:"prep_fee,omitempty"`

	MinimumOrderValue float64 `json:"minimum_order_value"`
}
