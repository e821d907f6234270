package request

import (
	"strings"

	"offertehub/internal/domain/entities"
)

// QuoteRequest is the standalone quote endpoint payload. Area accepts the same
// range notation as the lead payload ("15-20" resolves to the midpoint).
type QuoteRequest struct {
	TenantID     string   `json:"tenantId"`
	Domain       string   `json:"domain" binding:"required"`
	Area         string   `json:"area" binding:"required"`
	FrameCount   int      `json:"frameCount"`
	Material     string   `json:"material" binding:"required"`
	Glazing      string   `json:"glazing"`
	Color        string   `json:"color"`
	Modifiers    []string `json:"modifiers"`
	Installation bool     `json:"installation"`
	Removal      bool     `json:"removal"`
}

func (r QuoteRequest) ResolveTenantID() string {
	return strings.TrimSpace(r.TenantID)
}

func (r QuoteRequest) ResolveQuoteRequest() (entities.QuoteRequest, error) {
	area, err := parseArea(r.Area)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if r.FrameCount < 0 {
		return entities.QuoteRequest{}, ErrInvalidFrameCount
	}
	var modifiers []entities.ModifierKind
	for _, m := range r.Modifiers {
		if v := strings.TrimSpace(m); v != "" {
			modifiers = append(modifiers, entities.ModifierKind(v))
		}
	}
	return entities.QuoteRequest{
		Domain:       entities.ProjectDomain(strings.TrimSpace(r.Domain)),
		Area:         area,
		FrameCount:   r.FrameCount,
		Material:     entities.MaterialKind(strings.TrimSpace(r.Material)),
		Glazing:      entities.GlazingKind(strings.TrimSpace(r.Glazing)),
		Color:        entities.ColorKind(strings.TrimSpace(r.Color)),
		Modifiers:    modifiers,
		Installation: r.Installation,
		Removal:      r.Removal,
	}, nil
}
