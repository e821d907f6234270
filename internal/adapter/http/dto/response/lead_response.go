package response

import (
	"time"

	"offertehub/internal/domain/entities"
)

// LeadCreatedResponse is the minimal acknowledgement the widget expects.
type LeadCreatedResponse struct {
	Success bool   `json:"success"`
	LeadID  string `json:"leadId"`
}

func FromLeadCreated(l entities.Lead) LeadCreatedResponse {
	return LeadCreatedResponse{Success: true, LeadID: l.ID}
}

type LeadResponse struct {
	ID              string                 `json:"id"`
	TenantID        string                 `json:"tenant_id"`
	Domain          string                 `json:"domain"`
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerPhone   string                 `json:"customer_phone,omitempty"`
	Request         entities.QuoteRequest  `json:"request"`
	Breakdown       QuoteResponse          `json:"breakdown"`
	PhotoURLs       []string               `json:"photo_urls,omitempty"`
	PreviewURLs     []string               `json:"preview_urls,omitempty"`
	PreviewNote     string                 `json:"preview_note,omitempty"`
	Status          string                 `json:"status"`
	AppointmentSlot *time.Time             `json:"appointment_slot,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:              l.ID,
		TenantID:        l.TenantID,
		Domain:          string(l.Domain),
		CustomerName:    l.CustomerName,
		CustomerEmail:   l.CustomerEmail,
		CustomerPhone:   l.CustomerPhone,
		Request:         l.Request,
		Breakdown:       FromBreakdown(l.Breakdown),
		PhotoURLs:       l.PhotoURLs,
		PreviewURLs:     l.PreviewURLs,
		PreviewNote:     l.PreviewNote,
		Status:          string(l.Status),
		AppointmentSlot: l.AppointmentSlot,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}
