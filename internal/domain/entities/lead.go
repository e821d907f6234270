package entities

import "time"

// ProjectDomain is one of the supported project categories. Each domain has its
// own rate table and calculator.
type ProjectDomain string

const (
	DomainWindows  ProjectDomain = "windows"
	DomainFloors   ProjectDomain = "floors"
	DomainPainting ProjectDomain = "painting"
)

// LeadStatus represents the sales lifecycle of a lead.
//
// Only Status and AppointmentSlot are mutated after creation (booking action or
// dashboard update); everything else is an immutable snapshot of the submission.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQuoted    LeadStatus = "quoted"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

// ValidLeadStatus reports whether s is one of the known lifecycle statuses.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQuoted, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// Lead is the stored record of a customer's quote request plus contact info and
// the computed price.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// TenantID is empty for unauthenticated/demo submissions.
type Lead struct {
	ID       string        `json:"id"`
	TenantID string        `json:"tenant_id,omitempty"`
	Domain   ProjectDomain `json:"domain"`

	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone,omitempty"`

	Request   QuoteRequest   `json:"request"`
	Breakdown PriceBreakdown `json:"breakdown"`

	PhotoURLs   []string `json:"photo_urls,omitempty"`
	PreviewURLs []string `json:"preview_urls,omitempty"`
	PreviewNote string   `json:"preview_note,omitempty"`

	Status          LeadStatus `json:"status"`
	AppointmentSlot *time.Time `json:"appointment_slot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
