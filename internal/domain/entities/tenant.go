package entities

import "time"

// Tenant is a business account owning widgets, rate overrides and leads.
//
// Storage model (DynamoDB):
//   - PK: id
//
// QuotaUsed/QuotaLimit implement the monthly lead quota. The used counter is
// only ever moved through conditional updates so that concurrent submissions
// cannot overshoot the limit.
type Tenant struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Active       bool   `json:"active"`

	QuotaLimit int `json:"quota_limit"`
	QuotaUsed  int `json:"quota_used"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
