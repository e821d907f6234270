package entities

import (
	"encoding/json"
	"time"
)

// PurchaseStatus represents the payment outcome of a credit purchase.
type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusApproved PurchaseStatus = "approved"
	PurchaseStatusDenied   PurchaseStatus = "denied"
)

// CreditPurchase records a tenant buying additional monthly lead credits.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider response (JSON) for audit.
//   - ProviderPayload is an optional parsed representation for debugging.
type CreditPurchase struct {
	ID       string         `json:"id"`
	TenantID string         `json:"tenant_id"`
	Credits  int            `json:"credits"`
	Amount   float64        `json:"amount"`
	Status   PurchaseStatus `json:"status"`
	Date     time.Time      `json:"date"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
