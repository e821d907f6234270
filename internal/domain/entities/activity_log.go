package entities

import "time"

// ActivityLogEntry is an append-only audit record. Writes are best-effort: a
// failed append must never fail the request that produced it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (entity_id-index): entity_id
type ActivityLogEntry struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	Content    string    `json:"content,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
