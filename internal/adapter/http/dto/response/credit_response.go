package response

import (
	"time"

	"offertehub/internal/domain/entities"
)

type CreditPurchaseResponse struct {
	PurchaseID string    `json:"purchase_id"`
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Credits    int       `json:"credits"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromCreditPurchase(p entities.CreditPurchase) CreditPurchaseResponse {
	return CreditPurchaseResponse{
		PurchaseID:   p.ID,
		ID:           p.ID,
		TenantID:     p.TenantID,
		Credits:      p.Credits,
		Amount:       p.Amount,
		Status:       string(p.Status),
		Date:         p.Date,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

func FromCreditPurchases(purchases []entities.CreditPurchase) []CreditPurchaseResponse {
	out := make([]CreditPurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, FromCreditPurchase(p))
	}
	return out
}
