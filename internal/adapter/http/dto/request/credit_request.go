package request

import "encoding/json"

// CreditPurchaseRequest is the payload for the credit top-up route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type CreditPurchaseRequest struct {
	Credits   int             `json:"credits" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
