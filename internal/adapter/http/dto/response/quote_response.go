package response

import "offertehub/internal/domain/entities"

type LineItemResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type QuoteResponse struct {
	Currency  string             `json:"currency"`
	LineItems []LineItemResponse `json:"line_items"`
	Total     float64            `json:"total"`
}

func FromBreakdown(b entities.PriceBreakdown) QuoteResponse {
	items := make([]LineItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, LineItemResponse{Label: it.Label, Amount: it.Amount})
	}
	return QuoteResponse{
		Currency:  b.Currency,
		LineItems: items,
		Total:     b.Total,
	}
}
