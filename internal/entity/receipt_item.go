package entity

import "github.com/google/uuid"

// ReceiptItem is one purchased line item on a receipt.
type ReceiptItem struct {
	ID         uuid.UUID `json:"id"`
	ReceiptID  uuid.UUID `json:"receipt_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
	Category   string    `json:"category"`
	Confidence float64   `json:"confidence,omitempty"`
}
