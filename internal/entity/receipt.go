package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents a parsed receipt for data transfer between layers.
type Receipt struct {
	ID           uuid.UUID      `json:"id"`
	StoreName    string         `json:"store_name"`
	PurchaseDate time.Time      `json:"purchase_date"`
	Total        float64        `json:"total"`
	CurrencyCode string         `json:"currency_code"`
	Category     string         `json:"category"`
	EcoScore     int            `json:"eco_score"`
	EcoGrade     string         `json:"eco_grade"`
	RawText      string         `json:"raw_text,omitempty"`
	Items        []*ReceiptItem `json:"items"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
