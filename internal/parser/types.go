package parser

import "time"

// Item is a single extracted line item. Confidence is populated only by the
// spatial strategy; pattern-extracted items leave it 0.
type Item struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Receipt is the structured result of one parse call. It is built once and
// returned by value; the caller owns persistence.
type Receipt struct {
	StoreName    string    `json:"store_name"`
	Total        float64   `json:"total"`
	PurchaseDate time.Time `json:"purchase_date"`
	Currency     string    `json:"currency"`
	Items        []Item    `json:"items"`
	Category     string    `json:"category"`
	EcoScore     int       `json:"eco_score"`
	RawText      string    `json:"raw_text"`
}
