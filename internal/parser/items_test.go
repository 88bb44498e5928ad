package parser

import (
	"reflect"
	"testing"
)

func TestExtractItemsFromLines(t *testing.T) {
	p := testParser(t)

	tests := []struct {
		name  string
		lines []string
		want  []Item
	}{
		{
			name:  "simple name price",
			lines: []string{"MILK 3.50", "BREAD 2.00"},
			want: []Item{
				{Name: "MILK", Price: 3.50, Quantity: 1},
				{Name: "BREAD", Price: 2.00, Quantity: 1},
			},
		},
		{
			name:  "dollar sign price",
			lines: []string{"EGGS $4.25"},
			want:  []Item{{Name: "EGGS", Price: 4.25, Quantity: 1}},
		},
		{
			name:  "wide spacing",
			lines: []string{"CHEDDAR CHEESE      6.99"},
			want:  []Item{{Name: "CHEDDAR CHEESE", Price: 6.99, Quantity: 1}},
		},
		{
			name:  "quantity at unit price",
			lines: []string{"YOGURT 3 @ 1.25"},
			want:  []Item{{Name: "YOGURT", Price: 3.75, Quantity: 3}},
		},
		{
			name:  "quantity x unit price",
			lines: []string{"SODA 2 x 0.99"},
			want:  []Item{{Name: "SODA", Price: 1.98, Quantity: 2}},
		},
		{
			name:  "total and tax lines skipped",
			lines: []string{"MILK 3.50", "TAX 0.29", "TOTAL 3.79"},
			want:  []Item{{Name: "MILK", Price: 3.50, Quantity: 1}},
		},
		{
			name:  "payment lines skipped",
			lines: []string{"VISA 12.00", "CASH 20.00", "CHANGE 8.00"},
			want:  nil,
		},
		{
			name:  "date and time only lines skipped",
			lines: []string{"08/15/2026", "10:31 AM", "COOKIES 2.99"},
			want:  []Item{{Name: "COOKIES", Price: 2.99, Quantity: 1}},
		},
		{
			name:  "price over 1000 rejected",
			lines: []string{"GIFT CARD 1500.00"},
			want:  nil,
		},
		{
			name:  "single character name rejected",
			lines: []string{"X 1.00"},
			want:  nil,
		},
		{
			name:  "noise stripped from name",
			lines: []string{"*ORGANIC APPLES* 4.99"},
			want:  []Item{{Name: "ORGANIC APPLES", Price: 4.99, Quantity: 1}},
		},
		{
			name:  "two line fallback",
			lines: []string{"GRANOLA BARS", "3.49"},
			want:  []Item{{Name: "GRANOLA BARS", Price: 3.49, Quantity: 1}},
		},
		{
			name:  "two line fallback consumes the price line",
			lines: []string{"GRANOLA BARS", "3.49", "MILK 3.50"},
			want: []Item{
				{Name: "GRANOLA BARS", Price: 3.49, Quantity: 1},
				{Name: "MILK", Price: 3.50, Quantity: 1},
			},
		},
		{
			name:  "two line fallback rejects excluded header words",
			lines: []string{"STORE MANAGER", "3.49"},
			want:  nil,
		},
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.extractItemsFromLines(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractItemsFromLines() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAcceptItem(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		price    float64
		want     bool
	}{
		{"ordinary item", "MILK", 3.50, true},
		{"name too short", "A", 1.00, false},
		{"name too long", string(make([]byte, 51)), 1.00, false},
		{"purely numeric name", "12345", 1.00, false},
		{"keyword name", "TOTAL", 1.00, false},
		{"zero price", "MILK", 0, false},
		{"price above cap", "MILK", 1000.01, false},
		{"price at cap", "MILK", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := acceptItem(tt.itemName, tt.price); got != tt.want {
				t.Errorf("acceptItem(%q, %v) = %v, want %v", tt.itemName, tt.price, got, tt.want)
			}
		})
	}
}
