package classify

import "testing"

func TestItemCategory(t *testing.T) {
	c := NewClassifier(DefaultTables())

	tests := []struct {
		name     string
		itemName string
		want     string
	}{
		{"grocery keyword", "MILK 2%", "Groceries"},
		{"personal care keyword", "SHAMPOO 12OZ", "Personal Care"},
		{"health keyword", "IBUPROFEN 200MG", "Health"},
		{"electronics keyword", "USB CHARGER", "Electronics"},
		{"clothing keyword", "WOOL SWEATER", "Clothing"},
		{"household keyword", "DISH SOAP", "Household"},
		{"dining group wins over groceries", "ICE CREAM SANDWICH", "Dining"},
		{"case insensitive", "bReAd LoAf", "Groceries"},
		{"no keyword falls to other", "MYSTERY WIDGET", "Other"},
		{"empty name", "", "Other"},
		{"whitespace only", "   ", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ItemCategory(tt.itemName); got != tt.want {
				t.Errorf("ItemCategory(%q) = %q, want %q", tt.itemName, got, tt.want)
			}
		})
	}
}

func TestLookupRetailer(t *testing.T) {
	c := NewClassifier(DefaultTables())

	tests := []struct {
		name     string
		text     string
		wantName string
		wantOK   bool
	}{
		{"exact store line", "WALMART SUPERCENTER #1234", "Walmart", true},
		{"pattern buried in text", "thanks for shopping at trader joes!", "Trader Joe's", true},
		{"list order sets priority", "walmart across from whole foods", "Whole Foods", true},
		{"no retailer", "CORNER DELI", "", false},
		{"empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := c.LookupRetailer(tt.text)
			if ok != tt.wantOK || r.DisplayName != tt.wantName {
				t.Errorf("LookupRetailer(%q) = (%q, %v), want (%q, %v)",
					tt.text, r.DisplayName, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestStoreCategory(t *testing.T) {
	c := NewClassifier(DefaultTables())

	tests := []struct {
		name       string
		storeName  string
		categories []string
		want       string
	}{
		{
			name:       "known retailer overrides item vote",
			storeName:  "CVS PHARMACY",
			categories: []string{"Groceries", "Groceries"},
			want:       "Health",
		},
		{
			name:       "majority vote",
			storeName:  "FRESH MART",
			categories: []string{"Groceries", "Groceries", "Clothing"},
			want:       "Groceries",
		},
		{
			name:       "tie resolves to lexicographically smallest",
			storeName:  "FRESH MART",
			categories: []string{"Groceries", "Clothing"},
			want:       "Clothing",
		},
		{
			name:       "invalid labels are ignored",
			storeName:  "FRESH MART",
			categories: []string{"Bogus", "Groceries"},
			want:       "Groceries",
		},
		{
			name:       "only invalid labels",
			storeName:  "FRESH MART",
			categories: []string{"Bogus"},
			want:       "Other",
		},
		{
			name:       "no items",
			storeName:  "FRESH MART",
			categories: nil,
			want:       "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.StoreCategory(tt.storeName, tt.categories); got != tt.want {
				t.Errorf("StoreCategory(%q, %v) = %q, want %q", tt.storeName, tt.categories, got, tt.want)
			}
		})
	}
}
