package classify

import (
	"os"
	"path/filepath"
	"testing"
)

const validTablesJSON = `{
	"groups": [
		{"category": "Groceries", "keywords": ["MILK", "Bread"]},
		{"category": "Dining", "keywords": ["espresso"]}
	],
	"retailers": [
		{"pattern": "GreenMart", "display_name": "GreenMart", "category": "Groceries", "sustainable": true}
	]
}`

func TestParseTables(t *testing.T) {
	got, err := ParseTables([]byte(validTablesJSON))
	if err != nil {
		t.Fatalf("ParseTables() error: %v", err)
	}

	if len(got.Groups) != 2 {
		t.Fatalf("Groups = %d, want 2", len(got.Groups))
	}
	if got.Groups[0].Category != "Groceries" {
		t.Errorf("group 0 category = %q", got.Groups[0].Category)
	}
	// keywords and patterns are normalized to lowercase on load
	if got.Groups[0].Keywords[0] != "milk" || got.Groups[0].Keywords[1] != "bread" {
		t.Errorf("group 0 keywords = %v, want lowercased", got.Groups[0].Keywords)
	}

	if len(got.Retailers) != 1 {
		t.Fatalf("Retailers = %d, want 1", len(got.Retailers))
	}
	r := got.Retailers[0]
	if r.Pattern != "greenmart" || r.DisplayName != "GreenMart" || !r.Sustainable {
		t.Errorf("retailer = %+v", r)
	}
}

func TestParseTablesRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{groups:`},
		{"missing groups", `{"retailers": []}`},
		{"empty groups", `{"groups": []}`},
		{"unknown category label", `{"groups": [{"category": "Gadgets", "keywords": ["x"]}]}`},
		{"empty keyword list", `{"groups": [{"category": "Groceries", "keywords": []}]}`},
		{"unknown top level field", `{"groups": [{"category": "Groceries", "keywords": ["milk"]}], "extra": 1}`},
		{"retailer missing display name", `{"groups": [{"category": "Groceries", "keywords": ["milk"]}], "retailers": [{"pattern": "x", "category": "Groceries"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTables([]byte(tt.data)); err == nil {
				t.Errorf("ParseTables() accepted invalid document")
			}
		})
	}
}

func TestLoadTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tables.json")
	if err := os.WriteFile(path, []byte(validTablesJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables() error: %v", err)
	}
	if len(got.Groups) != 2 || len(got.Retailers) != 1 {
		t.Errorf("LoadTables() = %+v", got)
	}

	if _, err := LoadTables(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("LoadTables() on missing file did not error")
	}
}
