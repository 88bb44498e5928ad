package parser

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ecotally/ecotally/internal/ocr"
)

func TestParseWalmartScenario(t *testing.T) {
	p := testParser(t)

	got := p.Parse("WALMART\nMILK 3.50\nBREAD 2.00\nTOTAL: 5.50", nil)

	if got.StoreName != "Walmart" {
		t.Errorf("StoreName = %q, want %q", got.StoreName, "Walmart")
	}
	if got.Total != 5.50 {
		t.Errorf("Total = %v, want 5.50", got.Total)
	}
	if got.Category != "Groceries" {
		t.Errorf("Category = %q, want %q", got.Category, "Groceries")
	}
	if got.Currency != "USD" {
		t.Errorf("Currency = %q, want %q", got.Currency, "USD")
	}

	wantItems := []Item{
		{Name: "MILK", Price: 3.50, Quantity: 1, Category: "Groceries"},
		{Name: "BREAD", Price: 2.00, Quantity: 1, Category: "Groceries"},
	}
	if !reflect.DeepEqual(got.Items, wantItems) {
		t.Errorf("Items = %+v, want %+v", got.Items, wantItems)
	}
}

func TestParseTotalFallsBackToItemSum(t *testing.T) {
	p := testParser(t)

	got := p.Parse("CORNER DELI\nSANDWICH 8.34\nCOOKIE 4.00", nil)

	if got.Total != 12.34 {
		t.Errorf("Total = %v, want item sum 12.34", got.Total)
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := testParser(t)

	got := p.Parse("", nil)

	if got.StoreName != "Unknown Store" {
		t.Errorf("StoreName = %q, want %q", got.StoreName, "Unknown Store")
	}
	if got.Total != 0 {
		t.Errorf("Total = %v, want 0", got.Total)
	}
	if len(got.Items) != 0 {
		t.Errorf("Items = %+v, want none", got.Items)
	}
	if got.Category != "Other" {
		t.Errorf("Category = %q, want %q", got.Category, "Other")
	}
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !got.PurchaseDate.Equal(want) {
		t.Errorf("PurchaseDate = %v, want today %v", got.PurchaseDate, want)
	}
	if got.EcoScore != 50 {
		t.Errorf("EcoScore = %d, want neutral 50", got.EcoScore)
	}
}

func TestParseInvalidDateFallsToToday(t *testing.T) {
	p := testParser(t)

	got := p.Parse("SHOP\n13/45/2024\nMILK 3.50", nil)

	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !got.PurchaseDate.Equal(want) {
		t.Errorf("PurchaseDate = %v, want today %v", got.PurchaseDate, want)
	}
}

func TestParsePrefersSpatialWhenItYieldsItems(t *testing.T) {
	p := testParser(t)

	words := []ocr.WordAnnotation{
		word("MILK", 10, 50),
		word("3.50", 120, 50),
		word("BREAD", 10, 90),
		word("2.00", 120, 90),
	}

	got := p.Parse("unrelated text with no item lines", words)

	if len(got.Items) != 2 {
		t.Fatalf("Items = %+v, want 2 spatial items", got.Items)
	}
	for _, it := range got.Items {
		if it.Confidence == 0 {
			t.Errorf("spatial item %q has zero confidence", it.Name)
		}
	}
}

func TestParseFallsBackToLinesWhenSpatialYieldsNothing(t *testing.T) {
	p := testParser(t)

	// only non-item words: spatial finds nothing, pattern strategy must run
	words := []ocr.WordAnnotation{
		word("THANK", 10, 10),
		word("YOU", 60, 10),
	}

	got := p.Parse("MILK 3.50", words)

	if len(got.Items) != 1 || got.Items[0].Name != "MILK" {
		t.Fatalf("Items = %+v, want pattern-extracted MILK", got.Items)
	}
	if got.Items[0].Confidence != 0 {
		t.Errorf("pattern item confidence = %v, want 0", got.Items[0].Confidence)
	}
}

func TestParseInvariants(t *testing.T) {
	p := testParser(t)

	inputs := []string{
		"",
		"garbage ### @@@",
		"WALMART\nMILK 3.50\nTOTAL 3.79",
		"A\nB\nC\n$5.00",
		strings.Repeat("NOISE LINE 9.99\n", 200),
		"ORGANIC APPLES 4.99\nBATTERY PACK 12.00\nT-SHIRT 15.00",
	}

	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	oldest := today.AddDate(0, 0, -365)

	for _, in := range inputs {
		got := p.Parse(in, nil)

		if got.Total < 0 {
			t.Errorf("input %.20q: Total = %v, want >= 0", in, got.Total)
		}
		if got.PurchaseDate.Before(oldest) || got.PurchaseDate.After(today) {
			t.Errorf("input %.20q: PurchaseDate = %v outside window", in, got.PurchaseDate)
		}
		if got.EcoScore != 50 && (got.EcoScore < 10 || got.EcoScore > 90) {
			t.Errorf("input %.20q: EcoScore = %d outside [10,90]", in, got.EcoScore)
		}
		for _, it := range got.Items {
			if it.Price <= 0 {
				t.Errorf("input %.20q: item %q price %v", in, it.Name, it.Price)
			}
			if it.Quantity < 1 {
				t.Errorf("input %.20q: item %q quantity %d", in, it.Name, it.Quantity)
			}
			if len(it.Name) < 1 || len(it.Name) > 100 {
				t.Errorf("input %.20q: item name length %d", in, len(it.Name))
			}
			if it.Category == "" {
				t.Errorf("input %.20q: item %q has empty category", in, it.Name)
			}
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	p := testParser(t)

	text := "TARGET\nSHAMPOO 6.49\nSODA 2 x 0.99\nTOTAL 8.47"
	first := p.Parse(text, nil)
	second := p.Parse(text, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestParseRawTextBounded(t *testing.T) {
	p := testParser(t)

	long := strings.Repeat("A LINE OF TEXT\n", 2000)
	got := p.Parse(long, nil)

	if len(got.RawText) > maxRawTextLen {
		t.Errorf("RawText length = %d, want <= %d", len(got.RawText), maxRawTextLen)
	}
}
