package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/ecotally/ecotally/internal/entity"
)

func TestBuildWorkbook(t *testing.T) {
	recs := []*entity.Receipt{
		{
			ID:           uuid.New(),
			StoreName:    "Walmart",
			PurchaseDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			Total:        5.50,
			CurrencyCode: "USD",
			Category:     "Groceries",
			EcoScore:     65,
			EcoGrade:     "B",
			Items: []*entity.ReceiptItem{
				{Name: "MILK", Price: 3.50, Quantity: 1, Category: "Groceries"},
				{Name: "SODA", Price: 1.98, Quantity: 2, Category: "Dining"},
			},
		},
		{
			ID:           uuid.New(),
			StoreName:    "Unknown Store",
			PurchaseDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			Total:        12.34,
			CurrencyCode: "USD",
			Category:     "Other",
			EcoScore:     50,
			EcoGrade:     "C",
		},
	}

	buf, err := BuildWorkbook(recs)
	if err != nil {
		t.Fatalf("BuildWorkbook() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Receipts")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}

	if rows[0][0] != "Purchase Date" || rows[0][6] != "Eco Score" || rows[0][7] != "Eco Grade" {
		t.Errorf("header row = %v", rows[0])
	}

	first := rows[1]
	if first[0] != "2026-08-15" || first[1] != "Walmart" || first[2] != "Groceries" {
		t.Errorf("first row = %v", first)
	}
	if first[3] != "MILK, SODA x2" {
		t.Errorf("items cell = %q, want %q", first[3], "MILK, SODA x2")
	}
	if first[4] != "5.50" || first[6] != "65" || first[7] != "B" {
		t.Errorf("first row amounts = %v", first)
	}

	second := rows[2]
	if second[1] != "Unknown Store" {
		t.Errorf("second row = %v", second)
	}
}

func TestBuildWorkbookEmpty(t *testing.T) {
	buf, err := BuildWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildWorkbook() error: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Receipts")
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}

func TestItemSummaryTruncates(t *testing.T) {
	var items []*entity.ReceiptItem
	for i := 0; i < 30; i++ {
		items = append(items, &entity.ReceiptItem{Name: "SOME LONG ITEM NAME", Price: 1, Quantity: 1})
	}
	got := itemSummary(items)
	if len(got) > 142 { // 140 bytes plus the multi-byte ellipsis
		t.Errorf("itemSummary length = %d, want truncated", len(got))
	}
}
