package utils

import (
	"fmt"
	"time"

	"github.com/ecotally/ecotally/constants"
	"github.com/ecotally/ecotally/gen/ent"
	ecotallypb "github.com/ecotally/ecotally/gen/proto/ecotally/v1"
	"github.com/ecotally/ecotally/internal/entity"
	"github.com/ecotally/ecotally/internal/ocr"
)

func ToReceipt(e *ent.Receipt, items []*ent.ReceiptItem) *entity.Receipt {
	out := &entity.Receipt{
		ID:           e.ID,
		StoreName:    e.StoreName,
		PurchaseDate: e.PurchaseDate,
		Total:        e.Total,
		CurrencyCode: e.CurrencyCode,
		Category:     e.Category,
		EcoScore:     e.EcoScore,
		EcoGrade:     constants.EcoGrade(e.EcoScore),
		RawText:      e.RawText,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	out.Items = make([]*entity.ReceiptItem, len(items))
	for i, it := range items {
		out.Items[i] = ToReceiptItem(it)
	}
	return out
}

func ToReceiptItem(e *ent.ReceiptItem) *entity.ReceiptItem {
	return &entity.ReceiptItem{
		ID:         e.ID,
		ReceiptID:  e.ReceiptID,
		Name:       e.Name,
		Price:      e.Price,
		Quantity:   e.Quantity,
		Category:   e.Category,
		Confidence: e.Confidence,
	}
}

func ToPBReceipt(r *entity.Receipt) *ecotallypb.Receipt {
	items := make([]*ecotallypb.ReceiptItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = &ecotallypb.ReceiptItem{
			Id:         it.ID.String(),
			Name:       it.Name,
			Price:      fmt.Sprintf("%.2f", it.Price),
			Quantity:   int32(it.Quantity),
			Category:   it.Category,
			Confidence: it.Confidence,
		}
	}
	return &ecotallypb.Receipt{
		Id:           r.ID.String(),
		StoreName:    r.StoreName,
		PurchaseDate: r.PurchaseDate.Format("2006-01-02"),
		Total:        fmt.Sprintf("%.2f", r.Total),
		CurrencyCode: r.CurrencyCode,
		Category:     r.Category,
		EcoScore:     int32(r.EcoScore),
		EcoGrade:     r.EcoGrade,
		Items:        items,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromPBWords converts wire word annotations into the parser's OCR form.
// Words with no vertices keep a zero box and are harmless to spatial
// clustering.
func FromPBWords(words []*ecotallypb.WordAnnotation) []ocr.WordAnnotation {
	out := make([]ocr.WordAnnotation, 0, len(words))
	for _, w := range words {
		if w == nil {
			continue
		}
		var box ocr.BoundingBox
		if bb := w.GetBoundingBox(); bb != nil {
			for i, v := range bb.GetVertices() {
				if i >= len(box.Vertices) {
					break
				}
				box.Vertices[i] = ocr.Vertex{X: int(v.GetX()), Y: int(v.GetY())}
			}
		}
		out = append(out, ocr.WordAnnotation{Text: w.GetText(), BoundingBox: box})
	}
	return out
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
