// Package parser turns raw OCR output into a structured receipt: store name,
// purchase date, total, line items with categories, and an eco score.
//
// Parsing is pure and synchronous. Malformed or empty input never fails; the
// parser degrades to a receipt with defaults (Unknown Store, today, zero
// total, no items).
package parser

import (
	"math"
	"strings"
	"time"

	"github.com/ecotally/ecotally/internal/classify"
	"github.com/ecotally/ecotally/internal/ecoscore"
	"github.com/ecotally/ecotally/internal/ocr"
)

const (
	defaultStoreName = "Unknown Store"
	defaultCurrency  = "USD"
	maxRawTextLen    = 10000
)

// Parser composes the field extractors, the item extractors, the category
// classifier, and the eco scorer. It holds only immutable configuration and is
// safe to use from multiple goroutines.
type Parser struct {
	classifier *classify.Classifier
	scorer     *ecoscore.Scorer
	now        func() time.Time
}

type Option func(*Parser)

// WithClock overrides the time source used for the date recency window and
// the today-fallback.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

func New(classifier *classify.Classifier, scorer *ecoscore.Scorer, opts ...Option) *Parser {
	p := &Parser{
		classifier: classifier,
		scorer:     scorer,
		now:        time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse extracts a structured receipt from raw OCR text and optional word
// annotations. Spatial extraction is preferred when at least two word
// annotations are present and it yields at least one item; otherwise the
// line-pattern strategy runs on the plain text.
func (p *Parser) Parse(rawText string, words []ocr.WordAnnotation) Receipt {
	lines := splitLines(rawText)
	today := dateOnly(p.now().UTC())

	var items []Item
	if len(words) >= 2 {
		items = p.extractItemsSpatial(words)
	}
	if len(items) == 0 {
		items = p.extractItemsFromLines(lines)
	}
	for i := range items {
		items[i].Category = p.classifier.ItemCategory(items[i].Name)
	}

	total, found := extractTotal(lines)
	if !found {
		total = sumItemPrices(items)
	}

	store := p.extractStoreName(rawText, lines)
	category := p.rollUpCategory(store, items)
	score := p.scorer.Score(toScorerItems(items), store)

	raw := rawText
	if len(raw) > maxRawTextLen {
		raw = raw[:maxRawTextLen]
	}

	return Receipt{
		StoreName:    store,
		Total:        total,
		PurchaseDate: extractDate(rawText, today),
		Currency:     defaultCurrency,
		Items:        items,
		Category:     category,
		EcoScore:     score,
		RawText:      raw,
	}
}

func (p *Parser) rollUpCategory(store string, items []Item) string {
	cats := make([]string, len(items))
	for i, it := range items {
		cats[i] = it.Category
	}
	return p.classifier.StoreCategory(store, cats)
}

func toScorerItems(items []Item) []ecoscore.Item {
	out := make([]ecoscore.Item, len(items))
	for i, it := range items {
		out[i] = ecoscore.Item{Name: it.Name, Price: it.Price, Category: it.Category}
	}
	return out
}

func sumItemPrices(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return round2(sum)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, ln := range raw {
		out = append(out, strings.TrimSpace(ln))
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
