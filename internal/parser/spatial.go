package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ecotally/ecotally/internal/ocr"
)

const (
	// words whose average Y falls within this many pixels of a line's Y are
	// grouped onto that line
	lineYTolerance = 10.0

	maxSpatialItems = 20
)

var (
	reBareCurrency = regexp.MustCompile(`^\$?(\d{1,4}\.\d{2})$`)
	reQuantityTok  = regexp.MustCompile(`(?i)\b(\d{1,3})\s*x\b`)
	rePriceShaped  = regexp.MustCompile(`^[\s$.\d]+$`)

	reNonItemLine = regexp.MustCompile(`(?i)\b(thank|welcome|visit|store|tel|phone|www|http|receipt|cashier|total|subtotal|tax|change|balance|due)\b`)

	// names containing these are fixtures of the receipt, not purchases
	spatialNameExclusions = []string{"total", "tax", "cash", "change", "card", "approval"}

	// common grocery words; their presence raises item confidence
	groceryKeywords = []string{
		"milk", "bread", "egg", "cheese", "butter", "apple", "banana",
		"chicken", "beef", "rice", "pasta", "cereal", "juice", "yogurt",
		"coffee", "sugar", "water", "soup", "snack",
	}
)

type spatialLine struct {
	y     float64
	words []ocr.WordAnnotation
}

// extractItemsSpatial reconstructs physical receipt lines from word bounding
// boxes and pulls name/price pairs out of each. Items are returned sorted by
// confidence, best first, capped at maxSpatialItems.
func (p *Parser) extractItemsSpatial(words []ocr.WordAnnotation) []Item {
	lines := clusterIntoLines(words)

	var items []Item
	for _, ln := range lines {
		if it, ok := extractItemFromLine(ln); ok {
			items = append(items, it)
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Confidence > items[b].Confidence
	})
	if len(items) > maxSpatialItems {
		items = items[:maxSpatialItems]
	}
	return items
}

// clusterIntoLines groups words by vertical position (within lineYTolerance of
// a line's Y), orders lines top to bottom, and words left to right.
func clusterIntoLines(words []ocr.WordAnnotation) []spatialLine {
	var lines []spatialLine

	for _, w := range words {
		if strings.TrimSpace(w.Text) == "" {
			continue
		}
		y := w.BoundingBox.MidY()

		placed := false
		for i := range lines {
			if abs(y-lines[i].y) <= lineYTolerance {
				lines[i].words = append(lines[i].words, w)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, spatialLine{y: y, words: []ocr.WordAnnotation{w}})
		}
	}

	sort.SliceStable(lines, func(a, b int) bool { return lines[a].y < lines[b].y })
	for i := range lines {
		ws := lines[i].words
		sort.SliceStable(ws, func(a, b int) bool {
			return ws[a].BoundingBox.MidX() < ws[b].BoundingBox.MidX()
		})
	}
	return lines
}

func extractItemFromLine(ln spatialLine) (Item, bool) {
	texts := make([]string, len(ln.words))
	for i, w := range ln.words {
		texts[i] = w.Text
	}
	joined := strings.Join(texts, " ")

	if reNonItemLine.MatchString(joined) || rePriceShaped.MatchString(joined) {
		return Item{}, false
	}

	// first price-shaped word splits the line into name | price
	priceIdx := -1
	var price float64
	for i, t := range texts {
		m := reBareCurrency.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil || v <= 0 || v >= 1000 {
			continue
		}
		priceIdx = i
		price = v
		break
	}
	if priceIdx <= 0 {
		return Item{}, false
	}

	name := strings.Join(texts[:priceIdx], " ")
	name = sanitizeItemName(reQuantityTok.ReplaceAllString(name, ""))
	if len(name) <= 2 {
		return Item{}, false
	}
	lowName := strings.ToLower(name)
	for _, kw := range spatialNameExclusions {
		if strings.Contains(lowName, kw) {
			return Item{}, false
		}
	}

	quantity := 1
	if m := reQuantityTok.FindStringSubmatch(joined); m != nil {
		if q, err := strconv.Atoi(m[1]); err == nil && q >= 1 {
			quantity = q
		}
	}

	return Item{
		Name:       name,
		Price:      price,
		Quantity:   quantity,
		Confidence: itemConfidence(name, price),
	}, true
}

// itemConfidence starts at 0.5 and adds bonuses for name and price shapes
// typical of real purchases, clamped to 1.0.
func itemConfidence(name string, price float64) float64 {
	conf := 0.5
	if len(name) >= 3 && len(name) <= 50 {
		conf += 0.2
	}
	if name != "" && isLetter(rune(name[0])) {
		conf += 0.1
	}
	if !reAllDigits.MatchString(name) {
		conf += 0.1
	}
	if price >= 0.50 && price <= 100 {
		conf += 0.2
	}
	lowName := strings.ToLower(name)
	for _, kw := range groceryKeywords {
		if strings.Contains(lowName, kw) {
			conf += 0.3
			break
		}
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
