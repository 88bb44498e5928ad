package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// lines we never treat as items
var skipLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(total|subtotal|sub-total|tax|balance|change|payment|tender|cash|credit|debit|visa|mastercard|amex|discover)\b`),
	regexp.MustCompile(`^\s*$`),
	regexp.MustCompile(`^\s*\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\s*$`),
	regexp.MustCompile(`^\s*\d{1,2}:\d{2}\s*(?:AM|PM|am|pm)?\s*$`),
	regexp.MustCompile(`^[\W_]+$`),
}

// item line shapes, in priority order; the first match wins
var itemPatterns = []*regexp.Regexp{
	// NAME    3.50 (two or more spaces before the price)
	regexp.MustCompile(`^(.+?)\s{2,}\$?(\d{1,4}\.\d{2})$`),
	// NAME $3.50
	regexp.MustCompile(`^(.+?)\s+\$(\d{1,4}\.\d{2})$`),
	// NAME<tab>3.50
	regexp.MustCompile(`^(.+?)\t+\$?(\d{1,4}\.\d{2})$`),
	// NAME 2 @ 1.75
	regexp.MustCompile(`^(.+?)\s+(\d{1,3})\s*@\s*\$?(\d{1,4}\.\d{2})`),
	// NAME 2 x 1.75
	regexp.MustCompile(`(?i)^(.+?)\s+(\d{1,3})\s*x\s*\$?(\d{1,4}\.\d{2})`),
	// catch-all: NAME 3.50
	regexp.MustCompile(`^(.+?)\s+\$?(\d{1,4}\.\d{2})$`),
}

var (
	reItemNameSanitize = regexp.MustCompile(`[^\w\s\-'&.]`)
	reAllDigits        = regexp.MustCompile(`^[\d\s.]+$`)
	reItemExclusion    = regexp.MustCompile(`(?i)\b(total|subtotal|tax|cash|credit|debit|visa|mastercard|change|balance|tender)\b`)

	// two-line fallback shapes
	reNameOnlyLine     = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\s\-'&.,]{2,49}$`)
	reBarePriceLine    = regexp.MustCompile(`^\s*\$?(\d{1,4}\.\d{2})\s*$`)
	reExtendedExcluded = regexp.MustCompile(`(?i)\b(description|store|phone|manager|served|register|receipt|time|date|thank|welcome|address)\b`)
)

// extractItemsFromLines is the plain-text strategy: try each line against the
// skip list, then the priority-ordered item patterns, then the two-line
// name/price fallback.
func (p *Parser) extractItemsFromLines(lines []string) []Item {
	var items []Item

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if shouldSkipLine(line) {
			continue
		}

		if it, ok := matchItemLine(line); ok {
			items = append(items, it)
			continue
		}

		// two-line fallback: name on this line, bare price on the next
		if i+1 < len(lines) {
			if it, ok := matchTwoLineItem(line, lines[i+1]); ok {
				items = append(items, it)
				i++ // consume the price line too
			}
		}
	}
	return items
}

func shouldSkipLine(line string) bool {
	for _, re := range skipLinePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func matchItemLine(line string) (Item, bool) {
	for _, re := range itemPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := sanitizeItemName(m[1])
		quantity := 1
		var price float64

		if len(m) == 4 {
			// quantity + unit price shape
			q, err := strconv.Atoi(m[2])
			if err != nil || q < 1 {
				continue
			}
			unit, err := strconv.ParseFloat(m[3], 64)
			if err != nil {
				continue
			}
			quantity = q
			price = round2(float64(q) * unit)
		} else {
			v, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				continue
			}
			price = v
		}

		// first matching pattern decides the line, accepted or not
		if !acceptItem(name, price) {
			return Item{}, false
		}
		return Item{Name: name, Price: price, Quantity: quantity}, true
	}
	return Item{}, false
}

func matchTwoLineItem(nameLine, priceLine string) (Item, bool) {
	if !reNameOnlyLine.MatchString(nameLine) {
		return Item{}, false
	}
	if reExtendedExcluded.MatchString(nameLine) {
		return Item{}, false
	}
	m := reBarePriceLine.FindStringSubmatch(priceLine)
	if m == nil {
		return Item{}, false
	}
	price, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Item{}, false
	}
	name := sanitizeItemName(nameLine)
	if !acceptItem(name, price) {
		return Item{}, false
	}
	return Item{Name: name, Price: price, Quantity: 1}, true
}

func sanitizeItemName(name string) string {
	name = reItemNameSanitize.ReplaceAllString(name, "")
	name = strings.Join(strings.Fields(name), " ")
	return strings.TrimSpace(name)
}

func acceptItem(name string, price float64) bool {
	if len(name) < 2 || len(name) > 50 {
		return false
	}
	if reAllDigits.MatchString(name) {
		return false
	}
	if reItemExclusion.MatchString(name) {
		return false
	}
	return price > 0 && price <= 1000
}
