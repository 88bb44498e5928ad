package classify

import (
	"sort"
	"strings"

	"github.com/ecotally/ecotally/constants"
)

// Classifier maps item and store names to category labels using an injected,
// immutable rule set. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	tables Tables
}

func NewClassifier(tables Tables) *Classifier {
	return &Classifier{tables: tables}
}

func (c *Classifier) Tables() Tables {
	return c.tables
}

// ItemCategory returns the category label for an item name. The first keyword
// group containing a match wins; unmatched names fall to Other.
func (c *Classifier) ItemCategory(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return string(constants.Other)
	}
	for _, g := range c.tables.Groups {
		for _, kw := range g.Keywords {
			if strings.Contains(n, kw) {
				return string(g.Category)
			}
		}
	}
	return string(constants.Other)
}

// LookupRetailer returns the known retailer whose pattern occurs in text, if
// any. Matching is case-insensitive; list order is the priority order.
func (c *Classifier) LookupRetailer(text string) (Retailer, bool) {
	t := strings.ToLower(text)
	for _, r := range c.tables.Retailers {
		if strings.Contains(t, r.Pattern) {
			return r, true
		}
	}
	return Retailer{}, false
}

// StoreCategory derives the receipt-level roll-up label: known retailer first,
// then a majority vote over the item categories, then Other. Majority-vote
// ties resolve to the lexicographically smallest label so the result does not
// depend on map iteration order.
func (c *Classifier) StoreCategory(storeName string, itemCategories []string) string {
	if r, ok := c.LookupRetailer(storeName); ok {
		return string(r.Category)
	}

	tally := make(map[string]int, len(itemCategories))
	for _, cat := range itemCategories {
		if constants.IsValid(cat) {
			tally[cat]++
		}
	}
	if len(tally) == 0 {
		return string(constants.Other)
	}

	labels := make([]string, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, label := range labels[1:] {
		if tally[label] > tally[best] {
			best = label
		}
	}
	return best
}
