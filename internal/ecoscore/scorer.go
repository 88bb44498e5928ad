package ecoscore

import (
	"math"
	"strings"

	"github.com/ecotally/ecotally/constants"
)

// Item is the slice of a parsed line item the scorer needs.
type Item struct {
	Name     string
	Price    float64
	Category string
}

// Mode selects the scoring formula. ModeEnhanced is the canonical
// price-weighted formula; ModeLegacy keeps the older unweighted per-item
// average for callers that still depend on it.
type Mode int

const (
	ModeEnhanced Mode = iota
	ModeLegacy
)

const (
	neutralScore = 50
	minScore     = 10
	maxScore     = 90
)

// categoryBase is the starting score per category. Lower base means worse
// environmental impact on this internal scale; the final result is clamped to
// [10,90] where higher means more sustainable.
var categoryBase = map[string]float64{
	string(constants.Groceries):    65,
	string(constants.PersonalCare): 55,
	string(constants.Household):    45,
	string(constants.Electronics):  25,
	string(constants.Clothing):     35,
	string(constants.Dining):       50,
	string(constants.Other):        50,
}

type keywordAdjustment struct {
	keywords []string
	delta    float64
}

var productAdjustments = []keywordAdjustment{
	{keywords: []string{"beef", "steak", "pork", "bacon", "lamb", "sausage"}, delta: -15},
	{keywords: []string{"plastic", "disposable", "styrofoam", "single use", "single-use"}, delta: -10},
	{keywords: []string{"battery", "batteries", "electronic"}, delta: -12},
	{keywords: []string{"plant based", "plant-based", "vegan", "tofu", "tempeh"}, delta: 10},
	{keywords: []string{"bicycle", "bike", "walk"}, delta: 15},
	{keywords: []string{"renewable", "solar", "eco", "compostable", "biodegradable"}, delta: 20},
}

var (
	organicKeywords = []string{"organic", "fair trade", "fairtrade", "non-gmo"}
	localKeywords   = []string{"local", "farm fresh", "farmers market"}

	excessPackagingKeywords  = []string{"individually wrapped", "multipack", "variety pack", "bottled"}
	minimalPackagingKeywords = []string{"bulk", "refill", "loose", "unpackaged"}
)

// Scorer computes the 0-100 eco score for a set of line items. It is pure and
// safe for concurrent use.
type Scorer struct {
	mode              Mode
	sustainableStores []string
}

// NewScorer builds a scorer. sustainableStores are lowercase store-name
// substrings that earn the retailer bonus; pass the patterns from the
// classifier tables.
func NewScorer(mode Mode, sustainableStores []string) *Scorer {
	return &Scorer{mode: mode, sustainableStores: sustainableStores}
}

// Score returns the rounded, clamped eco score for items bought at storeName.
// Zero items yield the neutral score 50.
func (s *Scorer) Score(items []Item, storeName string) int {
	if len(items) == 0 {
		return neutralScore
	}

	storeBonus := 0.0
	if s.isSustainableStore(storeName) {
		storeBonus = 5
	}

	var weightedSum, weightSum float64
	for _, it := range items {
		score := s.itemScore(it) + storeBonus

		weight := 1.0
		if s.mode == ModeEnhanced && it.Price > 1 {
			weight = it.Price
		}
		weightedSum += score * weight
		weightSum += weight
	}

	result := int(math.Round(weightedSum / weightSum))
	if result < minScore {
		result = minScore
	}
	if result > maxScore {
		result = maxScore
	}
	return result
}

func (s *Scorer) itemScore(it Item) float64 {
	name := strings.ToLower(it.Name)

	score, ok := categoryBase[it.Category]
	if !ok {
		score = neutralScore
	}

	for _, adj := range productAdjustments {
		if containsAny(name, adj.keywords) {
			score += adj.delta
		}
	}

	// organic tier beats local tier; never both
	if containsAny(name, organicKeywords) {
		score += 15
	} else if containsAny(name, localKeywords) {
		score += 8
	}

	if containsAny(name, excessPackagingKeywords) {
		score -= 5
	} else if containsAny(name, minimalPackagingKeywords) {
		score += 5
	}

	// pricier staples tend to be the sturdier, longer-lived choice
	if s.mode == ModeEnhanced {
		switch it.Category {
		case string(constants.Groceries):
			if it.Price > 10 {
				score += 3
			}
		case string(constants.PersonalCare):
			if it.Price > 15 {
				score += 2
			}
		}
	}

	return score
}

func (s *Scorer) isSustainableStore(storeName string) bool {
	name := strings.ToLower(storeName)
	for _, sub := range s.sustainableStores {
		if sub != "" && strings.Contains(name, sub) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
