package classify

import "github.com/ecotally/ecotally/constants"

// KeywordGroup maps a set of name keywords to one category label. Groups are
// evaluated in order; the first group containing a matching keyword wins.
type KeywordGroup struct {
	Category constants.Category
	Keywords []string
}

// Retailer is a known store-name pattern. Pattern is matched case-insensitively
// as a substring of the raw text or store name.
type Retailer struct {
	Pattern     string
	DisplayName string
	Category    constants.Category
	Sustainable bool
}

// Tables is the full, immutable rule set the classifier and the store-name
// extractor run on. Construct via DefaultTables or LoadTables; do not mutate
// after handing it to a Classifier.
type Tables struct {
	Groups    []KeywordGroup
	Retailers []Retailer
}

// SustainablePatterns returns the store-name patterns of retailers flagged as
// sustainable, in list order. The eco scorer uses these for its store bonus.
func (t Tables) SustainablePatterns() []string {
	var out []string
	for _, r := range t.Retailers {
		if r.Sustainable {
			out = append(out, r.Pattern)
		}
	}
	return out
}

// DefaultTables returns the built-in rule set.
func DefaultTables() Tables {
	return Tables{
		Groups: []KeywordGroup{
			{Category: constants.Dining, Keywords: []string{
				"coffee", "latte", "espresso", "cappuccino", "tea", "soda", "cola",
				"juice", "smoothie", "beer", "wine", "burger", "pizza", "sandwich",
				"taco", "burrito", "sushi", "fries", "combo", "meal deal",
			}},
			{Category: constants.Groceries, Keywords: []string{
				"milk", "bread", "egg", "cheese", "butter", "yogurt", "apple",
				"banana", "orange", "tomato", "potato", "onion", "lettuce",
				"chicken", "beef", "pork", "fish", "salmon", "rice", "pasta",
				"cereal", "flour", "sugar", "salt", "oil", "beans", "produce",
				"bakery", "deli", "frozen", "snack", "organic",
			}},
			{Category: constants.Household, Keywords: []string{
				"detergent", "bleach", "cleaner", "sponge", "paper towel",
				"toilet paper", "trash bag", "garbage bag", "foil", "plastic wrap",
				"dish soap", "laundry", "napkin", "light bulb", "candle",
			}},
			{Category: constants.PersonalCare, Keywords: []string{
				"shampoo", "conditioner", "soap", "body wash", "toothpaste",
				"toothbrush", "deodorant", "lotion", "sunscreen", "razor",
				"makeup", "mascara", "lipstick", "perfume", "cologne", "floss",
			}},
			{Category: constants.Health, Keywords: []string{
				"aspirin", "ibuprofen", "tylenol", "advil", "vitamin",
				"supplement", "medicine", "bandage", "band-aid", "cough",
				"allergy", "antacid", "prescription", "rx",
			}},
			{Category: constants.Electronics, Keywords: []string{
				"cable", "charger", "battery", "adapter", "headphone", "earbud",
				"usb", "hdmi", "phone case", "screen protector", "mouse",
				"keyboard", "speaker", "bulb led", "memory card",
			}},
			{Category: constants.Clothing, Keywords: []string{
				"shirt", "t-shirt", "pants", "jeans", "sock", "shoe", "sneaker",
				"jacket", "hoodie", "sweater", "dress", "skirt", "hat", "glove",
				"scarf", "belt", "underwear",
			}},
		},
		Retailers: []Retailer{
			{Pattern: "whole foods", DisplayName: "Whole Foods", Category: constants.Groceries, Sustainable: true},
			{Pattern: "trader joe", DisplayName: "Trader Joe's", Category: constants.Groceries, Sustainable: true},
			{Pattern: "sprouts", DisplayName: "Sprouts", Category: constants.Groceries, Sustainable: true},
			{Pattern: "walmart", DisplayName: "Walmart", Category: constants.Groceries},
			{Pattern: "wal-mart", DisplayName: "Walmart", Category: constants.Groceries},
			{Pattern: "target", DisplayName: "Target", Category: constants.Groceries},
			{Pattern: "costco", DisplayName: "Costco", Category: constants.Groceries},
			{Pattern: "kroger", DisplayName: "Kroger", Category: constants.Groceries},
			{Pattern: "safeway", DisplayName: "Safeway", Category: constants.Groceries},
			{Pattern: "aldi", DisplayName: "Aldi", Category: constants.Groceries},
			{Pattern: "publix", DisplayName: "Publix", Category: constants.Groceries},
			{Pattern: "wegmans", DisplayName: "Wegmans", Category: constants.Groceries},
			{Pattern: "7-eleven", DisplayName: "7-Eleven", Category: constants.Groceries},
			{Pattern: "walgreens", DisplayName: "Walgreens", Category: constants.Health},
			{Pattern: "cvs", DisplayName: "CVS", Category: constants.Health},
			{Pattern: "rite aid", DisplayName: "Rite Aid", Category: constants.Health},
			{Pattern: "home depot", DisplayName: "Home Depot", Category: constants.Household},
			{Pattern: "lowe's", DisplayName: "Lowe's", Category: constants.Household},
			{Pattern: "lowes", DisplayName: "Lowe's", Category: constants.Household},
			{Pattern: "ikea", DisplayName: "IKEA", Category: constants.Household},
			{Pattern: "best buy", DisplayName: "Best Buy", Category: constants.Electronics},
			{Pattern: "apple store", DisplayName: "Apple Store", Category: constants.Electronics},
			{Pattern: "gamestop", DisplayName: "GameStop", Category: constants.Electronics},
			{Pattern: "old navy", DisplayName: "Old Navy", Category: constants.Clothing},
			{Pattern: "h&m", DisplayName: "H&M", Category: constants.Clothing},
			{Pattern: "gap", DisplayName: "Gap", Category: constants.Clothing},
			{Pattern: "nordstrom", DisplayName: "Nordstrom", Category: constants.Clothing},
			{Pattern: "macy", DisplayName: "Macy's", Category: constants.Clothing},
			{Pattern: "mcdonald", DisplayName: "McDonald's", Category: constants.Dining},
			{Pattern: "burger king", DisplayName: "Burger King", Category: constants.Dining},
			{Pattern: "starbucks", DisplayName: "Starbucks", Category: constants.Dining},
			{Pattern: "chipotle", DisplayName: "Chipotle", Category: constants.Dining},
			{Pattern: "subway", DisplayName: "Subway", Category: constants.Dining},
			{Pattern: "dunkin", DisplayName: "Dunkin'", Category: constants.Dining},
			{Pattern: "taco bell", DisplayName: "Taco Bell", Category: constants.Dining},
			{Pattern: "wendy", DisplayName: "Wendy's", Category: constants.Dining},
		},
	}
}
