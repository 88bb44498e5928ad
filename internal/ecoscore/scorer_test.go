package ecoscore

import "testing"

func TestScoreEmptyIsNeutral(t *testing.T) {
	s := NewScorer(ModeEnhanced, nil)
	if got := s.Score(nil, "ANY STORE"); got != 50 {
		t.Errorf("Score(no items) = %d, want 50", got)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		items []Item
		store string
		want  int
	}{
		{
			name:  "plain grocery item uses category base",
			mode:  ModeEnhanced,
			items: []Item{{Name: "MILK", Price: 3.50, Category: "Groceries"}},
			want:  65,
		},
		{
			name:  "organic bonus",
			mode:  ModeEnhanced,
			items: []Item{{Name: "ORGANIC MILK", Price: 3.50, Category: "Groceries"}},
			want:  80,
		},
		{
			name:  "local bonus is smaller and exclusive with organic",
			mode:  ModeEnhanced,
			items: []Item{{Name: "LOCAL ORGANIC MILK", Price: 3.50, Category: "Groceries"}},
			want:  80,
		},
		{
			name:  "red meat penalty",
			mode:  ModeEnhanced,
			items: []Item{{Name: "GROUND BEEF", Price: 6.00, Category: "Groceries"}},
			want:  50,
		},
		{
			name:  "stacked bonuses clamp at 90",
			mode:  ModeEnhanced,
			items: []Item{{Name: "SOLAR COMPOSTABLE ORGANIC BULK", Price: 9.00, Category: "Groceries"}},
			want:  90,
		},
		{
			name:  "stacked penalties clamp at 10",
			mode:  ModeEnhanced,
			items: []Item{{Name: "BEEF BATTERY PLASTIC", Price: 9.00, Category: "Electronics"}},
			want:  10,
		},
		{
			name:  "category without a base falls to neutral",
			mode:  ModeEnhanced,
			items: []Item{{Name: "THING", Price: 5.00, Category: "Health"}},
			want:  50,
		},
		{
			name: "enhanced mode weights by price",
			mode: ModeEnhanced,
			items: []Item{
				{Name: "ORGANIC VEGGIES", Price: 20.00, Category: "Groceries"},
				{Name: "BEEF", Price: 2.00, Category: "Groceries"},
			},
			// (83*20 + 50*2) / 22
			want: 80,
		},
		{
			name: "legacy mode averages items equally",
			mode: ModeLegacy,
			items: []Item{
				{Name: "ORGANIC VEGGIES", Price: 20.00, Category: "Groceries"},
				{Name: "BEEF", Price: 2.00, Category: "Groceries"},
			},
			// (80 + 50) / 2, no price correlation bonus in legacy mode
			want: 65,
		},
		{
			name:  "price below one never weights below one",
			mode:  ModeEnhanced,
			items: []Item{{Name: "GUM", Price: 0.25, Category: "Other"}},
			want:  50,
		},
		{
			name:  "minimal packaging bonus",
			mode:  ModeEnhanced,
			items: []Item{{Name: "BULK RICE", Price: 4.00, Category: "Groceries"}},
			want:  70,
		},
		{
			name:  "excess packaging penalty",
			mode:  ModeEnhanced,
			items: []Item{{Name: "BOTTLED WATER MULTIPACK", Price: 4.00, Category: "Groceries"}},
			want:  60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScorer(tt.mode, nil)
			if got := s.Score(tt.items, tt.store); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreSustainableStoreBonus(t *testing.T) {
	items := []Item{{Name: "MILK", Price: 3.50, Category: "Groceries"}}

	plain := NewScorer(ModeEnhanced, nil).Score(items, "Whole Foods Market")
	if plain != 65 {
		t.Fatalf("score without store list = %d, want 65", plain)
	}

	s := NewScorer(ModeEnhanced, []string{"whole foods", "trader joe"})
	if got := s.Score(items, "Whole Foods Market"); got != 70 {
		t.Errorf("score at sustainable store = %d, want 70", got)
	}
	if got := s.Score(items, "GAS N GO"); got != 65 {
		t.Errorf("score at ordinary store = %d, want 65", got)
	}
}

func TestScoreEnhancedPriceCorrelation(t *testing.T) {
	s := NewScorer(ModeEnhanced, nil)

	cheap := s.Score([]Item{{Name: "RICE", Price: 9.00, Category: "Groceries"}}, "")
	sturdy := s.Score([]Item{{Name: "RICE", Price: 12.00, Category: "Groceries"}}, "")
	if sturdy != cheap+3 {
		t.Errorf("grocery over $10 = %d, want %d", sturdy, cheap+3)
	}

	cheapPC := s.Score([]Item{{Name: "LOTION", Price: 9.00, Category: "Personal Care"}}, "")
	sturdyPC := s.Score([]Item{{Name: "LOTION", Price: 16.00, Category: "Personal Care"}}, "")
	if sturdyPC != cheapPC+2 {
		t.Errorf("personal care over $15 = %d, want %d", sturdyPC, cheapPC+2)
	}
}
