package constants

import "testing"

func TestIsValid(t *testing.T) {
	for _, label := range AsStringSlice() {
		if !IsValid(label) {
			t.Errorf("IsValid(%q) = false", label)
		}
	}
	for _, label := range []string{"", "groceries", "Gadgets"} {
		if IsValid(label) {
			t.Errorf("IsValid(%q) = true", label)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input  string
		want   Category
		wantOK bool
	}{
		{"Groceries", Groceries, true},
		{"  groceries ", Groceries, true},
		{"supermarket", Groceries, true},
		{"restaurant", Dining, true},
		{"pharmacy", Health, true},
		{"apparel", Clothing, true},
		{"personal care", PersonalCare, true},
		{"", Other, false},
		{"spaceships", Other, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Canonicalize(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Canonicalize(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEcoGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{90, "A"},
		{80, "A"},
		{79, "B"},
		{60, "B"},
		{59, "C"},
		{40, "C"},
		{39, "D"},
		{10, "D"},
	}

	for _, tt := range tests {
		if got := EcoGrade(tt.score); got != tt.want {
			t.Errorf("EcoGrade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
