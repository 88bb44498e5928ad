package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/ecotally/ecotally/internal/classify"
	"github.com/ecotally/ecotally/internal/ecoscore"
)

func testParser(t *testing.T) *Parser {
	t.Helper()
	c := classify.NewClassifier(classify.DefaultTables())
	s := ecoscore.NewScorer(ecoscore.ModeEnhanced, nil)
	return New(c, s, WithClock(func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}))
}

func TestExtractStoreName(t *testing.T) {
	p := testParser(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "known retailer anywhere in text",
			text: "store #1234\nWALMART SUPERCENTER\n123 MAIN ST",
			want: "Walmart",
		},
		{
			name: "retailer pattern beats header heuristic",
			text: "FRESH MART\nvisit trader joes online",
			want: "Trader Joe's",
		},
		{
			name: "header heuristic picks first clean line",
			text: "FRESH MART\n123 MAIN ST\nTOTAL 5.00",
			want: "FRESH MART",
		},
		{
			name: "lines starting with digits are rejected",
			text: "123 MAIN ST\nCORNER DELI\n",
			want: "CORNER DELI",
		},
		{
			name: "receipt and tax words disqualify a line",
			text: "RECEIPT OF PURCHASE\nTAX INVOICE\nGREEN GROCER",
			want: "GREEN GROCER",
		},
		{
			name: "short lines are rejected",
			text: "AB\nBODEGA CENTRAL",
			want: "BODEGA CENTRAL",
		},
		{
			name: "punctuation stripped keeping ampersand and apostrophe",
			text: "JOE'S #1 B&B CAFE*\n",
			want: "JOE'S 1 B&B CAFE",
		},
		{
			name: "no usable line",
			text: "123\n$$$\n---",
			want: "Unknown Store",
		},
		{
			name: "empty text",
			text: "",
			want: "Unknown Store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.extractStoreName(tt.text, splitLines(tt.text))
			if got != tt.want {
				t.Errorf("extractStoreName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTotal(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		want      float64
		wantFound bool
	}{
		{
			name:      "labeled total wins immediately",
			lines:     []string{"MILK 3.50", "SUBTOTAL 3.50", "TOTAL: 5.50"},
			want:      5.50,
			wantFound: true,
		},
		{
			name:      "earliest total from the bottom wins",
			lines:     []string{"TOTAL 9.99", "stuff", "TOTAL 5.50"},
			want:      5.50,
			wantFound: true,
		},
		{
			name:      "subtotal is not an early exit",
			lines:     []string{"SUBTOTAL 4.00", "AMOUNT DUE 4.32"},
			want:      4.32,
			wantFound: true,
		},
		{
			name: "bottom third preferred over larger amount above",
			lines: []string{
				"$99.99", "", "", "", "", "", "", "", "",
				"$12.50",
			},
			want:      12.50,
			wantFound: true,
		},
		{
			name:      "larger amount wins within the bottom third",
			lines:     []string{"", "", "$3.00", "$8.00"},
			want:      8.00,
			wantFound: true,
		},
		{
			name:      "comma thousands are stripped",
			lines:     []string{"TOTAL 1,234.56"},
			want:      1234.56,
			wantFound: true,
		},
		{
			name:      "amounts of 10000 and above are ignored",
			lines:     []string{"TOTAL 10000.00"},
			want:      0,
			wantFound: false,
		},
		{
			name:      "no candidates",
			lines:     []string{"MILK", "BREAD"},
			want:      0,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractTotal(tt.lines)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("extractTotal() = (%v, %v), want (%v, %v)", got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestExtractDate(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "slash numeric",
			text: "WALMART 08/15/2026 10:31",
			want: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "dash numeric",
			text: "date: 12-01-2025",
			want: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month name",
			text: "Aug 15, 2026",
			want: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day month year",
			text: "15 Aug 2026",
			want: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "two digit year expands to 2000s",
			text: "08/15/26",
			want: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "invalid calendar date rejected",
			text: "13/45/2024",
			want: today,
		},
		{
			name: "future date rejected",
			text: "01/01/2027",
			want: today,
		},
		{
			name: "older than a year rejected",
			text: "01/01/2020",
			want: today,
		},
		{
			name: "first valid candidate wins over later ones",
			text: "printed 99/99/9999 then 08/01/2026 and 07/01/2026",
			want: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "no date at all",
			text: "MILK 3.50",
			want: today,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDate(tt.text, today)
			if !got.Equal(tt.want) {
				t.Errorf("extractDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDateRejectedCandidateFallsThrough(t *testing.T) {
	today := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	// the slash pattern's only match is invalid; the month-name pattern
	// should still get its turn
	text := strings.Join([]string{"13/45/2024", "Aug 2, 2026"}, "\n")
	want := time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	if got := extractDate(text, today); !got.Equal(want) {
		t.Errorf("extractDate() = %v, want %v", got, want)
	}
}
