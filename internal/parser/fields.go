package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// --- store name ---

var (
	reStartsWithDigit = regexp.MustCompile(`^\d`)
	reDigitsPunctOnly = regexp.MustCompile(`^[\d\s\W]+$`)
	reHeaderKeywords  = regexp.MustCompile(`(?i)\b(receipt|tax|total)\b`)
	reNameSanitize    = regexp.MustCompile(`[^a-zA-Z0-9\s&'\-]`)
)

// extractStoreName tries known retailer patterns over the whole text first,
// then falls back to scanning the first five non-empty lines for something
// that looks like a store header.
func (p *Parser) extractStoreName(rawText string, lines []string) string {
	if r, ok := p.classifier.LookupRetailer(rawText); ok {
		return r.DisplayName
	}

	seen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if reStartsWithDigit.MatchString(line) {
			continue
		}
		if len(line) <= 2 || len(line) >= 50 {
			continue
		}
		if reHeaderKeywords.MatchString(line) {
			continue
		}
		if reDigitsPunctOnly.MatchString(line) {
			continue
		}
		if strings.HasPrefix(line, "$") || strings.HasPrefix(line, "€") || strings.HasPrefix(line, "£") {
			continue
		}
		name := strings.TrimSpace(reNameSanitize.ReplaceAllString(line, ""))
		if name == "" {
			continue
		}
		if len(name) > 100 {
			name = name[:100]
		}
		return name
	}
	return defaultStoreName
}

// --- total amount ---

// labeled-amount patterns, most authoritative first
var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total\s*:?\s*\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)amount\s*due\s*:?\s*\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)balance\s*due\s*:?\s*\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)subtotal\s*:?\s*\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)you\s*pay\s*:?\s*\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)charge[d]?\s*:?\s*\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`(?i)paid\s*:?\s*\$?\s*([\d,]+\.\d{2})`),
	regexp.MustCompile(`\$\s*([\d,]+\.\d{2})`),
}

type totalCandidate struct {
	amount  float64
	lineIdx int
}

// extractTotal scans lines bottom-up. A line containing "total" (but not
// "sub") wins immediately with its first matching amount. Otherwise every
// plausible amount is recorded and the best candidate is picked: bottom third
// of the receipt preferred, larger amount preferred.
func extractTotal(lines []string) (float64, bool) {
	var candidates []totalCandidate

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		isTotalLine := strings.Contains(lower, "total") && !strings.Contains(lower, "sub")

		for _, re := range totalPatterns {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			amount, err := parseAmount(m[1])
			if err != nil || amount <= 0 || amount >= 10000 {
				continue
			}
			if isTotalLine {
				return amount, true
			}
			candidates = append(candidates, totalCandidate{amount: amount, lineIdx: i})
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	bottomThird := len(lines) * 2 / 3
	sort.SliceStable(candidates, func(a, b int) bool {
		inA := candidates[a].lineIdx >= bottomThird
		inB := candidates[b].lineIdx >= bottomThird
		if inA != inB {
			return inA
		}
		return candidates[a].amount > candidates[b].amount
	})
	return candidates[0].amount, true
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}

// --- purchase date ---

var monthNames = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

const monthAlt = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

type datePattern struct {
	re    *regexp.Regexp
	parse func(m []string) (time.Time, bool)
}

var datePatterns = []datePattern{
	{ // 03/15/2024, 3-15-2024, 03.15.2024
		re:    regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})\b`),
		parse: func(m []string) (time.Time, bool) { return mdyDate(m[1], m[2], m[3]) },
	},
	{ // Mar 15, 2024 / March 15 2024
		re: regexp.MustCompile(`(?i)\b(` + monthAlt + `)[a-z]*\.?\s+(\d{1,2}),?\s+(\d{4})\b`),
		parse: func(m []string) (time.Time, bool) {
			month, ok := monthNames[strings.ToLower(m[1])[:3]]
			if !ok {
				return time.Time{}, false
			}
			return namedDate(month, m[2], m[3])
		},
	},
	{ // 15 Mar 2024
		re: regexp.MustCompile(`(?i)\b(\d{1,2})\s+(` + monthAlt + `)[a-z]*\.?\s+(\d{4})\b`),
		parse: func(m []string) (time.Time, bool) {
			month, ok := monthNames[strings.ToLower(m[2])[:3]]
			if !ok {
				return time.Time{}, false
			}
			return namedDate(month, m[1], m[3])
		},
	},
	{ // 03/15/24 (2-digit year)
		re: regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2})\b`),
		parse: func(m []string) (time.Time, bool) {
			yy, err := strconv.Atoi(m[3])
			if err != nil {
				return time.Time{}, false
			}
			// <=30 lands in the 2000s, everything else the 1900s
			year := 1900 + yy
			if yy <= 30 {
				year = 2000 + yy
			}
			return mdyDate(m[1], m[2], strconv.Itoa(year))
		},
	},
}

// extractDate tests every match of each pattern, in pattern order, and accepts
// the first candidate that is a valid calendar date no older than one year and
// not in the future. Without an accepted candidate the receipt dates to today.
func extractDate(text string, today time.Time) time.Time {
	oldest := today.AddDate(-1, 0, 0)

	for _, dp := range datePatterns {
		for _, m := range dp.re.FindAllStringSubmatch(text, -1) {
			d, ok := dp.parse(m)
			if !ok {
				continue
			}
			if d.Before(oldest) || d.After(today) {
				continue
			}
			return d
		}
	}
	return today
}

// mdyDate builds a UTC date from month/day/year strings, rejecting values that
// do not survive a round trip through time.Date (e.g. 13/45/2024).
func mdyDate(ms, ds, ys string) (time.Time, bool) {
	month, err1 := strconv.Atoi(ms)
	day, err2 := strconv.Atoi(ds)
	year, err3 := strconv.Atoi(ys)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

func namedDate(month time.Month, ds, ys string) (time.Time, bool) {
	day, err1 := strconv.Atoi(ds)
	year, err2 := strconv.Atoi(ys)
	if err1 != nil || err2 != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
