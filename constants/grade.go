package constants

// EcoGrade maps a 0-100 eco score to a letter grade for display.
// Thresholds: A >= 80, B >= 60, C >= 40, else D.
func EcoGrade(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	default:
		return "D"
	}
}
