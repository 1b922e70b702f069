package diagnosis

// Grade letters
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeF = "F"
)

// Dimension statuses
const (
	StatusExcellent = "excellent"
	StatusGood      = "good"
	StatusNeedsWork = "needs_work"
	StatusCritical  = "critical"
)

// Grade maps an overall score out of 100 to a letter.
func Grade(score int) string {
	switch {
	case score >= 90:
		return GradeA
	case score >= 80:
		return GradeB
	case score >= 70:
		return GradeC
	case score >= 60:
		return GradeD
	default:
		return GradeF
	}
}

// Status maps a dimension score to a status by its share of maxScore. A
// non-positive maxScore is critical.
func Status(score, maxScore int) string {
	if maxScore <= 0 {
		return StatusCritical
	}
	percentage := float64(score) / float64(maxScore) * 100
	switch {
	case percentage >= 85:
		return StatusExcellent
	case percentage >= 70:
		return StatusGood
	case percentage >= 50:
		return StatusNeedsWork
	default:
		return StatusCritical
	}
}
