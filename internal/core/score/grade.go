package score

// GradeFor maps an overall score to its letter grade and description.
func GradeFor(overall int) (string, string) {
	switch {
	case overall >= 90:
		return "A+", "Exceptional name with premium potential"
	case overall >= 80:
		return "A", "Excellent name, highly brandable"
	case overall >= 70:
		return "B+", "Very good name with strong appeal"
	case overall >= 60:
		return "B", "Good name, worth considering"
	case overall >= 50:
		return "C+", "Decent name with some trade-offs"
	case overall >= 40:
		return "C", "Usable name but unremarkable"
	default:
		return "D", "Weak name, hard to recommend"
	}
}
