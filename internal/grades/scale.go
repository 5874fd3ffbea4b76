package grades

// gradePoints is the fixed letter-grade scale. Every letter used anywhere
// in the system must resolve here; unknown letters carry no points and are
// excluded from weighted sums rather than counted as zero.
var gradePoints = map[string]float64{
	"A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D": 1.0, "F": 0.0,
}

// letterOrder is the canonical display ordering, best grade first.
var letterOrder = []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"}

// PointsOf resolves a letter grade to its grade-point value. The second
// result is false when the letter is not on the scale; note that F resolves
// to (0, true) which is a valid grade, not an unknown one.
func PointsOf(letter string) (float64, bool) {
	p, ok := gradePoints[letter]
	return p, ok
}

// Letters returns the canonical ordered letter set.
func Letters() []string {
	out := make([]string, len(letterOrder))
	copy(out, letterOrder)
	return out
}

// IsLetter reports whether the given string is a known letter grade.
func IsLetter(letter string) bool {
	_, ok := gradePoints[letter]
	return ok
}
