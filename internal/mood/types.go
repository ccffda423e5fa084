package mood

// #region mood

// Mood is the classifier's output label for a single user message.
type Mood string

const (
	MoodFrustrated Mood = "frustrated"
	MoodExcited    Mood = "excited"
	MoodConfused   Mood = "confused"
	MoodNeutral    Mood = "neutral"
)

// Valid reports whether m is one of the four known labels.
func (m Mood) Valid() bool {
	switch m {
	case MoodFrustrated, MoodExcited, MoodConfused, MoodNeutral:
		return true
	}
	return false
}

// #endregion

// #region signal

// signal is one weighted detection rule over a normalized message.
// minScore gates rules that only count once earlier rules in the same
// pass have already accumulated enough signal (amplifier-style rules
// that sit mid-list in the validated ordering).
type signal struct {
	name     string
	weight   float64
	minScore float64
	hits     func(m *message) int
}

// amplifier adjusts an accumulated score after the base fold. A positive
// bonus requires the base score to have reached minScore first; a negative
// bonus is a deflator and is floored at zero by the pass.
type amplifier struct {
	name     string
	bonus    float64
	minScore float64
	match    func(m *message) bool
}

// #endregion
