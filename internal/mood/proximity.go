package mood

import (
	"regexp"
	"strings"
)

// #region patterns

var (
	longQmarkRE = regexp.MustCompile(`\?{4,}`)

	// "fast" deliberately absent: speed can be good or bad.
	positiveContextRE = regexp.MustCompile(`(?i)\b(instant|quick|nice|good|great|amazing|impressive|wow|damn)\b`)
)

// defaultProximityWindow is the word distance checked either side of a
// question-mark run.
const defaultProximityWindow = 8

// #endregion

// #region proximity

// positiveContextNearQmarks reports whether amazement vocabulary occurs
// within window words of a run of 4+ question marks. ????-runs are
// ambiguous between disbelief-as-anger and disbelief-as-awe:
// "wow??????????" is amazement, "sandbagging????? ... really fast" is not.
// Only local lexical context disambiguates.
func positiveContextNearQmarks(text string, window int) bool {
	for _, loc := range longQmarkRE.FindAllStringIndex(text, -1) {
		before := strings.Fields(text[:loc[0]])
		if len(before) > window {
			before = before[len(before)-window:]
		}
		after := strings.Fields(text[loc[1]:])
		if len(after) > window {
			after = after[:window]
		}
		nearby := strings.Join(append(append([]string{}, before...), after...), " ")
		if positiveContextRE.MatchString(nearby) {
			return true
		}
	}
	return false
}

// #endregion
