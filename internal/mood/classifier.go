package mood

// #region imports
import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// #endregion

// #region message

// message carries one normalized input plus the derived features shared
// by the scoring passes. Built once per Classify call, never mutated.
type message struct {
	text          string
	runeCount     int
	trimmedLen    int
	alphaCount    int
	capsRatio     float64
	longQmarks    bool
	posNearQmarks bool
}

func newMessage(raw string) *message {
	text := Normalize(raw)

	var alpha, upper int
	for _, r := range text {
		if unicode.IsLetter(r) {
			alpha++
		}
		if unicode.IsUpper(r) {
			upper++
		}
	}

	m := &message{
		text:       text,
		runeCount:  utf8.RuneCountInString(text),
		trimmedLen: utf8.RuneCountInString(strings.TrimSpace(text)),
		alphaCount: alpha,
		longQmarks: longQmarkRE.MatchString(text),
	}
	denom := alpha
	if denom < 1 {
		denom = 1
	}
	m.capsRatio = float64(upper) / float64(denom)
	if m.longQmarks {
		m.posNearQmarks = positiveContextNearQmarks(text, defaultProximityWindow)
	}
	return m
}

// #endregion

// #region signal-helpers

// reHits adapts a regexp to the signal hit interface (0 or 1).
func reHits(re *regexp.Regexp) func(m *message) int {
	return func(m *message) int {
		if re.MatchString(m.text) {
			return 1
		}
		return 0
	}
}

// boolHits adapts a predicate to the signal hit interface.
func boolHits(f func(m *message) bool) func(m *message) int {
	return func(m *message) int {
		if f(m) {
			return 1
		}
		return 0
	}
}

// foldSignals is the base accumulation phase: an ordered fold over the
// pass's signal table. Gated entries (minScore > 0) read the running
// score and are skipped until earlier rules have put them in play.
func foldSignals(m *message, signals []signal) float64 {
	score := 0.0
	for _, s := range signals {
		if score < s.minScore {
			continue
		}
		if n := s.hits(m); n > 0 {
			score += s.weight * float64(n)
		}
	}
	return score
}

// applyAmplifiers is the adjustment phase that runs strictly after base
// accumulation. Amplifiers never create signal on their own: each one
// requires the base score to have reached its minScore.
func applyAmplifiers(m *message, score float64, amps []amplifier) float64 {
	for _, a := range amps {
		if score >= a.minScore && a.match(m) {
			score += a.bonus
		}
	}
	return score
}

// #endregion

// #region classify

// Classify assigns one of the four mood labels to a raw user message.
// Pure and deterministic: same text, same label, every call.
//
// The pass order is a product decision, not an accident. Bewilderment
// overrides run first because "wtf is X" phrasings are lexically angry
// but semantically requests for clarification. Frustration is checked
// before excitement before confusion, and each pass short-circuits, so
// no later pass can override an earlier positive decision.
func Classify(text string) Mood {
	m := newMessage(text)

	if bewilderment(m) {
		return MoodConfused
	}
	if frustrationScore(m) >= frustrationThreshold {
		return MoodFrustrated
	}
	if excitementScore(m) >= excitementThreshold {
		return MoodExcited
	}
	if confusionScore(m) >= confusionThreshold {
		return MoodConfused
	}
	return MoodNeutral
}

// #endregion

// #region breakdown

// Breakdown reports every pass's score for one message, ignoring the
// short-circuit contract. Debug aid for the classify subcommand and the
// golden harness; the label always comes from Classify.
type Breakdown struct {
	Bewilderment bool
	Frustration  float64
	Excitement   float64
	Confusion    float64
}

// Score computes all pass scores for text without short-circuiting.
func Score(text string) Breakdown {
	m := newMessage(text)
	return Breakdown{
		Bewilderment: bewilderment(m),
		Frustration:  frustrationScore(m),
		Excitement:   excitementScore(m),
		Confusion:    confusionScore(m),
	}
}

// #endregion
