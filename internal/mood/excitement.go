package mood

// #region imports
import (
	"math"
	"regexp"
	"strings"
)

// #endregion

// #region patterns

var (
	positiveWordRE = regexp.MustCompile(`(?i)\b(cool|nice|awesome|excellent|perfect|sweet|sick|amazing|wow|bang|great|beautiful|brilliant|impressive|impressed|clever|incredible|smart|funny)\b`)
	thanksBangRE   = regexp.MustCompile(`(?i)thanks?!`)
	enthusiasmRE   = regexp.MustCompile(`(?i)\b(love\s+it|i\s+love|let'?s\s+go\s*!|hell\s+yeah|let'?s\s+do\s+(?:it|this)\s*!)`)
	soFunRE        = regexp.MustCompile(`(?i)\b(?:so|too|way\s+too)\s+fun\b`)
	holyShitRE     = regexp.MustCompile(`(?i)\bholy\s+(?:shit|fuck|crap)\b`)
	itWorksBangRE  = regexp.MustCompile(`(?i)\bwork(?:s|ed)\s*!`)
	praiseRE       = regexp.MustCompile(`(?i)\b(proud\s+of|well\s+done|absolute\s+cinema)\b`)
	positiveBangRE = regexp.MustCompile(`(?i)\b(?:cool|nice|awesome|excellent|perfect|sick|amazing|wow|bang|great|beautiful|brilliant)\s*!`)
	lmaoLolRE      = regexp.MustCompile(`(?i)\b(lmao|lol)\b`)
	oohRE          = regexp.MustCompile(`(?i)\bo{2,}h+\b`)
	genuinelyRE    = regexp.MustCompile(`(?i)\b(?:genuinely|actually)\s+(?:really\s+)?(?:interesting|clever|smart|good|brilliant)\b`)
	// Allowlist approach for slang "fire": predicative ("that's fire", "so
	// fire") or nothing. Blocklisting literal nouns (fire alarm, fire
	// symbol, ...) is a losing game since the literal noun set is unbounded.
	slangFireRE    = regexp.MustCompile(`(?i)\b(?:that'?s|this\s+is|it'?s|so|straight|pure)\s+fire\b`)
	cleanAfRE      = regexp.MustCompile(`(?i)\bclean\s+af\b`)
	insanelyGoodRE = regexp.MustCompile(`(?i)\binsanely\s+good\b`)
	// The positive word itself must be elongated; generic elongation
	// ("waaaay") plus a distant positive word is too loose.
	elongatedRE    = regexp.MustCompile(`(?i)\b(da{2,}mn|ni{2,}ce|si{2,}ck|co{3,}l|go{3,}d|swe{3,}t|ye+s{2,})\b`)
	damnRE         = regexp.MustCompile(`(?i)\bdamn\b`)
	damnPositiveRE = regexp.MustCompile(`(?i)\b(nice|good|great|clean|fire|sick|cool|smart|clever)\b`)
	okCoolRE       = regexp.MustCompile(`(?i)ok\s+cool`)
	niceButRE      = regexp.MustCompile(`(?i)\b(?:nice|good|great|cool|awesome)\s*[,.]?\s*but\b`)
)

// #endregion

// #region signal-table

const excitementThreshold = 1.5

var excitementSignals = []signal{
	// Each positive-lexicon hit counts.
	{name: "positive-words", weight: 1.0, hits: func(m *message) int {
		return len(positiveWordRE.FindAllString(m.text, -1))
	}},
	// "thanks!" alone shouldn't trigger excited, hence the low weight.
	{name: "thanks-bang", weight: 1.0, hits: reHits(thanksBangRE)},
	// Total count, not consecutive: two !'s on separate sentences still
	// signal energy.
	{name: "double-exclaim", weight: 1.0, hits: boolHits(func(m *message) bool {
		return strings.Count(m.text, "!") >= 2
	})},
	// "lets do it" requires the bang; without it, it's just agreement.
	{name: "enthusiasm-phrase", weight: 1.5, hits: reHits(enthusiasmRE)},
	{name: "so-fun", weight: 1.5, hits: reHits(soFunRE)},
	{name: "holy-profanity", weight: 2.0, hits: reHits(holyShitRE)},
	// "worked!" is excitement about success; "it works for bools" is
	// neutral factual, so the ! is required.
	{name: "works-bang", weight: 1.5, hits: reHits(itWorksBangRE)},
	{name: "praise", weight: 1.5, hits: reHits(praiseRE)},
	{name: "positive-bang", weight: 0.5, hits: reHits(positiveBangRE)},

	// Gated: these deflate frustration but boost existing excitement.
	{name: "lmao-lol", weight: 0.5, minScore: 0.5, hits: reHits(lmaoLolRE)},
	{name: "ooh-realization", weight: 1.0, minScore: 0.5, hits: reHits(oohRE)},

	{name: "genuinely-positive", weight: 1.5, hits: reHits(genuinelyRE)},
	{name: "slang-fire", weight: 1.5, hits: reHits(slangFireRE)},
	{name: "clean-af", weight: 2.0, hits: reHits(cleanAfRE)},
	{name: "insanely-good", weight: 2.0, hits: reHits(insanelyGoodRE)},
	{name: "elongated-positive", weight: 1.5, hits: reHits(elongatedRE)},
	{name: "damn-positive", weight: 1.5, hits: boolHits(func(m *message) bool {
		return damnRE.MatchString(m.text) && damnPositiveRE.MatchString(m.text)
	})},
	// The same ????-run that the frustration pass suppressed: with positive
	// proximity context it is amazement, and counts toward excitement.
	{name: "amazed-qmarks", weight: 2.0, hits: boolHits(func(m *message) bool {
		return m.longQmarks && m.posNearQmarks
	})},
	// "ok cool" only counts in very short messages, otherwise it's a
	// transition word.
	{name: "ok-cool", weight: 0.5, hits: boolHits(func(m *message) bool {
		return okCoolRE.MatchString(m.text) && m.trimmedLen < 30
	})},
}

// Short positive messages are higher confidence. Truly short, not
// two sentences.
var excitementAmplifiers = []amplifier{
	{name: "short-message", bonus: 0.5, minScore: 1.0, match: func(m *message) bool {
		return m.trimmedLen < 40
	}},
}

// #endregion

// #region score

// excitementScore runs the excitement pass. The trailing deflator handles
// "nice, but ...": praise pivoting into criticism, not standalone praise.
func excitementScore(m *message) float64 {
	score := foldSignals(m, excitementSignals)
	score = applyAmplifiers(m, score, excitementAmplifiers)
	if niceButRE.MatchString(m.text) {
		score = math.Max(score-1.5, 0)
	}
	return score
}

// #endregion
