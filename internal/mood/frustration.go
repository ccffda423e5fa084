package mood

// #region imports
import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// #endregion

// #region bewilderment

var (
	wtfIsRE        = regexp.MustCompile(`(?i)\bwtf\s+(?:is|was)\s+["']?\w`)
	wtfIsThisRE    = regexp.MustCompile(`(?i)\bwtf\s+(?:is|was)\s+(?:this|that)\b`)
	insultNearbyRE = regexp.MustCompile(`(?i)\b(nonsense|crap|shit|garbage|bs|mess|junk)\b`)
	whatDoesMeanRE = regexp.MustCompile(`(?i)\bwhat the (?:hell|fuck|heck)\s+(?:does|did|is|was)\s+\w+\s+mean\b`)
	wdymRE         = regexp.MustCompile(`(?i)\bwdym\b`)
)

// bewilderment reports phrasings that look frustration-flavored but are
// requests for clarification. Evaluated before any scoring: "wtf is a
// mutex?" is confusion, "wtf is this mess" is frustration at bad code,
// "wdym????" is confused disbelief rather than an angry ????-run.
func bewilderment(m *message) bool {
	if wtfIsRE.MatchString(m.text) {
		switch {
		case wtfIsThisRE.MatchString(m.text) && insultNearbyRE.MatchString(m.text):
			// "wtf is this crap": criticizing output, fall through to scoring
		case !m.longQmarks && m.alphaCount < 100:
			return true
		}
	}
	if whatDoesMeanRE.MatchString(m.text) {
		return true
	}
	if wdymRE.MatchString(m.text) && m.longQmarks {
		return true
	}
	return false
}

// #endregion

// #region tier1-patterns

var (
	positiveCapsRE = regexp.MustCompile(`\b(EXCELLENT|PERFECT|AMAZING|YES|NICE)\b`)
	wtfPhraseRE    = regexp.MustCompile(`(?i)\b(wtf|what the fuck|what the hell|how the hell)\b`)
	rageSoundRE    = regexp.MustCompile(`(?i)\b(ugh+|argh+|aghh+)\b`)
)

// shoutyCaps fires on an extreme capitalization ratio over a minimum
// letter count, unless the capitalized span is a positive exclamation
// (EXCELLENT, PERFECT, YES...).
func shoutyCaps(m *message) bool {
	if m.capsRatio <= 0.4 || m.alphaCount <= 30 {
		return false
	}
	var upperWords []string
	for _, w := range strings.Fields(m.text) {
		if utf8.RuneCountInString(w) > 2 && isUpperWord(w) {
			upperWords = append(upperWords, w)
		}
	}
	return !positiveCapsRE.MatchString(strings.Join(upperWords, " "))
}

// isUpperWord mirrors Python str.isupper: at least one letter, and no
// lowercase letters.
func isUpperWord(w string) bool {
	hasUpper := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// shortQmarkRun fires on any maximal run of 2+ question marks. Long runs
// qualify too: a 4+ run always ends in a 2-3 mark suffix, so this stacks
// with the long-run signal by design of the validated rule set.
func shortQmarkRun(m *message) bool {
	return strings.Contains(m.text, "??")
}

// #endregion

// #region tier2-patterns

var (
	profanityRE     = regexp.MustCompile(`(?i)\bfuck(?:ing)?\b|\bshit(?:ty)?\b`)
	stillBrokenRE   = regexp.MustCompile(`(?i)\bstill\b\s+(?:not|doesn|isn|bugged|broken)`)
	doesntWorkRE    = regexp.MustCompile(`(?i)\bdoesn'?t\s+work`)
	negAdjectiveRE  = regexp.MustCompile(`(?i)\b(hacky|clumsy|cursed|insane|terrible|horrible|disgusting)\b`)
	stopImperativRE = regexp.MustCompile(`(?i)\bstop\b\s+(?:doing|making|adding|hacking|wrong)`)
	broStopRE       = regexp.MustCompile(`(?i)\b(?:bro|dude)\s+stop\b|\bstop\s+(?:bro|dude)\b`)
	wrongBrokenRE   = regexp.MustCompile(`(?i)\b(wrong|broken|broke|bugged|stupid)\b`)
	hackRE          = regexp.MustCompile(`(?i)\b(hack|hacking)\b`)
	bsRE            = regexp.MustCompile(`(?i)\bbs\b`)
	toldYouRE       = regexp.MustCompile(`(?i)\btold\s+you\b`)
)

// #endregion

// #region long-tail-patterns

// Accusatory and exasperation phrasings mined from real-message review.
var (
	sucksRE         = regexp.MustCompile(`(?i)\bsucks?\b`)
	completelyWrgRE = regexp.MustCompile(`(?i)\bcompletely\s+wrong\b`)
	areYouSeriousRE = regexp.MustCompile(`(?i)\bare\s+(?:we|you)\s+(?:serious|for\s+real)\b`)
	evenListenRE    = regexp.MustCompile(`(?i)\bdid\s+you\s+even\s+listen\b`)
	justFalseRE     = regexp.MustCompile(`(?i)\bjust\s+false\b|\bthis\s+is\s+(?:just\s+)?false\b`)
	didNotJustRE    = regexp.MustCompile(`(?i)\bdid\s+not\s+just\b|\bu\s+did\s+not\s+just\b`)
	pissedRE        = regexp.MustCompile(`(?i)\bpissed\b`)
	ridiculousRE    = regexp.MustCompile(`(?i)\bridiculous\b`)
	isSoBadRE       = regexp.MustCompile(`(?i)\b(?:this|that|it)\s+is\s+so\s+bad\b`)
	makingStuffUpRE = regexp.MustCompile(`(?i)\bmaking\s+(?:shit|stuff|things)\s+up\b`)
	isFalseRE       = regexp.MustCompile(`(?i)\b(?:are|is)\s+false\b`)
	dearGodRE       = regexp.MustCompile(`(?i)\bdear\s+god\b|\bmy\s+gosh\b`)
	soBadRE         = regexp.MustCompile(`(?i)\bso\s+bad\b`)
	notWhatIMeantRE = regexp.MustCompile(`(?i)\bnot\s+what\s+i\s+(?:meant|said)\b`)
	didntEvenRE     = regexp.MustCompile(`(?i)\b(?:you|u|ya)\s+didn'?t\s+even\b`)
	didntBotherRE   = regexp.MustCompile(`(?i)\b(?:you|u|ya)\s+didn'?t\s+(?:read|check|listen|look|bother)\b`)
	youDidntRE      = regexp.MustCompile(`(?i)\b(?:you|u)\s+didn'?t\b`)
	broDudeManRE    = regexp.MustCompile(`(?i)\b(bro|dude|man)\b`)
	youKeepRE       = regexp.MustCompile(`(?i)\b(?:you|u)\s+keep\b`)
	howManyTimesRE  = regexp.MustCompile(`(?i)\bhow\s+many\s+times\b`)
	comeOnRE        = regexp.MustCompile(`(?i)\bcome\s+on\b`)
	whatDidWeSayRE  = regexp.MustCompile(`(?i)\bwhat\s+did\s+(?:we|i)\s+say\b`)
	notWhatShouldRE = regexp.MustCompile(`(?i)\bnot\s+what\s+it\s+should\b`)
	iJustSaidRE     = regexp.MustCompile(`(?i)\bi\s+(?:just|literally)\s+said\b`)
	isTerribleRE    = regexp.MustCompile(`(?i)\b(?:this|that)\s+is\s+terrible\b`)
	aLieRE          = regexp.MustCompile(`(?i)\ba\s+lie\b`)
	whyDidYouRE     = regexp.MustCompile(`(?i)\bwhy\s+did\s+(?:you|u)\b`)
	yoHelloRE       = regexp.MustCompile(`(?i)\byo,?\s+hello\b`)
	seriouslyRE     = regexp.MustCompile(`(?i)\bseriously\b`)
	whyDidntYouRE   = regexp.MustCompile(`(?i)\b(?:why|y)\s+didn'?t\s+(?:you|u)\b`)
)

// #endregion

// #region amplifier-patterns

var (
	nahRE       = regexp.MustCompile(`(?i)\bnah\b`)
	broDudeRE   = regexp.MustCompile(`(?i)\b(bro|dude)\b`)
	obviouslyRE = regexp.MustCompile(`(?i)\bobviously\b`)
	humorRE     = regexp.MustCompile(`(?i)\b(hilarious|lmao|lol|haha+|heh)\b`)
)

// #endregion

// #region signal-table

const frustrationThreshold = 2.0

// frustrationSignals is the ordered base table: tier 1 (high confidence),
// tier 2 (medium), then the long tail of specific phrasings.
var frustrationSignals = []signal{
	// Tier 1
	{name: "long-qmark-run", weight: 3.0, hits: boolHits(func(m *message) bool {
		// ????-runs near positive words are amazement, not frustration
		return m.longQmarks && !m.posNearQmarks
	})},
	{name: "shouty-caps", weight: 3.0, hits: boolHits(shoutyCaps)},
	{name: "wtf-phrase", weight: 2.5, hits: reHits(wtfPhraseRE)},
	{name: "rage-sound", weight: 2.0, hits: reHits(rageSoundRE)},

	// Tier 2
	{name: "profanity", weight: 1.5, hits: reHits(profanityRE)},
	{name: "short-qmark-run", weight: 1.0, hits: boolHits(shortQmarkRun)},
	{name: "still-broken", weight: 1.5, hits: reHits(stillBrokenRE)},
	{name: "doesnt-work", weight: 1.5, hits: reHits(doesntWorkRE)},
	{name: "neg-adjective", weight: 0.7, hits: reHits(negAdjectiveRE)},
	{name: "stop-imperative", weight: 1.5, hits: boolHits(func(m *message) bool {
		return stopImperativRE.MatchString(m.text) || broStopRE.MatchString(m.text)
	})},
	{name: "wrong-broken", weight: 1.0, hits: reHits(wrongBrokenRE)},
	{name: "hack", weight: 1.0, hits: reHits(hackRE)},
	{name: "bs", weight: 1.5, hits: reHits(bsRE)},
	{name: "told-you", weight: 1.0, hits: reHits(toldYouRE)},

	// Long tail
	{name: "sucks", weight: 2.0, hits: reHits(sucksRE)},
	{name: "completely-wrong", weight: 2.0, hits: reHits(completelyWrgRE)},
	{name: "are-you-serious", weight: 2.0, hits: reHits(areYouSeriousRE)},
	{name: "did-you-even-listen", weight: 2.0, hits: reHits(evenListenRE)},
	{name: "just-false", weight: 1.5, hits: reHits(justFalseRE)},
	{name: "did-not-just", weight: 1.5, hits: reHits(didNotJustRE)},
	{name: "pissed", weight: 2.0, hits: reHits(pissedRE)},
	{name: "ridiculous", weight: 1.5, hits: reHits(ridiculousRE)},
	{name: "is-so-bad", weight: 1.5, hits: reHits(isSoBadRE)},
	{name: "making-stuff-up", weight: 2.0, hits: reHits(makingStuffUpRE)},
	{name: "is-false", weight: 1.5, hits: reHits(isFalseRE)},
	{name: "dear-god", weight: 1.0, hits: reHits(dearGodRE)},
	{name: "so-bad", weight: 1.0, hits: reHits(soBadRE)},
	{name: "not-what-i-meant", weight: 2.0, hits: reHits(notWhatIMeantRE)},

	// "you didn't ..." accusations, strongest variant wins
	{name: "didnt-even", weight: 1.5, hits: reHits(didntEvenRE)},
	{name: "didnt-bother", weight: 1.0, hits: boolHits(func(m *message) bool {
		return !didntEvenRE.MatchString(m.text) && didntBotherRE.MatchString(m.text)
	})},
	{name: "didnt-bro", weight: 1.0, hits: boolHits(func(m *message) bool {
		return !didntEvenRE.MatchString(m.text) && !didntBotherRE.MatchString(m.text) &&
			youDidntRE.MatchString(m.text) && broDudeManRE.MatchString(m.text)
	})},

	{name: "you-keep", weight: 1.0, hits: reHits(youKeepRE)},
	{name: "how-many-times", weight: 2.0, hits: reHits(howManyTimesRE)},
	{name: "come-on", weight: 1.5, hits: reHits(comeOnRE)},
	{name: "what-did-we-say", weight: 1.5, hits: reHits(whatDidWeSayRE)},
	{name: "not-what-it-should", weight: 1.0, hits: reHits(notWhatShouldRE)},
	{name: "i-just-said", weight: 1.5, hits: reHits(iJustSaidRE)},
	{name: "is-terrible", weight: 1.5, hits: reHits(isTerribleRE)},
	{name: "a-lie", weight: 1.5, hits: reHits(aLieRE)},
	{name: "why-did-you", weight: 1.0, hits: reHits(whyDidYouRE)},
	{name: "yo-hello", weight: 1.5, hits: reHits(yoHelloRE)},
	{name: "seriously", weight: 0.7, hits: reHits(seriouslyRE)},
	{name: "why-didnt-you", weight: 1.0, hits: reHits(whyDidntYouRE)},
}

// frustrationAmplifiers run after all base accumulation. "bro"/"dude" are
// discourse markers used in every emotional state, so they only amplify
// signal that is already there.
var frustrationAmplifiers = []amplifier{
	{name: "nah", bonus: 0.5, minScore: 0.5, match: func(m *message) bool { return nahRE.MatchString(m.text) }},
	{name: "bro-dude", bonus: 0.5, minScore: 1.0, match: func(m *message) bool { return broDudeRE.MatchString(m.text) }},
	{name: "obviously", bonus: 0.5, minScore: 0.5, match: func(m *message) bool { return obviouslyRE.MatchString(m.text) }},
}

// #endregion

// #region score

// frustrationScore runs the frustration pass: base fold, amplifier phase,
// then the humor deflator ("insane" + "hilarious" is amused, not angry).
func frustrationScore(m *message) float64 {
	score := foldSignals(m, frustrationSignals)
	score = applyAmplifiers(m, score, frustrationAmplifiers)
	if humorRE.MatchString(m.text) && score > 0 {
		score = math.Max(score-1.5, 0)
	}
	return score
}

// #endregion
