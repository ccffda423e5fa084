package mood

import "regexp"

// #region patterns

var (
	initialWaitRE   = regexp.MustCompile(`(?i)(?:^|\.\s*)\s*wait\b`)
	waitWhatRE      = regexp.MustCompile(`(?i)\bwait\s+what\b`)
	waitRE          = regexp.MustCompile(`(?i)\bwait\b`)
	dontUnderstdRE  = regexp.MustCompile(`(?i)\bi\s+don'?t\s+(?:understand|know|get|really)\b`)
	dontKnowWhatRE  = regexp.MustCompile(`(?i)\bdon'?t\s+(?:really\s+)?know\s+what`)
	notSureRE       = regexp.MustCompile(`(?i)\bi'?m\s+(?:\w+\s+)?not\s+sure\b`)
	whatDoYouMeanRE = regexp.MustCompile(`(?i)\bwhat\s+do\s+you\s+mean\b`)
	susRE           = regexp.MustCompile(`(?i)\b(?:seems?\s+)?sus\b|\bsketchy\b`)
	suspiciousOfRE  = regexp.MustCompile(`(?i)\bi'?m\s+suspicious\b|\bsuspicious\s+of\b`)
	weirdRE         = regexp.MustCompile(`(?i)\bweird\b`)
	hmmRE           = regexp.MustCompile(`(?i)\bhmm+\b`)
	huhRE           = regexp.MustCompile(`(?i)\bhuh\b`)
	imConfusedRE    = regexp.MustCompile(`(?i)\bi'?m\s+(?:\w+\s+)*confused\b`)
	confusStemRE    = regexp.MustCompile(`(?i)\bconfus`)
	youConfusedRE   = regexp.MustCompile(`(?i)\byou(?:'re|\s+are)\s+(?:getting\s+)?confus`)
	confusingYouRE  = regexp.MustCompile(`(?i)\bconfus\w*\s+(?:you|u|ya)\b`)
	bareWhatRE      = regexp.MustCompile(`(?im)^\s*what\s*\?{2,}\s*$`)
	whatQuestionRE  = regexp.MustCompile(`(?i)\bwhat\b[^.!]{0,20}\?`)
	trailingRightRE = regexp.MustCompile(`(?i)\bright\s*\?\s*$`)
	ellipsisRE      = regexp.MustCompile(`\.{3,}`)
)

// #endregion

// #region signal-table

const confusionThreshold = 2.0

var confusionSignals = []signal{
	{name: "initial-wait", weight: 1.5, hits: reHits(initialWaitRE)},
	{name: "wait-what", weight: 1.0, hits: reHits(waitWhatRE)},
	{name: "dont-understand", weight: 1.0, hits: reHits(dontUnderstdRE)},
	{name: "dont-know-what", weight: 1.0, hits: reHits(dontKnowWhatRE)},
	{name: "not-sure", weight: 2.0, hits: reHits(notSureRE)},
	{name: "what-do-you-mean", weight: 2.0, hits: reHits(whatDoYouMeanRE)},
	// "seems sus" is confusion; "i'm suspicious of your plan" is skepticism.
	{name: "sus", weight: 0.5, hits: boolHits(func(m *message) bool {
		return susRE.MatchString(m.text) && !suspiciousOfRE.MatchString(m.text)
	})},
	{name: "weird", weight: 0.5, hits: reHits(weirdRE)},
	{name: "hmm", weight: 1.5, hits: reHits(hmmRE)},
	{name: "huh", weight: 1.5, hits: reHits(huhRE)},

	// Explicit self-confusion, strongest variant wins. "you're confused"
	// is telling the assistant off, "im confusing you" is an apology;
	// neither is self-confusion.
	{name: "im-confused", weight: 2.0, hits: reHits(imConfusedRE)},
	{name: "confus-stem", weight: 1.0, hits: boolHits(func(m *message) bool {
		return !imConfusedRE.MatchString(m.text) && confusStemRE.MatchString(m.text) &&
			!youConfusedRE.MatchString(m.text) && !confusingYouRE.MatchString(m.text)
	})},

	{name: "wdym", weight: 1.5, hits: reHits(wdymRE)},
	{name: "bare-what", weight: 2.0, hits: reHits(bareWhatRE)},
	// "wait, wait, wait, wait": escalating confusion.
	{name: "repeated-wait", weight: 2.0, hits: boolHits(func(m *message) bool {
		return len(waitRE.FindAllString(m.text, -1)) >= 3
	})},
	{name: "repeated-what", weight: 1.0, hits: boolHits(func(m *message) bool {
		return len(whatQuestionRE.FindAllString(m.text, -1)) >= 2
	})},
	// Trailing "right?" seeks confirmation of uncertain understanding.
	{name: "trailing-right", weight: 0.5, hits: reHits(trailingRightRE)},
	// Dense ellipses read as thinking aloud, but long messages are often
	// voice-dictated and naturally ellipsis-heavy, so cap the length.
	{name: "ellipses", weight: 1.0, hits: boolHits(func(m *message) bool {
		return len(ellipsisRE.FindAllString(m.text, -1)) >= 4 && m.runeCount < 200
	})},
}

// #endregion

// #region score

// confusionScore runs the confusion pass. No amplifier phase: every rule
// here is a base signal.
func confusionScore(m *message) float64 {
	return foldSignals(m, confusionSignals)
}

// #endregion
