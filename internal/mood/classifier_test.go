package mood

import (
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   Mood
	}{
		// Frustrated
		{"caps-broken-qmarks", "WHAT IS GOING ON??? THIS IS BROKEN", MoodFrustrated},
		{"rage-still-broken", "ugh this is still broken", MoodFrustrated},
		{"sucks", "this approach sucks, we talked about this", MoodFrustrated},
		{"shouting", "STOP REWRITING MY TESTS EVERY SINGLE TIME", MoodFrustrated},
		{"exasperation", "how many times do I have to say it, use tabs not spaces", MoodFrustrated},
		{"accusation", "why did you delete my config??", MoodFrustrated},

		// Excited
		{"cool-nice-bangs", "this is so cool!! nice work", MoodExcited},
		{"holy-worked", "holy shit it worked!", MoodExcited},
		{"amazed-qmark-run", "wow??????? that's insanely fast", MoodExcited},
		{"slang-fire", "this is fire 🔥", MoodExcited},
		{"elongated", "daaaamn that's clean", MoodExcited},
		{"positive-caps", "EXCELLENT! YES! THIS IS PERFECT!", MoodExcited},

		// Confused
		{"wait-dont-understand", "wait, I don't understand what you mean here", MoodConfused},
		{"wtf-terminology", "wtf is a mutex?", MoodConfused},
		{"what-the-hell-means", "what the hell does memoization mean", MoodConfused},
		{"wdym-disbelief", "wdym???????", MoodConfused},
		{"explicit-confused", "im so confused rn", MoodConfused},
		{"triple-wait", "wait wait wait what is happening here", MoodConfused},

		// Neutral
		{"plain-request", "please add a retry to the upload function", MoodNeutral},
		{"empty", "", MoodNeutral},
		{"whitespace", " \n\t ", MoodNeutral},
		{"punctuation-only", "?!", MoodNeutral},
		{"technical-question", "can you explain how the scheduler picks the next goroutine", MoodNeutral},
		{"code-only", "```WHAT THE HELL???```", MoodNeutral},
		{"humor-absorbs-anger", "lmao this is hilarious and also wrong", MoodNeutral},
		{"apologizing", "sorry if im confusing you", MoodNeutral},
		{"telling-assistant-off", "you're confused, I meant the other file", MoodNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.prompt)
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	prompts := []string{
		"WHAT IS GOING ON??? THIS IS BROKEN",
		"this is so cool!! nice work",
		"wait, I don't understand",
		"please add a retry",
		"",
	}
	for _, p := range prompts {
		first := Classify(p)
		for i := 0; i < 100; i++ {
			if got := Classify(p); got != first {
				t.Fatalf("Classify(%q) not deterministic: %q then %q", p, first, got)
			}
		}
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// Satisfies both frustration and excitement thresholds; the earlier
	// pass wins.
	both := "this sucks!! but wow it's amazing how broken it is"
	b := Score(both)
	if b.Frustration < frustrationThreshold || b.Excitement < excitementThreshold {
		t.Fatalf("setup: scores %.1f/%.1f don't both cross", b.Frustration, b.Excitement)
	}
	if got := Classify(both); got != MoodFrustrated {
		t.Errorf("Classify = %q, want frustrated (earlier pass wins)", got)
	}

	// Satisfies excitement and confusion; excitement is checked first.
	exciteConfuse := "nice!! awesome!! hmm weird though"
	b = Score(exciteConfuse)
	if b.Excitement < excitementThreshold || b.Confusion < confusionThreshold {
		t.Fatalf("setup: scores %.1f/%.1f don't both cross", b.Excitement, b.Confusion)
	}
	if got := Classify(exciteConfuse); got != MoodExcited {
		t.Errorf("Classify = %q, want excited (earlier pass wins)", got)
	}
}

func TestHumorSuppressionMonotonic(t *testing.T) {
	// Adding "lol" can only lower or preserve the frustration score, and
	// never flips a non-frustrated message into frustrated.
	prompts := []string{
		"this is broken and wrong",
		"ugh this doesn't work",
		"this is wrong",
		"hello there",
	}
	for _, p := range prompts {
		base := Score(p).Frustration
		withHumor := Score(p + " lol").Frustration
		if withHumor > base {
			t.Errorf("humor raised frustration for %q: %.1f -> %.1f", p, base, withHumor)
		}
		if Classify(p) != MoodFrustrated && Classify(p+" lol") == MoodFrustrated {
			t.Errorf("humor flipped %q into frustrated", p)
		}
	}
}

func TestAmplifiersCannotCreateFrustration(t *testing.T) {
	for _, p := range []string{"bro", "dude", "bro dude", "nah", "obviously", "nah bro obviously"} {
		if score := Score(p).Frustration; score != 0 {
			t.Errorf("amplifier-only message %q scored %.1f, want 0", p, score)
		}
		if got := Classify(p); got != MoodNeutral {
			t.Errorf("Classify(%q) = %q, want neutral", p, got)
		}
	}
}

func TestClassifyLongInput(t *testing.T) {
	// A very long benign message must classify without drama.
	long := strings.Repeat("the function takes a slice and returns a map. ", 500)
	if got := Classify(long); got != MoodNeutral {
		t.Errorf("Classify(long benign) = %q, want neutral", got)
	}
}
