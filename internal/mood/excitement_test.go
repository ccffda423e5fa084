package mood

import (
	"math"
	"testing"
)

func exciteScore(text string) float64 {
	return excitementScore(newMessage(text))
}

func TestExcitementScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"thanks-bang-short", "thanks!", 1.5},
		{"thanks-plain", "thanks for the help", 0},
		{"ok-cool-short", "ok cool", 2.0},
		{"ok-cool-in-long-message", "ok cool, now let's refactor the parser to handle nested blocks", 1.0},
		{"lets-go", "lets go!", 2.0},
		{"lets-go-apostrophe", "let's go!", 2.0},
		{"lets-do-it-apostrophe", "let's do it!", 2.0},
		{"worked-bang", "it worked!", 2.0},
		{"works-factual", "it works for bools", 0},
		{"holy-profanity", "holy crap", 2.5},
		{"lol-alone-gated", "lol", 0},
		{"lol-boosts-existing", "lol nice", 2.0},
		{"ooh-alone-gated", "ooh", 0},
		{"ooh-boosts-existing", "oooh nice", 2.5},
		{"damn-positive", "damn that's clean", 2.0},
		{"genuinely-positive", "genuinely clever solution", 3.0},
		{"amazed-qmark-run", "wow??????? that's insanely fast", 3.5},
		{"qmark-run-no-context", "sandbagging?????", 0},
		{"nice-but-deflates", "nice, but the tests are failing now", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exciteScore(tt.text)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("excitementScore(%q) = %.2f, want %.2f", tt.text, got, tt.want)
			}
		})
	}
}
