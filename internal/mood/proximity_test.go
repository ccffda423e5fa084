package mood

import "testing"

func TestPositiveContextNearQmarks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"adjacent-before", "wow??????? that happened", true},
		{"adjacent-after", "?????? that was quick", true},
		{"eighth-word-after", "???? one two three four five six seven nice", true},
		{"ninth-word-after", "???? one two three four five six seven eight nice", false},
		{"no-positive-anywhere", "sandbagging????? again", false},
		{"fast-is-not-positive", "?????? really fast", false},
		{"no-run-at-all", "wow that was nice", false},
		{"second-run-has-context", "why????? ok fine. wow?????", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := positiveContextNearQmarks(tt.text, defaultProximityWindow)
			if got != tt.want {
				t.Errorf("positiveContextNearQmarks(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestProximityWindowParameter(t *testing.T) {
	text := "???? filler nice"
	if !positiveContextNearQmarks(text, 2) {
		t.Error("window 2 should reach the positive word")
	}
	if positiveContextNearQmarks(text, 1) {
		t.Error("window 1 should not reach past the filler word")
	}
}
