package inject

// #region imports
import (
	"math/rand"

	"github.com/danielpatrickdp/vibes-hook/internal/mood"
)

// #endregion

// #region rand

// Rand is the randomness capability the policy draws from. The mood label
// itself is always deterministic; only the sprinkle draw and the pool
// sample are randomized, so tests inject scripted draws here.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// systemRand backs Rand with the process-wide math/rand/v2 source. No
// seeding contract across calls.
type systemRand struct{}

func (systemRand) Float64() float64 { return rand.Float64() }
func (systemRand) IntN(n int) int   { return rand.Intn(n) }

// SystemRand returns the default process-wide randomness source.
func SystemRand() Rand { return systemRand{} }

// #endregion

// #region policy

// defaultSprinkleProbability is the chance that an otherwise-silent mood
// still gets a lightweight encouragement injected.
const defaultSprinkleProbability = 0.1

// Decision is the injection outcome for one classified message.
type Decision struct {
	Injected bool
	Vibe     string
}

// Policy maps a mood label to an injection decision.
type Policy struct {
	// SprinkleProbability applies to the silent moods (neutral, confused).
	SprinkleProbability float64
}

// DefaultPolicy returns the validated production policy.
func DefaultPolicy() Policy {
	return Policy{SprinkleProbability: defaultSprinkleProbability}
}

// Decide maps a mood to an injection decision, sampling from the mood's
// pool when injecting.
//
// Neutral doesn't inject: it's the overwhelming majority of messages and
// constant injection becomes noise. Confused doesn't inject either: the
// downstream assistant can already tell when the user is confused. Both
// instead take a small-probability sprinkle draw from the generic pool.
// Note the current behavior: a confused-mood sprinkle draws from the
// sprinkle pool, not the confused pool; the confused pool is only used
// if the policy is reconfigured.
func (p Policy) Decide(label mood.Mood, rng Rand) Decision {
	switch label {
	case mood.MoodNeutral, mood.MoodConfused:
		if rng.Float64() <= p.SprinkleProbability {
			return Decision{Injected: true, Vibe: sample(sprinkleVibes, rng)}
		}
		return Decision{}
	default:
		return Decision{Injected: true, Vibe: sample(Pool(label), rng)}
	}
}

// sample picks one message uniformly from a pool.
func sample(pool []string, rng Rand) string {
	return pool[rng.IntN(len(pool))]
}

// #endregion
