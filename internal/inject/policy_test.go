package inject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/vibes-hook/internal/mood"
)

// scriptRand replays fixed draws so decisions are fully deterministic.
type scriptRand struct {
	floats []float64
	ints   []int
}

func (r *scriptRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptRand) IntN(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func TestDecideFrustratedAlwaysInjects(t *testing.T) {
	p := DefaultPolicy()
	for i := range frustratedVibes {
		rng := &scriptRand{ints: []int{i}}
		d := p.Decide(mood.MoodFrustrated, rng)
		require.True(t, d.Injected)
		assert.Equal(t, frustratedVibes[i], d.Vibe)
	}
}

func TestDecideExcitedAlwaysInjects(t *testing.T) {
	p := DefaultPolicy()
	rng := &scriptRand{ints: []int{2}}
	d := p.Decide(mood.MoodExcited, rng)
	require.True(t, d.Injected)
	assert.Contains(t, excitedVibes, d.Vibe)
}

func TestDecideNeutralSprinkle(t *testing.T) {
	p := DefaultPolicy()

	// Draw above the sprinkle probability: silent.
	d := p.Decide(mood.MoodNeutral, &scriptRand{floats: []float64{0.11}})
	assert.False(t, d.Injected)
	assert.Empty(t, d.Vibe)

	// Draw below: a sprinkle from the generic pool.
	d = p.Decide(mood.MoodNeutral, &scriptRand{floats: []float64{0.05}, ints: []int{0}})
	require.True(t, d.Injected)
	assert.Equal(t, sprinkleVibes[0], d.Vibe)
}

func TestDecideConfusedUsesSprinklePool(t *testing.T) {
	// Confused follows the silent path: sprinkle draw from the generic
	// pool, never the confused pool.
	p := DefaultPolicy()

	d := p.Decide(mood.MoodConfused, &scriptRand{floats: []float64{0.5}})
	assert.False(t, d.Injected)

	d = p.Decide(mood.MoodConfused, &scriptRand{floats: []float64{0.01}, ints: []int{1}})
	require.True(t, d.Injected)
	assert.Contains(t, sprinkleVibes, d.Vibe)
	assert.NotContains(t, confusedVibes, d.Vibe)
}

func TestDecideZeroProbabilityNeverSprinkles(t *testing.T) {
	p := Policy{SprinkleProbability: 0}
	for _, f := range []float64{0.0001, 0.5, 0.999} {
		d := p.Decide(mood.MoodNeutral, &scriptRand{floats: []float64{f}})
		assert.False(t, d.Injected, "draw %v", f)
	}
}

func TestPools(t *testing.T) {
	assert.Len(t, Pool(mood.MoodFrustrated), 12)
	assert.Len(t, Pool(mood.MoodExcited), 5)
	assert.Len(t, Pool(mood.MoodConfused), 6)
	assert.Len(t, Pool(mood.MoodNeutral), 5)

	// Nothing in any pool is empty: an empty vibe would inject a blank
	// context event.
	for _, label := range []mood.Mood{mood.MoodFrustrated, mood.MoodExcited, mood.MoodConfused, mood.MoodNeutral} {
		for _, v := range Pool(label) {
			assert.NotEmpty(t, v)
		}
	}
}
