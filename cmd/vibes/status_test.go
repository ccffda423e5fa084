package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/vibes-hook/internal/state"
)

func strptr(s string) *string { return &s }

func TestRenderStatusColors(t *testing.T) {
	tests := []struct {
		mood  string
		color string
	}{
		{"frustrated", ansiRed},
		{"excited", ansiGreen},
		{"confused", ansiYellow},
		{"neutral", ansiDim},
	}
	for _, tt := range tests {
		t.Run(tt.mood, func(t *testing.T) {
			store := state.NewMemStore()
			require.NoError(t, store.Put("s", state.MoodRecord{Mood: tt.mood, TS: 1}))

			out := renderStatus(store, "s")
			assert.True(t, strings.HasPrefix(out, tt.color+tt.mood), "got %q", out)
		})
	}
}

func TestRenderStatusQuotesVibe(t *testing.T) {
	store := state.NewMemStore()
	require.NoError(t, store.Put("s", state.MoodRecord{
		Mood:     "frustrated",
		Injected: true,
		Vibe:     strptr("Take a breath"),
		TS:       1,
	}))

	out := renderStatus(store, "s")
	assert.Contains(t, out, `"Take a breath"`)
}

func TestRenderStatusTruncatesLongVibe(t *testing.T) {
	long := strings.Repeat("a", 60)
	store := state.NewMemStore()
	require.NoError(t, store.Put("s", state.MoodRecord{
		Mood:     "excited",
		Injected: true,
		Vibe:     &long,
		TS:       1,
	}))

	out := renderStatus(store, "s")
	assert.Contains(t, out, strings.Repeat("a", 45)+"...")
	assert.NotContains(t, out, strings.Repeat("a", 46))
}

func TestRenderStatusMissingSession(t *testing.T) {
	out := renderStatus(state.NewMemStore(), "nope")
	assert.Equal(t, placeholder(), out)
}
