package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{
			name: "full envelope",
			in:   `{"prompt": "hello", "session_id": "abc-123"}`,
			want: Input{Prompt: "hello", SessionID: "abc-123"},
		},
		{
			name: "missing session defaults to unknown",
			in:   `{"prompt": "hello"}`,
			want: Input{Prompt: "hello", SessionID: "unknown"},
		},
		{
			name: "empty session defaults to unknown",
			in:   `{"prompt": "hello", "session_id": ""}`,
			want: Input{Prompt: "hello", SessionID: "unknown"},
		},
		{
			name: "missing prompt defaults to empty",
			in:   `{"session_id": "abc"}`,
			want: Input{Prompt: "", SessionID: "abc"},
		},
		{
			name: "malformed json degrades",
			in:   `{"prompt": "hel`,
			want: Input{Prompt: "", SessionID: "unknown"},
		},
		{
			name: "non-json degrades",
			in:   "plain text, not an envelope",
			want: Input{Prompt: "", SessionID: "unknown"},
		},
		{
			name: "empty stream degrades",
			in:   "",
			want: Input{Prompt: "", SessionID: "unknown"},
		},
		{
			name: "extra fields ignored",
			in:   `{"prompt": "p", "session_id": "s", "transcript_path": "/tmp/t"}`,
			want: Input{Prompt: "p", SessionID: "s"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeInput(strings.NewReader(tt.in))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeOutput(&buf, "Take a breath 💙"))

	assert.JSONEq(t, `{
		"hookSpecificOutput": {
			"hookEventName": "UserPromptSubmit",
			"additionalContext": "Take a breath 💙"
		}
	}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
