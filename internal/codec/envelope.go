package codec

// #region imports
import (
	"encoding/json"
	"io"
)

// #endregion

// #region input

// Input is the envelope the host writes to the hook's stdin on every
// user prompt.
type Input struct {
	Prompt    string `json:"prompt"`
	SessionID string `json:"session_id"`
}

// defaultSessionID is used when the host omits or garbles the envelope.
const defaultSessionID = "unknown"

// DecodeInput reads one input envelope. Malformed or non-JSON input
// degrades to an empty prompt and the "unknown" session. A hook that
// errors on bad input breaks its host's interactive flow, so there is no
// failure path here.
func DecodeInput(r io.Reader) Input {
	in := Input{SessionID: defaultSessionID}
	data, err := io.ReadAll(r)
	if err != nil {
		return in
	}
	var raw struct {
		Prompt    *string `json:"prompt"`
		SessionID *string `json:"session_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return in
	}
	if raw.Prompt != nil {
		in.Prompt = *raw.Prompt
	}
	if raw.SessionID != nil && *raw.SessionID != "" {
		in.SessionID = *raw.SessionID
	}
	return in
}

// #endregion

// #region output

// Output is the envelope written to stdout when the hook injects
// steering text. When not injecting, nothing is written at all.
type Output struct {
	HookSpecificOutput HookOutput `json:"hookSpecificOutput"`
}

// HookOutput is the host's structured additional-context event.
type HookOutput struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// hookEventName identifies the host event this hook responds to.
const hookEventName = "UserPromptSubmit"

// EncodeOutput writes the additional-context envelope carrying vibe.
func EncodeOutput(w io.Writer, vibe string) error {
	return json.NewEncoder(w).Encode(Output{
		HookSpecificOutput: HookOutput{
			HookEventName:     hookEventName,
			AdditionalContext: vibe,
		},
	})
}

// #endregion
